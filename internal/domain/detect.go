package domain

import (
	"strings"

	"github.com/quorumlab/quorum/internal/model"
)

// DetectTopology picks a coordination topology from task keywords alone,
// independent of domain classification. Used by auto mode.
func DetectTopology(task string) model.Topology {
	taskLower := strings.ToLower(task)

	switch {
	case containsAny(taskLower, "security", "audit", "vulnerability", "attack"):
		return model.TopologyHivemind
	case containsAny(taskLower, "max", "comprehensive", "thorough", "exhaustive"):
		return model.TopologySwarm
	case containsAny(taskLower, "compare", "evaluate", "test", "benchmark"):
		return model.TopologyTournament
	case containsAny(taskLower, "quick", "simple", "check", "basic"):
		return model.TopologySequential
	default:
		return model.TopologyParallel
	}
}

// DetectPrecision picks a precision level from task keywords alone.
func DetectPrecision(task string) model.PrecisionLevel {
	taskLower := strings.ToLower(task)

	switch {
	case containsAny(taskLower, "security", "critical", "production", "audit"):
		return 5
	case containsAny(taskLower, "thorough", "comprehensive", "detailed"):
		return 4
	case containsAny(taskLower, "quick", "simple", "basic", "fast"):
		return 1
	default:
		return model.DefaultPrecision
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
