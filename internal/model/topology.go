// Package model defines the data structures for Quorum's plans, work items,
// parsed results, and verdicts.
package model

import "fmt"

// Topology is the coordination pattern governing how work items relate.
type Topology string

const (
	TopologySequential       Topology = "sequential"
	TopologyParallel         Topology = "parallel"
	TopologySwarm            Topology = "swarm"
	TopologyHivemind         Topology = "hivemind"
	TopologyPipeline         Topology = "pipeline"
	TopologySupervisorWorker Topology = "supervisor_worker"
	TopologyHybrid           Topology = "hybrid"
	TopologyMapReduce        Topology = "map_reduce"
	TopologyTournament       Topology = "tournament"
	TopologyCriticLoop       Topology = "critic_loop"
	TopologyEnsemble         Topology = "ensemble"
	TopologyMeshDistributed  Topology = "mesh_distributed"
	TopologyMeshOffensive    Topology = "mesh_offensive"
)

// Topologies lists every coordination mode in declaration order.
var Topologies = []Topology{
	TopologySequential,
	TopologyParallel,
	TopologySwarm,
	TopologyHivemind,
	TopologyPipeline,
	TopologySupervisorWorker,
	TopologyHybrid,
	TopologyMapReduce,
	TopologyTournament,
	TopologyCriticLoop,
	TopologyEnsemble,
	TopologyMeshDistributed,
	TopologyMeshOffensive,
}

var validTopologies = map[Topology]bool{
	TopologySequential:       true,
	TopologyParallel:         true,
	TopologySwarm:            true,
	TopologyHivemind:         true,
	TopologyPipeline:         true,
	TopologySupervisorWorker: true,
	TopologyHybrid:           true,
	TopologyMapReduce:        true,
	TopologyTournament:       true,
	TopologyCriticLoop:       true,
	TopologyEnsemble:         true,
	TopologyMeshDistributed:  true,
	TopologyMeshOffensive:    true,
}

func (t Topology) Valid() bool {
	return validTopologies[t]
}

// ParseTopology validates a user-supplied topology name. The plan builder
// itself fails open to parallel; this is for surfaces that want to reject
// typos early (CLI flags, plan files).
func ParseTopology(s string) (Topology, error) {
	t := Topology(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown topology: %s", s)
	}
	return t, nil
}

// ExecutionMode tells the host whether the plan as a whole may be run
// concurrently or must respect list order.
type ExecutionMode string

const (
	ExecutionModeParallel   ExecutionMode = "parallel"
	ExecutionModeSequential ExecutionMode = "sequential"
)

// ExecutionModeFor returns "parallel" only for the fully independent
// topologies; every other mode carries at least one ordering constraint.
func ExecutionModeFor(t Topology) ExecutionMode {
	switch t {
	case TopologyParallel, TopologySwarm, TopologyHivemind:
		return ExecutionModeParallel
	default:
		return ExecutionModeSequential
	}
}
