package plan

import (
	"github.com/quorumlab/quorum/internal/archetype"
	"github.com/quorumlab/quorum/internal/chain"
	"github.com/quorumlab/quorum/internal/domain"
	"github.com/quorumlab/quorum/internal/model"
)

// Options controls Prepare. Zero values mean "derive from classification".
type Options struct {
	// Topology forces a coordination mode. Empty: use the classifier's
	// recommendation (or keyword auto-detection when Auto is set).
	Topology model.Topology
	// Precision forces a precision level. Zero: derive like Topology.
	Precision model.PrecisionLevel
	// Auto prefers the pure keyword heuristics over the classifier's
	// domain recommendation for unforced parameters.
	Auto bool
	// NoPanel disables the expert archetype panel.
	NoPanel bool
	// Registry overrides the built-in archetype table. Nil: built-in.
	Registry *archetype.Registry
}

// panelSizeFor grows the expert panel with precision; the archetype table
// caps it at five in practice.
func panelSizeFor(precision model.PrecisionLevel) int {
	size := int(precision) + 2
	if size > 7 {
		size = 7
	}
	return size
}

// Prepare is the one-call planning path: classify the task, resolve
// topology and precision (explicit option > auto-detection > classifier
// recommendation), select chains, compose and synthesize the expert panel,
// and build the plan.
func Prepare(task string, opts Options) model.ExecutionPlan {
	cls := domain.Classify(task)

	topology := opts.Topology
	if topology == "" {
		if opts.Auto {
			topology = domain.DetectTopology(task)
		} else {
			topology = cls.Topology
		}
	}

	precision := opts.Precision
	if precision == 0 {
		if opts.Auto {
			precision = domain.DetectPrecision(task)
		} else {
			precision = cls.Precision
		}
	}

	registry := opts.Registry
	if registry == nil {
		registry = archetype.Builtin()
	}

	var personas []archetype.Persona
	if !opts.NoPanel {
		panel := registry.ComposePanel(cls.Name, panelSizeFor(precision), cls.Archetypes)
		for _, id := range panel {
			p, err := registry.Synthesize(id, cls.Name, task)
			if err != nil {
				continue // ComposePanel only returns ids present in the registry
			}
			personas = append(personas, p)
		}
	}

	return Build(Input{
		Task:      task,
		Domain:    cls.Name,
		Topology:  topology,
		Precision: precision,
		Chains:    chain.ForPrecision(precision),
		Personas:  personas,
	})
}
