// Package plan expands a task, a coordination topology, and the selected
// chain/persona sets into a concrete ordered execution plan. Expansion is a
// pure function: no I/O, no randomness, identical inputs produce identical
// plans.
package plan

import (
	"fmt"

	"github.com/quorumlab/quorum/internal/archetype"
	"github.com/quorumlab/quorum/internal/chain"
	"github.com/quorumlab/quorum/internal/model"
)

// Input carries everything Build needs. Personas may be empty for plans
// without an expert panel.
type Input struct {
	Task      string
	Domain    string
	Topology  model.Topology
	Precision model.PrecisionLevel
	Chains    []chain.ID
	Personas  []archetype.Persona
}

// Build expands the input into an ExecutionPlan, applying topology-specific
// structuring to the chain work items. An unrecognized topology gets the
// parallel treatment: fail open, never fail closed.
func Build(in Input) model.ExecutionPlan {
	chainItems := buildChainItems(in.Task, in.Topology, in.Chains)
	personaItems := buildPersonaItems(in.Personas)

	return model.ExecutionPlan{
		Task:           in.Task,
		Domain:         in.Domain,
		PrecisionLevel: in.Precision,
		Topology:       in.Topology,
		ChainItems:     chainItems,
		PersonaItems:   personaItems,
		ExecutionMode:  model.ExecutionModeFor(in.Topology),
		Aggregation: model.Aggregation{
			Method:        model.ReductionMethodFor(in.Topology),
			ChainWeight:   model.ChainWeight,
			PersonaWeight: model.PersonaWeight,
		},
		TotalAgents: len(chainItems) + len(personaItems),
	}
}

func buildChainItems(task string, topology model.Topology, chains []chain.ID) []model.WorkItem {
	switch topology {
	case model.TopologySequential:
		return chainItems(task, chains, false)

	case model.TopologyParallel, model.TopologySwarm, model.TopologyHivemind:
		return chainItems(task, chains, true)

	case model.TopologyPipeline:
		items := chainItems(task, chains, false)
		for i := range items {
			if i > 0 {
				items[i].Prompt = "Previous chain results will be provided.\n\n" + items[i].Prompt
			}
		}
		return items

	case model.TopologyTournament:
		items := chainItems(task, chains, true)
		for i := range items {
			items[i].Prompt = "TOURNAMENT MODE: Compete to provide the best answer.\n\n" + items[i].Prompt
		}
		return items

	case model.TopologyCriticLoop:
		return criticLoopItems(task)

	case model.TopologyEnsemble:
		return ensembleItems(task)

	case model.TopologySupervisorWorker:
		return supervisorWorkerItems(task, chains)

	case model.TopologyMapReduce:
		return mapReduceItems(task, chains)

	case model.TopologyHybrid:
		items := chainItems(task, chains, true)
		return append(items, synthesizerItem(task, len(chains)))

	case model.TopologyMeshDistributed:
		return meshItems(task, chains)

	case model.TopologyMeshOffensive:
		return offensiveMeshItems(task, chains)

	default:
		return chainItems(task, chains, true)
	}
}

func chainItems(task string, chains []chain.ID, independent bool) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(chains))
	for _, id := range chains {
		items = append(items, chainItem(id, task, independent))
	}
	return items
}

func chainItem(id chain.ID, task string, independent bool) model.WorkItem {
	return model.WorkItem{
		Description: fmt.Sprintf("Chain-%s verify", id.Letter()),
		Prompt:      chain.Prompt(id, task),
		AgentClass:  model.AgentClassGeneral,
		Independent: independent,
	}
}

// criticLoopItems always produces exactly two dependent items regardless of
// chain-set size: an initial analysis, then a critique of it.
func criticLoopItems(task string) []model.WorkItem {
	return []model.WorkItem{
		{
			Description: "Initial analysis",
			Prompt:      fmt.Sprintf("Analyze this task thoroughly:\n\n%s", task),
			AgentClass:  model.AgentClassExplore,
			Independent: false,
			Phase:       model.PhaseAnalysis,
		},
		{
			Description: "Critic review",
			Prompt:      fmt.Sprintf("Critically review the previous analysis. Find flaws, gaps, and improvements for:\n\n%s", task),
			AgentClass:  model.AgentClassGeneral,
			Independent: false,
			Phase:       model.PhaseCritique,
		},
	}
}

// ensembleItems always produces exactly three independent items with the
// three fixed stylistic framings.
func ensembleItems(task string) []model.WorkItem {
	framings := []struct {
		approach   string
		agentClass string
	}{
		{"analytical", model.AgentClassExplore},
		{"creative", model.AgentClassGeneral},
		{"skeptical", model.AgentClassGeneral},
	}

	items := make([]model.WorkItem, 0, len(framings))
	for _, f := range framings {
		items = append(items, model.WorkItem{
			Description: fmt.Sprintf("Ensemble %s", f.approach),
			Prompt:      fmt.Sprintf("Using a %s approach, analyze:\n\n%s", f.approach, task),
			AgentClass:  f.agentClass,
			Independent: true,
		})
	}
	return items
}

func supervisorWorkerItems(task string, chains []chain.ID) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(chains)+1)

	items = append(items, model.WorkItem{
		Description: "Supervisor coordinator",
		Prompt: fmt.Sprintf(`You are the SUPERVISOR agent coordinating a team of workers.

TASK: %s

Decompose this task into %d subtasks.
Define clear success criteria for each.

Output format:
`+"```json"+`
{
  "subtasks": [{"id": 1, "description": "...", "success_criteria": "..."}],
  "combination_strategy": "..."
}
`+"```", task, len(chains)),
		AgentClass:  model.AgentClassPlanner,
		Independent: false,
		Phase:       model.PhaseSupervise,
	})

	for i, id := range chains {
		items = append(items, model.WorkItem{
			Description: fmt.Sprintf("Worker %d (%s)", i+1, id.Letter()),
			Prompt: fmt.Sprintf(`You are WORKER %d in a supervisor-worker system.

MAIN TASK: %s

Execute your assigned portion thoroughly.
Chain perspective: %s

Provide analysis with confidence score (0-1).`, i+1, task, id),
			AgentClass:  model.AgentClassGeneral,
			Independent: true,
			Phase:       model.PhaseWork,
		})
	}
	return items
}

// mapReduceItems produces one independent map item per chain, each tagged
// with its ordinal position and the total count, then one trailing dependent
// reduce item that must start only after every map item has resolved.
func mapReduceItems(task string, chains []chain.ID) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(chains)+1)

	for i, id := range chains {
		items = append(items, model.WorkItem{
			Description: fmt.Sprintf("Map worker %d", i+1),
			Prompt: fmt.Sprintf(`MAP PHASE - Worker %d/%d

TASK: %s

Analyze aspect %d of %d.
Chain focus: %s

Output:
`+"```json"+`
{
  "worker_id": %d,
  "partial_result": "...",
  "confidence": 0.0-1.0,
  "key_findings": []
}
`+"```", i+1, len(chains), task, i+1, len(chains), id, i+1),
			AgentClass:  model.AgentClassGeneral,
			Independent: true,
			Phase:       model.PhaseMap,
		})
	}

	items = append(items, model.WorkItem{
		Description: "Reduce aggregator",
		Prompt: fmt.Sprintf(`REDUCE PHASE - Result Aggregator

ORIGINAL TASK: %s

Combine results from %d map workers into coherent final answer.
Merge findings, resolve conflicts, calculate overall confidence.`, task, len(chains)),
		AgentClass:  model.AgentClassPlanner,
		Independent: false,
		Phase:       model.PhaseReduce,
	})

	return items
}

func synthesizerItem(task string, chainCount int) model.WorkItem {
	return model.WorkItem{
		Description: "Hybrid synthesizer",
		Prompt: fmt.Sprintf(`HYBRID SYNTHESIS PHASE

TASK: %s

You are the final synthesizer. Previous phase: %d parallel chains.

1. Review all parallel chain outputs
2. Identify consensus and conflicts
3. Deep analysis on uncertain areas
4. Produce refined final answer

Include confidence score and reasoning chain.`, task, chainCount),
		AgentClass:  model.AgentClassPlanner,
		Independent: false,
		Phase:       model.PhaseSynthesize,
	}
}

// meshItems carries a zero-based node-index marker on every item; prompts
// address nodes one-based for the agent's benefit.
func meshItems(task string, chains []chain.ID) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(chains))
	for i, id := range chains {
		node := i
		items = append(items, model.WorkItem{
			Description: fmt.Sprintf("Mesh node %d (%s)", i+1, id.Letter()),
			Prompt: fmt.Sprintf(`MESH DISTRIBUTED - Node %d

TASK: %s

You are mesh node %d with chain perspective: %s

Execute analysis independently. Include:
- node_id: %d
- chain_id: %s
- confidence: 0.0-1.0
- result: your analysis`, i+1, task, i+1, id, i+1, id),
			AgentClass:  model.AgentClassExplore,
			Independent: true,
			NodeIndex:   &node,
		})
	}
	return items
}

func offensiveMeshItems(task string, chains []chain.ID) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(chains))
	for i, id := range chains {
		node := i
		items = append(items, model.WorkItem{
			Description: fmt.Sprintf("Offensive node %d (%s)", i+1, id.Letter()),
			Prompt: fmt.Sprintf(`MESH OFFENSIVE - Security Node %d

TARGET TASK: %s

You are on an OFFENSIVE SECURITY node.
Chain perspective: %s

Focus on:
- Attack surface analysis
- Vulnerability identification
- Exploitation paths
- Defense considerations

Output:
`+"```json"+`
{
  "node_id": %d,
  "chain_id": "%s",
  "security_findings": [],
  "risk_level": "low|medium|high|critical",
  "confidence": 0.0-1.0
}
`+"```", i+1, task, id, i+1, id),
			AgentClass:  model.AgentClassGeneral,
			Independent: true,
			NodeIndex:   &node,
			MeshType:    model.MeshTypeOffensive,
		})
	}
	return items
}

func buildPersonaItems(personas []archetype.Persona) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(personas))
	for _, p := range personas {
		items = append(items, model.WorkItem{
			Description: fmt.Sprintf("%s (%s)", p.Title, p.ArchetypeID),
			Prompt:      p.Instructions,
			AgentClass:  model.AgentClassGeneral,
			Independent: true,
		})
	}
	return items
}
