package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumlab/quorum/internal/archetype"
	"github.com/quorumlab/quorum/internal/chain"
	"github.com/quorumlab/quorum/internal/model"
)

var threeChains = []chain.ID{chain.SingleSource, chain.DualSource, chain.Adversarial}

func buildFor(t *testing.T, topology model.Topology) model.ExecutionPlan {
	t.Helper()
	return Build(Input{
		Task:      "verify the rollout checklist",
		Domain:    "general",
		Topology:  topology,
		Precision: 3,
		Chains:    threeChains,
	})
}

func TestBuild_Deterministic(t *testing.T) {
	a := buildFor(t, model.TopologyHivemind)
	b := buildFor(t, model.TopologyHivemind)
	assert.Equal(t, a, b)
}

func TestBuild_TotalAgentsCountsAllItems(t *testing.T) {
	for _, topology := range model.Topologies {
		p := buildFor(t, topology)
		assert.Equal(t, len(p.ChainItems)+len(p.PersonaItems), p.TotalAgents, "topology %s", topology)
	}
}

func TestBuild_ExecutionModeAndAggregation(t *testing.T) {
	for _, topology := range model.Topologies {
		p := buildFor(t, topology)
		assert.Equal(t, model.ExecutionModeFor(topology), p.ExecutionMode, "topology %s", topology)
		assert.Equal(t, model.ReductionMethodFor(topology), p.Aggregation.Method, "topology %s", topology)
		assert.Equal(t, model.ChainWeight, p.Aggregation.ChainWeight)
		assert.Equal(t, model.PersonaWeight, p.Aggregation.PersonaWeight)
	}
}

func TestBuild_SequentialItemsAreOrdered(t *testing.T) {
	p := buildFor(t, model.TopologySequential)
	require.Len(t, p.ChainItems, 3)
	for _, item := range p.ChainItems {
		assert.False(t, item.Independent)
		assert.Equal(t, model.AgentClassGeneral, item.AgentClass)
	}
	assert.Equal(t, "Chain-A verify", p.ChainItems[0].Description)
}

func TestBuild_ParallelFamilyItemsAreIndependent(t *testing.T) {
	for _, topology := range []model.Topology{model.TopologyParallel, model.TopologySwarm, model.TopologyHivemind} {
		p := buildFor(t, topology)
		require.Len(t, p.ChainItems, 3, "topology %s", topology)
		for _, item := range p.ChainItems {
			assert.True(t, item.Independent, "topology %s", topology)
		}
	}
}

func TestBuild_PipelinePrefixesDownstreamPrompts(t *testing.T) {
	p := buildFor(t, model.TopologyPipeline)
	require.Len(t, p.ChainItems, 3)
	assert.False(t, strings.HasPrefix(p.ChainItems[0].Prompt, "Previous chain results"))
	for _, item := range p.ChainItems[1:] {
		assert.True(t, strings.HasPrefix(item.Prompt, "Previous chain results will be provided."))
		assert.False(t, item.Independent)
	}
}

func TestBuild_TournamentPrefixesEveryPrompt(t *testing.T) {
	p := buildFor(t, model.TopologyTournament)
	for _, item := range p.ChainItems {
		assert.True(t, strings.HasPrefix(item.Prompt, "TOURNAMENT MODE:"))
		assert.True(t, item.Independent)
	}
}

func TestBuild_CriticLoopIsExactlyTwoDependentItems(t *testing.T) {
	// Chain-set size never changes the critic loop shape.
	p := buildFor(t, model.TopologyCriticLoop)
	require.Len(t, p.ChainItems, 2)

	assert.Equal(t, "Initial analysis", p.ChainItems[0].Description)
	assert.Equal(t, model.AgentClassExplore, p.ChainItems[0].AgentClass)
	assert.Equal(t, model.PhaseAnalysis, p.ChainItems[0].Phase)

	assert.Equal(t, "Critic review", p.ChainItems[1].Description)
	assert.Equal(t, model.PhaseCritique, p.ChainItems[1].Phase)

	for _, item := range p.ChainItems {
		assert.False(t, item.Independent)
	}
}

func TestBuild_EnsembleIsExactlyThreeFramings(t *testing.T) {
	p := buildFor(t, model.TopologyEnsemble)
	require.Len(t, p.ChainItems, 3)

	assert.Equal(t, "Ensemble analytical", p.ChainItems[0].Description)
	assert.Equal(t, model.AgentClassExplore, p.ChainItems[0].AgentClass)
	assert.Equal(t, "Ensemble creative", p.ChainItems[1].Description)
	assert.Equal(t, "Ensemble skeptical", p.ChainItems[2].Description)
	for _, item := range p.ChainItems {
		assert.True(t, item.Independent)
	}
}

func TestBuild_SupervisorWorkerShape(t *testing.T) {
	p := buildFor(t, model.TopologySupervisorWorker)
	require.Len(t, p.ChainItems, 4)

	supervisor := p.ChainItems[0]
	assert.Equal(t, "Supervisor coordinator", supervisor.Description)
	assert.Equal(t, model.AgentClassPlanner, supervisor.AgentClass)
	assert.Equal(t, model.PhaseSupervise, supervisor.Phase)
	assert.False(t, supervisor.Independent)
	assert.Contains(t, supervisor.Prompt, "Decompose this task into 3 subtasks.")

	for i, worker := range p.ChainItems[1:] {
		assert.Equal(t, model.PhaseWork, worker.Phase)
		assert.True(t, worker.Independent)
		assert.Contains(t, worker.Prompt, "Chain perspective: "+string(threeChains[i]))
	}
	assert.Equal(t, "Worker 1 (A)", p.ChainItems[1].Description)
}

func TestBuild_MapReduceShape(t *testing.T) {
	p := buildFor(t, model.TopologyMapReduce)
	require.Len(t, p.ChainItems, 4)

	for i, item := range p.ChainItems[:3] {
		assert.Equal(t, model.PhaseMap, item.Phase)
		assert.True(t, item.Independent)
		assert.Contains(t, item.Prompt, "MAP PHASE - Worker "+string(rune('1'+i))+"/3")
	}

	reduce := p.ChainItems[3]
	assert.Equal(t, "Reduce aggregator", reduce.Description)
	assert.Equal(t, model.PhaseReduce, reduce.Phase)
	assert.Equal(t, model.AgentClassPlanner, reduce.AgentClass)
	assert.False(t, reduce.Independent)
	assert.Contains(t, reduce.Prompt, "Combine results from 3 map workers")
}

func TestBuild_HybridAppendsSynthesizer(t *testing.T) {
	p := buildFor(t, model.TopologyHybrid)
	require.Len(t, p.ChainItems, 4)

	for _, item := range p.ChainItems[:3] {
		assert.True(t, item.Independent)
	}

	synth := p.ChainItems[3]
	assert.Equal(t, "Hybrid synthesizer", synth.Description)
	assert.Equal(t, model.PhaseSynthesize, synth.Phase)
	assert.False(t, synth.Independent)
	assert.Contains(t, synth.Prompt, "Previous phase: 3 parallel chains.")
}

func TestBuild_MeshNodesCarryZeroBasedIndex(t *testing.T) {
	p := buildFor(t, model.TopologyMeshDistributed)
	require.Len(t, p.ChainItems, 3)

	for i, item := range p.ChainItems {
		require.NotNil(t, item.NodeIndex)
		assert.Equal(t, i, *item.NodeIndex)
		assert.Equal(t, model.AgentClassExplore, item.AgentClass)
		assert.True(t, item.Independent)
		assert.Empty(t, item.MeshType)
		// Prompts address nodes one-based.
		assert.Contains(t, item.Prompt, "You are mesh node "+string(rune('1'+i)))
	}
	assert.Equal(t, "Mesh node 1 (A)", p.ChainItems[0].Description)
}

func TestBuild_OffensiveMeshTagsNodes(t *testing.T) {
	p := buildFor(t, model.TopologyMeshOffensive)
	require.Len(t, p.ChainItems, 3)

	for i, item := range p.ChainItems {
		require.NotNil(t, item.NodeIndex)
		assert.Equal(t, i, *item.NodeIndex)
		assert.Equal(t, model.MeshTypeOffensive, item.MeshType)
		assert.True(t, item.Independent)
		assert.Contains(t, item.Prompt, "MESH OFFENSIVE")
	}
}

func TestBuild_UnknownTopologyFailsOpenToParallel(t *testing.T) {
	p := buildFor(t, model.Topology("quantum"))
	require.Len(t, p.ChainItems, 3)
	for _, item := range p.ChainItems {
		assert.True(t, item.Independent)
	}
	assert.Equal(t, model.ExecutionModeSequential, p.ExecutionMode)
	assert.Equal(t, model.ReduceConfidenceWeighted, p.Aggregation.Method)
}

func TestBuild_PersonaItems(t *testing.T) {
	registry := archetype.Builtin()
	persona, err := registry.Synthesize(archetype.Theoretical, "security", "t")
	require.NoError(t, err)

	p := Build(Input{
		Task:     "t",
		Domain:   "security",
		Topology: model.TopologyParallel,
		Chains:   []chain.ID{chain.SingleSource},
		Personas: []archetype.Persona{persona},
	})

	require.NotEmpty(t, p.PersonaItems)
	first := p.PersonaItems[0]
	assert.Equal(t, "Security Researcher (ARC-TH)", first.Description)
	assert.Contains(t, first.Prompt, "You are a Security Researcher")
	assert.True(t, first.Independent)
	assert.Equal(t, model.AgentClassGeneral, first.AgentClass)
	assert.Equal(t, 1+len(p.PersonaItems), p.TotalAgents)
}
