package model

// AgentClass labels the class of agent the host should use for a work item.
// Free text from the host's point of view; these are the classes quorum emits.
const (
	AgentClassGeneral = "general-purpose"
	AgentClassExplore = "explore"
	AgentClassPlanner = "planner"
)

// Phase markers for topologies with distinct generation/refinement stages.
const (
	PhaseMap        = "map"
	PhaseReduce     = "reduce"
	PhaseSupervise  = "supervise"
	PhaseWork       = "work"
	PhaseSynthesize = "synthesize"
	PhaseAnalysis   = "analysis"
	PhaseCritique   = "critique"
)

// MeshTypeOffensive tags mesh nodes generated by the mesh_offensive topology.
const MeshTypeOffensive = "offensive"

// WorkItem is one unit of delegated analysis handed to the external host.
// The host consumes it as-is and never mutates it. Independent items may be
// executed concurrently with no ordering guarantee among themselves;
// dependent items must run, and have results available, in list order.
type WorkItem struct {
	Description string `yaml:"description" json:"description"`
	Prompt      string `yaml:"prompt" json:"prompt"`
	AgentClass  string `yaml:"agent_class" json:"agent_class"`
	Independent bool   `yaml:"independent" json:"independent"`

	// Topology-specific markers, absent unless the topology sets them.
	NodeIndex *int   `yaml:"node_index,omitempty" json:"node_index,omitempty"`
	MeshType  string `yaml:"mesh_type,omitempty" json:"mesh_type,omitempty"`
	Phase     string `yaml:"phase,omitempty" json:"phase,omitempty"`
}

// Aggregation declares how the host's results are to be reduced once they
// come back. The chain/persona weights are fixed by contract.
type Aggregation struct {
	Method        ReductionMethod `yaml:"method" json:"method"`
	ChainWeight   float64         `yaml:"chain_weight" json:"chain_weight"`
	PersonaWeight float64         `yaml:"persona_weight" json:"persona_weight"`
}

// ChainWeight and PersonaWeight blend chain-derived and persona-derived
// confidence in the final verdict.
const (
	ChainWeight   = 0.6
	PersonaWeight = 0.4
)

// ExecutionPlan is the complete, ordered expansion of a task under one
// coordination topology. Invariant: TotalAgents == len(ChainItems)+len(PersonaItems).
type ExecutionPlan struct {
	Task           string         `yaml:"task" json:"task"`
	Domain         string         `yaml:"domain" json:"domain"`
	PrecisionLevel PrecisionLevel `yaml:"precision_level" json:"precision_level"`
	Topology       Topology       `yaml:"topology" json:"topology"`
	ChainItems     []WorkItem     `yaml:"chain_items" json:"chain_items"`
	PersonaItems   []WorkItem     `yaml:"persona_items" json:"persona_items"`
	ExecutionMode  ExecutionMode  `yaml:"execution_mode" json:"execution_mode"`
	Aggregation    Aggregation    `yaml:"aggregation" json:"aggregation"`
	TotalAgents    int            `yaml:"total_agents" json:"total_agents"`
}

// PlanFile is the on-disk envelope for an exported plan. The ID is assigned
// at export time by the caller; the plan itself is a pure expansion and
// carries no generated identifiers.
type PlanFile struct {
	SchemaVersion int           `yaml:"schema_version"`
	FileType      string        `yaml:"file_type"`
	ID            string        `yaml:"id"`
	Plan          ExecutionPlan `yaml:"plan"`
}

const (
	PlanFileType      = "execution_plan"
	PlanSchemaVersion = 1
)
