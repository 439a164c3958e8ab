package model

// RawOutput is one raw report returned by the external host for a work item:
// a source identifier, the human label the item was spawned under, and the
// unparsed text payload.
type RawOutput struct {
	SourceID    string `yaml:"source_id" json:"source_id"`
	Description string `yaml:"description" json:"description"`
	Output      string `yaml:"output" json:"output"`
}

// RawOutputFile is the on-disk envelope for a batch of raw host outputs.
type RawOutputFile struct {
	SchemaVersion int         `yaml:"schema_version"`
	FileType      string      `yaml:"file_type"`
	Outputs       []RawOutput `yaml:"outputs"`
}

const (
	RawOutputFileType      = "raw_outputs"
	RawOutputSchemaVersion = 1
)

// ParsedResult is the structured extraction from one raw report. Confidence
// is always clamped to [0,1]; parsing never fails, it degrades to the 0.5
// default with the raw text as the result.
type ParsedResult struct {
	SourceID   string         `yaml:"source_id" json:"source_id"`
	Confidence float64        `yaml:"confidence" json:"confidence"`
	Result     string         `yaml:"result" json:"result"`
	Metadata   map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// VerdictStatus tags the outcome of a reduction.
type VerdictStatus string

const (
	StatusSuccess        VerdictStatus = "success"
	StatusConsensus      VerdictStatus = "consensus"
	StatusNoConsensus    VerdictStatus = "no_consensus"
	StatusZeroConfidence VerdictStatus = "zero_confidence"
	StatusNoResults      VerdictStatus = "no_results"
	StatusNoChainResults VerdictStatus = "no_chain_results"
)

// ResultPreview is a bounded view of one parsed result carried on the
// verdict for reporting.
type ResultPreview struct {
	ID         string  `yaml:"id" json:"id"`
	Confidence float64 `yaml:"confidence" json:"confidence"`
	Result     string  `yaml:"result" json:"result"`
}

// Verdict is the final confidence-scored outcome of aggregation. Terminal
// output; never mutated after it is produced.
type Verdict struct {
	Confidence     float64         `yaml:"confidence" json:"confidence"`
	Result         string          `yaml:"result" json:"result"`
	Method         ReductionMethod `yaml:"method" json:"method"`
	Status         VerdictStatus   `yaml:"status" json:"status"`
	WinnerID       string          `yaml:"winner_id,omitempty" json:"winner_id,omitempty"`
	Votes          int             `yaml:"votes,omitempty" json:"votes,omitempty"`
	ChainResults   []ResultPreview `yaml:"chain_results" json:"chain_results"`
	PersonaResults []ResultPreview `yaml:"persona_results" json:"persona_results"`
	ChainCount     int             `yaml:"chain_count" json:"chain_count"`
	PersonaCount   int             `yaml:"persona_count" json:"persona_count"`
	TotalResults   int             `yaml:"total_results" json:"total_results"`
	Topology       Topology        `yaml:"topology" json:"topology"`
	PrecisionLevel PrecisionLevel  `yaml:"precision_level" json:"precision_level"`
}
