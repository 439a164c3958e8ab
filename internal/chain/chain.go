// Package chain holds the nine fixed verification-chain templates (A-I) and
// the precision-level selection policy over them.
package chain

import "strings"

// ID identifies one verification chain. The letter prefix before the first
// underscore is the chain's short name.
type ID string

const (
	SingleSource ID = "A_SINGLE_SOURCE"
	DualSource   ID = "B_DUAL_SOURCE"
	TripleSource ID = "C_TRIPLE_SOURCE"
	Adversarial  ID = "D_ADVERSARIAL"
	Mathematical ID = "E_MATHEMATICAL"
	DomainExpert ID = "F_DOMAIN_EXPERT"
	Temporal     ID = "G_TEMPORAL"
	Consensus    ID = "H_CONSENSUS"
	Streaming    ID = "I_STREAMING"
)

// All lists every chain in declaration order. Precision level 4 takes the
// first six of this list, level 5 takes all nine.
var All = []ID{
	SingleSource,
	DualSource,
	TripleSource,
	Adversarial,
	Mathematical,
	DomainExpert,
	Temporal,
	Consensus,
	Streaming,
}

// Letter returns the single-letter short name ("A" for A_SINGLE_SOURCE).
func (id ID) Letter() string {
	s := string(id)
	if i := strings.IndexByte(s, '_'); i > 0 {
		return s[:i]
	}
	return s
}

var chainNames = map[ID]string{
	SingleSource: "Single Source Verification",
	DualSource:   "Dual Source Cross-Reference",
	TripleSource: "Triple Source Consensus",
	Adversarial:  "Adversarial Verification",
	Mathematical: "Formal/Mathematical Verification",
	DomainExpert: "Domain Expert Analysis",
	Temporal:     "Temporal Validity Check",
	Consensus:    "Multi-Agent Consensus",
	Streaming:    "Streaming Early-Exit",
}

// Name returns the human-readable chain name, or the raw id if unknown.
func (id ID) Name() string {
	if n, ok := chainNames[id]; ok {
		return n
	}
	return string(id)
}
