package chain

import "strings"

// taskSlot is the substitution slot for the task text in every template.
const taskSlot = "{task}"

const fence = "```"

var templates = map[ID]string{
	SingleSource: `## Chain A: Single Source Verification

TASK: {task}

Analyze this task using a single authoritative source approach.
Provide your findings with confidence score (0.0-1.0).

Output format:
` + fence + `json
{
  "chain": "A",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "sources": ["source1"]
}
` + fence,

	DualSource: `## Chain B: Dual Source Cross-Reference

TASK: {task}

Analyze using two independent sources and cross-reference findings.
Identify agreements and conflicts between sources.

Output format:
` + fence + `json
{
  "chain": "B",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "sources": ["source1", "source2"],
  "agreements": [],
  "conflicts": []
}
` + fence,

	TripleSource: `## Chain C: Triple Source Consensus

TASK: {task}

Use three independent sources to establish consensus.
Require 2/3 agreement for high-confidence claims.

Output format:
` + fence + `json
{
  "chain": "C",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "consensus_items": [],
  "disputed_items": []
}
` + fence,

	Adversarial: `## Chain D: Adversarial Verification

TASK: {task}

Apply adversarial thinking: actively try to disprove claims.
Identify weaknesses, edge cases, and potential failures.

Output format:
` + fence + `json
{
  "chain": "D",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "attack_vectors": [],
  "weaknesses_found": [],
  "surviving_claims": []
}
` + fence,

	Mathematical: `## Chain E: Formal/Mathematical Verification

TASK: {task}

Apply formal reasoning and mathematical rigor.
Use logical proofs, invariants, and formal methods where applicable.

Output format:
` + fence + `json
{
  "chain": "E",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "formal_claims": [],
  "proof_sketches": []
}
` + fence,

	DomainExpert: `## Chain F: Domain Expert Analysis

TASK: {task}

Analyze as a domain expert with deep specialized knowledge.
Apply domain-specific best practices and patterns.

Output format:
` + fence + `json
{
  "chain": "F",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "domain_insights": [],
  "best_practices_applied": []
}
` + fence,

	Temporal: `## Chain G: Temporal Validity Check

TASK: {task}

Verify temporal validity: are claims still current?
Check for outdated information, version changes, deprecations.

Output format:
` + fence + `json
{
  "chain": "G",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "temporal_issues": [],
  "freshness_score": 0.0-1.0
}
` + fence,

	Consensus: `## Chain H: Multi-Agent Consensus

TASK: {task}

Synthesize findings across multiple perspectives.
Build consensus from diverse analytical approaches.

Output format:
` + fence + `json
{
  "chain": "H",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "consensus_points": [],
  "minority_views": []
}
` + fence,

	Streaming: `## Chain I: Streaming Early-Exit

TASK: {task}

Provide analysis with early-exit capability.
If high confidence (>0.85) reached early, indicate completion.

Output format:
` + fence + `json
{
  "chain": "I",
  "confidence": 0.0-1.0,
  "result": "your analysis",
  "early_exit": true/false,
  "exit_reason": "confidence_threshold" or "complete_analysis"
}
` + fence,
}

// Prompt renders the chain's prompt template with the task text substituted.
// An unknown id falls back to the Chain A template.
func Prompt(id ID, task string) string {
	tpl, ok := templates[id]
	if !ok {
		tpl = templates[SingleSource]
	}
	return strings.ReplaceAll(tpl, taskSlot, task)
}
