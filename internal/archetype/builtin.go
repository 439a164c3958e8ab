package archetype

// The built-in archetype table. Versioned contract: the five ids, their
// primary modes, pattern lists, and per-domain title maps (with the
// "default" fallback entry) are stable across releases.
var builtinDefs = []Definition{
	{
		ID:          Theoretical,
		Name:        "Theoretical",
		PrimaryMode: "constructive_analysis",
		Patterns: []string{
			"first_principles_decomposition",
			"formal_verification",
			"completeness_checking",
			"invariant_identification",
			"proof_construction",
		},
		Titles: map[string]string{
			"security": "Security Researcher",
			"crypto":   "Cryptographer",
			"software": "Software Architect",
			"legal":    "Legal Theorist",
			"default":  "Domain Theorist",
		},
	},
	{
		ID:          Adversarial,
		Name:        "Adversarial",
		PrimaryMode: "destructive_analysis",
		Patterns: []string{
			"attack_surface_mapping",
			"assumption_violation",
			"edge_case_exploitation",
			"failure_mode_analysis",
			"threat_modeling",
		},
		Titles: map[string]string{
			"security": "Red Team Operator",
			"crypto":   "Cryptanalyst",
			"software": "Bug Hunter",
			"legal":    "Opposing Counsel",
			"default":  "Adversarial Analyst",
		},
	},
	{
		ID:          Implementation,
		Name:        "Implementation",
		PrimaryMode: "constructive_engineering",
		Patterns: []string{
			"practical_constraints",
			"optimization_focus",
			"scalability_analysis",
			"integration_planning",
			"resource_estimation",
		},
		Titles: map[string]string{
			"security": "Security Engineer",
			"crypto":   "Cryptographic Engineer",
			"software": "Senior Developer",
			"legal":    "Compliance Officer",
			"default":  "Implementation Specialist",
		},
	},
	{
		ID:          Strategic,
		Name:        "Strategic",
		PrimaryMode: "holistic_synthesis",
		Patterns: []string{
			"stakeholder_analysis",
			"risk_assessment",
			"timeline_planning",
			"trade_off_evaluation",
			"big_picture_integration",
		},
		Titles: map[string]string{
			"security": "Security Strategist",
			"crypto":   "Protocol Architect",
			"software": "Technical Lead",
			"legal":    "General Counsel",
			"default":  "Strategic Planner",
		},
	},
	{
		ID:          QualityAssure,
		Name:        "Quality Assurance",
		PrimaryMode: "verification_validation",
		Patterns: []string{
			"test_coverage_analysis",
			"regression_detection",
			"compliance_verification",
			"documentation_review",
			"acceptance_criteria",
		},
		Titles: map[string]string{
			"security": "Security Auditor",
			"crypto":   "Protocol Auditor",
			"software": "QA Engineer",
			"legal":    "Legal Reviewer",
			"default":  "Quality Analyst",
		},
	},
}

var builtinRegistry = newRegistry(builtinDefs)

func newRegistry(defs []Definition) *Registry {
	r := &Registry{defs: make(map[ID]Definition, len(defs))}
	for _, d := range defs {
		r.order = append(r.order, d.ID)
		r.defs[d.ID] = d
	}
	return r
}
