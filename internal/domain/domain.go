// Package domain classifies free-text task descriptions into one of six
// fixed domains and recommends a coordination topology, precision level, and
// archetype set for each.
package domain

import (
	"sort"
	"strings"

	"github.com/quorumlab/quorum/internal/archetype"
	"github.com/quorumlab/quorum/internal/model"
)

// Domain is the outcome of one classification call. Immutable once produced.
type Domain struct {
	Name       string
	Confidence float64
	Keywords   []string
	Archetypes []archetype.ID
	Topology   model.Topology
	Precision  model.PrecisionLevel
}

const DefaultDomain = "general"

// signature binds a domain name to its keyword set and recommended
// configuration. Slice order is load-bearing: ties between equal match
// ratios keep the first-seen domain.
type signature struct {
	name       string
	keywords   []string
	archetypes []archetype.ID
	topology   model.Topology
	precision  model.PrecisionLevel
}

var signatures = []signature{
	{
		name: "security",
		keywords: []string{
			"security", "vulnerability", "exploit", "attack", "defense",
			"authentication", "authorization", "audit", "pentest", "threat",
			"malware", "injection", "xss", "sqli", "csrf", "ssrf", "rce",
		},
		archetypes: []archetype.ID{archetype.Adversarial, archetype.QualityAssure, archetype.Implementation, archetype.Theoretical, archetype.Strategic},
		topology:   model.TopologyHivemind,
		precision:  5,
	},
	{
		name: "crypto",
		keywords: []string{
			"cryptography", "encryption", "decryption", "cipher", "hash",
			"signature", "certificate", "key", "aes", "rsa", "elliptic",
			"post-quantum", "zkp", "commitment", "protocol",
		},
		archetypes: []archetype.ID{archetype.Theoretical, archetype.Adversarial, archetype.Implementation, archetype.QualityAssure, archetype.Strategic},
		topology:   model.TopologyHivemind,
		precision:  5,
	},
	{
		name: "systems",
		keywords: []string{
			"architecture", "design", "scalability", "performance",
			"distributed", "microservices", "infrastructure", "devops",
			"kubernetes", "docker", "cloud", "aws", "azure", "gcp",
		},
		archetypes: []archetype.ID{archetype.Strategic, archetype.Implementation, archetype.QualityAssure, archetype.Theoretical, archetype.Adversarial},
		topology:   model.TopologyParallel,
		precision:  3,
	},
	{
		name: "development",
		keywords: []string{
			"code", "programming", "function", "class", "module",
			"refactor", "test", "debug", "optimize", "implement",
			"api", "sdk", "library", "framework",
		},
		archetypes: []archetype.ID{archetype.Implementation, archetype.QualityAssure, archetype.Theoretical, archetype.Strategic, archetype.Adversarial},
		topology:   model.TopologyParallel,
		precision:  3,
	},
	{
		name: "research",
		keywords: []string{
			"research", "analyze", "investigate", "compare", "evaluate",
			"study", "survey", "literature", "state-of-art", "trend",
		},
		archetypes: []archetype.ID{archetype.Theoretical, archetype.Strategic, archetype.Implementation, archetype.QualityAssure, archetype.Adversarial},
		topology:   model.TopologySwarm,
		precision:  4,
	},
	{
		name: "legal",
		keywords: []string{
			"compliance", "regulation", "gdpr", "hipaa", "pci", "sox",
			"legal", "policy", "governance", "audit", "standard",
		},
		archetypes: []archetype.ID{archetype.QualityAssure, archetype.Theoretical, archetype.Strategic, archetype.Implementation, archetype.Adversarial},
		topology:   model.TopologyHivemind,
		precision:  4,
	},
}

// override pairs a task keyword with the topology/precision it forces.
// Evaluated in declaration order; the first match wins, so this is a slice,
// not a map.
type override struct {
	keyword   string
	topology  model.Topology
	precision model.PrecisionLevel
}

var overrides = []override{
	{"quick", model.TopologySequential, 1},
	{"simple", model.TopologySequential, 1},
	{"fast", model.TopologySequential, 2},
	{"thorough", model.TopologySwarm, 5},
	{"comprehensive", model.TopologySwarm, 5},
	{"max", model.TopologySwarm, 5},
	{"compare", model.TopologyTournament, 3},
	{"evaluate", model.TopologyTournament, 3},
	{"consensus", model.TopologyHivemind, 4},
	{"vote", model.TopologyHivemind, 4},
}

// defaultArchetypes is the recommendation when no domain matches.
var defaultArchetypes = []archetype.ID{
	archetype.Theoretical, archetype.Adversarial, archetype.Implementation,
	archetype.Strategic, archetype.QualityAssure,
}

// Classify maps a task description to its best-matching domain. Match ratio
// is |matched keywords| / |domain keyword set|; only a strictly higher ratio
// displaces the current best, so ties keep the first-seen domain. A domain
// with zero matches is never selected. Topology/precision come from the
// first matching override keyword; if none fired and a domain matched, the
// domain's own recommendation is adopted instead of the parallel/3 default.
func Classify(task string) Domain {
	taskLower := strings.ToLower(task)

	var best *signature
	bestScore := 0.0
	var bestKeywords []string

	for i := range signatures {
		sig := &signatures[i]
		matched := matchKeywords(taskLower, sig.keywords)
		if len(matched) == 0 {
			continue
		}
		score := float64(len(matched)) / float64(len(sig.keywords))
		if score > bestScore {
			bestScore = score
			best = sig
			bestKeywords = matched
		}
	}

	topology := model.TopologyParallel
	precision := model.DefaultPrecision
	overrideFired := false
	for _, ov := range overrides {
		if strings.Contains(taskLower, ov.keyword) {
			topology = ov.topology
			precision = ov.precision
			overrideFired = true
			break
		}
	}

	if best != nil {
		if !overrideFired {
			topology = best.topology
			precision = best.precision
		}
		return Domain{
			Name:       best.name,
			Confidence: bestScore,
			Keywords:   bestKeywords,
			Archetypes: append([]archetype.ID(nil), best.archetypes...),
			Topology:   topology,
			Precision:  precision,
		}
	}

	return Domain{
		Name:       DefaultDomain,
		Confidence: 0,
		Keywords:   nil,
		Archetypes: append([]archetype.ID(nil), defaultArchetypes...),
		Topology:   topology,
		Precision:  precision,
	}
}

// ClassifyAll returns every domain with a nonzero match ratio, sorted
// descending by ratio, for callers wanting full visibility rather than the
// single best. Each entry carries the domain's own recommended topology and
// precision (no override table applied).
func ClassifyAll(task string) []Domain {
	taskLower := strings.ToLower(task)

	var domains []Domain
	for i := range signatures {
		sig := &signatures[i]
		matched := matchKeywords(taskLower, sig.keywords)
		if len(matched) == 0 {
			continue
		}
		domains = append(domains, Domain{
			Name:       sig.name,
			Confidence: float64(len(matched)) / float64(len(sig.keywords)),
			Keywords:   matched,
			Archetypes: append([]archetype.ID(nil), sig.archetypes...),
			Topology:   sig.topology,
			Precision:  sig.precision,
		})
	}

	sort.SliceStable(domains, func(i, j int) bool {
		return domains[i].Confidence > domains[j].Confidence
	})
	return domains
}

func matchKeywords(taskLower string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(taskLower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
