// Package archetype holds the five universal reasoning archetypes and
// synthesizes domain-specific expert personas from them.
//
// The archetype table is process-wide static configuration: loaded once,
// read-only for the process lifetime. A YAML registry file may override the
// built-in table; its schema is part of the external contract.
package archetype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchetype is returned when a persona is requested for an id
// outside the fixed five.
var ErrUnknownArchetype = errors.New("unknown archetype")

// ID identifies one of the five universal archetypes.
type ID string

const (
	Theoretical    ID = "ARC-TH"
	Adversarial    ID = "ARC-AD"
	Implementation ID = "ARC-IM"
	Strategic      ID = "ARC-ST"
	QualityAssure  ID = "ARC-QA"
)

// All lists the archetypes in declaration order; panel composition fills
// remaining slots in this order.
var All = []ID{Theoretical, Adversarial, Implementation, Strategic, QualityAssure}

// Definition is one archetype's static configuration.
type Definition struct {
	ID          ID                `yaml:"id"`
	Name        string            `yaml:"name"`
	PrimaryMode string            `yaml:"primary_mode"`
	Patterns    []string          `yaml:"cognitive_patterns"`
	Titles      map[string]string `yaml:"domain_titles"`
}

// Persona is a fully-specified expert brief synthesized from an archetype
// and a domain. Ephemeral; owned by the caller.
type Persona struct {
	ArchetypeID  ID       `yaml:"archetype_id" json:"archetype_id"`
	Domain       string   `yaml:"domain" json:"domain"`
	Title        string   `yaml:"title" json:"title"`
	Instructions string   `yaml:"instructions" json:"instructions"`
	Patterns     []string `yaml:"cognitive_patterns" json:"cognitive_patterns"`
}

// Registry is an immutable set of archetype definitions.
type Registry struct {
	order []ID
	defs  map[ID]Definition
}

// Builtin returns the compiled-in archetype table.
func Builtin() *Registry {
	return builtinRegistry
}

// IDs returns the archetype ids in table order.
func (r *Registry) IDs() []ID {
	return append([]ID(nil), r.order...)
}

// Get returns the definition for an id.
func (r *Registry) Get(id ID) (Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Synthesize produces a domain-specific persona for an archetype. The title
// comes from the archetype's per-domain map, falling back to its "default"
// entry for unknown domains. Rendering is deterministic.
func (r *Registry) Synthesize(id ID, domain, taskContext string) (Persona, error) {
	def, ok := r.defs[id]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %s", ErrUnknownArchetype, id)
	}

	title := def.Titles[domain]
	if title == "" {
		title = def.Titles["default"]
	}

	return Persona{
		ArchetypeID:  id,
		Domain:       domain,
		Title:        title,
		Instructions: renderInstructions(def, title, domain, taskContext),
		Patterns:     append([]string(nil), def.Patterns...),
	}, nil
}

// ComposePanel returns up to size archetype ids for a domain: required ids
// first, then remaining archetypes in table order until the size is met.
// Size is implicitly capped at the table size. The domain parameter is part
// of the contract for callers composing per-domain panels; composition order
// itself does not depend on it.
func (r *Registry) ComposePanel(domain string, size int, required []ID) []ID {
	_ = domain

	panel := make([]ID, 0, len(r.order))
	seen := make(map[ID]bool)
	for _, id := range required {
		if _, ok := r.defs[id]; !ok || seen[id] {
			continue
		}
		if len(panel) >= size {
			break
		}
		panel = append(panel, id)
		seen[id] = true
	}
	for _, id := range r.order {
		if len(panel) >= size {
			break
		}
		if !seen[id] {
			panel = append(panel, id)
			seen[id] = true
		}
	}
	return panel
}

func renderInstructions(def Definition, title, domain, taskContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s with deep expertise in %s analysis.\n\n", title, domain)
	fmt.Fprintf(&b, "## Your Analytical Approach\n")
	fmt.Fprintf(&b, "You employ %s methodology with these cognitive patterns:\n", def.PrimaryMode)
	for _, p := range def.Patterns {
		fmt.Fprintf(&b, "- %s\n", humanizePattern(p))
	}
	fmt.Fprintf(&b, "\n## Your Role\n")
	fmt.Fprintf(&b, "As the %s, your analysis should reflect:\n", title)
	fmt.Fprintf(&b, "- Deep domain expertise in %s\n", domain)
	fmt.Fprintf(&b, "- %s perspective on problems\n", def.Name)
	fmt.Fprintf(&b, "- Rigorous application of your cognitive patterns\n\n")
	fmt.Fprintf(&b, "## Task Context\n%s\n\n", taskContext)
	b.WriteString("Provide your expert analysis with a confidence score (0.0-1.0) and clear reasoning.")
	return b.String()
}

// humanizePattern turns a snake_case pattern tag into a title-cased phrase,
// e.g. "first_principles_decomposition" -> "First Principles Decomposition".
func humanizePattern(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
