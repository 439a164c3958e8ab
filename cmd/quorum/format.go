package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/quorumlab/quorum/internal/domain"
	"github.com/quorumlab/quorum/internal/model"
)

const rule = "────────────────────────────────────────────────────────────"

func formatPlan(p model.ExecutionPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nEXECUTION PLAN\n%s\n", rule)
	fmt.Fprintf(&b, "Task:       %s\n", p.Task)
	fmt.Fprintf(&b, "Domain:     %s\n", p.Domain)
	fmt.Fprintf(&b, "Precision:  PL%d\n", p.PrecisionLevel)
	fmt.Fprintf(&b, "Topology:   %s\n", p.Topology)
	fmt.Fprintf(&b, "Mode:       %s\n", p.ExecutionMode)
	fmt.Fprintf(&b, "Agents:     %d\n", p.TotalAgents)

	fmt.Fprintf(&b, "\nVERIFICATION CHAINS\n%s\n", rule)
	for _, item := range p.ChainItems {
		marker := "(ordered)"
		if item.Independent {
			marker = "(independent)"
		}
		fmt.Fprintf(&b, "  • %s %s\n", item.Description, marker)
	}

	if len(p.PersonaItems) > 0 {
		fmt.Fprintf(&b, "\nEXPERT PANEL\n%s\n", rule)
		for _, item := range p.PersonaItems {
			fmt.Fprintf(&b, "  • %s\n", item.Description)
		}
	}

	fmt.Fprintf(&b, "\nAGGREGATION\n%s\n", rule)
	fmt.Fprintf(&b, "  Method:         %s\n", p.Aggregation.Method)
	fmt.Fprintf(&b, "  Chain weight:   %.1f\n", p.Aggregation.ChainWeight)
	fmt.Fprintf(&b, "  Persona weight: %.1f\n", p.Aggregation.PersonaWeight)
	b.WriteString("\n")

	return b.String()
}

func formatDomain(d domain.Domain) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Domain:    %s (%.0f%% confidence)\n", d.Name, d.Confidence*100)
	fmt.Fprintf(&b, "Topology:  %s\n", d.Topology)
	fmt.Fprintf(&b, "Precision: PL%d\n", d.Precision)
	ids := make([]string, 0, len(d.Archetypes))
	for _, id := range d.Archetypes {
		ids = append(ids, string(id))
	}
	fmt.Fprintf(&b, "Archetypes: %s\n", strings.Join(ids, ", "))
	if len(d.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords:  %s\n", strings.Join(d.Keywords, ", "))
	}
	return b.String()
}

func formatVerdict(v model.Verdict) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nVERDICT\n%s\n", rule)
	fmt.Fprintf(&b, "Confidence: %.0f%%\n", v.Confidence*100)
	fmt.Fprintf(&b, "Status:     %s\n", v.Status)
	fmt.Fprintf(&b, "Method:     %s\n", v.Method)
	if v.WinnerID != "" {
		fmt.Fprintf(&b, "Winner:     %s\n", v.WinnerID)
	}
	if v.Votes > 0 {
		fmt.Fprintf(&b, "Votes:      %d\n", v.Votes)
	}
	fmt.Fprintf(&b, "Results:    %d chain, %d persona (%d total)\n", v.ChainCount, v.PersonaCount, v.TotalResults)

	if v.Result != "" {
		preview := v.Result
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", rule, preview)
	}
	b.WriteString("\n")

	return b.String()
}

func joinKeywords(keywords []string, max int) string {
	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return strings.Join(keywords, ", ")
}

func newStderrLogger() *log.Logger {
	return log.New(os.Stderr, "quorum ", log.LstdFlags)
}
