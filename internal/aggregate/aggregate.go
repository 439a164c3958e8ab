// Package aggregate reduces parsed results into a single confidence-scored
// verdict under topology-selected reduction strategies, then blends chain
// and persona sub-aggregates.
package aggregate

import (
	"sort"
	"strings"

	"github.com/quorumlab/quorum/internal/model"
	"github.com/quorumlab/quorum/internal/result"
)

// PreviewLength bounds the per-result text carried on the verdict.
const PreviewLength = 500

// Majority-vote thresholds: a result is a "high" vote at or above
// highConfidence, and consensus requires the high subset to cover at least
// consensusRatio of all results.
const (
	highConfidence = 0.6
	consensusRatio = 0.6
	minVoteResults = 3
)

// Reduce collapses results into one verdict using the reduction strategy
// mapped to the topology. Empty input yields status no_results with
// confidence 0. The aggregator never fails: a partial result set (host-side
// failures upstream) still produces a best-effort verdict.
func Reduce(results []model.ParsedResult, topology model.Topology) model.Verdict {
	if len(results) == 0 {
		return model.Verdict{Status: model.StatusNoResults}
	}

	method := model.ReductionMethodFor(topology)
	switch method {
	case model.ReduceMajorityVote:
		return majorityVote(results)
	case model.ReduceBestOfN:
		return bestOfN(results)
	case model.ReduceElimination:
		return elimination(results)
	case model.ReduceLastResult:
		return lastResult(results)
	case model.ReduceChainRefinement, model.ReduceWeightedCombine:
		// Distinct labels, same arithmetic as the parallel default.
		v := confidenceWeighted(results)
		v.Method = method
		return v
	default:
		return confidenceWeighted(results)
	}
}

// confidenceWeighted computes Σ(confidence²)/Σ(confidence): a self-weighted
// average that amplifies already-high-confidence results relative to a plain
// mean. The representative result is the highest-confidence item's text.
func confidenceWeighted(results []model.ParsedResult) model.Verdict {
	var total float64
	for _, r := range results {
		total += r.Confidence
	}
	if total == 0 {
		return model.Verdict{
			Confidence: 0,
			Result:     results[0].Result,
			Method:     model.ReduceConfidenceWeighted,
			Status:     model.StatusZeroConfidence,
		}
	}

	var weighted float64
	for _, r := range results {
		weighted += r.Confidence * r.Confidence
	}
	best := maxByConfidence(results)

	return model.Verdict{
		Confidence: weighted / total,
		Result:     best.Result,
		Method:     model.ReduceConfidenceWeighted,
		Status:     model.StatusSuccess,
	}
}

// majorityVote partitions results into high-confidence votes and the rest.
// Fewer than minVoteResults results cannot vote and fall back to
// confidence-weighted averaging. A failed vote reports the fixed 0.5
// low-information confidence, not a computed value.
func majorityVote(results []model.ParsedResult) model.Verdict {
	if len(results) < minVoteResults {
		return Reduce(results, model.TopologyParallel)
	}

	var high []model.ParsedResult
	for _, r := range results {
		if r.Confidence >= highConfidence {
			high = append(high, r)
		}
	}

	if float64(len(high)) >= float64(len(results))*consensusRatio {
		var sum float64
		for _, r := range high {
			sum += r.Confidence
		}
		best := maxByConfidence(high)
		return model.Verdict{
			Confidence: sum / float64(len(high)),
			Result:     best.Result,
			Method:     model.ReduceMajorityVote,
			Status:     model.StatusConsensus,
			Votes:      len(high),
		}
	}

	return model.Verdict{
		Confidence: 0.5,
		Result:     results[0].Result,
		Method:     model.ReduceMajorityVote,
		Status:     model.StatusNoConsensus,
	}
}

func bestOfN(results []model.ParsedResult) model.Verdict {
	best := maxByConfidence(results)
	return model.Verdict{
		Confidence: best.Confidence,
		Result:     best.Result,
		Method:     model.ReduceBestOfN,
		Status:     model.StatusSuccess,
		WinnerID:   best.SourceID,
	}
}

func elimination(results []model.ParsedResult) model.Verdict {
	sorted := append([]model.ParsedResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	winner := sorted[0]
	return model.Verdict{
		Confidence: winner.Confidence,
		Result:     winner.Result,
		Method:     model.ReduceElimination,
		Status:     model.StatusSuccess,
		WinnerID:   winner.SourceID,
	}
}

func lastResult(results []model.ParsedResult) model.Verdict {
	last := results[len(results)-1]
	return model.Verdict{
		Confidence: last.Confidence,
		Result:     last.Result,
		Method:     model.ReduceLastResult,
		Status:     model.StatusSuccess,
	}
}

// maxByConfidence returns the first item with the maximum confidence.
func maxByConfidence(results []model.ParsedResult) model.ParsedResult {
	best := results[0]
	for _, r := range results[1:] {
		if r.Confidence > best.Confidence {
			best = r
		}
	}
	return best
}

// AggregateOutputs is the top-level aggregation over raw host outputs. It
// parses each output, separates chain results from persona results by the
// archetype marker on the source label, reduces the chain results under the
// plan's topology, and blends in the persona mean as
// ChainWeight*chain + PersonaWeight*persona. With no chain results at all,
// the verdict confidence is simply the persona mean.
func AggregateOutputs(outputs []model.RawOutput, plan model.ExecutionPlan) model.Verdict {
	var chainResults, personaResults []model.ParsedResult

	for _, out := range outputs {
		label := out.Description
		if label == "" {
			label = out.SourceID
		}
		parsed := result.Parse(out.Output, label)

		if isPersonaSource(label, out.Output) {
			personaResults = append(personaResults, parsed)
		} else {
			chainResults = append(chainResults, parsed)
		}
	}

	var verdict model.Verdict
	if len(chainResults) > 0 {
		verdict = Reduce(chainResults, plan.Topology)
	} else {
		verdict = model.Verdict{Status: model.StatusNoChainResults}
	}

	if len(personaResults) > 0 {
		var sum float64
		for _, r := range personaResults {
			sum += r.Confidence
		}
		personaMean := sum / float64(len(personaResults))
		if len(chainResults) > 0 {
			verdict.Confidence = verdict.Confidence*model.ChainWeight + personaMean*model.PersonaWeight
		} else {
			verdict.Confidence = personaMean
		}
	}

	verdict.ChainResults = previews(chainResults)
	verdict.PersonaResults = previews(personaResults)
	verdict.ChainCount = len(chainResults)
	verdict.PersonaCount = len(personaResults)
	verdict.TotalResults = len(outputs)
	verdict.Topology = plan.Topology
	verdict.PrecisionLevel = plan.PrecisionLevel
	if verdict.Method == "" {
		// No chain results to reduce; report the label the plan declared.
		verdict.Method = model.ReductionMethodFor(plan.Topology)
	}

	return verdict
}

// isPersonaSource reports whether a result came from an archetype persona
// rather than a verification chain, by the archetype marker convention.
func isPersonaSource(label, raw string) bool {
	return strings.Contains(strings.ToLower(label), "archetype") ||
		strings.Contains(label, "ARC-") ||
		strings.Contains(raw, "ARC-")
}

func previews(results []model.ParsedResult) []model.ResultPreview {
	out := make([]model.ResultPreview, 0, len(results))
	for _, r := range results {
		text := r.Result
		if len(text) > PreviewLength {
			text = text[:PreviewLength]
		}
		out = append(out, model.ResultPreview{
			ID:         r.SourceID,
			Confidence: r.Confidence,
			Result:     text,
		})
	}
	return out
}
