// Package result extracts a confidence value and a result payload from raw
// agent reports. Parsing is fail-soft by design: malformed input degrades to
// the default confidence with the raw text as the result, never an error.
package result

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/quorumlab/quorum/internal/model"
)

// DefaultConfidence is assumed when a report carries no usable confidence.
const DefaultConfidence = 0.5

var (
	fencedBlockRegex = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	confidenceRegex  = regexp.MustCompile(`confidence[:\s]+([0-9.]+)`)
)

// Parse extracts a ParsedResult from one raw textual report.
//
// Extraction order: a fenced ```json block is decoded first; its
// "confidence" and "result" fields apply when present. Independently, a
// case-insensitive "confidence: <number>" label anywhere in the raw text
// overrides the block-derived confidence; values above 1 are read as
// percentages. The final confidence is clamped to [0,1]. Decode failures
// are swallowed.
func Parse(raw, sourceID string) model.ParsedResult {
	confidence := DefaultConfidence
	resultText := raw
	var metadata map[string]any

	if m := fencedBlockRegex.FindStringSubmatch(raw); m != nil {
		var payload map[string]any
		if err := json.Unmarshal([]byte(m[1]), &payload); err == nil {
			if c, ok := numericField(payload, "confidence"); ok {
				confidence = c
			}
			if s, ok := payload["result"].(string); ok {
				resultText = s
			}
			metadata = payload
		}
	}

	if m := confidenceRegex.FindStringSubmatch(strings.ToLower(raw)); m != nil {
		if c, err := strconv.ParseFloat(m[1], 64); err == nil {
			if c > 1 {
				c = c / 100
			}
			confidence = c
		}
	}

	return model.ParsedResult{
		SourceID:   sourceID,
		Confidence: clamp01(confidence),
		Result:     resultText,
		Metadata:   metadata,
	}
}

func numericField(payload map[string]any, key string) (float64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
