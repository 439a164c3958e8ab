package chain

import "github.com/quorumlab/quorum/internal/model"

// Per-level chain sets. Levels 1-3 have fixed memberships; note that level 3
// selects D (adversarial) instead of C, an adversarial-first policy at that
// level, not a contiguous prefix. Levels 4 and 5 take the first six and all
// nine chains in declaration order.
var precisionSets = map[model.PrecisionLevel][]ID{
	1: {SingleSource},
	2: {SingleSource, DualSource},
	3: {SingleSource, DualSource, Adversarial},
}

// ForPrecision returns the ordered chain set for a precision level. Levels
// outside 1-5 are treated as level 5 above and level 1 below.
func ForPrecision(level model.PrecisionLevel) []ID {
	if level >= 5 {
		return append([]ID(nil), All...)
	}
	if level == 4 {
		return append([]ID(nil), All[:6]...)
	}
	if set, ok := precisionSets[level]; ok {
		return append([]ID(nil), set...)
	}
	return append([]ID(nil), precisionSets[1]...)
}
