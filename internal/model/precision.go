package model

import "fmt"

// PrecisionLevel controls verification thoroughness. Higher levels select
// monotonically more verification chains (1→1, 2→2, 3→3, 4→6, 5→9).
type PrecisionLevel int

const (
	PrecisionQuick      PrecisionLevel = 1
	PrecisionStandard   PrecisionLevel = 2
	PrecisionImportant  PrecisionLevel = 3
	PrecisionHighStakes PrecisionLevel = 4
	PrecisionMaximum    PrecisionLevel = 5

	DefaultPrecision = PrecisionImportant
)

func (p PrecisionLevel) Valid() bool {
	return p >= 1 && p <= 5
}

func ParsePrecision(n int) (PrecisionLevel, error) {
	p := PrecisionLevel(n)
	if !p.Valid() {
		return 0, fmt.Errorf("precision level out of range 1-5: %d", n)
	}
	return p, nil
}
