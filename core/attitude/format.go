// core/attitude/format.go
package attitude

import (
	"fmt"
	"sort"
	"strings"
)

// Format names an attitude representation variant. Each variant fixes the
// per-row field count and which numeric checks apply.
type Format string

const (
	Quaternions         Format = "Quaternions"
	QuatScalarFirst     Format = "QuatScalarFirst"
	EulerAngles         Format = "EulerAngles"
	EulerAnglesAndRates Format = "EulerAnglesAndRates"
	YPRAngles           Format = "YPRAngles"
	YPRAnglesAndRates   Format = "YPRAnglesAndRates"
	DCM                 Format = "DCM"
	ECFVector           Format = "ECFVector"
	ECIVector           Format = "ECIVector"

	// AzElAngles is accepted by sensor pointing files only.
	AzElAngles Format = "AzElAngles"
)

// arity maps each variant to its per-row field count.
var arity = map[Format]int{
	Quaternions:         4,
	QuatScalarFirst:     4,
	EulerAngles:         3,
	EulerAnglesAndRates: 6,
	YPRAngles:           3,
	YPRAnglesAndRates:   6,
	DCM:                 9,
	ECFVector:           3,
	ECIVector:           3,
	AzElAngles:          2,
}

// angleFields gives the number of leading fields bounds-checked as angles.
var angleFields = map[Format]int{
	EulerAngles: 3,
	YPRAngles:   3,
	AzElAngles:  2,
}

// ParseFormat resolves a case-insensitive representation tag.
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for f := range arity {
		if strings.ToLower(string(f)) == key {
			return f, nil
		}
	}
	names := make([]string, 0, len(arity))
	for f := range arity {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return "", fmt.Errorf("attitude format %q is not a valid choice; valid choices: %s",
		s, strings.Join(names, ", "))
}

// Arity returns the per-row field count for f, or 0 for an unknown format.
func (f Format) Arity() int { return arity[f] }

func (f Format) IsQuaternion() bool {
	return f == Quaternions || f == QuatScalarFirst
}

// NeedsSequence reports whether f requires a rotation sequence keyword.
func (f Format) NeedsSequence() bool {
	switch f {
	case EulerAngles, EulerAnglesAndRates, YPRAngles, YPRAnglesAndRates:
		return true
	}
	return false
}
