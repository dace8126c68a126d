// core/attitude/validate.go
package attitude

import (
	"fmt"
	"math"
)

// Angle bounds accepted by STK for Euler/YPR/AzEl fields, degrees.
const (
	MinAngle = -180.0
	MaxAngle = 360.0
)

// DefaultQuatTolerance is the allowed deviation of a quaternion norm from 1.
const DefaultQuatTolerance = 1e-3

var eulerSequences = map[int]bool{
	121: true, 123: true, 131: true, 132: true,
	212: true, 213: true, 231: true, 232: true,
	312: true, 313: true, 321: true, 323: true,
}

var yprSequences = map[int]bool{
	123: true, 132: true, 213: true, 231: true, 312: true, 321: true,
}

// ValidateSequence checks a rotation sequence against the set f accepts.
// seq == 0 means "not provided".
func (f Format) ValidateSequence(seq int) error {
	switch f {
	case EulerAngles, EulerAnglesAndRates:
		if seq == 0 {
			return fmt.Errorf("format %q requires a rotation sequence", f)
		}
		if !eulerSequences[seq] {
			return fmt.Errorf("rotation sequence %d is not valid for format %q", seq, f)
		}
	case YPRAngles, YPRAnglesAndRates:
		if seq == 0 {
			return fmt.Errorf("format %q requires a rotation sequence", f)
		}
		if !yprSequences[seq] {
			return fmt.Errorf("rotation sequence %d is not valid for format %q", seq, f)
		}
	default:
		if seq != 0 {
			return fmt.Errorf("format %q does not take a rotation sequence", f)
		}
	}
	return nil
}

// CheckRow reports why a row is numerically invalid for f, or "" if the row
// is acceptable. Invalid rows are drop-eligible, not structural failures.
// The row is assumed to already have the right arity.
func (f Format) CheckRow(row []float64, quatTol float64) string {
	if f.IsQuaternion() {
		if quatTol <= 0 {
			quatTol = DefaultQuatTolerance
		}
		n := math.Sqrt(row[0]*row[0] + row[1]*row[1] + row[2]*row[2] + row[3]*row[3])
		if math.Abs(n-1) > quatTol {
			return fmt.Sprintf("quaternion norm %.6f deviates from 1 by more than %g", n, quatTol)
		}
	}
	for i := 0; i < angleFields[f]; i++ {
		if row[i] < MinAngle || row[i] > MaxAngle {
			return fmt.Sprintf("angle %g outside [%g, %g]", row[i], MinAngle, MaxAngle)
		}
	}
	return ""
}
