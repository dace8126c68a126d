// core/stkfile/attitude.go
package stkfile

import (
	"fmt"
	"io"
	"time"

	"stkfiles-core/attitude"
)

// Per-file-type default float precision: quaternion components carry more
// digits than angle or vector fields.
const (
	quatPrecision    = 9
	genericPrecision = 6
)

func precisionFor(s *FileSpec) int {
	if s.Precision > 0 {
		return s.Precision
	}
	if s.Format.IsQuaternion() {
		return quatPrecision
	}
	return genericPrecision
}

// renderAttitude validates and renders a complete attitude-style document.
// top is the outer section keyword (Attitude or SensorPointing).
func renderAttitude(top string, s FileSpec, times []time.Time, rows [][]float64) (*doc, []RowWarning, error) {
	if s.Format == "" || s.Format.Arity() == 0 {
		return nil, nil, fmt.Errorf("%w: attitude format %q is not recognized", ErrUnsupportedFormat, string(s.Format))
	}
	if top != sensorPointingSection && s.Format == attitude.AzElAngles {
		return nil, nil, fmt.Errorf("%w: format %q is valid for sensor pointing files only", ErrUnsupportedFormat, s.Format)
	}
	if err := s.normalize(); err != nil {
		return nil, nil, err
	}
	if err := s.Format.ValidateSequence(s.Sequence); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	r, err := s.renderer()
	if err != nil {
		return nil, nil, err
	}
	if err := validateTimes(times); err != nil {
		return nil, nil, err
	}
	if err := validateShape(times, rows, s.Format.Arity()); err != nil {
		return nil, nil, err
	}
	times, rows, warns, err := filterRows(times, rows, s.Strict, func(row []float64) string {
		return s.Format.CheckRow(row, s.QuatTolerance)
	})
	if err != nil {
		return nil, nil, err
	}

	d := &doc{}
	d.header(top, &s)
	d.dataRows("AttitudeTime"+string(s.Format), r, times, rows, precisionFor(&s))
	d.closeAll()
	return d, warns, nil
}

// WriteAttitude validates the series and writes a complete attitude (.a)
// document to w. All validation happens before any byte is written; dropped
// rows are reported through the returned warnings.
func WriteAttitude(w io.Writer, s FileSpec, times []time.Time, rows [][]float64) ([]RowWarning, error) {
	d, warns, err := renderAttitude("Attitude", s, times, rows)
	if err != nil {
		return nil, err
	}
	return warns, d.emit(w)
}

// WriteAttitudeFile is the path form of WriteAttitude. The destination
// either appears fully written or not at all.
func WriteAttitudeFile(path string, s FileSpec, times []time.Time, rows [][]float64) ([]RowWarning, error) {
	d, warns, err := renderAttitude("Attitude", s, times, rows)
	if err != nil {
		return nil, err
	}
	return warns, d.emitFile(path)
}
