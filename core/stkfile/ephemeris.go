// core/stkfile/ephemeris.go
package stkfile

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// EphemerisFormat names an ephemeris data layout.
type EphemerisFormat string

const (
	EphemerisTimePos    EphemerisFormat = "EphemerisTimePos"
	EphemerisTimePosVel EphemerisFormat = "EphemerisTimePosVel"
)

var ephemerisArity = map[EphemerisFormat]int{
	EphemerisTimePos:    3,
	EphemerisTimePosVel: 6,
}

// ParseEphemerisFormat resolves a case-insensitive ephemeris format tag.
func ParseEphemerisFormat(s string) (EphemerisFormat, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for f := range ephemerisArity {
		if strings.ToLower(string(f)) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: ephemeris format %q is not a valid choice; valid choices: EphemerisTimePos, EphemerisTimePosVel",
		ErrUnsupportedFormat, s)
}

func renderEphemeris(f EphemerisFormat, s FileSpec, times []time.Time, rows [][]float64) (*doc, error) {
	want, ok := ephemerisArity[f]
	if !ok {
		return nil, fmt.Errorf("%w: ephemeris format %q is not recognized", ErrUnsupportedFormat, string(f))
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	if s.Sequence != 0 {
		return nil, fmt.Errorf("%w: ephemeris files do not take a rotation sequence", ErrUnsupportedFormat)
	}
	r, err := s.renderer()
	if err != nil {
		return nil, err
	}
	if err := validateTimes(times); err != nil {
		return nil, err
	}
	if err := validateShape(times, rows, want); err != nil {
		return nil, err
	}

	prec := s.Precision
	if prec <= 0 {
		prec = genericPrecision
	}
	d := &doc{}
	d.header("Ephemeris", &s)
	d.keyword("NumberOfEphemerisPoints", fmt.Sprint(len(times)))
	d.dataRows(string(f), r, times, rows, prec)
	d.closeAll()
	return d, nil
}

// WriteEphemeris validates the series and writes a complete ephemeris (.e)
// document to w. Ephemeris rows carry no drop-eligible checks; every
// failure is structural.
func WriteEphemeris(w io.Writer, f EphemerisFormat, s FileSpec, times []time.Time, rows [][]float64) error {
	d, err := renderEphemeris(f, s, times, rows)
	if err != nil {
		return err
	}
	return d.emit(w)
}

// WriteEphemerisFile is the path form of WriteEphemeris.
func WriteEphemerisFile(path string, f EphemerisFormat, s FileSpec, times []time.Time, rows [][]float64) error {
	d, err := renderEphemeris(f, s, times, rows)
	if err != nil {
		return err
	}
	return d.emitFile(path)
}
