// core/stkfile/spec.go
package stkfile

import (
	"fmt"
	"strings"
	"time"

	"stkfiles-core/attitude"
	"stkfiles-core/stktime"
)

// Closed keyword choices. Matching is case-insensitive; the canonical
// spelling is what gets written to the file.
var (
	messageLevels  = []string{"Errors", "Warnings", "Verbose"}
	centralBodies  = []string{"Earth", "Moon"}
	coordinateAxes = []string{"Fixed", "J2000", "ICRF", "Inertial", "TrueOfDate", "MeanOfDate", "TEMEOfDate"}
	interpMethods  = []string{"Lagrange", "Hermite"}

	// axes variants whose meaning depends on a reference epoch
	epochAxes = map[string]bool{"TrueOfDate": true, "MeanOfDate": true, "TEMEOfDate": true}
)

// choice resolves value against a closed keyword set. Empty is allowed and
// stays empty; unknown values report the full set.
func choice(value string, allowed []string) (string, error) {
	if value == "" {
		return "", nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not a valid choice; valid choices: %s",
		ErrUnsupportedFormat, value, strings.Join(allowed, ", "))
}

// FileSpec is the per-call configuration for one output file. It is built
// from caller arguments, consumed by a single write, and never shared.
type FileSpec struct {
	// Timestamp encoding. EpSec requires ScenarioEpoch; ISO-YMD forbids it.
	TimeFormat    stktime.Format
	ScenarioEpoch time.Time

	// Optional header keywords.
	MessageLevel        string
	CentralBody         string
	CoordinateAxes      string
	CoordinateAxesEpoch time.Time
	InterpolationMethod string
	InterpolationOrder  int

	// Attitude / sensor pointing representation.
	Format   attitude.Format
	Sequence int

	// Numeric rendering; 0 means the per-file-type default.
	Precision int

	// Strict turns drop-eligible rows into hard failures.
	Strict bool

	// QuatTolerance overrides the default unit-norm tolerance when > 0.
	QuatTolerance float64
}

// normalize canonicalizes keyword fields and checks cross-field rules
// shared by every file type.
func (s *FileSpec) normalize() error {
	if s.TimeFormat == "" {
		s.TimeFormat = stktime.ISOYMD
	}
	var err error
	if s.MessageLevel, err = choice(s.MessageLevel, messageLevels); err != nil {
		return err
	}
	if s.CentralBody, err = choice(s.CentralBody, centralBodies); err != nil {
		return err
	}
	if s.CoordinateAxes, err = choice(s.CoordinateAxes, coordinateAxes); err != nil {
		return err
	}
	if s.InterpolationMethod, err = choice(s.InterpolationMethod, interpMethods); err != nil {
		return err
	}
	if epochAxes[s.CoordinateAxes] && s.CoordinateAxesEpoch.IsZero() {
		return fmt.Errorf("%w: coordinate axes %q require a coordinate axes epoch",
			ErrUnsupportedFormat, s.CoordinateAxes)
	}
	if s.InterpolationOrder < 0 {
		return fmt.Errorf("%w: interpolation order must be >= 0", ErrUnsupportedFormat)
	}
	return nil
}

// renderer builds the row time renderer, mapping epoch misuse onto the
// unsupported-format failure class.
func (s *FileSpec) renderer() (stktime.Renderer, error) {
	r, err := stktime.NewRenderer(s.TimeFormat, s.ScenarioEpoch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return r, nil
}
