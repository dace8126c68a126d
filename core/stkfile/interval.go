// core/stkfile/interval.go
package stkfile

import (
	"fmt"
	"io"
	"time"

	"stkfiles-core/stktime"
)

// Interval is one (start, end) pair with an optional annotation carried
// through to the data line.
type Interval struct {
	Start time.Time
	End   time.Time
	Data  string
}

func validateIntervals(intervals []Interval) error {
	for i, iv := range intervals {
		if !iv.End.After(iv.Start) {
			return fmt.Errorf("%w: interval %d end (%s) is not after its start (%s)",
				ErrInvalidTimeOrder, i, stktime.ISO(iv.End), stktime.ISO(iv.Start))
		}
	}
	return nil
}

func renderIntervals(s FileSpec, intervals []Interval) (*doc, error) {
	if err := s.normalize(); err != nil {
		return nil, err
	}
	r, err := s.renderer()
	if err != nil {
		return nil, err
	}
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}

	d := &doc{}
	d.header("IntervalList", &s)
	d.begin("Intervals")
	for _, iv := range intervals {
		line := r.Render(iv.Start) + " " + r.Render(iv.End)
		if iv.Data != "" {
			line += " " + iv.Data
		}
		d.line(line)
	}
	d.closeAll()
	return d, nil
}

// WriteIntervals writes a complete interval list (.int) document to w.
func WriteIntervals(w io.Writer, s FileSpec, intervals []Interval) error {
	d, err := renderIntervals(s, intervals)
	if err != nil {
		return err
	}
	return d.emit(w)
}

// WriteIntervalFile is the path form of WriteIntervals.
func WriteIntervalFile(path string, s FileSpec, intervals []Interval) error {
	d, err := renderIntervals(s, intervals)
	if err != nil {
		return err
	}
	return d.emitFile(path)
}
