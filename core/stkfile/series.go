// core/stkfile/series.go
package stkfile

import (
	"fmt"
	"time"

	"stkfiles-core/stktime"
)

// validateTimes enforces strictly increasing timestamps.
func validateTimes(times []time.Time) error {
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return fmt.Errorf("%w: timestamp %d (%s) is not after its predecessor",
				ErrInvalidTimeOrder, i, stktime.ISO(times[i]))
		}
	}
	return nil
}

// validateShape enforces one row per timestamp and a fixed field count.
func validateShape(times []time.Time, rows [][]float64, want int) error {
	if len(rows) != len(times) {
		return fmt.Errorf("%w: %d timestamps but %d data rows",
			ErrShapeMismatch, len(times), len(rows))
	}
	for i, row := range rows {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has %d fields, want %d",
				ErrShapeMismatch, i, len(row), want)
		}
	}
	return nil
}

// filterRows applies a per-row numeric check, dropping offenders (lenient)
// or failing on the first offender (strict). The input slices are not
// mutated; survivors are returned in order.
func filterRows(
	times []time.Time,
	rows [][]float64,
	strict bool,
	check func(row []float64) string,
) ([]time.Time, [][]float64, []RowWarning, error) {
	var warns []RowWarning
	keptT := make([]time.Time, 0, len(times))
	keptR := make([][]float64, 0, len(rows))
	for i, row := range rows {
		if reason := check(row); reason != "" {
			if strict {
				return nil, nil, nil, fmt.Errorf("%w: row %d: %s", ErrShapeMismatch, i, reason)
			}
			warns = append(warns, RowWarning{Index: i, Reason: reason})
			continue
		}
		keptT = append(keptT, times[i])
		keptR = append(keptR, row)
	}
	return keptT, keptR, warns, nil
}
