// internal/parseline/parseline.go
package parseline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"stkfiles-core/stkfile"
	"stkfiles-core/stktime"
)

// Sample is one parsed input line: a timestamp followed by numeric fields.
type Sample struct {
	Time   time.Time
	Values []float64
}

// Parse splits one whitespace-separated line into a Sample.
func Parse(line string) (Sample, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Sample{}, fmt.Errorf("line %q needs a timestamp and at least one value", line)
	}
	t, err := stktime.ParseTime(fields[0])
	if err != nil {
		return Sample{}, err
	}
	values := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Sample{}, fmt.Errorf("field %d of line %q: %v", i+2, line, err)
		}
		values[i] = v
	}
	return Sample{Time: t, Values: values}, nil
}

// ReadSamples consumes r line by line, skipping blanks and '#' comments,
// and returns parallel time/row slices for the core writers.
func ReadSamples(r io.Reader) ([]time.Time, [][]float64, error) {
	var times []time.Time
	var rows [][]float64
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := Parse(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		times = append(times, s.Time)
		rows = append(rows, s.Values)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return times, rows, nil
}

// ReadIntervals parses `start end [annotation]` lines.
func ReadIntervals(r io.Reader) ([]stkfile.Interval, error) {
	var out []stkfile.Interval
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %q needs a start and an end timestamp", lineNo, line)
		}
		start, err := stktime.ParseTime(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		end, err := stktime.ParseTime(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		out = append(out, stkfile.Interval{
			Start: start,
			End:   end,
			Data:  strings.Join(fields[2:], " "),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
