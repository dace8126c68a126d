// core/stktime/format.go
package stktime

import (
	"fmt"
	"strings"
	"time"
)

// Format is the encoding tag selecting how timestamps are rendered
// inside a data file (the DateUnitAbrv keyword).
type Format string

const (
	ISOYMD Format = "ISO-YMD"
	EpSec  Format = "EpSec"
)

// isoLayout is the 23-character millisecond layout used for ISO-YMD fields.
const isoLayout = "2006-01-02T15:04:05.000"

var formatTags = map[string]Format{
	"iso-ymd": ISOYMD,
	"epsec":   EpSec,
}

// ParseFormat resolves a case-insensitive encoding tag.
func ParseFormat(s string) (Format, error) {
	f, ok := formatTags[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("time format %q is not a valid choice; valid choices: ISO-YMD, EpSec", s)
	}
	return f, nil
}

// ISO returns the bare ISO-YMD form used in header keyword lines.
func ISO(t time.Time) string { return t.UTC().Format(isoLayout) }

// Renderer converts one instant to its textual row form.
type Renderer interface {
	Render(t time.Time) string
}

type isoRenderer struct{}

// ISO-YMD timestamps are double-quoted in data rows.
func (isoRenderer) Render(t time.Time) string { return `"` + ISO(t) + `"` }

type epSecRenderer struct {
	epoch time.Time
}

func (r epSecRenderer) Render(t time.Time) string {
	return fmt.Sprintf("%15.3f", t.Sub(r.epoch).Seconds())
}

// NewRenderer builds the row renderer for f. EpSec requires a scenario
// epoch; ISO-YMD must not carry one.
func NewRenderer(f Format, epoch time.Time) (Renderer, error) {
	switch f {
	case ISOYMD:
		if !epoch.IsZero() {
			return nil, fmt.Errorf("scenario epoch is not applicable for time format %q", f)
		}
		return isoRenderer{}, nil
	case EpSec:
		if epoch.IsZero() {
			return nil, fmt.Errorf("time format %q requires a scenario epoch", f)
		}
		return epSecRenderer{epoch: epoch.UTC()}, nil
	}
	return nil, fmt.Errorf("time format %q is not supported", f)
}

var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime accepts the ISO-8601-ish timestamp spellings that show up in
// line-oriented tool input, quoted or not, and normalizes to UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse %q as a timestamp", s)
}
