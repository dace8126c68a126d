// core/stkfile/render.go
package stkfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"stkfiles-core/stktime"
)

// version is the STK format tag emitted as the first line of every file.
const version = "stk.v.12.0"

// doc accumulates lines for one file and tracks BEGIN/END nesting so every
// opened section is closed in reverse order.
type doc struct {
	buf   bytes.Buffer
	stack []string
}

func (d *doc) line(s string)                 { d.buf.WriteString(s); d.buf.WriteByte('\n') }
func (d *doc) linef(format string, a ...any) { d.line(fmt.Sprintf(format, a...)) }
func (d *doc) keyword(name, value string)    { d.linef("%-19s %s", name, value) }

func (d *doc) begin(section string) {
	d.linef("BEGIN %s", section)
	d.stack = append(d.stack, section)
}

func (d *doc) end() {
	section := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	d.linef("END %s", section)
}

// closeAll unwinds every open section.
func (d *doc) closeAll() {
	for len(d.stack) > 0 {
		d.end()
	}
}

// header emits the preamble common to every file type: format version,
// top-level BEGIN, the timestamp encoding keyword, and the optional
// configuration keywords carried by the spec.
func (d *doc) header(top string, s *FileSpec) {
	d.line(version)
	d.begin(top)
	d.keyword("DateUnitAbrv", string(s.TimeFormat))
	if s.MessageLevel != "" {
		d.keyword("MessageLevel", s.MessageLevel)
	}
	if !s.ScenarioEpoch.IsZero() {
		d.keyword("ScenarioEpoch", stktime.ISO(s.ScenarioEpoch))
	}
	if s.CentralBody != "" {
		d.keyword("CentralBody", s.CentralBody)
	}
	if s.CoordinateAxes != "" {
		d.keyword("CoordinateAxes", s.CoordinateAxes)
		if !s.CoordinateAxesEpoch.IsZero() {
			d.keyword("CoordinateAxesEpoch", stktime.ISO(s.CoordinateAxesEpoch))
		}
	}
	if s.InterpolationMethod != "" {
		d.keyword("InterpolationMethod", s.InterpolationMethod)
	}
	if s.InterpolationOrder > 0 {
		d.keyword("InterpolationOrder", fmt.Sprint(s.InterpolationOrder))
	}
	if s.Sequence != 0 {
		d.keyword("Sequence", fmt.Sprint(s.Sequence))
	}
}

// dataRows emits one BEGIN/END block with a line per surviving sample.
func (d *doc) dataRows(section string, r stktime.Renderer, times []time.Time, rows [][]float64, prec int) {
	d.begin(section)
	for i, t := range times {
		d.buf.WriteString(r.Render(t))
		for _, v := range rows[i] {
			d.buf.WriteByte(' ')
			d.buf.WriteString(formatFloat(v, prec))
		}
		d.buf.WriteByte('\n')
	}
	d.end()
}

// formatFloat renders one numeric field with an explicit sign and fixed
// precision, width-aligned so columns line up.
func formatFloat(v float64, prec int) string {
	return fmt.Sprintf("%+*.*f", prec+3, prec, v)
}

// emit copies a fully rendered document to w in a single write, so a
// failure produces no partial output on the stream.
func (d *doc) emit(w io.Writer) error {
	if _, err := w.Write(d.buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// emitFile writes the document through a temp file and rename, so the
// destination either appears fully written or not at all.
func (d *doc) emitFile(path string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, d.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
