package stkfile

// Hand-written parser for generated documents, used by round-trip and
// nesting tests. It is deliberately independent of the writer internals.

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"stkfiles-core/stktime"
)

type parsedDoc struct {
	version  string
	top      string
	data     string
	keywords map[string]string
	rows     [][]string
}

// parseDoc checks line structure and BEGIN/END stack discipline while
// collecting keywords and data rows.
func parseDoc(t *testing.T, text string) parsedDoc {
	t.Helper()
	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("document does not end with a newline")
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("document too short: %d lines", len(lines))
	}
	p := parsedDoc{version: lines[0], keywords: map[string]string{}}
	var stack []string
	for _, ln := range lines[1:] {
		switch {
		case strings.HasPrefix(ln, "BEGIN "):
			section := strings.TrimPrefix(ln, "BEGIN ")
			stack = append(stack, section)
			switch len(stack) {
			case 1:
				p.top = section
			case 2:
				p.data = section
			default:
				t.Fatalf("nesting deeper than two sections at %q", ln)
			}
		case strings.HasPrefix(ln, "END "):
			if len(stack) == 0 {
				t.Fatalf("END without open section: %q", ln)
			}
			want := stack[len(stack)-1]
			if got := strings.TrimPrefix(ln, "END "); got != want {
				t.Fatalf("END %q does not close open section %q", got, want)
			}
			stack = stack[:len(stack)-1]
		case len(stack) == 2:
			p.rows = append(p.rows, strings.Fields(ln))
		case len(stack) == 1:
			f := strings.Fields(ln)
			if len(f) < 2 {
				t.Fatalf("malformed keyword line %q", ln)
			}
			p.keywords[f[0]] = strings.Join(f[1:], " ")
		default:
			t.Fatalf("line outside any section: %q", ln)
		}
	}
	if len(stack) != 0 {
		t.Fatalf("unclosed sections: %v", stack)
	}
	return p
}

func parseRowTime(t *testing.T, field string) time.Time {
	t.Helper()
	ts, err := stktime.ParseTime(field)
	if err != nil {
		t.Fatalf("row timestamp %q: %v", field, err)
	}
	return ts
}

func parseRowFloats(t *testing.T, fields []string) []float64 {
	t.Helper()
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			t.Fatalf("row field %q: %v", f, err)
		}
		out[i] = v
	}
	return out
}
