package intapp

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndIntervals(t *testing.T) {
	stdin := "2020-01-01T00:00:00 2020-01-01T00:10:00\n" +
		"2020-01-02T00:00:00 2020-01-02T00:20:00\n"
	code, out, errOut := run(t, stdin)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errOut)
	}
	want := "stk.v.12.0\n" +
		"BEGIN IntervalList\n" +
		"DateUnitAbrv        ISO-YMD\n" +
		"BEGIN Intervals\n" +
		"\"2020-01-01T00:00:00.000\" \"2020-01-01T00:10:00.000\"\n" +
		"\"2020-01-02T00:00:00.000\" \"2020-01-02T00:20:00.000\"\n" +
		"END Intervals\n" +
		"END IntervalList\n"
	if out != want {
		t.Fatalf("output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestEndToEndBadInterval(t *testing.T) {
	stdin := "2020-01-01T00:10:00 2020-01-01T00:00:00\n" // end before start
	code, out, errOut := run(t, stdin)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if out != "" {
		t.Fatalf("output written despite failure:\n%s", out)
	}
	if !strings.Contains(errOut, "invalid time order") {
		t.Fatalf("stderr = %q", errOut)
	}
}
