package config

import (
	"os"
	"path/filepath"
	"testing"

	"stkfiles/internal/cli"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := writeConfig(t, `
format: Quaternions
time_format: EpSec
epoch: 2020-01-01T00:00:00
coordinate_axes: J2000
precision: 12
strict: true
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	opt := cli.Options{TimeFormat: "ISO-YMD"} // flag defaults
	f.Apply(&opt)
	if opt.Format != "Quaternions" || opt.TimeFormat != "EpSec" || opt.Axes != "J2000" {
		t.Fatalf("defaults not applied: %+v", opt)
	}
	if opt.Precision != 12 || !opt.Strict {
		t.Fatalf("defaults not applied: %+v", opt)
	}
}

func TestApplyDoesNotOverrideFlags(t *testing.T) {
	f := File{Format: "EulerAngles", Axes: "J2000", Precision: 3}
	opt := cli.Options{Format: "Quaternions", Axes: "ICRF", Precision: 9}
	f.Apply(&opt)
	if opt.Format != "Quaternions" || opt.Axes != "ICRF" || opt.Precision != 9 {
		t.Fatalf("flags overridden: %+v", opt)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "formt: Quaternions\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
