// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"stkfiles/internal/version"
)

// Tool describes one binary for flag registration and usage text.
type Tool struct {
	Name        string
	Blurb       string
	NeedsFormat bool // attitude/ephemeris/sensor tools take --format
}

// Options holds all CLI flags shared by the data2* tools.
type Options struct {
	// I/O
	Input  string // input path, "-" = stdin
	Output string // output path, "" = stdout

	// Representation / encoding
	Format     string
	TimeFormat string
	Epoch      string // scenario epoch, required by EpSec

	// Header keywords
	Axes         string
	AxesEpoch    string
	CentralBody  string
	InterpMethod string
	InterpOrder  int
	Sequence     int

	// Rendering / validation
	Precision int
	Strict    bool

	// Misc
	ConfigFile string
	Quiet      bool
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(t Tool) *flag.FlagSet {
	fs := flag.NewFlagSet(t.Name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: %s

Reads whitespace-separated sample lines (timestamp first) and emits an
STK data file.

Version: %s

Usage of %s:
`, t.Name, t.Blurb, version.Version, t.Name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string, t Tool) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "-", "input file ('-' = stdin) [-]")
	fs.StringVar(&opt.Output, "output", "", "output file (default stdout) []")

	if t.NeedsFormat {
		fs.StringVar(&opt.Format, "format", "", "data representation variant [*]")
		fs.IntVar(&opt.Sequence, "sequence", 0, "rotation sequence for angle formats (e.g. 321) [0]")
	}
	fs.StringVar(&opt.TimeFormat, "time-format", "ISO-YMD", "timestamp encoding: ISO-YMD | EpSec [ISO-YMD]")
	fs.StringVar(&opt.Epoch, "epoch", "", "scenario epoch (required by EpSec) []")

	fs.StringVar(&opt.Axes, "axes", "", "coordinate axes keyword []")
	fs.StringVar(&opt.AxesEpoch, "axes-epoch", "", "coordinate axes epoch []")
	fs.StringVar(&opt.CentralBody, "central-body", "", "central body keyword []")
	fs.StringVar(&opt.InterpMethod, "interp-method", "", "interpolation method: Lagrange | Hermite []")
	fs.IntVar(&opt.InterpOrder, "interp-order", 0, "interpolation order [0]")

	fs.IntVar(&opt.Precision, "precision", 0, "float decimal places (0 = per-format default) [0]")
	fs.BoolVar(&opt.Strict, "strict", false, "fail on numerically invalid rows instead of dropping them [false]")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML defaults file []")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress dropped-row warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if t.NeedsFormat && opt.Format == "" && opt.ConfigFile == "" {
		return opt, errors.New("--format is required")
	}
	if opt.Input == "" {
		return opt, errors.New("--input must be a path or '-'")
	}
	if opt.Precision < 0 || opt.Precision > 15 {
		return opt, errors.New("--precision must be between 0 and 15")
	}
	if opt.InterpOrder < 0 {
		return opt, errors.New("--interp-order must be >= 0")
	}
	if opt.Sequence < 0 {
		return opt, errors.New("--sequence must be >= 0")
	}
	return opt, nil
}
