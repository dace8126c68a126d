// internal/appcore/core.go
package appcore

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"stkfiles-core/attitude"
	"stkfiles-core/stkfile"
	"stkfiles-core/stktime"
	"stkfiles/internal/cli"
	"stkfiles/internal/cmdutil"
	"stkfiles/internal/config"
	"stkfiles/internal/version"
)

// Exit codes shared by every data2* tool.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitIO    = 3
)

// Setup handles the flag/help/version/config front matter common to all
// tools. proceed is false when the run is already finished (help, version,
// usage error) and code should be returned as-is.
func Setup(t cli.Tool, argv []string, stdout, stderr io.Writer) (opts cli.Options, code int, proceed bool) {
	fs := cli.NewFlagSet(t)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv, t)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return opts, ExitOK, false
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return opts, ExitUsage, false
	}
	if opts.Version {
		fmt.Fprintf(stdout, "%s version %s\n", t.Name, version.Version)
		return opts, ExitOK, false
	}

	if opts.ConfigFile != "" {
		defaults, err := config.Load(opts.ConfigFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return opts, ExitUsage, false
		}
		defaults.Apply(&opts)
		if t.NeedsFormat && opts.Format == "" {
			fmt.Fprintln(stderr, "--format is required (flag or config)")
			return opts, ExitUsage, false
		}
	}
	return opts, ExitOK, true
}

// BuildSpec converts parsed flags into a core FileSpec. withFormat selects
// whether the attitude representation tag is resolved.
func BuildSpec(o cli.Options, withFormat bool) (stkfile.FileSpec, error) {
	spec := stkfile.FileSpec{
		CoordinateAxes:      o.Axes,
		CentralBody:         o.CentralBody,
		InterpolationMethod: o.InterpMethod,
		InterpolationOrder:  o.InterpOrder,
		Sequence:            o.Sequence,
		Precision:           o.Precision,
		Strict:              o.Strict,
	}
	var err error
	if o.TimeFormat != "" {
		if spec.TimeFormat, err = stktime.ParseFormat(o.TimeFormat); err != nil {
			return spec, err
		}
	}
	if o.Epoch != "" {
		if spec.ScenarioEpoch, err = stktime.ParseTime(o.Epoch); err != nil {
			return spec, err
		}
	}
	if o.AxesEpoch != "" {
		if spec.CoordinateAxesEpoch, err = stktime.ParseTime(o.AxesEpoch); err != nil {
			return spec, err
		}
	}
	if withFormat {
		if spec.Format, err = attitude.ParseFormat(o.Format); err != nil {
			return spec, err
		}
	}
	return spec, nil
}

// OpenInput resolves the input flag to a reader. The returned closer is a
// no-op for stdin.
func OpenInput(input string, stdin io.Reader) (io.Reader, func(), error) {
	if input == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// Emit routes the rendered document to a file or stdout, reports dropped
// rows on stderr, and maps failures onto the shared exit codes.
func Emit(
	o cli.Options,
	stdout, stderr io.Writer,
	toWriter func(io.Writer) ([]stkfile.RowWarning, error),
	toFile func(string) ([]stkfile.RowWarning, error),
) int {
	var warns []stkfile.RowWarning
	var err error
	if o.Output == "" {
		warns, err = toWriter(stdout)
	} else {
		warns, err = toFile(o.Output)
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		if errors.Is(err, stkfile.ErrIO) {
			return ExitIO
		}
		return ExitUsage
	}
	return ExitOK
}
