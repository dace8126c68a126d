// internal/ephapp/app.go
package ephapp

import (
	"io"

	"stkfiles-core/stkfile"
	"stkfiles/internal/appcore"
	"stkfiles/internal/cli"
	"stkfiles/internal/cmdutil"
	"stkfiles/internal/parseline"
)

var tool = cli.Tool{
	Name:        "data2e",
	Blurb:       "create an STK ephemeris (.e) file",
	NeedsFormat: true,
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, code, ok := appcore.Setup(tool, argv, stdout, stderr)
	if !ok {
		return code
	}

	format, err := stkfile.ParseEphemerisFormat(opts.Format)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitUsage
	}
	spec, err := appcore.BuildSpec(opts, false)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitUsage
	}

	in, closeIn, err := appcore.OpenInput(opts.Input, stdin)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitIO
	}
	defer closeIn()

	times, rows, err := parseline.ReadSamples(in)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitUsage
	}

	return appcore.Emit(opts, stdout, stderr,
		func(w io.Writer) ([]stkfile.RowWarning, error) {
			return nil, stkfile.WriteEphemeris(w, format, spec, times, rows)
		},
		func(path string) ([]stkfile.RowWarning, error) {
			return nil, stkfile.WriteEphemerisFile(path, format, spec, times, rows)
		},
	)
}
