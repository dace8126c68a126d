// internal/attapp/app.go
package attapp

import (
	"io"

	"stkfiles-core/stkfile"
	"stkfiles/internal/appcore"
	"stkfiles/internal/cli"
	"stkfiles/internal/cmdutil"
	"stkfiles/internal/parseline"
)

var tool = cli.Tool{
	Name:        "data2a",
	Blurb:       "create an STK attitude (.a) file",
	NeedsFormat: true,
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, code, ok := appcore.Setup(tool, argv, stdout, stderr)
	if !ok {
		return code
	}

	spec, err := appcore.BuildSpec(opts, true)
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
			return stkfile.WriteAttitude(w, spec, times, rows)
		},
		func(path string) ([]stkfile.RowWarning, error) {
			return stkfile.WriteAttitudeFile(path, spec, times, rows)
		},
	)
}
