// internal/intapp/app.go
package intapp

import (
	"io"

	"stkfiles-core/stkfile"
	"stkfiles/internal/appcore"
	"stkfiles/internal/cli"
	"stkfiles/internal/cmdutil"
	"stkfiles/internal/parseline"
)

var tool = cli.Tool{
	Name:  "data2int",
	Blurb: "create an STK interval list (.int) file",
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, code, ok := appcore.Setup(tool, argv, stdout, stderr)
	if !ok {
		return code
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

	intervals, err := parseline.ReadIntervals(in)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitUsage
	}

	return appcore.Emit(opts, stdout, stderr,
		func(w io.Writer) ([]stkfile.RowWarning, error) {
			return nil, stkfile.WriteIntervals(w, spec, intervals)
		},
		func(path string) ([]stkfile.RowWarning, error) {
			return nil, stkfile.WriteIntervalFile(path, spec, intervals)
		},
	)
}
