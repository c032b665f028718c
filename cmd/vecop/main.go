package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := newApp(stdout, stderr)
	return app.Run(ctx, routeArgs(app, args))
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	g := &globals{}
	return &cli.Command{
		Name:      "vecop",
		Usage:     "Elementwise vector arithmetic on the widest available SIMD tier",
		ArgsUsage: "<float|double> <op> <width> <a...> <b...>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(g),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return g.setup(ctx, cmd, stderr)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return errUsage
		},
		Commands: []*cli.Command{
			evalCmd(g),
			tiersCmd(g),
			serveCmd(g),
			versionCmd(),
		},
	}
}

// routeArgs inserts "eval" before the first positional argument when it is
// not a command name, so "vecop float + 4 ..." works without naming eval.
func routeArgs(app *cli.Command, args []string) []string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			name := strings.TrimLeft(arg, "-")
			if !strings.Contains(name, "=") && flagTakesValue(app, name) {
				i++
			}
			continue
		}
		if arg == "help" || app.Command(arg) != nil {
			return args
		}
		routed := make([]string, 0, len(args)+1)
		routed = append(routed, args[:i]...)
		routed = append(routed, evalCmdName)
		return append(routed, args[i:]...)
	}
	return args
}

func flagTakesValue(app *cli.Command, name string) bool {
	for _, f := range app.Flags {
		for _, n := range f.Names() {
			if n != name {
				continue
			}
			_, isBool := f.(*cli.BoolFlag)
			return !isBool
		}
	}
	return false
}
