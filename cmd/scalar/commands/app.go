package commands

import (
	"context"
	"os"

	"github.com/chaisql/scalar"
	"github.com/chaisql/scalar/cmd/scalar/evalutil"
	"github.com/urfave/cli/v3"
)

// NewApp creates the Scalar CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:                  "scalar",
		Usage:                 "Evaluate arithmetic on dynamic scalar values",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file. Flags take precedence over its values.",
			},
			&cli.BoolFlag{
				Name:  "integer-division",
				Usage: "Return integers from exact divisions of integers.",
			},
			&cli.BoolFlag{
				Name:  "no-overloading",
				Usage: "Disable operator overloading.",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Trace type promotions on stderr.",
			},
		},
		Commands: []*cli.Command{
			NewEvalCommand(),
			NewBenchCommand(),
			NewVersionCommand(),
		},
	}
}

// loadConfig reads the configuration file, if any, and applies
// the flags set on the command line on top of it.
func loadConfig(cmd *cli.Command) (*evalutil.Config, error) {
	cfg := &evalutil.Config{}

	if path := cmd.String("config"); path != "" {
		var err error
		cfg, err = evalutil.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if cmd.IsSet("integer-division") {
		cfg.IntegerDivision = cmd.Bool("integer-division")
	}
	if cmd.IsSet("no-overloading") {
		cfg.NoOverloading = cmd.Bool("no-overloading")
	}
	if cmd.IsSet("verbose") {
		cfg.Verbose = cmd.Bool("verbose")
	}

	return cfg, nil
}

func newEngine(_ context.Context, cmd *cli.Command) (*scalar.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return cfg.NewEngine(cfg.NewLogger(os.Stderr)), nil
}
