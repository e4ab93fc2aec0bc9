package commands

import (
	"context"
	"os"

	"github.com/chaisql/scalar/cmd/scalar/evalutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewBenchCommand returns a cli.Command for "scalar bench".
func NewBenchCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "bench",
		Usage:     "Simple load testing command",
		UsageText: `scalar bench [options] op left [right]`,
		Description: `The bench command runs an operation repeatedly (1000000 times by default, -n option)
on several goroutines sharing the same engine (-w option), and outputs the results.

$ scalar bench -n 100000 -w 4 mul 4294967296 4294967296
{
  "operations": 100000,
  "workers": 4,
  "totalDuration": 5236541,
  "averageDuration": 52,
  "operationsPerSecond": 19096463
}

Durations are in nanoseconds.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Value:   1000000,
				Usage:   "Total number of operations to run.",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   1,
				Usage:   "Number of goroutines running operations.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() < 2 {
			return errors.New(cmd.UsageText)
		}

		op, err := evalutil.ParseOperator(cmd.Args().First())
		if err != nil {
			return err
		}

		e, err := newEngine(ctx, cmd)
		if err != nil {
			return err
		}

		res, err := evalutil.Bench(ctx, e, op, cmd.Args().Tail(), evalutil.BenchOptions{
			N:       cmd.Int("number"),
			Workers: cmd.Int("workers"),
		})
		if err != nil {
			return err
		}

		return evalutil.WriteBenchResult(os.Stdout, res)
	}

	return &cmd
}
