package commands

import (
	"context"
	"os"

	"github.com/chaisql/scalar/cmd/scalar/evalutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewEvalCommand returns a cli.Command for "scalar eval".
func NewEvalCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "eval",
		Usage:     "Evaluate an operation",
		UsageText: `scalar eval op left [right]`,
		Description: `The eval command applies an operator to one or two operands and prints the result.

Operators are add, sub, mul, div and neg, or + - * / for the binary ones.
Operands are JSON literals:

$ scalar eval add 9223372036854775807 1
unsigned 9223372036854775808

$ scalar eval neg '"foo"'
text -foo

When the output is not a terminal, results are printed as JSON objects:

$ scalar eval div 7 2 | cat
{"type":"double","value":3.5}`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the result as JSON, even on a terminal.",
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

		operands, err := evalutil.ParseOperands(op, cmd.Args().Tail())
		if err != nil {
			return err
		}

		e, err := newEngine(ctx, cmd)
		if err != nil {
			return err
		}

		res, err := evalutil.Eval(e, op, operands)
		if err != nil {
			return err
		}

		format := evalutil.FormatFor(os.Stdout)
		if cmd.Bool("json") {
			format = evalutil.FormatJSON
		}
		return evalutil.WriteValue(os.Stdout, res, format)
	}

	return &cmd
}
