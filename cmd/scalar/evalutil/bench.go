package evalutil

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/chaisql/scalar"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

type BenchOptions struct {
	// N is the total number of operations.
	N int
	// Workers is the number of goroutines sharing the operations.
	Workers int
}

// BenchResult summarizes a benchmark run.
type BenchResult struct {
	Operations          int           `json:"operations"`
	Workers             int           `json:"workers"`
	TotalDuration       time.Duration `json:"totalDuration"`
	AverageDuration     time.Duration `json:"averageDuration"`
	OperationsPerSecond int           `json:"operationsPerSecond"`
}

// Bench runs op on the operands decoded from args, opt.N times, spread
// across opt.Workers goroutines sharing the same engine.
// Each worker operates on its own copy of the operands.
func Bench(ctx context.Context, e *scalar.Engine, op scalar.Op, args []string, opt BenchOptions) (*BenchResult, error) {
	if opt.N <= 0 {
		return nil, errors.Newf("invalid number of operations %d", opt.N)
	}
	if opt.Workers <= 0 {
		opt.Workers = 1
	}
	if opt.Workers > opt.N {
		opt.Workers = opt.N
	}

	// fail early on invalid operands
	if _, err := ParseOperands(op, args); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	start := time.Now()
	for w := 0; w < opt.Workers; w++ {
		n := opt.N / opt.Workers
		if w < opt.N%opt.Workers {
			n++
		}

		g.Go(func() error {
			operands, err := ParseOperands(op, args)
			if err != nil {
				return err
			}

			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				if _, err := Eval(e, op, operands); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := time.Since(start)

	res := BenchResult{
		Operations:      opt.N,
		Workers:         opt.Workers,
		TotalDuration:   total,
		AverageDuration: total / time.Duration(opt.N),
	}
	if total > 0 {
		res.OperationsPerSecond = int(float64(opt.N) / total.Seconds())
	}

	return &res, nil
}

// WriteBenchResult prints res as indented JSON.
func WriteBenchResult(w io.Writer, res *BenchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
