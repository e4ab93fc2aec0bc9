package evalutil

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/chaisql/scalar"
	"github.com/stretchr/testify/require"
)

func TestBench(t *testing.T) {
	e := scalar.New(nil)

	res, err := Bench(t.Context(), e, scalar.OpMul, []string{"4294967296", "4294967296"}, BenchOptions{N: 1001, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, 1001, res.Operations)
	require.Equal(t, 4, res.Workers)
	require.Positive(t, res.TotalDuration)

	var buf bytes.Buffer
	require.NoError(t, WriteBenchResult(&buf, res))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	require.EqualValues(t, 1001, m["operations"])
	require.Contains(t, m, "operationsPerSecond")
}

func TestBenchErrors(t *testing.T) {
	e := scalar.New(nil)

	_, err := Bench(t.Context(), e, scalar.OpAdd, []string{"1", "2"}, BenchOptions{N: 0})
	require.Error(t, err)

	_, err = Bench(t.Context(), e, scalar.OpAdd, []string{"1", "[]"}, BenchOptions{N: 10})
	require.Error(t, err)

	_, err = Bench(t.Context(), e, scalar.OpDiv, []string{"1", "0"}, BenchOptions{N: 10, Workers: 2})
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = Bench(ctx, e, scalar.OpAdd, []string{"1", "2"}, BenchOptions{N: 10})
	require.ErrorIs(t, err, context.Canceled)
}
