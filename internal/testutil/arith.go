package testutil

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/chaisql/scalar/internal/arith"
	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/testutil/arithtests"
	"github.com/chaisql/scalar/internal/types"
	"github.com/stretchr/testify/require"
)

// Eval runs the operation named op on operands parsed with ParseValue.
// Supported operations are add, sub, mul, div, neg and their mutating
// forms add=, sub=, mul= and div=, which store the result into the left operand.
func Eval(t testing.TB, e *arith.Engine, op string, operands ...string) (*types.Value, error) {
	t.Helper()

	values := make([]*types.Value, len(operands))
	for i, o := range operands {
		values[i] = ParseValue(t, o)
	}

	if op == "neg" {
		require.Len(t, values, 1, "neg takes one operand")
		return e.Neg(types.NewUndefined(), values[0], 0)
	}

	require.Len(t, values, 2, "%s takes two operands", op)

	name, mutator := strings.CutSuffix(op, "=")
	bop, ok := map[string]overload.Op{
		"add": overload.OpAdd,
		"sub": overload.OpSub,
		"mul": overload.OpMul,
		"div": overload.OpDiv,
	}[name]
	require.True(t, ok, "unknown operation %q", op)

	if mutator {
		return e.Binary(bop, values[0], values[0], values[1], overload.Mutator)
	}
	return e.Binary(bop, types.NewUndefined(), values[0], values[1], 0)
}

// ArithRunner runs the tests described in testfile, see package arithtests.
func ArithRunner(t *testing.T, e *arith.Engine, testfile string) {
	t.Helper()

	f, err := os.Open(testfile)
	require.NoError(t, err, "failed to open test data %s", testfile)
	defer f.Close()

	ts, err := arithtests.Parse(f)
	require.NoError(t, err)

	for _, test := range ts.Tests {
		t.Run(test.Name, func(t *testing.T) {
			for _, stmt := range test.Statements {
				name := stmt.Op + " " + strings.Join(stmt.Operands, " ")
				if !stmt.Fail {
					t.Run("OK "+name, func(t *testing.T) {
						want := ParseReading(t, stmt.Res)

						got, err := Eval(t, e, stmt.Op, stmt.Operands...)
						NoErrorf(t, err, "%s:%d: unexpected error", testfile, stmt.Line)

						RequireValue(t, want, got)
					})
				} else {
					t.Run("NOK "+name, func(t *testing.T) {
						_, err := Eval(t, e, stmt.Op, stmt.Operands...)
						require.Errorf(t, err, "expected `%s` to return an error, got nil", name)
						require.Regexp(t, regexp.MustCompile(stmt.Res), err.Error())
					})
				}
			}
		})
	}
}
