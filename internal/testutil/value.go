package testutil

import (
	"strconv"
	"strings"
	"testing"

	"github.com/chaisql/scalar/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// Reading is a comparable snapshot of the authoritative reading of a value.
type Reading struct {
	Type  types.Type
	Int   int64
	Uint  uint64
	Float float64
	Text  string
}

func (r Reading) String() string {
	switch r.Type {
	case types.TypeInteger:
		return "integer " + strconv.FormatInt(r.Int, 10)
	case types.TypeUnsigned:
		return "unsigned " + strconv.FormatUint(r.Uint, 10)
	case types.TypeDouble:
		return "double " + types.FormatDouble(r.Float)
	case types.TypeText, types.TypeReference:
		return r.Type.String() + " " + r.Text
	}

	return r.Type.String()
}

// ReadingOf returns the reading of v.
func ReadingOf(v *types.Value) Reading {
	r := Reading{Type: v.Type()}

	switch r.Type {
	case types.TypeInteger:
		r.Int = v.Int()
	case types.TypeUnsigned:
		r.Uint = v.Uint()
	case types.TypeDouble:
		r.Float = v.Double()
	case types.TypeText, types.TypeReference:
		r.Text = v.String()
	}

	return r
}

func Int(x int64) Reading {
	return Reading{Type: types.TypeInteger, Int: x}
}

func Uint(x uint64) Reading {
	return Reading{Type: types.TypeUnsigned, Uint: x}
}

func Float(x float64) Reading {
	return Reading{Type: types.TypeDouble, Float: x}
}

func Text(s string) Reading {
	return Reading{Type: types.TypeText, Text: s}
}

func Undefined() Reading {
	return Reading{Type: types.TypeUndefined}
}

// RequireValue fails the test if got doesn't have the wanted reading.
// NaNs are equal to each other.
func RequireValue(t testing.TB, want Reading, got *types.Value) {
	t.Helper()

	require.NotNil(t, got)
	diff := cmp.Diff(want, ReadingOf(got), cmpopts.EquateNaNs())
	if diff != "" {
		require.Failf(t, "unexpected value", "(-want +got):\n%s", diff)
	}
}

// ParseValue parses the literal s into a value.
// Literals are integers, unsigned integers too large for an int64,
// floats (including nan, inf and -inf), double quoted strings, and undef.
// A trailing '!' marks the value as tainted.
func ParseValue(t testing.TB, s string) *types.Value {
	t.Helper()

	tainted := strings.HasSuffix(s, "!") && len(s) > 1
	if tainted {
		s = s[:len(s)-1]
	}

	v := parseValue(t, s)
	v.SetTainted(tainted)
	return v
}

func parseValue(t testing.TB, s string) *types.Value {
	if s == "undef" {
		return types.NewUndefined()
	}

	if s[0] == '"' {
		str, err := strconv.Unquote(s)
		require.NoError(t, err)
		return types.NewText(str)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.NewInteger(i)
	}

	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return types.NewUnsigned(u)
	}

	f, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err, "invalid literal %q", s)
	return types.NewDouble(f)
}

// ParseReading parses an expected result, written "TYPE [VALUE]".
func ParseReading(t testing.TB, s string) Reading {
	t.Helper()

	typ, lit, _ := strings.Cut(s, " ")
	switch typ {
	case "undefined":
		return Undefined()
	case "integer":
		i, err := strconv.ParseInt(lit, 10, 64)
		require.NoError(t, err)
		return Int(i)
	case "unsigned":
		u, err := strconv.ParseUint(lit, 10, 64)
		require.NoError(t, err)
		return Uint(u)
	case "double":
		f, err := strconv.ParseFloat(lit, 64)
		require.NoError(t, err)
		return Float(f)
	case "text":
		return Text(lit)
	}

	require.Failf(t, "invalid result", "unknown type in %q", s)
	return Reading{}
}
