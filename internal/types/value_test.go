package types_test

import (
	"math"
	"testing"

	"github.com/chaisql/scalar/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestValueType(t *testing.T) {
	ref := types.NewRef("Foo", nil, true)

	tests := []struct {
		name  string
		value *types.Value
		want  types.Type
	}{
		{"undefined", types.NewUndefined(), types.TypeUndefined},
		{"integer", types.NewInteger(-3), types.TypeInteger},
		{"small unsigned", types.NewUnsigned(3), types.TypeInteger},
		{"big unsigned", types.NewUnsigned(math.MaxUint64), types.TypeUnsigned},
		{"double", types.NewDouble(1.5), types.TypeDouble},
		{"text", types.NewText("foo"), types.TypeText},
		{"reference", types.NewReference(ref), types.TypeReference},
		{"magical", types.NewMagical(nil), types.TypeUndefined},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, test.value.Type())
		})
	}
}

func TestValueSetters(t *testing.T) {
	v := types.NewText("foo")
	v.SetTainted(true)

	v.SetInteger(10)
	require.Equal(t, types.TypeInteger, v.Type())
	require.Equal(t, int64(10), v.Int())
	require.Empty(t, v.Text())
	require.True(t, v.IsTainted())

	v.SetUnsigned(1 << 63)
	require.Equal(t, types.TypeUnsigned, v.Type())
	require.Equal(t, uint64(1<<63), v.Uint())

	v.SetInteger(-1)
	require.False(t, v.IsUnsigned())

	v.SetDouble(2.5)
	require.Equal(t, types.TypeDouble, v.Type())
	require.False(t, v.HasInteger())

	v.SetReference(types.NewRef("", nil, false))
	require.Equal(t, types.TypeReference, v.Type())
	require.False(t, v.IsOverloaded())

	v.SetUndefined()
	require.True(t, v.IsUndefined())
	require.Nil(t, v.Ref())
}

func TestValueAssign(t *testing.T) {
	resolves := 0
	dst := types.NewMagical(types.ResolverFunc(func(v *types.Value) error {
		resolves++
		v.SetInteger(1)
		return nil
	}))

	src := types.NewText("bar")
	src.SetTainted(true)

	dst.Assign(src)
	require.False(t, dst.IsPending())
	require.Equal(t, "bar", dst.Text())
	require.True(t, dst.IsTainted())

	// the resolver is kept
	dst.Invalidate()
	require.True(t, dst.IsPending())
	require.NoError(t, dst.Resolve())
	require.Equal(t, 1, resolves)
	require.Equal(t, int64(1), dst.Int())

	c := dst.Clone()
	c.Invalidate()
	require.False(t, c.IsPending())
}

func TestResolve(t *testing.T) {
	calls := 0
	v := types.NewMagical(types.ResolverFunc(func(v *types.Value) error {
		calls++
		// reading v from its own resolver must not recurse
		require.NoError(t, v.Resolve())
		v.SetDouble(0.5)
		return nil
	}))

	require.True(t, v.IsPending())
	require.NoError(t, v.Resolve())
	require.NoError(t, v.Resolve())
	require.Equal(t, 1, calls)
	require.Equal(t, 0.5, v.Double())

	v.Invalidate()
	require.NoError(t, v.Resolve())
	require.Equal(t, 2, calls)

	t.Run("error", func(t *testing.T) {
		errFetch := errors.New("fetch failed")
		v := types.NewMagical(types.ResolverFunc(func(v *types.Value) error {
			return errFetch
		}))

		require.Equal(t, errFetch, v.Resolve())
		require.False(t, v.IsPending())
	})

	t.Run("no resolver", func(t *testing.T) {
		v := types.NewInteger(1)
		v.Invalidate()
		require.False(t, v.IsPending())
		require.NoError(t, v.Resolve())
	})

	t.Run("nil resolver", func(t *testing.T) {
		v := types.NewMagical(nil)
		require.False(t, v.IsPending())
		require.NoError(t, v.Resolve())
		require.True(t, v.IsUndefined())
		v.Invalidate()
		require.NoError(t, v.Resolve())
	})
}

func TestLosslessFloatToInt(t *testing.T) {
	tests := []struct {
		f    float64
		want int64
		ok   bool
	}{
		{0, 0, true},
		{math.Copysign(0, -1), 0, true},
		{1e18, 0, false},
		{1 << 53, 0, false},
		{-(1 << 53), 0, false},
		{1<<53 - 1, 1<<53 - 1, true},
		{-(1<<53 - 1), -(1<<53 - 1), true},
		{-3, -3, true},
		{1.5, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{math.Inf(-1), 0, false},
		{-9223372036854775808, 0, false},
		{9223372036854775808, 0, false},
		{1e19, 0, false},
	}

	for _, test := range tests {
		got, ok := types.LosslessFloatToInt(test.f)
		require.Equal(t, test.ok, ok, "%v", test.f)
		require.Equal(t, test.want, got, "%v", test.f)
		if ok {
			require.Equal(t, test.f, float64(got))
		}
	}
}

func TestInteger(t *testing.T) {
	p := types.DefaultParser

	tests := []struct {
		name     string
		value    *types.Value
		want     int64
		unsigned bool
		ok       bool
	}{
		{"integer", types.NewInteger(-4), -4, false, true},
		{"unsigned", types.NewUnsigned(math.MaxUint64), -1, true, true},
		{"integral double", types.NewDouble(8), 8, false, true},
		{"fractional double", types.NewDouble(8.5), 0, false, false},
		{"rounded double", types.NewDouble(1e18), 0, false, false},
		{"numeric text", types.NewText(" 12 "), 12, false, true},
		{"big text", types.NewText("18446744073709551615"), -1, true, true},
		{"exponent text", types.NewText("1e3"), 1000, false, true},
		{"fractional text", types.NewText("1.25"), 0, false, false},
		{"rounded exponent text", types.NewText("1e18"), 0, false, false},
		{"text prefix", types.NewText("3abc"), 0, false, false},
		{"undefined", types.NewUndefined(), 0, false, false},
		{"reference", types.NewReference(types.NewRef("", nil, false)), 0, false, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			x, unsigned, ok := test.value.Integer(p)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.want, x)
			require.Equal(t, test.unsigned, unsigned)
		})
	}

	t.Run("operands are not modified", func(t *testing.T) {
		v := types.NewText("12")
		_, _, ok := v.Integer(p)
		require.True(t, ok)
		require.False(t, v.HasInteger())
		require.Equal(t, types.TypeText, v.Type())
	})
}

func TestToFloat(t *testing.T) {
	p := types.DefaultParser
	ref := types.NewRef("", nil, false)

	require.Equal(t, 0.0, types.NewUndefined().ToFloat(p))
	require.Equal(t, -4.0, types.NewInteger(-4).ToFloat(p))
	require.Equal(t, 18446744073709551615.0, types.NewUnsigned(math.MaxUint64).ToFloat(p))
	require.Equal(t, 3.0, types.NewText("3abc").ToFloat(p))
	require.Equal(t, 0.0, types.NewText("abc").ToFloat(p))
	require.Equal(t, float64(ref.ID()), types.NewReference(ref).ToFloat(p))
}

func TestCacheNumber(t *testing.T) {
	p := types.DefaultParser

	v := types.NewText("42")
	require.True(t, v.CacheNumber(p))
	require.True(t, v.HasInteger())
	require.True(t, v.HasDouble())
	require.Equal(t, types.TypeInteger, v.Type())
	require.Equal(t, "42", v.String())

	v = types.NewText("4.5")
	require.True(t, v.CacheNumber(p))
	require.False(t, v.HasInteger())
	require.Equal(t, types.TypeDouble, v.Type())

	v = types.NewText("foo")
	require.False(t, v.CacheNumber(p))
	require.Equal(t, types.TypeText, v.Type())

	require.True(t, types.NewInteger(1).CacheNumber(p))
	require.False(t, types.NewUndefined().CacheNumber(p))
}

func TestLooksLikeNumber(t *testing.T) {
	p := types.DefaultParser

	require.True(t, types.NewInteger(1).LooksLikeNumber(p))
	require.True(t, types.NewText("-5").LooksLikeNumber(p))
	require.False(t, types.NewText("bar").LooksLikeNumber(p))
	require.False(t, types.NewUndefined().LooksLikeNumber(p))
}

func TestValueString(t *testing.T) {
	ref := types.NewRef("Foo", nil, true)

	tests := []struct {
		name     string
		value    *types.Value
		expected string
		json     string
	}{
		{"undefined", types.NewUndefined(), "", "null"},
		{"integer", types.NewInteger(-10), "-10", "-10"},
		{"unsigned", types.NewUnsigned(9223372036854775808), "9223372036854775808", "9223372036854775808"},
		{"double", types.NewDouble(3.5), "3.5", "3.5"},
		{"integral double", types.NewDouble(3), "3", "3"},
		{"big double", types.NewDouble(1e18), "1e+18", "1e+18"},
		{"inf", types.NewDouble(math.Inf(-1)), "-Inf", `"-Inf"`},
		{"nan", types.NewDouble(math.NaN()), "NaN", `"NaN"`},
		{"text", types.NewText(`a"b`), `a"b`, `"a\"b"`},
		{"reference", types.NewReference(ref), ref.String(), `"` + ref.String() + `"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.value.String())
			data, err := test.value.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, test.json, string(data))
		})
	}

	require.Regexp(t, `^Foo=REF\(0x[0-9a-f]+\)$`, ref.String())
}

func TestRefIdentity(t *testing.T) {
	a := types.NewRef("A", nil, false)
	b := types.NewRef("A", nil, false)
	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, "A", a.Class())

	var nilRef *types.Ref
	require.False(t, nilRef.Overloaded())
}
