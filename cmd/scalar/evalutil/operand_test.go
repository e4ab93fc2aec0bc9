package evalutil

import (
	"math"
	"testing"

	"github.com/chaisql/scalar"
	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		input    string
		typ      scalar.Type
		expected string
	}{
		{"1", scalar.TypeInteger, "1"},
		{"-2", scalar.TypeInteger, "-2"},
		{" 3 ", scalar.TypeInteger, "3"},
		{"18446744073709551615", scalar.TypeUnsigned, "18446744073709551615"},
		{"1e3", scalar.TypeDouble, "1000"},
		{"-2.5", scalar.TypeDouble, "-2.5"},
		{`"foo"`, scalar.TypeText, "foo"},
		{`"a\nb"`, scalar.TypeText, "a\nb"},
		{`""`, scalar.TypeText, ""},
		{"null", scalar.TypeUndefined, ""},
		{"true", scalar.TypeInteger, "1"},
		{"false", scalar.TypeText, ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			v, err := ParseOperand(test.input)
			require.NoError(t, err)
			require.Equal(t, test.typ, v.Type())
			require.Equal(t, test.expected, v.String())
		})
	}
}

func TestParseOperandErrors(t *testing.T) {
	for _, input := range []string{"", "foo", "[1]", `{"a": 1}`, "1 2", `"unterminated`} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseOperand(input)
			require.Error(t, err)
		})
	}
}

func TestParseOperands(t *testing.T) {
	values, err := ParseOperands(scalar.OpAdd, []string{"1", "2.5"})
	require.NoError(t, err)
	require.Len(t, values, 2)

	_, err = ParseOperands(scalar.OpNeg, []string{"1", "2"})
	require.Error(t, err)

	_, err = ParseOperands(scalar.OpMul, []string{"1"})
	require.Error(t, err)
}

func TestEval(t *testing.T) {
	e := scalar.New(nil)

	tests := []struct {
		op       scalar.Op
		args     []string
		expected string
	}{
		{scalar.OpAdd, []string{"9223372036854775807", "1"}, "9223372036854775808"},
		{scalar.OpSub, []string{`"10"`, "2.5"}, "7.5"},
		{scalar.OpMul, []string{"0", "null"}, "0"},
		{scalar.OpDiv, []string{"7", "2"}, "3.5"},
		{scalar.OpNeg, []string{`"foo"`}, "-foo"},
		{scalar.OpNeg, []string{`"-5"`}, "5"},
	}

	for _, test := range tests {
		operands, err := ParseOperands(test.op, test.args)
		require.NoError(t, err)

		v, err := Eval(e, test.op, operands)
		require.NoError(t, err)
		require.Equal(t, test.expected, v.String())
	}

	operands, err := ParseOperands(scalar.OpDiv, []string{"1", "0"})
	require.NoError(t, err)
	_, err = Eval(e, scalar.OpDiv, operands)
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)

	operands, err = ParseOperands(scalar.OpMul, []string{"1e308", "10"})
	require.NoError(t, err)
	v, err := Eval(e, scalar.OpMul, operands)
	require.NoError(t, err)
	require.True(t, math.IsInf(v.Double(), 1))
}
