package evalutil

import (
	"testing"

	"github.com/chaisql/scalar"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		name     string
		expected scalar.Op
	}{
		{"add", scalar.OpAdd},
		{"+", scalar.OpAdd},
		{"SUB", scalar.OpSub},
		{"*", scalar.OpMul},
		{"div", scalar.OpDiv},
		{"neg", scalar.OpNeg},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			op, err := ParseOperator(test.name)
			require.NoError(t, err)
			require.Equal(t, test.expected, op)
		})
	}
}

func TestParseOperatorSuggestions(t *testing.T) {
	_, err := ParseOperator("mull")
	require.Error(t, err)
	require.Equal(t, []string{"did you mean mul?"}, errors.GetAllHints(err))

	_, err = ParseOperator("%")
	require.Error(t, err)
	require.Empty(t, errors.GetAllHints(err))
}

func TestSuggestions(t *testing.T) {
	require.Equal(t, []string{"add"}, Suggestions("ad"))
	require.Equal(t, []string{"mul", "sub"}, Suggestions("mub"))
	require.Empty(t, Suggestions("pow"))
}
