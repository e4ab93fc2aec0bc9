package arithtests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `
-- test: basic
-- a comment
> add 1 "a b"
integer 1
! div 1 0
'division by zero'

-- test: second
> neg "\"x"
text -"x
`

	ts, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ts.Tests, 2)

	basic := ts.Tests[0]
	require.Equal(t, "basic", basic.Name)
	require.Len(t, basic.Statements, 2)
	require.Equal(t, &Statement{Op: "add", Operands: []string{"1", `"a b"`}, Line: 4, Res: "integer 1", ResLine: 5}, basic.Statements[0])
	require.True(t, basic.Statements[1].Fail)
	require.Equal(t, "division by zero", basic.Statements[1].Res)

	require.Equal(t, []string{`"\"x"`}, ts.Tests[1].Statements[0].Operands)
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"> add 1 2",
		"-- test: x\n> add \"1",
		"-- test: x\n! div 1 0\ndivision",
		"-- test: x\nfoo",
	}

	for _, test := range tests {
		_, err := Parse(strings.NewReader(test))
		require.Error(t, err, test)
	}
}
