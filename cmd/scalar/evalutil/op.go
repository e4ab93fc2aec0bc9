package evalutil

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/chaisql/scalar"
	"github.com/cockroachdb/errors"
)

var operators = map[string]scalar.Op{
	"add": scalar.OpAdd,
	"sub": scalar.OpSub,
	"mul": scalar.OpMul,
	"div": scalar.OpDiv,
	"neg": scalar.OpNeg,
	"+":   scalar.OpAdd,
	"-":   scalar.OpSub,
	"*":   scalar.OpMul,
	"/":   scalar.OpDiv,
}

// ParseOperator returns the operator named name.
// Unknown names are reported with the closest known names as a hint.
func ParseOperator(name string) (scalar.Op, error) {
	if op, ok := operators[strings.ToLower(name)]; ok {
		return op, nil
	}

	err := errors.Newf("unknown operator %q", name)
	if s := Suggestions(name); len(s) > 0 {
		err = errors.WithHintf(err, "did you mean %s?", strings.Join(s, " or "))
	}
	return 0, err
}

// Suggestions returns the operator names close to in.
func Suggestions(in string) []string {
	var suggestions []string
	for name := range operators {
		if shouldSuggest(name, in) {
			suggestions = append(suggestions, name)
		}
	}

	sort.Strings(suggestions)
	return suggestions
}

func shouldSuggest(name, in string) bool {
	// symbols are too short to be misspelled
	if len(name) < 2 {
		return false
	}

	d := levenshtein.ComputeDistance(name, strings.ToLower(in))
	return d > 0 && d <= len(name)/2
}
