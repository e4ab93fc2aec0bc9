package scalar

import (
	"github.com/chaisql/scalar/internal/types"
	"github.com/sirupsen/logrus"
)

// Options of the engine.
type Options struct {
	// IntegerDivision makes every division of integers return an integer
	// when the quotient is exact. By default, only divisions involving
	// integers too large to be exactly represented by a float do.
	IntegerDivision bool

	// NoOverloading disables operator overloading.
	NoOverloading bool

	// Overloads finds the operator handlers of referenced entities.
	// If nil, references are always read as numbers.
	Overloads Table

	// Parser reads numbers from strings. Defaults to DefaultParser.
	Parser NumberParser

	// Logger receives debug traces of type promotions and overload dispatch.
	Logger *logrus.Logger
}

// DefaultParser reads decimal numbers, infinities and NaN,
// after optional leading whitespace.
var DefaultParser NumberParser = types.DefaultParser
