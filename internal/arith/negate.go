package arith

import (
	"math"

	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/stringutil"
	"github.com/chaisql/scalar/internal/types"
)

// Neg computes -v and stores it into out, which may be v itself.
// A pending v is resolved first, then its negation handler, if any, runs and
// its result is returned without being stored.
//
// Strings that are not numbers are negated textually: "foo" becomes "-foo",
// "-foo" becomes "+foo" and "+foo" becomes "-foo".
func (e *Engine) Neg(out, v *types.Value, flags overload.Flags) (*types.Value, error) {
	if err := v.Resolve(); err != nil {
		return nil, err
	}

	operands := overload.Operands{Left: v}
	res, err := e.dispatcher.TryUnary(overload.OpNeg, &operands, flags|e.flags|overload.Numeric)
	if err != nil || res != nil {
		return res, err
	}
	v = operands.Left

	n := e.neg(v)

	tainted := v.IsTainted()
	n.store(out)
	out.SetTainted(tainted)
	return out, nil
}

func (e *Engine) neg(v *types.Value) number {
	if s, ok := e.negateString(v); ok {
		return text(s)
	}

	switch {
	case v.HasInteger():
		return negInteger(v.Int(), v.IsUnsigned())
	case v.HasDouble():
		return double(-v.Double())
	case v.HasText():
		if x, isUnsigned, ok := v.Integer(e.parser); ok {
			return negInteger(x, isUnsigned)
		}
	case v.IsUndefined():
		return integer(0)
	}

	return double(-v.ToFloat(e.parser))
}

// negInteger negates an integer reading, staying on integers
// when the result fits.
func negInteger(x int64, isUnsigned bool) number {
	if isUnsigned {
		u := uint64(x)
		switch {
		case u == absMinInt:
			return integer(math.MinInt64)
		case u <= math.MaxInt64:
			return integer(-int64(u))
		}
		return double(-float64(u))
	}

	if x == math.MinInt64 {
		return unsigned(absMinInt)
	}
	return integer(-x)
}

// negateString applies to strings without a numeric reading:
// strings starting like an identifier get a minus sign prepended,
// strings starting with a sign get it flipped unless the rest is a number
// after a minus sign.
func (e *Engine) negateString(v *types.Value) (string, bool) {
	if !v.HasText() || v.HasInteger() || v.HasDouble() {
		return "", false
	}

	s := v.Text()
	if stringutil.IsIdentifierStart(s) {
		return "-" + s, true
	}

	if s == "" {
		return "", false
	}

	switch s[0] {
	case '+':
		return "-" + s[1:], true
	case '-':
		if _, ok := e.parser.ParseNumber(s[1:]); !ok {
			return "+" + s[1:], true
		}
	}

	return "", false
}
