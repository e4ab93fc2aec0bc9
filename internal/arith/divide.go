package arith

import (
	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/types"
)

func (e *Engine) div(l, r *types.Value) (number, error) {
	// the divisor is checked as soon as its integer reading is known
	rm, rpos, rok := e.magnitude(r)
	if rok && rm == 0 {
		return number{}, ErrDivisionByZero
	}

	if rok {
		if lm, lpos, ok := e.magnitude(l); ok && lm >= rm && e.tryIntegerDivision(lm, rm) {
			if lm%rm == 0 {
				return fromMagnitude(lm/rm, lpos == rpos), nil
			}
			e.trace(overload.OpDiv, "inexact integer division, using floating point")
		}
	}

	nr := r.ToFloat(e.parser)
	nl := l.ToFloat(e.parser)
	// NaN is never zero
	if nr == 0 {
		return number{}, ErrDivisionByZero
	}

	return double(nl / nr), nil
}

// tryIntegerDivision reports whether the division of magnitudes should be
// attempted on integers. Otherwise floats are precise enough.
func (e *Engine) tryIntegerDivision(lm, rm uint64) bool {
	return e.integerDivision || lm > maxExactFloatInt || rm > maxExactFloatInt
}
