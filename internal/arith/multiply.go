package arith

import (
	"math"

	"github.com/chaisql/scalar/internal/overflow"
	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/types"
)

func (e *Engine) mul(l, r *types.Value) (number, error) {
	switch {
	case bothSigned(l, r):
		if x, ok := overflow.Mul(l.Int(), r.Int()); ok {
			return integer(x), nil
		}
		e.trace(overload.OpMul, "integer overflow, combining magnitudes")
	case bothDoubles(l, r):
		nl, nr := l.Double(), r.Double()
		il, okl := types.LosslessFloatToInt(nl)
		ir, okr := types.LosslessFloatToInt(nr)
		if okl && okr {
			if x, ok := overflow.Mul(il, ir); ok {
				return integer(x), nil
			}
		}
		return double(nl * nr), nil
	}

	rm, rpos, rok := e.magnitude(r)
	lm, lpos, lok := e.magnitude(l)
	if rok && lok {
		if m, ok := overflow.Mul64(lm, rm); ok {
			// the product is non-negative iff the signs are the same
			return fromMagnitude(m, lpos == rpos), nil
		}
		e.trace(overload.OpMul, "magnitude overflow, using floating point")
	}

	nl := l.ToFloat(e.parser)
	nr := r.ToFloat(e.parser)

	// an integer zero absorbs every number but NaN
	if (lok && lm == 0 && !math.IsNaN(nr)) || (rok && rm == 0 && !math.IsNaN(nl)) {
		return integer(0), nil
	}

	return double(nl * nr), nil
}
