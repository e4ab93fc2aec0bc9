package arith

import (
	"github.com/chaisql/scalar/internal/overflow"
	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/types"
)

func (e *Engine) add(l, r *types.Value) (number, error) {
	return e.addSub(l, r, false), nil
}

func (e *Engine) sub(l, r *types.Value) (number, error) {
	return e.addSub(l, r, true), nil
}

// checkedAddSub computes l+r, or l-r if sub is true.
func checkedAddSub(l, r int64, sub bool) (int64, bool) {
	if !overflow.AddMayOverflow(l, r) {
		if sub {
			return l - r, true
		}
		return l + r, true
	}

	if sub {
		return overflow.Sub(l, r)
	}
	return overflow.Add(l, r)
}

// addSub computes l+r, or l-r if sub is true.
func (e *Engine) addSub(l, r *types.Value, sub bool) number {
	op := overload.OpAdd
	if sub {
		op = overload.OpSub
	}

	switch {
	case bothSigned(l, r):
		if x, ok := checkedAddSub(l.Int(), r.Int(), sub); ok {
			return integer(x)
		}
		e.trace(op, "integer overflow, combining magnitudes")
	case bothDoubles(l, r):
		nl, nr := l.Double(), r.Double()
		il, okl := types.LosslessFloatToInt(nl)
		ir, okr := types.LosslessFloatToInt(nr)
		if okl && okr {
			if x, ok := checkedAddSub(il, ir, sub); ok {
				return integer(x)
			}
		}
		if sub {
			return double(nl - nr)
		}
		return double(nl + nr)
	}

	// a+b with a, b >= 0 and A, B < 0 their magnitudes:
	//   a + b =  (a + b)
	//   A + b = -(A - b)
	//   a + B =  (a - B)
	//   A + B = -(A + B)
	// subtraction flips the sign of the right operand.
	if rm, rpos, ok := e.magnitude(r); ok {
		if lm, lpos, ok := e.magnitude(l); ok {
			if sub {
				rpos = !rpos
			}
			if n, ok := combineAdd(lm, lpos, rm, rpos); ok {
				return n
			}
			e.trace(op, "magnitude overflow, using floating point")
		}
	}

	// left is read before right
	nl := l.ToFloat(e.parser)
	nr := r.ToFloat(e.parser)
	if sub {
		return double(nl - nr)
	}
	return double(nl + nr)
}

// combineAdd adds two signed magnitudes.
func combineAdd(lm uint64, lpos bool, rm uint64, rpos bool) (number, bool) {
	if lpos == rpos {
		m, ok := overflow.Add64(lm, rm)
		if !ok {
			return number{}, false
		}
		return fromMagnitude(m, lpos), true
	}

	// signs differ: the result has the sign of the larger magnitude
	if lm >= rm {
		m, ok := overflow.SubU(lm, rm)
		return fromMagnitude(m, lpos), ok
	}
	m, ok := overflow.SubU(rm, lm)
	return fromMagnitude(m, rpos), ok
}
