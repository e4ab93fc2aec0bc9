package arith

import (
	"github.com/chaisql/scalar/internal/types"
)

type numberKind uint8

const (
	kindInteger numberKind = iota
	kindUnsigned
	kindDouble
	kindText
)

// number is the result of a raw operation, kept aside until
// every operand has been read.
type number struct {
	kind numberKind
	i    int64
	f    float64
	s    string
}

func integer(x int64) number {
	return number{kind: kindInteger, i: x}
}

func unsigned(x uint64) number {
	return number{kind: kindUnsigned, i: int64(x)}
}

func double(x float64) number {
	return number{kind: kindDouble, f: x}
}

func text(s string) number {
	return number{kind: kindText, s: s}
}

func (n number) store(out *types.Value) {
	switch n.kind {
	case kindInteger:
		out.SetInteger(n.i)
	case kindUnsigned:
		out.SetUnsigned(uint64(n.i))
	case kindDouble:
		out.SetDouble(n.f)
	case kindText:
		out.SetText(n.s)
	}
}

// absMinInt is the magnitude of math.MinInt64.
const absMinInt = uint64(1 << 63)

// maxExactFloatInt is the largest magnitude below which every integer
// is exactly representable by a float64.
const maxExactFloatInt = uint64(1 << 53)

// magnitude splits the integer reading of v into its absolute value and
// its sign. Undefined values read as zero. ok is false if v has no
// integer reading.
func (e *Engine) magnitude(v *types.Value) (mag uint64, nonNeg bool, ok bool) {
	if v.IsUndefined() {
		return 0, true, true
	}

	x, isUnsigned, ok := v.Integer(e.parser)
	if !ok {
		return 0, false, false
	}
	if isUnsigned || x >= 0 {
		return uint64(x), true, true
	}

	// -(x+1) can't overflow, even for MinInt64
	return uint64(-(x + 1)) + 1, false, true
}

// fromMagnitude builds the number whose absolute value is mag.
// Non-negative numbers are unsigned integers, negative ones signed integers
// if they fit, floats otherwise.
func fromMagnitude(mag uint64, nonNeg bool) number {
	if nonNeg {
		return unsigned(mag)
	}
	if mag <= absMinInt {
		// two's complement negation, exact for mag == 2^63
		return integer(int64(^mag + 1))
	}
	return double(-float64(mag))
}

// bothSigned reports whether both values are plain signed integers.
func bothSigned(l, r *types.Value) bool {
	return l.HasInteger() && r.HasInteger() && !l.IsUnsigned() && !r.IsUnsigned()
}

// bothDoubles reports whether both values are floats without an integer reading.
func bothDoubles(l, r *types.Value) bool {
	return l.HasDouble() && r.HasDouble() && !l.HasInteger() && !r.HasInteger()
}
