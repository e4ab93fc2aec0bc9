// Package overflow provides integer arithmetic that reports overflow
// instead of wrapping around.
package overflow

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Add returns a + b. ok is false if the result doesn't fit in T.
func Add[T constraints.Signed](a, b T) (r T, ok bool) {
	r = a + b
	// overflow happened if both operands have the same sign
	// and the sign of the result differs from it
	if (a >= 0) == (b >= 0) && (r >= 0) != (a >= 0) {
		return 0, false
	}
	return r, true
}

// Sub returns a - b. ok is false if the result doesn't fit in T.
func Sub[T constraints.Signed](a, b T) (r T, ok bool) {
	r = a - b
	if (a >= 0) != (b >= 0) && (r >= 0) != (a >= 0) {
		return 0, false
	}
	return r, true
}

// Mul returns a * b. ok is false if the result doesn't fit in T.
func Mul[T constraints.Signed](a, b T) (r T, ok bool) {
	// zero multiplication cannot overflow
	if a == 0 || b == 0 {
		return 0, true
	}

	r = a * b
	if r/b != a {
		return 0, false
	}
	// min * -1 wraps back to min and passes the division check
	if (a == -1 && isMin(b)) || (b == -1 && isMin(a)) {
		return 0, false
	}
	return r, true
}

// isMin reports whether x is the smallest value of its type,
// the only non-zero value equal to its own negation.
func isMin[T constraints.Signed](x T) bool {
	return x != 0 && x == -x
}

// AddU returns a + b. ok is false if the result doesn't fit in T.
func AddU[T constraints.Unsigned](a, b T) (r T, ok bool) {
	r = a + b
	if r < a {
		return 0, false
	}
	return r, true
}

// SubU returns a - b. ok is false if b > a.
func SubU[T constraints.Unsigned](a, b T) (r T, ok bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// MulU returns a * b. ok is false if the result doesn't fit in T.
func MulU[T constraints.Unsigned](a, b T) (r T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	r = a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// Mul64 returns a * b using the full 128-bit product.
// ok is false if the high word is not zero.
func Mul64(a, b uint64) (r uint64, ok bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	return lo, true
}

// Add64 returns a + b using the carry of the native addition.
func Add64(a, b uint64) (r uint64, ok bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// AddMayOverflow is a conservative check for signed 64-bit addition
// and subtraction: it returns false only if the top two bits of both
// operands are either 00 or 11, in which case neither a+b nor a-b
// can overflow. A true result means the caller must use a checked operation.
func AddMayOverflow(a, b int64) bool {
	topA := uint64(a) >> 62
	topB := uint64(b) >> 62

	return ((topA+1)|(topB+1))&2 != 0
}
