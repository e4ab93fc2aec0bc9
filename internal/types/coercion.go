package types

import (
	"math"

	"github.com/chaisql/scalar/internal/stringutil"
)

// A Resolver produces the content of a value lazily.
// Resolve must populate at least one reading of v, using its setters.
type Resolver interface {
	Resolve(v *Value) error
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(v *Value) error

// Resolve calls f(v).
func (f ResolverFunc) Resolve(v *Value) error {
	return f(v)
}

// Resolve runs the resolver of v if its content is pending.
// It is a no-op if v was already resolved, until Invalidate is called.
// Errors returned by the resolver are returned as is.
func (v *Value) Resolve() error {
	if v.flags&flagPending == 0 || v.resolver == nil {
		return nil
	}

	// cleared first so that a resolver reading v doesn't recurse
	v.flags &^= flagPending
	return v.resolver.Resolve(v)
}

// Invalidate marks the content of v as pending again if v has a resolver,
// so that the next Resolve runs it once more.
func (v *Value) Invalidate() {
	if v.resolver != nil {
		v.flags |= flagPending
	}
}

// A NumberParser reads the numeric prefix of a string.
// It returns whether the whole string is a number.
type NumberParser interface {
	ParseNumber(s string) (stringutil.Number, bool)
}

// NumberParserFunc adapts a function to the NumberParser interface.
type NumberParserFunc func(s string) (stringutil.Number, bool)

// ParseNumber calls f(s).
func (f NumberParserFunc) ParseNumber(s string) (stringutil.Number, bool) {
	return f(s)
}

// DefaultParser parses decimal numbers, see stringutil.ParseNumber.
var DefaultParser NumberParser = NumberParserFunc(stringutil.ParseNumber)

// maxExactFloat is 2^53. Above it, a float may be the rounding of
// several integers.
const maxExactFloat = float64(1 << 53)

// LosslessFloatToInt converts f to an int64 if no information is lost.
// It fails for NaN, infinities, fractional values and values whose
// magnitude is 2^53 or more.
func LosslessFloatToInt(f float64) (int64, bool) {
	// written so that NaN fails the range check
	if math.Abs(f) < maxExactFloat {
		i := int64(f)
		if float64(i) == f {
			return i, true
		}
	}

	return 0, false
}

// Integer returns the integer reading of v if it can be obtained without
// loss: integers, floats holding an exact integral value and strings that
// are integral numbers as a whole. If unsigned is true, x is the bit
// pattern of a uint64. References and undefined values have no integer reading.
// v is never modified.
func (v *Value) Integer(p NumberParser) (x int64, unsigned bool, ok bool) {
	switch {
	case v.flags&flagIOK != 0:
		return v.iv, v.flags&flagIsUV != 0, true
	case v.flags&flagROK != 0:
		return 0, false, false
	case v.flags&flagNOK != 0:
		x, ok = LosslessFloatToInt(v.nv)
		return x, false, ok
	case v.flags&flagPOK != 0:
		n, whole := p.ParseNumber(v.pv)
		if !whole {
			return 0, false, false
		}
		if n.IsInt {
			return n.Int, n.Unsigned, true
		}
		x, ok = LosslessFloatToInt(n.Float)
		return x, false, ok
	}

	return 0, false, false
}

// ToFloat returns the float reading of v. Undefined values and strings
// without a numeric prefix read as zero, references read as their identity.
// v is never modified.
func (v *Value) ToFloat(p NumberParser) float64 {
	switch {
	case v.flags&flagROK != 0:
		return float64(v.rv.ID())
	case v.flags&flagNOK != 0:
		return v.nv
	case v.flags&flagIOK != 0:
		if v.flags&flagIsUV != 0 {
			return float64(uint64(v.iv))
		}
		return float64(v.iv)
	case v.flags&flagPOK != 0:
		n, _ := p.ParseNumber(v.pv)
		return n.Float
	}

	return 0
}

// CacheNumber stores the numeric readings of a numeric string next to it,
// turning v into a value that is both a string and a number.
// It does nothing if v is not a string or already has a numeric reading,
// and reports whether v has a numeric reading afterwards.
func (v *Value) CacheNumber(p NumberParser) bool {
	if v.flags&(flagIOK|flagNOK) != 0 {
		return true
	}
	if v.flags&flagPOK == 0 {
		return false
	}

	n, ok := p.ParseNumber(v.pv)
	if !ok {
		return false
	}

	v.cacheDouble(n.Float)
	if n.IsInt {
		v.cacheInteger(n.Int, n.Unsigned)
	} else if i, lossless := LosslessFloatToInt(n.Float); lossless {
		v.cacheInteger(i, false)
	}
	return true
}

// LooksLikeNumber reports whether v has a numeric reading or holds a string
// that is a number as a whole.
func (v *Value) LooksLikeNumber(p NumberParser) bool {
	switch {
	case v.flags&(flagIOK|flagNOK) != 0:
		return true
	case v.flags&flagPOK != 0:
		_, ok := p.ParseNumber(v.pv)
		return ok
	}

	return false
}
