package stringutil

import (
	"math"
	"strconv"
	"strings"
)

// Number is the numeric reading of a string.
type Number struct {
	// Int holds the integer reading when IsInt is true.
	// If Unsigned is true, it is the bit pattern of a uint64.
	Int      int64
	Unsigned bool
	IsInt    bool

	// Float is always set.
	Float float64
}

// Uint64 returns the magnitude of an unsigned integer reading.
func (n Number) Uint64() uint64 {
	return uint64(n.Int)
}

// ParseNumber reads the longest numeric prefix of s.
// Leading whitespace, an optional sign, digits, a fraction and an exponent
// are accepted, as well as the case-insensitive words "inf", "infinity" and "nan".
// It returns the reading of that prefix, which is zero if there is none,
// and whether the whole string, trailing whitespace included, is a number.
func ParseNumber(s string) (Number, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if n, end, ok := parseSpecial(s, i, neg); ok {
		return n, isTrailingSpace(s[end:])
	}

	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intEnd := i

	isFloat := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		// "." alone is not a number, but "1." and ".5" are
		if j-i > 1 || intEnd > digits {
			isFloat = true
			i = j
		}
	}

	if i == digits {
		return Number{IsInt: true}, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			isFloat = true
			i = j
		}
	}

	whole := isTrailingSpace(s[i:])

	if !isFloat {
		if n, ok := parseInteger(s[digits:intEnd], neg); ok {
			return n, whole
		}
	}

	f, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		// out of range values are returned as ±Inf, which is what we want
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return Number{IsInt: true}, false
		}
	}

	return Number{Float: f}, whole
}

// parseInteger returns the integer reading of a string of digits.
// It fails if the magnitude doesn't fit in 64 bits.
func parseInteger(digits string, neg bool) (Number, bool) {
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Number{}, false
	}

	if neg {
		if u > 1<<63 {
			return Number{}, false
		}
		return Number{Int: int64(^u + 1), IsInt: true, Float: -float64(u)}, true
	}

	return Number{
		Int:      int64(u),
		Unsigned: u > math.MaxInt64,
		IsInt:    true,
		Float:    float64(u),
	}, true
}

var specials = []struct {
	word string
	val  float64
}{
	{"infinity", math.Inf(1)},
	{"inf", math.Inf(1)},
	{"nan", math.NaN()},
}

func parseSpecial(s string, i int, neg bool) (Number, int, bool) {
	for _, sp := range specials {
		if len(s)-i < len(sp.word) || !strings.EqualFold(s[i:i+len(sp.word)], sp.word) {
			continue
		}

		f := sp.val
		if neg {
			f = -f
		}
		return Number{Float: f}, i + len(sp.word), true
	}

	return Number{}, i, false
}

func isTrailingSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}

	return true
}

// LooksLikeNumber reports whether s, as a whole, is a number.
func LooksLikeNumber(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}
