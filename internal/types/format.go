package types

import (
	"encoding/json"
	"math"
	"strconv"
)

// String returns the string reading of v.
func (v *Value) String() string {
	switch {
	case v.flags&flagPOK != 0:
		return v.pv
	case v.flags&flagROK != 0:
		return v.rv.String()
	case v.flags&flagIOK != 0:
		if v.flags&flagIsUV != 0 {
			return strconv.FormatUint(uint64(v.iv), 10)
		}
		return strconv.FormatInt(v.iv, 10)
	case v.flags&flagNOK != 0:
		return FormatDouble(v.nv)
	}

	return ""
}

// FormatDouble formats f with up to 15 significant digits.
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	return strconv.FormatFloat(f, 'g', 15, 64)
}

func (v *Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalJSON encodes undefined values as null, numbers as JSON numbers
// and everything else, non-finite floats included, as JSON strings.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Type() {
	case TypeUndefined:
		return []byte("null"), nil
	case TypeInteger:
		return strconv.AppendInt(nil, v.iv, 10), nil
	case TypeUnsigned:
		return strconv.AppendUint(nil, uint64(v.iv), 10), nil
	case TypeDouble:
		if math.IsNaN(v.nv) || math.IsInf(v.nv, 0) {
			return json.Marshal(FormatDouble(v.nv))
		}
		return strconv.AppendFloat(nil, v.nv, 'g', -1, 64), nil
	}

	return json.Marshal(v.String())
}
