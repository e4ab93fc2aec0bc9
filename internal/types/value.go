package types

import (
	"math"
)

type flag uint8

const (
	// flagIOK is set when the integer reading is valid.
	flagIOK flag = 1 << iota
	// flagIsUV reinterprets the integer reading as a uint64.
	flagIsUV
	// flagNOK is set when the float reading is valid.
	flagNOK
	// flagPOK is set when the value holds a string.
	flagPOK
	// flagROK is set when the value holds a reference.
	flagROK
	flagPending
	flagTainted
)

const readings = flagIOK | flagIsUV | flagNOK | flagPOK | flagROK

// Value is a dynamically typed scalar. A value may hold several readings of
// the same quantity at once, for example a string and the integer it parses to,
// or an integer and an exactly equal float.
//
// Values are mutable and always handled by pointer: arithmetic writes its
// result into a caller-supplied output value.
type Value struct {
	flags flag
	iv    int64
	nv    float64
	pv    string
	rv    *Ref

	resolver Resolver
}

// NewUndefined returns a value that was never assigned.
func NewUndefined() *Value {
	return &Value{}
}

// NewInteger returns a signed integer value.
func NewInteger(x int64) *Value {
	return &Value{flags: flagIOK, iv: x}
}

// NewUnsigned returns an unsigned integer value.
// Values that fit in an int64 are stored as signed integers.
func NewUnsigned(x uint64) *Value {
	var v Value
	v.SetUnsigned(x)
	return &v
}

// NewDouble returns a floating point value.
func NewDouble(x float64) *Value {
	return &Value{flags: flagNOK, nv: x}
}

// NewText returns a string value.
func NewText(x string) *Value {
	return &Value{flags: flagPOK, pv: x}
}

// NewReference returns a value referencing r.
func NewReference(r *Ref) *Value {
	return &Value{flags: flagROK, rv: r}
}

// NewMagical returns an undefined value whose content is produced by r
// the first time it is resolved. If r is nil, the value is simply undefined.
func NewMagical(r Resolver) *Value {
	if r == nil {
		return &Value{}
	}
	return &Value{flags: flagPending, resolver: r}
}

// Type returns the type of the authoritative reading of v.
// An integer reading wins over a float reading, which wins over a string.
func (v *Value) Type() Type {
	switch {
	case v.flags&flagROK != 0:
		return TypeReference
	case v.flags&flagIOK != 0:
		if v.flags&flagIsUV != 0 {
			return TypeUnsigned
		}
		return TypeInteger
	case v.flags&flagNOK != 0:
		return TypeDouble
	case v.flags&flagPOK != 0:
		return TypeText
	}

	return TypeUndefined
}

// IsUndefined reports whether v holds no reading at all.
func (v *Value) IsUndefined() bool {
	return v.flags&readings == 0
}

// IsPending reports whether v must be resolved before being read.
func (v *Value) IsPending() bool {
	return v.flags&flagPending != 0
}

// IsTainted reports whether v was derived from tainted data.
func (v *Value) IsTainted() bool {
	return v.flags&flagTainted != 0
}

// SetTainted marks or unmarks v as tainted.
func (v *Value) SetTainted(tainted bool) {
	if tainted {
		v.flags |= flagTainted
	} else {
		v.flags &^= flagTainted
	}
}

// HasInteger reports whether v holds a valid integer reading.
func (v *Value) HasInteger() bool {
	return v.flags&flagIOK != 0
}

// HasDouble reports whether v holds a valid float reading.
func (v *Value) HasDouble() bool {
	return v.flags&flagNOK != 0
}

// HasText reports whether v holds a string.
func (v *Value) HasText() bool {
	return v.flags&flagPOK != 0
}

// IsUnsigned reports whether the integer reading of v is unsigned.
func (v *Value) IsUnsigned() bool {
	return v.flags&(flagIOK|flagIsUV) == flagIOK|flagIsUV
}

// IsReference reports whether v holds a reference.
func (v *Value) IsReference() bool {
	return v.flags&flagROK != 0
}

// IsOverloaded reports whether v references an entity declaring operator overloads.
func (v *Value) IsOverloaded() bool {
	return v.flags&flagROK != 0 && v.rv.Overloaded()
}

// Int returns the cached signed integer reading. It is only meaningful if HasInteger is true.
func (v *Value) Int() int64 {
	return v.iv
}

// Uint returns the cached integer reading as a uint64.
func (v *Value) Uint() uint64 {
	return uint64(v.iv)
}

// Double returns the cached float reading. It is only meaningful if HasDouble is true.
func (v *Value) Double() float64 {
	return v.nv
}

// Text returns the string held by v.
func (v *Value) Text() string {
	return v.pv
}

// Ref returns the reference held by v, or nil.
func (v *Value) Ref() *Ref {
	if v.flags&flagROK == 0 {
		return nil
	}
	return v.rv
}

// setReadings replaces every reading of v. Pending resolution is cleared
// since the value is now known; taint is left to the caller.
func (v *Value) setReadings(f flag) {
	v.flags = v.flags&flagTainted | f
	if f&flagPOK == 0 {
		v.pv = ""
	}
	if f&flagROK == 0 {
		v.rv = nil
	}
}

// SetInteger stores a signed integer in v.
func (v *Value) SetInteger(x int64) {
	if v.flags&(readings|flagPending) == flagIOK {
		// already a plain signed integer
		v.iv = x
		return
	}
	v.setReadings(flagIOK)
	v.iv = x
}

// SetUnsigned stores an unsigned integer in v, as a signed integer
// if it fits.
func (v *Value) SetUnsigned(x uint64) {
	if x <= math.MaxInt64 {
		v.SetInteger(int64(x))
		return
	}
	v.setReadings(flagIOK | flagIsUV)
	v.iv = int64(x)
}

// SetDouble stores a float in v.
func (v *Value) SetDouble(x float64) {
	if v.flags&(readings|flagPending) == flagNOK {
		v.nv = x
		return
	}
	v.setReadings(flagNOK)
	v.nv = x
}

// SetText stores a string in v.
func (v *Value) SetText(x string) {
	v.setReadings(flagPOK)
	v.pv = x
}

// SetReference stores a reference in v.
func (v *Value) SetReference(r *Ref) {
	v.setReadings(flagROK)
	v.rv = r
}

// SetUndefined drops every reading of v.
func (v *Value) SetUndefined() {
	v.setReadings(0)
}

// Assign copies the readings and the taint of src into v.
// The resolver of v, if any, is kept.
func (v *Value) Assign(src *Value) {
	if v == src {
		return
	}

	v.flags = src.flags&(readings|flagTainted) | v.flags&^(readings|flagTainted|flagPending)
	v.iv = src.iv
	v.nv = src.nv
	v.pv = src.pv
	v.rv = src.rv
}

// Clone returns a copy of v without its resolver.
func (v *Value) Clone() *Value {
	var c Value
	c.Assign(v)
	return &c
}

// cacheInteger adds an integer reading equal to the other readings of v.
func (v *Value) cacheInteger(x int64, unsigned bool) {
	v.flags |= flagIOK
	if unsigned {
		v.flags |= flagIsUV
	} else {
		v.flags &^= flagIsUV
	}
	v.iv = x
}

// cacheDouble adds a float reading equal to the other readings of v.
func (v *Value) cacheDouble(x float64) {
	v.flags |= flagNOK
	v.nv = x
}
