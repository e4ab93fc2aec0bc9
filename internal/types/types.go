package types

import (
	"fmt"
)

// Type represents the authoritative representation of a value.
type Type uint8

// List of supported types.
const (
	// TypeUndefined denotes a value that was never assigned.
	TypeUndefined Type = iota
	TypeInteger
	TypeUnsigned
	TypeDouble
	TypeText
	TypeReference
)

func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeInteger:
		return "integer"
	case TypeUnsigned:
		return "unsigned"
	case TypeDouble:
		return "double"
	case TypeText:
		return "text"
	case TypeReference:
		return "reference"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsNumber returns true if t is either an integer or a float.
func (t Type) IsNumber() bool {
	return t == TypeInteger || t == TypeUnsigned || t == TypeDouble
}

// IsInteger returns true if t is a signed or an unsigned integer.
func (t Type) IsInteger() bool {
	return t == TypeInteger || t == TypeUnsigned
}
