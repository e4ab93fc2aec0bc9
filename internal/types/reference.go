package types

import (
	"strconv"

	"github.com/chaisql/scalar/lib/atomic"
)

// identities look like aligned heap addresses when printed.
var refIDs = atomic.NewSequence(0x55d0c0de1000, 0x18)

// Ref is an opaque reference to a host entity.
// Its identity is stable for its lifetime and unique in the process.
type Ref struct {
	id         uint64
	class      string
	overloaded bool

	// Target is the referenced entity. The engine never reads it.
	Target any
}

// NewRef returns a reference to target. class names the overload table
// of the referenced entity; overloaded reports whether that table
// declares operator overloads.
func NewRef(class string, target any, overloaded bool) *Ref {
	return &Ref{
		id:         refIDs.Next(),
		class:      class,
		overloaded: overloaded,
		Target:     target,
	}
}

// ID returns the identity of r.
func (r *Ref) ID() uint64 {
	return r.id
}

// Class returns the name of the overload table of r.
func (r *Ref) Class() string {
	return r.class
}

// Overloaded reports whether the referenced entity declares operator overloads.
func (r *Ref) Overloaded() bool {
	return r != nil && r.overloaded
}

func (r *Ref) String() string {
	s := "REF(0x" + strconv.FormatUint(r.id, 16) + ")"
	if r.class != "" {
		s = r.class + "=" + s
	}
	return s
}
