package atomic

import (
	"sync/atomic"
)

// Sequence hands out increasing identifiers, spaced by a fixed step.
// It is safe for concurrent use.
type Sequence struct {
	step    uint64
	current atomic.Uint64
}

// NewSequence returns a sequence whose first identifier is start.
func NewSequence(start, step uint64) *Sequence {
	if step == 0 {
		step = 1
	}

	s := Sequence{
		step: step,
	}
	s.current.Store(start - step)
	return &s
}

// Get returns the last identifier handed out.
func (s *Sequence) Get() uint64 {
	return s.current.Load()
}

// Next returns a new identifier.
func (s *Sequence) Next() uint64 {
	return s.current.Add(s.step)
}
