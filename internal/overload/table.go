package overload

import (
	"sync"

	"github.com/chaisql/scalar/internal/types"
)

// A Handler implements an operator for a class.
// For binary operators, self is the operand whose class provides the handler
// and swapped reports whether self was the right operand.
// For unary operators, other is nil.
// A nil result is treated as an undefined value.
type Handler func(self, other *types.Value, swapped bool) (*types.Value, error)

// A Table finds the handlers declared by the entity a reference points to.
type Table interface {
	Lookup(ref *types.Ref, op Op) (Handler, bool)
}

// Registry is a Table storing handlers by class name.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]map[Op]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]map[Op]Handler),
	}
}

// Register declares h as the handler of op for class.
// It replaces any previous handler.
func (r *Registry) Register(class string, op Op, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.classes[class]
	if !ok {
		m = make(map[Op]Handler)
		r.classes[class] = m
	}
	m[op] = h
}

// Unregister removes the handler of op for class.
func (r *Registry) Unregister(class string, op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.classes[class], op)
}

// Lookup returns the handler of op declared by the class of ref.
func (r *Registry) Lookup(ref *types.Ref, op Op) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.classes[ref.Class()][op]
	return h, ok
}
