package overload

import (
	"io"

	"github.com/chaisql/scalar/internal/types"
	"github.com/sirupsen/logrus"
)

// Flags control how a dispatch is performed.
type Flags uint8

const (
	// Mutator stores the result of a handler into the output value
	// instead of returning it directly.
	Mutator Flags = 1 << iota
	// Numeric replaces reference operands with numbers when no handler applies.
	Numeric
	// NoOverloading disables handler lookups.
	NoOverloading
)

// maxNumifyDepth bounds the chain of numeric conversions of a reference.
const maxNumifyDepth = 100

// Operands of an operation. When no handler applies and a numeric
// result is required, the dispatcher replaces references with numbers.
// The values originally passed are never modified.
type Operands struct {
	Left, Right *types.Value
}

// Dispatcher finds and runs operator handlers.
type Dispatcher struct {
	table  Table
	logger *logrus.Logger
}

// NewDispatcher returns a dispatcher looking up handlers in table.
// table may be nil, in which case no handler is ever found and references
// are converted to their identity. logger may be nil.
func NewDispatcher(table Table, logger *logrus.Logger) *Dispatcher {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &Dispatcher{
		table:  table,
		logger: logger,
	}
}

func (d *Dispatcher) lookup(v *types.Value, op Op) (Handler, bool) {
	if d.table == nil {
		return nil, false
	}
	return d.table.Lookup(v.Ref(), op)
}

func (d *Dispatcher) trace(op Op, self *types.Value, msg string) {
	if !d.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	d.logger.WithFields(logrus.Fields{
		"op":    op.String(),
		"class": self.Ref().Class(),
	}).Debug(msg)
}

// TryBinary runs the handler of op if one of the operands declares it.
// The left operand's class is consulted first, then the right one's.
//
// If a handler runs, its result is stored into out and out is returned when
// flags has Mutator, otherwise the result is returned and out is untouched.
// If no handler applies, TryBinary returns nil and, if flags has Numeric,
// the references of operands are replaced by their numeric stand-ins.
// With NoOverloading, no handler is looked up, numeric conversions included.
// Errors returned by handlers are returned as is.
func (d *Dispatcher) TryBinary(op Op, out *types.Value, operands *Operands, flags Flags) (*types.Value, error) {
	left, right := operands.Left, operands.Right
	enabled := flags&NoOverloading == 0

	var (
		h       Handler
		self    = left
		other   = right
		swapped bool
		found   bool
	)

	if enabled && left.IsOverloaded() {
		if flags&Mutator != 0 {
			if aop, ok := op.Assign(); ok {
				h, found = d.lookup(left, aop)
			}
		}
		if !found {
			h, found = d.lookup(left, op)
		}
	}
	if enabled && !found && right.IsOverloaded() {
		h, found = d.lookup(right, op)
		self, other, swapped = right, left, true
	}

	if found {
		d.trace(op, self, "overload handler intercepted operation")

		res, err := call(h, self, other, swapped)
		if err != nil {
			return nil, err
		}

		if flags&Mutator != 0 {
			out.Assign(res)
			return out, nil
		}
		return res, nil
	}

	if flags&Numeric != 0 {
		l, err := d.numify(left, 0, enabled)
		if err != nil {
			return nil, err
		}
		r := l
		if right != left {
			r, err = d.numify(right, 0, enabled)
			if err != nil {
				return nil, err
			}
		}
		operands.Left, operands.Right = l, r
	}

	return nil, nil
}

// TryUnary runs the handler of the unary operator op if the operand declares it.
// Unary results are always returned, never stored.
// A missing negation handler falls back to the subtraction handler,
// called as 0 - operand.
// If no handler applies, TryUnary returns nil and, if flags has Numeric,
// operands.Left is replaced by its numeric stand-in.
func (d *Dispatcher) TryUnary(op Op, operands *Operands, flags Flags) (*types.Value, error) {
	v := operands.Left
	enabled := flags&NoOverloading == 0

	if enabled && v.IsOverloaded() {
		if h, ok := d.lookup(v, op); ok {
			d.trace(op, v, "overload handler intercepted operation")
			return call(h, v, nil, false)
		}

		if op == OpNeg {
			if h, ok := d.lookup(v, OpSub); ok {
				d.trace(OpSub, v, "negation computed with subtraction handler")
				return call(h, v, types.NewInteger(0), true)
			}
		}
	}

	if flags&Numeric != 0 {
		n, err := d.numify(v, 0, enabled)
		if err != nil {
			return nil, err
		}
		operands.Left = n
	}

	return nil, nil
}

func call(h Handler, self, other *types.Value, swapped bool) (*types.Value, error) {
	res, err := h(self, other, swapped)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return types.NewUndefined(), nil
	}
	return res, nil
}

// Numify returns the numeric stand-in of v. Values that are not references
// are returned as is. A reference is converted with the numeric conversion
// handler of its class if it has one, repeatedly if that handler returns
// another reference; otherwise its stand-in is its identity, as an unsigned integer.
// The stand-in is tainted if v is.
func (d *Dispatcher) Numify(v *types.Value) (*types.Value, error) {
	return d.numify(v, 0, true)
}

func (d *Dispatcher) numify(v *types.Value, depth int, handlers bool) (*types.Value, error) {
	if !v.IsReference() {
		return v, nil
	}

	ref := v.Ref()
	if handlers && v.IsOverloaded() && depth < maxNumifyDepth {
		if h, ok := d.lookup(v, OpNumify); ok {
			res, err := h(v, nil, false)
			if err != nil {
				return nil, err
			}

			// a conversion returning the same entity means "use the identity"
			if res != nil && (!res.IsReference() || res.Ref().ID() != ref.ID()) {
				if err := res.Resolve(); err != nil {
					return nil, err
				}

				n, err := d.numify(res, depth+1, true)
				if err != nil {
					return nil, err
				}
				if v.IsTainted() && !n.IsTainted() {
					n = n.Clone()
					n.SetTainted(true)
				}
				return n, nil
			}
		}
	}

	s := types.NewUnsigned(ref.ID())
	s.SetTainted(v.IsTainted())
	return s, nil
}
