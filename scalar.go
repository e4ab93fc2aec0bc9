package scalar

import (
	"github.com/chaisql/scalar/internal/arith"
	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/types"
)

type (
	// Value is a dynamically typed scalar.
	Value = types.Value
	// Ref points to an entity, possibly declaring operator handlers.
	Ref = types.Ref
	// Type of the authoritative reading of a value.
	Type = types.Type

	Resolver     = types.Resolver
	ResolverFunc = types.ResolverFunc
	NumberParser = types.NumberParser

	// Op is an overloadable operator.
	Op = overload.Op
	// Handler implements an operator for a class of entities.
	Handler = overload.Handler
	// Table finds the handlers of referenced entities.
	Table = overload.Table
	// Registry is a Table storing handlers by class name.
	Registry = overload.Registry
	// Flags alter how an operation is dispatched.
	Flags = overload.Flags
)

const (
	TypeUndefined = types.TypeUndefined
	TypeInteger   = types.TypeInteger
	TypeUnsigned  = types.TypeUnsigned
	TypeDouble    = types.TypeDouble
	TypeText      = types.TypeText
	TypeReference = types.TypeReference
)

const (
	OpAdd       = overload.OpAdd
	OpSub       = overload.OpSub
	OpMul       = overload.OpMul
	OpDiv       = overload.OpDiv
	OpNeg       = overload.OpNeg
	OpNumify    = overload.OpNumify
	OpAddAssign = overload.OpAddAssign
	OpSubAssign = overload.OpSubAssign
	OpMulAssign = overload.OpMulAssign
	OpDivAssign = overload.OpDivAssign
)

const (
	// Mutator stores the result into the output value, even when
	// a handler computed it.
	Mutator = overload.Mutator
	// NoOverloading disables operator handlers for one operation.
	NoOverloading = overload.NoOverloading
)

// ErrDivisionByZero is returned when dividing by zero.
var ErrDivisionByZero = arith.ErrDivisionByZero

// ParseOp returns the operator named s, for instance "+" or "neg".
func ParseOp(s string) (Op, bool) {
	return overload.ParseOp(s)
}

// NewRegistry returns an empty handler registry.
func NewRegistry() *Registry {
	return overload.NewRegistry()
}

// Undefined returns an undefined value.
func Undefined() *Value {
	return types.NewUndefined()
}

// Int returns a signed integer value.
func Int(x int64) *Value {
	return types.NewInteger(x)
}

// Uint returns an unsigned integer value.
func Uint(x uint64) *Value {
	return types.NewUnsigned(x)
}

// Float returns a floating point value.
func Float(x float64) *Value {
	return types.NewDouble(x)
}

// String returns a string value.
func String(s string) *Value {
	return types.NewText(s)
}

// Reference returns a value referencing target. If overloaded is true,
// the handlers of class are consulted for every operation on the value.
func Reference(class string, target any, overloaded bool) *Value {
	return types.NewReference(types.NewRef(class, target, overloaded))
}

// Magical returns a value whose content is produced by r the first time
// it is used by an operation.
func Magical(r Resolver) *Value {
	return types.NewMagical(r)
}

// Engine computes arithmetic operations on values.
// It is safe for concurrent use, values are not.
type Engine struct {
	e *arith.Engine
}

// New creates an engine. opts may be nil.
func New(opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}

	return &Engine{
		e: arith.New(arith.Options{
			IntegerDivision: opts.IntegerDivision,
			NoOverloading:   opts.NoOverloading,
			Overloads:       opts.Overloads,
			Parser:          opts.Parser,
			Logger:          opts.Logger,
		}),
	}
}

// Add returns left + right.
func (e *Engine) Add(left, right *Value) (*Value, error) {
	return e.e.Add(types.NewUndefined(), left, right, 0)
}

// Sub returns left - right.
func (e *Engine) Sub(left, right *Value) (*Value, error) {
	return e.e.Sub(types.NewUndefined(), left, right, 0)
}

// Mul returns left * right.
func (e *Engine) Mul(left, right *Value) (*Value, error) {
	return e.e.Mul(types.NewUndefined(), left, right, 0)
}

// Div returns left / right.
func (e *Engine) Div(left, right *Value) (*Value, error) {
	return e.e.Div(types.NewUndefined(), left, right, 0)
}

// Neg returns -v.
func (e *Engine) Neg(v *Value) (*Value, error) {
	return e.e.Neg(types.NewUndefined(), v, 0)
}

// AddAssign computes left += right, storing the result into left.
func (e *Engine) AddAssign(left, right *Value) error {
	_, err := e.e.Add(left, left, right, overload.Mutator)
	return err
}

// SubAssign computes left -= right, storing the result into left.
func (e *Engine) SubAssign(left, right *Value) error {
	_, err := e.e.Sub(left, left, right, overload.Mutator)
	return err
}

// MulAssign computes left *= right, storing the result into left.
func (e *Engine) MulAssign(left, right *Value) error {
	_, err := e.e.Mul(left, left, right, overload.Mutator)
	return err
}

// DivAssign computes left /= right, storing the result into left.
func (e *Engine) DivAssign(left, right *Value) error {
	_, err := e.e.Div(left, left, right, overload.Mutator)
	return err
}

// Binary computes left op right, op being OpAdd, OpSub, OpMul or OpDiv.
// The result is stored into out, unless an operator handler computed it
// and flags doesn't have Mutator. out may be one of the operands.
func (e *Engine) Binary(op Op, out, left, right *Value, flags Flags) (*Value, error) {
	return e.e.Binary(op, out, left, right, flags)
}

// Numify returns the numeric stand-in of v: v itself unless v is a reference.
func (e *Engine) Numify(v *Value) (*Value, error) {
	if err := v.Resolve(); err != nil {
		return nil, err
	}
	return e.e.Dispatcher().Numify(v)
}
