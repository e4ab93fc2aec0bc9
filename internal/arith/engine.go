// Package arith implements the arithmetic operators of dynamic scalar values.
//
// Every binary operation runs in three steps: pending values are resolved,
// operator overloads get a chance to take over, then the raw arithmetic is
// performed. Raw arithmetic stays on integers as long as the result is exact
// and silently moves to floating point otherwise.
package arith

import (
	"io"

	"github.com/chaisql/scalar/internal/overload"
	"github.com/chaisql/scalar/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// ErrDivisionByZero is returned when dividing by an integer or a float zero.
var ErrDivisionByZero = errors.New("illegal division by zero")

// Options of the engine.
type Options struct {
	// IntegerDivision attempts an exact integer division for every division
	// of integers. When false, integer division is only attempted if an operand
	// is too large to be represented exactly by a float.
	IntegerDivision bool
	// NoOverloading disables operator overloads for every operation.
	NoOverloading bool
	// Overloads finds the handlers of overloaded operators. May be nil.
	Overloads overload.Table
	// Parser reads the numeric value of strings. Defaults to types.DefaultParser.
	Parser types.NumberParser
	// Logger receives debug traces of type promotions. May be nil.
	Logger *logrus.Logger
}

// Engine performs arithmetic on values.
// An engine is immutable and can be shared between goroutines,
// values cannot.
type Engine struct {
	integerDivision bool
	flags           overload.Flags
	parser          types.NumberParser
	dispatcher      *overload.Dispatcher
	logger          *logrus.Logger
}

// New creates an engine.
func New(opts Options) *Engine {
	e := Engine{
		integerDivision: opts.IntegerDivision,
		parser:          opts.Parser,
		logger:          opts.Logger,
	}

	if e.parser == nil {
		e.parser = types.DefaultParser
	}
	if e.logger == nil {
		e.logger = logrus.New()
		e.logger.SetOutput(io.Discard)
	}
	if opts.NoOverloading {
		e.flags |= overload.NoOverloading
	}

	e.dispatcher = overload.NewDispatcher(opts.Overloads, e.logger)
	return &e
}

// Parser returns the number parser used by the engine.
func (e *Engine) Parser() types.NumberParser {
	return e.parser
}

// Dispatcher returns the overload dispatcher used by the engine.
func (e *Engine) Dispatcher() *overload.Dispatcher {
	return e.dispatcher
}

func (e *Engine) trace(op overload.Op, msg string) {
	if !e.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	e.logger.WithField("op", op.String()).Debug(msg)
}

// rawFunc computes the result of an operation on operands without overloads.
type rawFunc func(left, right *types.Value) (number, error)

// Add computes left + right. See Binary.
func (e *Engine) Add(out, left, right *types.Value, flags overload.Flags) (*types.Value, error) {
	return e.binary(overload.OpAdd, out, left, right, flags, e.add)
}

// Sub computes left - right. See Binary.
func (e *Engine) Sub(out, left, right *types.Value, flags overload.Flags) (*types.Value, error) {
	return e.binary(overload.OpSub, out, left, right, flags, e.sub)
}

// Mul computes left * right. See Binary.
func (e *Engine) Mul(out, left, right *types.Value, flags overload.Flags) (*types.Value, error) {
	return e.binary(overload.OpMul, out, left, right, flags, e.mul)
}

// Div computes left / right. See Binary.
func (e *Engine) Div(out, left, right *types.Value, flags overload.Flags) (*types.Value, error) {
	return e.binary(overload.OpDiv, out, left, right, flags, e.div)
}

// Binary computes left op right, op being one of OpAdd, OpSub, OpMul or OpDiv.
//
// Pending operands are resolved first, left before right, and only once if
// left and right are the same value. Overload handlers are then consulted.
// If one runs, its result is returned, after being stored into out if flags
// has overload.Mutator. Otherwise the result is stored into out, which may be
// one of the operands, and out is returned.
// Only ErrDivisionByZero and the errors of resolvers and handlers are returned.
func (e *Engine) Binary(op overload.Op, out, left, right *types.Value, flags overload.Flags) (*types.Value, error) {
	switch op {
	case overload.OpAdd:
		return e.Add(out, left, right, flags)
	case overload.OpSub:
		return e.Sub(out, left, right, flags)
	case overload.OpMul:
		return e.Mul(out, left, right, flags)
	case overload.OpDiv:
		return e.Div(out, left, right, flags)
	}

	return nil, errors.Errorf("unsupported binary operator %s", op)
}

func (e *Engine) binary(op overload.Op, out, left, right *types.Value, flags overload.Flags, raw rawFunc) (*types.Value, error) {
	if err := left.Resolve(); err != nil {
		return nil, err
	}
	if left != right {
		if err := right.Resolve(); err != nil {
			return nil, err
		}
	}

	operands := overload.Operands{Left: left, Right: right}
	res, err := e.dispatcher.TryBinary(op, out, &operands, flags|e.flags|overload.Numeric)
	if err != nil || res != nil {
		return res, err
	}

	n, err := raw(operands.Left, operands.Right)
	if err != nil {
		return nil, err
	}

	// every read of the operands is done, out may alias one of them
	tainted := operands.Left.IsTainted() || operands.Right.IsTainted()
	n.store(out)
	out.SetTainted(tainted)
	return out, nil
}
