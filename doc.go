/*
Package scalar implements the arithmetic of dynamically typed scalar values.

A Value holds any combination of an integer, a float, a string or a reference,
and may be resolved lazily. Arithmetic on values picks the most precise
representation of the result: it stays on 64-bit integers, signed or unsigned,
as long as the result is exact and moves to floating point otherwise.

	e := scalar.New(nil)
	v, err := e.Add(scalar.Int(math.MaxInt64), scalar.Int(1))
	// v is the unsigned integer 9223372036854775808

Strings are read as numbers when they look like one:

	v, err = e.Mul(scalar.String("3"), scalar.Float(0.5))
	// v is 1.5

Operator overloading

References to entities declaring operator handlers can take over arithmetic.
Handlers are found through a Table, usually a Registry:

	reg := scalar.NewRegistry()
	reg.Register("Money", scalar.OpAdd, func(self, other *scalar.Value, swapped bool) (*scalar.Value, error) {
		...
	})

	e := scalar.New(&scalar.Options{Overloads: reg})

The handler of the left operand is preferred to the one of the right operand.
References without a handler for an operator are read as numbers, either with
their numeric conversion handler (OpNumify) or as their identity.

Errors

The only error reported by the arithmetic itself is ErrDivisionByZero.
Errors returned by handlers and resolvers are returned unchanged.
*/
package scalar
