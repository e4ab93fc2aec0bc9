// Package overload decides whether user-defined operator handlers take
// over an arithmetic operation.
package overload

// Op is an overloadable operator.
type Op uint8

// List of overloadable operators.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpNeg
	// OpNumify converts a reference to a number.
	OpNumify
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
)

var opNames = map[Op]string{
	OpAdd:       "+",
	OpSub:       "-",
	OpMul:       "*",
	OpDiv:       "/",
	OpNeg:       "neg",
	OpNumify:    "0+",
	OpAddAssign: "+=",
	OpSubAssign: "-=",
	OpMulAssign: "*=",
	OpDivAssign: "/=",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "unknown"
}

// ParseOp returns the operator whose name is s.
func ParseOp(s string) (Op, bool) {
	for op, name := range opNames {
		if name == s {
			return op, true
		}
	}
	return 0, false
}

// Arity returns the number of operands of op.
func (op Op) Arity() int {
	switch op {
	case OpNeg, OpNumify:
		return 1
	}
	return 2
}

// Assign returns the assignment variant of op, used when the result
// of the operation is stored into its left operand.
func (op Op) Assign() (Op, bool) {
	switch op {
	case OpAdd:
		return OpAddAssign, true
	case OpSub:
		return OpSubAssign, true
	case OpMul:
		return OpMulAssign, true
	case OpDiv:
		return OpDivAssign, true
	}
	return 0, false
}
