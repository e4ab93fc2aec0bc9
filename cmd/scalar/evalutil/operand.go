package evalutil

import (
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/chaisql/scalar"
	"github.com/cockroachdb/errors"
)

// ParseOperand decodes a JSON literal into a value.
// Numbers become integers when they fit in an int64 or a uint64 and floats
// otherwise, null is undefined, true is 1 and false the empty string.
func ParseOperand(s string) (*scalar.Value, error) {
	data := []byte(s)

	value, dataType, offset, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid operand %q", s)
	}
	if strings.TrimSpace(s[offset:]) != "" {
		return nil, errors.Newf("invalid operand %q: unexpected data after the value", s)
	}

	v, err := parseJSONValue(dataType, value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid operand %q", s)
	}
	return v, nil
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (*scalar.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return scalar.Undefined(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		if b {
			return scalar.Int(1), nil
		}
		return scalar.String(""), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err == nil {
			return scalar.Int(i), nil
		}

		// too big for an int64, it may still fit in an uint64
		if u, err := strconv.ParseUint(string(data), 10, 64); err == nil {
			return scalar.Uint(u), nil
		}

		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, err
		}
		return scalar.Float(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return scalar.String(s), nil
	}

	return nil, errors.Newf("unsupported type %s", dataType)
}

// ParseOperands decodes every operand of op.
func ParseOperands(op scalar.Op, args []string) ([]*scalar.Value, error) {
	if len(args) != op.Arity() {
		return nil, errors.Newf("operator %s expects %d operands, got %d", op, op.Arity(), len(args))
	}

	values := make([]*scalar.Value, len(args))
	for i, a := range args {
		v, err := ParseOperand(a)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// Eval runs op on operands.
func Eval(e *scalar.Engine, op scalar.Op, operands []*scalar.Value) (*scalar.Value, error) {
	if op == scalar.OpNeg {
		return e.Neg(operands[0])
	}

	return e.Binary(op, scalar.Undefined(), operands[0], operands[1], 0)
}
