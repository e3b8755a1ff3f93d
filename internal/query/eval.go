package query

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/record"
	"gopkg.in/yaml.v3"
)

// Op names an update applied by Over.
type Op string

// Supported updates.
const (
	OpAdd   Op = "add"
	OpMul   Op = "mul"
	OpNeg   Op = "neg"
	OpNot   Op = "not"
	OpUpper Op = "upper"
	OpLower Op = "lower"
	OpTrim  Op = "trim"
)

// Ops lists every supported update.
var Ops = []Op{OpAdd, OpMul, OpNeg, OpNot, OpUpper, OpLower, OpTrim}

// View returns the focus of q in r. found is false when the field exists
// but does not match the query's prism.
func (q Query) View(r record.Record) (value any, found bool, err error) {
	switch q.Focus {
	case FocusValue:
		v, err := optics.View(q.Value(), r)
		return v, err == nil, err
	case FocusText:
		v, err := optics.View(q.Text(), r)
		return v, err == nil, err
	case FocusFloat:
		return preview(optics.Compose(q.Value(), optics.Float()), r)
	case FocusInt:
		return preview(optics.Compose(q.Value(), optics.Int()), r)
	case FocusBool:
		return preview(optics.Compose(q.Value(), optics.Bool()), r)
	case FocusDuration:
		d, ok, err := optics.Preview(optics.Compose(q.Value(), optics.Duration()), r)
		if !ok {
			return nil, false, err
		}
		return d.String(), true, nil
	default:
		return nil, false, unknownFocus(q)
	}
}

func preview[A any](o optics.Optic[record.Record, A], r record.Record) (any, bool, error) {
	return optics.Preview(o, r)
}

// Set replaces the focus of q in r with raw. Without a prism raw is read as
// a YAML scalar, so "5" stores a number and "kissa" a string. With a prism
// raw must parse as the prism's type, and fields the prism does not match
// are left unchanged.
func (q Query) Set(r record.Record, raw string) (record.Record, error) {
	switch q.Focus {
	case FocusValue:
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return record.Record{}, errors.InvalidArgument("value is not a YAML scalar").WithCause(err)
		}
		return optics.Set(q.Value(), r, v)
	case FocusText:
		return optics.Set(q.Text(), r, raw)
	case FocusFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return record.Record{}, badArgument(q, raw, err)
		}
		return optics.Set(optics.Compose(q.Value(), optics.Float()), r, f)
	case FocusInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return record.Record{}, badArgument(q, raw, err)
		}
		return optics.Set(optics.Compose(q.Value(), optics.Int()), r, n)
	case FocusBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return record.Record{}, badArgument(q, raw, err)
		}
		return optics.Set(optics.Compose(q.Value(), optics.Bool()), r, b)
	case FocusDuration:
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return record.Record{}, badArgument(q, raw, err)
		}
		return optics.Set(optics.Compose(q.Value(), optics.Duration()), r, d)
	default:
		return record.Record{}, unknownFocus(q)
	}
}

// Over applies op to the focus of q in r. add and mul take arg as operand.
func (q Query) Over(r record.Record, op Op, arg string) (record.Record, error) {
	switch q.Focus {
	case FocusValue:
		fn, err := valueOp(op, arg)
		if err != nil {
			return record.Record{}, err
		}
		return optics.Over(q.Value(), r, fn)
	case FocusText:
		fn, err := textOp(op)
		if err != nil {
			return record.Record{}, err
		}
		return optics.Over(q.Text(), r, fn)
	case FocusFloat:
		fn, err := floatOp(op, arg)
		if err != nil {
			return record.Record{}, err
		}
		return optics.Over(optics.Compose(q.Value(), optics.Float()), r, fn)
	case FocusInt:
		fn, err := intOp(op, arg)
		if err != nil {
			return record.Record{}, err
		}
		return optics.Over(optics.Compose(q.Value(), optics.Int()), r, fn)
	case FocusBool:
		if op != OpNot {
			return record.Record{}, unsupportedOp(op, q.Focus)
		}
		return optics.Over(optics.Compose(q.Value(), optics.Bool()), r, func(b bool) bool { return !b })
	case FocusDuration:
		fn, err := durationOp(op, arg)
		if err != nil {
			return record.Record{}, err
		}
		return optics.Over(optics.Compose(q.Value(), optics.Duration()), r, fn)
	default:
		return record.Record{}, unknownFocus(q)
	}
}

func floatOp(op Op, arg string) (func(float64) float64, error) {
	switch op {
	case OpNeg:
		return func(f float64) float64 { return -f }, nil
	case OpAdd, OpMul:
		operand, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, errors.InvalidArgument("operand is not a number").WithDetail("arg", arg).WithCause(err)
		}
		if op == OpAdd {
			return func(f float64) float64 { return f + operand }, nil
		}
		return func(f float64) float64 { return f * operand }, nil
	default:
		return nil, unsupportedOp(op, FocusFloat)
	}
}

func intOp(op Op, arg string) (func(int) int, error) {
	fn, err := integerOp(op, arg)
	if err != nil {
		return nil, err
	}
	return func(n int) int { return int(fn(int64(n))) }, nil
}

func integerOp(op Op, arg string) (func(int64) int64, error) {
	switch op {
	case OpNeg:
		return func(n int64) int64 { return -n }, nil
	case OpAdd, OpMul:
		operand, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			return nil, errors.InvalidArgument("operand is not an integer").WithDetail("arg", arg).WithCause(err)
		}
		if op == OpAdd {
			return func(n int64) int64 { return n + operand }, nil
		}
		return func(n int64) int64 { return n * operand }, nil
	default:
		return nil, unsupportedOp(op, FocusInt)
	}
}

func durationOp(op Op, arg string) (func(time.Duration) time.Duration, error) {
	switch op {
	case OpNeg:
		return func(d time.Duration) time.Duration { return -d }, nil
	case OpAdd:
		operand, err := time.ParseDuration(strings.TrimSpace(arg))
		if err != nil {
			return nil, errors.InvalidArgument("operand is not a duration").WithDetail("arg", arg).WithCause(err)
		}
		return func(d time.Duration) time.Duration { return d + operand }, nil
	case OpMul:
		operand, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, errors.InvalidArgument("operand is not a number").WithDetail("arg", arg).WithCause(err)
		}
		return func(d time.Duration) time.Duration { return time.Duration(float64(d) * operand) }, nil
	default:
		return nil, unsupportedOp(op, FocusDuration)
	}
}

func textOp(op Op) (func(string) string, error) {
	switch op {
	case OpUpper:
		return strings.ToUpper, nil
	case OpLower:
		return strings.ToLower, nil
	case OpTrim:
		return strings.TrimSpace, nil
	default:
		return nil, unsupportedOp(op, FocusText)
	}
}

// valueOp works on the dynamic type of the raw value and keeps it: integers
// of any width stay integers of that width when the operand is integral and
// the result fits. Values of other types are returned unchanged.
func valueOp(op Op, arg string) (func(any) any, error) {
	switch op {
	case OpUpper, OpLower, OpTrim:
		fn, _ := textOp(op)
		return func(v any) any {
			if s, ok := v.(string); ok {
				return fn(s)
			}
			return v
		}, nil
	case OpNot:
		return func(v any) any {
			if b, ok := v.(bool); ok {
				return !b
			}
			return v
		}, nil
	case OpNeg, OpAdd, OpMul:
		ffn, err := floatOp(op, arg)
		if err != nil {
			return nil, err
		}
		// integer stays nil for a fractional operand; integers then become floats.
		ifn, _ := integerOp(op, arg)
		return numericOp{integer: ifn, float: ffn}.apply, nil
	default:
		return nil, unsupportedOp(op, FocusValue)
	}
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// numericOp is an arithmetic update on untyped numbers as decoded from
// JSON (float64), YAML (int), TOML and MessagePack (int64, uint64).
type numericOp struct {
	integer func(int64) int64
	float   func(float64) float64
}

func (op numericOp) apply(v any) any {
	switch n := v.(type) {
	case int:
		return applySigned(op, n)
	case int8:
		return applySigned(op, n)
	case int16:
		return applySigned(op, n)
	case int32:
		return applySigned(op, n)
	case int64:
		return applySigned(op, n)
	case uint:
		return applyUnsigned(op, n)
	case uint8:
		return applyUnsigned(op, n)
	case uint16:
		return applyUnsigned(op, n)
	case uint32:
		return applyUnsigned(op, n)
	case uint64:
		return applyUnsigned(op, n)
	case float32:
		return float32(op.float(float64(n)))
	case float64:
		return op.float(n)
	default:
		return v
	}
}

// applySigned widens to int64 when the result overflows T.
func applySigned[T signedInt](op numericOp, n T) any {
	if op.integer == nil {
		return op.float(float64(n))
	}
	out := op.integer(int64(n))
	if int64(T(out)) != out {
		return out
	}
	return T(out)
}

// applyUnsigned falls back to int64 for negative results and to float64 for
// values beyond int64.
func applyUnsigned[T unsignedInt](op numericOp, n T) any {
	if op.integer == nil || uint64(n) > math.MaxInt64 {
		return op.float(float64(n))
	}
	out := op.integer(int64(n))
	if out < 0 || uint64(T(out)) != uint64(out) {
		return out
	}
	return T(out)
}

// ParseOp parses an update name.
func ParseOp(s string) (Op, error) {
	for _, op := range Ops {
		if string(op) == strings.ToLower(s) {
			return op, nil
		}
	}
	return "", errors.InvalidArgument("unknown operation").WithDetail("op", s)
}

func unsupportedOp(op Op, focus Focus) error {
	name := string(focus)
	if focus == FocusValue {
		name = "value"
	}
	return errors.InvalidArgument("operation not supported for focus").
		WithDetail("op", string(op)).
		WithDetail("focus", name)
}

func badArgument(q Query, raw string, cause error) error {
	return errors.InvalidArgument("value does not parse for focus").
		WithDetail("focus", string(q.Focus)).
		WithDetail("value", raw).
		WithCause(cause)
}

func unknownFocus(q Query) error {
	return errors.InvalidPath(q.String(), "unknown prism")
}
