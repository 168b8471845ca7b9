package gbtype

import (
	"fmt"
	"math/cmplx"
)

// Value is the boxed form of one matrix entry. Built-in types box their
// native Go type (bool, intN, uintN, floatN, complexN); user-defined types
// box whatever the caller's Fn produces — this package never interprets
// the bytes of an opaque type itself.
type Value = interface{}

// UnaryOpcode enumerates the built-in unary operators (spec.md §9: "model
// [the opcode table] as a tagged variant over (opcode, type)").
type UnaryOpcode int

const (
	OpIdentity UnaryOpcode = iota
	OpAinv                 // additive inverse (negate)
	OpMinv                 // multiplicative inverse
	OpAbs
	OpLnot // logical not (bool only)
	OpBnot // bitwise not (unsigned only)
	OpOne  // constant 1
)

// UnaryOp is a record {z_type, x_type, opcode, fn, name} per spec.md §3.
type UnaryOp struct {
	ZType, XType *Type
	Opcode       UnaryOpcode
	Fn           func(x Value) Value
	Name         string
}

// BinaryOpcode enumerates the built-in binary operators.
type BinaryOpcode int

const (
	OpFirst BinaryOpcode = iota
	OpSecond
	OpMin
	OpMax
	OpPlus
	OpMinus
	OpRminus
	OpTimes
	OpDiv
	OpRdiv
	OpPow
	OpAny
	OpEq
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
	OpLor
	OpLand
	OpLxor
	OpLxnor
	OpBor
	OpBand
	OpBxor
	OpBxnor
	OpFirstI
	OpFirstJ
	OpSecondI
	OpSecondJ
)

// positionalOpcodes names opcodes whose Fn reads (i,j,k) rather than
// operand values (spec.md §3: "Positional ops ... are binary ops whose fn
// reads (i,j,k) rather than operand values").
var positionalOpcodes = map[BinaryOpcode]bool{
	OpFirstI: true, OpFirstJ: true, OpSecondI: true, OpSecondJ: true,
}

// IsPositional reports whether op is a positional binary op.
func (op BinaryOpcode) IsPositional() bool { return positionalOpcodes[op] }

// BinaryOp is a record {z_type, x_type, y_type, opcode, fn, name} per
// spec.md §3. Positional is set for ops whose semantics depend on the
// entry's (row,col) coordinates rather than its value; PosFn is populated
// instead of Fn in that case, and Fn is left nil.
type BinaryOp struct {
	ZType, XType, YType *Type
	Opcode              BinaryOpcode
	Fn                  func(x, y Value) Value
	PosFn               func(i, j int) Value
	Name                string
}

// Positional reports whether this op must be invoked via PosFn.
func (op *BinaryOp) Positional() bool { return op.Opcode.IsPositional() }

// errUnsupported reports a (opcode,type) combination this constructor does
// not implement — either because the real source's codegen never emits it
// for that type (e.g. Bor on a float type) or because it falls outside the
// representative opcode set this package models (spec.md §9 notes the real
// table has ≈140 entries; this is the subset the engine's kernels exercise).
func errUnsupported(where string, opcode interface{}, t *Type) error {
	return fmt.Errorf("gbtype: %s: opcode %v unsupported for %v: %w", where, opcode, t, ErrInvalidValue)
}

// NewBuiltinUnaryOp constructs the built-in unary operator `opcode` over
// built-in type t (z_type == x_type == t).
func NewBuiltinUnaryOp(opcode UnaryOpcode, t *Type) (*UnaryOp, error) {
	if t == nil || !t.Code.IsBuiltin() {
		return nil, errUnsupported("NewBuiltinUnaryOp", opcode, t)
	}

	var fn func(x Value) Value
	switch opcode {
	case OpIdentity:
		fn = func(x Value) Value { return x }
	case OpOne:
		one, err := oneOf(t.Code)
		if err != nil {
			return nil, err
		}
		fn = func(Value) Value { return one }
	case OpAinv:
		f, err := negateFn(t.Code)
		if err != nil {
			return nil, err
		}
		fn = f
	case OpAbs:
		f, err := absFn(t.Code)
		if err != nil {
			return nil, err
		}
		fn = f
	case OpLnot:
		if t.Code != Bool {
			return nil, errUnsupported("NewBuiltinUnaryOp", opcode, t)
		}
		fn = func(x Value) Value { return !x.(bool) }
	case OpBnot:
		f, err := bnotFn(t.Code)
		if err != nil {
			return nil, err
		}
		fn = f
	default:
		return nil, errUnsupported("NewBuiltinUnaryOp", opcode, t)
	}

	return &UnaryOp{ZType: t, XType: t, Opcode: opcode, Fn: fn, Name: fmt.Sprintf("%d_%s", opcode, t.Name)}, nil
}

// NewBuiltinBinaryOp constructs the built-in binary operator `opcode` over
// built-in type t. The result type is Bool for comparison opcodes
// (Eq/Ne/Gt/Lt/Ge/Le), t otherwise.
func NewBuiltinBinaryOp(opcode BinaryOpcode, t *Type) (*BinaryOp, error) {
	if opcode.IsPositional() {
		return newPositionalOp(opcode, t)
	}
	if t == nil || !t.Code.IsBuiltin() {
		return nil, errUnsupported("NewBuiltinBinaryOp", opcode, t)
	}

	switch opcode {
	case OpFirst:
		return &BinaryOp{ZType: t, XType: t, YType: t, Opcode: opcode, Name: "FIRST_" + t.Name,
			Fn: func(x, y Value) Value { return x }}, nil
	case OpSecond:
		return &BinaryOp{ZType: t, XType: t, YType: t, Opcode: opcode, Name: "SECOND_" + t.Name,
			Fn: func(x, y Value) Value { return y }}, nil
	case OpAny:
		return &BinaryOp{ZType: t, XType: t, YType: t, Opcode: opcode, Name: "ANY_" + t.Name,
			Fn: func(x, y Value) Value { return x }}, nil
	case OpEq, OpNe, OpGt, OpLt, OpGe, OpLe:
		fn, err := compareFn(opcode, t.Code)
		if err != nil {
			return nil, err
		}

		return &BinaryOp{ZType: TBool, XType: t, YType: t, Opcode: opcode, Fn: fn, Name: opcode.String() + "_" + t.Name}, nil
	}

	fn, err := arithFn(opcode, t.Code)
	if err != nil {
		return nil, err
	}

	return &BinaryOp{ZType: t, XType: t, YType: t, Opcode: opcode, Fn: fn, Name: opcode.String() + "_" + t.Name}, nil
}

func newPositionalOp(opcode BinaryOpcode, t *Type) (*BinaryOp, error) {
	if t == nil || t.Code != Int64 {
		return nil, errUnsupported("newPositionalOp", opcode, t)
	}
	var posFn func(i, j int) Value
	switch opcode {
	case OpFirstI:
		posFn = func(i, _ int) Value { return int64(i) }
	case OpFirstJ:
		posFn = func(_, j int) Value { return int64(j) }
	case OpSecondI:
		posFn = func(i, _ int) Value { return int64(i) }
	case OpSecondJ:
		posFn = func(_, j int) Value { return int64(j) }
	default:
		return nil, errUnsupported("newPositionalOp", opcode, t)
	}

	return &BinaryOp{ZType: t, XType: t, YType: t, Opcode: opcode, PosFn: posFn, Name: opcode.String()}, nil
}

func (op BinaryOpcode) String() string {
	names := map[BinaryOpcode]string{
		OpFirst: "FIRST", OpSecond: "SECOND", OpMin: "MIN", OpMax: "MAX",
		OpPlus: "PLUS", OpMinus: "MINUS", OpRminus: "RMINUS", OpTimes: "TIMES",
		OpDiv: "DIV", OpRdiv: "RDIV", OpPow: "POW", OpAny: "ANY",
		OpEq: "EQ", OpNe: "NE", OpGt: "GT", OpLt: "LT", OpGe: "GE", OpLe: "LE",
		OpLor: "LOR", OpLand: "LAND", OpLxor: "LXOR", OpLxnor: "LXNOR",
		OpBor: "BOR", OpBand: "BAND", OpBxor: "BXOR", OpBxnor: "BXNOR",
		OpFirstI: "FIRSTI", OpFirstJ: "FIRSTJ", OpSecondI: "SECONDI", OpSecondJ: "SECONDJ",
	}
	if n, ok := names[op]; ok {
		return n
	}

	return fmt.Sprintf("BinaryOpcode(%d)", int(op))
}

func oneOf(c Code) (Value, error) {
	switch c {
	case Bool:
		return true, nil
	case Int8:
		return int8(1), nil
	case Int16:
		return int16(1), nil
	case Int32:
		return int32(1), nil
	case Int64:
		return int64(1), nil
	case UInt8:
		return uint8(1), nil
	case UInt16:
		return uint16(1), nil
	case UInt32:
		return uint32(1), nil
	case UInt64:
		return uint64(1), nil
	case Float32:
		return float32(1), nil
	case Float64:
		return float64(1), nil
	case Complex64:
		return complex64(1), nil
	case Complex128:
		return complex128(1), nil
	}

	return nil, errUnsupported("oneOf", OpOne, &Type{Code: c})
}

func negateFn(c Code) (func(Value) Value, error) {
	switch c {
	case Int8:
		return func(x Value) Value { return -x.(int8) }, nil
	case Int16:
		return func(x Value) Value { return -x.(int16) }, nil
	case Int32:
		return func(x Value) Value { return -x.(int32) }, nil
	case Int64:
		return func(x Value) Value { return -x.(int64) }, nil
	case Float32:
		return func(x Value) Value { return -x.(float32) }, nil
	case Float64:
		return func(x Value) Value { return -x.(float64) }, nil
	case Complex64:
		return func(x Value) Value { return -x.(complex64) }, nil
	case Complex128:
		return func(x Value) Value { return -x.(complex128) }, nil
	}

	return nil, errUnsupported("negateFn", OpAinv, &Type{Code: c})
}

func absFn(c Code) (func(Value) Value, error) {
	switch c {
	case Int8:
		return func(x Value) Value { v := x.(int8); if v < 0 { return -v }; return v }, nil
	case Int16:
		return func(x Value) Value { v := x.(int16); if v < 0 { return -v }; return v }, nil
	case Int32:
		return func(x Value) Value { v := x.(int32); if v < 0 { return -v }; return v }, nil
	case Int64:
		return func(x Value) Value { v := x.(int64); if v < 0 { return -v }; return v }, nil
	case Float32:
		return func(x Value) Value { v := x.(float32); if v < 0 { return -v }; return v }, nil
	case Float64:
		return func(x Value) Value { v := x.(float64); if v < 0 { return -v }; return v }, nil
	case Complex64:
		return func(x Value) Value { return complex64(complex(cmplx.Abs(complex128(x.(complex64))), 0)) }, nil
	case Complex128:
		return func(x Value) Value { return complex(cmplx.Abs(x.(complex128)), 0) }, nil
	case UInt8, UInt16, UInt32, UInt64:
		return func(x Value) Value { return x }, nil
	}

	return nil, errUnsupported("absFn", OpAbs, &Type{Code: c})
}

func bnotFn(c Code) (func(Value) Value, error) {
	switch c {
	case UInt8:
		return func(x Value) Value { return ^x.(uint8) }, nil
	case UInt16:
		return func(x Value) Value { return ^x.(uint16) }, nil
	case UInt32:
		return func(x Value) Value { return ^x.(uint32) }, nil
	case UInt64:
		return func(x Value) Value { return ^x.(uint64) }, nil
	}

	return nil, errUnsupported("bnotFn", OpBnot, &Type{Code: c})
}
