package gbtype

import "math"

// arithFn returns the Fn for an arithmetic/logical/bitwise binary opcode
// over a built-in type. Only combinations that are semantically sensible
// are supported (e.g. Bor is unsigned-int-only, Lor is bool-only); all
// others return errUnsupported, matching the real codegen table which
// simply never emits those combinations.
func arithFn(opcode BinaryOpcode, c Code) (func(x, y Value) Value, error) {
	switch opcode {
	case OpMin, OpMax, OpPlus, OpMinus, OpRminus, OpTimes, OpDiv, OpRdiv, OpPow:
		return realArithFn(opcode, c)
	case OpLor, OpLand, OpLxor, OpLxnor:
		return boolArithFn(opcode, c)
	case OpBor, OpBand, OpBxor, OpBxnor:
		return bitwiseArithFn(opcode, c)
	}

	return nil, errUnsupported("arithFn", opcode, &Type{Code: c})
}

// realArithFn covers the "10 real types" family spec.md §4.1 calls out by
// name for min/max/times/plus (and, additionally, minus/rminus/div/rdiv/pow
// which the kernels need but the monoid-closure table does not).
func realArithFn(opcode BinaryOpcode, c Code) (func(x, y Value) Value, error) {
	switch c {
	case Int8:
		return wrapOrdered(opcode, func(a, b int8) int8 { return a + b }, func(a, b int8) int8 { return a - b },
			func(a, b int8) int8 { return b - a }, func(a, b int8) int8 { return a * b },
			func(a, b int8) int8 { return a / b }, func(a, b int8) int8 { return b / a },
			func(a, b int8) bool { return a < b })
	case Int16:
		return wrapOrdered(opcode, func(a, b int16) int16 { return a + b }, func(a, b int16) int16 { return a - b },
			func(a, b int16) int16 { return b - a }, func(a, b int16) int16 { return a * b },
			func(a, b int16) int16 { return a / b }, func(a, b int16) int16 { return b / a },
			func(a, b int16) bool { return a < b })
	case Int32:
		return wrapOrdered(opcode, func(a, b int32) int32 { return a + b }, func(a, b int32) int32 { return a - b },
			func(a, b int32) int32 { return b - a }, func(a, b int32) int32 { return a * b },
			func(a, b int32) int32 { return a / b }, func(a, b int32) int32 { return b / a },
			func(a, b int32) bool { return a < b })
	case Int64:
		return wrapOrdered(opcode, func(a, b int64) int64 { return a + b }, func(a, b int64) int64 { return a - b },
			func(a, b int64) int64 { return b - a }, func(a, b int64) int64 { return a * b },
			func(a, b int64) int64 { return a / b }, func(a, b int64) int64 { return b / a },
			func(a, b int64) bool { return a < b })
	case UInt8:
		return wrapOrdered(opcode, func(a, b uint8) uint8 { return a + b }, func(a, b uint8) uint8 { return a - b },
			func(a, b uint8) uint8 { return b - a }, func(a, b uint8) uint8 { return a * b },
			func(a, b uint8) uint8 { return a / b }, func(a, b uint8) uint8 { return b / a },
			func(a, b uint8) bool { return a < b })
	case UInt16:
		return wrapOrdered(opcode, func(a, b uint16) uint16 { return a + b }, func(a, b uint16) uint16 { return a - b },
			func(a, b uint16) uint16 { return b - a }, func(a, b uint16) uint16 { return a * b },
			func(a, b uint16) uint16 { return a / b }, func(a, b uint16) uint16 { return b / a },
			func(a, b uint16) bool { return a < b })
	case UInt32:
		return wrapOrdered(opcode, func(a, b uint32) uint32 { return a + b }, func(a, b uint32) uint32 { return a - b },
			func(a, b uint32) uint32 { return b - a }, func(a, b uint32) uint32 { return a * b },
			func(a, b uint32) uint32 { return a / b }, func(a, b uint32) uint32 { return b / a },
			func(a, b uint32) bool { return a < b })
	case UInt64:
		return wrapOrdered(opcode, func(a, b uint64) uint64 { return a + b }, func(a, b uint64) uint64 { return a - b },
			func(a, b uint64) uint64 { return b - a }, func(a, b uint64) uint64 { return a * b },
			func(a, b uint64) uint64 { return a / b }, func(a, b uint64) uint64 { return b / a },
			func(a, b uint64) bool { return a < b })
	case Float32:
		return wrapOrderedFloat32(opcode)
	case Float64:
		return wrapOrderedFloat64(opcode)
	case Complex64, Complex128:
		return complexArithFn(opcode, c)
	}

	return nil, errUnsupported("realArithFn", opcode, &Type{Code: c})
}

// wrapOrdered dispatches the shared shape for every ordered integer type.
// Generics would let this collapse into one instantiation per type; Go's
// lack of numeric-kind generics over operators at this module's target
// version keeps it spelled out per type, matching the teacher's own
// per-type Dense fast paths (matrix/impl_dense.go) rather than reflection.
func wrapOrdered[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64](
	opcode BinaryOpcode,
	plus, minus, rminus, times, div, rdiv func(a, b T) T,
	less func(a, b T) bool,
) (func(x, y Value) Value, error) {
	switch opcode {
	case OpPlus:
		return func(x, y Value) Value { return plus(x.(T), y.(T)) }, nil
	case OpMinus:
		return func(x, y Value) Value { return minus(x.(T), y.(T)) }, nil
	case OpRminus:
		return func(x, y Value) Value { return rminus(x.(T), y.(T)) }, nil
	case OpTimes:
		return func(x, y Value) Value { return times(x.(T), y.(T)) }, nil
	case OpDiv:
		return func(x, y Value) Value { return div(x.(T), y.(T)) }, nil
	case OpRdiv:
		return func(x, y Value) Value { return rdiv(x.(T), y.(T)) }, nil
	case OpMin:
		return func(x, y Value) Value { a, b := x.(T), y.(T); if less(a, b) { return a }; return b }, nil
	case OpMax:
		return func(x, y Value) Value { a, b := x.(T), y.(T); if less(a, b) { return b }; return a }, nil
	}

	return nil, errUnsupported("wrapOrdered", opcode, &Type{})
}

func wrapOrderedFloat32(opcode BinaryOpcode) (func(x, y Value) Value, error) {
	switch opcode {
	case OpPlus:
		return func(x, y Value) Value { return x.(float32) + y.(float32) }, nil
	case OpMinus:
		return func(x, y Value) Value { return x.(float32) - y.(float32) }, nil
	case OpRminus:
		return func(x, y Value) Value { return y.(float32) - x.(float32) }, nil
	case OpTimes:
		return func(x, y Value) Value { return x.(float32) * y.(float32) }, nil
	case OpDiv:
		return func(x, y Value) Value { return x.(float32) / y.(float32) }, nil
	case OpRdiv:
		return func(x, y Value) Value { return y.(float32) / x.(float32) }, nil
	case OpPow:
		return func(x, y Value) Value { return float32(math.Pow(float64(x.(float32)), float64(y.(float32)))) }, nil
	case OpMin:
		return func(x, y Value) Value { return float32(math.Min(float64(x.(float32)), float64(y.(float32)))) }, nil
	case OpMax:
		return func(x, y Value) Value { return float32(math.Max(float64(x.(float32)), float64(y.(float32)))) }, nil
	}

	return nil, errUnsupported("wrapOrderedFloat32", opcode, TFloat32)
}

func wrapOrderedFloat64(opcode BinaryOpcode) (func(x, y Value) Value, error) {
	switch opcode {
	case OpPlus:
		return func(x, y Value) Value { return x.(float64) + y.(float64) }, nil
	case OpMinus:
		return func(x, y Value) Value { return x.(float64) - y.(float64) }, nil
	case OpRminus:
		return func(x, y Value) Value { return y.(float64) - x.(float64) }, nil
	case OpTimes:
		return func(x, y Value) Value { return x.(float64) * y.(float64) }, nil
	case OpDiv:
		return func(x, y Value) Value { return x.(float64) / y.(float64) }, nil
	case OpRdiv:
		return func(x, y Value) Value { return y.(float64) / x.(float64) }, nil
	case OpPow:
		return func(x, y Value) Value { return math.Pow(x.(float64), y.(float64)) }, nil
	case OpMin:
		return func(x, y Value) Value { return math.Min(x.(float64), y.(float64)) }, nil
	case OpMax:
		return func(x, y Value) Value { return math.Max(x.(float64), y.(float64)) }, nil
	}

	return nil, errUnsupported("wrapOrderedFloat64", opcode, TFloat64)
}

func complexArithFn(opcode BinaryOpcode, c Code) (func(x, y Value) Value, error) {
	if c == Complex64 {
		switch opcode {
		case OpPlus:
			return func(x, y Value) Value { return x.(complex64) + y.(complex64) }, nil
		case OpMinus:
			return func(x, y Value) Value { return x.(complex64) - y.(complex64) }, nil
		case OpTimes:
			return func(x, y Value) Value { return x.(complex64) * y.(complex64) }, nil
		case OpDiv:
			return func(x, y Value) Value { return x.(complex64) / y.(complex64) }, nil
		}

		return nil, errUnsupported("complexArithFn", opcode, TComplex64)
	}
	switch opcode {
	case OpPlus:
		return func(x, y Value) Value { return x.(complex128) + y.(complex128) }, nil
	case OpMinus:
		return func(x, y Value) Value { return x.(complex128) - y.(complex128) }, nil
	case OpTimes:
		return func(x, y Value) Value { return x.(complex128) * y.(complex128) }, nil
	case OpDiv:
		return func(x, y Value) Value { return x.(complex128) / y.(complex128) }, nil
	}

	return nil, errUnsupported("complexArithFn", opcode, TComplex128)
}

// boolArithFn implements the four boolean monoids' underlying binary ops
// (spec.md §4.1: "the four boolean monoids (lor, land, lxor, lxnor≡eq)").
func boolArithFn(opcode BinaryOpcode, c Code) (func(x, y Value) Value, error) {
	if c != Bool {
		return nil, errUnsupported("boolArithFn", opcode, &Type{Code: c})
	}
	switch opcode {
	case OpLor:
		return func(x, y Value) Value { return x.(bool) || y.(bool) }, nil
	case OpLand:
		return func(x, y Value) Value { return x.(bool) && y.(bool) }, nil
	case OpLxor:
		return func(x, y Value) Value { return x.(bool) != y.(bool) }, nil
	case OpLxnor:
		return func(x, y Value) Value { return x.(bool) == y.(bool) }, nil
	}

	return nil, errUnsupported("boolArithFn", opcode, TBool)
}

// bitwiseArithFn implements the per-unsigned-type bitwise monoids (spec.md
// §4.1: "four bitwise monoids per unsigned type").
func bitwiseArithFn(opcode BinaryOpcode, c Code) (func(x, y Value) Value, error) {
	switch c {
	case UInt8:
		return bitwiseOps(opcode, func(a, b uint8) uint8 { return a | b }, func(a, b uint8) uint8 { return a & b },
			func(a, b uint8) uint8 { return a ^ b }, func(a, b uint8) uint8 { return ^(a ^ b) })
	case UInt16:
		return bitwiseOps(opcode, func(a, b uint16) uint16 { return a | b }, func(a, b uint16) uint16 { return a & b },
			func(a, b uint16) uint16 { return a ^ b }, func(a, b uint16) uint16 { return ^(a ^ b) })
	case UInt32:
		return bitwiseOps(opcode, func(a, b uint32) uint32 { return a | b }, func(a, b uint32) uint32 { return a & b },
			func(a, b uint32) uint32 { return a ^ b }, func(a, b uint32) uint32 { return ^(a ^ b) })
	case UInt64:
		return bitwiseOps(opcode, func(a, b uint64) uint64 { return a | b }, func(a, b uint64) uint64 { return a & b },
			func(a, b uint64) uint64 { return a ^ b }, func(a, b uint64) uint64 { return ^(a ^ b) })
	}

	return nil, errUnsupported("bitwiseArithFn", opcode, &Type{Code: c})
}

func bitwiseOps[T uint8 | uint16 | uint32 | uint64](opcode BinaryOpcode, or, and, xor, xnor func(a, b T) T) (func(x, y Value) Value, error) {
	switch opcode {
	case OpBor:
		return func(x, y Value) Value { return or(x.(T), y.(T)) }, nil
	case OpBand:
		return func(x, y Value) Value { return and(x.(T), y.(T)) }, nil
	case OpBxor:
		return func(x, y Value) Value { return xor(x.(T), y.(T)) }, nil
	case OpBxnor:
		return func(x, y Value) Value { return xnor(x.(T), y.(T)) }, nil
	}

	return nil, errUnsupported("bitwiseOps", opcode, &Type{})
}

// compareFn implements the comparison opcodes, all of which return Bool.
func compareFn(opcode BinaryOpcode, c Code) (func(x, y Value) Value, error) {
	switch c {
	case Int8:
		return cmp(opcode, func(a, b int8) int { return cmpOrdered(a, b) })
	case Int16:
		return cmp(opcode, func(a, b int16) int { return cmpOrdered(a, b) })
	case Int32:
		return cmp(opcode, func(a, b int32) int { return cmpOrdered(a, b) })
	case Int64:
		return cmp(opcode, func(a, b int64) int { return cmpOrdered(a, b) })
	case UInt8:
		return cmp(opcode, func(a, b uint8) int { return cmpOrdered(a, b) })
	case UInt16:
		return cmp(opcode, func(a, b uint16) int { return cmpOrdered(a, b) })
	case UInt32:
		return cmp(opcode, func(a, b uint32) int { return cmpOrdered(a, b) })
	case UInt64:
		return cmp(opcode, func(a, b uint64) int { return cmpOrdered(a, b) })
	case Float32:
		return cmp(opcode, func(a, b float32) int { return cmpOrdered(a, b) })
	case Float64:
		return cmp(opcode, func(a, b float64) int { return cmpOrdered(a, b) })
	case Bool:
		if opcode != OpEq && opcode != OpNe {
			return nil, errUnsupported("compareFn", opcode, TBool)
		}
		if opcode == OpEq {
			return func(x, y Value) Value { return x.(bool) == y.(bool) }, nil
		}

		return func(x, y Value) Value { return x.(bool) != y.(bool) }, nil
	}

	return nil, errUnsupported("compareFn", opcode, &Type{Code: c})
}

func cmpOrdered[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmp[T any](opcode BinaryOpcode, c func(a, b T) int) (func(x, y Value) Value, error) {
	switch opcode {
	case OpEq:
		return func(x, y Value) Value { return c(x.(T), y.(T)) == 0 }, nil
	case OpNe:
		return func(x, y Value) Value { return c(x.(T), y.(T)) != 0 }, nil
	case OpGt:
		return func(x, y Value) Value { return c(x.(T), y.(T)) > 0 }, nil
	case OpLt:
		return func(x, y Value) Value { return c(x.(T), y.(T)) < 0 }, nil
	case OpGe:
		return func(x, y Value) Value { return c(x.(T), y.(T)) >= 0 }, nil
	case OpLe:
		return func(x, y Value) Value { return c(x.(T), y.(T)) <= 0 }, nil
	}

	return nil, errUnsupported("cmp", opcode, &Type{})
}
