package gbtype

import (
	"fmt"
	"math"
)

var unsignedTypes = []Code{UInt8, UInt16, UInt32, UInt64}

// monoidIdentity returns the identity element for (opcode, type), or false
// if this package does not define one (e.g. a positional opcode).
func monoidIdentity(opcode BinaryOpcode, c Code) (Value, bool) {
	switch opcode {
	case OpPlus:
		return zeroValue(c), c >= Int8 && c <= Float64
	case OpTimes:
		v, err := oneOf(c)
		return v, err == nil && c >= Int8 && c <= Float64
	case OpMin:
		return minIdentity(c)
	case OpMax:
		return maxIdentity(c)
	case OpLor:
		return false, c == Bool
	case OpLand:
		return true, c == Bool
	case OpLxor:
		return false, c == Bool
	case OpLxnor:
		return true, c == Bool
	case OpBor, OpBxor:
		return zeroValue(c), isUnsigned(c)
	case OpBand, OpBxnor:
		return allOnes(c), isUnsigned(c)
	case OpAny:
		return zeroValue(c), true
	}

	return nil, false
}

func isUnsigned(c Code) bool {
	for _, u := range unsignedTypes {
		if u == c {
			return true
		}
	}

	return false
}

func zeroValue(c Code) Value {
	switch c {
	case Bool:
		return false
	case Int8:
		return int8(0)
	case Int16:
		return int16(0)
	case Int32:
		return int32(0)
	case Int64:
		return int64(0)
	case UInt8:
		return uint8(0)
	case UInt16:
		return uint16(0)
	case UInt32:
		return uint32(0)
	case UInt64:
		return uint64(0)
	case Float32:
		return float32(0)
	case Float64:
		return float64(0)
	case Complex64:
		return complex64(0)
	case Complex128:
		return complex128(0)
	}

	return nil
}

func allOnes(c Code) Value {
	switch c {
	case UInt8:
		return ^uint8(0)
	case UInt16:
		return ^uint16(0)
	case UInt32:
		return ^uint32(0)
	case UInt64:
		return ^uint64(0)
	}

	return nil
}

func minIdentity(c Code) (Value, bool) {
	switch c {
	case Int8:
		return int8(math.MaxInt8), true
	case Int16:
		return int16(math.MaxInt16), true
	case Int32:
		return int32(math.MaxInt32), true
	case Int64:
		return int64(math.MaxInt64), true
	case UInt8:
		return ^uint8(0), true
	case UInt16:
		return ^uint16(0), true
	case UInt32:
		return ^uint32(0), true
	case UInt64:
		return ^uint64(0), true
	case Float32:
		return float32(math.Inf(1)), true
	case Float64:
		return math.Inf(1), true
	}

	return nil, false
}

func maxIdentity(c Code) (Value, bool) {
	switch c {
	case Int8:
		return int8(math.MinInt8), true
	case Int16:
		return int16(math.MinInt16), true
	case Int32:
		return int32(math.MinInt32), true
	case Int64:
		return int64(math.MinInt64), true
	case UInt8:
		return uint8(0), true
	case UInt16:
		return uint16(0), true
	case UInt32:
		return uint32(0), true
	case UInt64:
		return uint64(0), true
	case Float32:
		return float32(math.Inf(-1)), true
	case Float64:
		return math.Inf(-1), true
	}

	return nil, false
}

// BuiltinMonoid looks up the canonical monoid for (opcode, type) over the
// closed set spec.md §4.1 enumerates: min/max/times/plus over the 10 real
// types, any over all 13 built-ins, the four boolean monoids, and the four
// bitwise monoids per unsigned type. It returns ErrDomainMismatch for any
// (opcode,type) pair outside that set.
func BuiltinMonoid(opcode BinaryOpcode, c Code) (*Monoid, error) {
	identity, ok := monoidIdentity(opcode, c)
	if !ok {
		return nil, fmt.Errorf("gbtype: BuiltinMonoid: no canonical monoid for %s over %v: %w", opcode, c, ErrDomainMismatch)
	}

	t, err := BuiltinType(c)
	if err != nil {
		return nil, err
	}

	op, err := NewBuiltinBinaryOp(opcode, t)
	if err != nil {
		return nil, err
	}

	var monOpts []MonoidOption
	if opcode == OpMin {
		monOpts = append(monOpts, WithTerminal(minTerminal(c)))
	}

	return NewMonoid(op, identity, monOpts...)
}

// minTerminal returns the value at which a MIN reduction can never decrease
// further — -Inf for floats, the type's minimum representable value
// otherwise (spec.md §4.4.2's MIN_PLUS short-circuit).
func minTerminal(c Code) Value {
	v, _ := maxIdentity(c) // the MAX monoid's identity is MIN's terminal: its smallest value
	return v
}

// Predefined convenience semirings exercised by spec.md §8's concrete
// scenarios (the PLUS_TIMES adjacency-matrix example and the MIN_PLUS
// shortest-path-step example).
var (
	// PlusTimesFloat64 is the classical linear-algebra semiring: (add=+,
	// identity=0) over (mul=*) on Float64, used for plain adjacency-matrix
	// powers (spec.md §8, diag(1,1,1) example).
	PlusTimesFloat64 = mustSemiring(OpPlus, OpTimes, Float64)

	// MinPlusFloat64 is the tropical semiring: (add=min, identity=+Inf,
	// terminal=+Inf is meaningless for min but the MIN monoid's terminal is
	// its own identity's dual, -Inf) over (mul=+) on Float64, used for
	// single shortest-path relaxation steps (spec.md §8).
	MinPlusFloat64 = mustSemiring(OpMin, OpPlus, Float64)

	// OrAndBool is the boolean semiring used for reachability-style
	// boolean matrix multiply (add=lor, mul=land).
	OrAndBool = mustSemiring(OpLor, OpLand, Bool)
)

func mustSemiring(addOpcode, mulOpcode BinaryOpcode, c Code) *Semiring {
	add, err := BuiltinMonoid(addOpcode, c)
	if err != nil {
		panic(fmt.Sprintf("gbtype: mustSemiring: add monoid: %v", err))
	}

	t, err := BuiltinType(c)
	if err != nil {
		panic(fmt.Sprintf("gbtype: mustSemiring: type: %v", err))
	}

	mul, err := NewBuiltinBinaryOp(mulOpcode, t)
	if err != nil {
		panic(fmt.Sprintf("gbtype: mustSemiring: mul op: %v", err))
	}

	sr, err := NewSemiring(add, mul)
	if err != nil {
		panic(fmt.Sprintf("gbtype: mustSemiring: %v", err))
	}

	return sr
}
