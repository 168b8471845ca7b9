// Package gbtype is the closed type/operator registry every kernel in this
// module dispatches through: element types, unary/binary operators,
// monoids, and semirings, each carrying a type signature and a function
// pointer rather than a void pointer and an opcode switch compiled at
// runtime.
//
// What & Why:
//
//	spec.md §2 calls for "a closed set of primitive element types ... plus
//	user-defined opaque types" with unary/binary ops, monoids, and
//	semirings as first-class values. This package is that registry.
//	Built-in ops are identified by an opcode enum (BinaryOpcode/UnaryOpcode)
//	the way the original C source used an opcode table for codegen
//	dispatch (spec.md §9 "Opcode-driven codegen"); here the opcode
//	additionally lets BuiltinMonoid answer "does this (opcode,type) pair
//	have a canonical monoid" without re-deriving it from the function
//	pointer.
//
// Complexity:
//
//	Type/op construction is O(1). Registry lookups (BuiltinMonoid) are
//	O(1) table indexing.
package gbtype

import (
	"fmt"
	"sync"
)

// Code identifies an element type. Built-in codes are the closed set below;
// user-defined codes are allocated by NewOpaqueType starting at userBase.
type Code int

// Built-in type codes (10 real types + bool + 2 complex = 13), per spec.md §2.
const (
	Bool Code = iota
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	Complex64
	Complex128
	userBase // first code available to NewOpaqueType
)

var builtinNames = [...]string{
	"BOOL", "INT8", "INT16", "INT32", "INT64",
	"UINT8", "UINT16", "UINT32", "UINT64",
	"FP32", "FP64", "FC32", "FC64",
}

var builtinSizes = [...]int{
	1, 1, 2, 4, 8,
	1, 2, 4, 8,
	4, 8, 8, 16,
}

// IsBuiltin reports whether c is one of the 13 built-in codes.
func (c Code) IsBuiltin() bool { return c >= Bool && c < userBase }

// String renders the type code's canonical name.
func (c Code) String() string {
	if c.IsBuiltin() {
		return builtinNames[c]
	}

	return fmt.Sprintf("UDT(%d)", int(c))
}

// Type is a record {code, size_in_bytes, name, opaque?} per spec.md §3.
// Equality between two Types is by Code: built-in codes are singletons
// from this package; user-defined codes are allocated uniquely per
// NewOpaqueType call, so Code equality also implies identity for them.
type Type struct {
	Code   Code
	Size   int
	Name   string
	Opaque bool
}

// Equal reports whether t and other denote the same element type.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.Code == other.Code
}

// builtinType returns the canonical *Type value for a built-in code.
func builtinType(c Code) *Type {
	return &Type{Code: c, Size: builtinSizes[c], Name: builtinNames[c]}
}

// Built-in type singletons, safe to compare/share across goroutines (they
// are never mutated after package init).
var (
	TBool       = builtinType(Bool)
	TInt8       = builtinType(Int8)
	TInt16      = builtinType(Int16)
	TInt32      = builtinType(Int32)
	TInt64      = builtinType(Int64)
	TUInt8      = builtinType(UInt8)
	TUInt16     = builtinType(UInt16)
	TUInt32     = builtinType(UInt32)
	TUInt64     = builtinType(UInt64)
	TFloat32    = builtinType(Float32)
	TFloat64    = builtinType(Float64)
	TComplex64  = builtinType(Complex64)
	TComplex128 = builtinType(Complex128)
)

// BuiltinType returns the canonical *Type for a built-in code, or an error
// if c is not one of the 13 built-ins.
func BuiltinType(c Code) (*Type, error) {
	if !c.IsBuiltin() {
		return nil, fmt.Errorf("gbtype: BuiltinType(%v): %w", c, ErrInvalidValue)
	}

	return builtinType(c), nil
}

// opaqueRegistry guards user-defined type-code allocation; process-wide and
// immutable except for this append, mirroring spec.md §5's treatment of the
// registry as shared, mostly-immutable global state.
var opaqueRegistry struct {
	mu   sync.Mutex
	next Code
}

func init() { opaqueRegistry.next = userBase }

// NewOpaqueType allocates a fresh user-defined Type of the given byte size
// and name. Each call returns a distinct Code, even for repeated names.
func NewOpaqueType(name string, size int) (*Type, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gbtype: NewOpaqueType(%q): %w", name, ErrInvalidValue)
	}

	opaqueRegistry.mu.Lock()
	defer opaqueRegistry.mu.Unlock()
	code := opaqueRegistry.next
	opaqueRegistry.next++

	return &Type{Code: code, Size: size, Name: name, Opaque: true}, nil
}
