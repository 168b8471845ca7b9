// Package gbcast is the cast factory every kernel consults whenever the
// element types on a triple (input lhs, input rhs, output) disagree with an
// operator's declared signature: a table of (to_code, from_code) -> fn
// keyed exactly the way the registry keys operators by opcode.
//
// What & Why:
//
//	spec.md §4.1: "Table of (from-code, to-code) -> fn(dst, src, size) used
//	wherever element types on a triple ... disagree with operator
//	signatures." Identical codes cast via a direct copy; cross-built-in
//	casts follow C truncation rules (no saturation); user-defined casts
//	are memcpy for equal size and an error otherwise, decided once at
//	op-construction time rather than re-checked per element.
package gbcast

import (
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// Fn casts src (boxed as a gbtype.Value of the source type) to the
// destination type, returning the boxed destination value.
type Fn func(src gbtype.Value) gbtype.Value

// key pairs a (to,from) Code pair the way the registry pairs (opcode,type).
type key struct{ to, from gbtype.Code }

// table is built once at init and never mutated afterward; concurrent
// lookups need no lock, mirroring the registry's own built-in operator
// construction.
var table = map[key]Fn{}

func register(to, from gbtype.Code, fn Fn) { table[key{to, from}] = fn }

// Cast returns the cast function for (to, from), or an error if the pair is
// not representable. Identical codes always succeed via identity copy; a
// pair of user-defined types of differing declared size is rejected by
// LookupOpaque, not here.
func Cast(to, from gbtype.Code) (Fn, error) {
	if to == from {
		return func(src gbtype.Value) gbtype.Value { return src }, nil
	}
	if fn, ok := table[key{to, from}]; ok {
		return fn, nil
	}

	return nil, gbstatus.Newf(gbstatus.DomainMismatch, "Cast", "no cast from %v to %v", from, to)
}

// LookupOpaque resolves a cast between two user-defined types: memcpy if
// both are the same byte size, an error otherwise (spec.md §4.1: "any other
// user-defined cast is an error at op-construction time").
func LookupOpaque(to, from *gbtype.Type) (Fn, error) {
	if to == nil || from == nil {
		return nil, gbstatus.New(gbstatus.NullPointer, "LookupOpaque", "nil type")
	}
	if to.Code == from.Code {
		return func(src gbtype.Value) gbtype.Value { return src }, nil
	}
	if to.Size == from.Size {
		return func(src gbtype.Value) gbtype.Value { return src }, nil
	}

	return nil, gbstatus.Newf(gbstatus.DomainMismatch, "LookupOpaque",
		"opaque cast %s(%dB) <- %s(%dB): sizes differ", to.Name, to.Size, from.Name, from.Size)
}

func init() {
	registerIntCasts()
	registerFloatCasts()
	registerBoolCasts()
	registerComplexCasts()
}
