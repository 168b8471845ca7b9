package gbtype

import "fmt"

// Semiring pairs an additive monoid with a multiplicative op for mxm/vxm/mxv
// (spec.md §3: "semiring = {add monoid, multiply op}"). The multiply op's
// output type must match the add monoid's type: mxm accumulates products
// into the monoid, so they must agree on what is being accumulated.
type Semiring struct {
	Add *Monoid
	Mul *BinaryOp
	Name string
}

// NewSemiring builds a semiring from an additive monoid and a multiplicative
// binary op. mul.ZType must equal add.Op.ZType; mul itself need not be
// closed (e.g. MIN_PLUS's implicit "first plus" on mixed types is out of
// scope here, but PLUS_TIMES and OR_AND both satisfy this trivially since
// their multiply op is already closed over the same type as add). mul may
// be positional (firsti/firstj/secondi/secondj): spec.md §4.4.3's saxpy-5
// requires positional multipliers to expand to i- or k-dependent scalars.
// The additive side has no such exception (spec.md §9): NewMonoid already
// rejects a positional op there.
func NewSemiring(add *Monoid, mul *BinaryOp) (*Semiring, error) {
	if add == nil || mul == nil {
		return nil, fmt.Errorf("gbtype: NewSemiring: nil add or mul: %w", ErrInvalidValue)
	}
	if !mul.ZType.Equal(add.Op.ZType) {
		return nil, fmt.Errorf("gbtype: NewSemiring(%s,%s): mul.ZType %v != add.ZType %v: %w",
			add.Name, mul.Name, mul.ZType, add.Op.ZType, ErrDomainMismatch)
	}

	return &Semiring{Add: add, Mul: mul, Name: add.Name + "_" + mul.Name}, nil
}
