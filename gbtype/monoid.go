package gbtype

import "fmt"

// Monoid is a commutative, associative binary op plus an identity value
// (spec.md §3: "monoid = {op, identity, terminal?}"). Terminal is optional:
// when present, a reduction or dot-product may short-circuit once it is
// observed (spec.md §4.4.2 calls this out for MIN_PLUS; the built-in MIN
// monoid's terminal is -Inf for floats).
type Monoid struct {
	Op       *BinaryOp
	Identity Value
	Terminal Value
	HasTerm  bool
	Name     string
}

// IsTerminal reports whether v equals this monoid's terminal value, if any.
func (m *Monoid) IsTerminal(v Value) bool {
	if !m.HasTerm {
		return false
	}

	return v == m.Terminal
}

// NewMonoid builds a monoid from a binary op and its identity. The op must
// be closed (z_type == x_type == y_type) and non-positional: positional ops
// read (i,j) rather than operand values, so they have no meaningful identity
// element and cannot accumulate (spec.md open question, resolved: rejected).
func NewMonoid(op *BinaryOp, identity Value, opts ...MonoidOption) (*Monoid, error) {
	if op == nil {
		return nil, fmt.Errorf("gbtype: NewMonoid: nil op: %w", ErrInvalidValue)
	}
	if op.Positional() {
		return nil, fmt.Errorf("gbtype: NewMonoid(%s): positional ops cannot be monoids: %w", op.Name, ErrDomainMismatch)
	}
	if !op.ZType.Equal(op.XType) || !op.ZType.Equal(op.YType) {
		return nil, fmt.Errorf("gbtype: NewMonoid(%s): op is not closed (z=%v x=%v y=%v): %w",
			op.Name, op.ZType, op.XType, op.YType, ErrDomainMismatch)
	}

	m := &Monoid{Op: op, Identity: identity, Name: op.Name}
	for _, o := range opts {
		o(m)
	}

	return m, nil
}

// MonoidOption configures optional Monoid fields.
type MonoidOption func(*Monoid)

// WithTerminal attaches a terminal value that short-circuits reductions.
func WithTerminal(v Value) MonoidOption {
	return func(m *Monoid) { m.Terminal, m.HasTerm = v, true }
}
