package gbpersist

import (
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// Loader replays a chunked envelope back into a matrix (spec.md §6:
// "Loader reconstructs by replaying chunks; once the count of processed
// chunks equals the declared total, it clears any 'loading' policy
// override and applies pending work"). Feed accepts chunks in any order;
// Finish fails until every declared chunk has arrived.
type Loader struct {
	header    Header
	total     int
	seen      int
	gotHeader bool

	p, h, i []int64
	b       []bool
	x       []gbtype.Value
}

// NewLoader starts a replay expecting totalChunks chunks in total,
// including the header chunk EncodeChunks always emits first.
func NewLoader(totalChunks int) *Loader {
	return &Loader{total: totalChunks}
}

// Feed applies one chunk. A chunk with a nil Schema is the header chunk;
// anything else is a payload shard named by its ChunkSpec.
func (l *Loader) Feed(c Chunk) error {
	if l.seen >= l.total {
		return gbstatus.Newf(gbstatus.InvalidValue, "gbpersist.Loader.Feed", "already received all %d declared chunks", l.total)
	}

	if c.Schema == nil {
		if err := gobDecode(c.Data, &l.header); err != nil {
			return err
		}
		l.gotHeader = true
		l.seen++

		return nil
	}

	for _, spec := range c.Schema {
		switch spec.Field {
		case FieldP:
			var part []int64
			if err := gobDecode(c.Data, &part); err != nil {
				return err
			}
			l.p = append(l.p, part...)
		case FieldH:
			var part []int64
			if err := gobDecode(c.Data, &part); err != nil {
				return err
			}
			l.h = append(l.h, part...)
		case FieldB:
			var part []bool
			if err := gobDecode(c.Data, &part); err != nil {
				return err
			}
			l.b = append(l.b, part...)
		case FieldI:
			var part []int64
			if err := gobDecode(c.Data, &part); err != nil {
				return err
			}
			l.i = append(l.i, part...)
		case FieldX:
			var part []gbtype.Value
			if err := gobDecode(c.Data, &part); err != nil {
				return err
			}
			l.x = append(l.x, part...)
		default:
			return gbstatus.Newf(gbstatus.InvalidValue, "gbpersist.Loader.Feed", "unknown field %v", spec.Field)
		}
	}
	l.seen++

	return nil
}

// Done reports whether every declared chunk has arrived.
func (l *Loader) Done() bool { return l.seen >= l.total }

// Finish reconstructs the matrix once Done, locked to its declared format
// while FromSnapshot builds it, then widens the lock back to AnySparsity
// and calls Wait — the "clears any loading policy override and applies
// pending work" step spec.md §6 describes. t must carry the header's type
// code.
func (l *Loader) Finish(t *gbtype.Type) (*gbmatrix.Matrix, error) {
	if !l.gotHeader {
		return nil, gbstatus.New(gbstatus.UninitializedObject, "gbpersist.Loader.Finish", "header chunk not yet received")
	}
	if !l.Done() {
		return nil, gbstatus.Newf(gbstatus.InvalidValue, "gbpersist.Loader.Finish", "received %d of %d declared chunks", l.seen, l.total)
	}

	m, err := gbmatrix.FromSnapshot(t, gbmatrix.Snapshot{
		TypeCode: l.header.TypeCode,
		Vlen:     l.header.Vlen,
		Vdim:     l.header.Vdim,
		IsCSC:    l.header.IsCSC,
		Sparsity: l.header.Sparsity,
		Iso:      l.header.Iso,
		Nvec:     l.header.Nvec,
		Nvals:    l.header.Nvals,
		P:        l.p,
		H:        l.h,
		B:        l.b,
		I:        l.i,
		X:        l.x,
		Control:  gbmatrix.SparsityMask(l.header.Sparsity),
	})
	if err != nil {
		return nil, err
	}

	m.SetSparsityControl(gbmatrix.AnySparsity)

	if err := m.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}
