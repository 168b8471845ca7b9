package gbpersist

import (
	"bytes"
	"encoding/gob"

	"github.com/katalvlaran/gbmatrix/gbconfig"
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

func init() {
	// gbtype.Value is interface{}; gob needs every concrete type it might
	// hold registered once, process-wide, before Encode/Decode of a Value.
	gob.Register(bool(false))
	gob.Register(int8(0))
	gob.Register(int16(0))
	gob.Register(int32(0))
	gob.Register(int64(0))
	gob.Register(uint8(0))
	gob.Register(uint16(0))
	gob.Register(uint32(0))
	gob.Register(uint64(0))
	gob.Register(float32(0))
	gob.Register(float64(0))
	gob.Register(complex64(0))
	gob.Register(complex128(0))
}

// Header is the fixed-size part of the envelope (spec.md §6: "{header:
// {type_code, vlen, vdim, is_csc, sparsity, iso, nvec, nvals}, ...}").
type Header struct {
	TypeCode gbtype.Code
	Vlen     int
	Vdim     int
	IsCSC    bool
	Sparsity gbmatrix.Sparsity
	Iso      bool
	Nvec     int
	Nvals    int64
}

// Payload is the variable-size part, matching whichever of P/H/B/I/X the
// header's sparsity format actually populates.
type Payload struct {
	P []int64
	H []int64
	B []bool
	I []int64
	X []gbtype.Value
}

// Envelope is a matrix serialized whole, with no chunk boundaries.
type Envelope struct {
	Header  Header
	Payload Payload
}

// Export captures m's physical storage as an Envelope. Per spec.md §5 ("the
// persistence layer acquires read locks on all involved matrices before
// serialization"), this resolves pending work first via gbmatrix.Snapshot.
func Export(m *gbmatrix.Matrix) (Envelope, error) {
	if m == nil {
		return Envelope{}, gbstatus.New(gbstatus.NullPointer, "gbpersist.Export", "nil matrix")
	}

	snap, err := m.Snapshot()
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		Header: Header{
			TypeCode: snap.TypeCode,
			Vlen:     snap.Vlen,
			Vdim:     snap.Vdim,
			IsCSC:    snap.IsCSC,
			Sparsity: snap.Sparsity,
			Iso:      snap.Iso,
			Nvec:     snap.Nvec,
			Nvals:    snap.Nvals,
		},
		Payload: Payload{
			P: snap.P,
			H: snap.H,
			B: snap.B,
			I: snap.I,
			X: snap.X,
		},
	}, nil
}

// Import reconstructs a matrix from an Envelope previously produced by
// Export. t must carry the same type code the envelope was exported with.
func Import(t *gbtype.Type, env Envelope) (*gbmatrix.Matrix, error) {
	return gbmatrix.FromSnapshot(t, gbmatrix.Snapshot{
		TypeCode: env.Header.TypeCode,
		Vlen:     env.Header.Vlen,
		Vdim:     env.Header.Vdim,
		IsCSC:    env.Header.IsCSC,
		Sparsity: env.Header.Sparsity,
		Iso:      env.Header.Iso,
		Nvec:     env.Header.Nvec,
		Nvals:    env.Header.Nvals,
		P:        env.Payload.P,
		H:        env.Payload.H,
		B:        env.Payload.B,
		I:        env.Payload.I,
		X:        env.Payload.X,
	})
}

// Field names one of the payload's five array groups, used to label a
// chunk's contents (spec.md §6: the chunk "schema declares the ordered
// list of (state, count) pairs that the chunk carries").
type Field int

const (
	FieldP Field = iota
	FieldH
	FieldB
	FieldI
	FieldX
)

func (f Field) String() string {
	switch f {
	case FieldP:
		return "P"
	case FieldH:
		return "H"
	case FieldB:
		return "B"
	case FieldI:
		return "I"
	case FieldX:
		return "X"
	}

	return "unknown"
}

// ChunkSpec is one (state, count) pair: Field names which array the chunk's
// Data decodes to, Count is how many elements of it.
type ChunkSpec struct {
	Field Field
	Count int
}

// Chunk is one shard of an Envelope's payload: Schema names which fields it
// carries and how many elements of each, Data is the gob-encoded slice(s)
// in Schema order.
type Chunk struct {
	Schema []ChunkSpec
	Data   []byte
}

func gobEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, gbstatus.Newf(gbstatus.InvalidValue, "gbpersist", "encode: %v", err)
	}

	return buf.Bytes(), nil
}

func gobDecode(data []byte, v interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return gbstatus.Newf(gbstatus.InvalidValue, "gbpersist", "decode: %v", err)
	}

	return nil
}

// EncodeChunks shards env's header and payload into chunks of at most
// chunkSize elements each (chunkSize <= 0 uses gbconfig.Chunk()). The
// header always travels alone as the first chunk with an empty Schema so
// Loader can recover it before any payload chunk arrives.
func EncodeChunks(env Envelope, chunkSize int) ([]Chunk, error) {
	if chunkSize <= 0 {
		chunkSize = int(gbconfig.Chunk())
	}
	if chunkSize <= 0 {
		chunkSize = 1
	}

	headerData, err := gobEncode(env.Header)
	if err != nil {
		return nil, err
	}
	chunks := []Chunk{{Schema: nil, Data: headerData}}

	appendField := func(field Field, n int, slice func(lo, hi int) (interface{}, error)) error {
		for lo := 0; lo < n; lo += chunkSize {
			hi := lo + chunkSize
			if hi > n {
				hi = n
			}
			v, err := slice(lo, hi)
			if err != nil {
				return err
			}
			data, err := gobEncode(v)
			if err != nil {
				return err
			}
			chunks = append(chunks, Chunk{
				Schema: []ChunkSpec{{Field: field, Count: hi - lo}},
				Data:   data,
			})
		}

		return nil
	}

	if err := appendField(FieldP, len(env.Payload.P), func(lo, hi int) (interface{}, error) {
		return env.Payload.P[lo:hi], nil
	}); err != nil {
		return nil, err
	}
	if err := appendField(FieldH, len(env.Payload.H), func(lo, hi int) (interface{}, error) {
		return env.Payload.H[lo:hi], nil
	}); err != nil {
		return nil, err
	}
	if err := appendField(FieldB, len(env.Payload.B), func(lo, hi int) (interface{}, error) {
		return env.Payload.B[lo:hi], nil
	}); err != nil {
		return nil, err
	}
	if err := appendField(FieldI, len(env.Payload.I), func(lo, hi int) (interface{}, error) {
		return env.Payload.I[lo:hi], nil
	}); err != nil {
		return nil, err
	}
	if err := appendField(FieldX, len(env.Payload.X), func(lo, hi int) (interface{}, error) {
		return env.Payload.X[lo:hi], nil
	}); err != nil {
		return nil, err
	}

	return chunks, nil
}
