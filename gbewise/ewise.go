package gbewise

import (
	"sort"

	"github.com/katalvlaran/gbmatrix/descriptor"
	"github.com/katalvlaran/gbmatrix/gbcast"
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// gallopThreshold is the density ratio spec.md §4.3.2 names ("If one side
// is ≥ 256× denser than the other, galloping/binary-trim search is used on
// the denser side to advance past gaps").
const gallopThreshold = 256

type coord = [2]int64

type rowVal struct {
	row int64
	val gbtype.Value
}

// EWiseAdd computes C<M> ← accum(C, f(A, B)) over the union of A and B's
// patterns (spec.md §4.3.1, Matrix_add).
func EWiseAdd(c, mask *gbmatrix.Matrix, accum, f *gbtype.BinaryOp, a, b *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	return eWise(c, mask, accum, f, a, b, desc, true)
}

// EWiseMult computes C<M> ← accum(C, f(A, B)) over the intersection of A
// and B's patterns (spec.md §4.3.2, Matrix_emult).
func EWiseMult(c, mask *gbmatrix.Matrix, accum, f *gbtype.BinaryOp, a, b *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	return eWise(c, mask, accum, f, a, b, desc, false)
}

// eWise is the shared driver of spec.md §4.3.4: resolve the descriptor,
// materialize transposed temporaries if requested (freed on every path),
// compute the tensor per column via computeColumn, then apply mask and
// accum into c.
func eWise(c, mask *gbmatrix.Matrix, accum, f *gbtype.BinaryOp, a, b *gbmatrix.Matrix, desc *descriptor.Descriptor, union bool) error {
	if c == nil || a == nil || b == nil || f == nil {
		return gbstatus.New(gbstatus.NullPointer, "gbewise.eWise", "nil matrix or op")
	}

	resolved, err := descriptor.Resolve(desc, "gbewise.eWise")
	if err != nil {
		return err
	}

	aUse, bUse := a, b
	if resolved.TransposeIn0 {
		if aUse, err = gbmatrix.Transpose(a); err != nil {
			return err
		}
		defer aUse.Free()
	}
	if resolved.TransposeIn1 {
		if bUse, err = gbmatrix.Transpose(b); err != nil {
			return err
		}
		defer bUse.Free()
	}

	if aUse.NRows() != bUse.NRows() || aUse.NCols() != bUse.NCols() {
		return gbstatus.New(gbstatus.DimensionMismatch, "gbewise.eWise", "A and B dimensions differ")
	}
	if c.NRows() != aUse.NRows() || c.NCols() != aUse.NCols() {
		return gbstatus.New(gbstatus.DimensionMismatch, "gbewise.eWise", "C dimensions differ from A/B")
	}
	if mask != nil && (mask.NRows() != c.NRows() || mask.NCols() != c.NCols()) {
		return gbstatus.New(gbstatus.DimensionMismatch, "gbewise.eWise", "mask dimensions differ from C")
	}

	aI, aJ, aX, err := aUse.ExtractTuples(nil)
	if err != nil {
		return err
	}
	bI, bJ, bX, err := bUse.ExtractTuples(nil)
	if err != nil {
		return err
	}

	aByCol := groupByCol(aI, aJ, aX)
	bByCol := groupByCol(bI, bJ, bX)
	columns := selectColumns(aByCol, bByCol, union)

	results := make([][]rowVal, len(columns))
	runErr := gbmatrix.RunTasks(resolved.Context, int64(len(columns)), func(lo, hi int64) error {
		for idx := lo; idx < hi; idx++ {
			col := columns[idx]
			out, err := computeColumn(aByCol[col], bByCol[col], f, aUse.Type(), bUse.Type(), union)
			if err != nil {
				return err
			}
			results[idx] = out
		}

		return nil
	})
	if runErr != nil {
		return runErr
	}

	tensor := make(map[coord]gbtype.Value)
	for idx, col := range columns {
		for _, rv := range results[idx] {
			tensor[coord{rv.row, col}] = rv.val
		}
	}

	return applyMaskAccumWrite(c, mask, accum, f.ZType, tensor, resolved)
}

// groupByCol buckets (I,J,X) tuples by column, each bucket sorted by row
// ascending so the per-column kernel can merge by inner-index order.
func groupByCol(I, J []int64, X []gbtype.Value) map[int64][]rowVal {
	m := make(map[int64][]rowVal)
	for k := range I {
		m[J[k]] = append(m[J[k]], rowVal{row: I[k], val: X[k]})
	}
	for col, rows := range m {
		sort.Slice(rows, func(i, j int) bool { return rows[i].row < rows[j].row })
		m[col] = rows
	}

	return m
}

// selectColumns returns the columns computeColumn must visit: every column
// present in either side for a union, only columns present in both sides
// for an intersection (spec.md §4.3.2: "skip a slice entirely when either
// column is empty").
func selectColumns(aByCol, bByCol map[int64][]rowVal, union bool) []int64 {
	set := make(map[int64]bool)
	if union {
		for col := range aByCol {
			set[col] = true
		}
		for col := range bByCol {
			set[col] = true
		}
	} else {
		for col := range aByCol {
			if _, ok := bByCol[col]; ok {
				set[col] = true
			}
		}
	}

	cols := make([]int64, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	return cols
}

// computeColumn merges one column of A and B in inner-index order,
// producing the union or intersection per spec.md §4.3.1/§4.3.2. Values
// are cast to f.ZType as they are emitted, since the resulting tensor has
// one uniform type regardless of whether an entry came from A alone, B
// alone, or f(A,B).
func computeColumn(aRows, bRows []rowVal, f *gbtype.BinaryOp, aType, bType *gbtype.Type, union bool) ([]rowVal, error) {
	if !union {
		if len(aRows) == 0 || len(bRows) == 0 {
			return nil, nil
		}
		if aRows[len(aRows)-1].row < bRows[0].row || bRows[len(bRows)-1].row < aRows[0].row {
			return nil, nil
		}
	}

	var out []rowVal
	i, j := 0, 0
	for i < len(aRows) && j < len(bRows) {
		switch {
		case aRows[i].row < bRows[j].row:
			if union {
				v, err := castTo(aRows[i].val, aType, f.ZType)
				if err != nil {
					return nil, err
				}
				out = append(out, rowVal{row: aRows[i].row, val: v})
				i++

				continue
			}
			if len(aRows)-i >= gallopThreshold*(len(bRows)-j) {
				i = advanceGallop(aRows, i, bRows[j].row)
			} else {
				i++
			}
		case aRows[i].row > bRows[j].row:
			if union {
				v, err := castTo(bRows[j].val, bType, f.ZType)
				if err != nil {
					return nil, err
				}
				out = append(out, rowVal{row: bRows[j].row, val: v})
				j++

				continue
			}
			if len(bRows)-j >= gallopThreshold*(len(aRows)-i) {
				j = advanceGallop(bRows, j, aRows[i].row)
			} else {
				j++
			}
		default:
			x, y, err := castPair(aRows[i].val, aType, bRows[j].val, bType, f)
			if err != nil {
				return nil, err
			}
			out = append(out, rowVal{row: aRows[i].row, val: f.Fn(x, y)})
			i++
			j++
		}
	}
	if union {
		for ; i < len(aRows); i++ {
			v, err := castTo(aRows[i].val, aType, f.ZType)
			if err != nil {
				return nil, err
			}
			out = append(out, rowVal{row: aRows[i].row, val: v})
		}
		for ; j < len(bRows); j++ {
			v, err := castTo(bRows[j].val, bType, f.ZType)
			if err != nil {
				return nil, err
			}
			out = append(out, rowVal{row: bRows[j].row, val: v})
		}
	}

	return out, nil
}

// advanceGallop binary-searches rows[from:] for the first row >= target,
// the "binary-trim" advance spec.md §4.3.2 calls for on the denser side.
func advanceGallop(rows []rowVal, from int, target int64) int {
	n := sort.Search(len(rows)-from, func(k int) bool { return rows[from+k].row >= target })

	return from + n
}

func castTo(v gbtype.Value, from, to *gbtype.Type) (gbtype.Value, error) {
	if from.Code == to.Code {
		return v, nil
	}
	fn, err := gbcast.Cast(to.Code, from.Code)
	if err != nil {
		return nil, err
	}

	return fn(v), nil
}

func castPair(av gbtype.Value, aType *gbtype.Type, bv gbtype.Value, bType *gbtype.Type, f *gbtype.BinaryOp) (gbtype.Value, gbtype.Value, error) {
	x, err := castTo(av, aType, f.XType)
	if err != nil {
		return nil, nil, err
	}
	y, err := castTo(bv, bType, f.YType)
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// applyMaskAccumWrite merges the computed tensor into c: masked-out
// positions keep c's prior value (unless the descriptor requests output
// replace), masked-in positions are accum'd against the prior value when
// accum is non-nil, otherwise overwritten (spec.md §4.3.4, invariant 9 of
// spec.md §8: "untouched entries of C bytewise-unchanged").
func applyMaskAccumWrite(c, mask *gbmatrix.Matrix, accum *gbtype.BinaryOp, tensorType *gbtype.Type, tensor map[coord]gbtype.Value, resolved *descriptor.Resolved) error {
	if accum != nil && accum.Positional() {
		return gbstatus.New(gbstatus.DomainMismatch, "gbewise.applyMaskAccumWrite", "positional op cannot be used as accum")
	}

	maskSel, err := maskPredicate(mask, resolved)
	if err != nil {
		return err
	}

	existingI, existingJ, existingX, err := c.ExtractTuples(nil)
	if err != nil {
		return err
	}
	existing := make(map[coord]gbtype.Value, len(existingI))
	for k := range existingI {
		existing[coord{existingI[k], existingJ[k]}] = existingX[k]
	}

	out := make(map[coord]gbtype.Value, len(existing)+len(tensor))
	if !resolved.OutputReplace {
		for k, v := range existing {
			out[k] = v
		}
	}

	keys := make([]coord, 0, len(tensor))
	for k := range tensor {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][1] != keys[j][1] {
			return keys[i][1] < keys[j][1]
		}

		return keys[i][0] < keys[j][0]
	})

	for _, k := range keys {
		if !maskSel(k) {
			continue
		}
		v, err := castTo(tensor[k], tensorType, c.Type())
		if err != nil {
			return err
		}
		if accum != nil {
			if prev, ok := existing[k]; ok {
				v = accum.Fn(prev, v)
			}
		}
		out[k] = v
	}

	I := make([]int64, 0, len(out))
	J := make([]int64, 0, len(out))
	X := make([]gbtype.Value, 0, len(out))
	for k, v := range out {
		I = append(I, k[0])
		J = append(J, k[1])
		X = append(X, v)
	}

	if err := c.Clear(); err != nil {
		return err
	}

	return c.Build(I, J, X, nil)
}

// maskPredicate builds the per-coordinate selection test, honoring the
// descriptor's structure-only and complement flags and the empty-
// complemented-mask short-circuit of spec.md §4.3.4/§4.8.
func maskPredicate(mask *gbmatrix.Matrix, resolved *descriptor.Resolved) (func(coord) bool, error) {
	if mask == nil {
		return func(coord) bool { return true }, nil
	}
	if resolved.MaskEmptyComplementShortCircuit(mask.NVals()) {
		return func(coord) bool { return true }, nil
	}

	mI, mJ, mX, err := mask.ExtractTuples(nil)
	if err != nil {
		return nil, err
	}
	present := make(map[coord]gbtype.Value, len(mI))
	for k := range mI {
		present[coord{mI[k], mJ[k]}] = mX[k]
	}

	return func(k coord) bool {
		v, ok := present[k]
		sel := ok
		if ok && !resolved.MaskStructureOnly {
			sel = isTruthy(v)
		}
		if resolved.MaskComplement {
			sel = !sel
		}

		return sel
	}, nil
}

func isTruthy(v gbtype.Value) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case complex64:
		return x != 0
	case complex128:
		return x != 0
	}

	return true
}
