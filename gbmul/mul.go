package gbmul

import (
	"sort"

	"github.com/katalvlaran/gbmatrix/descriptor"
	"github.com/katalvlaran/gbmatrix/gbcast"
	"github.com/katalvlaran/gbmatrix/gbconfig"
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbstatus"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

type coord = [2]int64

type rowVal struct {
	row int64
	val gbtype.Value
}

// Mxm computes C<M> ← accum(C, A@B) over semi (spec.md §4.4, Matrix_mxm).
func Mxm(c, mask *gbmatrix.Matrix, accum *gbtype.BinaryOp, semi *gbtype.Semiring, a, b *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	if c == nil || a == nil || b == nil || semi == nil {
		return gbstatus.New(gbstatus.NullPointer, "gbmul.Mxm", "nil matrix or semiring")
	}

	resolved, err := descriptor.Resolve(desc, "gbmul.Mxm")
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

	if aUse.NCols() != bUse.NRows() {
		return gbstatus.New(gbstatus.DimensionMismatch, "gbmul.Mxm", "A.NCols != B.NRows")
	}
	if c.NRows() != aUse.NRows() || c.NCols() != bUse.NCols() {
		return gbstatus.New(gbstatus.DimensionMismatch, "gbmul.Mxm", "C shape != (A.NRows, B.NCols)")
	}
	if mask != nil && (mask.NRows() != c.NRows() || mask.NCols() != c.NCols()) {
		return gbstatus.New(gbstatus.DimensionMismatch, "gbmul.Mxm", "mask dimensions differ from C")
	}

	algo := chooseAlgorithm(resolved, c, aUse, bUse, semi)
	gbconfig.Trace("gbmul.Mxm: algorithm=%d A=%dx%d B=%dx%d", algo, aUse.NRows(), aUse.NCols(), bUse.NRows(), bUse.NCols())

	aI, aJ, aX, err := aUse.ExtractTuples(nil)
	if err != nil {
		return err
	}
	bI, bJ, bX, err := bUse.ExtractTuples(nil)
	if err != nil {
		return err
	}

	// A and B are stored raw (inner=vlen-indexed, outer=vdim-indexed); the
	// contraction axis is A's logical column against B's logical row, so
	// both sides are converted through their own isCSC flag before
	// grouping rather than assumed to share one convention the way
	// gbewise's same-shape elementwise kernel can (see DESIGN.md).
	aRow, aCol := logicalRowCol(aUse.IsCSC(), aI, aJ)
	bRow, bCol := logicalRowCol(bUse.IsCSC(), bI, bJ)

	aByK := groupByCol(aRow, aCol, aX) // keyed by A's logical column (k), payload is A's logical row (i)
	bByJ := groupByCol(bRow, bCol, bX) // keyed by B's logical column (j), payload is B's logical row (k)

	columns := make([]int64, 0, len(bByJ))
	for col := range bByJ {
		columns = append(columns, col)
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i] < columns[j] })

	results := make([]map[int64]gbtype.Value, len(columns))
	runErr := gbmatrix.RunTasks(resolved.Context, int64(len(columns)), func(lo, hi int64) error {
		for idx := lo; idx < hi; idx++ {
			acc, err := accumulateColumn(aByK, bByJ[columns[idx]], semi, aUse.Type(), bUse.Type())
			if err != nil {
				return err
			}
			results[idx] = acc
		}

		return nil
	})
	if runErr != nil {
		return runErr
	}

	// tensor is keyed in C's own raw storage coordinates, matching what
	// c.ExtractTuples/c.Build expect and what applyMaskAccumWrite assumes
	// of mask (same isCSC-sharing assumption gbewise documents).
	cIsCSC := c.IsCSC()
	tensor := make(map[coord]gbtype.Value)
	for idx, j := range columns {
		for i, v := range results[idx] {
			ci, cj := rawIJ(cIsCSC, i, j)
			tensor[coord{ci, cj}] = v
		}
	}

	return applyMaskAccumWrite(c, mask, accum, semi.Add.Op.ZType, tensor, resolved)
}

// Mxv computes w<M> ← accum(w, A@u), treating the column vector u as an
// n×1 matrix (spec.md §4.4's vxm/mxv are constrained mxm).
func Mxv(w, mask *gbmatrix.Matrix, accum *gbtype.BinaryOp, semi *gbtype.Semiring, a, u *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	return Mxm(w, mask, accum, semi, a, u, desc)
}

// Vxm computes w<M> ← accum(w, u@A), treating the row vector u as a 1×n
// matrix.
func Vxm(w, mask *gbmatrix.Matrix, accum *gbtype.BinaryOp, semi *gbtype.Semiring, u, a *gbmatrix.Matrix, desc *descriptor.Descriptor) error {
	return Mxm(w, mask, accum, semi, u, a, desc)
}

// Saxpy5 computes C ← A@B forcing the saxpy-5 algorithm hint (spec.md
// §4.4.3: C held full/bitmap, A held bitmap/full, B sparse/hypersparse).
// Callers outside those preconditions get InvalidObject rather than a
// silently mislabeled trace.
func Saxpy5(c, a, b *gbmatrix.Matrix, semi *gbtype.Semiring) error {
	if c == nil || a == nil || b == nil {
		return gbstatus.New(gbstatus.NullPointer, "gbmul.Saxpy5", "nil matrix")
	}
	if !isDenseish(c.Sparsity()) || !isDenseish(a.Sparsity()) || !isSparseish(b.Sparsity()) {
		return gbstatus.New(gbstatus.InvalidObject, "gbmul.Saxpy5", "preconditions unmet: need C,A dense-ish and B sparse-ish")
	}

	d := descriptor.New()
	d.AxB = descriptor.AxBSaxpy

	return Mxm(c, nil, nil, semi, a, b, d)
}

func isDenseish(s gbmatrix.Sparsity) bool { return s == gbmatrix.Bitmap || s == gbmatrix.Full }
func isSparseish(s gbmatrix.Sparsity) bool {
	return s == gbmatrix.Sparse || s == gbmatrix.Hypersparse
}

// chooseAlgorithm picks a trace label per spec.md §4.4.1's preconditions.
// It does not change accumulateColumn's arithmetic; see doc.go.
func chooseAlgorithm(resolved *descriptor.Resolved, c, a, b *gbmatrix.Matrix, semi *gbtype.Semiring) descriptor.AxBMode {
	if resolved.AxB != descriptor.AxBDefault {
		return resolved.AxB
	}
	builtinAdd := semi.Add.Op.Opcode != gbtype.OpAny
	if isDenseish(c.Sparsity()) && isDenseish(a.Sparsity()) && isSparseish(b.Sparsity()) && builtinAdd {
		return descriptor.AxBSaxpy
	}

	return descriptor.AxBGustavson
}

// logicalRowCol converts raw (I,J) storage tuples (I always vlen-indexed,
// J always vdim-indexed) into logical (row,col) pairs per isCSC (spec.md
// §3; same convention gbiter's pairsByAxis uses): row=I,col=J if isCSC,
// row=J,col=I otherwise.
func logicalRowCol(isCSC bool, I, J []int64) (row, col []int64) {
	if isCSC {
		return I, J
	}

	return J, I
}

// rawIJ is logicalRowCol's inverse, used to place a computed (row,col)
// result back into a specific matrix's own raw storage coordinates.
func rawIJ(isCSC bool, row, col int64) (i, j int64) {
	if isCSC {
		return row, col
	}

	return col, row
}

// groupByCol buckets (I,J,X) tuples by column J, each bucket sorted by row
// ascending (shared shape with gbewise.groupByCol, duplicated here since
// each kernel's inner loop reads its own row/col naming).
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

// accumulateColumn computes one column of C: for every nonzero B(k,j), fold
// semi.Mul(A(i,k), B(k,j)) into acc[i] via semi.Add, for every nonzero
// A(i,k) (spec.md §4.4's Gustavson/saxpy accumulation). A row's running sum
// stops accumulating once it hits the additive monoid's terminal value
// (spec.md §4.4.2: MIN_PLUS's -Inf terminal lets a dot product short-circuit).
// When semi.Mul is positional (spec.md §4.4.3), operand values are ignored
// and the product is PosFn(i, k): firsti/secondi read the A-row i, firstj/
// secondj read the contracted index k.
func accumulateColumn(aByCol map[int64][]rowVal, bCol []rowVal, semi *gbtype.Semiring, aType, bType *gbtype.Type) (map[int64]gbtype.Value, error) {
	acc := make(map[int64]gbtype.Value)
	done := make(map[int64]bool)
	positional := semi.Mul.Positional()
	for _, bv := range bCol {
		aCol := aByCol[bv.row]
		if len(aCol) == 0 {
			continue
		}
		for _, av := range aCol {
			if done[av.row] {
				continue
			}

			var prod gbtype.Value
			if positional {
				prod = semi.Mul.PosFn(int(av.row), int(bv.row))
			} else {
				x, err := castTo(av.val, aType, semi.Mul.XType)
				if err != nil {
					return nil, err
				}
				y, err := castTo(bv.val, bType, semi.Mul.YType)
				if err != nil {
					return nil, err
				}
				prod = semi.Mul.Fn(x, y)
			}

			if prev, ok := acc[av.row]; ok {
				acc[av.row] = semi.Add.Op.Fn(prev, prod)
			} else {
				acc[av.row] = prod
			}
			if semi.Add.IsTerminal(acc[av.row]) {
				done[av.row] = true
			}
		}
	}

	return acc, nil
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

// applyMaskAccumWrite mirrors gbewise.applyMaskAccumWrite's atomic-failure
// shape (spec.md §4.4.4): the full prospective output is built in memory
// before c.Clear()/c.Build() ever runs, so a cast error leaves c untouched.
func applyMaskAccumWrite(c, mask *gbmatrix.Matrix, accum *gbtype.BinaryOp, tensorType *gbtype.Type, tensor map[coord]gbtype.Value, resolved *descriptor.Resolved) error {
	if accum != nil && accum.Positional() {
		return gbstatus.New(gbstatus.DomainMismatch, "gbmul.applyMaskAccumWrite", "positional op cannot be used as accum")
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
