package gbmul_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbmul"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// buildLogical builds an nrows x ncols matrix from logical (row,col,val)
// triples. Every matrix gbmatrix.New creates defaults to isCSC=false (the
// package's ByRow default orientation), under which raw storage I is the
// logical column and raw J is the logical row (spec.md §3's vlen/vdim
// convention: i always inner/vlen-indexed, j always outer/vdim-indexed).
func buildLogical(t *testing.T, rows, cols []int64, vals []gbtype.Value, nrows, ncols int, sparsity gbmatrix.Sparsity) *gbmatrix.Matrix {
	t.Helper()
	m, err := gbmatrix.New(gbtype.TFloat64, ncols, nrows, sparsity, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.IsCSC() {
		t.Fatalf("test helper assumes the default (non-CSC) orientation")
	}

	I := make([]int64, len(rows))
	J := make([]int64, len(rows))
	for k := range rows {
		I[k] = cols[k]
		J[k] = rows[k]
	}
	if err := m.Build(I, J, vals, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	return m
}

func extractLogical(t *testing.T, m *gbmatrix.Matrix, row, col int64) (gbtype.Value, bool) {
	t.Helper()
	x, ok, err := m.ExtractElement(int(col), int(row))
	if err != nil {
		t.Fatalf("ExtractElement(%d,%d): %v", col, row, err)
	}

	return x, ok
}

func plusTimesSemiring(t *testing.T) *gbtype.Semiring {
	t.Helper()
	plus, err := gbtype.NewBuiltinBinaryOp(gbtype.OpPlus, gbtype.TFloat64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(PLUS): %v", err)
	}
	times, err := gbtype.NewBuiltinBinaryOp(gbtype.OpTimes, gbtype.TFloat64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(TIMES): %v", err)
	}
	add, err := gbtype.NewMonoid(plus, 0.0)
	if err != nil {
		t.Fatalf("NewMonoid(PLUS): %v", err)
	}
	semi, err := gbtype.NewSemiring(add, times)
	if err != nil {
		t.Fatalf("NewSemiring(PLUS_TIMES): %v", err)
	}

	return semi
}

func minPlusSemiring(t *testing.T) *gbtype.Semiring {
	t.Helper()
	minOp, err := gbtype.NewBuiltinBinaryOp(gbtype.OpMin, gbtype.TFloat64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(MIN): %v", err)
	}
	plus, err := gbtype.NewBuiltinBinaryOp(gbtype.OpPlus, gbtype.TFloat64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(PLUS): %v", err)
	}
	add, err := gbtype.NewMonoid(minOp, math.Inf(1), gbtype.WithTerminal(math.Inf(-1)))
	if err != nil {
		t.Fatalf("NewMonoid(MIN): %v", err)
	}
	semi, err := gbtype.NewSemiring(add, plus)
	if err != nil {
		t.Fatalf("NewSemiring(MIN_PLUS): %v", err)
	}

	return semi
}

func TestMxmIdentityDiagonal(t *testing.T) {
	diag := buildLogical(t, []int64{0, 1, 2}, []int64{0, 1, 2}, []gbtype.Value{1.0, 1.0, 1.0}, 3, 3, gbmatrix.Sparse)
	b := buildLogical(t, []int64{0, 1, 2}, []int64{0, 1, 2}, []gbtype.Value{5.0, 6.0, 7.0}, 3, 3, gbmatrix.Sparse)
	c, err := gbmatrix.New(gbtype.TFloat64, 3, 3, gbmatrix.Sparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gbmul.Mxm(c, nil, nil, plusTimesSemiring(t), diag, b, nil); err != nil {
		t.Fatalf("Mxm: %v", err)
	}

	for _, i := range []int64{0, 1, 2} {
		x, ok := extractLogical(t, c, i, i)
		if !ok {
			t.Fatalf("expected diagonal entry at (%d,%d)", i, i)
		}
		want, _ := extractLogical(t, b, i, i)
		if x != want {
			t.Fatalf("diag*B should equal B at (%d,%d): got %v want %v", i, i, x, want)
		}
	}
}

func TestMxmMinPlusShortestPathStep(t *testing.T) {
	inf := math.Inf(1)
	rows := []int64{0, 0, 0, 1, 1, 1, 2, 2, 2}
	cols := []int64{0, 1, 2, 0, 1, 2, 0, 1, 2}
	vals := []gbtype.Value{3.0, 5.0, inf, inf, 0.0, 2.0, 4.0, inf, 0.0}
	a := buildLogical(t, rows, cols, vals, 3, 3, gbmatrix.Full)
	c, err := gbmatrix.New(gbtype.TFloat64, 3, 3, gbmatrix.Full, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gbmul.Mxm(c, nil, nil, minPlusSemiring(t), a, a, nil); err != nil {
		t.Fatalf("Mxm: %v", err)
	}

	// spec.md §8 scenario 4: mxm(A,A) == [[3,5,7],[6,0,2],[4,9,0]].
	want := [][]float64{{3, 5, 7}, {6, 0, 2}, {4, 9, 0}}
	for i := int64(0); i < 3; i++ {
		for j := int64(0); j < 3; j++ {
			x, ok := extractLogical(t, c, i, j)
			if !ok {
				t.Fatalf("expected entry at logical (%d,%d)", i, j)
			}
			if x != want[i][j] {
				t.Fatalf("mxm(A,A)[%d][%d] = %v, want %v", i, j, x, want[i][j])
			}
		}
	}
}

func TestMxvMatrixTimesVector(t *testing.T) {
	a := buildLogical(t, []int64{0, 0, 1}, []int64{0, 1, 1}, []gbtype.Value{1.0, 2.0, 3.0}, 2, 2, gbmatrix.Sparse)
	u := buildLogical(t, []int64{0, 1}, []int64{0, 0}, []gbtype.Value{10.0, 100.0}, 2, 1, gbmatrix.Sparse)
	w, err := gbmatrix.New(gbtype.TFloat64, 1, 2, gbmatrix.Sparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gbmul.Mxv(w, nil, nil, plusTimesSemiring(t), a, u, nil); err != nil {
		t.Fatalf("Mxv: %v", err)
	}

	x, ok := extractLogical(t, w, 0, 0)
	if !ok || x != 210.0 {
		t.Fatalf("expected w[0] = 1*10+2*100 = 210, got %v ok=%v", x, ok)
	}
	x, ok = extractLogical(t, w, 1, 0)
	if !ok || x != 300.0 {
		t.Fatalf("expected w[1] = 3*100 = 300, got %v ok=%v", x, ok)
	}
}

func plusFirstISemiring(t *testing.T) *gbtype.Semiring {
	t.Helper()
	plus, err := gbtype.NewBuiltinBinaryOp(gbtype.OpPlus, gbtype.TInt64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(PLUS): %v", err)
	}
	firstI, err := gbtype.NewBuiltinBinaryOp(gbtype.OpFirstI, gbtype.TInt64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(FIRSTI): %v", err)
	}
	add, err := gbtype.NewMonoid(plus, int64(0))
	if err != nil {
		t.Fatalf("NewMonoid(PLUS): %v", err)
	}
	semi, err := gbtype.NewSemiring(add, firstI)
	if err != nil {
		t.Fatalf("NewSemiring(PLUS_FIRSTI): %v", err)
	}

	return semi
}

func buildLogicalInt64(t *testing.T, rows, cols []int64, vals []gbtype.Value, nrows, ncols int, sparsity gbmatrix.Sparsity) *gbmatrix.Matrix {
	t.Helper()
	m, err := gbmatrix.New(gbtype.TInt64, ncols, nrows, sparsity, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.IsCSC() {
		t.Fatalf("test helper assumes the default (non-CSC) orientation")
	}

	I := make([]int64, len(rows))
	J := make([]int64, len(rows))
	for k := range rows {
		I[k] = cols[k]
		J[k] = rows[k]
	}
	if err := m.Build(I, J, vals, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	return m
}

func TestMxmPositionalMultiplierExpandsToRowIndex(t *testing.T) {
	// A has a single nonzero per row at column 0, so every surviving
	// FIRSTI product for row i is just i; with 1 nonzero per output
	// column, PLUS reduces to that single product.
	a := buildLogicalInt64(t, []int64{0, 1, 2}, []int64{0, 0, 0}, []gbtype.Value{int64(1), int64(1), int64(1)}, 3, 1, gbmatrix.Sparse)
	b := buildLogicalInt64(t, []int64{0}, []int64{0}, []gbtype.Value{int64(1)}, 1, 1, gbmatrix.Sparse)
	c, err := gbmatrix.New(gbtype.TInt64, 1, 3, gbmatrix.Sparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gbmul.Mxm(c, nil, nil, plusFirstISemiring(t), a, b, nil); err != nil {
		t.Fatalf("Mxm: %v", err)
	}

	for i := int64(0); i < 3; i++ {
		x, ok := extractLogical(t, c, i, 0)
		if !ok || x != i {
			t.Fatalf("expected C(%d,0) == %d (FIRSTI), got %v ok=%v", i, i, x, ok)
		}
	}
}

func TestMxmRejectsPositionalAccum(t *testing.T) {
	diag := buildLogical(t, []int64{0, 1}, []int64{0, 1}, []gbtype.Value{1.0, 1.0}, 2, 2, gbmatrix.Sparse)
	b := buildLogical(t, []int64{0, 1}, []int64{0, 1}, []gbtype.Value{5.0, 6.0}, 2, 2, gbmatrix.Sparse)
	c := buildLogical(t, []int64{0}, []int64{0}, []gbtype.Value{9.0}, 2, 2, gbmatrix.Sparse)
	firstI, err := gbtype.NewBuiltinBinaryOp(gbtype.OpFirstI, gbtype.TInt64)
	if err != nil {
		t.Fatalf("NewBuiltinBinaryOp(FIRSTI): %v", err)
	}

	if err := gbmul.Mxm(c, nil, firstI, plusTimesSemiring(t), diag, b, nil); err == nil {
		t.Fatalf("expected Mxm to reject a positional accum")
	}
}

func TestSaxpy5RequiresDensePreconditions(t *testing.T) {
	a := buildLogical(t, []int64{0}, []int64{0}, []gbtype.Value{1.0}, 2, 2, gbmatrix.Sparse)
	b := buildLogical(t, []int64{0}, []int64{0}, []gbtype.Value{1.0}, 2, 2, gbmatrix.Sparse)
	c, err := gbmatrix.New(gbtype.TFloat64, 2, 2, gbmatrix.Sparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := gbmul.Saxpy5(c, a, b, plusTimesSemiring(t)); err == nil {
		t.Fatalf("expected Saxpy5 to reject sparse C/A")
	}
}

func TestSaxpy5ComputesSameResultAsMxm(t *testing.T) {
	rows := []int64{0, 0, 1, 1}
	cols := []int64{0, 1, 0, 1}
	vals := []gbtype.Value{1.0, 2.0, 3.0, 4.0}
	a := buildLogical(t, rows, cols, vals, 2, 2, gbmatrix.Full)
	b := buildLogical(t, []int64{0, 1}, []int64{0, 1}, []gbtype.Value{5.0, 6.0}, 2, 2, gbmatrix.Sparse)
	// Two entries out of four is dense enough for Build to store b as
	// bitmap; Saxpy5 takes a sparse B, so convert it back.
	if err := b.Convert(gbmatrix.Sparse); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	c1, err := gbmatrix.New(gbtype.TFloat64, 2, 2, gbmatrix.Full, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := gbmul.Saxpy5(c1, a, b, plusTimesSemiring(t)); err != nil {
		t.Fatalf("Saxpy5: %v", err)
	}

	c2, err := gbmatrix.New(gbtype.TFloat64, 2, 2, gbmatrix.Sparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := gbmul.Mxm(c2, nil, nil, plusTimesSemiring(t), a, b, nil); err != nil {
		t.Fatalf("Mxm: %v", err)
	}

	for _, i := range []int64{0, 1} {
		for _, j := range []int64{0, 1} {
			x1, ok1 := extractLogical(t, c1, i, j)
			x2, ok2 := extractLogical(t, c2, i, j)
			if ok1 != ok2 || x1 != x2 {
				t.Fatalf("saxpy5 and default mxm diverged at (%d,%d): %v/%v vs %v/%v", i, j, x1, ok1, x2, ok2)
			}
		}
	}
}
