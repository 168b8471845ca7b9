package gbiter_test

import (
	"testing"

	"github.com/katalvlaran/gbmatrix/gbiter"
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

func buildRowMajor(t *testing.T) *gbmatrix.Matrix {
	t.Helper()
	m, err := gbmatrix.New(gbtype.TFloat64, 3, 3, gbmatrix.Sparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Row 1 is left empty on purpose to exercise seek-skip behavior.
	// Not CSC, so J is the row and I the column: entries (0,0), (0,2), (2,1).
	I := []int64{0, 2, 1}
	J := []int64{0, 0, 2}
	X := []gbtype.Value{1.0, 2.0, 3.0}
	if err := m.Build(I, J, X, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	return m
}

func TestRowIteratorWalksRowsAndCols(t *testing.T) {
	m := buildRowMajor(t)
	var it gbiter.RowIterator
	if err := it.Attach(m, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if it.Kount() != 2 {
		t.Fatalf("expected 2 non-empty rows, got %d", it.Kount())
	}

	if st := it.SeekRow(0); st != gbiter.Found {
		t.Fatalf("expected Found at row 0, got %v", st)
	}
	row, ok := it.GetRowIndex()
	if !ok || row != 0 {
		t.Fatalf("expected row 0, got %d ok=%v", row, ok)
	}
	col, ok := it.GetColIndex()
	if !ok || col != 0 {
		t.Fatalf("expected col 0, got %d ok=%v", col, ok)
	}

	if st := it.NextCol(); st != gbiter.Found {
		t.Fatalf("expected Found advancing to second entry in row 0, got %v", st)
	}
	col, ok = it.GetColIndex()
	if !ok || col != 2 {
		t.Fatalf("expected col 2, got %d ok=%v", col, ok)
	}

	if st := it.NextCol(); st != gbiter.Empty {
		t.Fatalf("expected Empty at end of row 0, got %v", st)
	}
}

func TestRowIteratorSeekSkipsEmptyRow(t *testing.T) {
	m := buildRowMajor(t)
	var it gbiter.RowIterator
	if err := it.Attach(m, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if st := it.SeekRow(1); st != gbiter.Empty {
		t.Fatalf("expected Empty for row 1, got %v", st)
	}

	row, ok := it.GetRowIndex()
	if !ok || row != 2 {
		t.Fatalf("expected seek past empty row 1 to land on row 2, got %d ok=%v", row, ok)
	}

	if st := it.NextRow(); st != gbiter.Exhausted {
		t.Fatalf("expected Exhausted advancing past row 2, the last non-empty row, got %v", st)
	}
}

func TestRowIteratorExhaustedOutOfRange(t *testing.T) {
	m := buildRowMajor(t)
	var it gbiter.RowIterator
	if err := it.Attach(m, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if st := it.SeekRow(99); st != gbiter.Exhausted {
		t.Fatalf("expected Exhausted, got %v", st)
	}
}

func TestColIteratorMirrorsRows(t *testing.T) {
	m := buildRowMajor(t)
	var it gbiter.ColIterator
	if err := it.Attach(m, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if st := it.SeekCol(1); st != gbiter.Found {
		t.Fatalf("expected Found at col 1, got %v", st)
	}
	row, ok := it.GetRowIndex()
	if !ok || row != 2 {
		t.Fatalf("expected row 2 at col 1, got %d ok=%v", row, ok)
	}
}

func TestRowIteratorHypersparseKount(t *testing.T) {
	m, err := gbmatrix.New(gbtype.TFloat64, 1000000, 1000000, gbmatrix.Hypersparse, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	I := make([]int64, 10)
	J := make([]int64, 10)
	X := make([]gbtype.Value, 10)
	for k := 0; k < 10; k++ {
		I[k] = int64(k)
		J[k] = int64(k * 1000)
		X[k] = float64(k)
	}
	if err := m.Build(I, J, X, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	var it gbiter.RowIterator
	if err := it.Attach(m, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if it.Kount() > 1000000 {
		t.Fatalf("expected kount <= nrows, got %d", it.Kount())
	}
	if st := it.SeekRow(0); st != gbiter.Found {
		t.Fatalf("expected Found at row 0, got %v", st)
	}
	if st := it.NextRow(); st != gbiter.Found {
		t.Fatalf("expected next non-empty row to skip the gap, got %v", st)
	}
	row, _ := it.GetRowIndex()
	if row != 1000 {
		t.Fatalf("expected next_row to land on row 1000, got %d", row)
	}
}
