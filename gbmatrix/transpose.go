// SPDX-License-Identifier: MIT

package gbmatrix

import (
	"github.com/katalvlaran/gbmatrix/gbstatus"
)

// Transpose returns a new matrix with every (i,j) entry of m moved to
// (j,i) (spec.md §6: "matrix_transpose"; invariant 3 of spec.md §8:
// "transpose(transpose(A)) == A bitwise for every format reachable by
// conformance"). Dimensions are swapped; orientation and format control
// are carried over from m.
func Transpose(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, gbstatus.New(gbstatus.NullPointer, "gbmatrix.Transpose", "nil matrix")
	}

	I, J, X, err := m.ExtractTuples(nil)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	vlen, vdim, sparsity, control := m.vdim, m.vlen, m.sparsity, m.sparsityControl
	typ := m.typ
	isCSC := m.isCSC
	iso := m.iso
	m.mu.RUnlock()

	out, err := New(typ, vlen, vdim, sparsity, control)
	if err != nil {
		return nil, err
	}
	out.isCSC = isCSC

	if iso && len(X) > 0 {
		return out, out.BuildScalar(J, I, X[0])
	}

	return out, out.Build(J, I, X, nil)
}
