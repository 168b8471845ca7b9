// SPDX-License-Identifier: MIT

package gbmatrix

import "github.com/katalvlaran/gbmatrix/gbtype"

// ReduceToScalar folds every entry of m into monoid's identity (spec.md
// §6: "matrix_reduce_to_scalar"). An empty matrix reduces to the
// identity unchanged.
func (m *Matrix) ReduceToScalar(monoid *gbtype.Monoid) (gbtype.Value, error) {
	_, _, X, err := m.ExtractTuples(nil)
	if err != nil {
		return nil, err
	}

	acc := monoid.Identity
	for _, v := range X {
		acc = monoid.Op.Fn(acc, v)
		if monoid.IsTerminal(acc) {
			break
		}
	}

	return acc, nil
}

// ReduceToVector folds m along one axis into a single-column matrix
// (spec.md §6: "matrix_reduce_to_vector"). byRow folds each row to one
// scalar (keyed by i, the inner coordinate); otherwise each outer slice
// (keyed by j) is folded.
func (m *Matrix) ReduceToVector(monoid *gbtype.Monoid, byRow bool) (*Matrix, error) {
	I, J, X, err := m.ExtractTuples(nil)
	if err != nil {
		return nil, err
	}

	acc := make(map[int64]gbtype.Value)
	for k := range I {
		key := J[k]
		if byRow {
			key = I[k]
		}
		if prev, ok := acc[key]; ok {
			acc[key] = monoid.Op.Fn(prev, X[k])
		} else {
			acc[key] = X[k]
		}
	}

	n := m.vdim
	if byRow {
		n = m.vlen
	}

	out, err := New(m.typ, n, 1, Sparse, 0)
	if err != nil {
		return nil, err
	}

	outI := make([]int64, 0, len(acc))
	outJ := make([]int64, 0, len(acc))
	outX := make([]gbtype.Value, 0, len(acc))
	for key, v := range acc {
		outI = append(outI, key)
		outJ = append(outJ, 0)
		outX = append(outX, v)
	}

	return out, out.Build(outI, outJ, outX, nil)
}
