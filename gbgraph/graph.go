// SPDX-License-Identifier: MIT

package gbgraph

import (
	"fmt"

	"github.com/katalvlaran/gbmatrix/core"
	"github.com/katalvlaran/gbmatrix/gbmatrix"
	"github.com/katalvlaran/gbmatrix/gbtype"
)

// pairKey is the teacher's ordered/unordered de-duplication key
// (matrix/impl_builder.go), reused verbatim here against matrix row/col
// indices instead of dense cells.
type pairKey struct{ u, v int }

func orderedPair(u, v int) pairKey { return pairKey{u: u, v: v} }

func unorderedPair(u, v int) pairKey {
	if u <= v {
		return pairKey{u: u, v: v}
	}

	return pairKey{u: v, v: u}
}

// FromGraph builds a sparse adjacency matrix from a single consistent
// snapshot of g's vertex/edge catalogs (core.Graph.Snapshot): vertices
// become row/column indices in Snapshot's stable (ID-ascending) order
// (snap.Index, returned so callers can translate back), and edges arrive
// already resolved into index space (snap.I/snap.J), taken under one lock
// scope so a concurrent AddVertex/AddEdge between the vertex and edge read
// can't produce an edge endpoint index outside the snapshot's vertex count
// the way two separate Vertices()/Edges() calls could.
//
// Edge triplets are fed to gbmatrix.Build with an ANY ("first value wins")
// dup operator when WithMultiEdges is not set, reproducing the teacher's
// first-edge-wins policy exactly, since gbmatrix.Build folds duplicate
// (i,j) pairs with dup in input order and Snapshot's edges are sorted by
// Edge.ID. With WithMultiEdges, PLUS is used instead so parallel edges
// accumulate rather than collide unpredictably.
//
// Undirected graphs (the default; see WithDirected) mirror every (i,j)
// triplet into (j,i) before the build, except for self-loops — the same
// rule BuildDenseAdjacency applies, ported onto triplets instead of a
// dense Set/mirror pair.
func FromGraph(g *core.Graph, opts ...Option) (*gbmatrix.Matrix, map[string]int, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("gbgraph.FromGraph: nil graph")
	}
	o := gatherOptions(opts...)

	snap := g.Snapshot()
	n := len(snap.IDs)
	if n == 0 {
		return nil, nil, fmt.Errorf("gbgraph.FromGraph: empty vertex set")
	}

	typ := gbtype.TInt64
	if o.weighted {
		typ = gbtype.TFloat64
	}

	dupOpcode := gbtype.OpAny
	if o.allowMulti {
		dupOpcode = gbtype.OpPlus
	}
	dup, err := gbtype.NewBuiltinBinaryOp(dupOpcode, typ)
	if err != nil {
		return nil, nil, fmt.Errorf("gbgraph.FromGraph: dup operator: %w", err)
	}

	I := make([]int64, 0, 2*len(snap.I))
	J := make([]int64, 0, 2*len(snap.I))
	X := make([]gbtype.Value, 0, 2*len(snap.I))

	seen := make(map[pairKey]struct{}, len(snap.I))

	appendTriplet := func(u, v int, w gbtype.Value) {
		I = append(I, int64(u))
		J = append(J, int64(v))
		X = append(X, w)
	}

	for k := range snap.I {
		u, v := snap.I[k], snap.J[k]

		if !o.allowMulti {
			var key pairKey
			if o.directed {
				key = orderedPair(u, v)
			} else {
				key = unorderedPair(u, v)
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}

		var w gbtype.Value
		if o.weighted {
			w = float64(snap.Weight[k])
		} else {
			w = int64(1)
		}

		appendTriplet(u, v, w)
		if !o.directed && u != v {
			appendTriplet(v, u, w)
		}
	}

	m, err := gbmatrix.New(typ, n, n, o.sparsity, gbmatrix.AnySparsity)
	if err != nil {
		return nil, nil, fmt.Errorf("gbgraph.FromGraph: %w", err)
	}
	if err := m.Build(I, J, X, dup); err != nil {
		return nil, nil, fmt.Errorf("gbgraph.FromGraph: %w", err)
	}

	return m, snap.Index, nil
}

// ToGraph is FromGraph's inverse, grounded on
// matrix/adjacency_matrix.go's AdjacencyMatrix.ToGraph: it walks m's
// tuples via gbmatrix.ExtractTuples and replays them as vertices/edges
// into a fresh core.Graph built from idx (row/col index -> vertex ID).
// WithDirected controls whether the graph is constructed directed (every
// tuple becomes one edge) or undirected (tuples are expected to already
// be mirrored by the caller, matching FromGraph's own output — emitting
// both (i,j) and (j,i) here would double every undirected edge).
func ToGraph(m *gbmatrix.Matrix, idx map[string]int, opts ...Option) (*core.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("gbgraph.ToGraph: nil matrix")
	}
	o := gatherOptions(opts...)

	id := make([]string, len(idx))
	for vid, i := range idx {
		if i < 0 || i >= len(id) {
			return nil, fmt.Errorf("gbgraph.ToGraph: index %d for vertex %q out of range", i, vid)
		}
		id[i] = vid
	}

	var gopts []core.GraphOption
	if o.directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	if o.weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	if o.allowMulti {
		gopts = append(gopts, core.WithMultiEdges())
	}
	gopts = append(gopts, core.WithLoops())

	g := core.NewGraph(gopts...)
	for _, vid := range id {
		if err := g.AddVertex(vid); err != nil {
			return nil, fmt.Errorf("gbgraph.ToGraph: AddVertex(%q): %w", vid, err)
		}
	}

	I, J, X, err := m.ExtractTuples(nil)
	if err != nil {
		return nil, fmt.Errorf("gbgraph.ToGraph: %w", err)
	}

	for k := range I {
		i, j := int(I[k]), int(J[k])
		if i < 0 || i >= len(id) || j < 0 || j >= len(id) {
			return nil, fmt.Errorf("gbgraph.ToGraph: tuple (%d,%d) out of range", i, j)
		}
		if !o.directed && j < i {
			// undirected mirror already emitted as (j,i); skip the
			// redundant half to avoid a doubled edge count.
			continue
		}

		var weight int64
		if o.weighted {
			switch v := X[k].(type) {
			case float64:
				weight = int64(v)
			case int64:
				weight = v
			default:
				return nil, fmt.Errorf("gbgraph.ToGraph: unsupported value type %T at (%d,%d)", X[k], i, j)
			}
		}

		if _, err := g.AddEdge(id[i], id[j], weight); err != nil {
			return nil, fmt.Errorf("gbgraph.ToGraph: AddEdge(%q,%q): %w", id[i], id[j], err)
		}
	}

	return g, nil
}
