// Package gbgraph bridges core.Graph, the property-graph layer spec.md §1
// references but does not itself specify, onto gbmatrix.Matrix — the
// minimal adapter the engine needs to have an entry point at all.
//
// What & Why:
//
//	FromGraph walks a core.Graph's stable vertex/edge order into triplets
//	(I, J, X) and a dup reduction operator, then calls gbmatrix.Build,
//	reusing the teacher's first-edge-wins pairKey de-duplication and
//	directed/undirected mirroring policy (matrix/impl_builder.go's
//	BuildDenseAdjacency) but against a sparse triplet build instead of a
//	dense overwrite: ANY (first-edge-wins) as the dup operator reproduces
//	"first edge wins" exactly, since gbmatrix.Build folds duplicates with
//	dup in input order. ToGraph is the inverse, via gbmatrix.ExtractTuples,
//	grounded on matrix/adjacency_matrix.go's ToGraph.
//
//	This package is deliberately not an algorithm driver (spec.md §5): no
//	BFS/PageRank/CDLP/shortest-path/allktruss/tricount here, only the
//	conversion a caller needs before feeding gbmatrix's kernels.
//
// Complexity:
//
//	FromGraph is O(V + E log E) (vertex indexing plus gbmatrix.Build's
//	internal sort). ToGraph is O(nnz) via ExtractTuples plus O(nnz) edge
//	insertion.
package gbgraph
