// SPDX-License-Identifier: MIT

package gbgraph

import "github.com/katalvlaran/gbmatrix/gbmatrix"

// Option mutates internal options. Mirrors the teacher's functional-option
// shape (matrix.Option), reused here for the graph<->matrix bridge instead
// of the dense-matrix adapter it was written for.
type Option func(*Options)

// Options holds the resolved configuration for FromGraph/ToGraph.
type Options struct {
	directed   bool
	allowMulti bool
	weighted   bool

	sparsity SparsityOpt
}

// SparsityOpt picks the initial gbmatrix.Sparsity FromGraph builds into.
type SparsityOpt = gbmatrix.Sparsity

// WithDirected builds a directed adjacency matrix (no mirroring of (i,j)
// into (j,i)). Default is undirected.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithMultiEdges disables first-edge-wins de-duplication: parallel edges
// between the same ordered pair are folded together by the dup operator
// instead of the first occurrence silently winning.
func WithMultiEdges() Option {
	return func(o *Options) { o.allowMulti = true }
}

// WithWeighted preserves core.Edge.Weight values in the matrix X array
// instead of building a binary (all-ones) adjacency matrix.
func WithWeighted() Option {
	return func(o *Options) { o.weighted = true }
}

// WithSparsity picks FromGraph's initial storage format (default
// gbmatrix.Sparse).
func WithSparsity(s SparsityOpt) Option {
	return func(o *Options) { o.sparsity = s }
}

func defaultOptions() Options {
	return Options{
		directed:   false,
		allowMulti: false,
		weighted:   false,
		sparsity:   gbmatrix.Sparse,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
