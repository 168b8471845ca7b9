// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration, identity contracts, and cloning semantics.
//
// Purpose:
//   - Lock in option flags, vertex lifecycle rules, ID uniqueness under concurrency.
//   - Demonstrate read-only map snapshots and deep-copy behavior (no pointer aliasing).

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/gbmatrix/core"
)

// TestGraph_Options ASSERTS GraphOption flags are applied correctly.
//
// Implementation:
//   - Stage 1: Build a feature-rich graph via NewGraphFull().
//   - Stage 2: Assert Directed defaults to false.
//   - Stage 3: Assert Weighted is enabled.
//   - Stage 4: Assert empty vertex ID is absent.
//   - Stage 5: Assert WithDirected(true) overrides.
//   - Stage 6: Assert multi-edge policy rejects duplicates when disabled.
//
// Behavior highlights:
//   - Documents option semantics explicitly.
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal on any contract mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Multi-edge rejection is a sentinel contract (ErrMultiEdgeNotAllowed).
//
// AI-Hints:
//   - Prefer option tests to stay minimal: assert flags and one representative behavior per flag.
func TestGraph_Options(t *testing.T) {
	g := NewGraphFull()

	MustEqualBool(t, g.Directed(), false, "Directed() default must be false (undirected)")
	MustEqualBool(t, g.Weighted(), true, "Weighted() must be true on NewGraphFull")
	MustEqualBool(t, g.HasVertex(VertexEmpty), false, "HasVertex(empty) must be false")

	dg := core.NewGraph(core.WithDirected(true))
	MustEqualBool(t, dg.Directed(), true, "WithDirected(true) must set Directed()==true")

	sg := core.NewGraph()
	_, err := sg.AddEdge(VertexX, VertexY, Weight0)
	MustErrorNil(t, err, "AddEdge(X,Y,0) first on default graph")

	_, err = sg.AddEdge(VertexX, VertexY, Weight0)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge(X,Y,0) second on default graph")
}

// TestGraph_VertexLifecycle ASSERTS AddVertex/HasVertex/RemoveVertex invariants.
//
// Implementation:
//   - Stage 1: Create a graph.
//   - Stage 2: Reject empty ID on AddVertex.
//   - Stage 3: Add a vertex and validate presence.
//   - Stage 4: Duplicate AddVertex is no-op.
//   - Stage 5: RemoveVertex rejects empty and missing IDs.
//   - Stage 6: Remove existing vertex and validate absence.
//
// Behavior highlights:
//   - Locks in sentinel errors for empty/missing IDs.
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal on mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(k log k) due to Vertices() sorting during count checks (implementation-dependent).
//
// Notes:
//   - This test relies on Vertices() being stable and safe.
//
// AI-Hints:
//   - Keep vertex IDs short and consistent to avoid noise in failure output.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := NewGraphFull()

	err := g.AddVertex(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "AddVertex(empty)")

	MustErrorNil(t, g.AddVertex(VertexV1), "AddVertex(V1)")
	MustEqualBool(t, g.HasVertex(VertexV1), true, "HasVertex(V1) after AddVertex(V1)")

	before := len(g.Vertices())
	MustErrorNil(t, g.AddVertex(VertexV1), "AddVertex(V1) duplicate")
	after := len(g.Vertices())
	MustEqualInt(t, after, before, "duplicate AddVertex(V1) must not change vertex count")

	err = g.RemoveVertex("Z")
	MustErrorIs(t, err, core.ErrVertexNotFound, "RemoveVertex(Z missing)")

	err = g.RemoveVertex(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "RemoveVertex(empty)")

	MustErrorNil(t, g.RemoveVertex(VertexV1), "RemoveVertex(V1)")
	MustEqualBool(t, g.HasVertex(VertexV1), false, "HasVertex(V1) after RemoveVertex(V1)")
}

// TestGraph_AtomicEdgeIDs ASSERTS concurrent AddEdge yields unique IDs.
//
// Implementation:
//   - Stage 1: Create feature-rich graph (multi-edge enabled).
//   - Stage 2: Spawn NAtomicEdgeIDs goroutines adding edges A->B with varying weights.
//   - Stage 3: Goroutines send errors/IDs to channels (no *testing.T inside goroutines).
//   - Stage 4: Assert no errors, and set size equals NAtomicEdgeIDs.
//
// Behavior highlights:
//   - Locks in uniqueness property of edge IDs under contention.
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal if any AddEdge fails or uniqueness is violated.
//
// Determinism:
//   - Schedule nondeterministic; uniqueness assertion deterministic.
//
// Complexity:
//   - Time O(N), Space O(N).
//
// Notes:
//   - This test does not assert the *format* of IDs (only uniqueness/non-emptiness).
//
// AI-Hints:
//   - If you later formalize ID format, extend this test with a parser and pattern assertions.
func TestGraph_AtomicEdgeIDs(t *testing.T) {
	g := NewGraphFull()

	idCh := make(chan string, NAtomicEdgeIDs)
	errCh := make(chan error, NAtomicEdgeIDs)

	var wg sync.WaitGroup
	wg.Add(NAtomicEdgeIDs)

	var i int
	for i = 0; i < NAtomicEdgeIDs; i++ {
		go func(i int) {
			defer wg.Done()

			eid, err := g.AddEdge(VertexA, VertexB, int64(i))
			if err != nil {
				errCh <- err
				return
			}
			if eid == "" {
				errCh <- fmt.Errorf("empty edge ID returned")
				return
			}
			idCh <- eid
		}(i)
	}

	wg.Wait()
	close(idCh)
	close(errCh)

	MustAllErrorsNil(t, errCh, "Atomic edge IDs")

	ids := make(map[string]struct{}, NAtomicEdgeIDs)

	for eid := range idCh {
		ids[eid] = struct{}{}
	}

	MustEqualInt(t, len(ids), NAtomicEdgeIDs, "unique edge IDs count")
}

// TestGraph_AdjacencyMap ASSERTS HasEdge is safe and respects add/remove.
//
// Implementation:
//   - Stage 1: Create a graph.
//   - Stage 2: Verify HasEdge is false on empty graph.
//   - Stage 3: Add an edge, verify HasEdge true.
//   - Stage 4: Remove edge, verify HasEdge false.
//
// Behavior highlights:
//   - Ensures membership queries are safe even before vertices exist.
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal on mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(1) per query under nested-map lookup design, Space O(1).
//
// Notes:
//   - If HasEdge policy changes, update this test only when contract changes.
//
// AI-Hints:
//   - Keep HasEdge usable as a fast-path predicate (must never panic on unknown IDs).
func TestGraph_AdjacencyMap(t *testing.T) {
	g := NewGraphFull()

	MustEqualBool(t, g.HasEdge(VertexP, VertexQ), false, "HasEdge(P,Q) on empty graph must be false")

	eid, err := g.AddEdge(VertexP, VertexQ, Weight0)
	MustErrorNil(t, err, "AddEdge(P,Q,0)")
	MustEqualBool(t, g.HasEdge(VertexP, VertexQ), true, "HasEdge(P,Q) after AddEdge(P,Q)")

	MustErrorNil(t, g.RemoveEdge(eid), "RemoveEdge(eid)")
	MustEqualBool(t, g.HasEdge(VertexP, VertexQ), false, "HasEdge(P,Q) after RemoveEdge")
}

// TestGraph_CloneMethods ASSERTS CloneEmpty and Clone semantics.
//
// Implementation:
//   - Stage 1: Create a graph and add representative edges.
//   - Stage 2: CloneEmpty keeps vertices but drops edges.
//   - Stage 3: Clone preserves edge IDs and does not alias edge objects.
//
// Behavior highlights:
//   - Deep-copy is verified by pointer inequality (no mutation of returned Edge objects).
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal on mismatch.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(V+E), Space O(V+E) for cloning.
//
// Notes:
//   - Edge objects returned by Graph APIs are treated as read-only by contract.
//
// AI-Hints:
//   - Verify deep-copy by pointer identity, not by mutating Weight (avoids contract violations).
func TestGraph_CloneMethods(t *testing.T) {
	g := NewGraphFull()

	eidXY, err := g.AddEdge(VertexX, VertexY, Weight1)
	MustErrorNil(t, err, "AddEdge(X,Y,1)")
	_, err = g.AddEdge(VertexY, VertexY, Weight2)
	MustErrorNil(t, err, "AddEdge(Y,Y,2)")

	ce := g.CloneEmpty()
	MustSameStringSet(t, g.Vertices(), ce.Vertices(), "CloneEmpty preserves vertices")
	MustEqualInt(t, len(ce.Edges()), 0, "CloneEmpty has no edges")

	c := g.Clone()
	MustSameStringSet(t, g.Vertices(), c.Vertices(), "Clone preserves vertices")
	MustSameStringSet(t, ExtractEdgeIDs(g.Edges()), ExtractEdgeIDs(c.Edges()), "Clone preserves edge IDs")

	orig, err := g.GetEdge(eidXY)
	MustErrorNil(t, err, "GetEdge(eidXY) on original")

	cl, err := c.GetEdge(eidXY)
	MustErrorNil(t, err, "GetEdge(eidXY) on clone")

	MustEqualBool(t, orig != cl, true, "Clone deep-copy: edge pointers must not alias")
}

// TestGraph_VerticesMapReadOnly ASSERTS VerticesMap returns a safe snapshot.
//
// Implementation:
//   - Stage 1: Add vertex Z.
//   - Stage 2: Read VerticesMap snapshot.
//   - Stage 3: Mutate snapshot.
//   - Stage 4: Assert original graph is unchanged.
//
// Behavior highlights:
//   - Prevents external mutation through returned maps.
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal if snapshot is not read-only.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(V) for snapshot copy, Space O(V).
//
// Notes:
//   - This locks in “defensive copy” behavior for maps.
//
// AI-Hints:
//   - Prefer snapshot APIs when you want a safe iteration without holding graph locks.
func TestGraph_VerticesMapReadOnly(t *testing.T) {
	g := NewGraphFull()

	MustErrorNil(t, g.AddVertex("Z"), "AddVertex(Z)")

	vm := g.VerticesMap()
	vm["NEW"] = &core.Vertex{ID: "NEW"}

	MustEqualBool(t, g.HasVertex("NEW"), false, "VerticesMap must be read-only snapshot")
}

// TestGraph_HasVertexConcurrency ASSERTS concurrent HasVertex/AddVertex does not panic.
//
// Implementation:
//   - Stage 1: Create graph.
//   - Stage 2: Spawn M goroutines adding vertices and M goroutines reading HasVertex.
//   - Stage 3: Wait; test passes if no panic.
//
// Behavior highlights:
//   - This is a race/panic detector; validate with `go test -race`.
//
// Inputs:
//   - None.
//
// Returns:
//   - None.
//
// Errors:
//   - Fatal only if a panic occurs (implicit).
//
// Determinism:
//   - Nondeterministic schedule; expected stability.
//
// Complexity:
//   - Time O(M), Space O(1) extra.
//
// Notes:
//   - This test intentionally does not assert final counts: it targets safety, not outcome.
//
// AI-Hints:
//   - Keep this test lightweight; rely on -race to detect unsynchronized access.
func TestGraph_HasVertexConcurrency(t *testing.T) {
	g := NewGraphFull()

	const M = 50

	var wg sync.WaitGroup
	wg.Add(2 * M)

	var i int
	for i = 0; i < M; i++ {
		go func(i int) {
			defer wg.Done()
			_ = g.AddVertex(fmt.Sprintf("V%d", i))
		}(i)

		go func(i int) {
			defer wg.Done()
			_ = g.HasVertex(fmt.Sprintf("V%d", i))
		}(i)
	}

	wg.Wait()
}

// TestGraph_Version ASSERTS Version() increments on catalog-changing calls
// and is unaffected by no-ops.
//
// Implementation:
//   - Stage 1: Version() starts at 0 on a fresh graph.
//   - Stage 2: AddVertex bumps it; a duplicate AddVertex does not.
//   - Stage 3: AddEdge/RemoveEdge each bump it once.
//   - Stage 4: Clear() resets it to 0.
//
// Behavior highlights:
//   - Version is a counter, not a generation tied to a specific mutation kind.
//
// Determinism:
//   - Deterministic (single goroutine).
//
// Complexity:
//   - Time O(1) per call, Space O(1).
func TestGraph_Version(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	MustEqualUint64(t, g.Version(), 0, "Version() on fresh graph")

	MustErrorNil(t, g.AddVertex(VertexX), "AddVertex(X)")
	v1 := g.Version()
	MustEqualBool(t, v1 > 0, true, "Version() after AddVertex(X) must advance")

	MustErrorNil(t, g.AddVertex(VertexX), "AddVertex(X) duplicate")
	MustEqualUint64(t, g.Version(), v1, "duplicate AddVertex must not bump Version()")

	MustErrorNil(t, g.AddVertex(VertexY), "AddVertex(Y)")
	eid, err := g.AddEdge(VertexX, VertexY, Weight1)
	MustErrorNil(t, err, "AddEdge(X,Y,1)")
	v2 := g.Version()
	MustEqualBool(t, v2 > v1, true, "Version() after AddEdge must advance")

	MustErrorNil(t, g.RemoveEdge(eid), "RemoveEdge(eid)")
	MustEqualBool(t, g.Version() > v2, true, "Version() after RemoveEdge must advance")

	g.Clear()
	MustEqualUint64(t, g.Version(), 0, "Version() after Clear() resets to 0")
}

// TestGraph_SnapshotAndNeighborIndices ASSERTS Snapshot() produces an
// index-space view consistent with Vertices()/Edges(), and that
// NeighborIndices resolves against the same index map.
//
// Implementation:
//   - Stage 1: Build a small undirected weighted graph.
//   - Stage 2: Snapshot(); check IDs/Index invert each other and I/J/Weight
//     line up with the edges added.
//   - Stage 3: NeighborIndices(X, snap.Index) matches NeighborIDs(X) translated
//     through snap.Index.
//
// Determinism:
//   - Deterministic.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func TestGraph_SnapshotAndNeighborIndices(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	MustErrorNil(t, g.AddVertex(VertexX), "AddVertex(X)")
	MustErrorNil(t, g.AddVertex(VertexY), "AddVertex(Y)")
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")

	_, err := g.AddEdge(VertexX, VertexY, Weight1)
	MustErrorNil(t, err, "AddEdge(X,Y,1)")
	_, err = g.AddEdge(VertexX, VertexA, Weight2)
	MustErrorNil(t, err, "AddEdge(X,A,2)")

	snap := g.Snapshot()
	MustEqualInt(t, len(snap.IDs), 3, "Snapshot().IDs count")
	MustEqualInt(t, len(snap.I), 2, "Snapshot().I count")
	MustEqualUint64(t, snap.Version, g.Version(), "Snapshot().Version matches g.Version()")

	for i, id := range snap.IDs {
		MustEqualInt(t, snap.Index[id], i, "Snapshot().Index must invert IDs")
	}

	nbrIdx, err := g.NeighborIndices(VertexX, snap.Index)
	MustErrorNil(t, err, "NeighborIndices(X)")

	nbrIDs, err := g.NeighborIDs(VertexX)
	MustErrorNil(t, err, "NeighborIDs(X)")

	want := make([]int, 0, len(nbrIDs))
	for _, id := range nbrIDs {
		want = append(want, snap.Index[id])
	}
	MustEqualInt(t, len(nbrIdx), len(want), "NeighborIndices(X) count")
	for i := range want {
		MustEqualInt(t, nbrIdx[i], want[i], "NeighborIndices(X) must match NeighborIDs resolved through snap.Index")
	}
}
