// Package gblas (module root) is a GraphBLAS-style sparse matrix engine:
// a property-graph's execution substrate expressed as sparse linear algebra.
//
// 🚀 What is gbmatrix?
//
//	A typed, thread-safe library that brings together:
//
//	  • A closed type/operator/monoid/semiring registry (gbtype) and cast
//	    factory (gbcast) that every kernel dispatches through.
//	  • A single Matrix container (gbmatrix) spanning four sparsity formats
//	    — hypersparse, sparse, bitmap, full — with pending-update and zombie
//	    bookkeeping.
//	  • Element-wise union/intersection kernels (gbewise) and a masked,
//	    semiring-parametric matrix multiply with a saxpy-5 fast path (gbmul).
//	  • Row/column tuple iterators (gbiter), bulk build/extract (gbmatrix),
//	    and the descriptor/context plumbing (descriptor) every high-level
//	    operation consumes.
//	  • A thin bridge (gbgraph) from the property-graph layer (core) onto
//	    the sparse engine.
//
// ✨ Why choose gbmatrix?
//
//   - Typed dispatch    — semirings and monoids carry type signatures, not
//     void pointers; casts are resolved once, at a closed (from,to) table.
//   - Format-honest     — "full" and "as-if-full" are distinct states;
//     conversions between the four sparsity formats are explicit, never
//     implied by density alone.
//   - Errors are values  — every call returns a status (gbstatus), never
//     panics on user-triggered conditions.
//   - Pure Go            — no cgo, no hidden dependencies beyond testify
//     in tests.
//
// Package map:
//
//	core/       — property graph: Vertex, Edge, Graph, thread-safe primitives
//	gbtype/     — element types, unary/binary ops, monoids, semirings
//	gbcast/     — (from,to) cast factory
//	gbstatus/   — closed status-code enum + Error value type
//	gbconfig/   — process-wide defaults (orientation, thresholds, threads)
//	descriptor/ — per-call Descriptor + Context
//	gbmatrix/   — the Matrix container: formats, conversions, pending/wait,
//	              build/extractTuples/extractElement, clone/transplant
//	gbsort/     — shared stable-sort + permute primitives
//	gbiter/     — row/column tuple iterators
//	gbewise/    — Matrix_add (union) / Matrix_emult (intersection)
//	gbmul/      — masked, accumulating, semiring-parametric matrix multiply
//	gbpersist/  — matrix serialization envelope (chunked, no storage backend)
//	gbgraph/    — core.Graph ⇄ gbmatrix.Matrix bridge
//
// See SPEC_FULL.md and DESIGN.md for the full requirements and the
// grounding ledger mapping each package back to its source material.
//
//	go get github.com/katalvlaran/gbmatrix
package gblas
