// SPDX-License-Identifier: MIT

// Package game runs one trivertex session: two players take turns joining
// lattice vertices, and every triangle they close is painted with the hidden
// image's color underneath it.
//
// State machine:
//
//	            SelectVertex(v)
//	   ┌──────┐ ───────────────▶ ┌──────────────────────┐
//	   │ Idle │                  │ AwaitingSecondVertex │
//	   └──────┘ ◀─────────────── └──────────────────────┘
//	            SelectVertex(w):
//	              w == pending → Deselected
//	              edge exists  → DuplicateEdge (no mutation)
//	              otherwise    → EdgeAdded (+ completed triangles)
//
//	Reset() returns to Idle from any state with a fresh board.
//
// The presentation layer drives a Session with SelectVertex and Reset, draws
// the rubber-band line with PreviewEdge, and renders the snapshots returned by
// Vertices, Edges and Triangles. It can also subscribe with WithListener to be
// told after every operation.
//
// Errors:
//
//   - ErrInvalidVertex: a vertex ID outside the lattice; state is unchanged.
//
// A Session is single-threaded: callers serialize input before it reaches
// the core. Nothing in the package blocks, spawns goroutines or performs I/O.
package game
