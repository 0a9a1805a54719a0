// SPDX-License-Identifier: MIT

// Package edgeset stores the undirected edges players draw between lattice
// vertices and keeps every vertex's remaining-edge counter in step.
//
// Invariants:
//
//   - No two entries represent the same unordered pair: (a,b) and (b,a) are one edge.
//   - No self-loops.
//   - For every vertex v: RemainingEdges(v) = max(0, grid.InitialEdges - Degree(v)).
//
// Adjacency is held as one sorted set of neighbor IDs per vertex, so
// NeighborsOf and CommonNeighbors return ascending IDs without extra sorting.
//
// Complexity:
//
//   - TryAdd, Has:        O(log d)
//   - NeighborsOf:        O(d)
//   - CommonNeighbors:    O(d_a · log d_b)
//   - Edges:              O(E)
//
// where d is a vertex degree and E the number of edges.
//
// A Set is not safe for concurrent use; one game session owns it.
package edgeset
