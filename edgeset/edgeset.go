// SPDX-License-Identifier: MIT
// File: edgeset.go
// Role: Edge lifecycle & queries: TryAdd/Has/Edges/Len, neighborhood queries
//       NeighborsOf/CommonNeighbors/Degree, and the remaining-edge counters.
// Determinism:
//   - NeighborsOf() and CommonNeighbors() return IDs sorted asc (treeset order).
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - None. A Set belongs to one single-threaded game session.

package edgeset

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/trivertex/grid"
)

// Set is the edge store of one game session.
// It mutates the RemainingEdges field of the vertex slice it was built with.
type Set struct {
	vertices []grid.Vertex
	adj      map[int]*treeset.Set // vertex ID → sorted neighbor IDs
	order    []Edge               // insertion order
}

// New returns an empty Set over vertices. Vertex IDs must equal slice indices,
// as produced by grid.Generate.
func New(vertices []grid.Vertex) *Set {
	return &Set{
		vertices: vertices,
		adj:      make(map[int]*treeset.Set),
	}
}

// TryAdd inserts the edge u–v and decrements both endpoints' remaining-edge
// counters (floored at 0). It reports false, leaving the set untouched, if
// u == v, either ID is unknown, or the edge already exists.
//
// Steps:
//  1. Reject loops, unknown IDs and existing pairs (in either order).
//  2. Mirror adjacency: add v to u's neighbor set and u to v's.
//  3. Record the normalized Edge in insertion order.
//  4. Decrement both counters, never below zero.
//
// Complexity: O(log d).
func (s *Set) TryAdd(u, v int) bool {
	if u == v || !s.known(u) || !s.known(v) || s.Has(u, v) {
		return false
	}
	s.neighbors(u).Add(v)
	s.neighbors(v).Add(u)
	s.order = append(s.order, NewEdge(u, v))
	s.decrement(u)
	s.decrement(v)

	return true
}

// Has reports whether u and v are connected. Order of arguments is irrelevant:
// adjacency is mirrored on insert, so probing u's set suffices.
// Complexity: O(log d).
func (s *Set) Has(u, v int) bool {
	ns, ok := s.adj[u]
	if !ok {
		return false
	}

	return ns.Contains(v)
}

// NeighborsOf returns the IDs directly connected to id in ascending order.
// Unknown or isolated vertices have no neighbors.
func (s *Set) NeighborsOf(id int) []int {
	ns, ok := s.adj[id]
	if !ok {
		return nil
	}

	return toInts(ns.Values())
}

// CommonNeighbors returns, in ascending order, every vertex adjacent to both
// a and b, excluding a and b themselves.
//
// Steps:
//  1. Missing adjacency on either side ⇒ no common neighbors.
//  2. Iterate the smaller sorted set; probe the larger one.
//  3. Skip a and b; collect hits in iteration (ascending) order.
//
// Complexity: O(min(d_a,d_b) · log max(d_a,d_b)).
func (s *Set) CommonNeighbors(a, b int) []int {
	na, okA := s.adj[a]
	nb, okB := s.adj[b]
	if !okA || !okB {
		return nil
	}
	// Walk the smaller set, probe the larger one.
	if na.Size() > nb.Size() {
		na, nb = nb, na
	}
	var out []int
	it := na.Iterator()
	for it.Next() {
		c := it.Value().(int)
		if c == a || c == b {
			continue
		}
		if nb.Contains(c) {
			out = append(out, c)
		}
	}

	return out
}

// Degree returns the number of edges incident to id.
func (s *Set) Degree(id int) int {
	ns, ok := s.adj[id]
	if !ok {
		return 0
	}

	return ns.Size()
}

// Len returns the number of edges.
func (s *Set) Len() int { return len(s.order) }

// Edges returns a snapshot of all edges in insertion order.
func (s *Set) Edges() []Edge {
	out := make([]Edge, len(s.order))
	copy(out, s.order)

	return out
}

func (s *Set) known(id int) bool {
	return id >= 0 && id < len(s.vertices)
}

// neighbors returns the neighbor set of id, creating it lazily.
func (s *Set) neighbors(id int) *treeset.Set {
	ns, ok := s.adj[id]
	if !ok {
		ns = treeset.NewWithIntComparator()
		s.adj[id] = ns
	}

	return ns
}

func (s *Set) decrement(id int) {
	if s.vertices[id].RemainingEdges > 0 {
		s.vertices[id].RemainingEdges--
	}
}

func toInts(vals []interface{}) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}

	return out
}
