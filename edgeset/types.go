// SPDX-License-Identifier: MIT

package edgeset

import "fmt"

// Edge is an undirected connection between two distinct vertices,
// normalized so that U < V.
type Edge struct {
	U, V int
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Other returns the endpoint opposite id, and false if id is not an endpoint.
func (e Edge) Other(id int) (int, bool) {
	switch id {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	}

	return 0, false
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}
