// SPDX-License-Identifier: MIT

package game

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/trivertex/edgeset"
	"github.com/katalvlaran/trivertex/grid"
	"github.com/katalvlaran/trivertex/triangle"
)

// Snapshots returned here are copies; mutating them does not affect the session.

// Vertices returns every vertex with its current remaining-edge count, by ID.
func (s *Session) Vertices() []grid.Vertex {
	out := make([]grid.Vertex, len(s.b.vertices))
	copy(out, s.b.vertices)
	return out
}

// Vertex returns one vertex by ID.
func (s *Session) Vertex(id int) (grid.Vertex, error) {
	if !s.valid(id) {
		return grid.Vertex{}, errors.Wrapf(ErrInvalidVertex, "vertex %d", id)
	}
	return s.b.vertices[id], nil
}

// Edges returns the drawn edges in the order they were drawn.
func (s *Session) Edges() []edgeset.Edge { return s.b.edges.Edges() }

// Triangles returns the completed triangles in the order they were completed.
func (s *Session) Triangles() []triangle.Triangle {
	out := make([]triangle.Triangle, len(s.b.triangles))
	copy(out, s.b.triangles)
	return out
}

// State returns the selection state.
func (s *Session) State() State {
	if s.b.hasPending {
		return AwaitingSecondVertex
	}
	return Idle
}

// Pending returns the selected vertex, if any.
func (s *Session) Pending() (int, bool) { return s.b.pending, s.b.hasPending }

// Turn returns the player whose edge comes next.
func (s *Session) Turn() Player { return s.b.turn }

// Score returns how many triangles p has completed.
func (s *Session) Score(p Player) int { return s.b.scores[p] }

// Complete reports whether every vertex has used up its remaining edges.
func (s *Session) Complete() bool {
	for _, v := range s.b.vertices {
		if v.RemainingEdges > 0 {
			return false
		}
	}
	return true
}

// GridSize returns the number of cells per side.
func (s *Session) GridSize() int { return s.gridSize }

// CellSize returns the side of one cell in board coordinates.
func (s *Session) CellSize() float64 { return s.cellSize }

// ColorTable returns the image being revealed.
func (s *Session) ColorTable() grid.ColorTable { return s.b.grid.Table() }
