// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"github.com/pkg/errors"
)

// Grid binds lattice geometry to the image that colors it.
// It is read-only after New.
type Grid struct {
	size     int
	cellSize float64
	table    ColorTable
}

// Generate lays out the (gridSize+1)² lattice vertices in row-major order.
// Vertex (row, col) sits at (col*cellSize, row*cellSize) with ID row*(gridSize+1)+col.
// Complexity: O(gridSize²) time and memory.
func Generate(gridSize int, cellSize float64) ([]Vertex, error) {
	if err := validate(gridSize, cellSize); err != nil {
		return nil, err
	}
	side := gridSize + 1
	out := make([]Vertex, 0, side*side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			out = append(out, Vertex{
				ID:             row*side + col,
				Pos:            Point{X: float64(col) * cellSize, Y: float64(row) * cellSize},
				RemainingEdges: InitialEdges,
			})
		}
	}

	return out, nil
}

// New returns a Grid of gridSize×gridSize cells colored by table.
// Returns ErrGridSize, ErrCellSize, or ErrTableSize when the inputs disagree.
func New(gridSize int, cellSize float64, table ColorTable) (*Grid, error) {
	if err := validate(gridSize, cellSize); err != nil {
		return nil, err
	}
	if table.Size() != gridSize || table.Len() != gridSize*gridSize {
		return nil, errors.Wrapf(ErrTableSize, "grid %d×%d, table %d×%d",
			gridSize, gridSize, table.Size(), table.Size())
	}

	return &Grid{size: gridSize, cellSize: cellSize, table: table}, nil
}

func validate(gridSize int, cellSize float64) error {
	if gridSize < 1 {
		return errors.Wrapf(ErrGridSize, "gridSize=%d", gridSize)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return errors.Wrapf(ErrCellSize, "cellSize=%v", cellSize)
	}

	return nil
}

// Size returns the number of cells per side.
func (g *Grid) Size() int { return g.size }

// CellSize returns the side length of one cell in board coordinates.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Table returns the grid's color table.
func (g *Grid) Table() ColorTable { return g.table }

// CellAt returns the (col, row) cell coordinates of p:
// floor(x/cellSize), floor(y/cellSize). The result may lie outside the image;
// ok is false only when p has a NaN or infinite coordinate.
func (g *Grid) CellAt(p Point) (col, row int, ok bool) {
	fx := math.Floor(p.X / g.cellSize)
	fy := math.Floor(p.Y / g.cellSize)
	if math.IsNaN(fx) || math.IsNaN(fy) || math.IsInf(fx, 0) || math.IsInf(fy, 0) {
		return 0, 0, false
	}

	return int(fx), int(fy), true
}

// CellIndex maps (col, row) to the row-major index row*size + col.
func (g *Grid) CellIndex(col, row int) int {
	return row*g.size + col
}

// ColorAt returns table[row*size + col] for the cell coordinates of p.
// ok is false when that index falls outside [0, size²). A point on the far
// right border therefore reads the first cell of the next row, exactly as
// the row-major index dictates.
func (g *Grid) ColorAt(p Point) (Color, bool) {
	col, row, ok := g.CellAt(p)
	if !ok {
		return NoColor, false
	}

	return g.table.At(g.CellIndex(col, row))
}
