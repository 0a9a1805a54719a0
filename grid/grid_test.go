package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trivertex/grid"
)

//----------------------------------------------------------------------------//
// Generate
//----------------------------------------------------------------------------//

// TestGenerate_ReferenceLattice checks ids, positions and budgets on the 4×4 board.
func TestGenerate_ReferenceLattice(t *testing.T) {
	vs, err := grid.Generate(4, 100)
	require.NoError(t, err)
	require.Len(t, vs, 25)

	for i, v := range vs {
		assert.Equal(t, i, v.ID, "ID must equal slice index")
		assert.Equal(t, grid.InitialEdges, v.RemainingEdges)
	}
	assert.Equal(t, grid.Point{X: 0, Y: 0}, vs[0].Pos)
	assert.Equal(t, grid.Point{X: 400, Y: 0}, vs[4].Pos)
	assert.Equal(t, grid.Point{X: 0, Y: 100}, vs[5].Pos)
	assert.Equal(t, grid.Point{X: 200, Y: 300}, vs[17].Pos) // row 3, col 2
	assert.Equal(t, grid.Point{X: 400, Y: 400}, vs[24].Pos)
}

// TestGenerate_Errors verifies malformed parameters are rejected.
func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name     string
		size     int
		cellSize float64
		err      error
	}{
		{"ZeroSize", 0, 100, grid.ErrGridSize},
		{"NegativeSize", -3, 100, grid.ErrGridSize},
		{"ZeroCell", 4, 0, grid.ErrCellSize},
		{"NegativeCell", 4, -1, grid.ErrCellSize},
		{"NaNCell", 4, math.NaN(), grid.ErrCellSize},
		{"InfCell", 4, math.Inf(1), grid.ErrCellSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Generate(tc.size, tc.cellSize)
			require.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// ColorTable
//----------------------------------------------------------------------------//

// TestDefaultColorTable_Reference locks the reference image rows.
func TestDefaultColorTable_Reference(t *testing.T) {
	tbl := grid.DefaultColorTable(4)
	require.Equal(t, 4, tbl.Size())
	row := []grid.Color{"red", "red", "blue", "blue"}
	var want []grid.Color
	for i := 0; i < 4; i++ {
		want = append(want, row...)
	}
	assert.Equal(t, want, tbl.Cells())
	assert.Equal(t, tbl.Cells(), grid.DefaultColorTable(4).Cells(), "default table must be reproducible")
}

func TestNewColorTable(t *testing.T) {
	cells := []grid.Color{"a", "b", "c", "d"}
	tbl, err := grid.NewColorTable(2, cells)
	require.NoError(t, err)

	cells[0] = "mutated"
	c, ok := tbl.At(0)
	require.True(t, ok)
	assert.Equal(t, grid.Color("a"), c, "table must not alias caller slice")

	_, ok = tbl.At(4)
	assert.False(t, ok)
	_, ok = tbl.At(-1)
	assert.False(t, ok)

	_, err = grid.NewColorTable(2, cells[:3])
	assert.True(t, errors.Is(err, grid.ErrTableSize))
	_, err = grid.NewColorTable(0, nil)
	assert.True(t, errors.Is(err, grid.ErrTableSize))
}

func TestRandomColorTable_Seeded(t *testing.T) {
	a, err := grid.RandomColorTable(4, rand.New(rand.NewSource(7)), "x", "y", "z")
	require.NoError(t, err)
	b, err := grid.RandomColorTable(4, rand.New(rand.NewSource(7)), "x", "y", "z")
	require.NoError(t, err)
	assert.Equal(t, a.Cells(), b.Cells(), "same seed must give the same image")
	for _, c := range a.Cells() {
		assert.Contains(t, []grid.Color{"x", "y", "z"}, c)
	}

	_, err = grid.RandomColorTable(4, nil)
	assert.True(t, errors.Is(err, grid.ErrNeedRand))
}

//----------------------------------------------------------------------------//
// Grid lookups and geometry
//----------------------------------------------------------------------------//

func TestGrid_ColorAt(t *testing.T) {
	g, err := grid.New(4, 100, grid.DefaultColorTable(4))
	require.NoError(t, err)

	c, ok := g.ColorAt(grid.Point{X: 50, Y: 50})
	require.True(t, ok)
	assert.Equal(t, grid.Color("red"), c)

	c, ok = g.ColorAt(grid.Point{X: 250, Y: 350})
	require.True(t, ok)
	assert.Equal(t, grid.Color("blue"), c)

	// Right border: col=4, row=1 → index 8, the first cell of row 2.
	c, ok = g.ColorAt(grid.Point{X: 400, Y: 100})
	require.True(t, ok)
	assert.Equal(t, grid.Color("red"), c)

	// Bottom border: row=4 → index 16+ is past the table.
	_, ok = g.ColorAt(grid.Point{X: 100, Y: 400})
	assert.False(t, ok)
	_, ok = g.ColorAt(grid.Point{X: -0.5, Y: 10})
	assert.False(t, ok, "index -1")
	_, ok = g.ColorAt(grid.Point{X: math.NaN(), Y: 10})
	assert.False(t, ok)
}

func TestGrid_CellAt(t *testing.T) {
	g, err := grid.New(4, 100, grid.DefaultColorTable(4))
	require.NoError(t, err)

	col, row, ok := g.CellAt(grid.Point{X: 400, Y: 100})
	require.True(t, ok)
	assert.Equal(t, 4, col)
	assert.Equal(t, 1, row)
	assert.Equal(t, 8, g.CellIndex(col, row))

	col, row, ok = g.CellAt(grid.Point{X: -0.5, Y: 250})
	require.True(t, ok)
	assert.Equal(t, -1, col)
	assert.Equal(t, 2, row)

	_, _, ok = g.CellAt(grid.Point{X: 10, Y: math.Inf(1)})
	assert.False(t, ok)
}

func TestNew_TableMismatch(t *testing.T) {
	_, err := grid.New(4, 100, grid.DefaultColorTable(3))
	assert.True(t, errors.Is(err, grid.ErrTableSize))
	_, err = grid.New(4, 100, grid.ColorTable{})
	assert.True(t, errors.Is(err, grid.ErrTableSize))
}

func TestSegment(t *testing.T) {
	s := grid.Segment{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 30, Y: 40}}
	assert.InDelta(t, 50, s.Length(), 1e-9)

	down := grid.Segment{From: grid.Point{X: 10, Y: 10}, To: grid.Point{X: 10, Y: 20}}
	assert.InDelta(t, 90, down.Angle(), 1e-9)
	left := grid.Segment{From: grid.Point{X: 10, Y: 10}, To: grid.Point{X: 0, Y: 10}}
	assert.InDelta(t, 180, left.Angle(), 1e-9)
}

func TestCentroid(t *testing.T) {
	c := grid.Centroid(grid.Point{X: 0, Y: 0}, grid.Point{X: 100, Y: 0}, grid.Point{X: 0, Y: 100})
	assert.InDelta(t, 100.0/3, c.X, 1e-9)
	assert.InDelta(t, 100.0/3, c.Y, 1e-9)
	assert.Equal(t, grid.Point{}, grid.Centroid())
}
