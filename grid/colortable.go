// SPDX-License-Identifier: MIT

package grid

import (
	"math/rand"

	"github.com/pkg/errors"
)

// DefaultPalette is used by RandomColorTable when no palette is given.
var DefaultPalette = []Color{"red", "blue"}

// ColorTable is the hidden image: size×size cells in row-major order.
// A ColorTable is immutable once built; accessors return copies.
type ColorTable struct {
	size  int
	cells []Color
}

// NewColorTable copies cells into a new size×size table.
// Returns ErrTableSize if size < 1 or len(cells) != size*size.
func NewColorTable(size int, cells []Color) (ColorTable, error) {
	if size < 1 || len(cells) != size*size {
		return ColorTable{}, errors.Wrapf(ErrTableSize, "size=%d, cells=%d", size, len(cells))
	}
	cp := make([]Color, len(cells))
	copy(cp, cells)

	return ColorTable{size: size, cells: cp}, nil
}

// DefaultColorTable returns the fixed reference image: the left half of
// every row is red and the right half is blue. Repeated calls return
// equal tables, so games are reproducible unless re-randomized.
func DefaultColorTable(size int) ColorTable {
	if size < 1 {
		return ColorTable{}
	}
	cells := make([]Color, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col*2 < size {
				cells = append(cells, "red")
			} else {
				cells = append(cells, "blue")
			}
		}
	}

	return ColorTable{size: size, cells: cells}
}

// RandomColorTable fills a size×size table by drawing uniformly from palette
// (DefaultPalette if empty). The table is a pure function of the rng state.
func RandomColorTable(size int, rng *rand.Rand, palette ...Color) (ColorTable, error) {
	if rng == nil {
		return ColorTable{}, ErrNeedRand
	}
	if size < 1 {
		return ColorTable{}, errors.Wrapf(ErrTableSize, "size=%d", size)
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	cells := make([]Color, size*size)
	for i := range cells {
		cells[i] = palette[rng.Intn(len(palette))]
	}

	return ColorTable{size: size, cells: cells}, nil
}

// Size returns the number of cells per side.
func (t ColorTable) Size() int { return t.size }

// Len returns the total number of cells.
func (t ColorTable) Len() int { return len(t.cells) }

// At returns the color of the cell at the row-major index.
// ok is false when index is outside [0, Len()).
func (t ColorTable) At(index int) (c Color, ok bool) {
	if index < 0 || index >= len(t.cells) {
		return NoColor, false
	}

	return t.cells[index], true
}

// Cells returns a copy of the table in row-major order.
func (t ColorTable) Cells() []Color {
	out := make([]Color, len(t.cells))
	copy(out, t.cells)

	return out
}
