// SPDX-License-Identifier: MIT

package grid

import "github.com/pkg/errors"

var (
	// ErrGridSize indicates a grid with fewer than one cell per side.
	ErrGridSize = errors.New("grid: grid size must be at least 1")
	// ErrCellSize indicates a cell size that is zero, negative, NaN or infinite.
	ErrCellSize = errors.New("grid: cell size must be a positive finite number")
	// ErrTableSize indicates a color table whose cell count does not match size×size,
	// or whose size does not match the grid it is bound to.
	ErrTableSize = errors.New("grid: color table size mismatch")
)

// ErrNeedRand indicates a random color table was requested without a *rand.Rand.
var ErrNeedRand = errors.New("grid: rng is required")
