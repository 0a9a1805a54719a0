// SPDX-License-Identifier: MIT

// Package grid is the board model of trivertex: the fixed vertex lattice,
// board geometry, and the hidden image that colors completed triangles.
//
// What:
//
//   - Generate lays out (gridSize+1)² vertices at (col*cellSize, row*cellSize)
//     with row-major IDs row*(gridSize+1)+col, each starting with 4 remaining edges.
//   - ColorTable maps the gridSize×gridSize cells (row-major) to colors.
//     It is read-only configuration; swap it to play a different image.
//   - Grid binds the lattice geometry to a ColorTable and answers
//     "which cell contains this point" and "what color is that cell".
//   - Segment is the straight line the presentation layer draws between
//     a selected vertex and the pointer.
//
// Reference configuration:
//
//	gridSize = 4, cellSize = 100 (a 400×400 board, 25 vertices)
//
//	    0───1───2───3───4
//	    │ r │ r │ b │ b │
//	    5───6───7───8───9
//	    │ r │ r │ b │ b │
//	   10──11──12──13──14      r = red, b = blue
//	    │ r │ r │ b │ b │
//	   15──16──17──18──19
//	    │ r │ r │ b │ b │
//	   20──21──22──23──24
//
// Errors:
//
//   - ErrGridSize: gridSize < 1.
//   - ErrCellSize: cellSize is not a positive finite number.
//   - ErrTableSize: color table dimensions disagree with the grid.
package grid
