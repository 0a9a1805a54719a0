// SPDX-License-Identifier: MIT

// Package triangle detects triangles completed by a newly drawn edge and
// colors them from the hidden image.
//
// Algorithm:
//
//	A triangle {a,b,c} exists when edges a–b, b–c and a–c are all present.
//	Any triangle that did not exist before edge a–b was added must contain
//	a–b, so the new triangles are exactly {a,b,c} for every common neighbor c
//	of a and b. No global enumeration is needed.
//
//	      c1
//	     /  \
//	    a────b      new edge a–b with common neighbors c1, c2
//	     \  /       → two triangles, emitted in ascending c order
//	      c2
//
// Coloring:
//
//	centroid = mean of the three vertex positions
//	col, row = floor(centroid / cellSize)
//	color    = table[row*gridSize + col]
//
// When the index falls outside the table (only possible for degenerate input
// such as three collinear vertices on the bottom border) the triangle is not
// emitted.
//
// Complexity: O(d_a · log d_b) per edge.
package triangle
