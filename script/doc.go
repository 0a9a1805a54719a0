// SPDX-License-Identifier: MIT

// Package script replays player input against a game session from text.
// It stands in for the UI when driving the engine headlessly, in demos and
// in tests.
//
// Grammar (one command per line or separated by ';', '#' starts a comment):
//
//	image <size> { <color> ... }   hidden image, size×size colors, row-major
//	select <vertex>                one click on a vertex
//	link <from> <to>               two clicks: from, then to (fails if a vertex is selected)
//	preview <vertex> <x> <y>       rubber-band line to the pointer at (x,y)
//	reset                          start a new game
//	show                           print the board
//
// Colors are bare words (red) or quoted strings ("#3498db").
//
// Example:
//
//	image 2 { red blue red blue }
//	link 0 1; link 1 3
//	link 3 0    # closes {0,1,3}
//	show
package script
