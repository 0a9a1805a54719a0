// SPDX-License-Identifier: MIT

package grid

import "math"

// InitialEdges is the remaining-edge budget every vertex starts with.
const InitialEdges = 4

// Point is a position in board coordinates (pixels in the reference layout).
type Point struct {
	X, Y float64
}

// Vertex is a lattice point players connect.
//
// ID equals the vertex's index in the slice returned by Generate.
// RemainingEdges starts at InitialEdges and is decremented, floored at 0,
// every time an incident edge is added.
type Vertex struct {
	ID             int
	Pos            Point
	RemainingEdges int
}

// Color is an opaque color value, e.g. "red" or "#3498db".
type Color string

// NoColor is the zero Color, returned when a point lies outside the image.
const NoColor Color = ""

// Segment is a straight line between two board points.
type Segment struct {
	From, To Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Angle returns the direction of the segment in degrees, measured from the
// positive X axis toward positive Y (screen coordinates), in (-180, 180].
func (s Segment) Angle() float64 {
	return math.Atan2(s.To.Y-s.From.Y, s.To.X-s.From.X) * 180 / math.Pi
}

// Centroid returns the arithmetic mean of the given points.
// The centroid of no points is the origin.
func Centroid(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))

	return Point{X: c.X / n, Y: c.Y / n}
}
