// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/trivertex/edgeset"
	"github.com/katalvlaran/trivertex/grid"
)

// Triangle is a completed, colored triangle. A < B < C.
// Points holds the positions of A, B and C in that order.
type Triangle struct {
	A, B, C int
	Points  [3]grid.Point
	Color   grid.Color
}

// Key identifies the unordered vertex triple.
type Key [3]int

// NewKey returns the sorted Key of a, b, c.
func NewKey(a, b, c int) Key {
	k := Key{a, b, c}
	sort.Ints(k[:])

	return k
}

// Key returns the triangle's vertex triple.
func (t Triangle) Key() Key { return Key{t.A, t.B, t.C} }

// String renders the triangle as "{a,b,c}:color".
func (t Triangle) String() string {
	return fmt.Sprintf("{%d,%d,%d}:%s", t.A, t.B, t.C, t.Color)
}

// Painter resolves the color of the image cell containing a point.
// *grid.Grid implements it.
type Painter interface {
	ColorAt(p grid.Point) (grid.Color, bool)
}

// Detector finds triangles completed by new edges. It remembers every triple
// it has emitted, so a triple is reported at most once until Reset.
type Detector struct {
	painter Painter
	seen    *hashset.Set // of Key
}

// NewDetector returns a Detector that colors triangles with painter.
// Panics on nil painter.
func NewDetector(painter Painter) *Detector {
	if painter == nil {
		panic("triangle: NewDetector(nil)")
	}

	return &Detector{painter: painter, seen: hashset.New()}
}

// Detect returns the triangles completed by e, which must already be in set.
// Results are ordered by the ID of the third vertex, ascending.
func (d *Detector) Detect(e edgeset.Edge, set *edgeset.Set, vertices []grid.Vertex) []Triangle {
	if !set.Has(e.U, e.V) {
		return nil
	}
	var out []Triangle
	for _, c := range set.CommonNeighbors(e.U, e.V) {
		k := NewKey(e.U, e.V, c)
		if d.seen.Contains(k) {
			continue
		}
		t, ok := d.build(k, vertices)
		if !ok {
			continue
		}
		d.seen.Add(k)
		out = append(out, t)
	}

	return out
}

// Seen reports whether the triple a, b, c has already been emitted.
func (d *Detector) Seen(a, b, c int) bool {
	return d.seen.Contains(NewKey(a, b, c))
}

// Len returns the number of triangles emitted since the last Reset.
func (d *Detector) Len() int { return d.seen.Size() }

// Reset forgets every emitted triple.
func (d *Detector) Reset() { d.seen.Clear() }

func (d *Detector) build(k Key, vertices []grid.Vertex) (Triangle, bool) {
	var pts [3]grid.Point
	for i, id := range k {
		if id < 0 || id >= len(vertices) {
			return Triangle{}, false
		}
		pts[i] = vertices[id].Pos
	}
	color, ok := d.painter.ColorAt(grid.Centroid(pts[:]...))
	if !ok {
		return Triangle{}, false
	}

	return Triangle{A: k[0], B: k[1], C: k[2], Points: pts, Color: color}, true
}
