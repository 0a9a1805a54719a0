// SPDX-License-Identifier: MIT

package game

import (
	"math/rand"

	"github.com/katalvlaran/trivertex/grid"
)

// Option configures a Session before it is built.
// Option constructors panic on meaningless inputs; session operations never do.
type Option func(*config)

type config struct {
	table     *grid.ColorTable
	rng       *rand.Rand
	palette   []grid.Color
	listeners []Listener
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithColorTable plays the given image. Its size must match the grid size;
// Reset reuses the same table.
func WithColorTable(t grid.ColorTable) Option {
	return func(c *config) {
		c.table = &t
		c.rng = nil
	}
}

// WithRandomColors draws a fresh random image from palette at Initialize and
// at every Reset. The sequence of images is fixed by seed.
func WithRandomColors(seed int64, palette ...grid.Color) Option {
	cp := append([]grid.Color(nil), palette...)
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
		c.palette = cp
		c.table = nil
	}
}

// WithListener registers fn to be called after every operation.
// Panics on nil.
func WithListener(fn Listener) Option {
	if fn == nil {
		panic("game: WithListener(nil)")
	}
	return func(c *config) {
		c.listeners = append(c.listeners, fn)
	}
}

// image produces the color table for a new board.
func (c *config) image(gridSize int) (grid.ColorTable, error) {
	switch {
	case c.table != nil:
		return *c.table, nil
	case c.rng != nil:
		return grid.RandomColorTable(gridSize, c.rng, c.palette...)
	}
	return grid.DefaultColorTable(gridSize), nil
}
