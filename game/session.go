// SPDX-License-Identifier: MIT

package game

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/trivertex/edgeset"
	"github.com/katalvlaran/trivertex/grid"
	"github.com/katalvlaran/trivertex/triangle"
)

// Session is one independent game: lattice, edges, triangles, selection,
// turn and scores.
type Session struct {
	gridSize int
	cellSize float64
	cfg      config
	b        *board
}

// board is everything Reset replaces. It is built completely before it is
// installed, so a reset is never partially visible.
type board struct {
	grid       *grid.Grid
	vertices   []grid.Vertex
	edges      *edgeset.Set
	detector   *triangle.Detector
	triangles  []triangle.Triangle
	pending    int
	hasPending bool
	turn       Player
	scores     map[Player]int
}

// Initialize builds a fresh session on a gridSize×gridSize board of
// cellSize-wide cells. The image defaults to grid.DefaultColorTable.
func Initialize(gridSize int, cellSize float64, opts ...Option) (*Session, error) {
	s := &Session{gridSize: gridSize, cellSize: cellSize, cfg: newConfig(opts)}
	b, err := s.newBoard()
	if err != nil {
		return nil, errors.Wrap(err, "game: initialize")
	}
	s.b = b
	klog.V(2).Infof("game: new session %d×%d, cell=%v, %d vertices",
		gridSize, gridSize, cellSize, len(b.vertices))

	return s, nil
}

func (s *Session) newBoard() (*board, error) {
	vs, err := grid.Generate(s.gridSize, s.cellSize)
	if err != nil {
		return nil, err
	}
	table, err := s.cfg.image(s.gridSize)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(s.gridSize, s.cellSize, table)
	if err != nil {
		return nil, err
	}

	return &board{
		grid:     g,
		vertices: vs,
		edges:    edgeset.New(vs),
		detector: triangle.NewDetector(g),
		turn:     PlayerOne,
		scores:   make(map[Player]int, 2),
	}, nil
}

// Reset discards the board and starts over in Idle with PlayerOne to move.
// On error the previous board is left untouched.
func (s *Session) Reset() error {
	b, err := s.newBoard()
	if err != nil {
		return errors.Wrap(err, "game: reset")
	}
	s.b = b
	klog.V(2).Infof("game: reset")
	s.notify(Event{Kind: EventReset})

	return nil
}

// SelectVertex feeds one vertex click into the state machine.
// An unknown id returns ErrInvalidVertex and changes nothing.
func (s *Session) SelectVertex(id int) (SelectionResult, error) {
	if !s.valid(id) {
		klog.Warningf("game: select of unknown vertex %d", id)
		return SelectionResult{}, errors.Wrapf(ErrInvalidVertex, "vertex %d", id)
	}
	b := s.b
	res := SelectionResult{Vertex: id}

	switch {
	case !b.hasPending:
		b.pending, b.hasPending = id, true
		res.Outcome = Selected

	case b.pending == id:
		b.hasPending = false
		res.Outcome = Deselected

	default:
		from := b.pending
		b.hasPending = false
		res.Edge = edgeset.NewEdge(from, id)
		res.Player = b.turn
		if !b.edges.TryAdd(from, id) {
			res.Outcome = DuplicateEdge
			klog.V(3).Infof("game: %v duplicate edge %v", res.Player, res.Edge)
			break
		}
		res.Outcome = EdgeAdded
		res.Triangles = b.detector.Detect(res.Edge, b.edges, b.vertices)
		b.triangles = append(b.triangles, res.Triangles...)
		b.scores[b.turn] += len(res.Triangles)
		b.turn = b.turn.Other()
		klog.V(2).Infof("game: %v drew %v, completed %d triangle(s)",
			res.Player, res.Edge, len(res.Triangles))
	}
	s.notify(Event{Kind: EventSelect, Result: res})

	return res, nil
}

// PreviewEdge returns the line from vertex from to the pointer position.
// It has no effect on the session.
func (s *Session) PreviewEdge(from int, pointer grid.Point) (grid.Segment, error) {
	if !s.valid(from) {
		return grid.Segment{}, errors.Wrapf(ErrInvalidVertex, "vertex %d", from)
	}

	return grid.Segment{From: s.b.vertices[from].Pos, To: pointer}, nil
}

func (s *Session) valid(id int) bool {
	return id >= 0 && id < len(s.b.vertices)
}

func (s *Session) notify(ev Event) {
	for _, fn := range s.cfg.listeners {
		fn(ev)
	}
}
