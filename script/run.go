// SPDX-License-Identifier: MIT

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/trivertex/game"
	"github.com/katalvlaran/trivertex/grid"
)

// Run executes sc against s, writing one line per result to w and a board
// snapshot for every show. Image commands are skipped: the image is fixed
// when the session is built (see Script.Image).
// Run stops at the first failing command.
func Run(s *game.Session, sc *Script, w io.Writer) error {
	for _, cmd := range sc.Commands {
		if err := exec(s, cmd, w); err != nil {
			return errors.Wrapf(err, "%s", cmd.Pos)
		}
	}
	return nil
}

func exec(s *game.Session, cmd *Command, w io.Writer) error {
	switch {
	case cmd.Image != nil:
		return nil

	case cmd.Select != nil:
		res, err := s.SelectVertex(cmd.Select.Vertex)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "select %d: %s\n", cmd.Select.Vertex, describe(res))
		return err

	case cmd.Link != nil:
		if pending, ok := s.Pending(); ok {
			return errors.Wrapf(ErrPendingSelection, "link %d %d with vertex %d selected",
				cmd.Link.From, cmd.Link.To, pending)
		}
		if _, err := s.SelectVertex(cmd.Link.From); err != nil {
			return err
		}
		res, err := s.SelectVertex(cmd.Link.To)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "link %d %d: %s\n", cmd.Link.From, cmd.Link.To, describe(res))
		return err

	case cmd.Preview != nil:
		p := cmd.Preview
		seg, err := s.PreviewEdge(p.Vertex, grid.Point{X: p.X, Y: p.Y})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "preview %d -> (%g,%g): length %.2f angle %.2f\n",
			p.Vertex, p.X, p.Y, seg.Length(), seg.Angle())
		return err

	case cmd.Reset:
		if err := s.Reset(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "reset")
		return err

	case cmd.Show:
		return WriteBoard(w, s)
	}
	return ErrUnknownCommand
}

func describe(res game.SelectionResult) string {
	switch res.Outcome {
	case game.EdgeAdded:
		var b strings.Builder
		fmt.Fprintf(&b, "%s %v by %v", res.Outcome, res.Edge, res.Player)
		for _, t := range res.Triangles {
			fmt.Fprintf(&b, " +%v", t)
		}
		return b.String()
	case game.DuplicateEdge:
		return fmt.Sprintf("%s %v", res.Outcome, res.Edge)
	}
	return res.Outcome.String()
}
