// SPDX-License-Identifier: MIT

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/trivertex/game"
)

// WriteBoard prints a text snapshot of s: a status line, the remaining-edge
// count of every vertex laid out as the lattice, and the completed triangles.
//
//	turn Player2 | score 1:0 | edges 3 | triangles 1
//	 2 2 4 4 4
//	 2 4 4 4 4
//	 ...
//	{0,1,5}:red
func WriteBoard(w io.Writer, s *game.Session) error {
	var b strings.Builder
	fmt.Fprintf(&b, "turn %v | score %d:%d | edges %d | triangles %d\n",
		s.Turn(), s.Score(game.PlayerOne), s.Score(game.PlayerTwo),
		len(s.Edges()), len(s.Triangles()))

	side := s.GridSize() + 1
	for i, v := range s.Vertices() {
		fmt.Fprintf(&b, " %d", v.RemainingEdges)
		if (i+1)%side == 0 {
			b.WriteByte('\n')
		}
	}
	for _, t := range s.Triangles() {
		fmt.Fprintln(&b, t)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
