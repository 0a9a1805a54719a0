package game_test

import (
	"fmt"

	"github.com/katalvlaran/trivertex/game"
	"github.com/katalvlaran/trivertex/grid"
)

// ExampleSession_SelectVertex plays the first triangle of the reference board.
//
//	0───1
//	│  /
//	│ /
//	5
//
// Two clicks per edge; the third edge closes {0,1,5} over the red top-left cell.
func ExampleSession_SelectVertex() {
	s, _ := game.Initialize(4, 100)

	for _, e := range [][2]int{{0, 1}, {1, 5}, {5, 0}} {
		_, _ = s.SelectVertex(e[0])
		res, _ := s.SelectVertex(e[1])
		fmt.Printf("%v %v %v triangles=%v\n", res.Player, res.Outcome, res.Edge, res.Triangles)
	}
	fmt.Println("score:", s.Score(game.PlayerOne), s.Score(game.PlayerTwo))

	// Output:
	// Player1 edge-added 0-1 triangles=[]
	// Player2 edge-added 1-5 triangles=[]
	// Player1 edge-added 0-5 triangles=[{0,1,5}:red]
	// score: 1 0
}

// ExampleSession_PreviewEdge draws the rubber-band line from a selected vertex.
func ExampleSession_PreviewEdge() {
	s, _ := game.Initialize(4, 100)
	_, _ = s.SelectVertex(6)

	seg, _ := s.PreviewEdge(6, grid.Point{X: 160, Y: 180})
	fmt.Printf("from %v length %.0f angle %.2f\n", seg.From, seg.Length(), seg.Angle())
	fmt.Println(s.State())

	// Output:
	// from {100 100} length 100 angle 53.13
	// AwaitingSecondVertex
}
