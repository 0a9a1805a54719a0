// SPDX-License-Identifier: MIT

package game

import (
	"github.com/katalvlaran/trivertex/edgeset"
	"github.com/katalvlaran/trivertex/triangle"
)

// State is the selection state of a session.
type State int

const (
	// Idle means no vertex is selected.
	Idle State = iota
	// AwaitingSecondVertex means one vertex is selected and the next
	// selection closes an edge.
	AwaitingSecondVertex
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AwaitingSecondVertex:
		return "AwaitingSecondVertex"
	}
	return "State(?)"
}

// Player identifies one of the two players.
type Player int

const (
	// PlayerOne moves first in every game.
	PlayerOne Player = 1
	// PlayerTwo moves after PlayerOne's first edge.
	PlayerTwo Player = 2
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	}
	return ""
}

// Outcome classifies what a SelectVertex call did.
type Outcome int

const (
	// Selected recorded the vertex as the pending selection.
	Selected Outcome = iota
	// Deselected cleared the pending selection because the same vertex was picked twice.
	Deselected
	// EdgeAdded drew a new edge; Triangles holds anything it completed.
	EdgeAdded
	// DuplicateEdge found the edge already drawn; nothing changed but the selection.
	DuplicateEdge
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case EdgeAdded:
		return "edge-added"
	case DuplicateEdge:
		return "duplicate-edge"
	}
	return "outcome(?)"
}

// SelectionResult reports the effect of one SelectVertex call.
//
// Edge and Player are set for EdgeAdded and DuplicateEdge; Player is the
// player who moved. Triangles is non-empty only for EdgeAdded.
type SelectionResult struct {
	Outcome   Outcome
	Vertex    int
	Edge      edgeset.Edge
	Player    Player
	Triangles []triangle.Triangle
}

// EventKind tells listeners which operation ran.
type EventKind int

const (
	// EventSelect follows every successful SelectVertex call.
	EventSelect EventKind = iota
	// EventReset follows every successful Reset.
	EventReset
)

// Event is delivered to listeners after each completed operation.
// Result is zero for EventReset.
type Event struct {
	Kind   EventKind
	Result SelectionResult
}

// Listener receives events synchronously, after the session state is updated.
type Listener func(Event)
