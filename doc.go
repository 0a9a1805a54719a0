// Package trivertex is the engine of a two-player vertex-connection puzzle:
// players join points on a fixed lattice, and every triangle they close is
// painted with the color of a hidden image underneath it, until the picture
// shows through.
//
// 🧩 What is inside?
//
//   - grid/     — lattice generation, board geometry, the hidden image (ColorTable)
//   - edgeset/  — undirected unique edges, per-vertex remaining-edge counters
//   - triangle/ — incremental triangle detection and centroid coloring
//   - game/     — the selection state machine, turns, scores, session API
//   - script/   — a small text grammar to replay moves headlessly
//   - cmd/trivertex — command-line driver for scripts
//
// Quick ASCII example (reference 4×4 board, cell size 100):
//
//	0───1        link 0 1, link 1 5, link 5 0
//	│  /         → triangle {0,1,5}, centroid (33,33),
//	│ /            cell (0,0) of the image → red
//	5
//
// Rendering is left to the caller: it sends vertex clicks to game.Session
// and draws the snapshots it gets back.
//
//	go get github.com/katalvlaran/trivertex
package trivertex
