// SPDX-License-Identifier: MIT

package game

import "github.com/pkg/errors"

// ErrInvalidVertex indicates a vertex ID that does not exist on the board.
// It guards internal consistency; a UI only sends IDs it was given.
var ErrInvalidVertex = errors.New("game: invalid vertex")
