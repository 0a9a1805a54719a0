// SPDX-License-Identifier: MIT

package script

import "github.com/pkg/errors"

var (
	// ErrSyntax indicates the script text does not match the grammar.
	ErrSyntax = errors.New("script: syntax error")
	// ErrBadImage indicates an image block whose color count is not size×size.
	ErrBadImage = errors.New("script: bad image")
	// ErrUnknownCommand indicates a parsed command with no recognized body.
	ErrUnknownCommand = errors.New("script: unknown command")
	// ErrPendingSelection indicates a link issued while a vertex is already
	// selected; its first click would close a different edge.
	ErrPendingSelection = errors.New("script: link with a pending selection")
)
