package cubesim

import "errors"

// Sentinel errors for the cubesim package. All fallible operations live in
// the move grammar; the geometric core has no failure paths.
var (
	// ErrEmptyToken indicates an empty move token.
	ErrEmptyToken = errors.New("cubesim: empty move token")
	// ErrUnknownMove indicates the move part of a token matched no known move.
	ErrUnknownMove = errors.New("cubesim: unknown move")
	// ErrUnknownTurn indicates the turn suffix matched no known modifier.
	ErrUnknownTurn = errors.New("cubesim: unknown turn modifier")
)
