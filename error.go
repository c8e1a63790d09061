package peg

import (
	"fmt"

	"github.com/alecthomas/peg/input"
)

// Error is a positional parse error.
//
// Parse failure inside the engine is a non-exceptional, backtrackable
// outcome; an Error is only materialised at the driver boundary, via
// Result.Err.
type Error struct {
	// Name of the input view, if any.
	Name string
	// Pos is the furthest failure position.
	Pos input.Position
	Msg string
}

// Message returns the unadorned message.
func (e *Error) Message() string { return e.Msg }

// Position returns the position the error occurred at.
func (e *Error) Position() input.Position { return e.Pos }

func (e *Error) Error() string {
	name := e.Name
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%s: %s", name, e.Pos, e.Msg)
}
