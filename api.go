package peg

import (
	"github.com/alecthomas/peg/input"
)

// Result is the outcome of a parse.
type Result struct {
	// OK reports whether the root parser succeeded (and, unless
	// AllowPartial was given, consumed the whole input).
	OK bool
	// End is the position after the last consumed symbol.
	End input.Position
	// FurthestFailure is the rightmost position at which any attempted
	// parser failed; the usual heuristic for where the error is.
	FurthestFailure input.Position
	// Matches is the flat match log in append order. On failure it holds
	// the matches of the last committed partial parse, if any.
	Matches []Match

	name string
}

// Err returns nil if the parse succeeded, or a positional *Error.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &Error{Name: r.name, Pos: r.FurthestFailure, Msg: "syntax error"}
}

// Parse runs root over view and reports the outcome.
//
// By default the whole input must be consumed for the parse to be
// considered successful; see AllowPartial. The view is not mutated and the
// returned match log aliases no engine state.
func Parse[S comparable](root Parser[S], view *input.View[S], options ...ParseOption) Result {
	config := newParseConfig(options)
	ctx := newContext(view, config)
	ok := root.parse(ctx)
	if ok && config.requireFull && !ctx.AtEnd() {
		ctx.RecordFailure(ctx.Current())
		ok = false
	}
	return Result{
		OK:              ok,
		End:             ctx.pos,
		FurthestFailure: ctx.furthest,
		Matches:         ctx.matches,
		name:            view.Name(),
	}
}

// ParseString parses source as a sequence of runes.
func ParseString(root Parser[rune], source string, options ...ParseOption) Result {
	return Parse(root, input.FromString(source), options...)
}
