package peg

import (
	"fmt"

	"github.com/alecthomas/peg/input"
)

// A Rule is a named handle to a parser whose body is assigned separately,
// allowing forward declaration and self-reference. Rule identity (the
// handle's address) keys the activation memo, so grammars must reference a
// rule through a single handle.
//
// Rules support direct left recursion: a body that re-enters its own rule
// at the same input position is evaluated with a seed/grow fixpoint
// instead of diverging. Left recursion that passes through another rule is
// not supported; use Validate to reject such grammars up front.
type Rule[S comparable] struct {
	name string
	body Parser[S]
}

// NewRule creates an empty rule handle. The rule must be given a body with
// Define before it is first invoked.
func NewRule[S comparable](name string) *Rule[S] {
	return &Rule[S]{name: name}
}

// Define assigns the rule's body. Defining a rule twice, or with a nil
// body, is a programmer error and panics.
func (r *Rule[S]) Define(body Parser[S]) *Rule[S] {
	if body == nil {
		panic(fmt.Sprintf("peg: rule %q defined with nil body", r.name))
	}
	if r.body != nil {
		panic(fmt.Sprintf("peg: rule %q already defined", r.name))
	}
	r.body = body
	return r
}

// Name returns the name the rule was created with.
func (r *Rule[S]) Name() string { return r.name }

// State of a rule activation at one input position. Absent from the memo
// means inactive.
type lrState int

const (
	// lrBase: the seed evaluation is on the stack; a re-entry at the same
	// position must fail so the next alternative can be chosen.
	lrBase lrState = iota
	// lrContinuation: a grow iteration is on the stack; a re-entry at the
	// start position succeeds with the best result so far.
	lrContinuation
)

// leftRecursion tracks one rule activation at one start position. It lives
// in the context memo only while that activation is on the call stack.
type leftRecursion[S comparable] struct {
	rule            *Rule[S]
	state           lrState
	startPos        input.Position
	startMatchCount int
	bestEnd         input.Position
	bestMatchCount  int
	// resolved reports whether the current grow alternative consumed the
	// recursion point. Choices reset it per alternative.
	resolved bool
	// reentered reports whether the seed evaluation hit the rule again at
	// the start position. Growing is pointless otherwise.
	reentered bool
}

func (r *Rule[S]) parse(ctx *Context[S]) bool {
	if r.body == nil {
		panic(fmt.Sprintf("peg: rule %q used before Define", r.name))
	}
	pos := ctx.Current()
	if entry := ctx.lrLookup(r, pos); entry != nil {
		switch entry.state {
		case lrBase:
			entry.reentered = true
			ctx.RecordFailure(pos)
			return false
		default: // lrContinuation
			ctx.moveTo(entry.bestEnd)
			entry.resolved = true
			return true
		}
	}

	trace := ctx.logger.IsTrace()
	if trace {
		ctx.logger.Trace("enter", "rule", r.name, "pos", pos, "depth", ctx.depth)
		ctx.depth++
		defer func() { ctx.depth-- }()
	}

	entry := &leftRecursion[S]{
		rule:            r,
		state:           lrBase,
		startPos:        pos,
		startMatchCount: ctx.MatchCount(),
	}
	ctx.lrInsert(r, pos, entry)
	defer ctx.lrRemove(r, pos)

	if !r.body.parse(ctx) {
		if trace {
			ctx.logger.Trace("fail", "rule", r.name, "pos", pos)
		}
		return false
	}
	if ctx.Current().Offset == pos.Offset || !entry.reentered {
		if trace {
			ctx.logger.Trace("match", "rule", r.name, "pos", pos, "end", ctx.Current())
		}
		return true
	}

	// Seed accepted; grow the activation until it stops extending.
	entry.state = lrContinuation
	entry.bestEnd = ctx.Current()
	entry.bestMatchCount = ctx.MatchCount()
	for {
		ctx.moveTo(entry.startPos)
		entry.resolved = false
		if r.body.extend(ctx, entry) && ctx.Current().Offset > entry.bestEnd.Offset {
			entry.bestEnd = ctx.Current()
			entry.bestMatchCount = ctx.MatchCount()
			if trace {
				ctx.logger.Trace("grow", "rule", r.name, "pos", pos, "end", entry.bestEnd)
			}
			continue
		}
		ctx.moveTo(entry.bestEnd)
		ctx.TruncateMatches(entry.bestMatchCount)
		if trace {
			ctx.logger.Trace("match", "rule", r.name, "pos", pos, "end", entry.bestEnd)
		}
		return true
	}
}

// A rule reference inside a grow pass behaves exactly as in a normal pass:
// the memo decides whether it seeds, fails or continues.
func (r *Rule[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool {
	return r.parse(ctx)
}
