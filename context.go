package peg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/alecthomas/peg/input"
)

// A Match records that a marked parser succeeded over [Begin, End).
//
// Matches form a flat append-only log. ChildCount is the number of log
// records immediately preceding this one that belong to this match's
// subtree; nesting is implicit and recovered by Tree().
type Match struct {
	ID         any
	Begin      input.Position
	End        input.Position
	ChildCount int
}

// Context for a single parse.
//
// It carries the current position, the match log, the furthest failure
// position and the per-rule activation memo. A Context is exclusively owned
// by one parse and must not be shared across goroutines.
type Context[S comparable] struct {
	view     *input.View[S]
	pos      input.Position
	matches  []Match
	furthest input.Position
	lr       map[lrKey[S]]*leftRecursion[S]
	logger   hclog.Logger
	depth    int
}

// A Checkpoint is an opaque snapshot of position and match log length.
type Checkpoint struct {
	pos     input.Position
	matches int
}

func newContext[S comparable](view *input.View[S], config *parseConfig) *Context[S] {
	ctx := &Context[S]{
		view:     view,
		pos:      view.Begin(),
		furthest: view.Begin(),
		logger:   config.logger,
	}
	if config.logCapacity > 0 {
		ctx.matches = make([]Match, 0, config.logCapacity)
	}
	return ctx
}

// View returns the input view being parsed.
func (c *Context[S]) View() *input.View[S] { return c.view }

// Current returns the current position.
func (c *Context[S]) Current() input.Position { return c.pos }

// AtEnd reports whether the cursor has consumed all input.
func (c *Context[S]) AtEnd() bool { return c.pos.Offset >= c.view.Len() }

// Symbol returns the symbol under the cursor. Only valid when !AtEnd().
func (c *Context[S]) Symbol() S { return c.view.At(c.pos) }

// Advance consumes one symbol.
func (c *Context[S]) Advance() { c.pos = c.view.Next(c.pos) }

// Checkpoint snapshots the current position and match log length.
func (c *Context[S]) Checkpoint() Checkpoint {
	return Checkpoint{pos: c.pos, matches: len(c.matches)}
}

// Restore rewinds position and match log to cp. The furthest failure
// position is deliberately not rewound.
func (c *Context[S]) Restore(cp Checkpoint) {
	c.pos = cp.pos
	c.matches = c.matches[:cp.matches]
}

// AppendMatch appends a match record and returns the new log length.
func (c *Context[S]) AppendMatch(id any, begin, end input.Position, childCount int) int {
	c.matches = append(c.matches, Match{ID: id, Begin: begin, End: end, ChildCount: childCount})
	return len(c.matches)
}

// MatchCount returns the current match log length.
func (c *Context[S]) MatchCount() int { return len(c.matches) }

// TruncateMatches drops trailing match records beyond n.
func (c *Context[S]) TruncateMatches(n int) {
	c.matches = c.matches[:n]
}

// RecordFailure advances the furthest failure position to pos if pos is
// further right. It never moves backwards.
func (c *Context[S]) RecordFailure(pos input.Position) {
	if pos.Offset > c.furthest.Offset {
		c.furthest = pos
	}
}

// moveTo repositions the cursor without touching the match log.
func (c *Context[S]) moveTo(pos input.Position) { c.pos = pos }

type lrKey[S comparable] struct {
	rule   *Rule[S]
	offset int
}

func (c *Context[S]) lrLookup(rule *Rule[S], pos input.Position) *leftRecursion[S] {
	return c.lr[lrKey[S]{rule: rule, offset: pos.Offset}]
}

func (c *Context[S]) lrInsert(rule *Rule[S], pos input.Position, entry *leftRecursion[S]) {
	if c.lr == nil {
		c.lr = map[lrKey[S]]*leftRecursion[S]{}
	}
	c.lr[lrKey[S]{rule: rule, offset: pos.Offset}] = entry
}

func (c *Context[S]) lrRemove(rule *Rule[S], pos input.Position) {
	delete(c.lr, lrKey[S]{rule: rule, offset: pos.Offset})
}
