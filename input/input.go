// Package input provides immutable views over symbol sequences and the
// positions the parsing engine moves through them.
//
// A View wraps a slice of symbols. Positions into a View are cheap value
// types carrying the offset plus line/column bookkeeping; line counting is
// driven by a configurable newline predicate.
package input

import "fmt"

// Position is a cursor into a View.
//
// Positions are totally ordered by Offset. Line and Column are maintained
// incrementally as a position is advanced; a sentinel returned by View.End()
// carries only a meaningful Offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A View is an immutable sequence of symbols with optional line accounting.
type View[S comparable] struct {
	name    string
	symbols []S
	newline func(S) bool
}

// An Option configures a View.
type Option[S comparable] func(v *View[S])

// WithName attaches a name to the view, typically a filename. It is used
// when formatting error positions.
func WithName[S comparable](name string) Option[S] {
	return func(v *View[S]) {
		v.name = name
	}
}

// WithNewline sets the predicate that decides which symbols advance the
// line count.
func WithNewline[S comparable](isNewline func(S) bool) Option[S] {
	return func(v *View[S]) {
		v.newline = isNewline
	}
}

// New creates a View over symbols. The slice must not be mutated while the
// view is in use. Without a newline predicate, Line remains 1 and Column
// tracks the offset.
func New[S comparable](symbols []S, options ...Option[S]) *View[S] {
	v := &View[S]{symbols: symbols}
	for _, option := range options {
		option(v)
	}
	return v
}

// FromString creates a rune View over source with a "\n" newline predicate.
func FromString(source string, options ...Option[rune]) *View[rune] {
	options = append([]Option[rune]{
		WithNewline(func(r rune) bool { return r == '\n' }),
	}, options...)
	return New([]rune(source), options...)
}

// FromBytes creates a byte View over source with a '\n' newline predicate.
func FromBytes(source []byte, options ...Option[byte]) *View[byte] {
	options = append([]Option[byte]{
		WithNewline(func(b byte) bool { return b == '\n' }),
	}, options...)
	return New(source, options...)
}

// Name returns the name given via WithName, or "".
func (v *View[S]) Name() string { return v.name }

// Len returns the number of symbols in the view.
func (v *View[S]) Len() int { return len(v.symbols) }

// Begin returns the position of the first symbol.
func (v *View[S]) Begin() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// End returns the sentinel one past the last symbol. Only its Offset is
// meaningful.
func (v *View[S]) End() Position {
	return Position{Offset: len(v.symbols)}
}

// At returns the symbol under pos, which must precede End().
func (v *View[S]) At(pos Position) S {
	return v.symbols[pos.Offset]
}

// Next returns the position after consuming the symbol at pos. Advancing
// the end sentinel is a no-op.
func (v *View[S]) Next(pos Position) Position {
	if pos.Offset >= len(v.symbols) {
		return pos
	}
	if v.newline != nil && v.newline(v.symbols[pos.Offset]) {
		return Position{Offset: pos.Offset + 1, Line: pos.Line + 1, Column: 1}
	}
	return Position{Offset: pos.Offset + 1, Line: pos.Line, Column: pos.Column + 1}
}

// Slice returns the symbols in [begin, end).
func (v *View[S]) Slice(begin, end Position) []S {
	return v.symbols[begin.Offset:end.Offset]
}
