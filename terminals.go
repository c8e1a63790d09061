package peg

import "golang.org/x/exp/constraints"

// Symbol matches exactly one symbol equal to sym.
func Symbol[S comparable](sym S) Parser[S] {
	return &symbol[S]{sym: sym}
}

type symbol[S comparable] struct {
	sym S
}

func (p *symbol[S]) parse(ctx *Context[S]) bool {
	if !ctx.AtEnd() && ctx.Symbol() == p.sym {
		ctx.Advance()
		return true
	}
	ctx.RecordFailure(ctx.Current())
	return false
}

func (p *symbol[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool { return p.parse(ctx) }

// Range matches one symbol s with lo <= s <= hi.
func Range[S constraints.Ordered](lo, hi S) Parser[S] {
	return &symbolRange[S]{lo: lo, hi: hi}
}

type symbolRange[S constraints.Ordered] struct {
	lo, hi S
}

func (p *symbolRange[S]) parse(ctx *Context[S]) bool {
	if !ctx.AtEnd() {
		if s := ctx.Symbol(); p.lo <= s && s <= p.hi {
			ctx.Advance()
			return true
		}
	}
	ctx.RecordFailure(ctx.Current())
	return false
}

func (p *symbolRange[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool { return p.parse(ctx) }

// Set matches one symbol contained in syms.
func Set[S comparable](syms ...S) Parser[S] {
	p := &symbolSet[S]{set: make(map[S]struct{}, len(syms))}
	for _, s := range syms {
		p.set[s] = struct{}{}
	}
	return p
}

type symbolSet[S comparable] struct {
	set map[S]struct{}
}

func (p *symbolSet[S]) parse(ctx *Context[S]) bool {
	if !ctx.AtEnd() {
		if _, ok := p.set[ctx.Symbol()]; ok {
			ctx.Advance()
			return true
		}
	}
	ctx.RecordFailure(ctx.Current())
	return false
}

func (p *symbolSet[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool { return p.parse(ctx) }

// Literal matches syms as a contiguous run, consuming all of it or nothing.
func Literal[S comparable](syms ...S) Parser[S] {
	return &literal[S]{syms: syms}
}

// Text matches the runes of text in order. Shorthand for Literal over a
// rune input.
func Text(text string) Parser[rune] {
	return Literal([]rune(text)...)
}

// Rune matches a single rune. Shorthand for Symbol over a rune input.
func Rune(r rune) Parser[rune] {
	return Symbol(r)
}

type literal[S comparable] struct {
	syms []S
}

func (p *literal[S]) parse(ctx *Context[S]) bool {
	cp := ctx.Checkpoint()
	for _, want := range p.syms {
		if ctx.AtEnd() || ctx.Symbol() != want {
			ctx.RecordFailure(ctx.Current())
			ctx.Restore(cp)
			return false
		}
		ctx.Advance()
	}
	return true
}

func (p *literal[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool { return p.parse(ctx) }

// Any matches any single symbol, failing only at end of input.
func Any[S comparable]() Parser[S] {
	return &anySymbol[S]{}
}

type anySymbol[S comparable] struct{}

func (p *anySymbol[S]) parse(ctx *Context[S]) bool {
	if ctx.AtEnd() {
		ctx.RecordFailure(ctx.Current())
		return false
	}
	ctx.Advance()
	return true
}

func (p *anySymbol[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool { return p.parse(ctx) }

// End matches only at end of input, consuming nothing.
func End[S comparable]() Parser[S] {
	return &endOfInput[S]{}
}

type endOfInput[S comparable] struct{}

func (p *endOfInput[S]) parse(ctx *Context[S]) bool {
	if ctx.AtEnd() {
		return true
	}
	ctx.RecordFailure(ctx.Current())
	return false
}

func (p *endOfInput[S]) extend(ctx *Context[S], lr *leftRecursion[S]) bool { return p.parse(ctx) }
