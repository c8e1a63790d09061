package peg

import (
	"fmt"
	"sort"
	"strings"
)

// String renders parsers in a PEG-like notation. Rules print as their name
// only, which also keeps rendering finite on cyclic grammars.

func (p *symbol[S]) String() string      { return symString(p.sym) }
func (p *symbolRange[S]) String() string { return symString(p.lo) + ".." + symString(p.hi) }

func (p *symbolSet[S]) String() string {
	parts := make([]string, 0, len(p.set))
	for s := range p.set {
		parts = append(parts, symString(s))
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, " ") + "]"
}

func (p *literal[S]) String() string {
	if rs, ok := any(p.syms).([]rune); ok {
		return fmt.Sprintf("%q", string(rs))
	}
	parts := make([]string, len(p.syms))
	for i, s := range p.syms {
		parts[i] = symString(s)
	}
	return strings.Join(parts, " ")
}

func (p *anySymbol[S]) String() string  { return "." }
func (p *endOfInput[S]) String() string { return "EOF" }
func (f *funcParser[S]) String() string { return "<func>" }

func (p *sequence[S]) String() string {
	return "(" + joinNodes(p.nodes, " ") + ")"
}

func (p *disjunction[S]) String() string {
	return "(" + joinNodes(p.nodes, " | ") + ")"
}

func (p *repetition[S]) String() string {
	if p.atLeastOne {
		return p.node.String() + "+"
	}
	return p.node.String() + "*"
}

func (p *optional[S]) String() string  { return p.node.String() + "?" }
func (p *lookahead[S]) String() string { return "&" + p.node.String() }
func (p *negation[S]) String() string  { return "!" + p.node.String() }

func (p *mark[S]) String() string {
	return fmt.Sprintf("%s:%v", p.node, p.id)
}

func (r *Rule[S]) String() string { return r.name }

func joinNodes[S comparable](nodes []Parser[S], sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}

func symString(sym any) string {
	switch s := sym.(type) {
	case rune:
		return fmt.Sprintf("%q", s)
	case byte:
		return fmt.Sprintf("%q", s)
	case string:
		return fmt.Sprintf("%q", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
