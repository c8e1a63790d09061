// Package peg implements parsing expression grammar combinators with
// support for direct left recursion.
//
// A grammar is a composition of small Parser values. Rules give parsers a
// name and an identity, and may be defined in terms of themselves:
//
//	expr := peg.NewRule[rune]("expr")
//	term := peg.NewRule[rune]("term")
//	digits := peg.Mark(peg.OneOrMore(peg.Range('0', '9')), "num")
//
//	term.Define(digits)
//	expr.Define(peg.Choice(
//	    peg.Mark(peg.Seq[rune](expr, peg.Rune('+'), term), "add"),
//	    term,
//	))
//
//	result := peg.ParseString(expr, "1+2+3")
//
// A rule whose body re-enters the rule at the same position, as "expr"
// does above, is evaluated with a seed/grow fixpoint: the smallest
// non-recursive alternative is accepted first, then the rule is repeatedly
// re-applied to extend the accepted span, yielding the left-associative
// parse that naive recursive descent cannot terminate on. Left recursion
// that travels through more than one rule is not supported; Validate
// rejects it.
//
// Parsers do not build an AST. Instead, Mark appends tagged spans to a
// flat match log as the grammar commits to them, and Tree (or the caller)
// folds that log into a tree afterwards. On failure, Result carries the
// furthest input position any parser failed at, with line and column.
package peg
