package peg_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/peg"
	"github.com/alecthomas/peg/input"
)

func intView(symbols ...int) *input.View[int] {
	return input.New(symbols)
}

// calculator builds the classic left-recursive arithmetic grammar:
//
//	expr   <- expr '+' term / expr '-' term / term
//	term   <- term '*' factor / term '/' factor / factor
//	factor <- digit+ / '(' expr ')'
//
// Every rule body and every digit is marked with the rule's name.
func calculator() *peg.Rule[rune] {
	expr := peg.NewRule[rune]("expr")
	term := peg.NewRule[rune]("term")
	factor := peg.NewRule[rune]("factor")

	digit := peg.Mark(peg.Range('0', '9'), "digit")
	factor.Define(peg.Mark(peg.Choice[rune](
		peg.OneOrMore(digit),
		peg.Seq[rune](peg.Rune('('), expr, peg.Rune(')')),
	), "factor"))
	term.Define(peg.Mark(peg.Choice[rune](
		peg.Seq[rune](term, peg.Rune('*'), factor),
		peg.Seq[rune](term, peg.Rune('/'), factor),
		factor,
	), "term"))
	expr.Define(peg.Mark(peg.Choice[rune](
		peg.Seq[rune](expr, peg.Rune('+'), term),
		peg.Seq[rune](expr, peg.Rune('-'), term),
		term,
	), "expr"))
	return expr
}

// sexpr renders a match forest as id[begin:end](children...) for compact
// structural assertions.
func sexpr(t *testing.T, matches []peg.Match) string {
	t.Helper()
	roots, err := peg.Tree(matches)
	require.NoError(t, err)
	parts := make([]string, len(roots))
	for i, root := range roots {
		parts[i] = nodeString(root)
	}
	return strings.Join(parts, " ")
}

func nodeString(n *peg.Node) string {
	out := fmt.Sprintf("%v[%d:%d]", n.ID, n.Begin.Offset, n.End.Offset)
	if len(n.Children) == 0 {
		return out
	}
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = nodeString(child)
	}
	return out + "(" + strings.Join(parts, " ") + ")"
}
