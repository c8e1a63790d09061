package peg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/peg"
)

func TestLeftRecursionAssociatesLeft(t *testing.T) {
	result := peg.ParseString(calculator(), "1+2+3")
	require.True(t, result.OK)
	require.Equal(t, 5, result.End.Offset)
	assert.Equal(t,
		"expr[0:5]("+
			"expr[0:3]("+
			"expr[0:1](term[0:1](factor[0:1](digit[0:1]))) "+
			"term[2:3](factor[2:3](digit[2:3]))) "+
			"term[4:5](factor[4:5](digit[4:5])))",
		sexpr(t, result.Matches))
}

func TestLeftRecursionSingleSeed(t *testing.T) {
	result := peg.ParseString(calculator(), "1")
	require.True(t, result.OK)
	assert.Equal(t,
		"expr[0:1](term[0:1](factor[0:1](digit[0:1])))",
		sexpr(t, result.Matches))
}

func TestLeftRecursionSimpleAddition(t *testing.T) {
	result := peg.ParseString(calculator(), "1+2")
	require.True(t, result.OK)
	assert.Equal(t,
		"expr[0:3]("+
			"expr[0:1](term[0:1](factor[0:1](digit[0:1]))) "+
			"term[2:3](factor[2:3](digit[2:3])))",
		sexpr(t, result.Matches))
}

func TestLeftRecursionPrecedence(t *testing.T) {
	result := peg.ParseString(calculator(), "(1+2)*3")
	require.True(t, result.OK)
	assert.Equal(t,
		"expr[0:7](term[0:7]("+
			"term[0:5](factor[0:5]("+
			"expr[1:4]("+
			"expr[1:2](term[1:2](factor[1:2](digit[1:2]))) "+
			"term[3:4](factor[3:4](digit[3:4]))))) "+
			"factor[6:7](digit[6:7])))",
		sexpr(t, result.Matches))
}

func TestLeftRecursionDigitRun(t *testing.T) {
	result := peg.ParseString(calculator(), "12345")
	require.True(t, result.OK)
	assert.Equal(t,
		"expr[0:5](term[0:5](factor[0:5]("+
			"digit[0:1] digit[1:2] digit[2:3] digit[3:4] digit[4:5])))",
		sexpr(t, result.Matches))
}

func TestLeftRecursionNestedParens(t *testing.T) {
	result := peg.ParseString(calculator(), "((1))")
	require.True(t, result.OK)
	assert.Equal(t,
		"expr[0:5](term[0:5](factor[0:5]("+
			"expr[1:4](term[1:4](factor[1:4]("+
			"expr[2:3](term[2:3](factor[2:3](digit[2:3])))))))))",
		sexpr(t, result.Matches))
}

func TestLeftRecursionIncompleteInput(t *testing.T) {
	result := peg.ParseString(calculator(), "1+")
	require.False(t, result.OK)
	// The grow pass consumed "1+" before failing on the missing term.
	assert.Equal(t, 2, result.FurthestFailure.Offset)
	// The committed parse stops after "1".
	assert.Equal(t, 1, result.End.Offset)
}

func TestLeftRecursionMixedOperators(t *testing.T) {
	result := peg.ParseString(calculator(), "1+2*3-4")
	require.True(t, result.OK)
	// "-" binds last: ((1+(2*3))-4).
	assert.Equal(t,
		"expr[0:7]("+
			"expr[0:5]("+
			"expr[0:1](term[0:1](factor[0:1](digit[0:1]))) "+
			"term[2:5]("+
			"term[2:3](factor[2:3](digit[2:3])) "+
			"factor[4:5](digit[4:5]))) "+
			"term[6:7](factor[6:7](digit[6:7])))",
		sexpr(t, result.Matches))
}

func TestSelfChoiceTerminates(t *testing.T) {
	loop := peg.NewRule[rune]("loop")
	loop.Define(peg.Choice[rune](loop, peg.Rune('x')))
	result := peg.ParseString(loop, "x")
	require.True(t, result.OK)
	assert.Equal(t, 1, result.End.Offset)
}

func TestZeroWidthRuleSuccess(t *testing.T) {
	opt := peg.NewRule[rune]("opt")
	opt.Define(peg.Optional(peg.Rune('x')))
	result := peg.ParseString(opt, "")
	assert.True(t, result.OK)
}

func TestLeftRecursiveListGrammar(t *testing.T) {
	// list <- list ',' item / item
	list := peg.NewRule[rune]("list")
	item := peg.Mark(peg.OneOrMore(peg.Range('a', 'z')), "item")
	list.Define(peg.Mark(peg.Choice[rune](
		peg.Seq[rune](list, peg.Rune(','), item),
		item,
	), "list"))

	result := peg.ParseString(list, "ab,c,def")
	require.True(t, result.OK)
	assert.Equal(t,
		"list[0:8]("+
			"list[0:4](list[0:2](item[0:2]) item[3:4]) "+
			"item[5:8])",
		sexpr(t, result.Matches))
}

func TestRulePanicsWithoutBody(t *testing.T) {
	empty := peg.NewRule[rune]("empty")
	assert.Panics(t, func() { peg.ParseString(empty, "x") })
}

func TestRulePanicsOnRedefine(t *testing.T) {
	r := peg.NewRule[rune]("r")
	r.Define(peg.Rune('x'))
	assert.Panics(t, func() { r.Define(peg.Rune('y')) })
}

func TestRuleName(t *testing.T) {
	assert.Equal(t, "expr", peg.NewRule[rune]("expr").Name())
}
