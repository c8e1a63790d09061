// pegcalc parses arithmetic expressions with a left-recursive grammar and
// prints the resulting match tree.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/hashicorp/go-hclog"

	"github.com/alecthomas/peg"
	"github.com/alecthomas/peg/input"
)

var cli struct {
	Trace   bool   `help:"Trace rule evaluation to stderr."`
	Partial bool   `help:"Allow trailing unparsed input."`
	Raw     bool   `help:"Dump the flat match log instead of the tree."`
	Expr    string `arg:"" help:"Arithmetic expression, e.g. '(1+2)*3'."`
}

// expr   <- expr '+' term / expr '-' term / term
// term   <- term '*' factor / term '/' factor / factor
// factor <- digit+ / '(' expr ')'
func grammar() *peg.Rule[rune] {
	expr := peg.NewRule[rune]("expr")
	term := peg.NewRule[rune]("term")
	factor := peg.NewRule[rune]("factor")

	digits := peg.Mark(peg.OneOrMore(peg.Range('0', '9')), "num")
	factor.Define(peg.Choice(
		digits,
		peg.Mark(peg.Seq[rune](peg.Rune('('), expr, peg.Rune(')')), "group"),
	))
	term.Define(peg.Choice[rune](
		peg.Mark(peg.Seq[rune](term, peg.Rune('*'), factor), "mul"),
		peg.Mark(peg.Seq[rune](term, peg.Rune('/'), factor), "div"),
		factor,
	))
	expr.Define(peg.Choice[rune](
		peg.Mark(peg.Seq[rune](expr, peg.Rune('+'), term), "add"),
		peg.Mark(peg.Seq[rune](expr, peg.Rune('-'), term), "sub"),
		term,
	))
	return expr
}

func main() {
	kctx := kong.Parse(&cli, kong.Description(`Parse arithmetic expressions with a left-recursive PEG.`))
	kctx.FatalIfErrorf(run())
}

func run() error {
	options := []peg.ParseOption{peg.WithLogCapacity(len(cli.Expr))}
	if cli.Partial {
		options = append(options, peg.AllowPartial())
	}
	if cli.Trace {
		options = append(options, peg.WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:   "pegcalc",
			Level:  hclog.Trace,
			Output: os.Stderr,
		})))
	}

	view := input.FromString(cli.Expr, input.WithName[rune]("expr"))
	result := peg.Parse[rune](grammar(), view, options...)
	if err := result.Err(); err != nil {
		return err
	}

	if cli.Raw {
		repr.Println(result.Matches)
		return nil
	}
	roots, err := peg.Tree(result.Matches)
	if err != nil {
		return err
	}
	for _, root := range roots {
		dump(view, root, 0)
	}
	return nil
}

func dump(view *input.View[rune], node *peg.Node, indent int) {
	fmt.Printf("%*s%v %q\n", indent*2, "", node.ID, string(view.Slice(node.Begin, node.End)))
	for _, child := range node.Children {
		dump(view, child, indent+1)
	}
}
