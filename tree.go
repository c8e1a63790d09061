package peg

import (
	"fmt"

	"github.com/alecthomas/peg/input"
)

// A Node is one reconstructed parse tree node.
type Node struct {
	ID       any
	Begin    input.Position
	End      input.Position
	Children []*Node
}

// Tree folds a flat match log into a forest.
//
// The log is processed right to left: each record owns the ChildCount
// records immediately preceding it as its subtree, within which direct
// children are recovered the same way. An error is returned if the counts
// do not tile the log exactly.
func Tree(matches []Match) ([]*Node, error) {
	var roots []*Node
	for i := len(matches) - 1; i >= 0; {
		node, consumed, err := buildNode(matches, i)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
		i -= consumed
	}
	reverse(roots)
	return roots, nil
}

func buildNode(matches []Match, i int) (*Node, int, error) {
	m := matches[i]
	node := &Node{ID: m.ID, Begin: m.Begin, End: m.End}
	need := m.ChildCount
	j := i - 1
	for need > 0 {
		if j < 0 {
			return nil, 0, fmt.Errorf("peg: match %d (%v) claims %d preceding records, log has %d", i, m.ID, m.ChildCount, i)
		}
		child, consumed, err := buildNode(matches, j)
		if err != nil {
			return nil, 0, err
		}
		if consumed > need {
			return nil, 0, fmt.Errorf("peg: match %d (%v) splits the subtree of match %d (%v)", i, m.ID, j, matches[j].ID)
		}
		node.Children = append(node.Children, child)
		need -= consumed
		j -= consumed
	}
	reverse(node.Children)
	return node, i - j, nil
}

func reverse(nodes []*Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
