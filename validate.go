package peg

import "fmt"

// Validate checks a grammar for problems the engine cannot recover from at
// parse time: rules without bodies, and left recursion that passes through
// more than one rule. Direct self-recursion is fine and is what the engine
// is built for; indirect left recursion is rejected rather than silently
// misparsed.
//
// All rules reachable from the given roots are checked. Reachability is
// computed through leftmost elements only, so a cycle reachable solely via
// a nullable first element may go undetected.
func Validate[S comparable](rules ...*Rule[S]) error {
	const (
		unvisited = iota
		active
		done
	)
	state := map[*Rule[S]]int{}
	var path []*Rule[S]
	var visit func(rule *Rule[S]) error
	visit = func(rule *Rule[S]) error {
		if rule.body == nil {
			return fmt.Errorf("peg: rule %q has no body", rule.name)
		}
		state[rule] = active
		path = append(path, rule)
		var callees []*Rule[S]
		leftEdge(rule.body, map[Parser[S]]bool{}, func(callee *Rule[S]) {
			callees = append(callees, callee)
		})
		for _, callee := range callees {
			switch state[callee] {
			case active:
				if callee == rule {
					continue // direct self-recursion
				}
				return fmt.Errorf("peg: indirect left recursion through rules %s", cycleString(path, callee))
			case unvisited:
				if err := visit(callee); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		state[rule] = done
		return nil
	}
	for _, rule := range rules {
		if state[rule] == unvisited {
			if err := visit(rule); err != nil {
				return err
			}
		}
	}
	return nil
}

// leftEdge visits the rules a parser may invoke before consuming any
// input. Only the first element of a sequence is considered.
func leftEdge[S comparable](p Parser[S], seen map[Parser[S]]bool, visit func(*Rule[S])) {
	if seen[p] {
		return
	}
	seen[p] = true
	switch n := p.(type) {
	case *Rule[S]:
		visit(n)
	case *sequence[S]:
		if len(n.nodes) > 0 {
			leftEdge(n.nodes[0], seen, visit)
		}
	case *disjunction[S]:
		for _, child := range n.nodes {
			leftEdge(child, seen, visit)
		}
	case *repetition[S]:
		leftEdge(n.node, seen, visit)
	case *optional[S]:
		leftEdge(n.node, seen, visit)
	case *lookahead[S]:
		leftEdge(n.node, seen, visit)
	case *negation[S]:
		leftEdge(n.node, seen, visit)
	case *mark[S]:
		leftEdge(n.node, seen, visit)
	}
}

func cycleString[S comparable](path []*Rule[S], to *Rule[S]) string {
	out := ""
	for i := len(path) - 1; i >= 0; i-- {
		out = path[i].name + " -> " + out
		if path[i] == to {
			break
		}
	}
	return out + to.name
}
