// Package dpll implements the complete clausal decider (component F): unit
// propagation, pure-literal elimination and branching over a CNF clause
// list.
package dpll

import "github.com/jaanos/propsat/formula"

// lit is one occurrence of a variable, positive or negated.
type lit struct {
	name string
	pos  bool
}

// clause is a disjunction of literals.
type clause []lit

// clausesOf decomposes cnf(f) into its clause list. Flatten may have
// already collapsed a singleton Or/And to its sole child, so a formula
// that isn't itself an And is one clause, and a clause that isn't itself
// an Or is one literal.
func clausesOf(f formula.Formula) []clause {
	var forms []formula.Formula
	if children, ok := formula.AndChildren(f); ok {
		forms = children
	} else {
		forms = []formula.Formula{f}
	}
	clauses := make([]clause, len(forms))
	for i, c := range forms {
		clauses[i] = literalsOf(c)
	}
	return clauses
}

func literalsOf(f formula.Formula) clause {
	var lits []formula.Formula
	if children, ok := formula.OrChildren(f); ok {
		lits = children
	} else {
		lits = []formula.Formula{f}
	}
	c := make(clause, len(lits))
	for i, l := range lits {
		c[i] = literalOf(l)
	}
	return c
}

func literalOf(f formula.Formula) lit {
	if name, ok := formula.LitName(f); ok {
		return lit{name: name, pos: true}
	}
	sub, ok := formula.NotSub(f)
	if !ok {
		panic("dpll: clause literal is neither a Lit nor a Not(Lit); input was not in CNF")
	}
	name, ok := formula.LitName(sub)
	if !ok {
		panic("dpll: clause literal is neither a Lit nor a Not(Lit); input was not in CNF")
	}
	return lit{name: name, pos: false}
}

func isTautology(c clause) bool {
	seen := make(map[string]bool, len(c))
	for _, l := range c {
		if v, ok := seen[l.name]; ok && v != l.pos {
			return true
		}
		seen[l.name] = l.pos
	}
	return false
}

// applyAssignment strips satisfied clauses and falsified literals under
// assign. It reports contradiction on an empty clause.
func applyAssignment(clauses []clause, assign map[string]bool) (remaining []clause, contradiction bool) {
	for _, c := range clauses {
		satisfied := false
		var kept clause
		for _, l := range c {
			if v, ok := assign[l.name]; ok {
				if v == l.pos {
					satisfied = true
					break
				}
				continue // falsified literal, drop it
			}
			kept = append(kept, l)
		}
		if satisfied {
			continue
		}
		if len(kept) == 0 {
			return nil, true
		}
		remaining = append(remaining, kept)
	}
	return remaining, false
}
