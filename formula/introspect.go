package formula

// LitName reports the variable name of f, if f is a Lit.
func LitName(f Formula) (string, bool) {
	l, ok := f.(litTerm)
	if !ok {
		return "", false
	}
	return l.name, true
}

// NotSub reports the negated subformula of f, if f is a Not.
func NotSub(f Formula) (Formula, bool) {
	n, ok := f.(notTerm)
	if !ok {
		return nil, false
	}
	return n.sub, true
}

// AndChildren reports the conjuncts of f, if f is an And.
func AndChildren(f Formula) ([]Formula, bool) {
	a, ok := f.(andTerm)
	if !ok {
		return nil, false
	}
	return []Formula(a), true
}

// OrChildren reports the disjuncts of f, if f is an Or.
func OrChildren(f Formula) ([]Formula, bool) {
	o, ok := f.(orTerm)
	if !ok {
		return nil, false
	}
	return []Formula(o), true
}
