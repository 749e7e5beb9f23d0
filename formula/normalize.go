package formula

// Flatten hoists nested same-kind commutative operators (And inside And, Or
// inside Or), collapses singletons, and folds an And containing an empty Or
// to F and an Or containing an empty And to T.
func Flatten(f Formula) Formula {
	switch t := f.(type) {
	case litTerm:
		return t
	case notTerm:
		return notTerm{sub: Flatten(t.sub)}
	case andTerm:
		return flattenAssoc(t, true)
	case orTerm:
		return flattenAssoc(t, false)
	default:
		panic("formula: unknown Formula implementation")
	}
}

func flattenAssoc(children []Formula, isAnd bool) Formula {
	var flat []Formula
	for _, x := range children {
		fx := Flatten(x)
		if sub, ok := matchAssocKind(fx, isAnd); ok {
			flat = append(flat, sub...)
			continue
		}
		if sub, ok := matchAssocKind(fx, !isAnd); ok && len(sub) == 0 {
			// An empty Or inside an And is F; an empty And inside an Or is T.
			if isAnd {
				return Fls()
			}
			return Tru()
		}
		flat = append(flat, fx)
	}
	if len(flat) == 0 {
		return buildAssoc(nil, isAnd)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return buildAssoc(flat, isAnd)
}

func matchAssocKind(f Formula, isAnd bool) ([]Formula, bool) {
	if isAnd {
		a, ok := f.(andTerm)
		return []Formula(a), ok
	}
	o, ok := f.(orTerm)
	return []Formula(o), ok
}

func buildAssoc(children []Formula, isAnd bool) Formula {
	if isAnd {
		return andTerm(children)
	}
	return orTerm(children)
}

func assocChildren(f Formula) []Formula {
	switch t := f.(type) {
	case andTerm:
		return []Formula(t)
	case orTerm:
		return []Formula(t)
	default:
		return nil
	}
}

func containsFormula(list []Formula, needle Formula) bool {
	for _, x := range list {
		if Equal(x, needle) {
			return true
		}
	}
	return false
}

// Simplify applies Flatten, pushes Not through And/Or by De Morgan, cancels
// double negation, deduplicates children (set semantics), applies
// absorption (x ∧ (x ∨ y) = x, dually) and reduction (x ∧ (¬x ∨ y) = x ∧ y,
// dually), collapses contradictions to F and tautologies to T, and sorts
// children by the total order. Simplify is idempotent and preserves
// equivalence.
func Simplify(f Formula) Formula {
	switch t := f.(type) {
	case litTerm:
		return t
	case notTerm:
		return simplifyNot(t.sub)
	case andTerm:
		return simplifyAssoc(t, true)
	case orTerm:
		return simplifyAssoc(t, false)
	default:
		panic("formula: unknown Formula implementation")
	}
}

func simplifyNot(sub Formula) Formula {
	switch s := Simplify(sub).(type) {
	case notTerm:
		return s.sub // double negation cancels
	case andTerm:
		negs := make([]Formula, len(s))
		for i, x := range s {
			negs[i] = Not(x)
		}
		return simplifyAssoc(negs, false) // De Morgan: ¬(x∧y) = ¬x∨¬y
	case orTerm:
		negs := make([]Formula, len(s))
		for i, x := range s {
			negs[i] = Not(x)
		}
		return simplifyAssoc(negs, true) // De Morgan: ¬(x∨y) = ¬x∧¬y
	default:
		return notTerm{sub: s}
	}
}

func simplifyAssoc(children []Formula, isAnd bool) Formula {
	var flat []Formula
	for _, x := range children {
		sx := Simplify(x)
		if sub, ok := matchAssocKind(sx, isAnd); ok {
			flat = append(flat, sub...)
			continue
		}
		flat = append(flat, sx)
	}
	// The empty-disjunct/empty-conjunct short-circuit must run before
	// dedup/sort.
	for _, x := range flat {
		if sub, ok := matchAssocKind(x, !isAnd); ok && len(sub) == 0 {
			if isAnd {
				return Fls()
			}
			return Tru()
		}
	}
	if len(flat) == 0 {
		return buildAssoc(nil, isAnd)
	}
	if len(flat) == 1 {
		return flat[0]
	}

	set := newFormulaSet(flat)
	absorb(set, isAnd)
	reduce(set, isAnd)
	if hasContradiction(set) {
		if isAnd {
			return Fls()
		}
		return Tru()
	}

	result := set.sortedList()
	if len(result) == 0 {
		return buildAssoc(nil, isAnd)
	}
	if len(result) == 1 {
		return result[0]
	}
	return buildAssoc(result, isAnd)
}

// absorb removes, from an And's conjunct set, any Or conjunct one of whose
// disjuncts is itself a conjunct (x ∧ (x ∨ y) = x); dually for Or.
func absorb(set *formulaSet, isAnd bool) {
	otherKind := kindOr
	if !isAnd {
		otherKind = kindAnd
	}
	for _, key := range set.keys() {
		x, ok := set.get(key)
		if !ok || x.kind() != otherKind {
			continue
		}
		for _, yk := range set.keys() {
			if yk == key {
				continue
			}
			y, ok := set.get(yk)
			if ok && containsFormula(assocChildren(x), y) {
				set.delete(key)
				break
			}
		}
	}
}

// reduce strips, from each remaining opposite-kind element's children, any
// child whose negation is itself a sibling element (x ∧ (¬x ∨ y) = x ∧ y);
// dually for Or.
func reduce(set *formulaSet, isAnd bool) {
	otherKind := kindOr
	if !isAnd {
		otherKind = kindAnd
	}
	for _, key := range set.keys() {
		x, ok := set.get(key)
		if !ok || x.kind() != otherKind {
			continue
		}
		var kept []Formula
		changed := false
		for _, c := range assocChildren(x) {
			if n, ok := c.(notTerm); ok && set.contains(n.sub) {
				changed = true
				continue
			}
			if set.contains(Not(c)) {
				changed = true
				continue
			}
			kept = append(kept, c)
		}
		if changed {
			set.delete(key)
			set.add(Simplify(buildAssoc(kept, !isAnd)))
		}
	}
}

func hasContradiction(set *formulaSet) bool {
	for _, key := range set.keys() {
		x, ok := set.get(key)
		if !ok {
			continue
		}
		if n, ok := x.(notTerm); ok && set.contains(n.sub) {
			return true
		}
	}
	return false
}

// Cnf converts f to a conjunction of disjunctions by repeated distribution,
// flattening after. Negations are pushed to literals first (via Simplify)
// so every clause is a disjunction of literals, not of arbitrary subterms.
func Cnf(f Formula) Formula {
	return Flatten(cnfRec(Simplify(f)))
}

func cnfRec(f Formula) Formula {
	switch t := f.(type) {
	case litTerm:
		return t
	case notTerm:
		return t
	case andTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = cnfRec(x)
		}
		return buildAssoc(children, true)
	case orTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = cnfRec(x)
		}
		return distribute(children, true)
	default:
		panic("formula: unknown Formula implementation")
	}
}

// Dnf is the dual of Cnf.
func Dnf(f Formula) Formula {
	return Flatten(dnfRec(Simplify(f)))
}

func dnfRec(f Formula) Formula {
	switch t := f.(type) {
	case litTerm:
		return t
	case notTerm:
		return t
	case orTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = dnfRec(x)
		}
		return buildAssoc(children, false)
	case andTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = dnfRec(x)
		}
		return distribute(children, false)
	default:
		panic("formula: unknown Formula implementation")
	}
}

// distribute builds the CNF distribution of an Or over its already-converted
// parts, or the DNF distribution of an And (its dual).
// outerIsAnd selects which of the two kinds is being distributed away:
// outerIsAnd=true means we're turning Or(And(..), ..) into And(Or(..), ..)
// (CNF); outerIsAnd=false is the dual (DNF).
func distribute(parts []Formula, outerIsAnd bool) Formula {
	if len(parts) == 0 {
		return buildAssoc(nil, !outerIsAnd)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	acc := parts[0]
	for _, p := range parts[1:] {
		acc = distributePair(acc, p, outerIsAnd)
	}
	return acc
}

func distributePair(a, b Formula, outerIsAnd bool) Formula {
	if sub, ok := matchAssocKind(a, outerIsAnd); ok {
		clauses := make([]Formula, len(sub))
		for i, x := range sub {
			clauses[i] = distributePair(x, b, outerIsAnd)
		}
		return Flatten(buildAssoc(clauses, outerIsAnd))
	}
	if sub, ok := matchAssocKind(b, outerIsAnd); ok {
		clauses := make([]Formula, len(sub))
		for i, y := range sub {
			clauses[i] = distributePair(a, y, outerIsAnd)
		}
		return Flatten(buildAssoc(clauses, outerIsAnd))
	}
	return Flatten(buildAssoc([]Formula{a, b}, !outerIsAnd))
}

// Ncf converts f to Negation-and-Conjunction Form, a formula using only
// Lit, Not and And: Or(x1,...,xn) becomes Not(And(Not(x1).ncf(), ...)), and
// Not(Not(x)) cancels.
func Ncf(f Formula) Formula {
	switch t := f.(type) {
	case litTerm:
		return t
	case notTerm:
		return ncfNot(t.sub)
	case andTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = Ncf(x)
		}
		return andTerm(children)
	case orTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = ncfNot(x)
		}
		return notTerm{sub: andTerm(children)}
	default:
		panic("formula: unknown Formula implementation")
	}
}

// ncfNot computes Ncf(Not(f)) without constructing the intermediate Not
// term, mirroring Not.ncf() in the distilled source.
func ncfNot(f Formula) Formula {
	switch t := f.(type) {
	case notTerm:
		return Ncf(t.sub)
	case orTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = ncfNot(x)
		}
		return andTerm(children)
	default:
		return notTerm{sub: Ncf(t)}
	}
}

// Subst maps a literal name to one of: bool (fix its value), string (rename
// the variable), or Formula (replace it by a subformula).
type Subst map[string]interface{}

// Apply substitutes every literal named in sigma, then simplifies (spec
// §4.1).
func Apply(f Formula, sigma Subst) Formula {
	switch t := f.(type) {
	case litTerm:
		v, ok := sigma[t.name]
		if !ok {
			return t
		}
		switch v := v.(type) {
		case bool:
			if v {
				return Tru()
			}
			return Fls()
		case string:
			return Lit(v)
		case Formula:
			return Simplify(v)
		default:
			panic("formula.Apply: substitution value must be bool, string or Formula")
		}
	case notTerm:
		return Simplify(Not(Apply(t.sub, sigma)))
	case andTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = Apply(x, sigma)
		}
		return Simplify(andTerm(children))
	case orTerm:
		children := make([]Formula, len(t))
		for i, x := range t {
			children[i] = Apply(x, sigma)
		}
		return Simplify(orTerm(children))
	default:
		panic("formula: unknown Formula implementation")
	}
}
