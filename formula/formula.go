// Package formula implements the propositional formula algebra: an
// immutable tree of Lit/Not/And/Or terms, their total order and hash, and
// the normalizing rewrites (flatten, simplify, cnf, dnf, ncf, apply) the
// rest of the module builds on.
package formula

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jaanos/propsat/errs"
)

// A Formula is any propositional term: Lit, Not, And or Or. Implies and Eq
// and Xor are not distinct variants; they are sugar that builds one of the
// four above.
//
// Formulas are value-semantic and are never mutated after construction;
// every rewrite in this package returns a new tree.
type Formula interface {
	fmt.Stringer

	// kind orders the four variants: Lit < Not < And < Or.
	kind() int
}

const (
	kindLit = iota
	kindNot
	kindAnd
	kindOr
)

var litName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// litTerm is a named boolean variable.
type litTerm struct{ name string }

// Lit builds a named boolean variable. The name must match ^[a-z][a-z0-9]*$;
// any other name is a construction error (panics, since Formula has no
// constructor that can return an error without breaking every other
// constructor's signature).
func Lit(name string) Formula {
	if !litName.MatchString(name) {
		panic(errs.Newf("formula.Lit", "invalid literal name %q: must match %s", name, litName.String()))
	}
	return litTerm{name: name}
}

func (l litTerm) kind() int      { return kindLit }
func (l litTerm) String() string { return l.name }

// notTerm is a negation of a single subformula.
type notTerm struct{ sub Formula }

// Not negates f.
func Not(f Formula) Formula {
	mustFormula(f, "formula.Not")
	return notTerm{sub: f}
}

func (n notTerm) kind() int      { return kindNot }
func (n notTerm) String() string { return "not(" + n.sub.String() + ")" }

// andTerm is a conjunction of zero or more subformulas. The empty andTerm is
// the logical truth T.
type andTerm []Formula

// And builds a conjunction. And() is the logical truth T.
func And(subs ...Formula) Formula {
	for _, s := range subs {
		mustFormula(s, "formula.And")
	}
	return andTerm(subs)
}

// Tru is the logical truth, the empty conjunction.
func Tru() Formula { return andTerm(nil) }

func (a andTerm) kind() int { return kindAnd }
func (a andTerm) String() string {
	if len(a) == 0 {
		return "T"
	}
	parts := make([]string, len(a))
	for i, f := range a {
		parts[i] = f.String()
	}
	return "and(" + strings.Join(parts, ", ") + ")"
}

// orTerm is a disjunction of zero or more subformulas. The empty orTerm is
// the logical falsehood F.
type orTerm []Formula

// Or builds a disjunction. Or() is the logical falsehood F.
func Or(subs ...Formula) Formula {
	for _, s := range subs {
		mustFormula(s, "formula.Or")
	}
	return orTerm(subs)
}

// Fls is the logical falsehood, the empty disjunction.
func Fls() Formula { return orTerm(nil) }

func (o orTerm) kind() int { return kindOr }
func (o orTerm) String() string {
	if len(o) == 0 {
		return "F"
	}
	parts := make([]string, len(o))
	for i, f := range o {
		parts[i] = f.String()
	}
	return "or(" + strings.Join(parts, ", ") + ")"
}

// Implies is stored as Or(Not(p), q): a structural alias, not a distinct
// variant.
func Implies(p, q Formula) Formula {
	mustFormula(p, "formula.Implies")
	mustFormula(q, "formula.Implies")
	return orTerm{notTerm{sub: p}, q}
}

// Eq builds the equivalence of p and q as And(Implies(p,q), Implies(q,p)).
func Eq(p, q Formula) Formula {
	mustFormula(p, "formula.Eq")
	mustFormula(q, "formula.Eq")
	return andTerm{Implies(p, q), Implies(q, p)}
}

// Xor builds the exclusive-or of p and q as
// And(Or(Not(p),Not(q)), Or(p,q)).
func Xor(p, q Formula) Formula {
	mustFormula(p, "formula.Xor")
	mustFormula(q, "formula.Xor")
	return andTerm{
		orTerm{notTerm{sub: p}, notTerm{sub: q}},
		orTerm{p, q},
	}
}

func mustFormula(f Formula, ctx string) {
	if f == nil {
		panic(errs.Newf(ctx, "nil is not a formula"))
	}
}
