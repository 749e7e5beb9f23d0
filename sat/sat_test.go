package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jaanos/propsat/formula"
	"github.com/jaanos/propsat/tracelog"
)

func a(name string) formula.Formula { return formula.Lit(name) }

func satisfies(f formula.Formula, assign map[string]bool) bool {
	return formula.Eval(f, assign)
}

func TestSolveImplication(t *testing.T) {
	// sat(Implies("a","b")) never returns false.
	f := formula.Implies(a("a"), a("b"))
	res := Solve(f, tracelog.Discard())
	if res.Unknown {
		return
	}
	if !res.Satisfiable {
		t.Fatalf("Implies(a,b) must be satisfiable")
	}
	if !satisfies(f, res.Assignment) {
		t.Fatalf("returned assignment %v does not satisfy %v", res.Assignment, f)
	}
}

func TestSolveConjunction(t *testing.T) {
	f := formula.And(a("a"), a("b"))
	res := Solve(f, tracelog.Discard())
	if res.Unknown || !res.Satisfiable {
		t.Fatalf("And(a,b) should be decided satisfiable, got %+v", res)
	}
	want := map[string]bool{"a": true, "b": true}
	if diff := cmp.Diff(want, res.Assignment); diff != "" {
		t.Fatalf("assignment mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveContradiction(t *testing.T) {
	f := formula.And(a("a"), formula.Not(a("a")))
	res := Solve(f, tracelog.Discard())
	if res.Unknown || res.Satisfiable {
		t.Fatalf("And(a,not(a)) must be unsatisfiable, got %+v", res)
	}
}

func TestSolve3XorLikeFormula(t *testing.T) {
	// The linear decider may return unknown on this one; the cubic
	// decider must still find a satisfying assignment.
	f := formula.And(
		formula.Or(a("a"), a("b")),
		formula.Or(formula.Not(a("a")), formula.Not(a("b"))),
	)
	res := Solve3(f, tracelog.Discard())
	if res.Unknown {
		t.Fatalf("sat3 must be decided on %v", f)
	}
	if !res.Satisfiable {
		t.Fatalf("%v is satisfiable, sat3 said otherwise", f)
	}
	if !satisfies(f, res.Assignment) {
		t.Fatalf("returned assignment %v does not satisfy %v", res.Assignment, f)
	}
}

func TestSolve3NeverWeakerThanSolve(t *testing.T) {
	formulas := []formula.Formula{
		formula.And(a("a"), a("b"), formula.Or(a("c"), formula.Not(a("c")))),
		formula.Implies(a("p"), a("q")),
		formula.And(formula.Or(a("x"), a("y")), formula.Or(formula.Not(a("x")), a("y"))),
	}
	for _, f := range formulas {
		linear := Solve(f, tracelog.Discard())
		cubic := Solve3(f, tracelog.Discard())
		if !linear.Unknown && cubic.Unknown {
			t.Fatalf("sat3 regressed to unknown where sat decided %v", f)
		}
		if !linear.Unknown && linear.Satisfiable != cubic.Satisfiable && !cubic.Unknown {
			t.Fatalf("sat and sat3 disagree on %v: %+v vs %+v", f, linear, cubic)
		}
	}
}
