package dpll

import (
	"testing"

	"github.com/jaanos/propsat/formula"
	"github.com/jaanos/propsat/tracelog"
)

func a(name string) formula.Formula { return formula.Lit(name) }

func TestSolveScenario1(t *testing.T) {
	// dpll(And(a, Or(a,b), not(c))) -> {a:true, c:false}, b unconstrained.
	f := formula.And(a("a"), formula.Or(a("a"), a("b")), formula.Not(a("c")))
	got, ok := Solve(f, tracelog.Discard())
	if !ok {
		t.Fatalf("expected satisfiable")
	}
	if v, ok := got["a"]; !ok || !v {
		t.Fatalf("expected a=true, got %v", got)
	}
	if v, ok := got["c"]; !ok || v {
		t.Fatalf("expected c=false, got %v", got)
	}
	if !formula.Eval(f, got) {
		t.Fatalf("assignment %v does not satisfy %v", got, f)
	}
}

func TestSolveScenario2Unsat(t *testing.T) {
	f := formula.And(a("a"), formula.Not(a("a")))
	_, ok := Solve(f, tracelog.Discard())
	if ok {
		t.Fatalf("And(a,not(a)) should be unsatisfiable")
	}
}

func TestSolveSoundAndComplete(t *testing.T) {
	formulas := []formula.Formula{
		formula.Or(a("a"), a("b"), a("c")),
		formula.And(formula.Or(a("a"), a("b")), formula.Or(formula.Not(a("a")), formula.Not(a("b")))),
		formula.Implies(a("p"), formula.And(a("q"), a("r"))),
	}
	for _, f := range formulas {
		got, ok := Solve(f, tracelog.Discard())
		if !ok {
			t.Fatalf("expected %v satisfiable", f)
		}
		if !formula.Eval(f, got) {
			t.Fatalf("assignment %v does not satisfy %v", got, f)
		}
	}
}

func TestSolvePureLiteral(t *testing.T) {
	// b appears only positively; DPLL should fix it to true without
	// branching.
	f := formula.And(formula.Or(a("a"), a("b")), formula.Or(formula.Not(a("a")), a("b")))
	got, ok := Solve(f, tracelog.Discard())
	if !ok {
		t.Fatalf("expected satisfiable")
	}
	if v, ok := got["b"]; !ok || !v {
		t.Fatalf("expected pure literal b=true, got %v", got)
	}
}

func TestSolveWithStatsCountsPureLiteralNotDecision(t *testing.T) {
	f := formula.And(formula.Or(a("a"), a("b")), formula.Or(formula.Not(a("a")), a("b")))
	_, ok, stats := SolveWithStats(f, tracelog.Discard())
	if !ok {
		t.Fatalf("expected satisfiable")
	}
	if stats.PureLiteralEliminations == 0 {
		t.Fatalf("expected at least one pure-literal elimination, got %+v", stats)
	}
	if stats.Decisions != 0 {
		t.Fatalf("pure b should resolve without branching, got %+v", stats)
	}
}

func TestSolveWithStatsCountsDecisionOnUnforcedChoice(t *testing.T) {
	// Both a and b appear with both polarities, so neither is pure and
	// neither clause is a unit: DPLL must branch.
	f := formula.And(
		formula.Or(a("a"), a("b")),
		formula.Or(formula.Not(a("a")), formula.Not(a("b"))),
	)
	_, ok, stats := SolveWithStats(f, tracelog.Discard())
	if !ok {
		t.Fatalf("expected satisfiable")
	}
	if stats.Decisions == 0 {
		t.Fatalf("expected a/b to require branching, got %+v", stats)
	}
}
