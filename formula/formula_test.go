package formula

import (
	"testing"
)

func a(name string) Formula { return Lit(name) }

// allAssignments returns every assignment of the given variables.
func allAssignments(vars []string) []map[string]bool {
	if len(vars) == 0 {
		return []map[string]bool{{}}
	}
	rest := allAssignments(vars[1:])
	out := make([]map[string]bool, 0, 2*len(rest))
	for _, v := range []bool{false, true} {
		for _, r := range rest {
			m := map[string]bool{vars[0]: v}
			for k, val := range r {
				m[k] = val
			}
			out = append(out, m)
		}
	}
	return out
}

func assertEquivalent(t *testing.T, name string, f, g Formula) {
	t.Helper()
	vars := Vars(And(f, g))
	for _, assign := range allAssignments(vars) {
		if Eval(f, assign) != Eval(g, assign) {
			t.Fatalf("%s: formulas disagree under %v: %v=%v, %v=%v", name, assign, f, Eval(f, assign), g, Eval(g, assign))
		}
	}
}

func TestDoubleNegation(t *testing.T) {
	f := a("p")
	got := Simplify(Not(Not(f)))
	want := Simplify(f)
	if !Equal(got, want) {
		t.Fatalf("Simplify(Not(Not(p))) = %v, want %v", got, want)
	}
}

func TestDeMorgan(t *testing.T) {
	xs := []Formula{a("p"), a("q"), a("r")}
	got := Simplify(Not(And(xs...)))
	negs := make([]Formula, len(xs))
	for i, x := range xs {
		negs[i] = Not(x)
	}
	want := Simplify(Or(negs...))
	if !Equal(got, want) {
		t.Fatalf("De Morgan mismatch: %v vs %v", got, want)
	}
}

func TestAbsorption(t *testing.T) {
	x, y := a("p"), a("q")
	got := Simplify(And(x, Or(x, y)))
	want := Simplify(x)
	if !Equal(got, want) {
		t.Fatalf("absorption: got %v, want %v", got, want)
	}
	got2 := Simplify(Or(x, And(x, y)))
	if !Equal(got2, want) {
		t.Fatalf("dual absorption: got %v, want %v", got2, want)
	}
}

func TestReduction(t *testing.T) {
	x, y := a("p"), a("q")
	got := Simplify(And(x, Or(Not(x), y)))
	want := Simplify(And(x, y))
	if !Equal(got, want) {
		t.Fatalf("reduction: got %v, want %v", got, want)
	}
}

func TestIdempotence(t *testing.T) {
	f := Or(And(a("p"), a("q")), Not(a("r")), a("p"))
	once := Simplify(f)
	twice := Simplify(once)
	if once.String() != twice.String() {
		t.Fatalf("Simplify not idempotent: %v then %v", once, twice)
	}
}

func TestCnfDnfEquivalence(t *testing.T) {
	formulas := []Formula{
		Or(And(a("a"), a("b")), a("c")),
		Implies(a("a"), a("b")),
		And(Or(a("a"), a("b")), Or(Not(a("a")), Not(a("b")))),
	}
	for _, f := range formulas {
		assertEquivalent(t, "cnf", f, Cnf(f))
		assertEquivalent(t, "dnf", f, Dnf(f))
		assertEquivalent(t, "ncf", f, Ncf(f))
	}
}

func TestCnfClauses(t *testing.T) {
	// cnf(Or(And(a,b), c)) has the clauses {a,c} and {b,c}.
	f := Or(And(a("a"), a("b")), a("c"))
	got := Cnf(f)
	and, ok := got.(andTerm)
	if !ok {
		t.Fatalf("expected a conjunction of clauses, got %v", got)
	}
	if len(and) != 2 {
		t.Fatalf("expected 2 clauses, got %d: %v", len(and), got)
	}
	assertEquivalent(t, "cnf-clauses", f, got)
}

func TestSimplifyEmptyAndInOr(t *testing.T) {
	// simplify(Or("a", And())) = T.
	got := Simplify(Or(a("a"), And()))
	if !Equal(got, Tru()) {
		t.Fatalf("Simplify(Or(a, And())) = %v, want T", got)
	}
}

func TestTotalOrder(t *testing.T) {
	lit := a("x")
	not := Not(a("x"))
	and := And(a("x"), a("y"))
	or := Or(a("x"), a("y"))
	if !Less(lit, not) || !Less(not, and) || !Less(and, or) {
		t.Fatalf("total order violated: Lit < Not < And < Or expected")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	f := Simplify(And(a("p"), Or(a("q"), Not(a("r")))))
	g := Simplify(And(a("p"), Or(a("q"), Not(a("r")))))
	if !Equal(f, g) {
		t.Fatalf("expected equal formulas")
	}
	if Hash(f) != Hash(g) {
		t.Fatalf("Hash not consistent with Equal")
	}
}

func TestInvalidLiteralName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid literal name")
		}
	}()
	Lit("Not-Valid!")
}

func TestApply(t *testing.T) {
	f := And(a("p"), a("q"))
	got := Apply(f, Subst{"p": true})
	want := Simplify(a("q"))
	if !Equal(got, want) {
		t.Fatalf("Apply(p:=true) = %v, want %v", got, want)
	}
}
