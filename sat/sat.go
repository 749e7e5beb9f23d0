// Package sat implements the linear and cubic propagator-based deciders
// (components D and E): sat(f) assigns the NCF root to true and reads off
// whatever the propagator fixed; sat3(f) augments that with one level of
// hypothetical reasoning per unfixed slot.
package sat

import (
	"github.com/jaanos/propsat/dag"
	"github.com/jaanos/propsat/formula"
	"github.com/jaanos/propsat/tracelog"
)

// Result is the outcome of a sat/sat3 call: Unsat, an Assignment, or
// Unknown (the decider could not determine satisfiability).
type Result struct {
	Satisfiable bool // only meaningful when Unknown is false
	Unknown     bool
	Assignment  map[string]bool
}

// Solve runs the linear decider on f.
func Solve(f formula.Formula, log tracelog.Logger) Result {
	r, _ := solveOn(f, log)
	return r
}

// solveOn builds the store and root once so sat3 can reuse sat's work
// without rebuilding the DAG.
func solveOn(f formula.Formula, log tracelog.Logger) (Result, *rootInfo) {
	vars := formula.Vars(f)
	ncf := formula.Ncf(formula.Simplify(f))
	store := dag.NewStore(log)
	root := store.AsNode(ncf)

	if !store.Valuate(root, true, dag.NoIdx, dag.Root) {
		return Result{Satisfiable: false}, nil
	}
	values, complete := store.Assignment(vars)
	if complete {
		return Result{Satisfiable: true, Assignment: values}, &rootInfo{store: store, root: root, vars: vars}
	}
	return Result{Unknown: true}, &rootInfo{store: store, root: root, vars: vars}
}

type rootInfo struct {
	store *dag.Store
	root  dag.Idx
	vars  []string
}

// Solve3 runs the cubic decider on f: it first runs the linear decider,
// and on Unknown iterates every unfixed slot, trying both hypotheses and
// merging what they agree on, to a fixpoint.
func Solve3(f formula.Formula, log tracelog.Logger) Result {
	res, info := solveOn(f, log)
	if !res.Unknown {
		return res
	}
	store, root, vars := info.store, info.root, info.vars

	work := store.Unfixed()
	for len(work) > 0 {
		var next []dag.NodeSlot
		progressed := false
		for _, ns := range work {
			if _, known := store.SlotValue(ns.Node, ns.Slot); known {
				progressed = true
				continue
			}
			pos := dag.Pos{Hyp: dag.None, K: ns.Slot}
			log.Decision(store.Label(ns.Node), ns.Slot, "true")
			if store.Valuate(ns.Node, true, dag.NoIdx, dag.Pos{Hyp: dag.True, K: ns.Slot}) {
				if values, complete := store.Assignment(vars); complete {
					return Result{Satisfiable: true, Assignment: values}
				}
				log.Decision(store.Label(ns.Node), ns.Slot, "false")
				if store.Valuate(ns.Node, false, dag.NoIdx, dag.Pos{Hyp: dag.False, K: ns.Slot}) {
					if values, complete := store.Assignment(vars); complete {
						return Result{Satisfiable: true, Assignment: values}
					}
					store.PromoteAgreeing()
				} else {
					store.PromoteTentative(dag.True)
				}
			} else {
				store.ClearTemp()
				if !store.Valuate(ns.Node, false, dag.NoIdx, pos) {
					return Result{Satisfiable: false}
				}
			}
			if _, known := store.SlotValue(ns.Node, ns.Slot); known {
				progressed = true
				continue
			}
			next = append(next, ns)
		}
		if !progressed {
			break
		}
		work = next
	}

	if values, complete := store.Assignment(vars); complete {
		return Result{Satisfiable: true, Assignment: values}
	}
	if v, ok := store.PermanentValue(root); ok && !v {
		return Result{Satisfiable: false}
	}
	// No contradiction was ever observed on this slot, so the outcome is
	// indeterminate rather than unsatisfiable.
	return Result{Unknown: true}
}
