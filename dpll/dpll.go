package dpll

import (
	"github.com/jaanos/propsat/formula"
	"github.com/jaanos/propsat/tracelog"
)

// Stats counts the search steps a run took. Adapted from the bookkeeping
// shape gophersat's CDCL solver uses for its own run counters, scaled
// down to the three events DPLL actually produces.
type Stats struct {
	Decisions               int
	UnitPropagations        int
	PureLiteralEliminations int
}

// Solve runs DPLL on f: unit propagation and pure-literal elimination to a
// fixpoint, then branches. It is complete: ok is false iff f is
// unsatisfiable.
func Solve(f formula.Formula, log tracelog.Logger) (map[string]bool, bool) {
	model, ok, _ := SolveWithStats(f, log)
	return model, ok
}

// SolveWithStats runs Solve and additionally reports how much propagation
// and branching the run needed.
func SolveWithStats(f formula.Formula, log tracelog.Logger) (map[string]bool, bool, Stats) {
	cnf := formula.Cnf(formula.Simplify(f))
	var stats Stats
	model, ok := dpllStep(clausesOf(cnf), log, &stats)
	return model, ok, stats
}

func dpllStep(clauses []clause, log tracelog.Logger, stats *Stats) (map[string]bool, bool) {
	out := map[string]bool{}
	for {
		for {
			units, remaining, ok := scanUnits(clauses)
			if !ok {
				log.Contradiction("unit-propagation", "none", 0)
				return nil, false
			}
			if len(units) == 0 {
				clauses = remaining
				break
			}
			stats.UnitPropagations += len(units)
			for name, v := range units {
				out[name] = v
				log.Assign(name, v, "none", 0)
			}
			rem, contradiction := applyAssignment(remaining, units)
			if contradiction {
				log.Contradiction("unit-propagation", "none", 0)
				return nil, false
			}
			clauses = rem
		}

		pures, branch, any := scanPure(clauses)
		if len(pures) == 0 {
			if len(clauses) == 0 {
				return out, true
			}
			if !any {
				return out, true
			}
			return dpllBranch(out, clauses, branch, log, stats)
		}
		stats.PureLiteralEliminations += len(pures)
		for name, v := range pures {
			out[name] = v
			log.Assign(name, v, "none", 0)
		}
		rem, contradiction := applyAssignment(clauses, pures)
		if contradiction {
			log.Contradiction("pure-literal", "none", 0)
			return nil, false
		}
		clauses = rem
	}
}

// dpllBranch tries branch=true, then branch=false.
func dpllBranch(out map[string]bool, clauses []clause, branch string, log tracelog.Logger, stats *Stats) (map[string]bool, bool) {
	stats.Decisions++
	log.Decision(branch, 0, "true")
	if withT, contradiction := applyAssignment(clauses, map[string]bool{branch: true}); !contradiction {
		if assigned, ok := dpllStep(withT, log, stats); ok {
			return merge(out, branch, true, assigned), true
		}
	}
	log.Decision(branch, 0, "false")
	if withF, contradiction := applyAssignment(clauses, map[string]bool{branch: false}); !contradiction {
		if assigned, ok := dpllStep(withF, log, stats); ok {
			return merge(out, branch, false, assigned), true
		}
	}
	return nil, false
}

func merge(out map[string]bool, branch string, branchVal bool, rest map[string]bool) map[string]bool {
	result := make(map[string]bool, len(out)+len(rest)+1)
	for k, v := range out {
		result[k] = v
	}
	result[branch] = branchVal
	for k, v := range rest {
		result[k] = v
	}
	return result
}

// scanUnits finds unit clauses, detecting a literal assigned both ways or
// an empty clause as contradiction, and discards tautological clauses.
func scanUnits(clauses []clause) (units map[string]bool, remaining []clause, ok bool) {
	units = map[string]bool{}
	for _, c := range clauses {
		switch {
		case len(c) == 0:
			return nil, nil, false
		case len(c) == 1:
			l := c[0]
			if v, exists := units[l.name]; exists {
				if v != l.pos {
					return nil, nil, false
				}
			} else {
				units[l.name] = l.pos
			}
		case isTautology(c):
			continue
		default:
			remaining = append(remaining, c)
		}
	}
	return units, remaining, true
}

// scanPure finds every variable appearing with only one polarity across
// clauses, and reports the last distinct variable encountered (the
// deterministic branch candidate when no variable is pure).
func scanPure(clauses []clause) (pures map[string]bool, lastSeen string, anySeen bool) {
	polarity := map[string]*bool{}
	var order []string
	for _, c := range clauses {
		for _, l := range c {
			p, seen := polarity[l.name]
			if !seen {
				v := l.pos
				polarity[l.name] = &v
				order = append(order, l.name)
			} else if p != nil && *p != l.pos {
				polarity[l.name] = nil
			}
		}
	}
	pures = map[string]bool{}
	for _, name := range order {
		if p := polarity[name]; p != nil {
			pures[name] = *p
		}
	}
	if len(order) == 0 {
		return pures, "", false
	}
	return pures, order[len(order)-1], true
}
