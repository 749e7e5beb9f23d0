package formula

import "sort"

// Vars returns the distinct variable names occurring in f, sorted.
func Vars(f Formula) []string {
	seen := make(map[string]struct{})
	collectVars(f, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(f Formula, seen map[string]struct{}) {
	switch t := f.(type) {
	case litTerm:
		seen[t.name] = struct{}{}
	case notTerm:
		collectVars(t.sub, seen)
	case andTerm:
		for _, x := range t {
			collectVars(x, seen)
		}
	case orTerm:
		for _, x := range t {
			collectVars(x, seen)
		}
	}
}

// Eval evaluates f under a (possibly partial) assignment; variables absent
// from assign are treated as false.
func Eval(f Formula, assign map[string]bool) bool {
	switch t := f.(type) {
	case litTerm:
		return assign[t.name]
	case notTerm:
		return !Eval(t.sub, assign)
	case andTerm:
		for _, x := range t {
			if !Eval(x, assign) {
				return false
			}
		}
		return true
	case orTerm:
		for _, x := range t {
			if Eval(x, assign) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
