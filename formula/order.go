package formula

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b are structurally identical formulas.
func Equal(a, b Formula) bool {
	if a.kind() != b.kind() {
		return false
	}
	switch a := a.(type) {
	case litTerm:
		return a.name == b.(litTerm).name
	case notTerm:
		return Equal(a.sub, b.(notTerm).sub)
	case andTerm:
		return equalList(a, b.(andTerm))
	case orTerm:
		return equalList(a, b.(orTerm))
	default:
		return false
	}
}

func equalList(a, b []Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Less implements a total order over formulas: Lit < Not < And < Or;
// within a variant, lexicographic on name or on the argument list.
func Less(a, b Formula) bool {
	if a.kind() != b.kind() {
		return a.kind() < b.kind()
	}
	switch a := a.(type) {
	case litTerm:
		return a.name < b.(litTerm).name
	case notTerm:
		return Less(a.sub, b.(notTerm).sub)
	case andTerm:
		return lessList(a, b.(andTerm))
	case orTerm:
		return lessList(a, b.(orTerm))
	default:
		return false
	}
}

func lessList(a, b []Formula) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if Equal(a[i], b[i]) {
			continue
		}
		return Less(a[i], b[i])
	}
	return len(a) < len(b)
}

// Hash returns a hash consistent with Equal: a textual canonical
// representation (Formula.String) is a sufficient hash source.
func Hash(f Formula) uint64 {
	return xxhash.Sum64String(f.String())
}

// sortFormulas sorts fs in place by the total order.
func sortFormulas(fs []Formula) {
	sort.Slice(fs, func(i, j int) bool { return Less(fs[i], fs[j]) })
}
