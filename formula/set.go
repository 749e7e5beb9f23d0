package formula

// formulaSet is a small set of formulas keyed by canonical text, used by
// Simplify's dedup/absorption/reduction passes.
type formulaSet struct {
	m map[string]Formula
}

func newFormulaSet(fs []Formula) *formulaSet {
	s := &formulaSet{m: make(map[string]Formula, len(fs))}
	for _, f := range fs {
		s.add(f)
	}
	return s
}

func (s *formulaSet) add(f Formula)     { s.m[f.String()] = f }
func (s *formulaSet) delete(key string) { delete(s.m, key) }

func (s *formulaSet) contains(f Formula) bool {
	_, ok := s.m[f.String()]
	return ok
}

func (s *formulaSet) get(key string) (Formula, bool) {
	f, ok := s.m[key]
	return f, ok
}

// keys returns a snapshot of the current keys; callers may freely mutate
// the set while ranging over it.
func (s *formulaSet) keys() []string {
	ks := make([]string, 0, len(s.m))
	for k := range s.m {
		ks = append(ks, k)
	}
	return ks
}

func (s *formulaSet) sortedList() []Formula {
	list := make([]Formula, 0, len(s.m))
	for _, f := range s.m {
		list = append(list, f)
	}
	sortFormulas(list)
	return list
}
