package dag

// PermanentValue reads a node's permanent (hyp=None) value at slot 0.
func (s *Store) PermanentValue(n Idx) (value bool, known bool) {
	return s.SlotValue(n, 0)
}

// SlotValue reads a node's permanent value at the given slot.
func (s *Store) SlotValue(n Idx, slot int) (value bool, known bool) {
	v := s.getValue(n, Pos{Hyp: None, K: slot})
	if v == nil {
		return false, false
	}
	return *v, true
}

// Assignment collects the permanent value of every Lit node reachable in
// the store, and reports whether every one of the given variable names
// was assigned.
func (s *Store) Assignment(vars []string) (map[string]bool, bool) {
	values := make(map[string]bool, len(s.nodes))
	for i, nd := range s.nodes {
		if nd.kind != KindLit {
			continue
		}
		if v, ok := s.PermanentValue(Idx(i)); ok {
			values[nd.name] = v
		}
	}
	complete := true
	for _, name := range vars {
		if _, ok := values[name]; !ok {
			complete = false
			break
		}
	}
	return values, complete
}

// PromoteAgreeing promotes every slot where both tentative tracks agree
// to permanent, then clears tentative state (the merge step of the
// cubic solver's fixpoint loop).
func (s *Store) PromoteAgreeing() {
	for i := range s.nodes {
		nd := &s.nodes[i]
		for k := range nd.slots {
			sl := &nd.slots[k]
			if sl.v == nil && sl.vt != nil && sl.vf != nil && *sl.vt == *sl.vf {
				s.setValue(Idx(i), *sl.vt, sl.srcT, Pos{Hyp: None, K: k})
			}
		}
	}
	s.ClearTemp()
}

// PromoteTentative promotes the hyp track to permanent in every slot of
// every node whose permanent value is still unknown, then clears
// tentative state (the "forced" branch of sat3 when only one hypothesis
// survived).
func (s *Store) PromoteTentative(hyp Hyp) {
	for i := range s.nodes {
		nd := &s.nodes[i]
		for k := range nd.slots {
			sl := &nd.slots[k]
			if sl.v != nil {
				continue
			}
			if hyp == True && sl.vt != nil {
				s.setValue(Idx(i), *sl.vt, sl.srcT, Pos{Hyp: None, K: k})
			} else if hyp == False && sl.vf != nil {
				s.setValue(Idx(i), *sl.vf, sl.srcF, Pos{Hyp: None, K: k})
			}
		}
	}
	s.ClearTemp()
}

// NodeSlot names one variant slot of one node.
type NodeSlot struct {
	Node Idx
	Slot int
}

// Unfixed returns every (node, slot) whose permanent value is still
// unknown, in store insertion order and ascending by slot.
func (s *Store) Unfixed() []NodeSlot {
	var out []NodeSlot
	for _, n := range s.order {
		for k := range s.nodes[n].slots {
			if s.nodes[n].slots[k].v == nil {
				out = append(out, NodeSlot{Node: n, Slot: k})
			}
		}
	}
	return out
}
