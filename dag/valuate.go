package dag

// Valuate drives the node-kind-specific valuation: try to fix node n to
// b at the given hypothesis/slot, propagate the consequences, and report
// whether the whole attempt stayed consistent.
func (s *Store) Valuate(n Idx, b bool, src Idx, pos Pos) bool {
	switch s.nodes[n].kind {
	case KindLit:
		return s.valuateLit(n, b, src, pos)
	case KindNot:
		return s.valuateNot(n, b, src, pos)
	default:
		return s.valuateAnd(n, b, src, pos)
	}
}

func (s *Store) valuateLit(n Idx, b bool, src Idx, pos Pos) bool {
	if s.setSure(n, pos) {
		s.log.Sure(s.label(n), pos.Hyp.String(), pos.K)
	}
	ok, known := s.baseValuate(n, b, src, pos)
	if known && !ok {
		s.log.Contradiction(s.label(n), pos.Hyp.String(), pos.K)
		return false
	}
	return s.parents(n, b, pos)
}

func (s *Store) valuateNot(n Idx, b bool, src Idx, pos Pos) bool {
	ok, known := s.baseValuate(n, b, src, pos)
	if known {
		if !ok {
			s.log.Contradiction(s.label(n), pos.Hyp.String(), pos.K)
		}
		return ok
	}
	child := s.nodes[n].child
	if !s.Valuate(child, !b, n, Pos{Hyp: pos.Hyp, K: 0}) {
		return false
	}
	return s.parents(n, b, pos)
}

// valuateAnd handles the And case: an empty conjunction is a constant, a
// singleton forwards, and the general case walks the variant chain from
// the caller's slot to the end, right-leaning.
func (s *Store) valuateAnd(n Idx, b bool, src Idx, pos Pos) bool {
	ok, known := s.baseValuate(n, b, src, pos)
	if known {
		if !ok {
			s.log.Contradiction(s.label(n), pos.Hyp.String(), pos.K)
		}
		return ok
	}

	children := s.nodes[n].children
	k := pos.K
	switch {
	case len(children) == 0:
		if !b {
			return false
		}
		if s.setSure(n, pos) {
			s.log.Sure(s.label(n), pos.Hyp.String(), pos.K)
		}
	case len(children) == 1:
		if !s.Valuate(children[0], b, n, Pos{Hyp: pos.Hyp, K: 0}) {
			return false
		}
	default:
		last := len(children) - 1
		var ok bool
		if b {
			ok = s.andForceTrue(n, children, k, last, pos)
		} else {
			ok = s.andForceFalse(n, children, k, last, pos)
		}
		if !ok {
			return false
		}
	}

	if k > 0 {
		return s.updateAnd(n, Pos{Hyp: pos.Hyp, K: k - 1})
	}
	return s.parents(n, b, pos)
}

// andForceTrue walks slots k..last-1: slot i is true iff conjunct i and
// the rest (slot i+1, aliased to the last conjunct when i+1 is the last
// slot) are both true.
func (s *Store) andForceTrue(n Idx, children []Idx, k, last int, pos Pos) bool {
	i := k
	for i < last {
		var val *bool
		if i < last-1 {
			restOK, restKnown := s.baseValuate(n, true, n, Pos{Hyp: pos.Hyp, K: i + 1})
			if restKnown {
				v := restOK
				val = &v
			}
		} else {
			v := s.Valuate(children[last], true, n, Pos{Hyp: pos.Hyp, K: 0})
			val = &v
		}
		if val != nil && !*val {
			return false
		}
		if !s.Valuate(children[i], true, n, Pos{Hyp: pos.Hyp, K: 0}) {
			return false
		}
		s.setAndSureAt(n, children[i], Pos{Hyp: pos.Hyp, K: i}, Pos{Hyp: pos.Hyp, K: i + 1})
		if val != nil && *val {
			break
		}
		i++
	}
	return true
}

// andForceFalse walks slots k..last-1: slot i is false iff conjunct i or
// the rest is false. When conjunct i is known true the rest is forced
// false; when the rest is known true conjunct i is forced false;
// otherwise slot i is left undetermined.
func (s *Store) andForceFalse(n Idx, children []Idx, k, last int, pos Pos) bool {
	i := k
	for i < last {
		conj := s.getValue(children[i], Pos{Hyp: pos.Hyp, K: 0})
		if conj != nil && *conj {
			var val *bool
			if i < last-1 {
				restOK, restKnown := s.baseValuate(n, false, n, Pos{Hyp: pos.Hyp, K: i + 1})
				if restKnown {
					v := restOK
					val = &v
				}
			} else {
				v := s.Valuate(children[last], false, n, Pos{Hyp: pos.Hyp, K: 0})
				val = &v
			}
			if val != nil && !*val {
				return false
			}
			s.setAndSureAt(n, children[i], Pos{Hyp: pos.Hyp, K: i}, Pos{Hyp: pos.Hyp, K: i + 1})
			if val != nil && *val {
				break
			}
		} else {
			restTrue := false
			if rv := s.getValue(n, Pos{Hyp: pos.Hyp, K: i + 1}); rv != nil {
				restTrue = *rv
			}
			if restTrue && !s.Valuate(children[i], false, n, Pos{Hyp: pos.Hyp, K: 0}) {
				return false
			}
			s.setAndSureAt(n, children[i], Pos{Hyp: pos.Hyp, K: i}, Pos{Hyp: pos.Hyp, K: i + 1})
			break
		}
		i++
	}
	return true
}

// setAndSureAt marks self's slot selfPos sure when the conjunct and the
// rest already force its current value.
func (s *Store) setAndSureAt(n Idx, child Idx, selfPos, restPos Pos) {
	v := s.getValue(n, selfPos)
	if v == nil {
		return
	}
	conjSure := s.getSure(child, Pos{Hyp: selfPos.Hyp, K: 0})
	restSure := s.getSure(n, restPos)
	var sure bool
	if *v {
		sure = conjSure && restSure
	} else {
		conjVal := s.getValue(child, Pos{Hyp: selfPos.Hyp, K: 0})
		restVal := s.getValue(n, restPos)
		sure = (conjVal != nil && !*conjVal && conjSure) || (restVal != nil && !*restVal && restSure)
	}
	if sure && s.setSure(n, selfPos) {
		s.log.Sure(s.label(n), selfPos.Hyp.String(), selfPos.K)
	}
}

// updateAnd re-derives self's slot pos.K from its conjunct and the rest
// (slot pos.K+1) after one of them changed, then cascades to slot
// pos.K-1 via the same valuateAnd machinery.
func (s *Store) updateAnd(n Idx, pos Pos) bool {
	children := s.nodes[n].children
	if len(children) <= 1 {
		return true
	}
	k := pos.K
	child := children[k]
	conj := s.getValue(child, Pos{Hyp: pos.Hyp, K: 0})
	rest := s.getValue(n, Pos{Hyp: pos.Hyp, K: k + 1})
	switch {
	case conj != nil && !*conj:
		return s.Valuate(n, false, child, Pos{Hyp: pos.Hyp, K: k})
	case rest != nil && !*rest:
		return s.Valuate(n, false, child, Pos{Hyp: pos.Hyp, K: k})
	case conj != nil && *conj && rest != nil && *rest:
		return s.Valuate(n, true, child, Pos{Hyp: pos.Hyp, K: k})
	default:
		return true
	}
}

func (s *Store) updateNot(n Idx, b bool, pos Pos) bool {
	child := s.nodes[n].child
	if s.getSure(child, pos) && s.setSure(n, pos) {
		s.log.Sure(s.label(n), pos.Hyp.String(), pos.K)
	}
	nb := !b
	ok, known := s.baseValuate(n, nb, child, pos)
	if known {
		if !ok {
			s.log.Contradiction(s.label(n), pos.Hyp.String(), pos.K)
		}
		return ok
	}
	return s.parents(n, nb, pos)
}

// parents propagates a newly determined value to every registered parent
// back-edge.
func (s *Store) parents(n Idx, b bool, pos Pos) bool {
	for _, e := range s.nodes[n].parents {
		var ok bool
		switch s.nodes[e.node].kind {
		case KindNot:
			ok = s.updateNot(e.node, b, Pos{Hyp: pos.Hyp, K: e.slot})
		default:
			ok = s.updateAnd(e.node, Pos{Hyp: pos.Hyp, K: e.slot})
		}
		if !ok {
			return false
		}
	}
	return true
}
