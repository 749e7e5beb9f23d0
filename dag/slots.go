package dag

// getValue reads the value on the track named by pos.Hyp, nil meaning
// unknown. An And node's slot N (its own numVariants, one past its real
// slots) is a virtual alias for its last conjunct's slot 0: querying "the
// rest" past the last physical slot reads the last conjunct directly
//.
func (s *Store) getValue(n Idx, pos Pos) *bool {
	nd := &s.nodes[n]
	if nd.kind == KindAnd && len(nd.children) > 1 && pos.K == len(nd.slots) {
		return s.getValue(nd.children[len(nd.children)-1], Pos{Hyp: pos.Hyp, K: 0})
	}
	sl := &nd.slots[pos.K]
	switch pos.Hyp {
	case None:
		return sl.v
	case True:
		return sl.vt
	default:
		return sl.vf
	}
}

// getSure mirrors getValue's virtual-slot alias for the sure flags.
func (s *Store) getSure(n Idx, pos Pos) bool {
	nd := &s.nodes[n]
	if nd.kind == KindAnd && len(nd.children) > 1 && pos.K == len(nd.slots) {
		return s.getSure(nd.children[len(nd.children)-1], Pos{Hyp: pos.Hyp, K: 0})
	}
	sl := &nd.slots[pos.K]
	switch pos.Hyp {
	case None:
		return sl.sure
	case True:
		return sl.sureT
	default:
		return sl.sureF
	}
}

// setValue writes b on the track named by pos.Hyp, monotonically: once a
// track holds a Boolean it is never rewritten. Writing a tentative track
// that already agrees with the opposite tentative track promotes the
// value to permanent.
//
// setValue is never called at a node's virtual slot (callers route those
// writes to the aliased child instead; see valuateAnd).
func (s *Store) setValue(n Idx, b bool, src Idx, pos Pos) {
	sl := &s.nodes[n].slots[pos.K]
	switch pos.Hyp {
	case None:
		sl.v, sl.vt, sl.vf = &b, &b, &b
		sl.src = src
	case True:
		sl.vt, sl.srcT = &b, src
		if sl.vf != nil && *sl.vf == b {
			sl.v, sl.src = &b, src
		}
	case False:
		sl.vf, sl.srcF = &b, src
		if sl.vt != nil && *sl.vt == b {
			sl.v, sl.src = &b, src
		}
	}
}

// setSure marks the value at pos as forced by its children's current
// values. Returns whether this is new information. Setting both
// tentative tracks sure promotes the permanent track to sure too.
func (s *Store) setSure(n Idx, pos Pos) bool {
	sl := &s.nodes[n].slots[pos.K]
	switch pos.Hyp {
	case None:
		if sl.sure {
			return false
		}
		sl.sure, sl.sureT, sl.sureF = true, true, true
	case True:
		if sl.sureT {
			return false
		}
		sl.sureT = true
		if sl.sureF {
			sl.sure = true
		}
	case False:
		if sl.sureF {
			return false
		}
		sl.sureF = true
		if sl.sureT {
			sl.sure = true
		}
	}
	return true
}

// clearTemp resets the tentative-only cells of every slot of n whose
// permanent value is still unknown.
func (s *Store) clearTemp(n Idx) {
	for i := range s.nodes[n].slots {
		sl := &s.nodes[n].slots[i]
		if sl.v == nil {
			sl.vt, sl.vf = nil, nil
			sl.srcT, sl.srcF = NoIdx, NoIdx
			sl.sureT, sl.sureF = false, false
		}
	}
}

// ClearTemp resets tentative state across every node in the store.
func (s *Store) ClearTemp() {
	for i := range s.nodes {
		s.clearTemp(Idx(i))
	}
}

// baseValuate is the primitive assign(node, b, src, pos) step: if
// the track already holds a value, report whether it agrees (known=true);
// otherwise write it and report known=false ("just-set"), leaving forward
// derivation to the node-kind-specific valuate.
func (s *Store) baseValuate(n Idx, b bool, src Idx, pos Pos) (ok bool, known bool) {
	if v := s.getValue(n, pos); v != nil {
		return *v == b, true
	}
	s.setValue(n, b, src, pos)
	s.log.Assign(s.label(n), b, pos.Hyp.String(), pos.K)
	return true, false
}

// Label returns a short human-readable tag for n, for trace logging.
func (s *Store) Label(n Idx) string {
	return s.label(n)
}

func (s *Store) label(n Idx) string {
	nd := &s.nodes[n]
	switch nd.kind {
	case KindLit:
		return nd.name
	case KindNot:
		return "not(" + s.label(nd.child) + ")"
	default:
		return "and/…"
	}
}
