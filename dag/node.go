// Package dag builds the shared, interned node graph (component B) and runs
// the three-track propagator over it (component C). Nodes are built only
// from a formula in Negation-and-Conjunction Form: Lit, Not and And.
package dag

import (
	"github.com/jaanos/propsat/formula"
	"github.com/jaanos/propsat/tracelog"
)

// Kind distinguishes the three node variants.
type Kind int

const (
	KindLit Kind = iota
	KindNot
	KindAnd
)

// Idx is the arena index of a node. Indices start at 0 (the first node
// interned); use NoIdx to mean "no source node".
type Idx int

// NoIdx marks the absence of a justifying source node.
const NoIdx Idx = -1

type parentEdge struct {
	node Idx
	slot int
}

// slot is one variant cell: a permanent, tentative-true and tentative-false
// value, each with its justifying source node and sure flag.
type slot struct {
	v, vt, vf          *bool
	src, srcT, srcF    Idx
	sure, sureT, sureF bool
}

func newSlot() slot {
	return slot{src: NoIdx, srcT: NoIdx, srcF: NoIdx}
}

// node is one interned subexpression: a Lit, a Not or an And.
type node struct {
	kind     Kind
	name     string // Lit
	child    Idx    // Not
	children []Idx  // And
	parents  []parentEdge
	slots    []slot
}

func numVariants(children int, kind Kind) int {
	if kind == KindAnd {
		if children-1 > 1 {
			return children - 1
		}
		return 1
	}
	return 1
}

// internEntry is one bucket member of the intern index: the hash narrows
// the bucket, the key (the formula's canonical text) is the ground-truth
// equality check within it.
type internEntry struct {
	key string
	idx Idx
}

// Store is the DagStore: an arena of nodes, keyed by integer index, plus
// the intern index from a formula's canonical text to its node index,
// bucketed by formula.Hash for a fast-path lookup before the string
// comparison that actually decides identity.
type Store struct {
	nodes   []node
	buckets map[uint64][]internEntry
	order   []Idx
	log     tracelog.Logger
}

// NewStore creates an empty store that logs propagator events through log.
func NewStore(log tracelog.Logger) *Store {
	return &Store{buckets: make(map[uint64][]internEntry), log: log}
}

// Order returns the nodes in the order they were interned, the order
// the cubic solver's worklist is formed from.
func (s *Store) Order() []Idx {
	return append([]Idx(nil), s.order...)
}

// NumVariants reports the number of variant slots of node n.
func (s *Store) NumVariants(n Idx) int {
	return len(s.nodes[n].slots)
}

// Kind reports the node variant.
func (s *Store) Kind(n Idx) Kind { return s.nodes[n].kind }

// Name reports a Lit node's variable name.
func (s *Store) Name(n Idx) string { return s.nodes[n].name }

// AsNode interns f (which must be in NCF: only Lit, Not, And) and returns
// its node index, building it and its children on demand.
func (s *Store) AsNode(f formula.Formula) Idx {
	key := f.String()
	h := formula.Hash(f)
	for _, e := range s.buckets[h] {
		if e.key == key {
			return e.idx
		}
	}

	var n node
	if name, ok := formula.LitName(f); ok {
		n.kind = KindLit
		n.name = name
	} else if sub, ok := formula.NotSub(f); ok {
		n.kind = KindNot
		n.child = s.AsNode(sub)
	} else if children, ok := formula.AndChildren(f); ok {
		n.kind = KindAnd
		n.children = s.childIndices(children)
	} else {
		panic("dag: AsNode requires a formula in Negation-and-Conjunction Form (got an Or); call formula.Ncf first")
	}

	n.slots = make([]slot, numVariants(len(n.children), n.kind))
	for i := range n.slots {
		n.slots[i] = newSlot()
	}

	idx := Idx(len(s.nodes))
	s.nodes = append(s.nodes, n)
	s.buckets[h] = append(s.buckets[h], internEntry{key: key, idx: idx})
	s.order = append(s.order, idx)

	switch n.kind {
	case KindNot:
		s.addParent(n.child, idx, 0)
	case KindAnd:
		last := len(n.children) - 1
		for i, c := range n.children {
			// The last conjunct has no real slot of its own: it is read
			// through the virtual alias at the end of the previous real
			// slot (see getValue), so its back-edge must name that real
			// slot, not the one-past-the-end virtual index.
			parentSlot := i
			if i == last {
				parentSlot = len(n.slots) - 1
			}
			s.addParent(c, idx, parentSlot)
		}
	}
	return idx
}

func (s *Store) childIndices(fs []formula.Formula) []Idx {
	out := make([]Idx, len(fs))
	for i, f := range fs {
		out[i] = s.AsNode(f)
	}
	return out
}

func (s *Store) addParent(child, parent Idx, slot int) {
	s.nodes[child].parents = append(s.nodes[child].parents, parentEdge{node: parent, slot: slot})
}
