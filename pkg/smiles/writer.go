package smiles

import "strings"

// ringBond is one half of a ring-closure bond attached to an atom.
type ringBond struct {
	bond BondKind
	rnum Rnum
}

// node is an atom in the emission arena. Atoms are appended in emission
// order; parent links express the tree the walk traced out.
type node struct {
	atom     AtomKind
	parent   int // arena index, -1 for component roots
	bond     BondKind
	children []int
	joins    []ringBond
}

// Writer renders a molecule walk as a SMILES string.
//
// Atoms are stored in an arena in emission order and the current
// attachment point is an index into it, so Pop is a pure cursor move
// with no allocation. Call Write after the walk completes; the Writer
// is not reusable afterwards.
type Writer struct {
	nodes   []node
	roots   []int
	current int
}

var _ Follower = (*Writer)(nil)

// NewWriter returns an empty Writer ready to receive a walk.
func NewWriter() *Writer {
	return &Writer{current: -1}
}

// Root starts a new disconnected component at the given atom.
func (w *Writer) Root(atom AtomKind) {
	idx := len(w.nodes)
	w.nodes = append(w.nodes, node{atom: atom, parent: -1})
	w.roots = append(w.roots, idx)
	w.current = idx
}

// Extend bonds a new atom to the current atom and moves the cursor to it.
func (w *Writer) Extend(bond BondKind, atom AtomKind) {
	idx := len(w.nodes)
	w.nodes = append(w.nodes, node{atom: atom, parent: w.current, bond: bond})
	w.nodes[w.current].children = append(w.nodes[w.current].children, idx)
	w.current = idx
}

// Join attaches a ring-closure marker to the current atom.
func (w *Writer) Join(bond BondKind, rnum Rnum) {
	w.nodes[w.current].joins = append(w.nodes[w.current].joins, ringBond{bond: bond, rnum: rnum})
}

// Pop retreats the cursor n steps toward the component root. Retreating
// past the root leaves the cursor on the root.
func (w *Writer) Pop(n int) {
	for ; n > 0 && w.nodes[w.current].parent >= 0; n-- {
		w.current = w.nodes[w.current].parent
	}
}

// AtomCount returns the number of atoms emitted so far.
func (w *Writer) AtomCount() int { return len(w.nodes) }

// BondCount returns the number of bonds emitted so far, counting each
// ring closure once per fully matched marker pair.
func (w *Writer) BondCount() int {
	bonds := 0
	joins := 0
	for _, n := range w.nodes {
		if n.parent >= 0 {
			bonds++
		}
		joins += len(n.joins)
	}
	return bonds + joins/2
}

// Write renders the walk as a SMILES string. Disconnected components
// are separated by dots; an empty walk renders as the empty string.
func (w *Writer) Write() string {
	var b strings.Builder
	for i, root := range w.roots {
		if i > 0 {
			b.WriteByte('.')
		}
		w.render(&b, root)
	}
	return b.String()
}

// render writes the subtree rooted at idx. Ring-closure markers come
// directly after the atom token; all children but the last are branches
// and wrapped in parentheses.
func (w *Writer) render(b *strings.Builder, idx int) {
	n := w.nodes[idx]
	b.WriteString(n.atom.token())
	for _, j := range n.joins {
		b.WriteString(j.bond.symbol())
		b.WriteString(j.rnum.String())
	}
	for i, child := range n.children {
		last := i == len(n.children)-1
		if !last {
			b.WriteByte('(')
		}
		b.WriteString(w.nodes[child].bond.symbol())
		w.render(b, child)
		if !last {
			b.WriteByte(')')
		}
	}
}
