package moldot

import (
	"github.com/peptikit/peptigraph/pkg/smiles"
)

// Atom is one node of the recorded molecule graph.
type Atom struct {
	// Index is the emission order, starting at 0.
	Index int
	Kind  smiles.AtomKind
}

// Bond is one edge of the recorded molecule graph. Ring closures
// become ordinary bonds between the two joined atoms.
type Bond struct {
	From, To int
	Kind     smiles.BondKind
	// Closure marks bonds produced by a ring-closure pair rather than
	// chain extension.
	Closure bool
}

// Molecule is the graph collected by a Builder.
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// Builder records a traversal into a Molecule instead of SMILES text.
// It accepts the same instruction stream as the SMILES writer, so one
// peptide walk can feed either.
type Builder struct {
	mol     Molecule
	stack   []int
	current int
	open    map[smiles.Rnum]pendingJoin
}

type pendingJoin struct {
	atom int
	bond smiles.BondKind
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{current: -1, open: map[smiles.Rnum]pendingJoin{}}
}

// Root starts a new connected component at atom.
func (b *Builder) Root(atom smiles.AtomKind) {
	idx := len(b.mol.Atoms)
	b.mol.Atoms = append(b.mol.Atoms, Atom{Index: idx, Kind: atom})
	b.stack = nil
	b.current = idx
}

// Extend bonds a new atom to the current one and makes it current.
func (b *Builder) Extend(bond smiles.BondKind, atom smiles.AtomKind) {
	idx := len(b.mol.Atoms)
	b.mol.Atoms = append(b.mol.Atoms, Atom{Index: idx, Kind: atom})
	b.mol.Bonds = append(b.mol.Bonds, Bond{From: b.current, To: idx, Kind: bond})
	b.stack = append(b.stack, b.current)
	b.current = idx
}

// Join marks a ring closure on the current atom. The first use of a
// marker opens it; the second closes it into a bond and frees the
// marker for reuse.
func (b *Builder) Join(bond smiles.BondKind, rnum smiles.Rnum) {
	if p, ok := b.open[rnum]; ok {
		kind := p.bond
		if kind == smiles.BondElided {
			kind = bond
		}
		b.mol.Bonds = append(b.mol.Bonds, Bond{From: p.atom, To: b.current, Kind: kind, Closure: true})
		delete(b.open, rnum)
		return
	}
	b.open[rnum] = pendingJoin{atom: b.current, bond: bond}
}

// Pop retreats the current attachment point n steps, clamping at the
// component root.
func (b *Builder) Pop(n int) {
	for i := 0; i < n && len(b.stack) > 0; i++ {
		b.current = b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Molecule returns the recorded graph.
func (b *Builder) Molecule() *Molecule {
	return &b.mol
}

var _ smiles.Follower = (*Builder)(nil)
