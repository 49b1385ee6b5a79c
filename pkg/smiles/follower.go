package smiles

// Follower receives a depth-first molecule walk as a stream of
// instructions. Implementations maintain a "current atom" cursor:
// Root and Extend move it to the newly created atom, Pop retreats it
// along the emission history, and Join attaches a ring-closure bond to
// it without moving it.
//
// The walk contract:
//   - Root must be called before the first Extend; calling it again
//     starts a new disconnected component.
//   - Extend bonds a new atom to the current atom and makes the new
//     atom current.
//   - Join declares half of a ring-closure bond on the current atom.
//     The first occurrence of a marker opens the ring, the second
//     closes it.
//   - Pop moves the cursor n steps back toward the component root.
type Follower interface {
	// Root starts a new component rooted at the given atom.
	Root(atom AtomKind)

	// Extend bonds a new atom to the current atom.
	Extend(bond BondKind, atom AtomKind)

	// Join declares a ring-closure bond with the given marker on the
	// current atom.
	Join(bond BondKind, rnum Rnum)

	// Pop retreats the current-atom cursor n steps.
	Pop(n int)
}
