package peptide

import (
	"fmt"
	"strings"

	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/smiles"
)

// CrossLinkKind identifies the chemistry of a covalent side-chain bridge.
type CrossLinkKind uint8

// Cross-link kinds.
const (
	// Cystine is a disulfide bridge between two cysteines.
	Cystine CrossLinkKind = iota + 1

	// Lan is a lanthionine thioether bridge: position A contributes the
	// sulfur (cysteine), position B bonds through its bare β-carbon
	// (threonine, hydroxyl and methyl displaced).
	Lan

	// MeLan is a methyllanthionine bridge: like Lan, but the threonine
	// endpoint keeps its γ-methyl.
	MeLan
)

// String returns a lowercase name usable on the CLI and in modfiles.
func (k CrossLinkKind) String() string {
	switch k {
	case Cystine:
		return "cystine"
	case Lan:
		return "lan"
	case MeLan:
		return "melan"
	default:
		return fmt.Sprintf("CrossLinkKind(%d)", uint8(k))
	}
}

// ParseCrossLinkKind resolves a cross-link kind name. Accepted names are
// "cystine", "lan"/"lanthionine", and "melan"/"methyllanthionine",
// case-insensitive.
func ParseCrossLinkKind(s string) (CrossLinkKind, error) {
	switch strings.ToLower(s) {
	case "cystine":
		return Cystine, nil
	case "lan", "lanthionine":
		return Lan, nil
	case "melan", "methyllanthionine":
		return MeLan, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidInput, "unknown cross-link kind %q", s)
	}
}

// CrossLink is a covalent bridge between the side chains of two
// residues at 1-based positions A and B. For Lan and MeLan, A is the
// sulfur donor by convention; for Cystine the order carries no meaning.
type CrossLink struct {
	Kind CrossLinkKind
	A    int
	B    int
}

// firstLinkRnum is the first ring-closure marker available to
// cross-links. Marker 0 is reserved for head-to-tail cyclization and
// markers 1-2 for intra-residue rings (proline, tryptophan, and the
// other cyclic side chains), which are scoped to a single residue's
// emission and safely reused from residue to residue.
const firstLinkRnum smiles.Rnum = 3

// linkEntry is the registry record for one endpoint position.
type linkEntry struct {
	rnum smiles.Rnum
	link CrossLink
}

// linkRegistry maps residue positions to their assigned ring-closure
// marker and cross-link. Each position may appear in at most one entry.
type linkRegistry struct {
	entries map[int]linkEntry
	next    smiles.Rnum
}

func newLinkRegistry() *linkRegistry {
	return &linkRegistry{entries: map[int]linkEntry{}, next: firstLinkRnum}
}

// register allocates the next marker and inserts both endpoints.
//
// A failed call never consumes a marker. If the first endpoint inserts
// but the second collides, the first entry is retained: the caller is
// expected to abandon the aggregate on any registration failure, so the
// partial state is never walked.
func (r *linkRegistry) register(link CrossLink) error {
	if r.next > smiles.MaxRnum {
		return errors.New(errors.ErrCodeTooManyCrossLinks,
			"ring-closure marker space exhausted (max %d cross-links)", int(smiles.MaxRnum-firstLinkRnum)+1)
	}
	if _, ok := r.entries[link.A]; ok {
		return errors.New(errors.ErrCodeDuplicateCrossLink,
			"position %d already has a cross-link", link.A)
	}
	r.entries[link.A] = linkEntry{rnum: r.next, link: link}
	if _, ok := r.entries[link.B]; ok {
		return errors.New(errors.ErrCodeDuplicateCrossLink,
			"position %d already has a cross-link", link.B)
	}
	r.entries[link.B] = linkEntry{rnum: r.next, link: link}
	r.next++
	return nil
}

// lookup returns the entry registered at pos, if any. Pure read; safe
// during traversal.
func (r *linkRegistry) lookup(pos int) (linkEntry, bool) {
	e, ok := r.entries[pos]
	return e, ok
}

// count returns the number of fully registered cross-links.
func (r *linkRegistry) count() int {
	return int(r.next - firstLinkRnum)
}
