package peptide

import (
	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/smiles"
)

// Cyclization selects how the two ends of the backbone are finished.
type Cyclization uint8

// Cyclization modes.
const (
	// CyclizationNone leaves the chain open: a free amine at the head
	// and a free carboxylic acid at the tail.
	CyclizationNone Cyclization = iota

	// CyclizationHeadToTail bonds the tail carbonyl carbon back onto
	// the head nitrogen, using reserved ring-closure marker 0.
	CyclizationHeadToTail
)

// headToTailRnum is the ring-closure marker reserved for backbone
// cyclization. It is never allocated to a cross-link, even when the
// mode is CyclizationNone.
const headToTailRnum smiles.Rnum = 0

// Protein is a peptide under construction: an ordered residue sequence,
// registered cross-links, and a cyclization mode.
//
// Build the aggregate first (AddCrossLink, Cyclize), then walk it with
// Visit or SMILES. The cross-link registry is read-only during the
// walk; all mutation must happen before it starts. Registration
// failures leave the aggregate in a partially mapped state, so treat
// any AddCrossLink error as grounds to discard it.
type Protein struct {
	sequence    []Residue
	links       *linkRegistry
	cyclization Cyclization
}

// New creates a Protein over the given sequence with no cross-links and
// open-chain ends.
func New(sequence []Residue) *Protein {
	return &Protein{sequence: sequence, links: newLinkRegistry()}
}

// Cyclize sets the backbone cyclization mode.
func (p *Protein) Cyclize(mode Cyclization) {
	p.cyclization = mode
}

// Cyclization returns the current backbone cyclization mode.
func (p *Protein) Cyclization() Cyclization {
	return p.cyclization
}

// Length returns the number of residues.
func (p *Protein) Length() int { return len(p.sequence) }

// CrossLinkCount returns the number of fully registered cross-links.
func (p *Protein) CrossLinkCount() int { return p.links.count() }

// AddCrossLink registers a cross-link between two residue positions.
//
// Both endpoints must be within the sequence. A fresh ring-closure
// marker is allocated per successful registration, starting at 3 and
// growing monotonically; failed calls never consume one. Registration
// only checks position uniqueness; whether the residues can actually
// form the bond is validated during the walk, where an unsupported
// pairing surfaces as INVALID_CROSSLINK.
func (p *Protein) AddCrossLink(link CrossLink) error {
	if err := errors.ValidatePosition(link.A, len(p.sequence)); err != nil {
		return err
	}
	if err := errors.ValidatePosition(link.B, len(p.sequence)); err != nil {
		return err
	}
	return p.links.register(link)
}

// Visit walks the whole peptide, streaming atoms and bonds to f. An
// empty sequence emits nothing and returns nil. The walk aborts on the
// first residue whose registered cross-link it cannot realize; partial
// emission into f must then be discarded.
func (p *Protein) Visit(f smiles.Follower) error {
	if len(p.sequence) == 0 {
		return nil
	}

	// Head: the primary amine nitrogen roots the walk.
	f.Root(atomN)
	if p.cyclization == CyclizationHeadToTail {
		f.Join(smiles.BondElided, headToTailRnum)
	}

	for i, r := range p.sequence {
		if i > 0 {
			// Peptide bond: the next backbone nitrogen extends from the
			// previous carbonyl carbon.
			f.Extend(smiles.BondElided, atomN)
		}
		if err := r.visit(i+1, p.links, f); err != nil {
			return err
		}
		// Carbonyl oxygen on the β carbon, then retreat to it.
		f.Extend(smiles.BondDouble, atomO)
		f.Pop(1)
	}

	// Tail: either close the backbone ring or finish the free acid.
	if p.cyclization == CyclizationHeadToTail {
		f.Join(smiles.BondElided, headToTailRnum)
	} else {
		f.Extend(smiles.BondSingle, atomO)
	}
	return nil
}

// SMILES walks the peptide into a fresh writer and returns the
// rendered notation. The empty sequence yields the empty string.
func (p *Protein) SMILES() (string, error) {
	w := smiles.NewWriter()
	if err := p.Visit(w); err != nil {
		return "", err
	}
	return w.Write(), nil
}
