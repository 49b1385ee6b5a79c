package peptide

import (
	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/smiles"
)

// Atoms shared across the emission table.
var (
	atomC  = smiles.Aliphatic(smiles.C)
	atomN  = smiles.Aliphatic(smiles.N)
	atomO  = smiles.Aliphatic(smiles.O)
	atomS  = smiles.Aliphatic(smiles.S)
	atomSe = smiles.Bracket(smiles.Se, smiles.ConfigNone, 0)
	aromC  = smiles.Aromatic(smiles.C)
	aromN  = smiles.Aromatic(smiles.N)

	// Stereo-tagged carbons. Every α-carbon except glycine's carries a
	// fixed L-configuration tag; threonine and isoleucine reuse the same
	// tags on their β-carbons.
	carbonTH1 = smiles.Bracket(smiles.C, smiles.ConfigTH1, 1)
	carbonTH2 = smiles.Bracket(smiles.C, smiles.ConfigTH2, 1)
)

// Intra-residue ring-closure markers. These are scoped to one residue's
// emission and reused freely between residues; cross-link markers start
// at firstLinkRnum to stay clear of them.
const (
	ringA smiles.Rnum = 1
	ringB smiles.Rnum = 2
)

// visit emits the atoms and bonds of the residue at the given 1-based
// position. The follower must be positioned on the backbone nitrogen;
// the walk finishes on the β (carbonyl) carbon, without visiting the
// atoms of the peptide bond itself.
//
// The side-chain recipes are fixed chemistry. Only cysteine and
// threonine consult the cross-link registry; any other residue with a
// registered cross-link is a structural error.
func (r Residue) visit(pos int, links *linkRegistry, f smiles.Follower) error {
	if entry, ok := links.lookup(pos); ok {
		if err := r.visitLinked(pos, entry, f); err != nil {
			return err
		}
		// β carbon
		f.Extend(smiles.BondElided, atomC)
		return nil
	}

	switch r {
	case Gly:
		// α carbon, untagged: glycine has no side chain and no
		// stereocenter.
		f.Extend(smiles.BondElided, atomC)

	case Ala:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)

	case Val:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(2)

	case Leu:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(3)

	case Ile:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(3)

	case Met:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomS)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(4)

	case Pro:
		// The pyrrolidine ring closes back onto the backbone nitrogen,
		// so the recipe opens its marker before the α carbon exists.
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, carbonTH1)
		f.Join(smiles.BondElided, ringA)

	case Phe:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Pop(7)

	case Tyr:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, atomO)
		f.Pop(1)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Pop(7)

	case Trp:
		// Fused bicyclic indole: two markers, the five-membered ring on
		// ringA and the benzo ring on ringB.
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromN)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringB)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringB)
		f.Pop(10)

	case Ser:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomO)
		f.Pop(2)

	case Thr:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomO)
		f.Pop(2)

	case Cys:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomS)
		f.Pop(2)

	case Sec:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomSe)
		f.Pop(2)

	case Asn:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomO)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomN)
		f.Pop(3)

	case Gln:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomO)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomN)
		f.Pop(4)

	case Asp:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomO)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomO)
		f.Pop(3)

	case Glu:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomO)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomO)
		f.Pop(4)

	case Arg:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomN)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomN)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomN)
		f.Pop(6)

	case Lys:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomN)
		f.Pop(5)

	case His:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, aromN)
		f.Extend(smiles.BondElided, aromC)
		f.Extend(smiles.BondElided, aromN)
		f.Extend(smiles.BondElided, aromC)
		f.Join(smiles.BondElided, ringA)
		f.Pop(6)

	case Pyl:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomN)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomO)
		f.Pop(1)
		f.Extend(smiles.BondElided, carbonTH1)
		f.Join(smiles.BondElided, ringA)
		f.Extend(smiles.BondElided, carbonTH1)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomN)
		f.Join(smiles.BondElided, ringA)
		f.Pop(11)

	case Dha:
		// sp2 α carbon, no stereocenter.
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomC)
		f.Pop(1)

	case Dhb:
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondDouble, atomC)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(2)
	}

	// β carbon
	f.Extend(smiles.BondElided, atomC)
	return nil
}

// visitLinked emits the cross-link-aware recipe for the residue at pos.
// Cysteine bonds through its sulfur for every kind it supports;
// threonine substitutes its hydroxyl with the ring-closure bond, keeping
// the γ-methyl only under MeLan. Anything else is structurally invalid.
func (r Residue) visitLinked(pos int, entry linkEntry, f smiles.Follower) error {
	kind := entry.link.Kind
	switch {
	case r == Cys && kind == Cystine,
		r == Cys && (kind == Lan || kind == MeLan) && pos == entry.link.A:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Extend(smiles.BondElided, atomS)
		f.Join(smiles.BondElided, entry.rnum)
		f.Pop(2)
		return nil

	case r == Thr && kind == Lan && pos == entry.link.B:
		// Lanthionine is Ala-S-Ala: both hydroxyl and methyl are
		// displaced, leaving a bare CH2 with no stereocenter.
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Join(smiles.BondElided, entry.rnum)
		f.Pop(1)
		return nil

	case r == Thr && kind == MeLan && pos == entry.link.B:
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, carbonTH2)
		f.Extend(smiles.BondElided, atomC)
		f.Pop(1)
		f.Join(smiles.BondElided, entry.rnum)
		f.Pop(1)
		return nil

	default:
		return errors.New(errors.ErrCodeInvalidCrossLink,
			"position %d (%s) cannot form a %s cross-link", pos, r, kind)
	}
}
