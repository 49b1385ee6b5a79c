package smiles

import "fmt"

// BondKind is the order/direction of a bond between two atoms.
type BondKind uint8

// Bond kinds. BondElided is the default single-or-aromatic bond and is
// never written; BondSingle carries the same order but may be written
// explicitly where notation requires it.
const (
	BondElided BondKind = iota
	BondSingle
	BondDouble
	BondTriple
	BondAromatic
	BondUp
	BondDown
)

// symbol returns the bond as written in SMILES output. Single bonds
// collapse to the elided form: writing "-" is legal but never required
// for the structures this package produces.
func (b BondKind) symbol() string {
	switch b {
	case BondElided, BondSingle:
		return ""
	case BondDouble:
		return "="
	case BondTriple:
		return "#"
	case BondAromatic:
		return ":"
	case BondUp:
		return "/"
	case BondDown:
		return `\`
	default:
		return ""
	}
}

// String returns a human-readable name for the bond kind.
func (b BondKind) String() string {
	switch b {
	case BondElided:
		return "elided"
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondAromatic:
		return "aromatic"
	case BondUp:
		return "up"
	case BondDown:
		return "down"
	default:
		return fmt.Sprintf("BondKind(%d)", uint8(b))
	}
}

// Rnum is a ring-closure marker. The SMILES marker space allows values
// 0 through 99; values above 9 render in the two-digit %nn form.
type Rnum uint8

// MaxRnum is the largest marker the notation can express.
const MaxRnum Rnum = 99

// String renders the marker as it appears after an atom token.
func (r Rnum) String() string {
	if r < 10 {
		return fmt.Sprintf("%d", r)
	}
	return fmt.Sprintf("%%%d", r)
}
