package smiles

import (
	"fmt"
	"strings"
)

// Element is a chemical element symbol as written in SMILES.
type Element string

// Elements used by peptide emission. The set is not exhaustive; any
// valid symbol can be used as an Element value.
const (
	B  Element = "B"
	C  Element = "C"
	N  Element = "N"
	O  Element = "O"
	P  Element = "P"
	S  Element = "S"
	F  Element = "F"
	Cl Element = "Cl"
	Br Element = "Br"
	I  Element = "I"
	Se Element = "Se"
)

// Config is a tetrahedral configuration descriptor for bracket atoms.
type Config string

// Tetrahedral configurations. TH1 is anticlockwise (@), TH2 clockwise (@@).
const (
	ConfigNone Config = ""
	ConfigTH1  Config = "@"
	ConfigTH2  Config = "@@"
)

// AtomKind describes a single atom to be emitted.
//
// An AtomKind is either an organic-subset atom (aliphatic or aromatic,
// written bare) or a bracket atom carrying explicit isotope,
// configuration, hydrogen count, and charge. The zero value is not a
// valid atom; use [Aliphatic], [Aromatic], or [Bracket].
type AtomKind struct {
	Element  Element
	Aromatic bool

	// Bracket marks the atom as a bracket atom; the remaining fields
	// apply only when it is set.
	Bracket bool
	Isotope int
	Config  Config
	HCount  int
	Charge  int
}

// Aliphatic returns an organic-subset aliphatic atom.
func Aliphatic(e Element) AtomKind {
	return AtomKind{Element: e}
}

// Aromatic returns an organic-subset aromatic atom, written lowercase.
func Aromatic(e Element) AtomKind {
	return AtomKind{Element: e, Aromatic: true}
}

// Bracket returns a bracket atom with the given configuration and
// virtual hydrogen count. Isotope and charge default to zero; set them
// on the returned value when needed.
func Bracket(e Element, cfg Config, hcount int) AtomKind {
	return AtomKind{Element: e, Bracket: true, Config: cfg, HCount: hcount}
}

// token renders the atom as it appears in the output string.
func (a AtomKind) token() string {
	sym := string(a.Element)
	if a.Aromatic {
		sym = strings.ToLower(sym)
	}
	if !a.Bracket {
		return sym
	}

	var b strings.Builder
	b.WriteByte('[')
	if a.Isotope > 0 {
		fmt.Fprintf(&b, "%d", a.Isotope)
	}
	b.WriteString(sym)
	b.WriteString(string(a.Config))
	switch {
	case a.HCount == 1:
		b.WriteByte('H')
	case a.HCount > 1:
		fmt.Fprintf(&b, "H%d", a.HCount)
	}
	switch {
	case a.Charge == 1:
		b.WriteByte('+')
	case a.Charge == -1:
		b.WriteByte('-')
	case a.Charge > 1:
		fmt.Fprintf(&b, "+%d", a.Charge)
	case a.Charge < -1:
		fmt.Fprintf(&b, "%d", a.Charge)
	}
	b.WriteByte(']')
	return b.String()
}

// String returns the SMILES token for the atom.
func (a AtomKind) String() string { return a.token() }
