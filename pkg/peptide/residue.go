package peptide

import (
	"strings"

	"github.com/peptikit/peptigraph/pkg/errors"
)

// Residue is one amino-acid unit of a sequence. The set is closed: the
// 20 standard proteinogenic L-amino acids, selenocysteine, pyrrolysine,
// and the two dehydro residues found in lanthipeptides.
type Residue uint8

// Residue variants, by three-letter code.
const (
	Ala Residue = iota // alanine
	Arg                // arginine
	Asn                // asparagine
	Asp                // aspartic acid
	Cys                // cysteine
	Gln                // glutamine
	Glu                // glutamic acid
	Gly                // glycine
	His                // histidine
	Ile                // isoleucine
	Leu                // leucine
	Lys                // lysine
	Met                // methionine
	Phe                // phenylalanine
	Pro                // proline
	Ser                // serine
	Thr                // threonine
	Trp                // tryptophan
	Tyr                // tyrosine
	Val                // valine
	Sec                // selenocysteine
	Pyl                // pyrrolysine
	Dha                // 2,3-didehydroalanine
	Dhb                // 2,3-didehydrobutyrine
)

// residueCount is the number of Residue variants.
const residueCount = 24

// code3 maps each residue to its three-letter code, indexed by variant.
var code3 = [residueCount]string{
	"Ala", "Arg", "Asn", "Asp", "Cys", "Gln", "Glu", "Gly",
	"His", "Ile", "Leu", "Lys", "Met", "Phe", "Pro", "Ser",
	"Thr", "Trp", "Tyr", "Val", "Sec", "Pyl", "Dha", "Dhb",
}

// code1 maps each residue to its one-letter code; 0 for the dehydro
// residues, which have no one-letter code.
var code1 = [residueCount]byte{
	'A', 'R', 'N', 'D', 'C', 'Q', 'E', 'G',
	'H', 'I', 'L', 'K', 'M', 'F', 'P', 'S',
	'T', 'W', 'Y', 'V', 'U', 'O', 0, 0,
}

// String returns the three-letter code.
func (r Residue) String() string {
	if int(r) >= residueCount {
		return "???"
	}
	return code3[r]
}

// Code1 returns the one-letter code, or false for residues that have
// none (Dha, Dhb).
func (r Residue) Code1() (byte, bool) {
	if int(r) >= residueCount || code1[r] == 0 {
		return 0, false
	}
	return code1[r], true
}

// byCode1 and byCode3 are the inverse lookup tables, built once at init.
var (
	byCode1 = map[byte]Residue{}
	byCode3 = map[string]Residue{}
)

func init() {
	for r := Residue(0); r < residueCount; r++ {
		byCode3[code3[r]] = r
		if code1[r] != 0 {
			byCode1[code1[r]] = r
		}
	}
}

// FromCode1 resolves a one-letter residue code. The 22 valid codes are
// the standard 20 plus U (selenocysteine) and O (pyrrolysine).
func FromCode1(c byte) (Residue, error) {
	if r, ok := byCode1[c]; ok {
		return r, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownResidue, "unknown residue code %q", string(c))
}

// FromCode3 resolves a three-letter residue code ("Ala" through "Dhb",
// 24 codes). Lookup is case-sensitive.
func FromCode3(s string) (Residue, error) {
	if r, ok := byCode3[s]; ok {
		return r, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownResidue, "unknown residue code %q", s)
}

// ParseSequence parses a one-letter sequence string, e.g. "AGCW".
func ParseSequence(s string) ([]Residue, error) {
	if err := errors.ValidateSequenceInput(s); err != nil {
		return nil, err
	}
	out := make([]Residue, 0, len(s))
	for i := 0; i < len(s); i++ {
		r, err := FromCode1(s[i])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSequence, err, "position %d", i+1)
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseSequence3 parses a three-letter sequence with dash or whitespace
// separators, e.g. "Ala-Gly-Dhb".
func ParseSequence3(s string) ([]Residue, error) {
	if err := errors.ValidateSequenceInput(s); err != nil {
		return nil, err
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSequence, "no residue codes in %q", s)
	}
	out := make([]Residue, 0, len(fields))
	for i, f := range fields {
		r, err := FromCode3(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSequence, err, "position %d", i+1)
		}
		out = append(out, r)
	}
	return out, nil
}
