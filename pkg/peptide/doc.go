// Package peptide turns amino-acid sequences into SMILES molecular
// structures.
//
// The package models a peptide as a [Protein]: an ordered sequence of
// [Residue] values plus optional covalent cross-links (disulfide,
// lanthionine, methyllanthionine) and an optional head-to-tail
// cyclization mode. A Protein is built up first, then walked exactly
// once; the walk streams atom and bond instructions to a
// smiles.Follower, which renders the final notation.
//
// # Usage
//
// Plain peptide:
//
//	seq, _ := peptide.ParseSequence("AGC")
//	p := peptide.New(seq)
//	s, _ := p.SMILES()
//
// Lanthipeptide ring:
//
//	seq, _ := peptide.ParseSequence("CATT")
//	p := peptide.New(seq)
//	if err := p.AddCrossLink(peptide.CrossLink{Kind: peptide.Lan, A: 1, B: 4}); err != nil {
//	    // handle registration failure
//	}
//	s, err := p.SMILES()
//
// Errors carry machine-readable codes from the errors package:
// UNKNOWN_RESIDUE for code lookup misses, INVALID_CROSSLINK for
// structurally impossible links (reported during the walk),
// DUPLICATE_CROSSLINK and TOO_MANY_CROSSLINKS for registration
// failures. All are terminal; the caller fixes the input and rebuilds
// the aggregate rather than retrying.
package peptide
