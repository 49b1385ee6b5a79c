package peptide_test

import (
	"fmt"

	"github.com/peptikit/peptigraph/pkg/peptide"
)

func ExampleProtein_SMILES() {
	seq, _ := peptide.ParseSequence("AG")
	s, _ := peptide.New(seq).SMILES()
	fmt.Println(s)
	// Output: N[C@@H](C)C(=O)NCC(=O)O
}

func ExampleProtein_AddCrossLink() {
	seq, _ := peptide.ParseSequence("CC")
	p := peptide.New(seq)
	p.AddCrossLink(peptide.CrossLink{Kind: peptide.Cystine, A: 1, B: 2})
	s, _ := p.SMILES()
	fmt.Println(s)
	// Output: N[C@@H](CS3)C(=O)N[C@@H](CS3)C(=O)O
}

func ExampleProtein_Cyclize() {
	seq, _ := peptide.ParseSequence("GG")
	p := peptide.New(seq)
	p.Cyclize(peptide.CyclizationHeadToTail)
	s, _ := p.SMILES()
	fmt.Println(s)
	// Output: N0CC(=O)NCC0=O
}
