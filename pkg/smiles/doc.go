// Package smiles provides a streaming builder for SMILES line notation.
//
// The package models molecule construction as a depth-first walk: a
// caller emits atoms and bonds in traversal order to a [Follower], using
// [Follower.Pop] to retreat to an earlier branch point and
// [Follower.Join] to declare ring-closure bonds between non-adjacent
// atoms. [Writer] is the standard Follower implementation and renders
// the walk as a SMILES string.
//
// # Usage
//
// Build ethanol (CCO):
//
//	w := smiles.NewWriter()
//	w.Root(smiles.Aliphatic(smiles.C))
//	w.Extend(smiles.BondElided, smiles.Aliphatic(smiles.C))
//	w.Extend(smiles.BondElided, smiles.Aliphatic(smiles.O))
//	s := w.Write() // "CCO"
//
// Build cyclohexane (C1CCCCC1) with a ring closure:
//
//	w := smiles.NewWriter()
//	w.Root(smiles.Aliphatic(smiles.C))
//	w.Join(smiles.BondElided, 1)
//	for i := 0; i < 5; i++ {
//	    w.Extend(smiles.BondElided, smiles.Aliphatic(smiles.C))
//	}
//	w.Join(smiles.BondElided, 1)
//	s := w.Write() // "C1CCCCC1"
//
// Alternative Follower implementations can render the same walk to other
// representations; see the render/moldot package for a Graphviz-backed
// one.
package smiles
