// Package moldot renders peptide molecules as graph diagrams.
//
// # Overview
//
// The [Builder] consumes the same instruction stream as the SMILES
// writer, so a single peptide walk can produce both the line notation
// and a drawable molecule graph:
//
//	b := moldot.NewBuilder()
//	if err := p.Visit(b); err != nil {
//	    return err
//	}
//	dot := moldot.ToDOT(b.Molecule(), moldot.Options{})
//	svg, err := moldot.RenderSVG(dot)
//
// # DOT Format
//
// [ToDOT] produces Graphviz DOT source using the neato layout engine,
// which places atoms by force simulation rather than rank. Ring
// closures (backbone cyclization, disulfide and thioether bridges)
// appear as dashed edges.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// and PNG rendering; no external Graphviz installation is needed.
package moldot
