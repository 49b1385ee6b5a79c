// Package pkg provides the core libraries for Peptigraph sequence conversion.
//
// # Overview
//
// Peptigraph turns peptide and lanthipeptide sequences into SMILES
// molecular line notation and molecular graph diagrams. The pkg
// directory is organized into three main areas:
//
//  1. Domain logic (SMILES emission, residue chemistry, cross-links)
//  2. Input formats (modfiles, FASTA)
//  3. Infrastructure (caching, pipeline orchestration, observability)
//
// # Architecture
//
// The typical data flow through Peptigraph:
//
//	Sequence/Modfile/FASTA input
//	         ↓
//	    [peptide] package (residue templates + traversal)
//	         ↓
//	    [smiles] package (instruction stream → SMILES string)
//	         ↓
//	    [render/moldot] package (instruction stream → DOT/SVG/PNG)
//
// # Quick Start
//
// Convert a sequence and render a molecular graph:
//
//	import (
//	    "github.com/peptikit/peptigraph/pkg/peptide"
//	    "github.com/peptikit/peptigraph/pkg/render/moldot"
//	)
//
//	// 1. Parse the sequence
//	seq, _ := peptide.ParseSequence("AGCW")
//	p := peptide.New(seq)
//
//	// 2. Generate SMILES
//	smi, _ := p.SMILES()
//
//	// 3. Build the molecule graph and render it
//	b := moldot.NewBuilder()
//	_ = p.Visit(b)
//	dot := moldot.ToDOT(b.Molecule(), moldot.Options{})
//	svg, _ := moldot.RenderSVG(dot)
//
// # Main Packages
//
// ## Domain Logic
//
// [smiles] - SMILES emission primitives: atoms, bonds, ring-closure
// markers, and the Writer that assembles an instruction stream into a
// SMILES string. The Follower interface lets other consumers (such as
// moldot) receive the same stream.
//
// [peptide] - Residue templates for the 20 proteinogenic amino acids
// plus Sec, Pyl, Dha, and Dhb; Protein assembly with head-to-tail
// cyclization and disulfide, lanthionine, and methyllanthionine
// cross-links.
//
// [render/moldot] - Molecular graph rendering via Graphviz. Builds an
// atom/bond graph from the instruction stream and renders DOT, SVG,
// or PNG output.
//
// ## Input Formats
//
// [modfile] - TOML manifests describing a sequence together with its
// cyclization mode and cross-links.
//
// [fasta] - Minimal FASTA parsing for batch conversion.
//
// ## Infrastructure
//
// [pipeline] - Complete conversion pipeline (parse → convert → render)
// used by CLI and API. Ensures consistent behavior across all entry
// points.
//
// [cache] - Result and artifact caching with file, Redis, and null
// backends, plus keying helpers.
//
// [observability] - Hook interfaces for conversion and cache
// instrumentation.
//
// [errors] - Coded errors with user-facing messages.
//
// [buildinfo] - Build-time version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/peptide   # Specific package
//	go test -run Example    # Examples only
//
// [smiles]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/smiles
// [peptide]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/peptide
// [render/moldot]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/render/moldot
// [modfile]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/modfile
// [fasta]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/fasta
// [pipeline]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/peptikit/peptigraph/pkg/buildinfo
package pkg
