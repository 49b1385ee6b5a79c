// Package modfile loads peptide modification manifests. A manifest is a
// TOML file declaring the sequence, the backbone cyclization mode, and
// any cross-links, for peptides too decorated to describe on a command
// line:
//
//	[peptide]
//	sequence = "ITSISLCTPGCKTGALMGCNMKTATCHCSIHVSK"
//	cyclize = "none"
//
//	[[crosslink]]
//	kind = "lan"
//	a = 3
//	b = 7
package modfile

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/peptide"
)

type manifest struct {
	Peptide struct {
		Sequence string `toml:"sequence"`
		Notation string `toml:"notation"`
		Cyclize  string `toml:"cyclize"`
	} `toml:"peptide"`
	CrossLinks []crossLinkEntry `toml:"crosslink"`
}

type crossLinkEntry struct {
	Kind string `toml:"kind"`
	A    int    `toml:"a"`
	B    int    `toml:"b"`
}

// Load reads a manifest from path and builds the peptide it declares.
func Load(path string) (*peptide.Protein, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModfile, err, "read %s", path)
	}
	return Parse(data)
}

// Parse builds a peptide from manifest bytes.
func Parse(data []byte) (*peptide.Protein, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModfile, err, "decode manifest")
	}
	if m.Peptide.Sequence == "" {
		return nil, errors.New(errors.ErrCodeInvalidModfile, "manifest declares no sequence")
	}

	seq, err := parseSequence(m.Peptide.Sequence, m.Peptide.Notation)
	if err != nil {
		return nil, err
	}

	p := peptide.New(seq)

	mode, err := parseCyclize(m.Peptide.Cyclize)
	if err != nil {
		return nil, err
	}
	p.Cyclize(mode)

	for _, entry := range m.CrossLinks {
		kind, err := peptide.ParseCrossLinkKind(entry.Kind)
		if err != nil {
			return nil, err
		}
		link := peptide.CrossLink{Kind: kind, A: entry.A, B: entry.B}
		if err := p.AddCrossLink(link); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseSequence(s, notation string) ([]peptide.Residue, error) {
	switch strings.ToLower(notation) {
	case "", "code1":
		return peptide.ParseSequence(s)
	case "code3":
		return peptide.ParseSequence3(s)
	default:
		return nil, errors.New(errors.ErrCodeInvalidModfile, "unknown notation %q (want code1 or code3)", notation)
	}
}

func parseCyclize(s string) (peptide.Cyclization, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return peptide.CyclizationNone, nil
	case "head-to-tail":
		return peptide.CyclizationHeadToTail, nil
	default:
		return peptide.CyclizationNone, errors.New(errors.ErrCodeInvalidModfile, "unknown cyclization mode %q", s)
	}
}
