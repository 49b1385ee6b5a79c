package modfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peptikit/peptigraph/pkg/errors"
)

func TestParse(t *testing.T) {
	data := []byte(`
[peptide]
sequence = "CTC"

[[crosslink]]
kind = "lan"
a = 1
b = 2
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.Length() != 3 {
		t.Errorf("Length = %d, want 3", p.Length())
	}
	if p.CrossLinkCount() != 1 {
		t.Errorf("CrossLinkCount = %d, want 1", p.CrossLinkCount())
	}
	got, err := p.SMILES()
	if err != nil {
		t.Fatalf("SMILES error: %v", err)
	}
	want := "N[C@@H](CS3)C(=O)N[C@@H](C3)C(=O)N[C@@H](CS)C(=O)O"
	if got != want {
		t.Errorf("SMILES = %q, want %q", got, want)
	}
}

func TestParseThreeLetter(t *testing.T) {
	data := []byte(`
[peptide]
sequence = "Ala-Dha-Gly"
notation = "code3"
cyclize = "head-to-tail"
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got, err := p.SMILES()
	if err != nil {
		t.Fatalf("SMILES error: %v", err)
	}
	want := "N0[C@@H](C)C(=O)NC(=C)C(=O)NCC0=O"
	if got != want {
		t.Errorf("SMILES = %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{name: "malformed toml", data: "[peptide\n", code: errors.ErrCodeInvalidModfile},
		{name: "missing sequence", data: "[peptide]\ncyclize = \"none\"\n", code: errors.ErrCodeInvalidModfile},
		{name: "unknown notation", data: "[peptide]\nsequence = \"GG\"\nnotation = \"codex\"\n", code: errors.ErrCodeInvalidModfile},
		{name: "unknown cyclization", data: "[peptide]\nsequence = \"GG\"\ncyclize = \"sideways\"\n", code: errors.ErrCodeInvalidModfile},
		{name: "unknown crosslink kind", data: "[peptide]\nsequence = \"CC\"\n[[crosslink]]\nkind = \"ester\"\na = 1\nb = 2\n", code: errors.ErrCodeInvalidInput},
		{name: "out of range endpoint", data: "[peptide]\nsequence = \"CC\"\n[[crosslink]]\nkind = \"cystine\"\na = 1\nb = 9\n", code: errors.ErrCodeInvalidPosition},
		{name: "bad residue code", data: "[peptide]\nsequence = \"GXG\"\n", code: errors.ErrCodeInvalidSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.GetCode(err) != tt.code {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mods.toml")
	if err := os.WriteFile(path, []byte("[peptide]\nsequence = \"AG\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if p.Length() != 2 {
		t.Errorf("Length = %d, want 2", p.Length())
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidModfile {
		t.Errorf("code = %v, want INVALID_MODFILE", errors.GetCode(err))
	}
}
