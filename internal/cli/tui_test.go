package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeSequence(m ExplorerModel, s string) ExplorerModel {
	for _, r := range s {
		updated, _ := m.Update(keyRune(r))
		m = updated.(ExplorerModel)
	}
	return m
}

func TestExplorerTyping(t *testing.T) {
	m := typeSequence(NewExplorerModel(), "ag")

	if m.Sequence != "AG" {
		t.Errorf("Sequence = %q, want %q", m.Sequence, "AG")
	}
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	want := "N[C@@H](C)C(=O)NCC(=O)O"
	if m.smiles != want {
		t.Errorf("smiles = %q, want %q", m.smiles, want)
	}
	if len(m.residues) != 2 {
		t.Errorf("residues = %d, want 2", len(m.residues))
	}
}

func TestExplorerBackspace(t *testing.T) {
	m := typeSequence(NewExplorerModel(), "AG")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(ExplorerModel)

	if m.Sequence != "A" {
		t.Errorf("Sequence = %q, want %q", m.Sequence, "A")
	}
	if m.smiles != "N[C@@H](C)C(=O)O" {
		t.Errorf("smiles = %q, want %q", m.smiles, "N[C@@H](C)C(=O)O")
	}

	// Backspace on an empty sequence is a no-op.
	m = NewExplorerModel()
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(ExplorerModel)
	if m.Sequence != "" {
		t.Errorf("Sequence = %q, want empty", m.Sequence)
	}
}

func TestExplorerCyclizeToggle(t *testing.T) {
	m := typeSequence(NewExplorerModel(), "GG")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ExplorerModel)

	if !m.Cyclize {
		t.Fatal("tab should enable cyclization")
	}
	if m.smiles != "N0CC(=O)NCC0=O" {
		t.Errorf("smiles = %q, want %q", m.smiles, "N0CC(=O)NCC0=O")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ExplorerModel)
	if m.Cyclize {
		t.Error("second tab should disable cyclization")
	}
}

func TestExplorerIgnoresNonLetters(t *testing.T) {
	m := typeSequence(NewExplorerModel(), "A1G")

	if m.Sequence != "AG" {
		t.Errorf("Sequence = %q, want %q (digits ignored)", m.Sequence, "AG")
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorerModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
}

func TestExplorerView(t *testing.T) {
	m := typeSequence(NewExplorerModel(), "A")
	view := m.View()

	if !strings.Contains(view, "N[C@@H](C)C(=O)O") {
		t.Errorf("view should contain the SMILES string, got:\n%s", view)
	}
	if !strings.Contains(view, "1:Ala") {
		t.Errorf("view should contain the residue breakdown, got:\n%s", view)
	}
}
