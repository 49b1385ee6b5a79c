package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/peptikit/peptigraph/pkg/cache"
	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/peptide"
)

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Sequence: "AG"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if opts.Notation != "code1" || opts.Cyclize != "none" {
		t.Errorf("defaults not applied: notation=%q cyclize=%q", opts.Notation, opts.Cyclize)
	}

	bad := []Options{
		{},
		{Sequence: "AG", Notation: "code2"},
		{Sequence: "AG", Cyclize: "sideways"},
		{Sequence: "AG", Formats: []string{"pdf"}},
	}
	for i, opts := range bad {
		if err := opts.ValidateAndSetDefaults(); err == nil {
			t.Errorf("case %d: expected error, got nil", i)
		}
	}
}

func TestParseCrossLinkSpec(t *testing.T) {
	tests := []struct {
		spec string
		want peptide.CrossLink
	}{
		{spec: "cystine:3:12", want: peptide.CrossLink{Kind: peptide.Cystine, A: 3, B: 12}},
		{spec: "lan:1:5", want: peptide.CrossLink{Kind: peptide.Lan, A: 1, B: 5}},
		{spec: "melan:2:7", want: peptide.CrossLink{Kind: peptide.MeLan, A: 2, B: 7}},
	}
	for _, tt := range tests {
		got, err := ParseCrossLinkSpec(tt.spec)
		if err != nil {
			t.Errorf("ParseCrossLinkSpec(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCrossLinkSpec(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}

	for _, spec := range []string{"", "lan", "lan:1", "lan:1:2:3", "ester:1:2", "lan:x:2", "lan:1:y"} {
		if _, err := ParseCrossLinkSpec(spec); err == nil {
			t.Errorf("ParseCrossLinkSpec(%q): expected error, got nil", spec)
		}
	}
}

func TestBuildProtein(t *testing.T) {
	opts := Options{
		Sequence:   "CT",
		CrossLinks: []string{"lan:1:2"},
		Cyclize:    "head-to-tail",
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validate error: %v", err)
	}
	p, err := opts.BuildProtein()
	if err != nil {
		t.Fatalf("BuildProtein error: %v", err)
	}
	if p.Length() != 2 || p.CrossLinkCount() != 1 {
		t.Errorf("length=%d links=%d", p.Length(), p.CrossLinkCount())
	}
	if p.Cyclization() != peptide.CyclizationHeadToTail {
		t.Error("cyclization not applied")
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)

	opts := Options{Sequence: "AG"}
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.SMILES != "N[C@@H](C)C(=O)NCC(=O)O" {
		t.Errorf("SMILES = %q", result.SMILES)
	}
	if result.AtomCount != 10 {
		t.Errorf("AtomCount = %d, want 10", result.AtomCount)
	}
	if result.CacheInfo.ConvertHit {
		t.Error("first run should miss the cache")
	}
	if result.SequenceHash == "" {
		t.Error("SequenceHash should be set")
	}

	// Second run hits the cache.
	again, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !again.CacheInfo.ConvertHit {
		t.Error("second run should hit the cache")
	}
	if again.SMILES != result.SMILES || again.AtomCount != result.AtomCount {
		t.Error("cached result should match the computed one")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	fresh, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if fresh.CacheInfo.ConvertHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestRunnerExecuteDOTArtifact(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)

	result, err := runner.Execute(ctx, Options{Sequence: "G", Formats: []string{FormatDOT}})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	dot := string(result.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "graph M {") {
		t.Errorf("artifact is not DOT: %q", dot)
	}
}

func TestRunnerExecuteOptionsAffectKeys(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)

	open, err := runner.Execute(ctx, Options{Sequence: "GG"})
	if err != nil {
		t.Fatal(err)
	}
	cyclic, err := runner.Execute(ctx, Options{Sequence: "GG", Cyclize: "head-to-tail"})
	if err != nil {
		t.Fatal(err)
	}
	if cyclic.CacheInfo.ConvertHit {
		t.Error("different cyclization must not share a cache entry")
	}
	if open.SMILES == cyclic.SMILES {
		t.Error("cyclization should change the output")
	}
}

func TestRunnerExecuteInvalidCrossLink(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)

	_, err := runner.Execute(ctx, Options{Sequence: "GC", CrossLinks: []string{"cystine:1:2"}})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidCrossLink {
		t.Errorf("code = %v, want INVALID_CROSSLINK", errors.GetCode(err))
	}
}

func TestRunnerConvert(t *testing.T) {
	smi, err := NewRunner(nil, nil, nil).Convert(context.Background(), Options{Sequence: "G"})
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if smi != "NCC(=O)O" {
		t.Errorf("Convert = %q", smi)
	}
}
