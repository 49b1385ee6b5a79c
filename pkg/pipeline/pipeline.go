// Package pipeline provides the core conversion pipeline for peptigraph.
//
// This package implements the complete build → convert → render pipeline
// used by the CLI and the HTTP API. Centralizing it here keeps caching
// and instrumentation behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Parse the sequence and modification options into a peptide
//  2. Convert: Walk the peptide into SMILES line notation
//  3. Render: Generate graph artifacts (DOT, SVG, PNG) when requested
//
// Convert and render results are cached under keys derived from the
// input hash plus every option that changes the output.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Sequence: "AGCW",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.SMILES)
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/peptide"
)

// Output formats for render artifacts.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
}

// Options contains all configuration for one pipeline run.
// The struct supports JSON serialization for API requests.
type Options struct {
	// Build options
	Sequence   string   `json:"sequence"`
	Notation   string   `json:"notation,omitempty"`   // "code1" (default) or "code3"
	Cyclize    string   `json:"cyclize,omitempty"`    // "none" (default) or "head-to-tail"
	CrossLinks []string `json:"crosslinks,omitempty"` // "kind:a:b" specs

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache on read and overwrites it on write.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Sequence == "" {
		return errors.New(errors.ErrCodeInvalidInput, "sequence is required")
	}
	if o.Notation == "" {
		o.Notation = "code1"
	}
	if o.Notation != "code1" && o.Notation != "code3" {
		return errors.New(errors.ErrCodeInvalidInput, "unknown notation %q (want code1 or code3)", o.Notation)
	}
	if o.Cyclize == "" {
		o.Cyclize = "none"
	}
	if o.Cyclize != "none" && o.Cyclize != "head-to-tail" {
		return errors.New(errors.ErrCodeInvalidInput, "unknown cyclization mode %q", o.Cyclize)
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot, svg, or png)", f)
		}
	}
	return nil
}

// BuildProtein constructs the peptide described by the options.
// ValidateAndSetDefaults must have been called first.
func (o *Options) BuildProtein() (*peptide.Protein, error) {
	var (
		seq []peptide.Residue
		err error
	)
	if o.Notation == "code3" {
		seq, err = peptide.ParseSequence3(o.Sequence)
	} else {
		seq, err = peptide.ParseSequence(o.Sequence)
	}
	if err != nil {
		return nil, err
	}

	p := peptide.New(seq)
	if o.Cyclize == "head-to-tail" {
		p.Cyclize(peptide.CyclizationHeadToTail)
	}
	for _, spec := range o.CrossLinks {
		link, err := ParseCrossLinkSpec(spec)
		if err != nil {
			return nil, err
		}
		if err := p.AddCrossLink(link); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseCrossLinkSpec parses a "kind:a:b" cross-link spec, e.g.
// "lan:1:5" or "cystine:3:12".
func ParseCrossLinkSpec(spec string) (peptide.CrossLink, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return peptide.CrossLink{}, errors.New(errors.ErrCodeInvalidInput,
			"cross-link spec %q is not kind:a:b", spec)
	}
	kind, err := peptide.ParseCrossLinkKind(parts[0])
	if err != nil {
		return peptide.CrossLink{}, err
	}
	a, err := strconv.Atoi(parts[1])
	if err != nil {
		return peptide.CrossLink{}, errors.New(errors.ErrCodeInvalidInput,
			"cross-link spec %q: %q is not a position", spec, parts[1])
	}
	b, err := strconv.Atoi(parts[2])
	if err != nil {
		return peptide.CrossLink{}, errors.New(errors.ErrCodeInvalidInput,
			"cross-link spec %q: %q is not a position", spec, parts[2])
	}
	return peptide.CrossLink{Kind: kind, A: a, B: b}, nil
}

// Stats records per-stage timing for one run.
type Stats struct {
	ConvertTime time.Duration `json:"convert_time"`
	RenderTime  time.Duration `json:"render_time"`
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	ConvertHit bool `json:"convert_hit"`
	RenderHit  bool `json:"render_hit"`
}

// Result is the output of a pipeline run.
type Result struct {
	// SMILES is the generated line notation.
	SMILES string `json:"smiles"`

	// AtomCount is the number of atoms emitted.
	AtomCount int `json:"atom_count"`

	// Residues is the sequence length.
	Residues int `json:"residues"`

	// SequenceHash identifies the input for cache keys and API replies.
	SequenceHash string `json:"sequence_hash"`

	// Artifacts maps format to rendered bytes, one entry per requested
	// format.
	Artifacts map[string][]byte `json:"-"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache_info"`
}
