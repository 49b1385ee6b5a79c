package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/peptikit/peptigraph/pkg/cache"
	"github.com/peptikit/peptigraph/pkg/observability"
	"github.com/peptikit/peptigraph/pkg/peptide"
	"github.com/peptikit/peptigraph/pkg/render/moldot"
	"github.com/peptikit/peptigraph/pkg/smiles"
)

// Runner executes the conversion pipeline with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer falls back to the default scheme, a nil cache disables
// caching, a nil logger falls back to the package default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// resultEnvelope is the cached form of a conversion result.
type resultEnvelope struct {
	SMILES    string `json:"smiles"`
	AtomCount int    `json:"atom_count"`
}

// Execute runs the complete build → convert → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	p, err := opts.BuildProtein()
	if err != nil {
		return nil, err
	}

	result := &Result{
		SequenceHash: r.sequenceHash(opts),
		Residues:     p.Length(),
		Artifacts:    make(map[string][]byte),
	}

	convertStart := time.Now()
	env, convertHit, err := r.convert(ctx, p, result.SequenceHash, opts)
	if err != nil {
		return nil, err
	}
	result.SMILES = env.SMILES
	result.AtomCount = env.AtomCount
	result.Stats.ConvertTime = time.Since(convertStart)
	result.CacheInfo.ConvertHit = convertHit

	logger.Info("converted peptide",
		"residues", p.Length(),
		"atoms", env.AtomCount,
		"cached", convertHit,
		"duration", result.Stats.ConvertTime)

	if len(opts.Formats) == 0 {
		return result, nil
	}

	renderStart := time.Now()
	renderHit := true
	for _, format := range opts.Formats {
		data, hit, err := r.render(ctx, p, env.SMILES, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		renderHit = renderHit && hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Convert runs the pipeline without rendering and returns the SMILES
// string.
func (r *Runner) Convert(ctx context.Context, opts Options) (string, error) {
	opts.Formats = nil
	result, err := r.Execute(ctx, opts)
	if err != nil {
		return "", err
	}
	return result.SMILES, nil
}

func (r *Runner) convert(ctx context.Context, p *peptide.Protein, seqHash string, opts Options) (resultEnvelope, bool, error) {
	key := r.Keyer.ResultKey(seqHash, cache.ResultKeyOpts{
		Cyclization: opts.Cyclize,
		CrossLinks:  opts.CrossLinks,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var env resultEnvelope
			if err := json.Unmarshal(data, &env); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				return env, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	start := time.Now()
	observability.Generator().OnConvertStart(ctx, p.Length())

	w := smiles.NewWriter()
	err := p.Visit(w)
	env := resultEnvelope{}
	if err == nil {
		env = resultEnvelope{SMILES: w.Write(), AtomCount: w.AtomCount()}
	}
	observability.Generator().OnConvertComplete(ctx, p.Length(), env.AtomCount, time.Since(start), err)
	if err != nil {
		return resultEnvelope{}, false, err
	}

	if data, err := json.Marshal(env); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLResult)
		observability.Cache().OnCacheSet(ctx, "result", len(data))
	}
	return env, false, nil
}

func (r *Runner) render(ctx context.Context, p *peptide.Protein, smi, format string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(cache.Hash([]byte(smi)), cache.ArtifactKeyOpts{Format: format})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	start := time.Now()
	observability.Generator().OnRenderStart(ctx, format)
	data, err := renderFormat(p, format)
	observability.Generator().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	return data, false, nil
}

func renderFormat(p *peptide.Protein, format string) ([]byte, error) {
	b := moldot.NewBuilder()
	if err := p.Visit(b); err != nil {
		return nil, err
	}
	dot := moldot.ToDOT(b.Molecule(), moldot.Options{})

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return moldot.RenderSVG(dot)
	case FormatPNG:
		return moldot.RenderPNG(dot)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// sequenceHash derives the input identity for cache keys. Notation is
// included so an ambiguous string can never alias across notations.
func (r *Runner) sequenceHash(opts Options) string {
	return cache.Hash([]byte(opts.Notation + ":" + opts.Sequence))
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
