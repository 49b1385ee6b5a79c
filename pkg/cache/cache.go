// Package cache stores conversion results so repeated runs over the
// same peptide skip the traversal and render steps. Two backends are
// provided: a file cache for CLI usage and a Redis cache for server
// deployments. Keys are derived from the sequence hash plus every
// option that changes the output, so a stale entry can never be
// returned for a differently configured run.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type. Results are pure functions of their key
// and could live forever; the TTLs just bound disk and Redis growth.
const (
	TTLResult   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; expired entries count as absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKeyOpts carries every conversion option that affects the
// generated SMILES.
type ResultKeyOpts struct {
	Cyclization string   `json:"cyclization"`
	CrossLinks  []string `json:"crosslinks"`
}

// ArtifactKeyOpts carries every render option that affects the
// generated artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer derives cache keys from content hashes and options.
type Keyer interface {
	// ResultKey is the key for a generated SMILES string, derived from
	// the hash of the residue sequence plus conversion options.
	ResultKey(sequenceHash string, opts ResultKeyOpts) string

	// ArtifactKey is the key for a rendered artifact, derived from the
	// hash of the SMILES string plus render options.
	ArtifactKey(smilesHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResultKey generates a key for a generated SMILES string.
func (k *DefaultKeyer) ResultKey(sequenceHash string, opts ResultKeyOpts) string {
	return hashKey("result", sequenceHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(smilesHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", smilesHash, opts)
}
