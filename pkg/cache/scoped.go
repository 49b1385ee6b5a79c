package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each deployment or
// schema revision its own namespace in a shared backend. Bump the
// prefix when the key contents change shape and old entries become
// unreadable rather than merely stale.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResultKey generates a prefixed key for a generated SMILES string.
func (k *ScopedKeyer) ResultKey(sequenceHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(sequenceHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(smilesHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(smilesHash, opts)
}
