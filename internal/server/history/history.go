// Package history stores completed conversions so the API can replay
// them by id. Two backends are provided: an in-memory store for
// development and tests, and a MongoDB store for deployments that need
// persistence across restarts.
package history

import (
	"context"
	"time"
)

// Entry is one stored conversion.
type Entry struct {
	ID         string    `bson:"_id" json:"id"`
	Sequence   string    `bson:"sequence" json:"sequence"`
	Notation   string    `bson:"notation" json:"notation"`
	Cyclize    string    `bson:"cyclize" json:"cyclize"`
	CrossLinks []string  `bson:"crosslinks,omitempty" json:"crosslinks,omitempty"`
	SMILES     string    `bson:"smiles" json:"smiles"`
	AtomCount  int       `bson:"atom_count" json:"atom_count"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Store is the interface for history backends.
type Store interface {
	// Get retrieves an entry by id. Returns nil, nil if the entry does
	// not exist.
	Get(ctx context.Context, id string) (*Entry, error)

	// Put stores an entry, replacing any existing entry with the same
	// id.
	Put(ctx context.Context, entry *Entry) error

	// List returns the most recent entries, newest first, up to limit.
	List(ctx context.Context, limit int) ([]*Entry, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
