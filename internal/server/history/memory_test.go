package history

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	// Absent id returns nil, nil
	e, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if e != nil {
		t.Error("Get of absent id should return nil")
	}

	entry := &Entry{
		ID:        "abc",
		Sequence:  "AG",
		Notation:  "code1",
		SMILES:    "N[C@@H](C)C(=O)NCC(=O)O",
		AtomCount: 10,
		CreatedAt: time.Now(),
	}
	if err := s.Put(ctx, entry); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil || got.SMILES != entry.SMILES {
		t.Errorf("Get = %+v", got)
	}

	// Returned entries are copies
	got.SMILES = "mutated"
	again, _ := s.Get(ctx, "abc")
	if again.SMILES != entry.SMILES {
		t.Error("mutating a returned entry must not affect the store")
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now()
	for i, id := range []string{"a", "b", "c"} {
		err := s.Put(ctx, &Entry{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Second)})
		if err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(entries))
	}
	if entries[0].ID != "c" || entries[1].ID != "b" {
		t.Errorf("List order = %s, %s; want c, b", entries[0].ID, entries[1].ID)
	}
}
