package semindex

import "testing"

func TestMemoryStoreUpsertRequiresIDAndEmbedding(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Upsert(Entry{ID: "", Embedding: []float32{1}}); err == nil {
		t.Error("expected an error for an empty ID")
	}
	if err := s.Upsert(Entry{ID: "a", Embedding: nil}); err == nil {
		t.Error("expected an error for an empty embedding")
	}
}

func TestMemoryStoreGetAndCount(t *testing.T) {
	s := NewMemoryStore()
	if s.Count() != 0 {
		t.Fatalf("expected an empty store, got count %d", s.Count())
	}
	if err := s.Upsert(Entry{ID: "a", Text: "Paracetamol", Embedding: []float32{1, 0}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("expected count 1, got %d", s.Count())
	}
	e, ok := s.Get("a")
	if !ok {
		t.Fatal("expected entry a to be found")
	}
	if e.Text != "Paracetamol" {
		t.Errorf("expected text Paracetamol, got %q", e.Text)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("did not expect to find a non-existent entry")
	}
}

func TestMemoryStoreUpsertReplacesExistingEntry(t *testing.T) {
	s := NewMemoryStore()
	s.Upsert(Entry{ID: "a", Text: "first", Embedding: []float32{1, 0}})
	s.Upsert(Entry{ID: "a", Text: "second", Embedding: []float32{0, 1}})
	if s.Count() != 1 {
		t.Fatalf("expected re-upserting the same ID not to grow the store, got count %d", s.Count())
	}
	e, _ := s.Get("a")
	if e.Text != "second" {
		t.Errorf("expected the replaced text, got %q", e.Text)
	}
}

func TestMemoryStoreSearchRanksByInnerProductDescending(t *testing.T) {
	s := NewMemoryStore()
	s.Upsert(Entry{ID: "close", Embedding: []float32{1, 0, 0}})
	s.Upsert(Entry{ID: "orthogonal", Embedding: []float32{0, 1, 0}})
	s.Upsert(Entry{ID: "opposite", Embedding: []float32{-1, 0, 0}})

	matches, err := s.Search([]float32{1, 0, 0}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Entry.ID != "close" {
		t.Errorf("expected the closest vector first, got %q", matches[0].Entry.ID)
	}
	if matches[2].Entry.ID != "opposite" {
		t.Errorf("expected the opposite vector last, got %q", matches[2].Entry.ID)
	}
}

func TestMemoryStoreSearchRespectsTopK(t *testing.T) {
	s := NewMemoryStore()
	s.Upsert(Entry{ID: "a", Embedding: []float32{1, 0}})
	s.Upsert(Entry{ID: "b", Embedding: []float32{0.9, 0.1}})
	s.Upsert(Entry{ID: "c", Embedding: []float32{0, 1}})

	matches, err := s.Search([]float32{1, 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match when topK=1, got %d", len(matches))
	}
	if matches[0].Entry.ID != "a" {
		t.Errorf("expected the single best match to be %q, got %q", "a", matches[0].Entry.ID)
	}
}
