package semindex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// newFakeEmbeddingServer returns an httptest server that hands out a
// deterministic unit vector per distinct prompt, plus a counter of how many
// requests it actually served (to assert on single-flight caching).
func newFakeEmbeddingServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var req embeddingRequest
		json.NewDecoder(r.Body).Decode(&req)
		vec := make([]float64, 8)
		for i, c := range req.Prompt {
			vec[i%8] += float64(c)
		}
		json.NewEncoder(w).Encode(embeddingResponse{Embedding: vec})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestIndexExactMatchFastPathSkipsEmbedding(t *testing.T) {
	srv, calls := newFakeEmbeddingServer(t)
	client := NewEmbeddingClient(srv.URL, "test-model")
	idx := New(client, NewMemoryStore())

	if err := idx.Add(context.Background(), "p1", "Paracetamol 500mg Tablet"); err != nil {
		t.Fatalf("unexpected error adding: %v", err)
	}
	callsAfterAdd := atomic.LoadInt32(calls)

	matches, err := idx.Query(context.Background(), "  PARACETAMOL 500MG TABLET  ", 5)
	if err != nil {
		t.Fatalf("unexpected error querying: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one exact-match result, got %d", len(matches))
	}
	if matches[0].Similarity != 1.0 {
		t.Errorf("expected similarity exactly 1.0 for an exact match, got %v", matches[0].Similarity)
	}
	if matches[0].Entry.ID != "p1" {
		t.Errorf("expected entry p1, got %q", matches[0].Entry.ID)
	}
	if atomic.LoadInt32(calls) != callsAfterAdd {
		t.Errorf("expected the exact-match path to skip the embedding call entirely")
	}
}

func TestIndexQueryFallsBackToSemanticSearch(t *testing.T) {
	srv, _ := newFakeEmbeddingServer(t)
	client := NewEmbeddingClient(srv.URL, "test-model")
	idx := New(client, NewMemoryStore())

	idx.Add(context.Background(), "p1", "Paracetamol 500mg Tablet")
	idx.Add(context.Background(), "p2", "Ibuprofen 400mg Tablet")

	matches, err := idx.Query(context.Background(), "Paracetamol 500mg Capsule", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected both entries back for topK=2, got %d", len(matches))
	}
}

func TestIndexEmbedSingleFlightDeduplicatesConcurrentCalls(t *testing.T) {
	srv, calls := newFakeEmbeddingServer(t)
	client := NewEmbeddingClient(srv.URL, "test-model")
	idx := New(client, NewMemoryStore())

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			idx.embed(context.Background(), "Same Text Every Time")
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(calls); got != 1 {
		t.Errorf("expected exactly 1 embedding call across %d concurrent callers for the same text, got %d", n, got)
	}
}

func TestIndexCountReflectsStore(t *testing.T) {
	srv, _ := newFakeEmbeddingServer(t)
	client := NewEmbeddingClient(srv.URL, "test-model")
	idx := New(client, NewMemoryStore())

	if idx.Count() != 0 {
		t.Fatalf("expected an empty index, got count %d", idx.Count())
	}
	idx.Add(context.Background(), "p1", "Paracetamol 500mg Tablet")
	if idx.Count() != 1 {
		t.Errorf("expected count 1 after one Add, got %d", idx.Count())
	}
}
