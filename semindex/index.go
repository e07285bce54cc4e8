package semindex

import (
	"context"
	"strings"
	"sync"
)

// Index is the full Semantic Index described in §4.K: an embedding client
// plus a pluggable Store, with an exact-match fast path and a shared,
// single-flight embedding cache. One Index instance corresponds to one of
// the three logical levels (hospital names; categories per hospital; items
// per hospital+category); the Verifier Orchestrator owns one per level.
type Index struct {
	client *EmbeddingClient
	store  Store

	mu        sync.RWMutex
	byText    map[string]string // case-folded text -> entry ID, for the exact-match fast path
	cache     map[string][]float32
	inflight  map[string]*sync.WaitGroup
	inflightMu sync.Mutex
}

// New builds an Index over store using client for embedding generation.
func New(client *EmbeddingClient, store Store) *Index {
	return &Index{
		client:   client,
		store:    store,
		byText:   make(map[string]string),
		cache:    make(map[string][]float32),
		inflight: make(map[string]*sync.WaitGroup),
	}
}

func foldKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Add embeds and indexes one string under id. Index construction is
// idempotent: re-adding the same id replaces its prior entry. A failure
// embedding this one string does not affect any other entry already
// indexed (partial indexing is allowed at the caller's level).
func (idx *Index) Add(ctx context.Context, id, text string) error {
	vec, err := idx.embed(ctx, text)
	if err != nil {
		return err
	}
	if err := idx.store.Upsert(Entry{ID: id, Text: text, Embedding: vec}); err != nil {
		return err
	}
	idx.mu.Lock()
	for k, v := range idx.byText {
		if v == id {
			delete(idx.byText, k)
		}
	}
	idx.byText[foldKey(text)] = id
	idx.mu.Unlock()
	return nil
}

// AddBatch indexes many (id, text) pairs, tolerating individual failures.
func (idx *Index) AddBatch(ctx context.Context, ids, texts []string) (failed int) {
	for i := range texts {
		if err := idx.Add(ctx, ids[i], texts[i]); err != nil {
			failed++
		}
	}
	return failed
}

// Query returns the topK closest entries to text. If text exactly matches
// (case-folded, trimmed) an indexed string, that entry is returned alone
// with similarity exactly 1.0, without any embedding call.
func (idx *Index) Query(ctx context.Context, text string, topK int) ([]Match, error) {
	idx.mu.RLock()
	id, exact := idx.byText[foldKey(text)]
	idx.mu.RUnlock()
	if exact {
		if e, ok := idx.store.Get(id); ok {
			return []Match{{Entry: e, Similarity: 1.0}}, nil
		}
	}

	vec, err := idx.embed(ctx, text)
	if err != nil {
		return nil, err
	}
	return idx.store.Search(vec, topK)
}

// Count returns the number of indexed entries.
func (idx *Index) Count() int { return idx.store.Count() }

// embed returns a cached embedding for text, or generates (and caches)
// exactly one embedding call per missing key even under concurrent callers.
func (idx *Index) embed(ctx context.Context, text string) ([]float32, error) {
	key := foldKey(text)

	idx.mu.RLock()
	if v, ok := idx.cache[key]; ok {
		idx.mu.RUnlock()
		return v, nil
	}
	idx.mu.RUnlock()

	idx.inflightMu.Lock()
	idx.mu.RLock()
	if v, ok := idx.cache[key]; ok {
		idx.mu.RUnlock()
		idx.inflightMu.Unlock()
		return v, nil
	}
	idx.mu.RUnlock()
	if wg, ok := idx.inflight[key]; ok {
		idx.inflightMu.Unlock()
		wg.Wait()
		idx.mu.RLock()
		v, ok := idx.cache[key]
		idx.mu.RUnlock()
		if ok {
			return v, nil
		}
		return idx.client.Embed(ctx, text)
	}
	wg := &sync.WaitGroup{}
	wg.Add(1)
	idx.inflight[key] = wg
	idx.inflightMu.Unlock()

	defer func() {
		idx.inflightMu.Lock()
		delete(idx.inflight, key)
		idx.inflightMu.Unlock()
		wg.Done()
	}()

	vec, err := idx.client.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	idx.mu.Lock()
	idx.cache[key] = vec
	idx.mu.Unlock()

	return vec, nil
}
