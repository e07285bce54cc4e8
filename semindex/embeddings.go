// Package semindex provides the normalised-embedding inner-product
// nearest-neighbour store used to resolve hospitals, categories, and items
// by semantic similarity, per the Semantic Index design.
package semindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"
)

// EmbeddingClient generates dense embeddings via an Ollama-compatible HTTP
// endpoint, adapted directly from the teacher's rag.EmbeddingClient.
type EmbeddingClient struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewEmbeddingClient builds a client with a 60-second request timeout,
// matching the teacher's embedding client.
func NewEmbeddingClient(endpoint, model string) *EmbeddingClient {
	return &EmbeddingClient{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type embeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed generates an embedding for a single text.
func (e *EmbeddingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	reqBody, err := json.Marshal(embeddingRequest{Model: e.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call embeddings API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embeddings API returned status %d: %s", resp.StatusCode, string(body))
	}

	var out embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	vec := make([]float32, len(out.Embedding))
	for i, v := range out.Embedding {
		vec[i] = float32(v)
	}
	return normalize(vec), nil
}

// EmbedBatch generates embeddings for multiple texts concurrently, capped
// at a fixed concurrency, matching the teacher's semaphore pattern.
func (e *EmbeddingClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	type result struct {
		index int
		vec   []float32
		err   error
	}
	results := make(chan result, len(texts))
	const maxConcurrency = 5
	sem := make(chan struct{}, maxConcurrency)

	for i, text := range texts {
		go func(idx int, txt string) {
			sem <- struct{}{}
			defer func() { <-sem }()
			vec, err := e.Embed(ctx, txt)
			if err != nil {
				log.Printf("semindex: failed to embed item %d: %v", idx, err)
			}
			results <- result{index: idx, vec: vec, err: err}
		}(i, text)
	}

	ok := 0
	for range texts {
		r := <-results
		if r.err == nil {
			out[r.index] = r.vec
			ok++
		}
	}
	if ok == 0 && len(texts) > 0 {
		return nil, fmt.Errorf("failed to generate any embeddings")
	}
	return out, nil
}

func normalize(v []float32) []float32 {
	var sumSq float64
	for _, x := range v {
		sumSq += float64(x) * float64(x)
	}
	if sumSq == 0 {
		return v
	}
	norm := float32(1.0 / math.Sqrt(sumSq))
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = x * norm
	}
	return out
}
