package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Adjudicator resolves a borderline (LLM_VERIFY) match by consulting a
// language model with the original, un-normalised texts plus the semantic
// similarity already computed. Modelled as a synchronous call bounded by
// ctx, per the Design Notes' "coroutine control flow" replacement.
type Adjudicator interface {
	Adjudicate(ctx context.Context, billText, candidateText string, similarity float64) AdjudicationResult
}

// NoopAdjudicator always rejects; useful when no adjudicator endpoint is
// configured, so LLM_VERIFY decisions degrade to REJECT rather than
// blocking on a network call that will never succeed.
type NoopAdjudicator struct{}

func (NoopAdjudicator) Adjudicate(_ context.Context, _, _ string, _ float64) AdjudicationResult {
	return AdjudicationResult{Match: false, Confidence: 0, ModelUsed: "noop"}
}

// OllamaAdjudicator consults an Ollama chat endpoint, mirroring the
// teacher's chat_handler.go request/response shapes.
type OllamaAdjudicator struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewOllamaAdjudicator builds an adjudicator with a bounded request timeout.
func NewOllamaAdjudicator(endpoint, model string) *OllamaAdjudicator {
	return &OllamaAdjudicator{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

// Adjudicate asks the model whether billText and candidateText name the
// same billable item. On any transport failure it returns an error-carrying
// result rather than panicking; the matcher treats that as REJECT.
func (a *OllamaAdjudicator) Adjudicate(ctx context.Context, billText, candidateText string, similarity float64) AdjudicationResult {
	prompt := fmt.Sprintf(
		"Bill line item: %q\nCandidate tie-up item: %q\nSemantic similarity: %.2f\n"+
			"Answer strictly with MATCH or NO_MATCH, then a confidence 0-1 on the next line.",
		billText, candidateText, similarity,
	)

	reqBody, err := json.Marshal(ollamaChatRequest{
		Model:    a.model,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	})
	if err != nil {
		return AdjudicationResult{Error: fmt.Errorf("failed to marshal adjudicator request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return AdjudicationResult{Error: fmt.Errorf("failed to build adjudicator request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return AdjudicationResult{Error: fmt.Errorf("adjudicator call failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return AdjudicationResult{Error: fmt.Errorf("adjudicator returned status %d: %s", resp.StatusCode, string(body))}
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return AdjudicationResult{Error: fmt.Errorf("failed to decode adjudicator response: %w", err)}
	}

	match := bytes.Contains([]byte(out.Message.Content), []byte("MATCH")) &&
		!bytes.Contains([]byte(out.Message.Content), []byte("NO_MATCH"))

	return AdjudicationResult{Match: match, Confidence: similarity, ModelUsed: a.model}
}
