package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	bv "billverify"
	"billverify/semindex"
)

// scriptedEmbeddingServer fakes an Ollama-compatible embeddings endpoint,
// returning a caller-chosen vector per exact prompt text so tests can pin
// down the raw cosine similarity the matcher sees, independent of whatever
// real embedding model would produce.
func scriptedEmbeddingServer(t *testing.T, vectors map[string][]float64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode embedding request: %v", err)
		}
		vec, ok := vectors[req.Prompt]
		if !ok {
			t.Fatalf("scriptedEmbeddingServer: no vector scripted for prompt %q", req.Prompt)
		}
		json.NewEncoder(w).Encode(struct {
			Embedding []float64 `json:"embedding"`
		}{Embedding: vec})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// buildIndex indexes one catalog entry under id/text and returns the index
// plus the catalog map Match expects, backed by a scripted embedding server.
func buildIndex(t *testing.T, vectors map[string][]float64, entries map[string]CatalogEntry) *semindex.Index {
	t.Helper()
	srv := scriptedEmbeddingServer(t, vectors)
	client := semindex.NewEmbeddingClient(srv.URL, "test-model")
	idx := semindex.New(client, semindex.NewMemoryStore())
	for id, entry := range entries {
		if err := idx.Add(context.Background(), id, entry.Item.ItemName); err != nil {
			t.Fatalf("failed to index %q: %v", id, err)
		}
	}
	return idx
}

// spyAdjudicator fails the test the moment it is consulted, for asserting a
// bypass branch never falls through to the LLM.
type spyAdjudicator struct{ t *testing.T }

func (s spyAdjudicator) Adjudicate(_ context.Context, _, _ string, _ float64) AdjudicationResult {
	s.t.Fatal("adjudicator was consulted when the calibration step should have bypassed it")
	return AdjudicationResult{}
}

func tieUp(name string, rate float64) bv.TieUpItem {
	return bv.TieUpItem{ItemName: name, Rate: decimal.NewFromFloat(rate), Type: bv.TieUpUnit}
}

func TestMatchRejectsHardBoundaryRegardlessOfSimilarity(t *testing.T) {
	vectors := map[string][]float64{
		"MRI Brain Scan":            {1, 0},
		"Paracetamol 500mg Tablet": {1, 0}, // identical vector: similarity would be maximal if boundary didn't block first
	}
	entries := map[string]CatalogEntry{
		"diag-1": {Item: tieUp("MRI Brain Scan", 2500), Category: bv.CategoryDiagnosticsTests},
	}
	idx := buildIndex(t, vectors, entries)
	catalog := entries

	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategoryMedicines, "Paracetamol 500mg Tablet", idx, catalog)

	if out.Decision != DecisionReject || out.FailureReason != FailureWrongCategory {
		t.Fatalf("expected REJECT/WRONG_CATEGORY, got %v/%v", out.Decision, out.FailureReason)
	}
}

func TestMatchSoftBoundaryRejectsBelowThreshold(t *testing.T) {
	// pair(SurgicalConsumables, Medicines) requires similarity >= 0.90.
	vectors := map[string][]float64{
		"Cotton Gauze Roll":    {1, 0},
		"Sterile Bandage Roll": {0.5, 0.8660254},
	}
	entries := map[string]CatalogEntry{
		"med-1": {Item: tieUp("Cotton Gauze Roll", 40), Category: bv.CategoryMedicines},
	}
	idx := buildIndex(t, vectors, entries)

	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategorySurgicalConsumables, "Sterile Bandage Roll", idx, entries)

	if out.Decision != DecisionReject || out.FailureReason != FailureCategoryConflict {
		t.Fatalf("expected REJECT/CATEGORY_CONFLICT, got %v/%v", out.Decision, out.FailureReason)
	}
}

func TestMatchSoftBoundaryProceedsAtOrAboveThreshold(t *testing.T) {
	vectors := map[string][]float64{
		"Sterile Gauze Pad Large": {1, 0},
		"Sterile Gauze Pad Big":   {0.95, 0.3122499},
	}
	entries := map[string]CatalogEntry{
		"med-1": {Item: tieUp("Sterile Gauze Pad Large", 40), Category: bv.CategoryMedicines},
	}
	idx := buildIndex(t, vectors, entries)

	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategorySurgicalConsumables, "Sterile Gauze Pad Big", idx, entries)

	if out.FailureReason == FailureCategoryConflict {
		t.Fatalf("soft boundary should have let a 0.95-similar candidate through, got %v/%v", out.Decision, out.FailureReason)
	}
	if out.Decision != DecisionAutoMatch {
		t.Fatalf("expected the high token overlap plus high similarity to auto-match, got %v/%v", out.Decision, out.FailureReason)
	}
}

func TestMatchHardConstraintBlocksDosageMismatch(t *testing.T) {
	vectors := map[string][]float64{
		"Amoxicillin 500mg Capsule": {1, 0},
		"Amoxicillin 250mg Capsule": {0.99, 0.1411},
	}
	entries := map[string]CatalogEntry{
		"med-1": {Item: tieUp("Amoxicillin 500mg Capsule", 30), Category: bv.CategoryMedicines},
	}
	idx := buildIndex(t, vectors, entries)

	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategoryMedicines, "Amoxicillin 250mg Capsule", idx, entries)

	if out.Decision != DecisionReject || out.FailureReason != FailureDosageMismatch {
		t.Fatalf("expected REJECT/DOSAGE_MISMATCH, got %v/%v", out.Decision, out.FailureReason)
	}
}

// TestCalibrationBypassesAdjudicatorOnHighRawSimilarity pins the composite
// score into [HybridLLMVerify, HybridAutoMatch) while the raw semantic
// similarity clears ItemSimilarityThreshold, so the calibration step must
// auto-match on the raw score without ever consulting the adjudicator.
func TestCalibrationBypassesAdjudicatorOnHighRawSimilarity(t *testing.T) {
	// Disjoint wording (zero jaccard/containment, zero metadata bonus) so
	// composite = 0.6*0.95 = 0.57, landing inside [0.55, 0.60).
	vectors := map[string][]float64{
		"Alpha Quantum Foo": {1, 0},
		"Bravo Nexus Bar":   {0.95, 0.3122499},
	}
	entries := map[string]CatalogEntry{
		"itm-1": {Item: tieUp("Alpha Quantum Foo", 10), Category: bv.CategoryMedicines},
	}
	idx := buildIndex(t, vectors, entries)

	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategoryMedicines, "Bravo Nexus Bar", idx, entries)

	if out.Breakdown == nil {
		t.Fatalf("expected a populated breakdown")
	}
	if out.Breakdown.Composite < 0.55 || out.Breakdown.Composite >= 0.60 {
		t.Fatalf("test setup invariant violated: composite %.4f not in [0.55, 0.60)", out.Breakdown.Composite)
	}
	if out.Decision != DecisionAutoMatch {
		t.Fatalf("expected high raw similarity to bypass the adjudicator and auto-match, got %v/%v", out.Decision, out.FailureReason)
	}
	if out.Adjudication == nil || out.Adjudication.ModelUsed != "auto_match" {
		t.Fatalf("expected ModelUsed=auto_match, got %+v", out.Adjudication)
	}
}

// TestCalibrationAutoRejectsBelowMinSimilarityWithoutAdjudicator pins the
// composite into the same LLM_VERIFY band via high token overlap while the
// raw semantic similarity falls below MinSimilarity, so calibration must
// reject outright rather than asking the adjudicator.
func TestCalibrationAutoRejectsBelowMinSimilarityWithoutAdjudicator(t *testing.T) {
	// Identical core text (after non-alphanumeric stripping) drives jaccard
	// and containment to 1.0; no medical metadata fields populated, so the
	// bonus is zero. composite = 0.6*0.3 + 0.2*1 + 0.2*1 = 0.58, inside
	// [0.55, 0.60), while the raw similarity of 0.3 is below MinSimilarity.
	vectors := map[string][]float64{
		"Zorblex Nova Prime":    {1, 0},
		"Zorblex, Nova, Prime!": {0.3, 0.9539392},
	}
	entries := map[string]CatalogEntry{
		"itm-1": {Item: tieUp("Zorblex Nova Prime", 10), Category: bv.CategoryMedicines},
	}
	idx := buildIndex(t, vectors, entries)

	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategoryMedicines, "Zorblex, Nova, Prime!", idx, entries)

	if out.Breakdown == nil {
		t.Fatalf("expected a populated breakdown")
	}
	if out.Breakdown.Composite < 0.55 || out.Breakdown.Composite >= 0.60 {
		t.Fatalf("test setup invariant violated: composite %.4f not in [0.55, 0.60)", out.Breakdown.Composite)
	}
	if out.Decision != DecisionReject || out.FailureReason != FailureLowSimilarity {
		t.Fatalf("expected REJECT/LOW_SIMILARITY without consulting the adjudicator, got %v/%v", out.Decision, out.FailureReason)
	}
}

func TestMatchRejectsWhenIndexEmpty(t *testing.T) {
	idx := semindex.New(semindex.NewEmbeddingClient("http://unused.invalid", "m"), semindex.NewMemoryStore())
	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategoryMedicines, "Paracetamol 500mg Tablet", idx, map[string]CatalogEntry{})
	if out.Decision != DecisionReject || out.FailureReason != FailureNotInTieUp {
		t.Fatalf("expected REJECT/NOT_IN_TIEUP for an empty index, got %v/%v", out.Decision, out.FailureReason)
	}
}

func TestMatchPrefilterShortCircuitsAdminNoise(t *testing.T) {
	idx := semindex.New(semindex.NewEmbeddingClient("http://unused.invalid", "m"), semindex.NewMemoryStore())
	m := NewMatcher(bv.DefaultConfig(), spyAdjudicator{t})
	out := m.Match(context.Background(), bv.CategoryMedicines, "Page 2 of 5", idx, map[string]CatalogEntry{})
	if out.Decision != DecisionReject || out.FailureReason != FailureAdminCharge || !out.IsArtifact {
		t.Fatalf("expected REJECT/ADMIN_CHARGE artifact, got %v/%v/%v", out.Decision, out.FailureReason, out.IsArtifact)
	}
}
