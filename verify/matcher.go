package verify

import (
	"context"

	bv "billverify"
	"billverify/medcore"
	"billverify/semindex"
)

// CatalogEntry pairs a tie-up item with the category it was indexed under,
// so the matcher can enforce the hard/soft category boundary matrix.
type CatalogEntry struct {
	Item     bv.TieUpItem
	Category bv.Category
}

// Outcome is the Matcher's full per-item result before price checking.
type Outcome struct {
	Decision      MatchDecision
	FailureReason FailureReason
	IsArtifact    bool
	Matched       *CatalogEntry
	Similarity    float64
	Breakdown     *HybridBreakdown
	Adjudication  *AdjudicationResult
}

// Matcher implements the six-layer pipeline of §4.L.
type Matcher struct {
	cfg         *bv.Config
	adjudicator Adjudicator
}

// NewMatcher builds a Matcher; adjudicator may be NoopAdjudicator{} when no
// LLM endpoint is configured.
func NewMatcher(cfg *bv.Config, adjudicator Adjudicator) *Matcher {
	if adjudicator == nil {
		adjudicator = NoopAdjudicator{}
	}
	return &Matcher{cfg: cfg, adjudicator: adjudicator}
}

// Match resolves one bill item against the (hospital, category) item index.
// catalog maps semindex entry IDs back to their CatalogEntry.
func (m *Matcher) Match(ctx context.Context, billCategory bv.Category, billText string, index *semindex.Index, catalog map[string]CatalogEntry) Outcome {
	// Layer 0: pre-filter.
	if reason, isArtifact, hit := prefilterReason(billText); hit {
		return Outcome{Decision: DecisionReject, FailureReason: reason, IsArtifact: isArtifact}
	}

	billCore := medcore.Extract(billText)

	if index == nil || index.Count() == 0 {
		return Outcome{Decision: DecisionReject, FailureReason: FailureNotInTieUp}
	}

	// Layer 3: semantic top-k (the exact-match fast path lives inside Query).
	matches, err := index.Query(ctx, billText, 5)
	if err != nil {
		return Outcome{Decision: DecisionReject, FailureReason: FailureLowSimilarity}
	}
	if len(matches) == 0 {
		return Outcome{Decision: DecisionReject, FailureReason: FailureNotInTieUp}
	}

	var (
		best        *rankedCandidate
		bestScore   float64
		bestReason  FailureReason
		sawCategoryConflict bool
	)

	for _, cand := range matches {
		entry, ok := catalog[cand.Entry.ID]
		if !ok {
			continue
		}

		// Layer 2: hard/soft category boundaries.
		if IsHardBoundary(billCategory, entry.Category) {
			bestReason = chooseReason(bestReason, FailureWrongCategory)
			continue
		}
		if th, soft := SoftBoundaryThreshold(billCategory, entry.Category); soft && float64(cand.Similarity) < th {
			bestReason = chooseReason(bestReason, FailureCategoryConflict)
			sawCategoryConflict = true
			continue
		}

		candCore := medcore.Extract(entry.Item.ItemName)

		// Layer 2: hard constraints (dosage/form).
		if medcore.DosageMismatch(billCore, candCore) {
			bestReason = chooseReason(bestReason, FailureDosageMismatch)
			continue
		}
		if medcore.FormMismatch(billCore, candCore) {
			bestReason = chooseReason(bestReason, FailureFormMismatch)
			continue
		}
		if medcore.ModalityMismatch(billCore, candCore) {
			bestReason = chooseReason(bestReason, FailureModalityMismatch)
			continue
		}
		if medcore.BodyPartMismatch(billCore, candCore) {
			bestReason = chooseReason(bestReason, FailureBodyPartMismatch)
			continue
		}

		// Layer 4: hybrid re-rank.
		breakdown := hybridScore(billCore, candCore, float64(cand.Similarity), m.cfg.HybridWeights)
		if best == nil || breakdown.Composite > bestScore {
			e := entry
			best = &rankedCandidate{entry: e, breakdown: breakdown, rawSimilarity: float64(cand.Similarity)}
			bestScore = breakdown.Composite
		}
	}

	if best == nil {
		if sawCategoryConflict && bestReason == "" {
			bestReason = FailureCategoryConflict
		}
		if bestReason == "" {
			bestReason = FailureNotInTieUp
		}
		return Outcome{Decision: DecisionReject, FailureReason: bestReason}
	}

	// Layer 5: confidence calibration.
	switch {
	case bestScore >= m.cfg.HybridAutoMatch:
		e := best.entry
		return Outcome{
			Decision:   DecisionAutoMatch,
			Matched:    &e,
			Similarity: bestScore,
			Breakdown:  &best.breakdown,
		}
	case bestScore >= m.cfg.HybridLLMVerify:
		return m.adjudicate(ctx, billText, best)
	default:
		return Outcome{Decision: DecisionReject, FailureReason: FailureLowSimilarity, Similarity: bestScore, Breakdown: &best.breakdown}
	}
}

// rankedCandidate is an internal carrier for the winning candidate through the
// calibration step (unexported; not part of the public Outcome shape).
type rankedCandidate struct {
	entry         CatalogEntry
	breakdown     HybridBreakdown
	rawSimilarity float64
}

func (m *Matcher) adjudicate(ctx context.Context, billText string, best *rankedCandidate) Outcome {
	if best.rawSimilarity >= m.cfg.ItemSimilarityThreshold {
		e := best.entry
		return Outcome{
			Decision: DecisionAutoMatch, Matched: &e, Similarity: best.breakdown.Composite,
			Breakdown: &best.breakdown, Adjudication: &AdjudicationResult{Match: true, Confidence: 1.0, ModelUsed: "auto_match"},
		}
	}
	if best.rawSimilarity < m.cfg.MinSimilarity {
		return Outcome{Decision: DecisionReject, FailureReason: FailureLowSimilarity, Similarity: best.breakdown.Composite, Breakdown: &best.breakdown}
	}

	res := m.adjudicator.Adjudicate(ctx, billText, best.entry.Item.ItemName, best.breakdown.Composite)
	if res.Error != nil {
		return Outcome{Decision: DecisionReject, FailureReason: FailureLowSimilarity, Similarity: best.breakdown.Composite, Breakdown: &best.breakdown, Adjudication: &res}
	}
	if !res.Match {
		return Outcome{Decision: DecisionReject, FailureReason: FailureLowSimilarity, Similarity: best.breakdown.Composite, Breakdown: &best.breakdown, Adjudication: &res}
	}
	e := best.entry
	return Outcome{Decision: DecisionAutoMatch, Matched: &e, Similarity: best.breakdown.Composite, Breakdown: &best.breakdown, Adjudication: &res}
}

// chooseReason keeps whichever failure reason sorts first in the priority
// order of §4.L step 6.
func chooseReason(current, candidate FailureReason) FailureReason {
	if current == "" {
		return candidate
	}
	ci, cj := reasonRank(current), reasonRank(candidate)
	if cj < ci {
		return candidate
	}
	return current
}

func reasonRank(r FailureReason) int {
	for i, fr := range failureReasonPriority {
		if fr == r {
			return i
		}
	}
	return len(failureReasonPriority)
}
