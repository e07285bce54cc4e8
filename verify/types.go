// Package verify implements the Verification & Reconciliation Core: the
// semantic Matcher, the category boundary enforcer, the Price Checker and
// Financial Contributor, and the Verifier Orchestrator.
package verify

import (
	"github.com/shopspring/decimal"

	bv "billverify"
)

// VerificationStatus is the closed sum type a bill item resolves to.
type VerificationStatus string

const (
	StatusGreen                VerificationStatus = "GREEN"
	StatusRed                  VerificationStatus = "RED"
	StatusUnclassified         VerificationStatus = "UNCLASSIFIED"
	StatusAllowedNotComparable VerificationStatus = "ALLOWED_NOT_COMPARABLE"
	StatusIgnoredArtifact      VerificationStatus = "IGNORED_ARTIFACT"
	// StatusMismatch is a legacy alias; callers should treat it identically
	// to StatusUnclassified.
	StatusMismatch VerificationStatus = "MISMATCH"
)

// Normalize maps the legacy MISMATCH alias onto UNCLASSIFIED.
func (s VerificationStatus) Normalize() VerificationStatus {
	if s == StatusMismatch {
		return StatusUnclassified
	}
	return s
}

// statusPriority orders statuses for display-row grouping (§4.N step 6):
// RED > UNCLASSIFIED > GREEN > ALLOWED_NOT_COMPARABLE > IGNORED_ARTIFACT.
var statusPriority = map[VerificationStatus]int{
	StatusRed:                  0,
	StatusUnclassified:         1,
	StatusGreen:                2,
	StatusAllowedNotComparable: 3,
	StatusIgnoredArtifact:      4,
}

// HigherPriorityStatus returns whichever of a, b should win when grouping
// identical display rows.
func HigherPriorityStatus(a, b VerificationStatus) VerificationStatus {
	if statusPriority[a.Normalize()] <= statusPriority[b.Normalize()] {
		return a
	}
	return b
}

// MatchDecision is the closed sum type the confidence calibration step
// resolves to.
type MatchDecision string

const (
	DecisionAutoMatch MatchDecision = "AUTO_MATCH"
	DecisionLLMVerify MatchDecision = "LLM_VERIFY"
	DecisionReject    MatchDecision = "REJECT"
)

// FailureReason is the closed sum type explaining a non-AUTO_MATCH outcome,
// in the priority order of §4.L step 6.
type FailureReason string

const (
	FailureAdminCharge      FailureReason = "ADMIN_CHARGE"
	FailurePackageOnly      FailureReason = "PACKAGE_ONLY"
	FailureWrongCategory    FailureReason = "WRONG_CATEGORY"
	FailureDosageMismatch   FailureReason = "DOSAGE_MISMATCH"
	FailureFormMismatch     FailureReason = "FORM_MISMATCH"
	FailureModalityMismatch FailureReason = "MODALITY_MISMATCH"
	FailureBodyPartMismatch FailureReason = "BODYPART_MISMATCH"
	FailureCategoryConflict FailureReason = "CATEGORY_CONFLICT"
	FailureLowSimilarity    FailureReason = "LOW_SIMILARITY"
	FailureNotInTieUp       FailureReason = "NOT_IN_TIEUP"
)

// failureReasonPriority is the order failures are considered in when more
// than one condition could explain a rejection.
var failureReasonPriority = []FailureReason{
	FailureAdminCharge, FailurePackageOnly, FailureWrongCategory,
	FailureDosageMismatch, FailureFormMismatch, FailureModalityMismatch,
	FailureBodyPartMismatch, FailureCategoryConflict, FailureLowSimilarity,
	FailureNotInTieUp,
}

// HybridBreakdown preserves the composite score's components for diagnostics.
type HybridBreakdown struct {
	Semantic        float64
	Jaccard         float64
	Containment     float64
	MetadataBonus   float64
	Composite       float64
}

// AdjudicationResult is what an Adjudicator returns for an LLM_VERIFY case.
type AdjudicationResult struct {
	Match      bool
	Confidence float64
	ModelUsed  string
	Error      error
}

// ItemVerificationResult is one bill item's full verification outcome.
type ItemVerificationResult struct {
	BillItem       bv.LineItem
	MatchedItem    *bv.TieUpItem
	Status         VerificationStatus
	BillAmount     decimal.Decimal
	AllowedAmount  decimal.Decimal
	ExtraAmount    decimal.Decimal
	Similarity     *float64
	NormalizedName string
	FailureReason  FailureReason
	Diagnostics    *HybridBreakdown
}

// FinancialContribution is the single source of truth for how one item
// affects the three financial buckets, per §4.M.
type FinancialContribution struct {
	Bill                   decimal.Decimal
	AllowedLimit           *decimal.Decimal
	AllowedContrib         decimal.Decimal
	ExtraContrib           decimal.Decimal
	UnclassifiedContrib    decimal.Decimal
	IsExcluded             bool
}

// CategoryResult groups one bill category's item results.
type CategoryResult struct {
	Category           bv.Category
	MatchedCategory    string
	CategorySimilarity *float64
	Items              []ItemVerificationResult
}

// Counts tallies items per status.
type Counts struct {
	Green                int
	Red                  int
	Unclassified         int
	Mismatch             int
	Ignored              int
	AllowedNotComparable int
}

// Report is the Verifier Orchestrator's sole output.
type Report struct {
	Hospital                  string
	MatchedHospital           string
	HospitalSimilarity        *float64
	Results                   []CategoryResult
	TotalBillAmount           decimal.Decimal
	TotalAllowedAmount        decimal.Decimal
	TotalExtraAmount          decimal.Decimal
	TotalUnclassifiedAmount   decimal.Decimal
	TotalAllowedNotComparable decimal.Decimal
	Counts                    Counts
	FinancialsBalanced        bool
}
