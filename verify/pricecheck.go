package verify

import (
	"github.com/shopspring/decimal"

	bv "billverify"
)

// CheckPrice resolves a Matcher Outcome plus the bill item's amount/qty
// into a final ItemVerificationResult and FinancialContribution, per §4.M.
// This is the single source of truth for financial classification; every
// aggregation path must go through it.
func CheckPrice(item bv.LineItem, outcome Outcome) (ItemVerificationResult, FinancialContribution) {
	bill := item.FinalAmount.Round(2)

	res := ItemVerificationResult{
		BillItem:      item,
		BillAmount:    bill,
		NormalizedName: item.Description,
		FailureReason: outcome.FailureReason,
		Diagnostics:   outcome.Breakdown,
	}
	if outcome.Breakdown != nil {
		sim := outcome.Breakdown.Composite
		res.Similarity = &sim
	}

	switch {
	case outcome.FailureReason == FailureAdminCharge && outcome.IsArtifact:
		res.Status = StatusIgnoredArtifact
		return res, FinancialContribution{Bill: bill, IsExcluded: true}

	case outcome.FailureReason == FailureAdminCharge:
		res.Status = StatusAllowedNotComparable
		return res, FinancialContribution{Bill: bill, IsExcluded: true}

	case outcome.Decision != DecisionAutoMatch || outcome.Matched == nil:
		res.Status = StatusUnclassified
		return res, FinancialContribution{
			Bill: bill, AllowedContrib: decimal.Zero, ExtraContrib: decimal.Zero, UnclassifiedContrib: bill,
		}
	}

	matched := *outcome.Matched
	res.MatchedItem = &matched.Item
	allowed := matched.Item.AllowedAmount(item.Qty)
	res.AllowedAmount = allowed

	if bill.LessThanOrEqual(allowed) {
		res.Status = StatusGreen
		res.ExtraAmount = decimal.Zero
		return res, FinancialContribution{
			Bill: bill, AllowedLimit: &allowed,
			AllowedContrib: bill, ExtraContrib: decimal.Zero, UnclassifiedContrib: decimal.Zero,
		}
	}

	res.Status = StatusRed
	extra := bill.Sub(allowed).Round(2)
	res.ExtraAmount = extra
	return res, FinancialContribution{
		Bill: bill, AllowedLimit: &allowed,
		AllowedContrib: allowed, ExtraContrib: extra, UnclassifiedContrib: decimal.Zero,
	}
}

// Validate checks the non-excluded reconciliation invariant
// |bill - (allowed+extra+unclassified)| < 0.01.
func (c FinancialContribution) Validate() bool {
	if c.IsExcluded {
		return c.AllowedContrib.IsZero() && c.ExtraContrib.IsZero() && c.UnclassifiedContrib.IsZero()
	}
	total := c.AllowedContrib.Add(c.ExtraContrib).Add(c.UnclassifiedContrib)
	diff := c.Bill.Sub(total).Abs()
	return diff.LessThan(decimal.NewFromFloat(0.01))
}
