package verify

import (
	"testing"

	"github.com/shopspring/decimal"

	bv "billverify"
)

func lineItem(amount float64, qty float64) bv.LineItem {
	return bv.LineItem{
		Description: "Paracetamol 500mg Tablet",
		Qty:         decimal.NewFromFloat(qty),
		FinalAmount: decimal.NewFromFloat(amount),
	}
}

func tieUpUnit(rate float64) bv.TieUpItem {
	return bv.TieUpItem{ItemName: "Paracetamol 500mg Tablet", Rate: decimal.NewFromFloat(rate), Type: bv.TieUpUnit}
}

func TestCheckPriceGreenWhenBillWithinAllowed(t *testing.T) {
	matched := CatalogEntry{Item: tieUpUnit(15.00), Category: bv.CategoryMedicines}
	outcome := Outcome{Decision: DecisionAutoMatch, Matched: &matched, Similarity: 0.95}

	res, contrib := CheckPrice(lineItem(30.00, 2), outcome)

	if res.Status != StatusGreen {
		t.Fatalf("expected GREEN, got %v", res.Status)
	}
	if !contrib.AllowedContrib.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("expected full bill allowed, got %s", contrib.AllowedContrib)
	}
	if !contrib.ExtraContrib.IsZero() || !contrib.UnclassifiedContrib.IsZero() {
		t.Errorf("expected zero extra/unclassified contribution, got %+v", contrib)
	}
	if !contrib.Validate() {
		t.Error("expected the reconciliation invariant to hold")
	}
}

func TestCheckPriceRedWhenBillExceedsAllowed(t *testing.T) {
	matched := CatalogEntry{Item: tieUpUnit(15.00), Category: bv.CategoryMedicines}
	outcome := Outcome{Decision: DecisionAutoMatch, Matched: &matched, Similarity: 0.95}

	// Allowed = rate(15.00) * qty(2) = 30.00, bill is 45.00: 15.00 over.
	res, contrib := CheckPrice(lineItem(45.00, 2), outcome)

	if res.Status != StatusRed {
		t.Fatalf("expected RED, got %v", res.Status)
	}
	if !res.ExtraAmount.Equal(decimal.NewFromFloat(15.00)) {
		t.Errorf("expected extra amount 15.00, got %s", res.ExtraAmount)
	}
	if !contrib.AllowedContrib.Equal(decimal.NewFromFloat(30.00)) {
		t.Errorf("expected allowed contribution capped at 30.00, got %s", contrib.AllowedContrib)
	}
	if !contrib.ExtraContrib.Equal(decimal.NewFromFloat(15.00)) {
		t.Errorf("expected extra contribution 15.00, got %s", contrib.ExtraContrib)
	}
	if !contrib.Validate() {
		t.Error("expected the reconciliation invariant to hold")
	}
}

func TestCheckPriceUnclassifiedWhenNoMatch(t *testing.T) {
	outcome := Outcome{Decision: DecisionReject, FailureReason: FailureNotInTieUp}

	res, contrib := CheckPrice(lineItem(100.00, 1), outcome)

	if res.Status != StatusUnclassified {
		t.Fatalf("expected UNCLASSIFIED, got %v", res.Status)
	}
	if !contrib.UnclassifiedContrib.Equal(decimal.NewFromFloat(100.00)) {
		t.Errorf("expected the full bill to land in unclassified, got %s", contrib.UnclassifiedContrib)
	}
	if !contrib.Validate() {
		t.Error("expected the reconciliation invariant to hold")
	}
}

func TestCheckPriceIgnoredArtifact(t *testing.T) {
	outcome := Outcome{Decision: DecisionReject, FailureReason: FailureAdminCharge, IsArtifact: true}

	res, contrib := CheckPrice(lineItem(10.00, 1), outcome)

	if res.Status != StatusIgnoredArtifact {
		t.Fatalf("expected IGNORED_ARTIFACT, got %v", res.Status)
	}
	if !contrib.IsExcluded {
		t.Error("expected an excluded contribution")
	}
	if !contrib.Validate() {
		t.Error("expected the reconciliation invariant to hold for an excluded contribution")
	}
}

func TestCheckPriceAllowedNotComparable(t *testing.T) {
	outcome := Outcome{Decision: DecisionReject, FailureReason: FailureAdminCharge, IsArtifact: false}

	res, contrib := CheckPrice(lineItem(10.00, 1), outcome)

	if res.Status != StatusAllowedNotComparable {
		t.Fatalf("expected ALLOWED_NOT_COMPARABLE, got %v", res.Status)
	}
	if !contrib.IsExcluded {
		t.Error("expected an excluded contribution")
	}
}

func TestFinancialContributionValidate(t *testing.T) {
	tests := []struct {
		name string
		c    FinancialContribution
		want bool
	}{
		{
			"balanced green",
			FinancialContribution{Bill: decimal.NewFromFloat(30), AllowedContrib: decimal.NewFromFloat(30)},
			true,
		},
		{
			"balanced split between allowed and extra",
			FinancialContribution{Bill: decimal.NewFromFloat(45), AllowedContrib: decimal.NewFromFloat(30), ExtraContrib: decimal.NewFromFloat(15)},
			true,
		},
		{
			"unbalanced contribution fails",
			FinancialContribution{Bill: decimal.NewFromFloat(45), AllowedContrib: decimal.NewFromFloat(30), ExtraContrib: decimal.NewFromFloat(10)},
			false,
		},
		{
			"excluded with nonzero contributions fails",
			FinancialContribution{Bill: decimal.NewFromFloat(10), IsExcluded: true, UnclassifiedContrib: decimal.NewFromFloat(10)},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
