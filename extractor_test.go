package billverify

import (
	"errors"
	"fmt"
	"testing"
)

func ocrLine(page int, y float64, text string) Line {
	return Line{Text: text, Page: page, Box: Box{{0, y}, {100, y}, {100, y + 10}, {0, y + 10}}, Confidence: 0.95}
}

func sampleBill() OcrResult {
	return OcrResult{
		Lines: []Line{
			ocrLine(0, 10, "Apollo Hospitals"),
			ocrLine(0, 40, "Patient Name: Jane Roe"),
			ocrLine(0, 60, "Bill No: INV-2026-0042"),
			ocrLine(0, 90, "S.No  Description  Qty  Rate  Amount"),
			ocrLine(0, 110, "Medicines"),
			ocrLine(0, 140, "Paracetamol 500mg Tablet     2   15.00   30.00"),
			ocrLine(0, 170, "Diagnostics"),
			ocrLine(0, 200, "Complete Blood Count Test     1   450.00   450.00"),
			ocrLine(0, 400, "Total Paid 480.00"),
			ocrLine(0, 420, "UTR: 778812233"),
		},
	}
}

func TestExtractBillSubtotalsReconcileToGrandTotal(t *testing.T) {
	cfg := DefaultConfig()
	doc, err := ExtractBill(sampleBill(), cfg, ExtractOptions{Source: "Apollo Hospitals"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := doc.GrandTotal.Sub(doc.GrandTotal) // zero, same type
	for _, s := range doc.Subtotals {
		sum = sum.Add(s)
	}
	if !sum.Equal(doc.GrandTotal) {
		t.Errorf("subtotals (%s) do not sum to grand total (%s)", sum, doc.GrandTotal)
	}
}

func TestExtractBillHeaderLocking(t *testing.T) {
	doc, err := ExtractBill(sampleBill(), DefaultConfig(), ExtractOptions{Source: "Apollo Hospitals"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Patient.Name != "Jane Roe" {
		t.Errorf("expected patient name %q, got %q", "Jane Roe", doc.Patient.Name)
	}
	if doc.Header.PrimaryBillNumber != "INV-2026-0042" {
		t.Errorf("expected bill number %q, got %q", "INV-2026-0042", doc.Header.PrimaryBillNumber)
	}
}

func TestExtractBillPaymentIsolation(t *testing.T) {
	doc, err := ExtractBill(sampleBill(), DefaultConfig(), ExtractOptions{Source: "Apollo Hospitals"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Payments != nil {
		t.Fatalf("expected no payments in the document when ExcludePayments is true, got %v", doc.Payments)
	}
	for _, items := range doc.Items {
		for _, li := range items {
			if IsPaymentLike(li.Description) {
				t.Errorf("payment-like text %q leaked into items", li.Description)
			}
		}
	}
}

func TestExtractBillIncludesPaymentsWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludePayments = false
	doc, err := ExtractBill(sampleBill(), cfg, ExtractOptions{Source: "Apollo Hospitals"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Payments) == 0 {
		t.Error("expected at least one payment event when ExcludePayments is false")
	}
}

func TestExtractBillExcludesPaymentRowEvenInsideItemTable(t *testing.T) {
	ocr := OcrResult{
		Lines: []Line{
			ocrLine(0, 10, "Apollo Hospitals"),
			ocrLine(0, 90, "S.No  Description  Qty  Rate  Amount"),
			// A payment reference row sitting among the item rows, ahead of
			// where DetectPageZones would otherwise place payment_start_y.
			ocrLine(0, 120, "UTR: 778812233     1   100.00   100.00"),
		},
	}
	doc, err := ExtractBill(ocr, DefaultConfig(), ExtractOptions{Source: "Test Hospital"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for cat, items := range doc.Items {
		for _, li := range items {
			if IsPaymentLike(li.Description) {
				t.Errorf("payment-like text %q leaked into category %v", li.Description, cat)
			}
		}
	}
}

func TestBillErrorKindViaErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewBillError(ErrStructuralInvariantViolation, "boom", nil))
	var billErr *BillError
	if !errors.As(wrapped, &billErr) {
		t.Fatalf("expected errors.As to unwrap a *BillError, got %T", wrapped)
	}
	if billErr.Kind != ErrStructuralInvariantViolation {
		t.Errorf("expected ErrStructuralInvariantViolation, got %v", billErr.Kind)
	}
}
