package medcore

import (
	"strings"
	"testing"
)

func TestExtractClassifiesDrugByDosageAndForm(t *testing.T) {
	c := Extract("Paracetamol 500mg Tablet")
	if c.ItemType != TypeDrug {
		t.Errorf("expected TypeDrug, got %v", c.ItemType)
	}
	if c.Dosage != "500mg" {
		t.Errorf("expected dosage 500mg, got %q", c.Dosage)
	}
	if c.Form != "tablet" {
		t.Errorf("expected form tablet, got %q", c.Form)
	}
}

func TestExtractClassifiesDiagnosticByModality(t *testing.T) {
	c := Extract("MRI Brain Scan")
	if c.ItemType != TypeDiagnostic {
		t.Errorf("expected TypeDiagnostic, got %v", c.ItemType)
	}
	if c.Modality != "MRI" {
		t.Errorf("expected modality MRI, got %q", c.Modality)
	}
	if c.BodyPart != "brain" {
		t.Errorf("expected body part brain, got %q", c.BodyPart)
	}
}

func TestExtractClassifiesImplant(t *testing.T) {
	c := Extract("Coronary Stent 3.5 x 18")
	if c.ItemType != TypeImplant {
		t.Errorf("expected TypeImplant, got %v", c.ItemType)
	}
}

func TestExtractClassifiesConsumable(t *testing.T) {
	c := Extract("Sterile Cotton Gauze Roll")
	if c.ItemType != TypeConsumable {
		t.Errorf("expected TypeConsumable, got %v", c.ItemType)
	}
}

func TestExtractClassifiesProcedure(t *testing.T) {
	c := Extract("Cardiology Consultation")
	if c.ItemType != TypeProcedure {
		t.Errorf("expected TypeProcedure, got %v", c.ItemType)
	}
}

func TestExtractFallsBackToUnknown(t *testing.T) {
	c := Extract("Miscellaneous Item XYZ")
	if c.ItemType != TypeUnknown {
		t.Errorf("expected TypeUnknown, got %v", c.ItemType)
	}
}

func TestExtractStripsInventoryParens(t *testing.T) {
	c := Extract("Amoxicillin 500mg Capsule (Batch: B12345, Exp: 12/25)")
	if c.Dosage != "500mg" || c.Form != "capsule" {
		t.Fatalf("expected dosage/form to survive parens stripping, got %+v", c)
	}
	if strings.Contains(c.CoreText, "batch") || strings.Contains(c.CoreText, "b12345") {
		t.Errorf("expected inventory parentheses stripped from core text, got %q", c.CoreText)
	}
}

func TestExtractStripsLotBatchExpiry(t *testing.T) {
	c := Extract("Insulin 40IU Injection Batch:INJ2024A")
	if c.Dosage != "40iu" {
		t.Errorf("expected dosage 40iu, got %q", c.Dosage)
	}
	if strings.Contains(c.CoreText, "inj2024a") {
		t.Errorf("expected batch code stripped from core text, got %q", c.CoreText)
	}
}

func TestExtractStripsBrandSuffix(t *testing.T) {
	c := Extract("Paracetamol 500mg Tablet - Crocin")
	if strings.Contains(c.CoreText, "crocin") {
		t.Errorf("expected trailing brand suffix stripped, got %q", c.CoreText)
	}
}

func TestDosageMismatchDetectsDisagreement(t *testing.T) {
	a := Extract("Paracetamol 500mg Tablet")
	b := Extract("Paracetamol 650mg Tablet")
	if !DosageMismatch(a, b) {
		t.Error("expected a dosage mismatch between 500mg and 650mg")
	}
	if FormMismatch(a, b) {
		t.Error("did not expect a form mismatch; both are tablets")
	}
}

func TestDosageMismatchRequiresBothSidesPresent(t *testing.T) {
	a := Extract("Paracetamol 500mg Tablet")
	b := Extract("Paracetamol Tablet")
	if DosageMismatch(a, b) {
		t.Error("expected no mismatch verdict when one side has no dosage at all")
	}
}

func TestMetadataExactMatch(t *testing.T) {
	a := Extract("Paracetamol 500mg Tablet")
	b := Extract("Paracetamol 500mg Tablet")
	if !MetadataExactMatch(a, b) {
		t.Error("expected identical cores to report an exact metadata match")
	}

	c := Extract("Paracetamol 650mg Tablet")
	if MetadataExactMatch(a, c) {
		t.Error("expected a dosage mismatch to break the exact metadata match")
	}
}
