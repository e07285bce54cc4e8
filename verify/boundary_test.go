package verify

import (
	"testing"

	bv "billverify"
)

func TestIsHardBoundarySymmetric(t *testing.T) {
	if !IsHardBoundary(bv.CategoryMedicines, bv.CategoryDiagnosticsTests) {
		t.Error("expected Medicines/Diagnostics to be a hard boundary")
	}
	if !IsHardBoundary(bv.CategoryDiagnosticsTests, bv.CategoryMedicines) {
		t.Error("expected the hard boundary to be symmetric regardless of argument order")
	}
}

func TestIsHardBoundarySameCategoryNeverBlocks(t *testing.T) {
	if IsHardBoundary(bv.CategoryMedicines, bv.CategoryMedicines) {
		t.Error("a category can never be a hard boundary against itself")
	}
}

func TestIsHardBoundaryUnrelatedCategoriesPass(t *testing.T) {
	if IsHardBoundary(bv.CategoryMedicines, bv.CategorySurgicalConsumables) {
		t.Error("did not expect a hard boundary between Medicines and SurgicalConsumables")
	}
}

func TestSoftBoundaryThresholdAppliesBothDirections(t *testing.T) {
	th, ok := SoftBoundaryThreshold(bv.CategorySurgicalConsumables, bv.CategoryMedicines)
	if !ok {
		t.Fatal("expected a soft boundary between SurgicalConsumables and Medicines")
	}
	if th != 0.90 {
		t.Errorf("expected threshold 0.90, got %v", th)
	}

	th2, ok2 := SoftBoundaryThreshold(bv.CategoryMedicines, bv.CategorySurgicalConsumables)
	if !ok2 || th2 != th {
		t.Errorf("expected the same soft threshold regardless of argument order, got %v, %v", th2, ok2)
	}
}

func TestSoftBoundaryThresholdAbsentForUnrelatedCategories(t *testing.T) {
	if _, ok := SoftBoundaryThreshold(bv.CategoryMedicines, bv.CategoryRadiology); ok {
		t.Error("did not expect a soft boundary between Medicines and Radiology")
	}
}
