package verify

import bv "billverify"

// boundaryPair is an unordered pair of categories.
type boundaryPair struct {
	a, b bv.Category
}

func pair(a, b bv.Category) boundaryPair {
	if a > b {
		a, b = b, a
	}
	return boundaryPair{a, b}
}

// hardBoundaries are unconditionally incompatible category pairs, adopted
// from original_source/backend/app/verifier/category_enforcer.py's worked
// examples ("Paracetamol 500mg" must never match "MRI Brain"; "Consultation"
// must never match "Insulin"; "Coronary Stent" must never match "Blood Test").
var hardBoundaries = map[boundaryPair]bool{
	pair(bv.CategoryMedicines, bv.CategoryDiagnosticsTests):    true,
	pair(bv.CategoryMedicines, bv.CategoryConsultation):        true,
	pair(bv.CategoryDiagnosticsTests, bv.CategoryImplantsDevices): true,
	pair(bv.CategoryMedicines, bv.CategoryImplantsDevices):     true,
	pair(bv.CategoryMedicines, bv.CategoryHospitalization):     true,
	pair(bv.CategoryImplantsDevices, bv.CategoryConsultation):  true,
}

// softBoundaries require similarity at or above the given threshold rather
// than being unconditionally rejected.
var softBoundaries = map[boundaryPair]float64{
	pair(bv.CategorySurgicalConsumables, bv.CategoryMedicines): 0.90,
}

// IsHardBoundary reports whether a and b can never be matched regardless of
// similarity.
func IsHardBoundary(a, b bv.Category) bool {
	if a == b {
		return false
	}
	return hardBoundaries[pair(a, b)]
}

// SoftBoundaryThreshold returns the minimum similarity required to bridge a
// and b, and whether a soft boundary applies at all.
func SoftBoundaryThreshold(a, b bv.Category) (float64, bool) {
	if a == b {
		return 0, false
	}
	th, ok := softBoundaries[pair(a, b)]
	return th, ok
}
