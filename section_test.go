package billverify

import "testing"

func TestSectionTrackerPersistsAcrossPages(t *testing.T) {
	perPage := []PageZones{
		{Page: 0, SectionHeaders: []SectionEvent{
			{Page: 0, Y: 100, Category: CategoryMedicines, RawText: "Pharmacy"},
		}},
		{Page: 1, SectionHeaders: nil}, // no new header sighted on page 1
	}

	tracker := NewSectionTracker(perPage)

	// A query on page 1, before any page-1 header, must still resolve to the
	// last section opened on a prior page: sections persist until the next
	// sighting, per §4.D.
	got := tracker.SectionAt(1, 50)
	if got == nil {
		t.Fatal("expected section to persist onto page 1")
	}
	if got.Category != CategoryMedicines {
		t.Errorf("expected persisted category %v, got %v", CategoryMedicines, got.Category)
	}
}

func TestSectionTrackerBinarySearchCorrectness(t *testing.T) {
	perPage := []PageZones{
		{Page: 0, SectionHeaders: []SectionEvent{
			{Page: 0, Y: 50, Category: CategoryConsultation},
			{Page: 0, Y: 200, Category: CategoryMedicines},
			{Page: 0, Y: 400, Category: CategoryDiagnosticsTests},
		}},
	}
	tracker := NewSectionTracker(perPage)

	tests := []struct {
		name string
		page int
		y    float64
		want *Category
	}{
		{"before any section", 0, 10, nil},
		{"exactly at first boundary", 0, 50, catPtr(CategoryConsultation)},
		{"between first and second", 0, 150, catPtr(CategoryConsultation)},
		{"exactly at second boundary", 0, 200, catPtr(CategoryMedicines)},
		{"after last boundary", 0, 500, catPtr(CategoryDiagnosticsTests)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tracker.SectionAt(tt.page, tt.y)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got.Category)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got nil", *tt.want)
			}
			if got.Category != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, got.Category)
			}
		})
	}
}

func catPtr(c Category) *Category { return &c }

func TestClassifyByKeywordPriorityOrder(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		wantCategory Category
		wantRegulated bool
	}{
		{"package beats everything", "Angioplasty Package Deluxe", CategoryPackages, false},
		{"regulated drug keyword", "Insulin 40 IU Injection", CategoryMedicines, true},
		{"plain medicine by dosage pattern", "Paracetamol 500mg Tablet", CategoryMedicines, false},
		{"implant keyword", "Coronary Stent 3.5 x 18", CategoryImplantsDevices, false},
		{"surgical consumable", "Sterile Cotton Gauze Roll", CategorySurgicalConsumables, false},
		{"diagnostics test", "Complete Blood Count Test", CategoryDiagnosticsTests, false},
		{"hospitalization room charge", "General Ward Room Charge", CategoryHospitalization, false},
		{"unmatched falls to other", "Miscellaneous Item XYZ", CategoryOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCat, gotReg := ClassifyByKeyword(tt.description)
			if gotCat != tt.wantCategory {
				t.Errorf("ClassifyByKeyword(%q) category = %v, want %v", tt.description, gotCat, tt.wantCategory)
			}
			if gotReg != tt.wantRegulated {
				t.Errorf("ClassifyByKeyword(%q) regulated = %v, want %v", tt.description, gotReg, tt.wantRegulated)
			}
		})
	}
}
