package billverify

import (
	"regexp"
	"sort"
	"strings"
)

// categoryRule is one entry of the keyword/pattern fallback classifier,
// adopted from original_source/app/classification/item_classifier.py with
// its priority ordering preserved (lower number checked first).
type categoryRule struct {
	category Category
	keywords []string
	patterns []*regexp.Regexp
	priority int
	regulated bool
}

var regulatedPricingKeywords = []string{"regulated pricing", "dpco", "nlem", "contrast", "iohexol", "omnipaque", "heparin", "insulin"}

var categoryRules = []categoryRule{
	{category: CategoryMedicines, priority: 0, regulated: true, keywords: regulatedPricingKeywords},
	{category: CategoryPackages, priority: 0, keywords: []string{
		"package", "pkg", "bundle", "combo", "health checkup", "master health",
		"executive checkup", "angiography package", "angioplasty package",
		"surgery package", "delivery package",
	}},
	{category: CategoryMedicines, priority: 1, keywords: []string{
		"tablet", "capsule", "syrup", "injection", "infusion", "solution",
		"ointment", "cream", "gel", "drops", "inhaler", "spray", "suspension",
		"powder", "vaccine", "serum", "antiseptic", "disinfectant", "vitamin",
		"supplement", "tonic", "antibiotic", "analgesic", "antipyretic", "antacid",
	}, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\s*mg`),
		regexp.MustCompile(`(?i)\d+\s*ml`),
		regexp.MustCompile(`(?i)\d+\s*mcg`),
		regexp.MustCompile(`(?i)\d+\s*iu`),
		regexp.MustCompile(`(?i)\d+\s*gm?\b`),
		regexp.MustCompile(`\d+%`),
	}},
	{category: CategoryImplantsDevices, priority: 1, keywords: []string{
		"stent", "implant", "pacemaker", "defibrillator", "guide wire",
		"guidewire", "guiding catheter", "ptca", "balloon", "angioplasty",
		"prosthesis", "mesh", "plate", "screw", "coronary", "vascular",
	}, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+fr\b`),
		regexp.MustCompile(`\d+\.\d+\s*x\s*\d+`),
	}},
	{category: CategorySurgicalConsumables, priority: 2, keywords: []string{
		"gloves", "syringe", "needle", "catheter", "cannula", "bandage",
		"gauze", "drape", "dressing", "swab", "mask", "gown", "cap", "cover",
		"screen cover", "iv set", "iv catheter", "stop cock", "extension",
		"electrode", "ecg electrode", "blade", "surgical blade", "urinal",
		"bed pan", "thermometer", "wipes", "introducer", "hand care", "sterile",
	}, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+g\s*x`),
		regexp.MustCompile(`(?i)size\s*\d`),
	}},
	{category: CategoryConsultation, priority: 2, keywords: []string{
		"consultation", "consult", "visit", "first visit", "revisit",
		"follow up", "follow-up", "opinion", "second opinion", "doctor fee",
		"physician fee", "specialist fee",
	}, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)dr\.?\s+[a-z]+`),
	}},
	{category: CategoryConsultation, priority: 2, keywords: []string{
		"surgery", "operation", "procedure", "angiography", "bypass", "cabg",
		"endoscopy", "colonoscopy", "laparoscopy", "dialysis", "chemotherapy",
		"radiotherapy", "biopsy procedure", "excision", "incision",
		"catheterization", "cath lab", "radiology",
	}},
	{category: CategoryDiagnosticsTests, priority: 3, keywords: []string{
		"x-ray", "xray", "scan", "ct scan", "mri", "pet", "ultrasound", "usg",
		"sonography", "echo", "echocardiogram", "ecg", "ekg",
		"electrocardiogram", "blood test", "urine test", "stool test",
		"pathology", "laboratory", "lab", "culture", "biopsy", "histopathology",
		"cytology", "screening", "investigation", "diagnostic", "hemoglobin",
		"hb", "cbc", "lipid", "thyroid", "liver function", "kidney function",
		"lft", "kft", "rft", "hba1c", "glucose", "creatinine", "urea", "test",
	}},
	{category: CategoryHospitalization, priority: 3, keywords: []string{
		"room", "ward", "bed", "icu", "nicu", "picu", "ccu", "nursing",
		"care", "accommodation", "stay", "general ward", "semi private",
		"private room", "deluxe", "hospitalisation", "hospitalization",
	}, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)room\s*charge`),
		regexp.MustCompile(`(?i)bed\s*charge`),
	}},
	{category: CategoryAdministrative, priority: 4, keywords: []string{
		"administrative", "admin", "registration", "admission", "processing",
		"documentation", "record", "file", "discharge", "certificate",
	}},
}

func init() {
	sort.SliceStable(categoryRules, func(i, j int) bool { return categoryRules[i].priority < categoryRules[j].priority })
}

// classifySectionHeaderText maps a short section-header line to a category
// using the keyword/pattern fallback rules, returning "" when nothing
// matches (caller then treats the line as not a section header).
func classifySectionHeaderText(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
		for _, pat := range rule.patterns {
			if pat.MatchString(text) {
				return rule.category
			}
		}
	}
	return ""
}

// ClassifyByKeyword is the item-description fallback classifier used when
// the section tracker has no entry covering a position (§4.G step 4). It
// also reports whether the match fell under a regulated-pricing rule.
func ClassifyByKeyword(description string) (Category, bool) {
	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, rule.regulated
			}
		}
		for _, pat := range rule.patterns {
			if pat.MatchString(description) {
				return rule.category, rule.regulated
			}
		}
	}
	return CategoryOther, false
}

// SectionTracker maintains the flat, persistent, cross-page sequence of
// SectionEvents and answers section_at queries by binary search, per §4.D.
type SectionTracker struct {
	events []SectionEvent
}

// NewSectionTracker builds a tracker from all section-header sightings
// across every page, sorted by (page, y).
func NewSectionTracker(perPage []PageZones) *SectionTracker {
	var events []SectionEvent
	for _, pz := range perPage {
		events = append(events, pz.SectionHeaders...)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Page != events[j].Page {
			return events[i].Page < events[j].Page
		}
		return events[i].Y < events[j].Y
	})
	return &SectionTracker{events: events}
}

// SectionAt returns the last event with key <= (page, y), or nil if no
// event precedes the position.
func (t *SectionTracker) SectionAt(page int, y float64) *SectionEvent {
	key := func(e SectionEvent) bool {
		if e.Page != page {
			return e.Page < page
		}
		return e.Y <= y
	}
	// find the last index for which key(events[i]) holds, via binary search
	lo, hi := 0, len(t.events)
	for lo < hi {
		mid := (lo + hi) / 2
		if key(t.events[mid]) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return nil
	}
	return &t.events[lo-1]
}
