// Package billverify extracts structured medical bills from positioned OCR
// output and verifies them against hospital tie-up rate sheets.
package billverify

import "github.com/shopspring/decimal"

// Point is a single (x, y) coordinate in page space.
type Point struct {
	X float64
	Y float64
}

// Box is the four-corner bounding box of a positioned OCR line.
type Box [4]Point

// TopY returns the smallest y coordinate among the box's corners.
func (b Box) TopY() float64 {
	top := b[0].Y
	for _, p := range b[1:] {
		if p.Y < top {
			top = p.Y
		}
	}
	return top
}

// Line is a single positioned unit of OCR text.
type Line struct {
	Text       string
	Confidence float64
	Box        Box
	Page       int
}

// Y is the line's top-y, used for all position-ordered queries.
func (l Line) Y() float64 { return l.Box.TopY() }

// ItemBlock is a pre-grouped row of columns, produced either by the OCR
// engine directly or reconstructed from lines by y-clustering.
type ItemBlock struct {
	Text        string
	Description string
	Columns     []string
	Page        int
	Y           float64
}

// OcrResult is the extractor's sole input.
type OcrResult struct {
	RawText   string
	Lines     []Line
	ItemBlock []ItemBlock
}

// Zone is a closed sum type labelling a line's role on its page.
type Zone string

const (
	ZoneHeader  Zone = "header"
	ZoneItems   Zone = "items"
	ZonePayment Zone = "payment"
)

// Category is the closed set of medical-bill line-item categories.
type Category string

const (
	CategoryMedicines           Category = "medicines"
	CategorySurgicalConsumables Category = "surgical_consumables"
	CategoryImplantsDevices     Category = "implants_devices"
	CategoryDiagnosticsTests    Category = "diagnostics_tests"
	CategoryRadiology           Category = "radiology"
	CategoryConsultation        Category = "consultation"
	CategoryHospitalization     Category = "hospitalization"
	CategoryPackages            Category = "packages"
	CategoryAdministrative      Category = "administrative"
	CategoryOther               Category = "other"
)

// DiscountType is the closed set of discount classifications.
type DiscountType string

const (
	DiscountPatient DiscountType = "patient"
	DiscountSponsor DiscountType = "sponsor"
	DiscountGeneral DiscountType = "general"
)

// SectionEvent records a section-header sighting at a specific position.
// Events are kept sorted by (Page, Y) and persist across page boundaries.
type SectionEvent struct {
	Page     int
	Y        float64
	Category Category
	RawText  string
}

// PageZones holds the per-page boundaries used by the zone detector.
type PageZones struct {
	Page           int
	HeaderEndY     *float64
	PaymentStartY  *float64
	SectionHeaders []SectionEvent
}

// HeaderField names one of the four locked header fields.
type HeaderField string

const (
	FieldPatientName HeaderField = "patient_name"
	FieldPatientMRN  HeaderField = "patient_mrn"
	FieldBillNumber  HeaderField = "bill_number"
	FieldBillingDate HeaderField = "billing_date"
)

// HeaderCandidate is an unlocked observation offered to the header aggregator.
type HeaderCandidate struct {
	Field HeaderField
	Value string
	Score float64
	Page  int
}

// ParsedItem is the column parser's intermediate result before category
// assignment and ID derivation.
type ParsedItem struct {
	Description     string
	Qty             *decimal.Decimal
	UnitRate        *decimal.Decimal
	PDFAmount       *decimal.Decimal
	ComputedAmount  *decimal.Decimal
	FinalAmount     decimal.Decimal
	Discrepancy     bool
	Page            int
	Y               float64
	SectionRaw      string
}

// LineItem is a fully resolved, emitted billable line.
type LineItem struct {
	ItemID            string
	Description       string
	Qty               decimal.Decimal
	UnitRate          *decimal.Decimal
	PDFAmount         *decimal.Decimal
	ComputedAmount    *decimal.Decimal
	FinalAmount       decimal.Decimal
	Discrepancy       bool
	Category          Category
	Page              int
	SectionRaw        string
	IsRegulatedPricing bool
}

// Discount is a non-billable reduction split out of the item stream.
type Discount struct {
	DiscountID  string
	Description string
	Amount      decimal.Decimal
	Type        DiscountType
	Page        int
}

// PaymentEvent is a diagnostics-only record of a payment-zone block; it is
// never merged into items or totals.
type PaymentEvent struct {
	PaymentID   string
	Description string
	Amount      *decimal.Decimal
	Reference   string
	Mode        string
	Page        int
}

// DiscountSummary aggregates discounts by type plus the full detail list.
type DiscountSummary struct {
	Patient decimal.Decimal
	Sponsor decimal.Decimal
	General decimal.Decimal
	Total   decimal.Decimal
	Details []Discount
}

// BillHeader is the locked header-field block of a BillDocument.
type BillHeader struct {
	PrimaryBillNumber string
	BillNumbers       []string
	BillingDate       string
}

// Patient identifies the bill's subject.
type Patient struct {
	Name string
	MRN  string
}

// BillDocument is the extractor's sole output.
type BillDocument struct {
	UploadID           string
	Source             string
	PageCount          int
	Header             BillHeader
	Patient            Patient
	Items              map[Category][]LineItem
	Subtotals          map[Category]decimal.Decimal
	Summary            DiscountSummary
	GrandTotal         decimal.Decimal
	ExtractionWarnings []string
	RawExcerpt         string
	// Payments is nil unless Config.ExcludePayments is false. Payment
	// events never contribute to Subtotals or GrandTotal regardless.
	Payments []PaymentEvent
}

// TieUpType is the closed set of tie-up pricing types.
type TieUpType string

const (
	TieUpUnit    TieUpType = "unit"
	TieUpService TieUpType = "service"
	TieUpBundle  TieUpType = "bundle"
)

// TieUpItem is a single priced entry in a hospital's reference rate sheet.
type TieUpItem struct {
	ItemName string
	Rate     decimal.Decimal
	Type     TieUpType
}

// TieUpCategory groups TieUpItems under a named category in a rate sheet.
type TieUpCategory struct {
	CategoryName string
	Items        []TieUpItem
}

// TieUpRateSheet is one hospital's full reference catalogue.
type TieUpRateSheet struct {
	HospitalName string
	Categories   []TieUpCategory
}

// AllowedAmount computes the pricing-policy ceiling for a quantity against
// this tie-up item, per §4.M.
func (t TieUpItem) AllowedAmount(qty decimal.Decimal) decimal.Decimal {
	switch t.Type {
	case TieUpUnit:
		return t.Rate.Mul(qty).Round(2)
	default: // service, bundle, and any unrecognised type default to the flat rate
		return t.Rate.Round(2)
	}
}
