package billverify

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExtractOptions carries the per-call inputs that are not part of the OCR
// payload itself.
type ExtractOptions struct {
	UploadID string
	Source   string
}

// ExtractBill drives the three parsing stages over an OcrResult and
// assembles a BillDocument, per §4.I. It returns a *BillError with Kind
// ErrStructuralInvariantViolation if a payment reference leaks into the
// item stream; every other anomaly is recorded as a warning rather than
// failing the call.
func ExtractBill(ocr OcrResult, cfg *Config, opts ExtractOptions) (*BillDocument, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	lines := make([]Line, len(ocr.Lines))
	copy(lines, ocr.Lines)
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Page != lines[j].Page {
			return lines[i].Page < lines[j].Page
		}
		return lines[i].Y() < lines[j].Y()
	})

	pageSet := map[int]bool{}
	for _, l := range lines {
		pageSet[l.Page] = true
	}
	pages := make([]int, 0, len(pageSet))
	for p := range pageSet {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	zones := map[int]PageZones{}
	var allZones []PageZones
	for _, p := range pages {
		var pageLines []Line
		for _, l := range lines {
			if l.Page == p {
				pageLines = append(pageLines, l)
			}
		}
		pz := DetectPageZones(p, pageLines)
		zones[p] = pz
		allZones = append(allZones, pz)
	}

	blocks := ocr.ItemBlock
	if len(blocks) == 0 {
		blocks = ReconstructBlocks(lines, cfg.YClusterThreshold)
	}

	agg := ParseHeader(lines, zones)
	tracker := NewSectionTracker(allZones)

	items, discounts, warnings := ParseItems(blocks, lines, zones, tracker, cfg)
	payments := ParsePayments(blocks, lines, zones)

	for cat, lis := range items {
		for _, li := range lis {
			if IsPaymentLike(li.Description) {
				return nil, NewBillError(ErrStructuralInvariantViolation,
					fmt.Sprintf("payment reference leaked into item %q (category %s)", li.Description, cat), nil)
			}
		}
	}

	subtotals := map[Category]decimal.Decimal{}
	grandTotal := decimal.Zero
	for cat, lis := range items {
		sum := decimal.Zero
		for _, li := range lis {
			sum = sum.Add(li.FinalAmount)
		}
		subtotals[cat] = sum.Round(2)
		grandTotal = grandTotal.Add(sum)
	}
	grandTotal = grandTotal.Round(2)

	if ok, reason := ValidateGrandTotal(grandTotal, cfg); !ok {
		warnings = append(warnings, "grand total capped: "+reason)
		grandTotal = cfg.MaxGrandTotal
	}

	name, _ := agg.Value(FieldPatientName)
	mrn, _ := agg.Value(FieldPatientMRN)
	primaryBill, _ := agg.Value(FieldBillNumber)
	billingDate, _ := agg.Value(FieldBillingDate)

	if name == "" {
		warnings = append(warnings, "patient identification missing")
	}
	if primaryBill == "" {
		warnings = append(warnings, "missing bill number")
	}

	summary := buildDiscountSummary(discounts)

	uploadID := opts.UploadID
	if uploadID == "" {
		uploadID = uuid.NewString()
	}

	doc := &BillDocument{
		UploadID:  uploadID,
		Source:    opts.Source,
		PageCount: len(pages),
		Header: BillHeader{
			PrimaryBillNumber: primaryBill,
			BillNumbers:       agg.BillNumbers(),
			BillingDate:       billingDate,
		},
		Patient:            Patient{Name: name, MRN: mrn},
		Items:              items,
		Subtotals:          subtotals,
		Summary:            summary,
		GrandTotal:         grandTotal,
		ExtractionWarnings: warnings,
		RawExcerpt:         ocr.RawText,
	}
	if !cfg.ExcludePayments {
		doc.Payments = payments
	}

	return doc, nil
}

func buildDiscountSummary(discounts []Discount) DiscountSummary {
	s := DiscountSummary{Details: discounts}
	for _, d := range discounts {
		switch d.Type {
		case DiscountPatient:
			s.Patient = s.Patient.Add(d.Amount)
		case DiscountSponsor:
			s.Sponsor = s.Sponsor.Add(d.Amount)
		default:
			s.General = s.General.Add(d.Amount)
		}
	}
	s.Total = s.Patient.Add(s.Sponsor).Add(s.General).Round(2)
	s.Patient = s.Patient.Round(2)
	s.Sponsor = s.Sponsor.Round(2)
	s.General = s.General.Round(2)
	return s
}
