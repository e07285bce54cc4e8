package billverify

import (
	"regexp"
	"sort"
	"strings"
)

var (
	reTableStart = regexp.MustCompile(`(?i)(sr\.?\s*no|s\.?no\.?|description|particulars|qty.*rate.*amount|item\s+name)`)
	rePaymentZone = regexp.MustCompile(`(?i)(RCPO-|Receipt\s+No|UTR[:\s]|TXN[:\s]|RRN[:\s]|Total\s+Paid|Balance\s+Due|mode\s+of\s+payment)`)
	reHeaderLabel = regexp.MustCompile(`(?i)(patient\s*name|patient\s*id|mrn|uhid|bill\s*no|invoice\s*no|billing\s*date|admission\s*date|discharge\s*date)`)
	reAmountTail  = regexp.MustCompile(`[\d,]+\.\d{2}\s*$`)
)

// looksLikeSectionHeader recognises a short line with no trailing amount as a
// candidate section header; the caller still must classify its category.
func looksLikeSectionHeader(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || len(t) > 60 {
		return false
	}
	if reAmountTail.MatchString(t) {
		return false
	}
	letters := 0
	for _, r := range t {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			letters++
		}
	}
	return letters >= 3
}

// DetectPageZones computes header_end_y, payment_start_y, and the ordered
// section-header sightings for a single page's lines, per §4.C.
func DetectPageZones(page int, lines []Line) PageZones {
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Y() < sorted[j].Y() })

	pz := PageZones{Page: page}
	for _, l := range sorted {
		if pz.HeaderEndY == nil && reTableStart.MatchString(l.Text) {
			y := l.Y()
			pz.HeaderEndY = &y
		}
		if pz.PaymentStartY == nil && rePaymentZone.MatchString(l.Text) {
			y := l.Y()
			pz.PaymentStartY = &y
		}
		if looksLikeSectionHeader(l.Text) {
			cat := classifySectionHeaderText(l.Text)
			if cat != "" {
				pz.SectionHeaders = append(pz.SectionHeaders, SectionEvent{
					Page: page, Y: l.Y(), Category: cat, RawText: l.Text,
				})
			}
		}
	}
	return pz
}

// GetLineZone classifies a single line given its page's boundaries, per the
// decision order in §4.C. It is a pure function of the line and pz.
func GetLineZone(l Line, pz PageZones) Zone {
	if reHeaderLabel.MatchString(l.Text) {
		return ZoneHeader
	}
	if rePaymentZone.MatchString(l.Text) {
		return ZonePayment
	}
	y := l.Y()
	if pz.Page == 0 && pz.HeaderEndY != nil && y < *pz.HeaderEndY {
		return ZoneHeader
	}
	if pz.PaymentStartY != nil && y >= *pz.PaymentStartY {
		return ZonePayment
	}
	return ZoneItems
}
