package billverify

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reDiscountLine   = regexp.MustCompile(`(?i)discount|concession|rebate|waiver`)
	reDiscountSponsor = regexp.MustCompile(`(?i)sponsor|corporate|insurance|tpa`)
	reDiscountPatient = regexp.MustCompile(`(?i)patient\s*discount|self\s*discount`)
	reTrailingAmount  = regexp.MustCompile(`:\s*([\d,]+\.\d{2})\s*$`)
	reRupeeAmount     = regexp.MustCompile(`₹\s*([\d,]+\.?\d{0,2})`)
	reFinalNumeric    = regexp.MustCompile(`([\d,]+\.\d{2})`)
)

// ItemID derives the spec-mandated stable identifier:
// SHA1("item|"+category+"|"+amount_2dp+"|"+desc_lower+"|"+page).
func ItemID(category Category, amount decimal.Decimal, description string, page int) string {
	key := fmt.Sprintf("item|%s|%s|%s|%d", category, amount.StringFixed(2), strings.ToLower(description), page)
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

func classifyDiscountType(desc string) DiscountType {
	if reDiscountPatient.MatchString(desc) {
		return DiscountPatient
	}
	if reDiscountSponsor.MatchString(desc) {
		return DiscountSponsor
	}
	return DiscountGeneral
}

func extractDiscountAmount(desc string, columns []string) (decimal.Decimal, bool) {
	if m := reTrailingAmount.FindStringSubmatch(desc); m != nil {
		if d, ok := parseColumnNumber(m[1]); ok {
			return d, true
		}
	}
	if m := reRupeeAmount.FindStringSubmatch(desc); m != nil {
		if d, ok := parseColumnNumber(m[1]); ok {
			return d, true
		}
	}
	for i := len(columns) - 1; i >= 0; i-- {
		if d, ok := parseColumnNumber(columns[i]); ok {
			return d, true
		}
	}
	if m := reFinalNumeric.FindAllStringSubmatch(desc, -1); len(m) > 0 {
		last := m[len(m)-1]
		if d, ok := parseColumnNumber(last[1]); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

// itemBuild is the accumulator threaded through ParseItems.
type itemBuild struct {
	items     map[Category][]LineItem
	discounts []Discount
	warnings  []string
}

// ParseItems implements Stage 2 (§4.G): it walks item candidates (preferring
// pre-grouped blocks, falling back to per-line extraction in the Items
// zone), splitting out discounts and emitting categorised LineItems.
func ParseItems(blocks []ItemBlock, lines []Line, zones map[int]PageZones, tracker *SectionTracker, cfg *Config) (map[Category][]LineItem, []Discount, []string) {
	b := &itemBuild{items: make(map[Category][]LineItem)}

	if len(blocks) > 0 {
		for _, blk := range blocks {
			b.consumeBlock(blk, zones, tracker, cfg)
		}
	} else {
		for _, l := range lines {
			pz := zones[l.Page]
			if GetLineZone(l, pz) != ZoneItems {
				continue
			}
			b.consumeLine(l, tracker, cfg)
		}
	}

	return b.items, b.discounts, b.warnings
}

func (b *itemBuild) skipReason(desc string, page int, zones map[int]PageZones, y float64) bool {
	pz := zones[page]
	fakeLine := Line{Text: desc, Page: page, Box: Box{{Y: y}, {Y: y}, {Y: y}, {Y: y}}}
	zone := GetLineZone(fakeLine, pz)
	if zone == ZonePayment {
		return true
	}
	if reHeaderLabel.MatchString(desc) {
		return true
	}
	if IsNonBillableDescription(desc) {
		return true
	}
	return false
}

func (b *itemBuild) consumeBlock(blk ItemBlock, zones map[int]PageZones, tracker *SectionTracker, cfg *Config) {
	desc := blk.Description
	if desc == "" {
		desc = blk.Text
	}
	if b.skipReason(desc, blk.Page, zones, blk.Y) {
		return
	}
	if reDiscountLine.MatchString(desc) {
		amt, ok := extractDiscountAmount(desc, blk.Columns)
		if !ok {
			return
		}
		b.discounts = append(b.discounts, Discount{
			DiscountID:  fmt.Sprintf("disc|%d|%s", blk.Page, amt.StringFixed(2)),
			Description: desc,
			Amount:      amt,
			Type:        classifyDiscountType(desc),
			Page:        blk.Page,
		})
		return
	}
	pi, ok := ParseColumns(desc, blk.Columns, cfg)
	if !ok {
		return
	}
	b.emit(pi, blk.Page, blk.Y, tracker)
}

func (b *itemBuild) consumeLine(l Line, tracker *SectionTracker, cfg *Config) {
	desc := strings.TrimSpace(l.Text)
	if reHeaderLabel.MatchString(desc) || IsNonBillableDescription(desc) {
		return
	}
	if reDiscountLine.MatchString(desc) {
		amt, ok := extractDiscountAmount(desc, nil)
		if !ok {
			return
		}
		b.discounts = append(b.discounts, Discount{
			DiscountID:  fmt.Sprintf("disc|%d|%s", l.Page, amt.StringFixed(2)),
			Description: desc,
			Amount:      amt,
			Type:        classifyDiscountType(desc),
			Page:        l.Page,
		})
		return
	}
	m := reFinalNumeric.FindAllStringSubmatch(desc, -1)
	if len(m) == 0 {
		return
	}
	last := m[len(m)-1]
	amt, ok := parseColumnNumber(last[1])
	if !ok {
		return
	}
	if ok2, _ := ValidateAmount(last[1], amt, cfg); !ok2 {
		return
	}
	if alphaCount(desc) < 2 || !amt.GreaterThan(decimal.Zero) {
		return
	}
	one := decimal.NewFromInt(1)
	pi := ParsedItem{Description: desc, Qty: &one, PDFAmount: &amt, FinalAmount: amt}
	b.emit(pi, l.Page, l.Y(), tracker)
}

func (b *itemBuild) emit(pi ParsedItem, page int, y float64, tracker *SectionTracker) {
	var category Category
	var sectionRaw string
	if ev := tracker.SectionAt(page, y); ev != nil {
		category = ev.Category
		sectionRaw = ev.RawText
	} else {
		cat, _ := ClassifyByKeyword(pi.Description)
		category = cat
	}

	_, regulated := ClassifyByKeyword(pi.Description)

	qty := decimal.NewFromInt(1)
	if pi.Qty != nil {
		qty = *pi.Qty
	}

	li := LineItem{
		ItemID:             ItemID(category, pi.FinalAmount, pi.Description, page),
		Description:        pi.Description,
		Qty:                qty,
		UnitRate:           pi.UnitRate,
		PDFAmount:          pi.PDFAmount,
		ComputedAmount:     pi.ComputedAmount,
		FinalAmount:        pi.FinalAmount,
		Discrepancy:        pi.Discrepancy,
		Category:           category,
		Page:               page,
		SectionRaw:         sectionRaw,
		IsRegulatedPricing: regulated,
	}
	b.items[category] = append(b.items[category], li)
	if pi.Discrepancy {
		b.warnings = append(b.warnings, fmt.Sprintf("qty*rate discrepancy on %q (page %d)", pi.Description, page))
	}
}
