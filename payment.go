package billverify

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rePaymentReference = regexp.MustCompile(`(?i)(RCPO-[A-Z0-9]+|UTR[:\s]*[A-Z0-9]+|RRN[:\s]*[A-Z0-9]+|TXN[:\s]*[A-Z0-9]+)`)
	rePaymentMode       = regexp.MustCompile(`(?i)\b(cash|card|upi|neft|rtgs|cheque|chq)\b`)
)

// IsPaymentLike reports whether text matches a payment-zone pattern or an
// explicit payment reference, independent of zone membership.
func IsPaymentLike(text string) bool {
	return rePaymentZone.MatchString(text) || rePaymentReference.MatchString(text)
}

// ParsePayments implements Stage 3 (§4.H): emits a PaymentEvent for every
// block or line that is in the payment zone or is payment-like by pattern.
// Payments are diagnostics-only and are never merged into items or totals.
func ParsePayments(blocks []ItemBlock, lines []Line, zones map[int]PageZones) []PaymentEvent {
	var out []PaymentEvent
	seen := map[string]bool{}

	consider := func(text string, page int, y float64, columns []string) {
		pz := zones[page]
		fakeLine := Line{Text: text, Page: page, Box: Box{{Y: y}, {Y: y}, {Y: y}, {Y: y}}}
		if GetLineZone(fakeLine, pz) != ZonePayment && !IsPaymentLike(text) {
			return
		}
		key := fmt.Sprintf("%d|%.2f|%s", page, y, text)
		if seen[key] {
			return
		}
		seen[key] = true

		ev := PaymentEvent{Page: page, Description: strings.TrimSpace(text)}
		if m := rePaymentReference.FindString(text); m != "" {
			ev.Reference = m
		}
		if m := rePaymentMode.FindString(strings.ToLower(text)); m != "" {
			ev.Mode = m
		}
		if m := reFinalNumeric.FindAllStringSubmatch(text, -1); len(m) > 0 {
			last := m[len(m)-1]
			if amt, ok := parseColumnNumber(last[1]); ok {
				ev.Amount = &amt
			}
		} else {
			for i := len(columns) - 1; i >= 0; i-- {
				if amt, ok := parseColumnNumber(columns[i]); ok {
					ev.Amount = &amt
					break
				}
			}
		}
		ev.PaymentID = fmt.Sprintf("pay|%d|%s", page, ev.Description)
		out = append(out, ev)
	}

	for _, blk := range blocks {
		desc := blk.Description
		if desc == "" {
			desc = blk.Text
		}
		consider(desc, blk.Page, blk.Y, blk.Columns)
	}
	for _, l := range lines {
		consider(l.Text, l.Page, l.Y(), nil)
	}
	return out
}
