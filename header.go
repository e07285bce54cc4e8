package billverify

import (
	"regexp"
	"sort"
	"strings"
)

var headerLabelPatterns = map[HeaderField][]*regexp.Regexp{
	FieldPatientName: {regexp.MustCompile(`(?i)patient\s*name\s*:?`)},
	FieldPatientMRN:  {regexp.MustCompile(`(?i)(mrn|uhid|patient\s*id)\s*:?`)},
	FieldBillNumber:  {regexp.MustCompile(`(?i)(bill\s*no\.?|invoice\s*no\.?|bill\s*number)\s*:?`)},
	FieldBillingDate: {regexp.MustCompile(`(?i)(billing\s*date|bill\s*date|invoice\s*date)\s*:?`)},
}

var (
	reMRNDeny        = regexp.MustCompile(`(?i)(bill\s*no|invoice)`)
	reNameDeny       = regexp.MustCompile(`(?i)(hospital|clinic|receipt|total|balance|payment|center|centre)`)
	reSalutationName = regexp.MustCompile(`(?i)^(mr|mrs|ms|dr|master|baby)\.?\s+([A-Za-z]+(?:\s+[A-Za-z]+){0,3})$`)
	reAllCapsName    = regexp.MustCompile(`^([A-Z]+(?:\s+[A-Z]+){1,3})$`)
)

func validateHeaderValue(field HeaderField, value string) bool {
	value = strings.TrimSpace(value)
	switch field {
	case FieldPatientName:
		if alphaCount(value) < 2 || len(value) > 60 {
			return false
		}
		if reMRNDeny.MatchString(value) || reNameDeny.MatchString(value) {
			return false
		}
		return true
	case FieldPatientMRN:
		return len(value) >= 3 && len(value) <= 30
	case FieldBillNumber:
		return len(value) >= 1 && len(value) <= 40
	case FieldBillingDate:
		return len(value) >= 6 && len(value) <= 20
	}
	return false
}

// HeaderAggregator implements first-valid-wins locking across the four
// header fields (§4.F).
type HeaderAggregator struct {
	locked      map[HeaderField]string
	billNumbers []string
	billSeen    map[string]bool
}

// NewHeaderAggregator returns an empty aggregator.
func NewHeaderAggregator() *HeaderAggregator {
	return &HeaderAggregator{
		locked:   make(map[HeaderField]string),
		billSeen: make(map[string]bool),
	}
}

// Offer presents a validated candidate to the aggregator. Returns true iff
// this offer caused the field to become locked (i.e. it was the winning,
// first, offer for that field).
func (a *HeaderAggregator) Offer(field HeaderField, value string) bool {
	if !validateHeaderValue(field, value) {
		return false
	}
	if field == FieldBillNumber {
		if !a.billSeen[value] {
			a.billSeen[value] = true
			a.billNumbers = append(a.billNumbers, value)
		}
	}
	if _, locked := a.locked[field]; locked {
		return false
	}
	a.locked[field] = value
	return true
}

// Value returns the locked value for field, if any.
func (a *HeaderAggregator) Value(field HeaderField) (string, bool) {
	v, ok := a.locked[field]
	return v, ok
}

// BillNumbers returns the ordered, deduplicated sequence of bill numbers seen.
func (a *HeaderAggregator) BillNumbers() []string { return a.billNumbers }

// ParseHeader runs Stage 1 over every line not in the payment zone,
// returning the locked aggregator.
func ParseHeader(lines []Line, zones map[int]PageZones) *HeaderAggregator {
	agg := NewHeaderAggregator()

	byPage := map[int][]Line{}
	for _, l := range lines {
		byPage[l.Page] = append(byPage[l.Page], l)
	}

	pages := make([]int, 0, len(byPage))
	for page := range byPage {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	for _, page := range pages {
		pageLines := byPage[page]
		pz := zones[page]
		for i, l := range pageLines {
			if GetLineZone(l, pz) == ZonePayment {
				continue
			}
			for field, pats := range headerLabelPatterns {
				if v, ok := TryExtractLabeledField(l.Text, pats, 1); ok {
					agg.Offer(field, v)
					continue
				}
				if i+1 < len(pageLines) {
					if v, ok := ExtractFromNextLine(l.Text, pageLines[i+1].Text, pats); ok {
						agg.Offer(field, v)
					}
				}
			}
		}
	}

	if _, ok := agg.Value(FieldPatientName); !ok {
		applyNameFallback(agg, byPage, zones)
	}

	return agg
}

func applyNameFallback(agg *HeaderAggregator, byPage map[int][]Line, zones map[int]PageZones) {
	for _, page := range []int{0, 1} {
		pageLines, ok := byPage[page]
		if !ok {
			continue
		}
		pz := zones[page]
		for _, l := range pageLines {
			if GetLineZone(l, pz) == ZonePayment {
				continue
			}
			text := strings.TrimSpace(l.Text)
			if m := reSalutationName.FindStringSubmatch(text); m != nil {
				if agg.Offer(FieldPatientName, strings.TrimSpace(m[0])) {
					return
				}
			}
			if reAllCapsName.MatchString(text) && !reNameDeny.MatchString(text) {
				if agg.Offer(FieldPatientName, text) {
					return
				}
			}
		}
	}
}
