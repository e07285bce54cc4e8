package billverify

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var identifierKeywords = []string{
	"bill no", "bill number", "mrn", "uhid", "phone", "age", "dob", "gstin",
	"patient id", "invoice no", "admission no", "registration no",
}

var reThousandSep = regexp.MustCompile(`[₹$,\s]`)

func containsIdentifierKeyword(context string) bool {
	lower := strings.ToLower(context)
	for _, kw := range identifierKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseColumnNumber strips currency symbols and thousand separators and
// parses the residue as a decimal, returning ok=false when it is not a
// number at all.
func parseColumnNumber(raw string) (decimal.Decimal, bool) {
	cleaned := reThousandSep.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, false
	}
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func alphaCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

var reNonBillableSection = regexp.MustCompile(`(?i)\b(total|grand\s*total|balance|payable|payment|received|rounded\s*off)\b`)

// IsNonBillableDescription reports whether a description names a totals or
// payment row rather than a billable item.
func IsNonBillableDescription(desc string) bool {
	return reNonBillableSection.MatchString(desc)
}

// ParseColumns implements the column parser of §4.E: it walks the row's
// token columns building a running context, rejects suspect/identifier
// columns, and resolves qty/unit_rate/amount from the remaining numbers.
func ParseColumns(description string, columns []string, cfg *Config) (ParsedItem, bool) {
	context := description
	var numbers []decimal.Decimal
	for _, col := range columns {
		context += " " + col
		if containsIdentifierKeyword(context[:len(context)-len(col)]) {
			continue
		}
		if IsSuspectNumeric(strings.TrimSpace(col)) {
			continue
		}
		if n, ok := parseColumnNumber(col); ok {
			if ok2, _ := ValidateAmount(col, n, cfg); ok2 {
				numbers = append(numbers, n)
			}
		}
	}

	var pi ParsedItem
	pi.Description = description

	switch len(numbers) {
	case 0:
		return pi, false
	case 1:
		one := decimal.NewFromInt(1)
		pi.Qty = &one
		pi.PDFAmount = &numbers[0]
	case 2:
		hundred := decimal.NewFromInt(100)
		if numbers[0].LessThan(hundred) {
			qty := numbers[0]
			amt := numbers[1]
			pi.Qty = &qty
			pi.PDFAmount = &amt
		} else {
			one := decimal.NewFromInt(1)
			rate := numbers[0]
			amt := numbers[1]
			pi.Qty = &one
			pi.UnitRate = &rate
			pi.PDFAmount = &amt
		}
	default:
		n := len(numbers)
		qty := numbers[n-3]
		rate := numbers[n-2]
		amt := numbers[n-1]
		pi.Qty = &qty
		pi.UnitRate = &rate
		pi.PDFAmount = &amt
	}

	if pi.Qty != nil && pi.UnitRate != nil {
		computed := pi.Qty.Mul(*pi.UnitRate).Round(2)
		pi.ComputedAmount = &computed
	}

	if pi.ComputedAmount != nil && pi.PDFAmount != nil {
		diff := pi.PDFAmount.Sub(*pi.ComputedAmount).Abs()
		if diff.GreaterThan(cfg.AmountTolerance) {
			pi.FinalAmount = *pi.PDFAmount
			pi.Discrepancy = true
		} else {
			pi.FinalAmount = *pi.ComputedAmount
		}
	} else if pi.PDFAmount != nil {
		pi.FinalAmount = *pi.PDFAmount
	} else if pi.ComputedAmount != nil {
		pi.FinalAmount = *pi.ComputedAmount
	}

	if !pi.FinalAmount.GreaterThan(decimal.Zero) {
		return pi, false
	}
	if alphaCount(description) < 2 {
		return pi, false
	}
	if IsNonBillableDescription(description) {
		return pi, false
	}
	return pi, true
}
