package billverify

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reDigitsOnly   = regexp.MustCompile(`^\d+$`)
	rePhoneLike    = regexp.MustCompile(`^\d{10,13}$`)
	reMRNLike      = regexp.MustCompile(`^\d{11,}$`)
	reISODate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reSlashDate    = regexp.MustCompile(`^\d{2}/\d{2}/\d{2,4}$`)
	reObviousIDSeq = regexp.MustCompile(`^\d{2}[-/]\d{2}[-/]\d{2,4}$`)
)

// IsSuspectNumeric classifies a numeric-looking string as suspect: a phone
// number, an MRN-like identifier, an ISO or DD/MM/YYYY date, or another
// obvious identifier pattern, per §4.A.
func IsSuspectNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if reISODate.MatchString(s) || reSlashDate.MatchString(s) || reObviousIDSeq.MatchString(s) {
		return true
	}
	if !reDigitsOnly.MatchString(s) {
		return false
	}
	if rePhoneLike.MatchString(s) {
		return true
	}
	if reMRNLike.MatchString(s) {
		return true
	}
	return false
}

// ValidateAmount rejects a candidate amount if it is suspect or exceeds the
// configured per-line ceiling.
func ValidateAmount(raw string, value decimal.Decimal, cfg *Config) (ok bool, reason string) {
	if IsSuspectNumeric(raw) {
		return false, "suspect_identifier"
	}
	if value.GreaterThan(cfg.MaxLineItemAmount) {
		return false, "exceeds_max_line_item_amount"
	}
	return true, ""
}

// ValidateGrandTotal caps a computed grand total at the configured ceiling.
func ValidateGrandTotal(total decimal.Decimal, cfg *Config) (ok bool, reason string) {
	if total.GreaterThan(cfg.MaxGrandTotal) {
		return false, "exceeds_max_grand_total"
	}
	return true, ""
}
