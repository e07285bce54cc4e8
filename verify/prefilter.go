package verify

import "regexp"

var (
	rePureNoise   = regexp.MustCompile(`(?i)(page\s*\d+\s*of\s*\d+|^\d{1,3}$|@|https?://|thank\s*you)`)
	reAdminCharge = regexp.MustCompile(`(?i)(policy\s*(no|id)|bill\s*no|invoice\s*no)`)
	rePackageOnly = regexp.MustCompile(`(?i)\b(package|pkg|bundle|combo)\b`)
)

// prefilterReason implements §4.L layer 0. Pure positional noise (page
// numbers, bare short numbers, URLs, "thank you") and administrative
// metadata lines (policy IDs, bill/invoice numbers) both surface as
// ADMIN_CHARGE per the spec; isArtifact additionally distinguishes the
// pure-noise case so the price checker can route it to IGNORED_ARTIFACT
// rather than ALLOWED_NOT_COMPARABLE (an Open-Question-adjacent distinction
// the source spec left to the implementer — see DESIGN.md).
func prefilterReason(text string) (reason FailureReason, isArtifact, matched bool) {
	if rePureNoise.MatchString(text) {
		return FailureAdminCharge, true, true
	}
	if reAdminCharge.MatchString(text) {
		return FailureAdminCharge, false, true
	}
	if rePackageOnly.MatchString(text) {
		return FailurePackageOnly, false, true
	}
	return "", false, false
}
