package billverify

import (
	"regexp"
	"strings"
)

// SafeGroup returns a regexp submatch by index, or def when the match is
// nil or the group did not participate. Mirrors the teacher's habit of
// never trusting a submatch index without a bounds check.
func SafeGroup(m []string, i int, def string) string {
	if m == nil || i < 0 || i >= len(m) || m[i] == "" {
		return def
	}
	return m[i]
}

var rePunctOnly = regexp.MustCompile(`^[\s:;,.\-–—]*$`)
var reBareNumber = regexp.MustCompile(`^[\d.,\s₹$]+$`)

// TryExtractLabeledField scans label patterns against line; the first match
// whose trailing residue is non-empty and not pure punctuation is returned
// cleaned and trimmed. Returns ("", false) otherwise.
func TryExtractLabeledField(line string, labelPatterns []*regexp.Regexp, minLen int) (string, bool) {
	if minLen <= 0 {
		minLen = 1
	}
	for _, pat := range labelPatterns {
		loc := pat.FindStringIndex(line)
		if loc == nil {
			continue
		}
		residue := strings.TrimSpace(line[loc[1]:])
		residue = strings.Trim(residue, " :;,.-–—")
		if len(residue) < minLen || rePunctOnly.MatchString(residue) {
			continue
		}
		return residue, true
	}
	return "", false
}

// IsLabelOnly reports whether any pattern matches the line but the residue
// after the match is shorter than 2 characters.
func IsLabelOnly(line string, labelPatterns []*regexp.Regexp) bool {
	for _, pat := range labelPatterns {
		loc := pat.FindStringIndex(line)
		if loc == nil {
			continue
		}
		residue := strings.TrimSpace(line[loc[1]:])
		residue = strings.Trim(residue, " :;,.-–—")
		if len(residue) < 2 {
			return true
		}
	}
	return false
}

// ExtractFromNextLine returns next's trimmed content when current is
// label-only and next is neither empty, nor itself another label line, nor
// a bare number.
func ExtractFromNextLine(current, next string, labelPatterns []*regexp.Regexp) (string, bool) {
	if !IsLabelOnly(current, labelPatterns) {
		return "", false
	}
	trimmed := strings.TrimSpace(next)
	if trimmed == "" {
		return "", false
	}
	for _, pat := range labelPatterns {
		if pat.MatchString(trimmed) {
			return "", false
		}
	}
	if reBareNumber.MatchString(trimmed) {
		return "", false
	}
	return trimmed, true
}
