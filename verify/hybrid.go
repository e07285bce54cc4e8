package verify

import (
	"strings"

	bv "billverify"
	"billverify/medcore"
)

func tokenize(s string) map[string]bool {
	out := map[string]bool{}
	for _, tok := range strings.Fields(s) {
		if tok != "" {
			out[tok] = true
		}
	}
	return out
}

// jaccard computes token-overlap Jaccard similarity on lowercase tokens.
func jaccard(a, b string) float64 {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 0
	}
	inter := 0
	for t := range ta {
		if tb[t] {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// containment returns the max of subset coverage in either direction.
func containment(a, b string) float64 {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	inter := 0
	for t := range ta {
		if tb[t] {
			inter++
		}
	}
	covA := float64(inter) / float64(len(ta))
	covB := float64(inter) / float64(len(tb))
	if covA > covB {
		return covA
	}
	return covB
}

// hybridScore computes the composite re-rank score for one candidate, per
// §4.L step 4. The three-way weighting is an explicit Open Question;
// weights come from Config.HybridWeights (see SPEC_FULL.md §9 decision).
func hybridScore(billCore, candCore medcore.Core, semantic float64, weights bv.HybridWeights) HybridBreakdown {
	j := jaccard(billCore.CoreText, candCore.CoreText)
	c := containment(billCore.CoreText, candCore.CoreText)

	bonus := 0.0
	if medcore.MetadataExactMatch(billCore, candCore) &&
		(billCore.Dosage != "" || billCore.Form != "" || billCore.Modality != "" || billCore.BodyPart != "") {
		bonus = 0.1
	}

	composite := weights.Semantic*semantic + weights.Jaccard*j + weights.Containment*c + bonus
	if composite > 1.0 {
		composite = 1.0
	}
	if composite < 0 {
		composite = 0
	}

	return HybridBreakdown{
		Semantic:      semantic,
		Jaccard:       j,
		Containment:   c,
		MetadataBonus: bonus,
		Composite:     composite,
	}
}
