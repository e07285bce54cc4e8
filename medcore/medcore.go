// Package medcore strips inventory noise from raw bill-item text and
// extracts the medically meaningful core plus dosage/form/route/modality/
// body-part metadata, per the Medical Core Extractor design.
package medcore

import (
	"regexp"
	"strings"
)

// ItemType is the closed set of medical item classifications.
type ItemType string

const (
	TypeDrug       ItemType = "drug"
	TypeProcedure  ItemType = "procedure"
	TypeDiagnostic ItemType = "diagnostic"
	TypeImplant    ItemType = "implant"
	TypeConsumable ItemType = "consumable"
	TypeUnknown    ItemType = "unknown"
)

// Core is the normalised result of extracting one item's medical core.
type Core struct {
	CoreText string
	ItemType ItemType
	Dosage   string
	Form     string
	Route    string
	Modality string
	BodyPart string
}

var (
	reDosage = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(mcg|µg|mg|gm|g|ml|iu|%)`)
	reForms  = regexp.MustCompile(`(?i)\b(tablet|tab|capsule|cap|syrup|injection|inj|infusion|ointment|cream|gel|drops|inhaler|spray|suspension|powder)\b`)
	reRoute  = regexp.MustCompile(`(?i)\b(oral|iv|im|topical|subcutaneous|sc)\b`)
	reModality = regexp.MustCompile(`(?i)\b(mri|ct|x-ray|xray|usg|ultrasound|ecg|ekg|echo|pet)\b`)
	reBodyPart = regexp.MustCompile(`(?i)\b(brain|chest|abdomen|pelvis|spine|knee|shoulder|hip|skull|neck|thyroid|kidney|liver|heart)\b`)
	reImplant  = regexp.MustCompile(`(?i)\b(stent|implant|prosthesis|pacemaker)\b`)
	reProcedure = regexp.MustCompile(`(?i)\b(consultation|consult|surgery|operation|procedure)\b`)
	reConsumable = regexp.MustCompile(`(?i)\b(suture|gauze|syringe|catheter|cannula|bandage|dressing)\b`)

	reInventoryParens = regexp.MustCompile(`\([^)]*\)`)
	reLotBatchExp     = regexp.MustCompile(`(?i)\b(lot|batch|exp)\s*:?\s*[A-Za-z0-9\-/]+`)
	reBrandSuffix     = regexp.MustCompile(`(?i)[\-|]\s*[A-Z][A-Za-z]{2,}\s*$`)
	reNonAlnum        = regexp.MustCompile(`[^a-z0-9]+`)
)

var dosageUnitNormalize = map[string]string{
	"µg": "mcg",
	"gm": "g",
}

// Extract computes the medical core for a raw bill-item description, per §4.J.
func Extract(raw string) Core {
	text := raw

	text = reInventoryParens.ReplaceAllString(text, " ")
	text = reLotBatchExp.ReplaceAllString(text, " ")
	text = reBrandSuffix.ReplaceAllString(text, "")

	var c Core

	if m := reDosage.FindStringSubmatch(text); m != nil {
		unit := strings.ToLower(m[2])
		if norm, ok := dosageUnitNormalize[unit]; ok {
			unit = norm
		}
		c.Dosage = m[1] + unit
	}
	if m := reForms.FindString(text); m != "" {
		c.Form = strings.ToLower(m)
	}
	if m := reRoute.FindString(text); m != "" {
		c.Route = strings.ToLower(m)
	}
	if m := reModality.FindString(text); m != "" {
		c.Modality = strings.ToUpper(m)
	}
	if m := reBodyPart.FindString(text); m != "" {
		c.BodyPart = strings.ToLower(m)
	}

	switch {
	case c.Dosage != "" && c.Form != "":
		c.ItemType = TypeDrug
	case c.Modality != "":
		c.ItemType = TypeDiagnostic
	case reImplant.MatchString(text):
		c.ItemType = TypeImplant
	case reProcedure.MatchString(text):
		c.ItemType = TypeProcedure
	case reConsumable.MatchString(text):
		c.ItemType = TypeConsumable
	default:
		c.ItemType = TypeUnknown
	}

	core := strings.ToLower(text)
	core = reNonAlnum.ReplaceAllString(core, " ")
	c.CoreText = strings.TrimSpace(core)

	return c
}

// DosageMismatch reports whether both cores carry a dosage and they differ
// after normalisation — a hard constraint failure per §4.J/§4.L.
func DosageMismatch(a, b Core) bool {
	return a.Dosage != "" && b.Dosage != "" && a.Dosage != b.Dosage
}

// FormMismatch reports whether both cores carry a form and they disagree.
func FormMismatch(a, b Core) bool {
	return a.Form != "" && b.Form != "" && a.Form != b.Form
}

// ModalityMismatch reports whether both cores carry a modality and they disagree.
func ModalityMismatch(a, b Core) bool {
	return a.Modality != "" && b.Modality != "" && a.Modality != b.Modality
}

// BodyPartMismatch reports whether both cores carry a body part and they disagree.
func BodyPartMismatch(a, b Core) bool {
	return a.BodyPart != "" && b.BodyPart != "" && a.BodyPart != b.BodyPart
}

// MetadataExactMatch reports whether every populated metadata field present
// on both sides agrees exactly — used as the hybrid re-rank bonus trigger.
func MetadataExactMatch(a, b Core) bool {
	return !DosageMismatch(a, b) && !FormMismatch(a, b) && !ModalityMismatch(a, b) && !BodyPartMismatch(a, b)
}
