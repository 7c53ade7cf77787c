package diagnosis

import "slices"

const (
	Cold      = "cold"
	Stress    = "stress"
	Swelling  = "swelling"
	Hormone   = "hormone"
	Digestive = "digestive"
	Sleep     = "sleep"
	Skin      = "skin"
	Balanced  = "balanced"
)

// Canonical lists the eight reportable categories in display order.
var Canonical = []string{Cold, Stress, Swelling, Hormone, Digestive, Sleep, Skin, Balanced}

var rawToCanonical = map[string]string{
	"pain":                 Cold,
	"dry_skin":             Skin,
	"oily_skin":            Skin,
	"energy":               Balanced,
	"mood":                 Hormone,
	"appetite":             Digestive,
	"fatigue":              Balanced,
	"anxiety":              Stress,
	"insomnia":             Sleep,
	"digestion":            Digestive,
	"circulation":          Cold,
	"water_retention":      Swelling,
	"inflammation":         Skin,
	"tension":              Stress,
	"irritability":         Stress,
	"depression":           Stress,
	"headache":             Stress,
	"back_pain":            Cold,
	"stomach_pain":         Digestive,
	"skin_problems":        Skin,
	"sleep_problems":       Sleep,
	"hormone_problems":     Hormone,
	"digestive_problems":   Digestive,
	"circulation_problems": Cold,
	"water_metabolism":     Swelling,
	"immune_system":        Balanced,
	"general_health":       Balanced,
	"wellness":             Balanced,
	"vitality":             Balanced,
	"balance":              Balanced,
	"overall":              Balanced,
	"heat":                 Balanced,
}

// IsCanonical reports whether tag is one of the eight reportable categories.
func IsCanonical(tag string) bool {
	return slices.Contains(Canonical, tag)
}

// Normalize resolves any raw tag to a canonical category, falling back to
// balanced. The counts are accepted for future tie-breaking and ignored.
func Normalize(raw string, _ map[string]int) string {
	if IsCanonical(raw) {
		return raw
	}
	if c, ok := rawToCanonical[raw]; ok {
		return c
	}
	return Balanced
}
