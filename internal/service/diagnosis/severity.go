package diagnosis

// defaultSeverity is the weight of an answer token missing from the table.
const defaultSeverity = 1

var severityTable = map[string]int{
	// temperature
	"very_cold": 4, "cold": 3, "slightly_cold": 2, "warm": 1,
	// stress and frequency
	"very_high": 3, "high": 2, "medium": 1, "low": 0,
	"severe": 3, "moderate": 2, "mild": 1, "none": 0,
	"chronic": 3, "often": 2, "sometimes": 1, "rarely": 0,
	// swelling
	"very_swollen": 4, "swollen": 3, "slightly_swollen": 2, "not_swollen": 1,
	// hormone
	"very_irregular": 4, "irregular": 3, "slightly_irregular": 2, "regular": 1,
	// digestion
	"very_poor": 4, "poor": 3, "good": 1,
	// sleep
	"very_bad": 4, "bad": 3, "every_night": 4,
	// skin
	"very_dry": 4, "dry": 3, "very_oily": 4, "oily": 3,
	// energy and pain
	"very_high_energy": 4, "high_energy": 3, "medium_energy": 2, "low_energy": 1,
	"very_painful": 4, "painful": 3, "slightly_painful": 2, "not_painful": 1,
	// misc answer tokens
	"heavy": 3, "light": 1, "overeating": 3, "mood_swings": 3,
	"summer": 2, "winter": 2, "spring": 1, "bath": 1, "strong": 2, "weak": 1,
	"slow": 2, "fast": 1, "busy": 2, "relaxed": 1, "active": 2, "inactive": 1,
}

// Severity maps an answer token to its weight in [0,4]. Unknown tokens,
// including the empty string, weigh 1.
func Severity(answerValue string) int {
	if s, ok := severityTable[answerValue]; ok {
		return s
	}
	return defaultSeverity
}
