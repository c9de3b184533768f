package engine

import "strings"

// profileSlots lists, per slot, the answer keys that can fill it. The first
// key with a single non-empty answer wins. Each hair type's question block
// contributes one key to most slots.
var profileSlots = [][]string{
	{"curl_pattern", "wave_pattern", "coil_tightness", "texture_thickness"},
	{"porosity", "oil_production", "moisture_retention"},
	{"activity_level", "wash_frequency"},
	{"curl_frustration", "straight_concern", "coily_goals", "frizz_level"},
	{"morning_time", "styling_frequency"},
}

// ResolveProfileID builds the cohort label for a respondent. Respondents with
// the same defining answers share a label.
func ResolveProfileID(hairType HairType, answers Answers, budget Tier) string {
	parts := make([]string, 0, len(profileSlots)+2)
	if hairType != "" {
		parts = append(parts, string(hairType))
	}
	for _, candidates := range profileSlots {
		for _, key := range candidates {
			if v, ok := answers.Value(key); ok {
				parts = append(parts, v)
				break
			}
		}
	}
	if budget != "" {
		parts = append(parts, string(budget))
	}
	return sanitizeProfileID(strings.Join(parts, "_"))
}

func sanitizeProfileID(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
