package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnose_FallbackForEmptyAnswers(t *testing.T) {
	for _, h := range HairTypes {
		t.Run(string(h), func(t *testing.T) {
			got := Diagnose(h, Answers{})
			assert.NotEmpty(t, got)
			assert.Equal(t, challengeTables[h].fallback, got)
		})
	}
}

func TestDiagnose_FirstMatchingRule(t *testing.T) {
	tests := []struct {
		name     string
		hairType HairType
		answers  map[string]string
		prefix   string
	}{
		{
			name:     "curly low porosity very active",
			hairType: HairCurly,
			answers:  map[string]string{"porosity": "low", "activity_level": "very_active"},
			prefix:   "Low porosity means products sit on your hair",
		},
		{
			name:     "curly low porosity with frizz",
			hairType: HairCurly,
			answers:  map[string]string{"porosity": "low", "curl_frustration": "frizz"},
			prefix:   "Low porosity + frizz means",
		},
		{
			name:     "curly earlier rule wins over later",
			hairType: HairCurly,
			answers:  map[string]string{"porosity": "low", "activity_level": "very_active", "curl_frustration": "frizz"},
			prefix:   "Low porosity means products sit on your hair",
		},
		{
			name:     "straight bleached damage",
			hairType: HairStraight,
			answers:  map[string]string{"hair_condition": "bleached", "straight_concern": "damage"},
			prefix:   "Bleach compromises hair structure.",
		},
		{
			name:     "straight daily heat",
			hairType: HairStraight,
			answers:  map[string]string{"styling_frequency": "daily", "hair_condition": "heat_damage"},
			prefix:   "Daily heat styling at high temps",
		},
		{
			name:     "coily 4c drying in hours",
			hairType: HairCoily,
			answers:  map[string]string{"coil_tightness": "4c", "moisture_retention": "hours"},
			prefix:   "4C with extreme shrinkage",
		},
		{
			name:     "coily shrinkage definition",
			hairType: HairCoily,
			answers:  map[string]string{"shrinkage": "75_plus", "coily_goals": "definition"},
			prefix:   "Extreme shrinkage means your length is hidden.",
		},
		{
			name:     "wavy 2c extreme frizz",
			hairType: HairWavy,
			answers:  map[string]string{"wave_pattern": "2c", "frizz_level": "extreme"},
			prefix:   "2C is on the curly spectrum",
		},
		{
			name:     "wavy daily wash moderate frizz",
			hairType: HairWavy,
			answers:  map[string]string{"wash_frequency": "daily", "frizz_level": "moderate"},
			prefix:   "Daily washing disrupts wave pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diagnose(tt.hairType, FromStrings(tt.answers))
			assert.True(t, strings.HasPrefix(got, tt.prefix), "got %q", got)
		})
	}
}

func TestDiagnose_HalfMatchFallsBack(t *testing.T) {
	got := Diagnose(HairCurly, FromStrings(map[string]string{"porosity": "low"}))
	assert.Equal(t, challengeTables[HairCurly].fallback, got)
}

func TestDiagnose_MultiAnswersNeverMatchExactRules(t *testing.T) {
	answers := Answers{
		"porosity":       Multi("low"),
		"activity_level": Single("very_active"),
	}
	assert.Equal(t, challengeTables[HairCurly].fallback, Diagnose(HairCurly, answers))
}

func TestDiagnose_UnknownHairType(t *testing.T) {
	got := Diagnose("purple", Answers{})
	assert.Equal(t, "Your purple hair has unique needs based on your lifestyle and goals. This routine is customized for your specific combination.", got)
}
