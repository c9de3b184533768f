package engine

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var profileIDPattern = regexp.MustCompile(`^[a-z0-9_]*$`)

func TestResolveProfileID(t *testing.T) {
	tests := []struct {
		name     string
		hairType HairType
		answers  Answers
		budget   Tier
		want     string
	}{
		{
			name:     "curly full answers",
			hairType: HairCurly,
			answers: FromStrings(map[string]string{
				"curl_pattern":     "tight",
				"porosity":         "low",
				"activity_level":   "very_active",
				"curl_frustration": "frizz",
				"morning_time":     "3",
			}),
			budget: TierLow,
			want:   "curly_tight_low_very_active_frizz_3_low",
		},
		{
			name:     "straight uses alternates",
			hairType: HairStraight,
			answers: FromStrings(map[string]string{
				"texture_thickness": "fine",
				"oil_production":    "day_1",
				"straight_concern":  "no_volume",
				"styling_frequency": "daily",
			}),
			budget: TierMid,
			want:   "straight_fine_day_1_no_volume_daily_mid",
		},
		{
			name:     "absent slots are omitted",
			hairType: HairCurly,
			answers:  Answers{},
			budget:   TierMid,
			want:     "curly_mid",
		},
		{
			name:     "first candidate in a slot wins",
			hairType: HairWavy,
			answers: FromStrings(map[string]string{
				"curl_pattern": "loose",
				"wave_pattern": "2b",
			}),
			budget: TierPremium,
			want:   "wavy_loose_premium",
		},
		{
			name:     "disallowed characters stripped",
			hairType: HairCurly,
			answers:  FromStrings(map[string]string{"curl_pattern": "Tight Curls!"}),
			budget:   TierLow,
			want:     "curly_tightcurls_low",
		},
		{
			name:     "multi answers do not fill a slot",
			hairType: HairCurly,
			answers:  Answers{"porosity": Multi("low", "high")},
			budget:   TierLow,
			want:     "curly_low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveProfileID(tt.hairType, tt.answers, tt.budget)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, profileIDPattern, got)
		})
	}
}

func TestResolveProfileID_Deterministic(t *testing.T) {
	answers := FromStrings(map[string]string{
		"coil_tightness":     "4C",
		"moisture_retention": "1_2_days",
		"coily_goals":        "länge",
	})
	first := ResolveProfileID(HairCoily, answers, TierPremium)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ResolveProfileID(HairCoily, answers, TierPremium))
	}
	assert.Regexp(t, profileIDPattern, first)
	assert.Equal(t, "coily_4c_1_2_days_lnge_premium", first)
}
