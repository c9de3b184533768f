package engine

import "fmt"

// condition is one exact-match test against an answer key.
type condition struct {
	key, value string
}

// challengeRule pairs a conjunction of conditions with its narrative.
type challengeRule struct {
	when []condition
	text string
}

func (r challengeRule) matches(answers Answers) bool {
	for _, c := range r.when {
		if !answers.Is(c.key, c.value) {
			return false
		}
	}
	return true
}

type challengeTable struct {
	rules    []challengeRule
	fallback string
}

// Rule order is priority: the first matching rule wins.
var challengeTables = map[HairType]challengeTable{
	HairCurly: {
		rules: []challengeRule{
			{
				when: []condition{{"porosity", "low"}, {"activity_level", "very_active"}},
				text: "Low porosity means products sit on your hair instead of absorbing. You're washing frequently due to gym, which is stripping your curls. Frizz = lack of moisture getting IN.",
			},
			{
				when: []condition{{"porosity", "high"}, {"curl_frustration", "dry_breaking"}},
				text: "High porosity means moisture escapes as fast as it enters. You're probably heat damaged or have chemical damage. Hair drinks up products but stays dry. Tight curls + porosity = breakage city.",
			},
			{
				when: []condition{{"curl_pattern", "tight"}, {"curl_frustration", "tangles"}},
				text: "Tight curl pattern = maximum tangle potential. Your curls wind around each other constantly. Detangling when dry = breakage. You need a slip-focused routine.",
			},
			{
				when: []condition{{"porosity", "low"}, {"curl_frustration", "frizz"}},
				text: "Low porosity + frizz means your hair can't absorb moisture, so it seeks it from the air = frizz halo. You need heat and humectants to open those cuticles.",
			},
		},
		fallback: "Your curly hair needs a routine that balances moisture and definition while working with your natural curl pattern and WSU lifestyle.",
	},
	HairStraight: {
		rules: []challengeRule{
			{
				when: []condition{{"texture_thickness", "fine"}, {"straight_concern", "no_volume"}},
				text: "Fine hair + oil + gravity = flat, limp hair that looks dirty fast. You're probably using products that weigh hair down. You need volumizing products that create lift.",
			},
			{
				when: []condition{{"hair_condition", "bleached"}, {"straight_concern", "damage"}},
				text: "Bleach compromises hair structure. Your hair is chemically damaged and porous. Split ends = need protein + moisture balance to rebuild strength.",
			},
			{
				when: []condition{{"oil_production", "day_1"}, {"straight_concern", "greasy_roots"}},
				text: "Overactive sebaceous glands + fine texture = greasy roots within hours. Washing too often makes it worse (scalp overcompensates). You need to retrain your scalp.",
			},
			{
				when: []condition{{"styling_frequency", "daily"}, {"hair_condition", "heat_damage"}},
				text: "Daily heat styling at high temps = fried, damaged hair. Heat breaks protein bonds. You need heat protection, lower temps, and repair treatments.",
			},
		},
		fallback: "Your straight hair needs a routine that adds volume and addresses damage while maintaining healthy scalp balance.",
	},
	HairCoily: {
		rules: []challengeRule{
			{
				when: []condition{{"coil_tightness", "4c"}, {"moisture_retention", "hours"}},
				text: "4C with extreme shrinkage + low moisture retention = guaranteed breakage. Your hair texture is the most fragile. Moisture escapes fast. You need intensive moisture-sealing techniques.",
			},
			{
				when: []condition{{"coil_tightness", "4a"}, {"moisture_retention", "3_4_days"}},
				text: "You've got ideal moisture retention for coily hair. 4A holds definition well. You're doing something right already. Goal = enhance what's working and prevent damage.",
			},
			{
				when: []condition{{"protective_styling", "never"}, {"coily_goals", "length"}},
				text: "Wearing 4C hair out 24/7 = maximum manipulation and breakage. For length retention, you need to incorporate protective styles to reduce daily stress on your ends.",
			},
			{
				when: []condition{{"shrinkage", "75_plus"}, {"coily_goals", "definition"}},
				text: "Extreme shrinkage means your length is hidden. For definition, you need products and techniques that elongate curls while fighting shrinkage.",
			},
		},
		fallback: "Your coily hair needs a moisture-focused routine with protective strategies for length retention and health.",
	},
	HairWavy: {
		rules: []challengeRule{
			{
				when: []condition{{"wave_pattern", "2a"}, {"frizz_level", "no_frizz_flat"}},
				text: "2A barely holds wave pattern. Fine hair = no body. Daily washing strips oils that weigh you down but removes volume. You need lightweight products and techniques that CREATE texture.",
			},
			{
				when: []condition{{"wave_pattern", "2c"}, {"frizz_level", "extreme"}},
				text: "2C is on the curly spectrum but you're probably treating it like straight hair. Frizz = moisture escaping. Pullman humidity varies = frizz nightmare. You need curl methods, not wave methods.",
			},
			{
				when: []condition{{"density", "thick"}, {"desired_outcome", "volume"}},
				text: "You have thick hair naturally but it's weighed down. Too much product or wrong products are flattening your waves. You need lightweight, volumizing techniques.",
			},
			{
				when: []condition{{"wash_frequency", "daily"}, {"frizz_level", "moderate"}},
				text: "Daily washing disrupts wave pattern and causes frizz. Your scalp is overproducing oil because you strip it daily. You need to extend wash days and use proper styling products.",
			},
		},
		fallback: "Your wavy hair needs a routine that enhances your natural texture while managing frizz and adding definition.",
	},
}

// Diagnose returns the challenge narrative for the first matching rule of the
// hair type, or its fallback.
func Diagnose(hairType HairType, answers Answers) string {
	table, ok := challengeTables[hairType]
	if !ok {
		return fmt.Sprintf("Your %s hair has unique needs based on your lifestyle and goals. This routine is customized for your specific combination.", hairType)
	}
	for _, r := range table.rules {
		if r.matches(answers) {
			return r.text
		}
	}
	return table.fallback
}
