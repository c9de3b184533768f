package engine

// Hacks returns styling and care hacks for the hair type.
func Hacks(hairType HairType, answers Answers) []string {
	hacks := []string{
		"Sleep on silk/satin pillowcase to reduce friction and breakage",
		"Never brush curly/wavy hair when dry - only detangle when wet with conditioner in",
	}

	switch hairType {
	case HairCurly, HairCoily:
		hacks = append(hacks,
			"Pineapple method for sleep: High loose ponytail on top of head",
			"Refresh day 2-3 hair: Spray with water, scrunch in a tiny bit of gel",
			"Plop in microfiber towel after washing - never rub with regular towel",
		)
		if answers.Is("porosity", "low") {
			hacks = append(hacks, "Low porosity hack: Use heat (steam, hooded dryer) to help products penetrate")
		}
		if answers.Is("porosity", "high") {
			hacks = append(hacks, "High porosity hack: Always seal with oil after leave-in. Use protein treatments monthly.")
		}
	case HairStraight:
		hacks = append(hacks,
			"Dry shampoo at night (not morning) for better oil absorption",
			"Blow dry upside down for maximum volume",
		)
		if answers.Is("straight_concern", "greasy_roots") {
			hacks = append(hacks, "Scalp retraining: Extend time between washes by 1 day each week")
		}
	case HairWavy:
		hacks = append(hacks,
			"Scrunch don't brush - brushing kills wave pattern",
			"Diffuse upside down for volume",
			"Braid damp hair before bed for heatless waves",
		)
	}

	if hairType == HairCoily {
		hacks = append(hacks,
			"LOC method: Leave-in, Oil, Cream (or LCO depending on porosity)",
			"Weekly protein treatments for strength",
			"Protective styles are your friend for length retention",
		)
	}
	return hacks
}

// CampusTips returns the Pullman/WSU specific advice.
func CampusTips(answers Answers) []string {
	tips := []string{
		"Pullman water is HARD. Consider a shower filter attachment (~$20 on Amazon). Hard water causes buildup and dryness.",
		"Dorm hack: Keep a spray bottle with water + leave-in for quick refreshes between classes",
		"Gym on campus? Keep travel-size products in your gym bag for post-workout refresh",
		"Winter in Pullman is DRY. Double up on moisturizing products October-March",
		"Buy in bulk at Walmart or Target in Pullman for budget products. Amazon subscribe & save for mid/premium products.",
	}
	if answers.Is("activity_level", "very_active") || answers.Is("activity_level", "athlete") {
		tips = append(tips, "Don't wash hair after every workout. Co-wash or water rinse instead. Full wash 2-3x per week max.")
	}
	return append(tips, "Stressed about finals? Stress = hair shedding. Keep taking care of your hair even when busy.")
}
