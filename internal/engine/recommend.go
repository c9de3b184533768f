package engine

import (
	"math"
	"slices"
)

// MaxProducts bounds a recommendation. Tools always fit; consumables past
// the bound are dropped lowest priority first.
const MaxProducts = 6

var (
	essentialCategories = []Category{CategoryShampoo, CategoryConditioner, CategoryStyler}

	// treatmentGoals trigger the treatment slot.
	treatmentGoals = []string{"damage_repair", "breaking", "bleached"}

	// oilGoals both trigger the oil slot and filter it. The filter does not
	// use the caller's goals.
	oilGoals = []string{"moisture", "frizz"}

	combHairTypes = []HairType{HairCurly, HairCoily, HairWavy}
)

// Recommend picks products for a hair type, goal set and budget tier.
func Recommend(hairType HairType, goals []string, budget Tier) []Product {
	var consumables []Product
	first := func(concerns []string, c Category) {
		if m := ProductsByCriteria(hairType, concerns, budget, c); len(m) > 0 {
			consumables = append(consumables, m[0])
		}
	}

	for _, c := range essentialCategories {
		first(goals, c)
	}
	if containsAny(goals, treatmentGoals) {
		first(goals, CategoryTreatment)
	}
	if containsAny(goals, oilGoals) {
		first(oilGoals, CategoryOil)
	}

	var tools []Product
	if p, ok := ProductByID(MicrofiberTowelID); ok {
		tools = append(tools, p)
	}
	if slices.Contains(combHairTypes, hairType) {
		if p, ok := ProductByID(WideToothCombID); ok {
			tools = append(tools, p)
		}
	}

	consumables = dedupeProducts(consumables)
	if room := MaxProducts - len(tools); len(consumables) > room {
		consumables = consumables[:max(room, 0)]
	}
	return dedupeProducts(append(consumables, tools...))
}

// MonthlyCost is the rounded monthly spend on consumables. Tools are one-off
// purchases and count as zero.
func MonthlyCost(products []Product) float64 {
	total := 0.0
	for _, p := range products {
		if p.Category == CategoryTool || p.LastingTime <= 0 {
			continue
		}
		total += p.Price / p.LastingTime
	}
	return math.Round(total)
}

func dedupeProducts(ps []Product) []Product {
	seen := make(map[string]bool, len(ps))
	out := ps[:0:0]
	for _, p := range ps {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

func containsAny(haystack, needles []string) bool {
	for _, n := range needles {
		if slices.Contains(haystack, n) {
			return true
		}
	}
	return false
}
