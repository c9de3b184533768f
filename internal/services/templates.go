package services

import (
	"fmt"
	"strconv"
	"strings"
)

// templateFuncs is shared by the HTML and plain-text renderers.
var templateFuncs = map[string]any{
	"price":  formatPrice,
	"upper":  func(v any) string { return strings.ToUpper(fmt.Sprint(v)) },
	"title":  func(v any) string { return titleCase(fmt.Sprint(v)) },
	"spaced": func(s string) string { return strings.ReplaceAll(s, "_", " ") },
	"inc":    func(i int) int { return i + 1 },
}

// formatPrice prints 6.99 as "6.99" and 26.00 as "26".
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func budgetLabel(monthlyCost float64) string {
	switch {
	case monthlyCost < 40:
		return "Budget-Friendly"
	case monthlyCost < 80:
		return "Mid-Range"
	default:
		return "Premium"
	}
}

func displayName(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
