package catalog

import (
	"math"
	"strconv"

	"github.com/jmjubaer/white-black-server/internal/repository/product"
)

// categoryRule maps a special category token to an attribute filter instead
// of a literal category match.
type categoryRule struct {
	token string
	apply func(*product.Filter)
}

// Evaluated top to bottom; only when no rule matches does the token fall
// back to a literal category constraint. The order is load-bearing: a
// product whose literal category is "deals" is unreachable through this
// listing, which mirrors the storefront's established behavior.
var categoryRules = []categoryRule{
	{token: "all", apply: func(*product.Filter) {}},
	{token: "deals", apply: func(f *product.Filter) { f.DealsOnly = true }},
	{token: "regular-fit", apply: func(f *product.Filter) { f.Fit = "regular-fit" }},
	{token: "slim-fit", apply: func(f *product.Filter) { f.Fit = "slim-fit" }},
}

// compileFilter turns the loose string query values into the compound
// predicate executed by the store. Price bounds are inclusive on both ends
// and default to [0, +Inf] when absent or non-numeric.
func compileFilter(category, minRaw, maxRaw, status string) product.Filter {
	f := product.Filter{
		MinPrice: parseBound(minRaw, 0),
		MaxPrice: parseBound(maxRaw, math.Inf(1)),
		Status:   status,
	}

	for _, rule := range categoryRules {
		if rule.token == category {
			rule.apply(&f)
			return f
		}
	}
	f.Category = category
	return f
}

func parseBound(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return def
	}
	return v
}
