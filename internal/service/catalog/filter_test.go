package catalog

import (
	"math"
	"testing"
)

func TestCompileFilter_SpecialTokens(t *testing.T) {
	f := compileFilter("all", "", "", "")
	if f.Category != "" || f.Fit != "" || f.DealsOnly {
		t.Fatalf("expected unconstrained filter for all, got %+v", f)
	}

	f = compileFilter("deals", "", "", "")
	if !f.DealsOnly || f.Category != "" {
		t.Fatalf("deals must resolve to the deals attribute, got %+v", f)
	}

	f = compileFilter("regular-fit", "", "", "")
	if f.Fit != "regular-fit" || f.Category != "" {
		t.Fatalf("regular-fit must resolve to a fit filter, got %+v", f)
	}

	f = compileFilter("slim-fit", "", "", "")
	if f.Fit != "slim-fit" || f.Category != "" {
		t.Fatalf("slim-fit must resolve to a fit filter, got %+v", f)
	}

	f = compileFilter("jackets", "", "", "")
	if f.Category != "jackets" || f.Fit != "" || f.DealsOnly {
		t.Fatalf("unknown token must fall back to literal category, got %+v", f)
	}
}

func TestCompileFilter_PriceBoundDefaults(t *testing.T) {
	f := compileFilter("all", "", "", "")
	if f.MinPrice != 0 || !math.IsInf(f.MaxPrice, 1) {
		t.Fatalf("expected default bounds [0, +Inf], got [%v, %v]", f.MinPrice, f.MaxPrice)
	}

	f = compileFilter("all", "abc", "xyz", "")
	if f.MinPrice != 0 || !math.IsInf(f.MaxPrice, 1) {
		t.Fatalf("non-numeric bounds must fall back to defaults, got [%v, %v]", f.MinPrice, f.MaxPrice)
	}

	f = compileFilter("all", "NaN", "NaN", "")
	if f.MinPrice != 0 || !math.IsInf(f.MaxPrice, 1) {
		t.Fatalf("NaN bounds must fall back to defaults, got [%v, %v]", f.MinPrice, f.MaxPrice)
	}

	f = compileFilter("all", "20", "50", "")
	if f.MinPrice != 20 || f.MaxPrice != 50 {
		t.Fatalf("expected bounds [20, 50], got [%v, %v]", f.MinPrice, f.MaxPrice)
	}
}

func TestCompileFilter_StatusPassthrough(t *testing.T) {
	f := compileFilter("all", "", "", "in-stock")
	if f.Status != "in-stock" {
		t.Fatalf("expected status constraint, got %+v", f)
	}
}
