package models

import "testing"

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"short sleeve":  "Short Sleeve Shirts",
		"Short Sleeve":  "Short Sleeve Shirts",
		"PANTS":         "Pants",
		"fleece":        "Fleece",
		"  tees  ":      "Tees",
		"":              "",
		"Rain Shells":   "Rain Shells", // unmapped passes through
	}
	for raw, want := range cases {
		if got := NormalizeCategory(raw); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestClassifyGender(t *testing.T) {
	cases := map[string]string{
		"Women's Apparel":     "Women",
		"WOMENS OUTDOOR":      "Women",
		"Men's Apparel":       "Men",
		"MENS HIKING":         "Men",
		"Accessories":         "Unisex",
		"":                    "Unisex",
		"Mens and Womens Mix": "Women", // "women" wins whenever present
	}
	for division, want := range cases {
		if got := ClassifyGender(division); got != want {
			t.Errorf("ClassifyGender(%q) = %q, want %q", division, got, want)
		}
	}
}
