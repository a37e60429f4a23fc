package models

import "strings"

// categoryTaxonomy maps the free text category spellings seen across the
// four source sheets onto the canonical names used for grouping. Unmapped
// values pass through unchanged; the category set is open.
var categoryTaxonomy = map[string]string{
	"short sleeve":      "Short Sleeve Shirts",
	"short slv":         "Short Sleeve Shirts",
	"ss shirts":         "Short Sleeve Shirts",
	"long sleeve":       "Long Sleeve Shirts",
	"long slv":          "Long Sleeve Shirts",
	"ls shirts":         "Long Sleeve Shirts",
	"pant":              "Pants",
	"pants":             "Pants",
	"bottoms":           "Pants",
	"short":             "Shorts",
	"shorts":            "Shorts",
	"fleece":            "Fleece",
	"fleece jackets":    "Fleece",
	"outerwear":         "Outerwear",
	"jackets":           "Outerwear",
	"down":              "Outerwear",
	"sweater":           "Sweaters",
	"sweaters":          "Sweaters",
	"dress":             "Dresses",
	"dresses":           "Dresses",
	"skirt":             "Skirts",
	"skirts":            "Skirts",
	"tee":               "Tees",
	"tees":              "Tees",
	"t-shirts":          "Tees",
	"graphic tees":      "Tees",
	"accessory":         "Accessories",
	"accessories":       "Accessories",
	"hats":              "Accessories",
	"belts":             "Accessories",
	"base layer":        "Base Layers",
	"baselayer":         "Base Layers",
	"vest":              "Vests",
	"vests":             "Vests",
}

// NormalizeCategory canonicalizes a free text category description.
func NormalizeCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := categoryTaxonomy[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// ClassifyGender derives a gender bucket from a division description.
// The substring rules are load bearing for aggregation parity; do not
// refine them without checking downstream report totals.
func ClassifyGender(division string) string {
	d := strings.ToLower(division)
	if strings.Contains(d, "women") {
		return "Women"
	}
	if strings.Contains(d, "men") {
		return "Men"
	}
	return "Unisex"
}
