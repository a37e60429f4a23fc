package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseSalesRowsEndToEnd(t *testing.T) {
	rows := []RowRecord{
		{"Style#": "K123", "Color Code": "01", "Season": "Fall 26", "Units Booked": "10", "Revenue": "500"},
	}
	records := ParseSalesRows(rows)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Season != "26FA" || rec.SeasonType != SeasonTypeMain {
		t.Fatalf("season = %q/%q, want 26FA/Main", rec.Season, rec.SeasonType)
	}
	if rec.UnitsBooked != 10 {
		t.Fatalf("unitsBooked = %d, want 10", rec.UnitsBooked)
	}
	if !rec.Revenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("revenue = %s, want 500", rec.Revenue)
	}
}

func TestParseRowsSkipsMissingStyle(t *testing.T) {
	rows := []RowRecord{
		{"Style#": "", "Season": "26FA"},
		{"Description": "header junk"},
		{"Style#": "K200", "Season": "26FA"},
	}
	if got := len(ParseProductRows(rows)); got != 1 {
		t.Fatalf("ParseProductRows kept %d rows, want 1", got)
	}
	if got := len(ParseSalesRows(rows)); got != 1 {
		t.Fatalf("ParseSalesRows kept %d rows, want 1", got)
	}
	if got := len(ParsePricingRows(rows)); got != 1 {
		t.Fatalf("ParsePricingRows kept %d rows, want 1", got)
	}
}

func TestParseProductRowsCoercion(t *testing.T) {
	rows := []RowRecord{
		{
			"Style":       "K300",
			"Color":       "22",
			"Season":      "SP27",
			"Price":       "$1,250.50",
			"MSRP":        "not-a-number",
			"Division":    "Women's Hiking",
			"Category":    "pants",
			"Carry Over":  "Y",
		},
	}
	products := ParseProductRows(rows)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if !p.Price.Equal(decimal.RequireFromString("1250.50")) {
		t.Errorf("price = %s, want 1250.50", p.Price)
	}
	if !p.Msrp.IsZero() {
		t.Errorf("malformed msrp = %s, want 0", p.Msrp)
	}
	if p.Season != "27SP" {
		t.Errorf("season = %q, want 27SP", p.Season)
	}
	if p.Gender != "Women" {
		t.Errorf("gender = %q, want Women", p.Gender)
	}
	if p.Category != "Pants" {
		t.Errorf("category = %q, want Pants", p.Category)
	}
	if p.CarryOver == nil || !*p.CarryOver {
		t.Error("carry over flag not set")
	}
	if p.StyleColor != "K300-22" {
		t.Errorf("styleColor = %q, want K300-22", p.StyleColor)
	}
}

func TestParseProductRowsFallbackSeasonColumns(t *testing.T) {
	rows := []RowRecord{
		{"Style#": "K400", "Season": "TBD", "Style Color Season": "26FA"},
	}
	products := ParseProductRows(rows)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Season != "26FA" {
		t.Fatalf("season = %q, want fallback column 26FA", products[0].Season)
	}
}

func TestParseCostRowsHeaderOffset(t *testing.T) {
	rows := []RowRecord{
		{"Style#": "BANNER", "Landed": "junk"},
		{"Style#": "BANNER2"},
		{"Style#": "K500", "Season": "26FA", "Landed": "18.40", "FOB": "12.00"},
	}
	records := ParseCostRows(rows, CostParseOptions{HeaderOffset: 2, Source: CostSourceLanded})
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.StyleNumber != "K500" || rec.CostSource != CostSourceLanded {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !rec.Landed.Equal(decimal.RequireFromString("18.40")) {
		t.Fatalf("landed = %s, want 18.40", rec.Landed)
	}
}

func TestParseCostRowsEmptyInput(t *testing.T) {
	if got := ParseCostRows(nil, CostParseOptions{}); len(got) != 0 {
		t.Fatalf("nil rows produced %d records", len(got))
	}
	if got := ParseCostRows([]RowRecord{{"Style#": "K1"}}, CostParseOptions{HeaderOffset: 5}); len(got) != 0 {
		t.Fatalf("offset beyond data produced %d records", len(got))
	}
}

func TestRowRecordHeaderAliases(t *testing.T) {
	row := RowRecord{"style #": "K600", " SEASON ": "26FA"}
	if got := row.pickString("Style #"); got != "K600" {
		t.Fatalf("case insensitive header lookup failed, got %q", got)
	}
	if got := row.pickString("Season"); got != "26FA" {
		t.Fatalf("whitespace tolerant header lookup failed, got %q", got)
	}
}
