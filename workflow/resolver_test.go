package workflow

import (
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestResolvePricingPrecedence(t *testing.T) {
	products := []models.Product{
		{StyleNumber: "K1", Season: "26FA", Price: dec("40"), Msrp: dec("80")},
	}
	pricing := []models.PricingRecord{
		{StyleNumber: "K1", Season: "26FA", Price: dec("42"), Msrp: dec("84")},
	}

	r := NewResolver(products, nil, pricing, nil)
	quote := r.ResolvePricing("K1", "26FA")

	if quote.Source != SourcePriceBySeason {
		t.Fatalf("source = %q, want %q", quote.Source, SourcePriceBySeason)
	}
	if quote.Wholesale == nil || !quote.Wholesale.Equal(dec("42")) {
		t.Fatalf("wholesale = %v, want 42 from the season price table", quote.Wholesale)
	}
}

func TestResolvePricingFallsBackToLineList(t *testing.T) {
	products := []models.Product{
		{StyleNumber: "K1", Season: "26FA", Price: dec("40")},
	}
	r := NewResolver(products, nil, nil, nil)
	quote := r.ResolvePricing("K1", "26FA")
	if quote.Source != SourceLineList {
		t.Fatalf("source = %q, want %q", quote.Source, SourceLineList)
	}
	if quote.Wholesale == nil || !quote.Wholesale.Equal(dec("40")) {
		t.Fatalf("wholesale = %v, want 40", quote.Wholesale)
	}
}

func TestResolvePricingImpliedWholesale(t *testing.T) {
	sales := []models.SalesRecord{
		{StyleNumber: "K123", ColorCode: "01", Season: "26FA", UnitsBooked: 10, Revenue: dec("500")},
	}
	r := NewResolver(nil, sales, nil, nil)
	quote := r.ResolvePricing("K123", "26FA")

	if quote.Source != SourceSales {
		t.Fatalf("source = %q, want %q", quote.Source, SourceSales)
	}
	if quote.Wholesale == nil || !quote.Wholesale.Equal(dec("50")) {
		t.Fatalf("implied wholesale = %v, want 50 (500/10)", quote.Wholesale)
	}
}

func TestResolvePricingNoData(t *testing.T) {
	r := NewResolver(nil, nil, nil, nil)
	quote := r.ResolvePricing("MISSING", "26FA")
	if quote.Wholesale != nil || quote.Msrp != nil {
		t.Fatalf("quote = %+v, want nil values for missing key", quote)
	}
	if quote.Source != "" {
		t.Fatalf("source = %q, want no fabricated label", quote.Source)
	}
}

func TestResolveCostPrecedence(t *testing.T) {
	products := []models.Product{
		{StyleNumber: "K1", Season: "26FA", Cost: dec("11")},
	}
	costs := []models.CostRecord{
		{StyleNumber: "K1", Season: "26FA", CostSource: models.CostSourceLanded, Landed: dec("14.50")},
	}
	r := NewResolver(products, nil, nil, costs)
	quote := r.ResolveCost("K1", "26FA")
	if quote.Source != SourceLandedSheet {
		t.Fatalf("source = %q, want %q", quote.Source, SourceLandedSheet)
	}
	if quote.Landed == nil || !quote.Landed.Equal(dec("14.50")) {
		t.Fatalf("landed = %v, want 14.50", quote.Landed)
	}

	// without a landed row the line list cost serves
	r2 := NewResolver(products, nil, nil, nil)
	quote2 := r2.ResolveCost("K1", "26FA")
	if quote2.Source != SourceLineList {
		t.Fatalf("fallback source = %q, want %q", quote2.Source, SourceLineList)
	}
	if quote2.Landed == nil || !quote2.Landed.Equal(dec("11")) {
		t.Fatalf("fallback landed = %v, want 11", quote2.Landed)
	}
}

func TestResolverMemoizes(t *testing.T) {
	sales := []models.SalesRecord{
		{StyleNumber: "K1", Season: "26FA", UnitsBooked: 4, Revenue: dec("100")},
	}
	r := NewResolver(nil, sales, nil, nil)
	first := r.ResolvePricing("K1", "26FA")
	// mutate the underlying table; a memoized resolver must not notice
	r.salesTable[styleSeasonKey{"K1", "26FA"}] = salesRollup{units: 1, revenue: dec("999")}
	second := r.ResolvePricing("K1", "26FA")
	if first.Wholesale == nil || second.Wholesale == nil || !first.Wholesale.Equal(*second.Wholesale) {
		t.Fatalf("memoized result changed: %v then %v", first.Wholesale, second.Wholesale)
	}
}

func TestMargin(t *testing.T) {
	w, l := dec("50"), dec("20")
	m := Margin(&w, &l)
	if m == nil || !m.Equal(dec("60")) {
		t.Fatalf("margin = %v, want 60", m)
	}

	if Margin(nil, &l) != nil {
		t.Fatal("margin with missing wholesale must be nil")
	}
	if Margin(&w, nil) != nil {
		t.Fatal("margin with missing landed must be nil")
	}
	zero := decimal.Zero
	if Margin(&zero, &l) != nil {
		t.Fatal("margin with zero wholesale must be nil, not a divide by zero")
	}
	if Margin(&w, &zero) != nil {
		t.Fatal("margin with zero landed must be nil to distinguish no data")
	}
}

func TestEndToEndSalesScenario(t *testing.T) {
	rows := []models.RowRecord{
		{"Style#": "K123", "Color Code": "01", "Season": "Fall 26", "Units Booked": "10", "Revenue": "500"},
	}
	records := models.ParseSalesRows(rows)
	if len(records) != 1 {
		t.Fatalf("parsed %d records, want 1", len(records))
	}
	if records[0].Season != "26FA" || records[0].SeasonType != models.SeasonTypeMain {
		t.Fatalf("season = %q/%q", records[0].Season, records[0].SeasonType)
	}

	r := NewResolver(nil, records, nil, nil)
	quote := r.ResolvePricing("K123", "26FA")
	if quote.Source != SourceSales {
		t.Fatalf("source = %q, want sales", quote.Source)
	}
	if quote.Wholesale == nil || !quote.Wholesale.Equal(dec("50")) {
		t.Fatalf("wholesale = %v, want 50", quote.Wholesale)
	}
}
