package workflow

import (
	"testing"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/models"
)

func salesRow(style, season string, units int) models.SalesRecord {
	return models.SalesRecord{StyleNumber: style, Season: season, UnitsBooked: units}
}

func salesSeason(s models.SalesRecord) string { return s.Season }

func TestPlanSeasonReplaceIsolatesOtherSeasons(t *testing.T) {
	existing := []models.SalesRecord{
		salesRow("K1", "26FA", 5),
		salesRow("K2", "26FA", 7),
		salesRow("K1", "27SP", 3),
	}
	incoming := []models.SalesRecord{
		salesRow("K9", "27SP", 11),
	}
	covered := CoveredSeasons(incoming, salesSeason)

	plan := PlanSeasonReplace(existing, incoming, covered, salesSeason)

	if len(plan.Keep) != 2 {
		t.Fatalf("kept %d records, want the two 26FA rows", len(plan.Keep))
	}
	for _, rec := range plan.Keep {
		if rec.Season != "26FA" {
			t.Fatalf("kept record for season %q, want only 26FA", rec.Season)
		}
	}
	if len(plan.Discard) != 1 || plan.Discard[0].Season != "27SP" {
		t.Fatalf("discard = %+v, want the single 27SP row", plan.Discard)
	}
	if len(plan.Insert) != 1 || plan.Insert[0].StyleNumber != "K9" {
		t.Fatalf("insert = %+v", plan.Insert)
	}
}

func TestPlanSeasonReplaceIdempotence(t *testing.T) {
	batch := []models.SalesRecord{
		salesRow("K1", "26FA", 5),
		salesRow("K2", "26FA", 7),
	}
	covered := CoveredSeasons(batch, salesSeason)

	// first import into an empty set
	first := PlanSeasonReplace(nil, batch, covered, salesSeason)
	state := append(first.Keep, first.Insert...)

	// importing the identical batch again supersedes itself
	second := PlanSeasonReplace(state, batch, covered, salesSeason)
	state = append(second.Keep, second.Insert...)

	if len(state) != len(batch) {
		t.Fatalf("post merge set has %d records, want %d", len(state), len(batch))
	}
	for i := range batch {
		if state[i].StyleNumber != batch[i].StyleNumber || state[i].UnitsBooked != batch[i].UnitsBooked {
			t.Fatalf("record %d = %+v, want %+v", i, state[i], batch[i])
		}
	}
}

func costRow(style, season string, source models.CostSource, landed string) models.CostRecord {
	return models.CostRecord{
		StyleNumber: style,
		Season:      season,
		CostSource:  source,
		Landed:      decimal.RequireFromString(landed),
	}
}

func TestPlanCostMergeStandardRespectsLanded(t *testing.T) {
	existing := []models.CostRecord{
		costRow("S", "27SP", models.CostSourceLanded, "20.00"),
		costRow("T", "27SP", models.CostSourceStandard, "9.00"),
	}
	incoming := []models.CostRecord{
		costRow("S", "27SP", models.CostSourceStandard, "15.00"),
		costRow("T", "27SP", models.CostSourceStandard, "10.00"),
	}
	covered := map[string]struct{}{"27SP": {}}

	plan := PlanCostMerge(existing, incoming, covered, models.CostSourceStandard)

	// the landed row for S survives and blocks the incoming standard row
	if len(plan.Keep) != 1 || plan.Keep[0].CostSource != models.CostSourceLanded {
		t.Fatalf("keep = %+v, want only the landed row for S", plan.Keep)
	}
	if !plan.Keep[0].Landed.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("landed value changed: %s", plan.Keep[0].Landed)
	}
	if len(plan.Insert) != 1 || plan.Insert[0].StyleNumber != "T" {
		t.Fatalf("insert = %+v, want only the T row", plan.Insert)
	}
	if len(plan.Discard) != 1 || plan.Discard[0].StyleNumber != "T" {
		t.Fatalf("discard = %+v, want the old standard T row", plan.Discard)
	}
}

func TestPlanCostMergeLandedSupersedesEverything(t *testing.T) {
	existing := []models.CostRecord{
		costRow("S", "27SP", models.CostSourceLanded, "20.00"),
		costRow("T", "27SP", models.CostSourceStandard, "9.00"),
		costRow("U", "26FA", models.CostSourceStandard, "5.00"),
	}
	incoming := []models.CostRecord{
		costRow("S", "27SP", models.CostSourceLanded, "21.00"),
	}
	covered := map[string]struct{}{"27SP": {}}

	plan := PlanCostMerge(existing, incoming, covered, models.CostSourceLanded)

	if len(plan.Discard) != 2 {
		t.Fatalf("discard = %+v, want both 27SP rows", plan.Discard)
	}
	if len(plan.Keep) != 1 || plan.Keep[0].Season != "26FA" {
		t.Fatalf("keep = %+v, want the untouched 26FA row", plan.Keep)
	}
	if len(plan.Insert) != 1 || !plan.Insert[0].Landed.Equal(decimal.RequireFromString("21.00")) {
		t.Fatalf("insert = %+v", plan.Insert)
	}
}

func TestFilterExistingKeys(t *testing.T) {
	existing := []models.PricingRecord{
		{StyleNumber: "K1", Season: "26FA"},
	}
	incoming := []models.PricingRecord{
		{StyleNumber: "K1", Season: "26FA"},
		{StyleNumber: "K2", Season: "26FA"},
		{StyleNumber: "K2", Season: "26FA"}, // duplicate inside the batch
	}
	keyOf := func(p models.PricingRecord) string { return p.StyleNumber + "|" + p.Season }

	toInsert, skipped := FilterExistingKeys(existing, incoming, keyOf)
	if len(toInsert) != 1 || toInsert[0].StyleNumber != "K2" {
		t.Fatalf("toInsert = %+v", toInsert)
	}
	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
}

func TestScopeToSeasonsDropsStrayRows(t *testing.T) {
	incoming := []models.SalesRecord{
		salesRow("K1", "27SP", 4),
		salesRow("K2", "26FA", 9),
		salesRow("K3", "27SP", 2),
	}
	covered := map[string]struct{}{"27SP": {}}

	inScope, dropped := ScopeToSeasons(incoming, covered, salesSeason)

	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1 stray 26FA row", dropped)
	}
	if len(inScope) != 2 {
		t.Fatalf("kept %d rows, want 2", len(inScope))
	}
	for _, rec := range inScope {
		if rec.Season != "27SP" {
			t.Fatalf("kept record for season %q, want only 27SP", rec.Season)
		}
	}
}

func TestScopeToSeasonsKeepsBatchDerivedScope(t *testing.T) {
	incoming := []models.SalesRecord{
		salesRow("K1", "26FA", 1),
		salesRow("K2", "27SP", 2),
	}
	covered := CoveredSeasons(incoming, salesSeason)

	inScope, dropped := ScopeToSeasons(incoming, covered, salesSeason)
	if dropped != 0 || len(inScope) != len(incoming) {
		t.Fatalf("batch derived scope dropped %d rows, want 0", dropped)
	}
}
