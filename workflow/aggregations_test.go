package workflow

import (
	"reflect"
	"testing"

	"bitbucket.org/kuhldata/merchdash_backend/models"
)

func TestSummarizeByChannelSortsByRevenue(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "Wholesale", Revenue: dec("100"), UnitsBooked: 2},
		{Channel: "Ecommerce", Revenue: dec("300"), UnitsBooked: 5},
		{Channel: "Wholesale", Revenue: dec("150"), UnitsBooked: 3},
	}
	got := SummarizeByChannel(records)
	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2", len(got))
	}
	if got[0].Dimension != "Ecommerce" || !got[0].Revenue.Equal(dec("300")) {
		t.Fatalf("first bucket = %+v, want Ecommerce 300", got[0])
	}
	if got[1].Dimension != "Wholesale" || !got[1].Revenue.Equal(dec("250")) || got[1].Units != 5 {
		t.Fatalf("second bucket = %+v, want Wholesale 250/5", got[1])
	}
}

func TestSummarizeTieBreaksOnDimension(t *testing.T) {
	records := []models.SalesRecord{
		{Customer: "Zeta", Revenue: dec("10")},
		{Customer: "Alpha", Revenue: dec("10")},
	}
	got := SummarizeByCustomer(records)
	if got[0].Dimension != "Alpha" || got[1].Dimension != "Zeta" {
		t.Fatalf("tie break order = %s, %s", got[0].Dimension, got[1].Dimension)
	}
}

func TestSummarizeEmptyDimensionBucket(t *testing.T) {
	records := []models.SalesRecord{
		{Channel: "", Revenue: dec("5"), UnitsBooked: 1},
	}
	got := SummarizeByChannel(records)
	if len(got) != 1 || got[0].Dimension != "(none)" {
		t.Fatalf("got %+v, want a single (none) bucket", got)
	}
}

func TestSummarizeByGenderUsesClassifier(t *testing.T) {
	records := []models.SalesRecord{
		{Division: "Women's Apparel", Revenue: dec("10"), UnitsBooked: 1},
		{Division: "Men's Apparel", Revenue: dec("20"), UnitsBooked: 2},
		{Division: "Accessories", Revenue: dec("30"), UnitsBooked: 3},
	}
	got := SummarizeByGender(records)
	byDim := map[string]DimensionSummary{}
	for _, s := range got {
		byDim[s.Dimension] = s
	}
	if _, ok := byDim["Women"]; !ok {
		t.Fatal("missing Women bucket")
	}
	if _, ok := byDim["Men"]; !ok {
		t.Fatal("missing Men bucket")
	}
	if s, ok := byDim["Unisex"]; !ok || s.Units != 3 {
		t.Fatalf("Unisex bucket = %+v", s)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	records := []models.SalesRecord{
		{Category: "Pants", Revenue: dec("12.34"), UnitsBooked: 2},
		{Category: "Fleece", Revenue: dec("56.78"), UnitsBooked: 4},
		{Category: "Pants", Revenue: dec("1.00"), UnitsBooked: 1},
	}
	first := SummarizeByCategory(records)
	second := SummarizeByCategory(records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated aggregation differs:\n%+v\n%+v", first, second)
	}
}

func TestSummarizeInventory(t *testing.T) {
	records := []models.InventoryRecord{
		{MovementType: "Receipt", Quantity: 10, UnitCost: dec("2.50")},
		{MovementType: "Receipt", Quantity: 5, UnitCost: dec("2.50")},
		{MovementType: "Shipment", Quantity: 3, UnitCost: dec("2.50")},
	}
	got := SummarizeInventory(records)
	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2", len(got))
	}
	if got[0].Dimension != "Receipt" || got[0].Units != 15 {
		t.Fatalf("first bucket = %+v, want Receipt 15", got[0])
	}
	if !got[0].Revenue.Equal(dec("37.50")) {
		t.Fatalf("receipt value = %s, want 37.50", got[0].Revenue)
	}
}
