package workflow

import (
	"sort"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/models"
)

// DimensionSummary is one rollup row. Aggregations are pure reductions
// over an in memory snapshot, rebuilt on every request; they are never
// persisted as a source of truth.
type DimensionSummary struct {
	Dimension string          `json:"dimension"`
	Revenue   decimal.Decimal `json:"revenue"`
	Units     int             `json:"units"`
}

// SummarizeSales folds sales rows along one dimension. Rows whose
// dimension value is empty land in an "(none)" bucket so totals still
// reconcile against the raw record count. Output is ordered by revenue
// descending, dimension ascending on ties, so repeated runs over the
// same snapshot are byte for byte identical.
func SummarizeSales(records []models.SalesRecord, dimensionOf func(models.SalesRecord) string) []DimensionSummary {
	buckets := make(map[string]*DimensionSummary)
	for _, rec := range records {
		dim := dimensionOf(rec)
		if dim == "" {
			dim = "(none)"
		}
		bucket, ok := buckets[dim]
		if !ok {
			bucket = &DimensionSummary{Dimension: dim}
			buckets[dim] = bucket
		}
		bucket.Revenue = bucket.Revenue.Add(rec.Revenue)
		bucket.Units += rec.UnitsBooked
	}

	summaries := make([]DimensionSummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Revenue.Equal(summaries[j].Revenue) {
			return summaries[i].Revenue.GreaterThan(summaries[j].Revenue)
		}
		return summaries[i].Dimension < summaries[j].Dimension
	})
	return summaries
}

func SummarizeByChannel(records []models.SalesRecord) []DimensionSummary {
	return SummarizeSales(records, func(r models.SalesRecord) string { return r.Channel })
}

func SummarizeByCategory(records []models.SalesRecord) []DimensionSummary {
	return SummarizeSales(records, func(r models.SalesRecord) string { return r.Category })
}

func SummarizeByGender(records []models.SalesRecord) []DimensionSummary {
	return SummarizeSales(records, func(r models.SalesRecord) string {
		if r.Gender != "" {
			return r.Gender
		}
		return models.ClassifyGender(r.Division)
	})
}

func SummarizeByCustomer(records []models.SalesRecord) []DimensionSummary {
	return SummarizeSales(records, func(r models.SalesRecord) string { return r.Customer })
}

// SummarizeInventory rolls inventory movements up by movement type.
// Revenue stays zero; inventory rows carry units and cost only.
func SummarizeInventory(records []models.InventoryRecord) []DimensionSummary {
	buckets := make(map[string]*DimensionSummary)
	for _, rec := range records {
		dim := rec.MovementType
		if dim == "" {
			dim = "(none)"
		}
		bucket, ok := buckets[dim]
		if !ok {
			bucket = &DimensionSummary{Dimension: dim}
			buckets[dim] = bucket
		}
		bucket.Units += rec.Quantity
		bucket.Revenue = bucket.Revenue.Add(rec.UnitCost.Mul(decimal.NewFromInt(int64(rec.Quantity))))
	}

	summaries := make([]DimensionSummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Units != summaries[j].Units {
			return summaries[i].Units > summaries[j].Units
		}
		return summaries[i].Dimension < summaries[j].Dimension
	})
	return summaries
}
