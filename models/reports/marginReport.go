package reports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/workflow"
)

type MarginReportRow struct {
	StyleNumber   string           `json:"StyleNumber"`
	Description   string           `json:"Description"`
	Category      string           `json:"Category"`
	Season        string           `json:"Season"`
	Wholesale     *decimal.Decimal `json:"Wholesale"`
	PricingSource string           `json:"PricingSource"`
	Landed        *decimal.Decimal `json:"Landed"`
	CostSource    string           `json:"CostSource"`
	Margin        *decimal.Decimal `json:"Margin"`
}

// GetMarginReport resolves the authoritative price and cost for every
// style in a season through the waterfall and derives margins. Rows with
// no price data at all still appear, with nil values, so merchandisers
// can see which styles are missing data rather than mistaking them for
// zero margin.
func GetMarginReport(ctx context.Context, season string) ([]*MarginReportRow, error) {
	if !models.IsCanonicalSeason(season) {
		return nil, errors.New("season " + season + " is not a canonical token")
	}
	seasons := []string{season}

	products, _, err := models.FindProducts(ctx, models.ProductFilter{Season: season, Limit: 500})
	if err != nil {
		return nil, err
	}
	// FindProducts pages; pull the remainder for big seasons
	for {
		page, total, err := models.FindProducts(ctx, models.ProductFilter{Season: season, Limit: 500, Offset: len(products)})
		if err != nil {
			return nil, err
		}
		products = append(products, page...)
		if int64(len(products)) >= total || len(page) == 0 {
			break
		}
	}

	sales, err := models.FindSalesBySeasons(ctx, seasons)
	if err != nil {
		return nil, err
	}
	pricing, err := models.FindPricingBySeasons(ctx, seasons)
	if err != nil {
		return nil, err
	}
	costs, err := models.FindCostsBySeasons(ctx, seasons)
	if err != nil {
		return nil, err
	}

	resolver := workflow.NewResolver(products, sales, pricing, costs)

	seen := make(map[string]struct{}, len(products))
	rows := make([]*MarginReportRow, 0, len(products))
	for _, p := range products {
		if _, dup := seen[p.StyleNumber]; dup {
			continue
		}
		seen[p.StyleNumber] = struct{}{}

		quote := resolver.ResolvePricing(p.StyleNumber, season)
		cost := resolver.ResolveCost(p.StyleNumber, season)
		rows = append(rows, &MarginReportRow{
			StyleNumber:   p.StyleNumber,
			Description:   p.Description,
			Category:      p.Category,
			Season:        season,
			Wholesale:     quote.Wholesale,
			PricingSource: quote.Source,
			Landed:        cost.Landed,
			CostSource:    cost.Source,
			Margin:        workflow.Margin(quote.Wholesale, cost.Landed),
		})
	}
	return rows, nil
}

func (r MarginReportRow) GetCellValues() []interface{} {
	return []interface{}{
		r.StyleNumber, r.Description, r.Category, r.Season,
		decimalCell(r.Wholesale), r.PricingSource,
		decimalCell(r.Landed), r.CostSource,
		decimalCell(r.Margin),
	}
}

func decimalCell(d *decimal.Decimal) interface{} {
	if d == nil {
		return ""
	}
	return d.String()
}
