package reports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

type SeasonComparisonResponse struct {
	Category     string          `json:"Category"`
	Season       string          `json:"Season"`
	TotalUnits   int             `json:"TotalUnits"`
	TotalRevenue decimal.Decimal `json:"TotalRevenue"`
	StyleCount   int             `json:"StyleCount"`
}

// GetSeasonComparisonReport returns category level sales totals for each
// requested season. The UI pivots the rows into a season over season
// table; rows come back ordered by category then season so the pivot is
// stable.
func GetSeasonComparisonReport(ctx context.Context, seasons []string) ([]*SeasonComparisonResponse, error) {
	if len(seasons) == 0 {
		return nil, errors.New("at least one season is required")
	}
	for _, s := range seasons {
		if !models.IsCanonicalSeason(s) {
			return nil, errors.New("season " + s + " is not a canonical token")
		}
	}

	sqlT := `
SELECT
    category,
    season,
    SUM(units_booked) AS total_units,
    SUM(revenue) AS total_revenue,
    COUNT(DISTINCT style_number) AS style_count
FROM
    sales_records
WHERE
    season IN ?
GROUP BY category, season
ORDER BY category, season;
`

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	var records []*SeasonComparisonResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, seasons).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r SeasonComparisonResponse) GetCellValues() []interface{} {
	return []interface{}{r.Category, r.Season, r.TotalUnits, r.TotalRevenue, r.StyleCount}
}
