package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

type SalesByCustomerResponse struct {
	Customer     string          `json:"Customer"`
	CustomerType string          `json:"CustomerType"`
	LineCount    int             `json:"LineCount"`
	TotalUnits   int             `json:"TotalUnits"`
	TotalRevenue decimal.Decimal `json:"TotalRevenue"`
}

func GetSalesByCustomerReport(ctx context.Context, season string, channel string) ([]*SalesByCustomerResponse, error) {

	sqlT := `
SELECT
    customer,
    customer_type,
    COUNT(id) AS line_count,
    SUM(units_booked) AS total_units,
    SUM(revenue) AS total_revenue
FROM
    sales_records
WHERE
    customer <> ''
    {{- if .season }} AND season = @season {{- end }}
    {{- if .channel }} AND channel = @channel {{- end }}
GROUP BY customer, customer_type
ORDER BY total_revenue DESC, customer;
`

	// generating sql from template
	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"season":  season,
		"channel": channel,
	})
	if err != nil {
		return nil, err
	}

	var records []*SalesByCustomerResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"season":  season,
		"channel": channel,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r SalesByCustomerResponse) GetCellValues() []interface{} {
	return []interface{}{r.Customer, r.CustomerType, r.LineCount, r.TotalUnits, r.TotalRevenue}
}
