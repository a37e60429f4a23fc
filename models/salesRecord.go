package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

// SalesRecord is one pre-aggregated booking line from the sales export,
// not an individual transaction. Volume runs to several hundred thousand
// rows, so these are always paged and never cached whole.
type SalesRecord struct {
	ID             int             `gorm:"primary_key" json:"id"`
	StyleNumber    string          `gorm:"index:idx_sales_style_season;size:50;not null" json:"style_number"`
	ColorCode      string          `gorm:"size:50" json:"color_code"`
	Season         string          `gorm:"index:idx_sales_style_season;size:20;not null" json:"season"`
	SeasonType     SeasonType      `gorm:"size:20;default:'Main'" json:"season_type"`
	RawSeason      string          `gorm:"size:50" json:"raw_season"`
	Description    string          `gorm:"size:255" json:"description"`
	Category       string          `gorm:"index;size:100" json:"category"`
	Division       string          `gorm:"size:100" json:"division"`
	Gender         string          `gorm:"size:20" json:"gender"`
	Channel        string          `gorm:"index;size:100" json:"channel"`
	Customer       string          `gorm:"index;size:150" json:"customer"`
	CustomerType   string          `gorm:"size:100" json:"customer_type"`
	SalesRep       string          `gorm:"size:100" json:"sales_rep"`
	UnitsBooked    int             `gorm:"default:0" json:"units_booked"`
	Shipped        int             `gorm:"default:0" json:"shipped"`
	Revenue        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"revenue"`
	Cost           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost"`
	WholesalePrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"wholesale_price"`
	Msrp           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"msrp"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ParseSalesRows maps raw sales export rows into sales records.
func ParseSalesRows(rows []RowRecord) []SalesRecord {
	records := make([]SalesRecord, 0, len(rows))
	for _, row := range rows {
		styleNumber := row.pickString("Style#", "Style #", "Style")
		if styleNumber == "" {
			continue
		}

		season := NormalizeSeason(row.pickString("Season", "Booking Season"))
		division := row.pickString("Division", "Division Description")

		records = append(records, SalesRecord{
			StyleNumber:    styleNumber,
			ColorCode:      row.pickString("Color Code", "Color#", "Color"),
			Season:         season.Season,
			SeasonType:     season.SeasonType,
			RawSeason:      season.RawSeason,
			Description:    row.pickString("Description", "Style Description"),
			Category:       NormalizeCategory(row.pickString("Category", "Category Description", "Class")),
			Division:       division,
			Gender:         ClassifyGender(division),
			Channel:        row.pickString("Channel", "Sales Channel", "Distribution Channel"),
			Customer:       row.pickString("Customer", "Customer Name", "Sold To Name"),
			CustomerType:   row.pickString("Customer Type", "Account Type"),
			SalesRep:       row.pickString("Sales Rep", "Rep", "Rep Name"),
			UnitsBooked:    int(row.pickMoney("Units Booked", "Units", "Booked Units", "Qty").IntPart()),
			Shipped:        int(row.pickMoney("Shipped", "Shipped Units", "Units Shipped").IntPart()),
			Revenue:        row.pickMoney("Revenue", "Booked $", "Booked Amount", "Net Sales"),
			Cost:           row.pickMoney("Cost", "Std Cost"),
			WholesalePrice: row.pickMoney("Wholesale Price", "Wholesale", "Unit Price", "WHLS"),
			Msrp:           row.pickMoney("MSRP", "Retail", "SRP"),
		})
	}
	return records
}

type SalesFilter struct {
	Season   string
	Customer string
	Channel  string
	Category string
	Limit    int
	Offset   int
}

// FindSalesRecords returns a filtered page of sales rows plus the total
// count. Callers page through results rather than loading all rows.
func FindSalesRecords(ctx context.Context, filter SalesFilter) ([]SalesRecord, int64, error) {
	db := config.GetDB().WithContext(ctx).Model(&SalesRecord{})
	if filter.Season != "" {
		db = db.Where("season = ?", filter.Season)
	}
	if filter.Customer != "" {
		db = db.Where("customer = ?", filter.Customer)
	}
	if filter.Channel != "" {
		db = db.Where("channel = ?", filter.Channel)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 200
	}

	var records []SalesRecord
	err := db.Order("season, style_number, color_code, customer").
		Limit(limit).Offset(filter.Offset).
		Find(&records).Error
	return records, total, err
}

// FindSalesBySeasons loads all sales rows for the given seasons. Used by
// the resolver and aggregation builders, which work on in memory
// snapshots scoped to the seasons a view actually displays.
func FindSalesBySeasons(ctx context.Context, seasons []string) ([]SalesRecord, error) {
	var records []SalesRecord
	db := config.GetDB().WithContext(ctx).Model(&SalesRecord{})
	if len(seasons) > 0 {
		db = db.Where("season IN ?", seasons)
	}
	err := db.Order("season, style_number, color_code").Find(&records).Error
	return records, err
}
