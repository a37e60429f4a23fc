package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

// PricingRecord is one row of the dedicated seasonal price list. Lower
// volume than sales, and authoritative whenever a key is present.
type PricingRecord struct {
	ID          int             `gorm:"primary_key" json:"id"`
	StyleNumber string          `gorm:"index:idx_pricing_style_season;size:50;not null" json:"style_number"`
	Season      string          `gorm:"index:idx_pricing_style_season;size:20;not null" json:"season"`
	SeasonType  SeasonType      `gorm:"size:20;default:'Main'" json:"season_type"`
	RawSeason   string          `gorm:"size:50" json:"raw_season"`
	Msrp        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"msrp"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Cost        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ParsePricingRows maps seasonal price list rows into pricing records.
func ParsePricingRows(rows []RowRecord) []PricingRecord {
	records := make([]PricingRecord, 0, len(rows))
	for _, row := range rows {
		styleNumber := row.pickString("Style#", "Style #", "Style")
		if styleNumber == "" {
			continue
		}

		season := NormalizeSeason(row.pickString("Season", "Price Season"))

		records = append(records, PricingRecord{
			StyleNumber: styleNumber,
			Season:      season.Season,
			SeasonType:  season.SeasonType,
			RawSeason:   season.RawSeason,
			Msrp:        row.pickMoney("MSRP", "Retail", "Retail Price", "SRP"),
			Price:       row.pickMoney("Price", "Wholesale", "Wholesale Price", "WHLS"),
			Cost:        row.pickMoney("Cost", "Std Cost", "Standard Cost"),
		})
	}
	return records
}

// FindPricingBySeasons loads pricing rows for the given seasons.
func FindPricingBySeasons(ctx context.Context, seasons []string) ([]PricingRecord, error) {
	var records []PricingRecord
	db := config.GetDB().WithContext(ctx).Model(&PricingRecord{})
	if len(seasons) > 0 {
		db = db.Where("season IN ?", seasons)
	}
	err := db.Order("season, style_number").Find(&records).Error
	return records, err
}
