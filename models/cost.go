package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

// CostSource labels where a cost row came from. For any (style, season)
// key a landed_cost row always beats a standard_cost row; standard cost
// exists only to fill gaps.
type CostSource string

const (
	CostSourceLanded   CostSource = "landed_cost"
	CostSourceStandard CostSource = "standard_cost"
)

type CostRecord struct {
	ID           int             `gorm:"primary_key" json:"id"`
	StyleNumber  string          `gorm:"index:idx_costs_style_season;size:50;not null" json:"style_number"`
	Season       string          `gorm:"index:idx_costs_style_season;size:20;not null" json:"season"`
	SeasonType   SeasonType      `gorm:"size:20;default:'Main'" json:"season_type"`
	RawSeason    string          `gorm:"size:50" json:"raw_season"`
	CostSource   CostSource      `gorm:"type:enum('landed_cost','standard_cost');default:'standard_cost'" json:"cost_source"`
	Fob          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fob"`
	Landed       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"landed"`
	DutyCost     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"duty_cost"`
	TariffCost   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tariff_cost"`
	FreightCost  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"freight_cost"`
	OverheadCost decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"overhead_cost"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// CostParseOptions tunes cost sheet parsing. The landed cost workbook
// carries banner rows above the data; the offset is configurable because
// the sheet template shifts between vendors.
type CostParseOptions struct {
	HeaderOffset int
	Source       CostSource
}

// ParseCostRows maps cost sheet rows into cost records, skipping the
// configured number of leading banner rows.
func ParseCostRows(rows []RowRecord, opts CostParseOptions) []CostRecord {
	source := opts.Source
	if source == "" {
		source = CostSourceStandard
	}
	if opts.HeaderOffset > 0 && opts.HeaderOffset < len(rows) {
		rows = rows[opts.HeaderOffset:]
	} else if opts.HeaderOffset >= len(rows) {
		return nil
	}

	records := make([]CostRecord, 0, len(rows))
	for _, row := range rows {
		styleNumber := row.pickString("Style#", "Style #", "Style")
		if styleNumber == "" {
			continue
		}

		season := NormalizeSeason(row.pickString("Season", "Cost Season"))
		landed := row.pickMoney("Landed", "Landed Cost", "Total Landed")
		fob := row.pickMoney("FOB", "FOB Cost", "First Cost")
		if landed.IsZero() && source == CostSourceStandard {
			landed = row.pickMoney("Cost", "Std Cost", "Standard Cost")
		}

		records = append(records, CostRecord{
			StyleNumber:  styleNumber,
			Season:       season.Season,
			SeasonType:   season.SeasonType,
			RawSeason:    season.RawSeason,
			CostSource:   source,
			Fob:          fob,
			Landed:       landed,
			DutyCost:     row.pickMoney("Duty", "Duty Cost"),
			TariffCost:   row.pickMoney("Tariff", "Tariff Cost"),
			FreightCost:  row.pickMoney("Freight", "Freight Cost"),
			OverheadCost: row.pickMoney("Overhead", "Overhead Cost", "OH"),
		})
	}
	return records
}

// FindCostsBySeasons loads cost rows for the given seasons.
func FindCostsBySeasons(ctx context.Context, seasons []string) ([]CostRecord, error) {
	var records []CostRecord
	db := config.GetDB().WithContext(ctx).Model(&CostRecord{})
	if len(seasons) > 0 {
		db = db.Where("season IN ?", seasons)
	}
	err := db.Order("season, style_number, cost_source").Find(&records).Error
	return records, err
}
