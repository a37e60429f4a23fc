package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

// InventoryRecord is a movement line from the warehouse export. Inventory
// has no season partitioning; every import replaces the table wholesale.
type InventoryRecord struct {
	ID           int             `gorm:"primary_key" json:"id"`
	StyleNumber  string          `gorm:"index;size:50;not null" json:"style_number"`
	ColorCode    string          `gorm:"size:50" json:"color_code"`
	Warehouse    string          `gorm:"size:100" json:"warehouse"`
	MovementType string          `gorm:"size:50" json:"movement_type"`
	Quantity     int             `gorm:"default:0" json:"quantity"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_cost"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ParseInventoryRows maps warehouse export rows into inventory records.
func ParseInventoryRows(rows []RowRecord) []InventoryRecord {
	records := make([]InventoryRecord, 0, len(rows))
	for _, row := range rows {
		styleNumber := row.pickString("Style#", "Style #", "Style")
		if styleNumber == "" {
			continue
		}

		records = append(records, InventoryRecord{
			StyleNumber:  styleNumber,
			ColorCode:    row.pickString("Color Code", "Color#", "Color"),
			Warehouse:    row.pickString("Warehouse", "WH", "Location"),
			MovementType: row.pickString("Movement Type", "Type", "Transaction Type"),
			Quantity:     int(row.pickMoney("Quantity", "Qty", "Units").IntPart()),
			UnitCost:     row.pickMoney("Unit Cost", "Cost"),
		})
	}
	return records
}

// FindInventoryRecords loads the whole inventory table, optionally
// filtered by style.
func FindInventoryRecords(ctx context.Context, styleNumber string) ([]InventoryRecord, error) {
	var records []InventoryRecord
	db := config.GetDB().WithContext(ctx).Model(&InventoryRecord{})
	if styleNumber != "" {
		db = db.Where("style_number = ?", styleNumber)
	}
	err := db.Order("style_number, color_code, movement_type").Find(&records).Error
	return records, err
}
