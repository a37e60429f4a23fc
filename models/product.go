package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

// Product is one style/color/season unit from the line list. Products,
// sales, pricing and costs have no foreign keys between them; joins
// happen at query time on (styleNumber[, color], season).
type Product struct {
	ID              int             `gorm:"primary_key" json:"id"`
	StyleNumber     string          `gorm:"index:idx_products_style_season;size:50;not null" json:"style_number"`
	Color           string          `gorm:"size:50" json:"color"`
	StyleColor      string          `gorm:"index;size:100" json:"style_color"`
	Description     string          `gorm:"size:255" json:"description"`
	Category        string          `gorm:"index;size:100" json:"category"`
	Division        string          `gorm:"size:100" json:"division"`
	Gender          string          `gorm:"size:20" json:"gender"`
	Season          string          `gorm:"index:idx_products_style_season;size:20;not null" json:"season"`
	SeasonType      SeasonType      `gorm:"size:20;default:'Main'" json:"season_type"`
	RawSeason       string          `gorm:"size:50" json:"raw_season"`
	Price           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Msrp            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"msrp"`
	Cost            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost"`
	PriceCad        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price_cad"`
	MsrpCad         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"msrp_cad"`
	CarryOver       *bool           `gorm:"not null;default:false" json:"carry_over"`
	Discontinued    *bool           `gorm:"not null;default:false" json:"discontinued"`
	CountryOfOrigin string          `gorm:"size:100" json:"country_of_origin"`
	FactoryName     string          `gorm:"size:100" json:"factory_name"`
	Designer        string          `gorm:"size:100" json:"designer"`
	Merchandiser    string          `gorm:"size:100" json:"merchandiser"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ParseProductRows maps raw line list rows into products. Rows without a
// style identifier are skipped; malformed cells coerce to safe defaults.
// A line list row can carry up to three independent season columns; the
// style level one drives merge scoping, the others are normalized but
// only the strongest canonical hit is kept.
func ParseProductRows(rows []RowRecord) []Product {
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		styleNumber := row.pickString("Style#", "Style #", "Style")
		if styleNumber == "" {
			continue
		}

		season := NormalizeSeason(row.pickString("Season", "Style Season"))
		if !season.IsCanonical() {
			if alt := NormalizeSeason(row.pickString("Style Color Season", "SC Season")); alt.IsCanonical() {
				season = alt
			} else if alt := NormalizeSeason(row.pickString("Base Season")); alt.IsCanonical() {
				season = alt
			}
		}

		color := row.pickString("Color Code", "Color#", "Color")
		styleColor := row.pickString("Style Color", "StyleColor")
		if styleColor == "" && color != "" {
			styleColor = styleNumber + "-" + color
		}

		division := row.pickString("Division", "Division Description")

		products = append(products, Product{
			StyleNumber:     styleNumber,
			Color:           color,
			StyleColor:      styleColor,
			Description:     row.pickString("Description", "Style Description", "Product Name"),
			Category:        NormalizeCategory(row.pickString("Category", "Category Description", "Class")),
			Division:        division,
			Gender:          ClassifyGender(division),
			Season:          season.Season,
			SeasonType:      season.SeasonType,
			RawSeason:       season.RawSeason,
			Price:           row.pickMoney("Price", "Wholesale", "Wholesale Price", "WHLS"),
			Msrp:            row.pickMoney("MSRP", "Retail", "Retail Price", "SRP"),
			Cost:            row.pickMoney("Cost", "Std Cost", "Standard Cost", "FOB"),
			PriceCad:        row.pickMoney("Price CAD", "Wholesale CAD", "CAD Price"),
			MsrpCad:         row.pickMoney("MSRP CAD", "Retail CAD", "CAD MSRP"),
			CarryOver:       boolPtr(row.pickFlag("Carry Over", "CarryOver", "C/O")),
			Discontinued:    boolPtr(row.pickFlag("Discontinued", "DISC", "Dropped")),
			CountryOfOrigin: row.pickString("COO", "Country of Origin"),
			FactoryName:     row.pickString("Factory", "Factory Name", "Vendor"),
			Designer:        row.pickString("Designer"),
			Merchandiser:    row.pickString("Merchandiser", "Merch"),
			Notes:           row.pickString("Notes", "Comments"),
		})
	}
	return products
}

func boolPtr(b bool) *bool { return &b }

type ProductFilter struct {
	Season   string
	Category string
	Gender   string
	Search   string
	Limit    int
	Offset   int
}

// FindProducts returns a filtered page of products plus the total count.
func FindProducts(ctx context.Context, filter ProductFilter) ([]Product, int64, error) {
	db := config.GetDB().WithContext(ctx).Model(&Product{})
	if filter.Season != "" {
		db = db.Where("season = ?", filter.Season)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Gender != "" {
		db = db.Where("gender = ?", filter.Gender)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("style_number LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var products []Product
	err := db.Order("season, style_number, color").
		Limit(limit).Offset(filter.Offset).
		Find(&products).Error
	return products, total, err
}

// DistinctProductSeasons lists every season present in the product table,
// sorted chronologically.
func DistinctProductSeasons(ctx context.Context) ([]string, error) {
	var seasons []string
	err := config.GetDB().WithContext(ctx).Model(&Product{}).
		Distinct("season").Where("season <> ''").Pluck("season", &seasons).Error
	if err != nil {
		return nil, err
	}
	SortSeasons(seasons)
	return seasons, nil
}
