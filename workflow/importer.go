package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

// RecordType names the five importable sheet shapes.
type RecordType string

const (
	RecordTypeProducts  RecordType = "products"
	RecordTypePricing   RecordType = "pricing"
	RecordTypeCosts     RecordType = "costs"
	RecordTypeSales     RecordType = "sales"
	RecordTypeInventory RecordType = "inventory"
)

func ParseRecordType(s string) (RecordType, error) {
	switch RecordType(strings.ToLower(strings.TrimSpace(s))) {
	case RecordTypeProducts:
		return RecordTypeProducts, nil
	case RecordTypePricing:
		return RecordTypePricing, nil
	case RecordTypeCosts:
		return RecordTypeCosts, nil
	case RecordTypeSales:
		return RecordTypeSales, nil
	case RecordTypeInventory:
		return RecordTypeInventory, nil
	}
	return "", fmt.Errorf("unknown record type %q", s)
}

type ImportRequest struct {
	Type             RecordType
	Season           string
	Rows             []models.RowRecord
	ReplaceExisting  bool
	CostSource       models.CostSource
	CostHeaderOffset int
	FileName         string
	ImportedBy       string
}

type ImportStats struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Deleted int      `json:"deleted"`
	Seasons []string `json:"seasons"`
}

// RunImport executes one season scoped import as a single transaction:
// begin, delete everything in scope, insert the incoming batch in
// chunks, commit. Any failure rolls the whole import back, so a season
// is never left half replaced. An empty batch is not an error; it
// imports nothing and touches nothing.
func RunImport(ctx context.Context, req ImportRequest) (*ImportStats, error) {
	logger := config.GetLogger()

	lock, err := obtainImportLock(ctx, req.Type)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release(ctx) }()

	stats, err := runImportLocked(ctx, req)

	entry := models.ImportLog{
		RecordType:  string(req.Type),
		FileName:    req.FileName,
		ReplaceMode: req.ReplaceExisting,
		ImportedBy:  req.ImportedBy,
	}
	if stats != nil {
		entry.Seasons = strings.Join(stats.Seasons, ",")
		entry.Added = stats.Added
		entry.Skipped = stats.Skipped
		entry.Deleted = stats.Deleted
	}
	if err != nil {
		entry.FailureKind = string(utils.KindOf(err))
		entry.FailureDetail = err.Error()
	} else {
		entry.Success = true
	}
	if logErr := entry.Save(ctx); logErr != nil {
		config.LogError(logger, "workflow", "RunImport", "save import log", req.Type, logErr)
	}

	if err == nil {
		models.InvalidateSeasonList()
	}
	return stats, err
}

func runImportLocked(ctx context.Context, req ImportRequest) (*ImportStats, error) {
	switch req.Type {
	case RecordTypeProducts:
		records := models.ParseProductRows(req.Rows)
		return importSeasonScoped(ctx, req, records,
			func(p models.Product) string { return p.Season },
			func(p models.Product) string {
				return strings.Join([]string{p.StyleNumber, p.Color, p.Season}, "|")
			},
			&models.Product{})
	case RecordTypePricing:
		records := models.ParsePricingRows(req.Rows)
		return importSeasonScoped(ctx, req, records,
			func(p models.PricingRecord) string { return p.Season },
			func(p models.PricingRecord) string {
				return strings.Join([]string{p.StyleNumber, p.Season}, "|")
			},
			&models.PricingRecord{})
	case RecordTypeSales:
		records := models.ParseSalesRows(req.Rows)
		return importSeasonScoped(ctx, req, records,
			func(s models.SalesRecord) string { return s.Season },
			func(s models.SalesRecord) string {
				return strings.Join([]string{s.StyleNumber, s.ColorCode, s.Season, s.Customer, s.SalesRep}, "|")
			},
			&models.SalesRecord{})
	case RecordTypeCosts:
		return importCosts(ctx, req)
	case RecordTypeInventory:
		return importInventory(ctx, req)
	}
	return nil, fmt.Errorf("unknown record type %q", req.Type)
}

// resolveCoveredSeasons scopes the import either to the explicitly
// requested season or to every season present in the parsed batch.
// Under STRICT_SEASON_TOKENS a degraded token fails the import instead
// of polluting the season enumeration.
func resolveCoveredSeasons[T any](req ImportRequest, records []T, seasonOf func(T) string) (map[string]struct{}, error) {
	if req.Season != "" {
		result := models.NormalizeSeason(req.Season)
		if result.Form != models.SeasonFormCanonical {
			return nil, utils.WrapKind(utils.ErrKindParseError,
				fmt.Errorf("season %q does not normalize to a canonical token", req.Season))
		}
		return map[string]struct{}{result.Season: {}}, nil
	}

	covered := CoveredSeasons(records, seasonOf)
	if config.StrictSeasonTokens() {
		for season := range covered {
			if !models.IsCanonicalSeason(season) {
				return nil, utils.WrapKind(utils.ErrKindParseError,
					fmt.Errorf("batch contains non canonical season token %q", season))
			}
		}
	}
	return covered, nil
}

func seasonList(covered map[string]struct{}) []string {
	seasons := make([]string, 0, len(covered))
	for s := range covered {
		seasons = append(seasons, s)
	}
	models.SortSeasons(seasons)
	return seasons
}

// importSeasonScoped is the shared replace path for products, pricing
// and sales. Rows outside the covered seasons are skipped up front, so
// an explicitly scoped import only ever writes inside its scope. Replace
// mode deletes everything in the covered seasons and inserts the batch;
// append mode inserts only rows whose key is new.
func importSeasonScoped[T any](ctx context.Context, req ImportRequest, records []T, seasonOf func(T) string, keyOf func(T) string, model interface{}) (*ImportStats, error) {
	covered, err := resolveCoveredSeasons(req, records, seasonOf)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{Seasons: seasonList(covered)}
	records, stats.Skipped = ScopeToSeasons(records, covered, seasonOf)
	if len(records) == 0 {
		return stats, nil
	}

	db := config.GetDB().WithContext(ctx)
	tx := db.Begin()
	if tx.Error != nil {
		return nil, utils.WrapKind(utils.ErrKindStoreUnavailable, tx.Error)
	}

	toInsert := records
	if req.ReplaceExisting {
		res := tx.Where("season IN ?", stats.Seasons).Delete(model)
		if res.Error != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, res.Error)
		}
		stats.Deleted = int(res.RowsAffected)
	} else {
		var existing []T
		if err := tx.Where("season IN ?", stats.Seasons).Find(&existing).Error; err != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindStoreUnavailable, err)
		}
		var dup int
		toInsert, dup = FilterExistingKeys(existing, records, keyOf)
		stats.Skipped += dup
	}

	if len(toInsert) > 0 {
		if err := tx.CreateInBatches(toInsert, config.ImportBatchSize()).Error; err != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, err)
		}
	}
	stats.Added = len(toInsert)

	if err := tx.Commit().Error; err != nil {
		return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, err)
	}
	return stats, nil
}

// importCosts runs the priority aware cost merge. The whole plan is
// computed against the existing rows first, then applied in one
// transaction.
func importCosts(ctx context.Context, req ImportRequest) (*ImportStats, error) {
	source := req.CostSource
	if source == "" {
		source = models.CostSourceStandard
	}
	records := models.ParseCostRows(req.Rows, models.CostParseOptions{
		HeaderOffset: req.CostHeaderOffset,
		Source:       source,
	})

	seasonOf := func(c models.CostRecord) string { return c.Season }
	covered, err := resolveCoveredSeasons(req, records, seasonOf)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{Seasons: seasonList(covered)}
	var outOfScope int
	records, outOfScope = ScopeToSeasons(records, covered, seasonOf)
	if len(records) == 0 {
		stats.Skipped = outOfScope
		return stats, nil
	}

	db := config.GetDB().WithContext(ctx)
	tx := db.Begin()
	if tx.Error != nil {
		return nil, utils.WrapKind(utils.ErrKindStoreUnavailable, tx.Error)
	}

	var existing []models.CostRecord
	if err := tx.Where("season IN ?", stats.Seasons).Find(&existing).Error; err != nil {
		tx.Rollback()
		return nil, utils.WrapKind(utils.ErrKindStoreUnavailable, err)
	}

	var plan MergePlan[models.CostRecord]
	if req.ReplaceExisting {
		plan = PlanCostMerge(existing, records, covered, source)
	} else {
		toInsert, _ := FilterExistingKeys(existing, records, func(c models.CostRecord) string {
			return strings.Join([]string{c.StyleNumber, c.Season, string(c.CostSource)}, "|")
		})
		plan = MergePlan[models.CostRecord]{Keep: existing, Insert: toInsert}
	}
	stats.Skipped = outOfScope + len(records) - len(plan.Insert)

	if len(plan.Discard) > 0 {
		ids := make([]int, 0, len(plan.Discard))
		for _, rec := range plan.Discard {
			ids = append(ids, rec.ID)
		}
		res := tx.Where("id IN ?", ids).Delete(&models.CostRecord{})
		if res.Error != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, res.Error)
		}
		stats.Deleted = int(res.RowsAffected)
	}

	if len(plan.Insert) > 0 {
		if err := tx.CreateInBatches(plan.Insert, config.ImportBatchSize()).Error; err != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, err)
		}
	}
	stats.Added = len(plan.Insert)

	if err := tx.Commit().Error; err != nil {
		return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, err)
	}
	return stats, nil
}

// importInventory replaces the inventory table wholesale. Inventory has
// no season scoping; replace mode truncates everything first.
func importInventory(ctx context.Context, req ImportRequest) (*ImportStats, error) {
	records := models.ParseInventoryRows(req.Rows)
	stats := &ImportStats{Seasons: []string{}}
	if len(records) == 0 && !req.ReplaceExisting {
		return stats, nil
	}

	db := config.GetDB().WithContext(ctx)
	tx := db.Begin()
	if tx.Error != nil {
		return nil, utils.WrapKind(utils.ErrKindStoreUnavailable, tx.Error)
	}

	toInsert := records
	if req.ReplaceExisting {
		res := tx.Where("1 = 1").Delete(&models.InventoryRecord{})
		if res.Error != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, res.Error)
		}
		stats.Deleted = int(res.RowsAffected)
	} else {
		var existing []models.InventoryRecord
		if err := tx.Find(&existing).Error; err != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindStoreUnavailable, err)
		}
		toInsert, stats.Skipped = FilterExistingKeys(existing, records, func(r models.InventoryRecord) string {
			return strings.Join([]string{r.StyleNumber, r.ColorCode, r.Warehouse, r.MovementType}, "|")
		})
	}

	if len(toInsert) > 0 {
		if err := tx.CreateInBatches(toInsert, config.ImportBatchSize()).Error; err != nil {
			tx.Rollback()
			return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, err)
		}
	}
	stats.Added = len(toInsert)

	if err := tx.Commit().Error; err != nil {
		return nil, utils.WrapKind(utils.ErrKindPartialImportFailure, err)
	}
	return stats, nil
}

// DeleteRecordType removes every row of one record type. Used by the
// explicit delete endpoint; season scoped deletion goes through imports.
func DeleteRecordType(ctx context.Context, recordType RecordType, season string) (int64, error) {
	var model interface{}
	switch recordType {
	case RecordTypeProducts:
		model = &models.Product{}
	case RecordTypePricing:
		model = &models.PricingRecord{}
	case RecordTypeCosts:
		model = &models.CostRecord{}
	case RecordTypeSales:
		model = &models.SalesRecord{}
	case RecordTypeInventory:
		model = &models.InventoryRecord{}
	default:
		return 0, fmt.Errorf("unknown record type %q", recordType)
	}

	db := config.GetDB().WithContext(ctx)
	var res *gorm.DB
	if season != "" {
		if recordType == RecordTypeInventory {
			return 0, errors.New("inventory records are not season scoped")
		}
		res = db.Where("season = ?", season).Delete(model)
	} else {
		res = db.Where("1 = 1").Delete(model)
	}
	if res.Error != nil {
		return 0, utils.WrapKind(utils.ErrKindStoreUnavailable, res.Error)
	}
	models.InvalidateSeasonList()
	return res.RowsAffected, nil
}
