package models

import (
	"context"
	"time"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

const seasonListCacheKey = "SeasonList"

/*
caches:
	SeasonList
*/

// ListSeasons enumerates every season known to any record type, sorted
// chronologically. The union is cached in redis and invalidated by
// imports and deletes.
func ListSeasons(ctx context.Context) ([]string, error) {
	var cached []string
	exists, err := config.GetRedisObject(seasonListCacheKey, &cached)
	if err == nil && exists {
		return cached, nil
	}

	union := make(map[string]struct{})
	for _, model := range []interface{}{&Product{}, &SalesRecord{}, &PricingRecord{}, &CostRecord{}} {
		var seasons []string
		err := config.GetDB().WithContext(ctx).Model(model).
			Distinct("season").Where("season <> ''").Pluck("season", &seasons).Error
		if err != nil {
			return nil, err
		}
		for _, s := range seasons {
			union[s] = struct{}{}
		}
	}

	all := make([]string, 0, len(union))
	for s := range union {
		all = append(all, s)
	}
	SortSeasons(all)

	if err := config.SetRedisObject(seasonListCacheKey, all, time.Hour); err != nil {
		config.LogError(config.GetLogger(), "models", "ListSeasons", "cache season list", nil, err)
	}
	return all, nil
}

// InvalidateSeasonList drops the cached season enumeration. Best effort;
// the cache also expires on its own.
func InvalidateSeasonList() {
	if err := config.RemoveRedisKey(seasonListCacheKey); err != nil {
		config.LogError(config.GetLogger(), "models", "InvalidateSeasonList", "remove cache key", nil, err)
	}
}
