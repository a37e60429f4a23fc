package workflow

import (
	"bitbucket.org/kuhldata/merchdash_backend/models"
)

// MergePlan is the outcome of a season scoped replace: existing records
// split into kept and discarded, plus the incoming rows to insert. The
// plan is computed purely; persistence applies it inside one transaction.
type MergePlan[T any] struct {
	Keep    []T
	Discard []T
	Insert  []T
}

// CoveredSeasons collects the distinct non empty seasons carried by a
// batch, using the supplied accessor.
func CoveredSeasons[T any](records []T, seasonOf func(T) string) map[string]struct{} {
	covered := make(map[string]struct{})
	for _, r := range records {
		if s := seasonOf(r); s != "" {
			covered[s] = struct{}{}
		}
	}
	return covered
}

// ScopeToSeasons drops incoming records whose season falls outside the
// covered set. An explicitly scoped import must never write into other
// seasons, so stray rows are excluded before any insert and reported as
// skipped.
func ScopeToSeasons[T any](records []T, covered map[string]struct{}, seasonOf func(T) string) (inScope []T, dropped int) {
	inScope = make([]T, 0, len(records))
	for _, r := range records {
		if _, ok := covered[seasonOf(r)]; ok {
			inScope = append(inScope, r)
		} else {
			dropped++
		}
	}
	return inScope, dropped
}

// PlanSeasonReplace partitions existing records by whether their season
// is covered by the incoming batch. Covered seasons are fully superseded;
// uncovered seasons are kept untouched. This is a per season replace, not
// a field level upsert: the imported file is taken as the complete
// authoritative set for every season it mentions.
func PlanSeasonReplace[T any](existing []T, incoming []T, covered map[string]struct{}, seasonOf func(T) string) MergePlan[T] {
	plan := MergePlan[T]{Insert: incoming}
	for _, r := range existing {
		if _, ok := covered[seasonOf(r)]; ok {
			plan.Discard = append(plan.Discard, r)
		} else {
			plan.Keep = append(plan.Keep, r)
		}
	}
	return plan
}

type costKey struct {
	styleNumber string
	season      string
}

// PlanCostMerge applies the cost source priority rule on top of the
// season scoped replace. Importing landed_cost rows supersedes every
// existing cost row in the covered seasons. Importing standard_cost rows
// supersedes only existing standard_cost rows; retained landed_cost rows
// also veto any incoming standard_cost row for the same (style, season).
func PlanCostMerge(existing []models.CostRecord, incoming []models.CostRecord, covered map[string]struct{}, source models.CostSource) MergePlan[models.CostRecord] {
	var plan MergePlan[models.CostRecord]

	retainedLanded := make(map[costKey]struct{})
	for _, r := range existing {
		_, inScope := covered[r.Season]
		if !inScope {
			plan.Keep = append(plan.Keep, r)
			continue
		}
		if source == models.CostSourceLanded {
			plan.Discard = append(plan.Discard, r)
			continue
		}
		// standard_cost import: landed rows survive and block incoming
		if r.CostSource == models.CostSourceLanded {
			plan.Keep = append(plan.Keep, r)
			retainedLanded[costKey{r.StyleNumber, r.Season}] = struct{}{}
		} else {
			plan.Discard = append(plan.Discard, r)
		}
	}

	for _, r := range incoming {
		if _, blocked := retainedLanded[costKey{r.StyleNumber, r.Season}]; blocked {
			continue
		}
		plan.Insert = append(plan.Insert, r)
	}
	return plan
}

// FilterExistingKeys drops incoming records whose key already exists,
// used by append mode imports (replaceExisting=false). Returns the rows
// to insert and the count skipped.
func FilterExistingKeys[T any](existing []T, incoming []T, keyOf func(T) string) (toInsert []T, skipped int) {
	seen := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		seen[keyOf(r)] = struct{}{}
	}
	for _, r := range incoming {
		k := keyOf(r)
		if _, ok := seen[k]; ok {
			skipped++
			continue
		}
		seen[k] = struct{}{}
		toInsert = append(toInsert, r)
	}
	return toInsert, skipped
}
