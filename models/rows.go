package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

// RowRecord is one spreadsheet row keyed by column name. Parsers consume
// these without caring whether the sheet came from excelize or a JSON
// payload on the import endpoint.
type RowRecord map[string]interface{}

// pickString returns the first non empty value among the alias columns.
// Source sheets disagree on header spelling, so every field lookup goes
// through an alias list.
func (r RowRecord) pickString(aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := r.lookup(alias); ok {
			if s := utils.CoerceString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func (r RowRecord) pickMoney(aliases ...string) decimal.Decimal {
	for _, alias := range aliases {
		if v, ok := r.lookup(alias); ok {
			if s := utils.CoerceString(v); s != "" {
				return utils.CoerceMoney(v)
			}
		}
	}
	return decimal.Zero
}

func (r RowRecord) pickFlag(aliases ...string) bool {
	for _, alias := range aliases {
		if v, ok := r.lookup(alias); ok {
			if utils.CoerceFlag(v) {
				return true
			}
		}
	}
	return false
}

// lookup matches a column name case insensitively and ignores stray
// whitespace in headers.
func (r RowRecord) lookup(alias string) (interface{}, bool) {
	if v, ok := r[alias]; ok {
		return v, true
	}
	want := normalizeHeader(alias)
	for k, v := range r {
		if normalizeHeader(k) == want {
			return v, true
		}
	}
	return nil, false
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}
