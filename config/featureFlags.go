package config

import (
	"os"
	"strconv"
	"strings"
)

// StrictSeasonTokens rejects import rows whose season string could not be
// normalized to the canonical YY{FA|SP} form, instead of accepting the
// cleaned raw token. Degraded tokens pollute the season enumeration, so
// strict mode is recommended once source sheets are under control.
//
// Set via env:
// - STRICT_SEASON_TOKENS=true
func StrictSeasonTokens() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STRICT_SEASON_TOKENS")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// ImportBatchSize is the insert chunk size used inside a season-scoped
// import transaction. Clamped to [500, 5000].
//
// Set via env:
// - IMPORT_BATCH_SIZE=1000
func ImportBatchSize() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("IMPORT_BATCH_SIZE")))
	if err != nil || n == 0 {
		return 1000
	}
	if n < 500 {
		return 500
	}
	if n > 5000 {
		return 5000
	}
	return n
}
