package models

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SeasonType tags the merchandise cycle stage carried by a season string.
type SeasonType string

const (
	SeasonTypeMain       SeasonType = "Main"
	SeasonTypeBulk       SeasonType = "Bulk"
	SeasonTypeProto      SeasonType = "Proto"
	SeasonTypeSMS        SeasonType = "SMS"
	SeasonTypeProduction SeasonType = "Production"
	SeasonTypeUnknown    SeasonType = "Unknown"
)

// SeasonForm reports how NormalizeSeason resolved the input.
type SeasonForm string

const (
	SeasonFormCanonical SeasonForm = "Canonical"
	SeasonFormDegraded  SeasonForm = "Degraded"
	SeasonFormEmpty     SeasonForm = "Empty"
)

type SeasonResult struct {
	Season     string     `json:"season"`
	SeasonType SeasonType `json:"seasonType"`
	RawSeason  string     `json:"rawSeason"`
	Form       SeasonForm `json:"form"`
}

func (r SeasonResult) IsCanonical() bool { return r.Form == SeasonFormCanonical }

// Keyword order matters: BULK before PROTO before SMS before PRODUCTION.
var seasonTypeKeywords = []struct {
	keyword string
	sType   SeasonType
	re      *regexp.Regexp
}{
	{"BULK", SeasonTypeBulk, regexp.MustCompile(`\bBULK\b`)},
	{"PROTO", SeasonTypeProto, regexp.MustCompile(`\bPROTO\b`)},
	{"SMS", SeasonTypeSMS, regexp.MustCompile(`\bSMS\b`)},
	{"PRODUCTION", SeasonTypeProduction, regexp.MustCompile(`\bPRODUCTION\b`)},
}

var (
	codeYearPattern      = regexp.MustCompile(`^(FA|SP)(\d{2})$`)
	shortCodeYearPattern = regexp.MustCompile(`^(F|S)(\d{2})$`)
	yearCodePattern      = regexp.MustCompile(`^(\d{2})(FA|SP)$`)
	yearShortCodePattern = regexp.MustCompile(`^(\d{2})(F|S)$`)
	nonAlphaNumeric      = regexp.MustCompile(`[^A-Z0-9]`)
	canonicalSeason      = regexp.MustCompile(`^\d{2}(FA|SP)$`)
	fallWord             = regexp.MustCompile(`\bFALL\b`)
	springWord           = regexp.MustCompile(`\bSPRING\b`)
)

func expandShortCode(code string) string {
	if code == "F" {
		return "FA"
	}
	return "SP"
}

// NormalizeSeason parses a free text season string ("SP26", "26FA-BULK",
// "Fall 26", "FA 26 Proto", "SP26/FA26") into a canonical YY{FA|SP} token plus the
// season type keyword it carried. Inputs that fit no known pattern come
// back cleaned but flagged Degraded so callers can keep or reject them.
func NormalizeSeason(raw string) SeasonResult {
	if strings.TrimSpace(raw) == "" {
		return SeasonResult{Season: "", SeasonType: SeasonTypeUnknown, RawSeason: "", Form: SeasonFormEmpty}
	}

	s := strings.ToUpper(strings.TrimSpace(raw))
	sType := SeasonTypeMain
	for _, kw := range seasonTypeKeywords {
		if kw.re.MatchString(s) {
			sType = kw.sType
			s = strings.TrimSpace(kw.re.ReplaceAllString(s, " "))
			break
		}
	}

	// Word forms ("Fall 26", "26 Spring") collapse to the two letter
	// codes so the positional patterns below can match them.
	s = fallWord.ReplaceAllString(s, "FA")
	s = springWord.ReplaceAllString(s, "SP")

	// Compound values like "SP26/FA26" resolve on the first segment only.
	if idx := strings.Index(s, "/"); idx >= 0 {
		s = s[:idx]
	}

	s = nonAlphaNumeric.ReplaceAllString(s, "")
	if s == "" {
		return SeasonResult{Season: "", SeasonType: SeasonTypeUnknown, RawSeason: raw, Form: SeasonFormEmpty}
	}

	if m := codeYearPattern.FindStringSubmatch(s); m != nil {
		return SeasonResult{Season: m[2] + m[1], SeasonType: sType, RawSeason: raw, Form: SeasonFormCanonical}
	}
	if m := shortCodeYearPattern.FindStringSubmatch(s); m != nil {
		return SeasonResult{Season: m[2] + expandShortCode(m[1]), SeasonType: sType, RawSeason: raw, Form: SeasonFormCanonical}
	}
	if m := yearCodePattern.FindStringSubmatch(s); m != nil {
		return SeasonResult{Season: m[1] + m[2], SeasonType: sType, RawSeason: raw, Form: SeasonFormCanonical}
	}
	if m := yearShortCodePattern.FindStringSubmatch(s); m != nil {
		return SeasonResult{Season: m[1] + expandShortCode(m[2]), SeasonType: sType, RawSeason: raw, Form: SeasonFormCanonical}
	}

	return SeasonResult{Season: s, SeasonType: sType, RawSeason: raw, Form: SeasonFormDegraded}
}

// IsCanonicalSeason reports whether token is already a YY{FA|SP} season.
func IsCanonicalSeason(token string) bool {
	return canonicalSeason.MatchString(token)
}

// seasonSortKey ranks canonical seasons chronologically, spring before
// fall within a year. Non canonical tokens sort after every canonical one.
func seasonSortKey(season string) int {
	if !IsCanonicalSeason(season) {
		return 1 << 20
	}
	year, _ := strconv.Atoi(season[:2])
	half := 0
	if strings.HasSuffix(season, "FA") {
		half = 1
	}
	return year*2 + half
}

// SortSeasons orders season tokens chronologically, year ascending with
// SP before FA. Degraded tokens trail in lexicographic order.
func SortSeasons(seasons []string) {
	sort.SliceStable(seasons, func(i, j int) bool {
		ki, kj := seasonSortKey(seasons[i]), seasonSortKey(seasons[j])
		if ki != kj {
			return ki < kj
		}
		return seasons[i] < seasons[j]
	})
}
