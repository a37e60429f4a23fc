package models

import "testing"

func TestNormalizeSeasonCanonicalForms(t *testing.T) {
	cases := []struct {
		raw        string
		wantSeason string
		wantType   SeasonType
	}{
		{"SP26", "26SP", SeasonTypeMain},
		{"FA26", "26FA", SeasonTypeMain},
		{"fa26", "26FA", SeasonTypeMain},
		{"26FA", "26FA", SeasonTypeMain},
		{"26SP", "26SP", SeasonTypeMain},
		{"F26", "26FA", SeasonTypeMain},
		{"S27", "27SP", SeasonTypeMain},
		{"26F", "26FA", SeasonTypeMain},
		{"27S", "27SP", SeasonTypeMain},
		{"Fall 26", "26FA", SeasonTypeMain},
		{"Spring 27", "27SP", SeasonTypeMain},
		{"26 Fall", "26FA", SeasonTypeMain},
		{"Fall 26 Bulk", "26FA", SeasonTypeBulk},
		{"26FA-BULK", "26FA", SeasonTypeBulk},
		{"FA 26 Proto", "26FA", SeasonTypeProto},
		{"SP27 SMS", "27SP", SeasonTypeSMS},
		{"27SP PRODUCTION", "27SP", SeasonTypeProduction},
	}
	for _, tc := range cases {
		got := NormalizeSeason(tc.raw)
		if got.Season != tc.wantSeason {
			t.Errorf("NormalizeSeason(%q).Season = %q, want %q", tc.raw, got.Season, tc.wantSeason)
		}
		if got.SeasonType != tc.wantType {
			t.Errorf("NormalizeSeason(%q).SeasonType = %q, want %q", tc.raw, got.SeasonType, tc.wantType)
		}
		if got.Form != SeasonFormCanonical {
			t.Errorf("NormalizeSeason(%q).Form = %q, want Canonical", tc.raw, got.Form)
		}
		if got.RawSeason != tc.raw {
			t.Errorf("NormalizeSeason(%q).RawSeason = %q", tc.raw, got.RawSeason)
		}
	}
}

func TestNormalizeSeasonEmpty(t *testing.T) {
	got := NormalizeSeason("")
	if got.Season != "" || got.SeasonType != SeasonTypeUnknown || got.RawSeason != "" {
		t.Fatalf("NormalizeSeason(\"\") = %+v", got)
	}
	if got.Form != SeasonFormEmpty {
		t.Fatalf("NormalizeSeason(\"\").Form = %q, want Empty", got.Form)
	}
}

func TestNormalizeSeasonCompound(t *testing.T) {
	got := NormalizeSeason("SP26/FA26")
	if got.Season != "26SP" {
		t.Fatalf("compound season resolved to %q, want 26SP", got.Season)
	}
	if got.SeasonType != SeasonTypeMain {
		t.Fatalf("compound season type = %q, want Main", got.SeasonType)
	}
}

func TestNormalizeSeasonRoundTrip(t *testing.T) {
	for _, token := range []string{"27FA", "26SP", "31FA"} {
		got := NormalizeSeason(token)
		if got.Season != token {
			t.Errorf("NormalizeSeason(%q).Season = %q, want round trip", token, got.Season)
		}
	}
}

func TestNormalizeSeasonDegraded(t *testing.T) {
	got := NormalizeSeason("Holiday 2026")
	if got.Form != SeasonFormDegraded {
		t.Fatalf("Form = %q, want Degraded", got.Form)
	}
	if got.Season == "" {
		t.Fatal("degraded result should keep the cleaned token")
	}
	if got.IsCanonical() {
		t.Fatal("degraded result must not report canonical")
	}
}

func TestSortSeasons(t *testing.T) {
	seasons := []string{"27FA", "26FA", "HOLIDAY", "27SP", "26SP"}
	SortSeasons(seasons)
	want := []string{"26SP", "26FA", "27SP", "27FA", "HOLIDAY"}
	for i := range want {
		if seasons[i] != want[i] {
			t.Fatalf("SortSeasons = %v, want %v", seasons, want)
		}
	}
}

func TestIsCanonicalSeason(t *testing.T) {
	if !IsCanonicalSeason("26FA") || !IsCanonicalSeason("99SP") {
		t.Fatal("canonical tokens rejected")
	}
	for _, bad := range []string{"FA26", "26fa", "26XX", "", "126FA"} {
		if IsCanonicalSeason(bad) {
			t.Errorf("IsCanonicalSeason(%q) = true", bad)
		}
	}
}
