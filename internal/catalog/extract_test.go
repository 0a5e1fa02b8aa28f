package catalog

import "testing"

func TestExtractSeason(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"PSG Home Jersey 2024/25", "2024-25"},
		{"PSG Home Jersey 24-25", "2024-25"},
		{"2425 PSG", "2024-25"},
		{"Retro 06-07 AC Milan Maillot", "2006-07"},
		{"AC Milan 1998-99 Retro", "1998-99"},
		{"Arsenal 2024 Special Edition", "2024"},
		{"Barcelona 2023/2024 Third", "2023-24"},
		{"Olympique de Marseille Gardien", ""},
		{"Real Madrid 1955/56", "1955-56"},
	}
	for _, tc := range cases {
		if got := ExtractSeason(tc.title); got != tc.want {
			t.Fatalf("ExtractSeason(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestJoinYearPair(t *testing.T) {
	cases := []struct {
		g0, g1 string
		want   string
		ok     bool
	}{
		{"24", "25", "2024-25", true},
		{"24", "26", "", false},
		{"1998", "99", "1998-99", true},
		{"1998", "1999", "1998-99", true},
		{"1955", "56", "1955-56", true},
		{"2020", "2020", "2020-20", true},
	}
	for _, tc := range cases {
		got, ok := joinYearPair(tc.g0, tc.g1)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("joinYearPair(%q, %q) = (%q, %v), want (%q, %v)", tc.g0, tc.g1, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractJerseyType(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"PSG Home Jersey 24-25", "Home"},
		{"24-25 Maillot Extérieur Arsenal", "Away"},
		{"Barcelona Third Kit", "Third"},
		{"Chelsea Goalkeeper Shirt", "Goalkeeper"},
		{"皇马主场球衣", "Home"},
		{"拜仁客场", "Away"},
		{"国米第三套", "Third"},
		{"Milan Maglia Alternate", "Third"},
		{"Boca Juniors Visitante", "Away"},
		{"Arsenal Pre-Match Top 24-25", "Training"},
		{"Liverpool Anniversary Jersey", "Special"},
		{"AC Milan Commemorative Edition", "Special"},
		{"国米纪念球衣", "Special"},
		{"Juventus 24/25", "Unknown"},
	}
	for _, tc := range cases {
		if got := ExtractJerseyType(tc.title); got != tc.want {
			t.Fatalf("ExtractJerseyType(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestExtractJerseyTypeFirstKeywordWins(t *testing.T) {
	// "home" sits before "away" in the keyword table.
	if got := ExtractJerseyType("Arsenal Home and Away Bundle"); got != "Home" {
		t.Fatalf("got %q, want Home", got)
	}
}

func TestExtractSleeve(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"PSG Long Sleeve Home 24-25", "long"},
		{"PSG Home ML 24-25", "long"},
		{"Maillot Manches Longues OM", "long"},
		{"皇马长袖球衣", "long"},
		{"PSG Home 24-25", "short"},
		{"Small jersey", "short"},
	}
	for _, tc := range cases {
		if got := ExtractSleeve(tc.title); got != tc.want {
			t.Fatalf("ExtractSleeve(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
