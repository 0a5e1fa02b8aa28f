package catalog

import (
	"strings"
	"testing"
	"time"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	db, _ := NewDatabase(BuiltinTeams())
	b := NewBuilder(db, DefaultPricing(), DefaultIngestCutoff)
	b.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestBuildMatchedProduct(t *testing.T) {
	b := newTestBuilder(t)
	album := Album{
		Title:    "24-25 PSG Home Player Long Sleeve",
		URL:      "https://example.com/album/42",
		CoverURL: "https://example.com/cover.jpg",
		AlbumID:  "42",
		Photos:   []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
	}

	p := b.Build(album, "player", "player", 7)

	if !p.Matched {
		t.Fatalf("product not matched: %+v", p)
	}
	if p.TeamKey != "paris saint-germain" {
		t.Fatalf("team key = %q", p.TeamKey)
	}
	if p.Team != "Paris Saint-Germain FC" || p.TeamShort != "PSG" {
		t.Fatalf("team = %q / %q", p.Team, p.TeamShort)
	}
	if p.Season != "2024-25" || p.Type != "Home" || p.Sleeve != "long" {
		t.Fatalf("season/type/sleeve = %q/%q/%q", p.Season, p.Type, p.Sleeve)
	}
	if p.Price != 35 {
		t.Fatalf("price = %d, want 35 for long-sleeve player version", p.Price)
	}
	if p.ID != "player_paris_saint_germain_202425_hom_0007" {
		t.Fatalf("id = %q", p.ID)
	}
	if p.Thumbnail != album.CoverURL {
		t.Fatalf("thumbnail = %q", p.Thumbnail)
	}
	if p.CreatedAt != "2026-08-01T12:00:00Z" {
		t.Fatalf("created_at = %q", p.CreatedAt)
	}
	if p.ConfidenceScore < MatchThreshold {
		t.Fatalf("confidence = %v", p.ConfidenceScore)
	}
}

func TestBuildUnmatchedProduct(t *testing.T) {
	b := newTestBuilder(t)
	p := b.Build(Album{Title: "Mystery Cup Final Edition"}, "fan", "fan", 3)

	if p.Matched {
		t.Fatalf("unexpected match: %+v", p)
	}
	if p.TeamKey != "" {
		t.Fatalf("team key = %q, want empty for unmatched", p.TeamKey)
	}
	if p.ID != "fan_unknown__unk_0003" {
		t.Fatalf("id = %q", p.ID)
	}
	if p.Price != 25 {
		t.Fatalf("price = %d", p.Price)
	}
}

func TestBuildMatchedInvariant(t *testing.T) {
	b := newTestBuilder(t)
	titles := []string{
		"24-25 PSG Home",
		"Arsenal Away 2024/25",
		"Mystery Cup Final Edition",
		"曼联主场球衣 24-25",
		"Barcleona Home 24-25",
	}
	for i, title := range titles {
		p := b.Build(Album{Title: title}, "fan", "fan", i)
		if p.Matched != (p.TeamKey != "") {
			t.Fatalf("%q: matched=%v but team_key=%q", title, p.Matched, p.TeamKey)
		}
		if p.Matched && p.ConfidenceScore < MatchThreshold {
			t.Fatalf("%q: matched with confidence %v", title, p.ConfidenceScore)
		}
	}
}

func TestBuildCapsImages(t *testing.T) {
	b := newTestBuilder(t)
	photos := make([]string, 14)
	for i := range photos {
		photos[i] = "https://example.com/p.jpg"
	}
	p := b.Build(Album{Title: "24-25 PSG Home", Photos: photos}, "fan", "fan", 0)
	if len(p.Images) != maxProductImages {
		t.Fatalf("images = %d, want %d", len(p.Images), maxProductImages)
	}
	if p.Thumbnail != photos[0] {
		t.Fatalf("thumbnail = %q, want first photo", p.Thumbnail)
	}
}

func TestPriceTable(t *testing.T) {
	b := newTestBuilder(t)
	cases := []struct {
		version string
		sleeve  string
		want    int
	}{
		{"fan", "short", 25},
		{"player", "short", 30},
		{"player", "long", 35},
		{"retro", "short", 30},
		{"retro", "long", 30},
		{"kit", "short", 25},
		{"other", "short", 25},
	}
	for _, tc := range cases {
		if got := b.price(tc.version, tc.sleeve); got != tc.want {
			t.Fatalf("price(%q, %q) = %d, want %d", tc.version, tc.sleeve, got, tc.want)
		}
	}
}

func TestBuildID(t *testing.T) {
	cases := []struct {
		version, key, season, jerseyType string
		index                            int
		want                             string
	}{
		{"fan", "paris saint-germain", "2024-25", "Home", 7, "fan_paris_saint_germain_202425_hom_0007"},
		{"retro", "ac milan", "2006-07", "Away", 12, "retro_ac_milan_200607_awa_0012"},
		{"fan", "borussia monchengladbach", "2024-25", "Third", 1, "fan_borussia_monchenglad_202425_thi_0001"},
		{"kit", "unknown", "", "Unknown", 0, "kit_unknown__unk_0000"},
	}
	for _, tc := range cases {
		got := buildID(tc.version, tc.key, tc.season, tc.jerseyType, tc.index)
		if got != tc.want {
			t.Fatalf("buildID(%q, %q) = %q, want %q", tc.version, tc.key, got, tc.want)
		}
	}
}

func TestBuildTags(t *testing.T) {
	b := newTestBuilder(t)
	p := b.Build(Album{Title: "24-25 PSG Home Player Long Sleeve"}, "player", "player", 0)

	want := []string{"psg", "paris", "ligue 1", "france", "2024-25", "2024", "25", "home", "domicile", "player version"}
	have := make(map[string]bool, len(p.Tags))
	for _, tag := range p.Tags {
		have[tag] = true
	}
	for _, w := range want {
		if !have[w] {
			t.Fatalf("tags missing %q: %v", w, p.Tags)
		}
	}
	for _, tag := range p.Tags {
		if strings.ContainsRune(tag, '巴') {
			t.Fatalf("CJK alias leaked into tags: %v", p.Tags)
		}
	}
}
