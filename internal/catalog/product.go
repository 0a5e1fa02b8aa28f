package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Pricing is the unit price table in euros per product version.
type Pricing struct {
	Fan        int
	Player     int
	PlayerLong int
	Retro      int
	Kit        int
}

// DefaultPricing mirrors the shop's standing price list.
func DefaultPricing() Pricing {
	return Pricing{Fan: 25, Player: 30, PlayerLong: 35, Retro: 30, Kit: 25}
}

// Album is one scraped photo album from an upstream catalog.
type Album struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	CoverURL string   `json:"cover_url"`
	AlbumID  string   `json:"album_id"`
	Photos   []string `json:"photos"`
}

// Product is a fully enriched catalog entry.
type Product struct {
	ID              string   `json:"id"`
	Team            string   `json:"team"`
	TeamShort       string   `json:"team_short"`
	TeamKey         string   `json:"team_key"`
	TeamAliases     []string `json:"team_aliases,omitempty"`
	League          string   `json:"league"`
	Country         string   `json:"country"`
	Season          string   `json:"season"`
	Type            string   `json:"type"`
	Version         string   `json:"version"`
	Sleeve          string   `json:"sleeve"`
	Price           int      `json:"price"`
	Currency        string   `json:"currency"`
	Images          []string `json:"images"`
	Thumbnail       string   `json:"thumbnail"`
	SourceURL       string   `json:"source_url"`
	AlbumID         string   `json:"album_id"`
	CatalogID       string   `json:"catalog_id"`
	RawTitle        string   `json:"raw_title"`
	Tags            []string `json:"tags"`
	ConfidenceScore float64  `json:"confidence_score"`
	Matched         bool     `json:"matched"`
	CreatedAt       string   `json:"created_at"`
}

const maxProductImages = 10

// Builder turns scraped albums into products.
type Builder struct {
	db       *Database
	resolver *Resolver
	pricing  Pricing
	cutoff   int
	now      func() time.Time
}

// NewBuilder wires a builder over the team database. cutoff is the
// fuzzy resolution cutoff applied to titles (0-100).
func NewBuilder(db *Database, pricing Pricing, cutoff int) *Builder {
	return &Builder{
		db:       db,
		resolver: NewResolver(db),
		pricing:  pricing,
		cutoff:   cutoff,
		now:      time.Now,
	}
}

// Resolver exposes the builder's resolver for match reporting.
func (b *Builder) Resolver() *Resolver {
	return b.resolver
}

// Build assembles a product from one album. index disambiguates IDs
// across the whole build run.
func (b *Builder) Build(album Album, catalogID, version string, index int) Product {
	title := album.Title

	p := Product{
		Season:    ExtractSeason(title),
		Type:      ExtractJerseyType(title),
		Version:   version,
		Sleeve:    ExtractSleeve(title),
		Currency:  "EUR",
		SourceURL: album.URL,
		AlbumID:   album.AlbumID,
		CatalogID: catalogID,
		RawTitle:  title,
		CreatedAt: b.now().UTC().Format(time.RFC3339),
	}

	key := "unknown"
	p.Team = "Unknown"
	p.TeamShort = "Unknown"
	if m, ok := b.resolver.ResolveTitle(title, b.cutoff); ok {
		p.ConfidenceScore = m.Confidence
		if team, found := b.db.Get(m.Key); found {
			// Best guess is always recorded; the key binds only at or
			// above the match threshold.
			p.Team = team.Name
			p.TeamShort = team.Short
			p.TeamAliases = team.Aliases
			p.League = team.League
			p.Country = team.Country
			if m.Confidence >= MatchThreshold {
				p.TeamKey = m.Key
				p.Matched = true
				key = m.Key
			}
		}
	}

	p.Price = b.price(version, p.Sleeve)
	p.ID = buildID(version, key, p.Season, p.Type, index)
	p.Images = album.Photos
	if len(p.Images) > maxProductImages {
		p.Images = p.Images[:maxProductImages]
	}
	p.Thumbnail = album.CoverURL
	if p.Thumbnail == "" && len(p.Images) > 0 {
		p.Thumbnail = p.Images[0]
	}
	p.Tags = buildTags(p)
	return p
}

func (b *Builder) price(version, sleeve string) int {
	switch version {
	case "player":
		if sleeve == "long" {
			return b.pricing.PlayerLong
		}
		return b.pricing.Player
	case "retro":
		return b.pricing.Retro
	case "kit":
		return b.pricing.Kit
	default:
		return b.pricing.Fan
	}
}

var idKeyReplacer = strings.NewReplacer(" ", "_", "-", "_")

// buildID derives a stable human-scannable product ID, e.g.
// "fan_paris_saint_germain_202425_hom_0007".
func buildID(version, key, season, jerseyType string, index int) string {
	k := idKeyReplacer.Replace(key)
	if len(k) > 20 {
		k = k[:20]
	}
	s := strings.ReplaceAll(season, "-", "")
	t := strings.ToLower(jerseyType)
	if len(t) > 3 {
		t = t[:3]
	}
	return fmt.Sprintf("%s_%s_%s_%s_%04d", version, k, s, t, index)
}

var typeSynonyms = map[string]string{
	"Home":  "domicile",
	"Away":  "extérieur",
	"Third": "third",
}

var versionTagLabels = map[string]string{
	"fan":    "fan version",
	"player": "player version",
	"retro":  "rétro",
	"kit":    "kit complet",
}

var seasonSplitRe = regexp.MustCompile(`[/-]`)

// buildTags collects the lowercase search tags for a product: team
// names and Latin aliases, league, country, season and its year parts,
// jersey type with its French synonym, and the version label.
func buildTags(p Product) []string {
	set := make(map[string]struct{})
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if utf8.RuneCountInString(s) < 2 {
			return
		}
		set[s] = struct{}{}
	}

	add(p.TeamShort)
	for _, tok := range strings.Fields(p.Team) {
		add(tok)
	}
	for _, alias := range p.TeamAliases {
		if !isCJKDominant(alias) {
			add(alias)
		}
	}
	add(p.League)
	add(p.Country)
	if p.Season != "" {
		add(p.Season)
		for _, part := range seasonSplitRe.Split(p.Season, -1) {
			add(part)
		}
	}
	if p.Type != "" && p.Type != "Unknown" {
		add(p.Type)
		if syn, ok := typeSynonyms[p.Type]; ok {
			add(syn)
		}
	}
	if label, ok := versionTagLabels[p.Version]; ok {
		add(label)
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
