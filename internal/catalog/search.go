package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrUnknownTeam = errors.New("unknown team")
)

// SearchRequest carries the query and filters for one search call.
type SearchRequest struct {
	Query   string
	Team    string
	League  string
	Country string
	Season  string
	Type    string
	Version string
	Page    int
	PerPage int
}

// SearchResponse is a page of results.
type SearchResponse struct {
	Results    []Product `json:"results"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
	Query      string    `json:"query,omitempty"`
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Key   string `json:"key,omitempty"`
}

// TeamSummary reports a team together with its product count.
type TeamSummary struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Short    string `json:"short"`
	League   string `json:"league"`
	Country  string `json:"country"`
	Products int    `json:"products"`
}

// VersionOption is one selectable product version with its count.
type VersionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterOptions enumerates the filter values present in the catalog.
type FilterOptions struct {
	Versions  []VersionOption `json:"versions"`
	Leagues   []string        `json:"leagues"`
	Countries []string        `json:"countries"`
	Seasons   []string        `json:"seasons"`
	Types     []string        `json:"types"`
}

// Stats summarizes the loaded catalog.
type Stats struct {
	TotalProducts   int            `json:"total_products"`
	MatchedProducts int            `json:"matched_products"`
	MatchRate       float64        `json:"match_rate"`
	Teams           int            `json:"teams"`
	ByVersion       map[string]int `json:"by_version"`
	ByLeague        map[string]int `json:"by_league"`
}

const maxUnmatched = 200

const maxSuggestions = 10

// Index holds the product snapshot and serves searches over it. Load
// swaps the whole snapshot under the write lock; reads share the read
// lock.
type Index struct {
	db         *Database
	resolver   *Resolver
	cutoff     int
	perPage    int
	maxPerPage int

	mu        sync.RWMutex
	products  []Product
	byID      map[string]int
	teamCount map[string]int
	leagues   []string
	countries []string
	seasons   []string
	types     []string
	versions  map[string]int
	loaded    bool
}

// NewIndex builds an empty index. cutoff is the query-side fuzzy
// cutoff; perPage/maxPerPage control pagination defaults.
func NewIndex(db *Database, cutoff, perPage, maxPerPage int) *Index {
	return &Index{
		db:         db,
		resolver:   NewResolver(db),
		cutoff:     cutoff,
		perPage:    perPage,
		maxPerPage: maxPerPage,
		byID:       make(map[string]int),
	}
}

// Load replaces the product snapshot.
func (idx *Index) Load(products []Product) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.products = make([]Product, len(products))
	copy(idx.products, products)
	idx.byID = make(map[string]int, len(products))
	for i, p := range idx.products {
		idx.byID[p.ID] = i
	}
	idx.rebuildFacetsLocked()
	idx.loaded = true
}

// Loaded reports whether a snapshot has been installed.
func (idx *Index) Loaded() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.loaded
}

// Len returns the number of loaded products.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.products)
}

// Products returns a copy of the full snapshot.
func (idx *Index) Products() []Product {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]Product, len(idx.products))
	copy(out, idx.products)
	return out
}

// Product looks up a single product by ID.
func (idx *Index) Product(id string) (Product, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	i, ok := idx.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return idx.products[i], nil
}

// Unmatched returns products that did not resolve to a team, capped so
// the admin view stays reviewable.
func (idx *Index) Unmatched() []Product {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var out []Product
	for _, p := range idx.products {
		if p.Matched {
			continue
		}
		out = append(out, p)
		if len(out) == maxUnmatched {
			break
		}
	}
	return out
}

// Fix reassigns a product to the given team, marks it matched with
// full confidence, and rebuilds its tags.
func (idx *Index) Fix(id, teamKey string) (Product, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	i, ok := idx.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	team, ok := idx.db.Get(teamKey)
	if !ok {
		return Product{}, fmt.Errorf("%q: %w", teamKey, ErrUnknownTeam)
	}

	p := idx.products[i]
	p.TeamKey = team.Key
	p.Team = team.Name
	p.TeamShort = team.Short
	p.TeamAliases = team.Aliases
	p.League = team.League
	p.Country = team.Country
	p.ConfidenceScore = 1.0
	p.Matched = true
	p.Tags = buildTags(p)
	idx.products[i] = p
	idx.rebuildFacetsLocked()
	return p, nil
}

var canonicalTypes = map[string]string{
	"home":  "Home",
	"away":  "Away",
	"third": "Third",
}

func canonicalType(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if t, ok := canonicalTypes[lower]; ok {
		return t
	}
	if lower == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(lower)
	return strings.ToUpper(string(r)) + lower[size:]
}

// Search applies the hard filters, then ranks by the free-text query
// when one is present.
func (idx *Index) Search(req SearchRequest) SearchResponse {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := make([]Product, 0, len(idx.products))
	wantType := ""
	if req.Type != "" {
		wantType = canonicalType(req.Type)
	}
	for _, p := range idx.products {
		if req.Version != "" && p.Version != req.Version {
			continue
		}
		if req.Team != "" && p.TeamKey != req.Team {
			continue
		}
		if req.League != "" && !strings.Contains(strings.ToLower(p.League), strings.ToLower(req.League)) {
			continue
		}
		if req.Country != "" && !strings.Contains(strings.ToLower(p.Country), strings.ToLower(req.Country)) {
			continue
		}
		if req.Season != "" && !strings.Contains(p.Season, req.Season) {
			continue
		}
		if wantType != "" && p.Type != wantType {
			continue
		}
		results = append(results, p)
	}

	if q := strings.TrimSpace(req.Query); q != "" {
		parsed := ParseQuery(q)
		if parsed.Type != "" {
			results = filterProducts(results, func(p Product) bool { return p.Type == parsed.Type })
		}
		if parsed.Season != "" {
			results = filterProducts(results, func(p Product) bool { return strings.Contains(p.Season, parsed.Season) })
		}

		if m, ok := idx.resolveTeamQuery(parsed.Team); ok {
			results = filterProducts(results, func(p Product) bool { return p.TeamKey == m.Key })
			results = rankTeamResults(results)
		} else {
			results = rankTokenResults(results, q)
		}
	}

	return idx.paginateLocked(req, results)
}

func filterProducts(products []Product, keep func(Product) bool) []Product {
	out := products[:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (idx *Index) resolveTeamQuery(phrase string) (Match, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(phrase)) < 2 {
		return Match{}, false
	}
	return idx.resolver.Resolve(phrase, idx.cutoff)
}

func seasonBonus(season string) int {
	if len(season) < 4 {
		return 0
	}
	year, err := strconv.Atoi(season[:4])
	if err != nil {
		return 0
	}
	if year <= 2010 {
		return 0
	}
	return year - 2010
}

// rankTeamResults orders a resolved team's products by recency, boosted
// by each product's own match confidence.
func rankTeamResults(products []Product) []Product {
	scores := make([]int, len(products))
	for i, p := range products {
		scores[i] = 100 + int(p.ConfidenceScore*20) + seasonBonus(p.Season)
	}
	order := make([]int, len(products))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	out := make([]Product, len(products))
	for i, j := range order {
		out[i] = products[j]
	}
	return out
}

// rankTokenResults scores products against the query tokens when no
// team resolves: team-name hits dominate, then tag hits, then raw
// title hits. Zero-score products drop out.
func rankTokenResults(products []Product, query string) []Product {
	tokens := uniqueTokens(query)
	if len(tokens) == 0 {
		return products
	}

	type scored struct {
		p     Product
		score int
	}
	var kept []scored
	for _, p := range products {
		s := tokenScore(p, tokens)
		if s == 0 {
			continue
		}
		kept = append(kept, scored{p: p, score: s})
	}
	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].score > kept[b].score
	})
	out := make([]Product, len(kept))
	for i, k := range kept {
		out[i] = k.p
	}
	return out
}

func uniqueTokens(query string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Tokens(query) {
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// tokenScore compares folded tokens against folded fields so accented
// tags like "rétro" still match.
func tokenScore(p Product, tokens []string) int {
	teamName := Normalize(p.Team)
	rawTitle := Normalize(p.RawTitle)
	score := 0
	for _, tok := range tokens {
		if strings.Contains(teamName, tok) {
			score += 50
		}
		tagHit := 0
		for _, tag := range p.Tags {
			norm := Normalize(tag)
			if norm == tok {
				tagHit = 30
				break
			}
			if tagHit == 0 && strings.Contains(norm, tok) {
				tagHit = 15
			}
		}
		score += tagHit
		if strings.Contains(rawTitle, tok) {
			score += 10
		}
	}
	return score
}

func (idx *Index) paginateLocked(req SearchRequest, results []Product) SearchResponse {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = idx.perPage
	}
	if perPage > idx.maxPerPage {
		perPage = idx.maxPerPage
	}

	total := len(results)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return SearchResponse{
		Results:    results[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
		Query:      req.Query,
	}
}

// Suggest autocompletes team names, then leagues and countries. Teams
// come first; the whole list is capped.
func (idx *Index) Suggest(prefix string) []Suggestion {
	norm := Normalize(prefix)
	if norm == "" {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	seenTeams := make(map[string]struct{})
	var teams []Suggestion
	addTeam := func(key string) {
		if _, ok := seenTeams[key]; ok {
			return
		}
		team, found := idx.db.Get(key)
		if !found {
			return
		}
		seenTeams[key] = struct{}{}
		teams = append(teams, Suggestion{Label: team.Short, Kind: "team", Key: team.Key})
	}

	for _, e := range idx.db.ordered {
		if strings.HasPrefix(e.norm, norm) {
			addTeam(e.key)
		}
	}
	for _, p := range idx.products {
		if p.TeamKey == "" {
			continue
		}
		if strings.Contains(Normalize(p.TeamShort), norm) {
			addTeam(p.TeamKey)
		}
	}

	var rest []Suggestion
	for _, league := range idx.leagues {
		if strings.Contains(Normalize(league), norm) {
			rest = append(rest, Suggestion{Label: league, Kind: "league"})
		}
	}
	for _, country := range idx.countries {
		if strings.Contains(Normalize(country), norm) {
			rest = append(rest, Suggestion{Label: country, Kind: "country"})
		}
	}

	sort.SliceStable(teams, func(a, b int) bool { return teams[a].Label < teams[b].Label })
	sort.SliceStable(rest, func(a, b int) bool { return rest[a].Label < rest[b].Label })

	out := append(teams, rest...)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// Teams lists the teams present in the catalog with product counts,
// optionally narrowed by league or country, sorted by name.
func (idx *Index) Teams(league, country string) []TeamSummary {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]TeamSummary, 0, len(idx.teamCount))
	for key, count := range idx.teamCount {
		team, ok := idx.db.Get(key)
		if !ok {
			continue
		}
		if league != "" && !strings.Contains(strings.ToLower(team.League), strings.ToLower(league)) {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(team.Country), strings.ToLower(country)) {
			continue
		}
		out = append(out, TeamSummary{
			Key:      team.Key,
			Name:     team.Name,
			Short:    team.Short,
			League:   team.League,
			Country:  team.Country,
			Products: count,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// Filters returns the distinct filter values present in the snapshot.
func (idx *Index) Filters() FilterOptions {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	versions := make([]VersionOption, 0, len(idx.versions))
	for v, count := range idx.versions {
		versions = append(versions, VersionOption{Value: v, Label: VersionLabel(v), Count: count})
	}
	sort.Slice(versions, func(a, b int) bool { return versions[a].Value < versions[b].Value })

	return FilterOptions{
		Versions:  versions,
		Leagues:   append([]string(nil), idx.leagues...),
		Countries: append([]string(nil), idx.countries...),
		Seasons:   append([]string(nil), idx.seasons...),
		Types:     append([]string(nil), idx.types...),
	}
}

// Stats summarizes catalog size and match quality.
func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matched := 0
	byVersion := make(map[string]int)
	byLeague := make(map[string]int)
	for _, p := range idx.products {
		if p.Matched {
			matched++
		}
		byVersion[p.Version]++
		if p.League != "" {
			byLeague[p.League]++
		}
	}
	rate := 0.0
	if len(idx.products) > 0 {
		rate = float64(matched) / float64(len(idx.products))
	}
	return Stats{
		TotalProducts:   len(idx.products),
		MatchedProducts: matched,
		MatchRate:       rate,
		Teams:           len(idx.teamCount),
		ByVersion:       byVersion,
		ByLeague:        topLeagues(byLeague, 10),
	}
}

func topLeagues(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}
	type entry struct {
		league string
		count  int
	}
	entries := make([]entry, 0, len(counts))
	for league, count := range counts {
		entries = append(entries, entry{league, count})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].count != entries[b].count {
			return entries[a].count > entries[b].count
		}
		return entries[a].league < entries[b].league
	})
	out := make(map[string]int, n)
	for _, e := range entries[:n] {
		out[e.league] = e.count
	}
	return out
}

// VersionLabel returns the display label for a product version.
func VersionLabel(version string) string {
	switch version {
	case "fan":
		return "Fan Version"
	case "player":
		return "Player Version"
	case "retro":
		return "Rétro"
	case "kit":
		return "Kit Complet"
	default:
		return canonicalType(version)
	}
}

func (idx *Index) rebuildFacetsLocked() {
	idx.teamCount = make(map[string]int)
	idx.versions = make(map[string]int)
	leagues := make(map[string]struct{})
	countries := make(map[string]struct{})
	seasons := make(map[string]struct{})
	types := make(map[string]struct{})

	for _, p := range idx.products {
		if p.TeamKey != "" {
			idx.teamCount[p.TeamKey]++
		}
		idx.versions[p.Version]++
		if p.League != "" {
			leagues[p.League] = struct{}{}
		}
		if p.Country != "" {
			countries[p.Country] = struct{}{}
		}
		if p.Season != "" {
			seasons[p.Season] = struct{}{}
		}
		if p.Type != "" && p.Type != "Unknown" {
			types[p.Type] = struct{}{}
		}
	}

	idx.leagues = sortedKeys(leagues)
	idx.countries = sortedKeys(countries)
	idx.types = sortedKeys(types)

	// Newest season first in the filter list.
	idx.seasons = sortedKeys(seasons)
	sort.Sort(sort.Reverse(sort.StringSlice(idx.seasons)))
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParsedQuery is a free-text query split into structured hints plus the
// residual team phrase.
type ParsedQuery struct {
	Raw     string
	Team    string
	Type    string
	Version string
	Season  string
}

// queryKeywords are scanned in order over the lowered query; the last
// keyword present wins, so a later hint overrides an earlier one.
var queryKeywords = []struct {
	word    string
	jersey  string
	version string
}{
	{"home", "Home", ""},
	{"domicile", "Home", ""},
	{"主场", "Home", ""},
	{"away", "Away", ""},
	{"extérieur", "Away", ""},
	{"exterieur", "Away", ""},
	{"客场", "Away", ""},
	{"third", "Third", ""},
	{"troisième", "Third", ""},
	{"retro", "", "retro"},
	{"vintage", "", "retro"},
}

var genericQueryWords = []string{
	"maillot", "jersey", "shirt", "kit", "foot", "football", "soccer",
}

var querySeasonRe = regexp.MustCompile(`\b(20\d{2})[/-]?(\d{0,2})\b`)

// ParseQuery extracts type, version, and season hints from a free-text
// query and returns the residual phrase as the team candidate.
func ParseQuery(query string) ParsedQuery {
	parsed := ParsedQuery{Raw: query}
	lower := strings.ToLower(query)

	for _, kw := range queryKeywords {
		if strings.Contains(lower, kw.word) {
			if kw.jersey != "" {
				parsed.Type = kw.jersey
			}
			if kw.version != "" {
				parsed.Version = kw.version
			}
		}
	}

	if found := querySeasonRe.FindString(lower); found != "" {
		parsed.Season = strings.ReplaceAll(found, "/", "-")
	}

	phrase := lower
	for _, kw := range queryKeywords {
		phrase = strings.ReplaceAll(phrase, kw.word, " ")
	}
	for _, w := range genericQueryWords {
		phrase = strings.ReplaceAll(phrase, w, " ")
	}
	if parsed.Season != "" {
		phrase = strings.ReplaceAll(phrase, parsed.Season, " ")
	}
	parsed.Team = strings.Join(strings.Fields(phrase), " ")
	return parsed
}
