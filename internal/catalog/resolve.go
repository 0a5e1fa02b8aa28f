package catalog

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// containScore is assigned when an alias and the input contain one
	// another without being an exact alias hit.
	containScore = 0.95

	// MatchThreshold is the confidence below which a resolution does not
	// bind a product to a team.
	MatchThreshold = 0.75

	// DefaultIngestCutoff is the fuzzy score cutoff used when building
	// products from scraped titles.
	DefaultIngestCutoff = 75

	// DefaultQueryCutoff is the stricter cutoff used for user queries.
	DefaultQueryCutoff = 85
)

// Match is a resolved team reference.
type Match struct {
	Key        string
	Confidence float64
}

// Resolver resolves free text to teams in three stages: exact alias
// lookup, containment against the alias list, then fuzzy token-set
// scoring.
type Resolver struct {
	db *Database
}

func NewResolver(db *Database) *Resolver {
	return &Resolver{db: db}
}

// ResolveExact matches the normalized input against the alias index.
func (r *Resolver) ResolveExact(text string) (Match, bool) {
	norm := Normalize(text)
	if norm == "" {
		return Match{}, false
	}
	if key, ok := r.db.aliases[norm]; ok {
		return Match{Key: key, Confidence: 1.0}, true
	}
	return Match{}, false
}

// skipForContainment filters aliases too short to be trusted inside a
// longer string. Two-rune aliases stay eligible only when they contain
// a CJK ideograph (主, 客场 abbreviations carry real signal; "om" or
// "ol" inside a random word does not).
func skipForContainment(alias string) bool {
	n := utf8.RuneCountInString(alias)
	if n < 2 {
		return true
	}
	if n == 2 {
		for _, r := range alias {
			if r >= 0x4E00 {
				return false
			}
		}
		return true
	}
	return false
}

func (r *Resolver) resolveContains(norm string) (Match, bool) {
	for _, e := range r.db.ordered {
		if skipForContainment(e.norm) {
			continue
		}
		if strings.Contains(norm, e.norm) || strings.Contains(e.norm, norm) {
			return Match{Key: e.key, Confidence: containScore}, true
		}
	}
	return Match{}, false
}

// ResolveFuzzy scores the input against every alias with a token-set
// ratio and keeps the best match at or above cutoff (0-100). Inputs
// shorter than three runes are never fuzzy matched.
func (r *Resolver) ResolveFuzzy(text string, cutoff int) (Match, bool) {
	norm := Normalize(text)
	if utf8.RuneCountInString(norm) < 3 {
		return Match{}, false
	}

	bestScore := 0
	bestKey := ""
	for _, e := range r.db.ordered {
		score := fuzzy.TokenSetRatio(norm, e.norm)
		if score > bestScore {
			bestScore = score
			bestKey = e.key
		}
	}
	if bestScore < cutoff {
		return Match{}, false
	}
	return Match{Key: bestKey, Confidence: float64(bestScore) / 100}, true
}

// Resolve runs all three stages in order.
func (r *Resolver) Resolve(text string, cutoff int) (Match, bool) {
	if m, ok := r.ResolveExact(text); ok {
		return m, true
	}
	norm := Normalize(text)
	if norm == "" {
		return Match{}, false
	}
	if m, ok := r.resolveContains(norm); ok {
		return m, true
	}
	return r.ResolveFuzzy(text, cutoff)
}

// ResolveTitle resolves a full catalog title. The raw title is tried
// first; failing that, seasons, type words, and merchandising noise are
// stripped and the cleaned remainder retried; a final fuzzy pass over
// the raw title catches misspelled team names.
func (r *Resolver) ResolveTitle(title string, cutoff int) (Match, bool) {
	if m, ok := r.Resolve(title, cutoff); ok {
		return m, true
	}
	cleaned := stripTitleNoise(title)
	if cleaned != "" && cleaned != title {
		if m, ok := r.Resolve(cleaned, cutoff); ok {
			return m, true
		}
	}
	return r.ResolveFuzzy(title, cutoff)
}

var seasonStripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(20)?\d{2}[/-](20)?\d{2}\b`),
	regexp.MustCompile(`\b20\d{2}\b`),
	regexp.MustCompile(`\b\d{4}\b`),
}

var noiseWords = []string{
	"jersey", "shirt", "kit", "maillot", "version",
	"fan", "player", "retro", "long", "sleeve", "ml",
}

type wordStripper struct {
	re   *regexp.Regexp
	repl string
}

// newWordStripper builds a whole-word remover. \b in RE2 is ASCII-only,
// so non-ASCII words get explicit letter/digit guards on both sides.
func newWordStripper(word string) wordStripper {
	ascii := true
	for i := 0; i < len(word); i++ {
		if word[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return wordStripper{
			re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`),
		}
	}
	return wordStripper{
		re:   regexp.MustCompile(`(?i)(^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(word) + `($|[^\p{L}\p{N}_])`),
		repl: "$1$2",
	}
}

var noiseStrippers = buildNoiseStrippers()

func buildNoiseStrippers() []wordStripper {
	words := make([]string, 0, len(typeKeywords)+len(noiseWords))
	for _, kw := range typeKeywords {
		words = append(words, kw.word)
	}
	words = append(words, noiseWords...)

	// Longest first so "goalkeeper" is removed before "keeper" and
	// 第三套 before 第三.
	sort.Slice(words, func(i, j int) bool {
		li := utf8.RuneCountInString(words[i])
		lj := utf8.RuneCountInString(words[j])
		if li != lj {
			return li > lj
		}
		return words[i] < words[j]
	})

	strippers := make([]wordStripper, len(words))
	for i, w := range words {
		strippers[i] = newWordStripper(w)
	}
	return strippers
}

// stripTitleNoise removes seasons, jersey-type words, and merchandising
// vocabulary so the remainder is mostly the team name.
func stripTitleNoise(title string) string {
	cleaned := title
	for _, re := range seasonStripPatterns {
		cleaned = re.ReplaceAllString(cleaned, " ")
	}
	for _, ws := range noiseStrippers {
		cleaned = ws.re.ReplaceAllString(cleaned, ws.repl)
	}
	return strings.Join(strings.Fields(cleaned), " ")
}
