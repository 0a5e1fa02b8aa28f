package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// seasonPatterns are tried in order; the first pattern whose match also
// decodes to a plausible season wins. Titles mix "2024/25", "24-25",
// bare years, 1990s seasons, and the compact "2425" form.
var seasonPatterns = []struct {
	re     *regexp.Regexp
	decode func(m []string) (string, bool)
}{
	{
		re: regexp.MustCompile(`\b(20)?(\d{2})[/-](20)?(\d{2})\b`),
		decode: func(m []string) (string, bool) {
			y1, _ := strconv.Atoi(m[2])
			y2, _ := strconv.Atoi(m[4])
			y1, y2 = 2000+y1, 2000+y2
			if y2-y1 > 1 || y1-y2 > 1 {
				return "", false
			}
			return fmt.Sprintf("%d-%02d", y1, y2%100), true
		},
	},
	{
		re: regexp.MustCompile(`\b(202[0-9])\b`),
		decode: func(m []string) (string, bool) {
			return m[1], true
		},
	},
	{
		re: regexp.MustCompile(`\b(19\d{2})[/-](\d{2,4})\b`),
		decode: func(m []string) (string, bool) {
			return joinYearPair(m[1], m[2])
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{2})[/-](\d{2})\b`),
		decode: func(m []string) (string, bool) {
			return joinYearPair(m[1], m[2])
		},
	},
	{
		// Compact "2425". The guards around the digits stand in for the
		// lookarounds RE2 does not support.
		re: regexp.MustCompile(`(^|[^0-9])(2[0-9])([0-9]{2})($|[^0-9])`),
		decode: func(m []string) (string, bool) {
			return joinYearPair(m[2], m[3])
		},
	},
}

// joinYearPair turns a (start, end) year pair into the canonical
// "YYYY-YY" form. Two-digit pairs are anchored in the 2000s and must be
// consecutive; four-digit starts accept a two- or four-digit end in
// the same or following year.
func joinYearPair(g0, g1 string) (string, bool) {
	if len(g0) == 2 && len(g1) == 2 {
		n0, _ := strconv.Atoi(g0)
		n1, _ := strconv.Atoi(g1)
		if 2000+n1 != 2000+n0+1 {
			return "", false
		}
		return fmt.Sprintf("%d-%s", 2000+n0, g1), true
	}

	y1, err := strconv.Atoi(g0)
	if err != nil {
		return "", false
	}
	var y2 int
	switch len(g1) {
	case 4:
		y2, _ = strconv.Atoi(g1)
	case 2:
		n, _ := strconv.Atoi(g1)
		if n < 50 {
			y2 = 2000 + n
		} else {
			y2 = 1900 + n
		}
	default:
		return "", false
	}
	if y2 < y1 || y2-y1 > 1 {
		return "", false
	}
	return fmt.Sprintf("%d-%02d", y1, y2%100), true
}

// ExtractSeason pulls the season out of a catalog title, or returns ""
// when no pattern matches.
func ExtractSeason(title string) string {
	for _, p := range seasonPatterns {
		m := p.re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		if season, ok := p.decode(m); ok {
			return season
		}
	}
	return ""
}

// typeKeywords map title words to a canonical jersey type. Order
// matters twice over: the first keyword found wins, and the
// single-character Chinese abbreviations sit after the long forms so
// 主场 is not consumed as 主.
var typeKeywords = []struct {
	word   string
	jersey string
}{
	{"home", "Home"},
	{"away", "Away"},
	{"third", "Third"},
	{"fourth", "Fourth"},
	{"alternate", "Third"},
	{"goalkeeper", "Goalkeeper"},
	{"keeper", "Goalkeeper"},
	{"gk", "Goalkeeper"},
	{"training", "Training"},
	{"pre-match", "Training"},
	{"special", "Special"},
	{"anniversary", "Special"},
	{"commemorative", "Special"},
	{"domicile", "Home"},
	{"extérieur", "Away"},
	{"exterieur", "Away"},
	{"troisième", "Third"},
	{"quatrième", "Fourth"},
	{"gardien", "Goalkeeper"},
	{"entrainement", "Training"},
	{"spécial", "Special"},
	{"主场", "Home"},
	{"客场", "Away"},
	{"第三套", "Third"},
	{"第三", "Third"},
	{"门将", "Goalkeeper"},
	{"守门员", "Goalkeeper"},
	{"训练", "Training"},
	{"特别版", "Special"},
	{"纪念", "Special"},
	{"周年", "Special"},
	{"主", "Home"},
	{"客", "Away"},
	{"local", "Home"},
	{"visitante", "Away"},
	{"alternativo", "Third"},
	{"portero", "Goalkeeper"},
	{"casa", "Home"},
	{"fora", "Away"},
}

// ExtractJerseyType classifies the title into a jersey type, defaulting
// to "Unknown".
func ExtractJerseyType(title string) string {
	lower := strings.ToLower(title)
	for _, kw := range typeKeywords {
		if strings.Contains(lower, kw.word) {
			return kw.jersey
		}
	}
	return "Unknown"
}

var longSleevePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\blong\s*sleeve\b`),
	regexp.MustCompile(`(?i)\bml\b`),
	regexp.MustCompile(`(?i)\bmanches?\s*longues?\b`),
	regexp.MustCompile(`(?i)\blong\b.*\bsleeve\b`),
	regexp.MustCompile(`长袖`),
}

// ExtractSleeve returns "long" when any long-sleeve marker appears,
// "short" otherwise.
func ExtractSleeve(title string) string {
	for _, re := range longSleevePatterns {
		if re.MatchString(title) {
			return "long"
		}
	}
	return "short"
}
