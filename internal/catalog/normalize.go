package catalog

import "strings"

// diacriticFolder maps the accented Latin characters that show up in
// team names and catalog titles onto their bare forms. The table is
// fixed on purpose: folding is limited to characters that actually
// occur in the alias data, and applying it twice yields the same
// result.
var diacriticFolder = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a",
	"ó", "o", "ô", "o", "ö", "o", "ò", "o", "õ", "o",
	"ú", "u", "ü", "u", "ù", "u", "û", "u",
	"í", "i", "î", "i", "ï", "i",
	"ç", "c",
	"ñ", "n",
)

// Normalize lowercases, trims, and folds common Latin diacritics so
// aliases written with or without accents compare equal. CJK and other
// scripts pass through unchanged.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return diacriticFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Tokens splits normalized text on whitespace.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// isCJKDominant reports whether more than 30% of the runes fall in the
// CJK Unified Ideographs block. Used to keep CJK aliases out of the
// Latin search tags.
func isCJKDominant(s string) bool {
	if s == "" {
		return false
	}
	cjk, total := 0, 0
	for _, r := range s {
		total++
		if r >= 0x4E00 && r <= 0x9FFF {
			cjk++
		}
	}
	return cjk*10 > total*3
}
