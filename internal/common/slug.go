package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	trademarks = strings.NewReplacer("™", "", "®", "", "©", "")
	parens     = strings.NewReplacer("(", "", ")", "")
)

// Slug turns a product or range name into a URL path segment:
// lowercase, trademark symbols and parentheses removed, whitespace runs
// replaced by a single hyphen, hyphen runs collapsed, no leading or trailing
// hyphen. Accented letters fold to their base letter and anything else
// outside [a-z0-9-] is dropped. Slug(Slug(s)) == Slug(s).
func Slug(s string) string {
	s = toLower(s)
	s = trademarks.Replace(s)
	s = parens.Replace(s)
	s = strings.Join(strings.Fields(s), "-")
	s = toLower(foldAccents(s))

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Casers carry state, so each call gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// GenerateCategoryURL returns the path of a product range page.
func GenerateCategoryURL(category string) string {
	return "/products/" + Slug(category)
}

// GenerateProductURL returns the path of a product page within its range.
func GenerateProductURL(category, product string) string {
	return GenerateCategoryURL(category) + "/" + Slug(product)
}
