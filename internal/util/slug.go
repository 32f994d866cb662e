// Package util holds small helpers shared by the use cases.
package util

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures expands lowercase letters that have no canonical decomposition into two ASCII letters.
var ligatures = strings.NewReplacer("ß", "ss", "æ", "ae", "œ", "oe", "þ", "th")

// foldLetter maps lowercase letters with no canonical decomposition onto their ASCII base.
func foldLetter(r rune) rune {
	switch r {
	case 'ø':
		return 'o'
	case 'đ', 'ð':
		return 'd'
	case 'ł':
		return 'l'
	case 'ı':
		return 'i'
	default:
		return r
	}
}

// Slugify turns a display name into a URL-safe identifier: diacritics are stripped,
// letters such as ß, ø or æ are transliterated, and every run of other characters
// collapses into a single '-'.
// Slugify(Slugify(s)) == Slugify(s).
func Slugify(name string) string {
	lowered := ligatures.Replace(strings.ToLower(name))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Map(foldLetter), norm.NFC)
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingDash := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)

			continue
		}
		pendingDash = true
	}

	return b.String()
}

// UniqueSlug returns base if it is not taken, otherwise the first free base-1, base-2, ...
func UniqueSlug(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}

	if _, ok := used[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}
