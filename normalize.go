package interpres

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// ligatureReplacer expands the ligatures the lexicon spells out.
var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", // æ → ae
	"œ", "oe", // œ → oe
)

// Sanitize normalises a raw token before lookup: compatibility
// decomposition, removal of combining marks (macrons, breves, accents),
// lower-casing, ligature expansion and trimming of surrounding punctuation
// and whitespace. Interior characters it does not recognise are kept.
// Sanitize(Sanitize(s)) == Sanitize(s) for every s.
func Sanitize(raw string) string {
	s := norm.NFKD.String(raw)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	s = strings.ToLower(b.String())
	s = ligatureReplacer.Replace(s)
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// deramiseReplacer folds the consonantal letter forms onto their vocalic
// counterparts, which the lexicon does not distinguish.
var deramiseReplacer = strings.NewReplacer(
	"J", "I",
	"j", "i",
	"V", "U",
	"v", "u",
)

// Deramise converts j→i and v→u (and their capitals).
func Deramise(s string) string {
	return deramiseReplacer.Replace(s)
}

// SanitizeLatin is Sanitize followed by Deramise. Every Latin key in the
// Store is folded the same way at load time.
func SanitizeLatin(raw string) string {
	return Deramise(Sanitize(raw))
}

// stemEnglish applies the Snowball English stemmer, returning s unchanged
// if the stemmer rejects it.
func stemEnglish(s string) string {
	stemmed, err := snowball.Stem(s, "english", true)
	if err != nil || stemmed == "" {
		return s
	}
	return stemmed
}
