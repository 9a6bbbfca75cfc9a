package interpres

import (
	"fmt"
	"strings"
)

// PartOfSpeech represents the grammatical category of an entry, stem,
// inflection or attachment. The empty value means "unspecified" and, on an
// attachment or modifier, admits any part of speech.
type PartOfSpeech string

const (
	POSNoun         PartOfSpeech = "noun"
	POSVerb         PartOfSpeech = "verb"
	POSParticiple   PartOfSpeech = "participle"
	POSAdjective    PartOfSpeech = "adjective"
	POSPreposition  PartOfSpeech = "preposition"
	POSPronoun      PartOfSpeech = "pronoun"
	POSInterjection PartOfSpeech = "interjection"
	POSNumeral      PartOfSpeech = "numeral"
	POSConjunction  PartOfSpeech = "conjunction"
	POSAdverb       PartOfSpeech = "adverb"
	POSNumber       PartOfSpeech = "number"
	POSSupine       PartOfSpeech = "supine"
	POSPackon       PartOfSpeech = "packon"
	POSTackon       PartOfSpeech = "tackon"
	POSPrefix       PartOfSpeech = "prefix"
	POSSuffix       PartOfSpeech = "suffix"
	POSUnknown      PartOfSpeech = ""
)

// posKeys maps every accepted spelling (full names and the dictionary
// abbreviations) to its PartOfSpeech.
var posKeys = map[string]PartOfSpeech{
	"noun": POSNoun, "n": POSNoun,
	"verb": POSVerb, "v": POSVerb,
	"participle": POSParticiple, "vpar": POSParticiple,
	"adjective": POSAdjective, "adj": POSAdjective,
	"preposition": POSPreposition, "prep": POSPreposition,
	"pronoun": POSPronoun, "pron": POSPronoun,
	"interjection": POSInterjection, "interj": POSInterjection,
	"numeral": POSNumeral, "num": POSNumeral,
	"conjunction": POSConjunction, "conj": POSConjunction,
	"adverb": POSAdverb, "adv": POSAdverb,
	"number": POSNumber,
	"supine": POSSupine,
	"packon": POSPackon, "pack": POSPackon,
	"tackon": POSTackon,
	"prefix": POSPrefix,
	"suffix": POSSuffix,
}

// ParsePOS converts a part-of-speech token into a PartOfSpeech.
// Matching is case-insensitive. An unrecognised token yields ErrInvalidPOS.
func ParsePOS(s string) (PartOfSpeech, error) {
	p, ok := posKeys[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return POSUnknown, fmt.Errorf("%w: %q", ErrInvalidPOS, s)
	}
	return p, nil
}

// ParsePOSList parses a comma-separated list of part-of-speech tokens.
func ParsePOSList(s string) ([]PartOfSpeech, error) {
	var out []PartOfSpeech
	for _, tok := range strings.Split(s, ",") {
		p, err := ParsePOS(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// parseDataPOS is the lenient variant used by the table loader: "x" and the
// empty field mean unspecified.
func parseDataPOS(s string) (PartOfSpeech, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "x":
		return POSUnknown, nil
	}
	return ParsePOS(s)
}

// String returns the display name, "unknown" for the empty value.
func (p PartOfSpeech) String() string {
	if p == POSUnknown {
		return "unknown"
	}
	return string(p)
}

// admitsStem reports whether an inflection of part of speech p may attach to
// a stem of part of speech s. Participles and supines are built on verb stems.
func (p PartOfSpeech) admitsStem(s PartOfSpeech) bool {
	if p == s {
		return true
	}
	return (p == POSParticiple || p == POSSupine) && s == POSVerb
}

// admits reports whether an attachment constrained to p accepts a residual
// entry of part of speech s.
func (p PartOfSpeech) admits(s PartOfSpeech) bool {
	return p == POSUnknown || p.admitsStem(s)
}
