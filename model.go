package interpres

import (
	"fmt"
	"strconv"
	"strings"
)

// Class identifies a declension or conjugation as a (which, variant) pair.
// A zero field on an inflection is a wildcard.
type Class struct {
	Which   int `json:"which"`
	Variant int `json:"variant"`
}

// parseClass parses "which,variant". The empty string is the zero Class.
func parseClass(s string) (Class, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Class{}, nil
	}
	which, variant, ok := strings.Cut(s, ",")
	if !ok {
		return Class{}, fmt.Errorf("class %q: want which,variant", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(which))
	if err != nil {
		return Class{}, fmt.Errorf("class %q: %w", s, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(variant))
	if err != nil {
		return Class{}, fmt.Errorf("class %q: %w", s, err)
	}
	return Class{Which: w, Variant: v}, nil
}

// admits reports whether an inflection of class c fits a stem of class s.
func (c Class) admits(s Class) bool {
	if c.Which != 0 && c.Which != s.Which {
		return false
	}
	return c.Variant == 0 || c.Variant == s.Variant
}

func (c Class) String() string {
	return fmt.Sprintf("%d %d", c.Which, c.Variant)
}

// WordInfo holds the dictionary flags of a Latin entry: age, area,
// geography, frequency and source, each a single letter code.
type WordInfo struct {
	Age    string `json:"age"`
	Area   string `json:"area"`
	Geo    string `json:"geo"`
	Freq   string `json:"freq"`
	Source string `json:"source"`
}

// parseWordInfo parses "age,area,geo,freq,source". Missing trailing fields
// default to "X" (unknown).
func parseWordInfo(s string) WordInfo {
	f := strings.Split(s, ",")
	get := func(i int) string {
		if i < len(f) && strings.TrimSpace(f[i]) != "" {
			return strings.TrimSpace(f[i])
		}
		return "X"
	}
	return WordInfo{Age: get(0), Area: get(1), Geo: get(2), Freq: get(3), Source: get(4)}
}

// LatinEntry is a Latin dictionary headword with its senses.
type LatinEntry struct {
	// ID links stems and English entries to this entry. Unique forms have ID 0.
	ID int `json:"id"`
	// Orth is the headword as printed in the dictionary.
	Orth string `json:"orth"`
	// Parts are the principal parts.
	Parts []string `json:"parts"`
	// Senses are the ordered glosses.
	Senses []string     `json:"senses"`
	POS    PartOfSpeech `json:"pos"`
	Class  Class        `json:"class"`
	// Form is the gender for nouns, the verb kind for verbs, or for a unique
	// form its full grammatical analysis.
	Form string   `json:"form"`
	Info WordInfo `json:"info"`
}

// EnglishEntry is an English headword linked to one Latin entry.
type EnglishEntry struct {
	Orth          string       `json:"orth"`
	POS           PartOfSpeech `json:"pos"`
	WID           int          `json:"wid"`
	FrequencyType int          `json:"frequency_type"`
	TrueFrequency int          `json:"true_frequency"`
	Frequency     int          `json:"frequency"`
	Compound      int          `json:"compound"`
	Semi          int          `json:"semi"`

	latin *LatinEntry
}

// Latin returns the Latin entry this headword translates to.
func (e *EnglishEntry) Latin() *LatinEntry {
	return e.latin
}

// Stem is a base fragment of a Latin entry. Key is the stem slot (1-4,
// principal-part based) that inflections refer to.
type Stem struct {
	WID   int          `json:"wid"`
	Orth  string       `json:"orth"`
	POS   PartOfSpeech `json:"pos"`
	Class Class        `json:"class"`
	Key   int          `json:"key"`

	entry *LatinEntry
}

// Entry returns the dictionary entry the stem belongs to.
func (s *Stem) Entry() *LatinEntry {
	return s.entry
}

// Inflection is a grammatical ending.
type Inflection struct {
	Ending string       `json:"ending"`
	POS    PartOfSpeech `json:"pos"`
	Class  Class        `json:"class"`
	// Key is the stem slot the ending attaches to.
	Key int `json:"key"`
	// Form is the recovered analysis, e.g. "GEN S C" or "PRES ACTIVE IND 3 S".
	Form string `json:"form"`
	Age  string `json:"age"`
	Freq string `json:"freq"`
	Note string `json:"note,omitempty"`
}

// attaches reports whether the ending may close stem s: same stem slot,
// compatible part of speech and class.
func (in *Inflection) attaches(s *Stem) bool {
	return in.Key == s.Key && in.POS.admitsStem(s.POS) && in.Class.admits(s.Class)
}

// Attachment is a packon, not-packon, tackon or tickon fragment.
type Attachment struct {
	Orth   string       `json:"orth"`
	POS    PartOfSpeech `json:"pos"`
	Senses []string     `json:"senses"`
}

// Modifier is a prefix or a derivational suffix together with the
// word-formation rule it applies.
type Modifier struct {
	Orth string `json:"orth"`
	// POS is the part of speech of the base the modifier attaches to.
	POS PartOfSpeech `json:"pos"`
	// Key restricts a suffix to one stem slot of its base; 0 means any.
	Key int `json:"key"`
	// Result and Class describe the derived word for suffixes.
	Result PartOfSpeech `json:"result,omitempty"`
	Class  Class        `json:"class"`
	Rule   string       `json:"rule"`
	Senses []string     `json:"senses"`
}

// splitSenses splits a ';'-separated gloss list, dropping empty items.
func splitSenses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
