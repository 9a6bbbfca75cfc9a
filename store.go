package interpres

import (
	"sync"
	"unicode/utf8"

	"github.com/cours-de-latin/interpres/data"
)

// Store holds every lexical table. A Store is built once by Load and never
// modified afterwards, so it is safe for concurrent use without locking.
// The slices returned by its accessors must be treated as read-only.
type Store struct {
	latin       []LatinEntry
	uniques     []LatinEntry
	english     []EnglishEntry
	stems       []Stem
	inflections []Inflection
	prefixes    []Modifier
	suffixes    []Modifier
	packons     []Attachment
	notPackons  []Attachment
	tackons     []Attachment
	tickons     []Attachment

	latinByID map[int]*LatinEntry

	latinIdx       *index[*LatinEntry]
	uniqueIdx      *index[*LatinEntry]
	stemIdx        *index[*Stem]
	inflIdx        *index[*Inflection]
	englishIdx     *index[*EnglishEntry]
	englishStemIdx *index[*EnglishEntry]
	notPackonIdx   *index[*Attachment]

	// Folded attachment keys, in table order.
	tackonKeys []affix[Attachment]
	packonKeys []affix[Attachment]
	tickonKeys []affix[Attachment]
	prefixKeys []affix[Modifier]
	suffixKeys []affix[Modifier]

	// maxEnding is the longest inflection ending in runes.
	maxEnding int
	// minStem is the shortest stem in runes.
	minStem int
}

// affix pairs an attachment or modifier with its folded lookup key.
type affix[T any] struct {
	key  string
	item *T
}

func affixes[T any](items []T, orth func(*T) string) []affix[T] {
	out := make([]affix[T], 0, len(items))
	for i := range items {
		if k := SanitizeLatin(orth(&items[i])); k != "" {
			out = append(out, affix[T]{key: k, item: &items[i]})
		}
	}
	return out
}

var defaultStore = sync.OnceValues(func() (*Store, error) {
	return Load(data.FS)
})

// Default returns the Store built from the embedded lexicon. The tables are
// parsed on the first call; concurrent first callers wait for that single
// load and every caller gets the same Store.
func Default() (*Store, error) {
	return defaultStore()
}

// MustDefault is like Default but panics if the embedded data is malformed.
func MustDefault() *Store {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// LatinEntries returns the Latin dictionary.
func (s *Store) LatinEntries() []LatinEntry { return s.latin }

// UniqueLatin returns the irregular forms listed with their own entry.
func (s *Store) UniqueLatin() []LatinEntry { return s.uniques }

// EnglishEntries returns the English dictionary.
func (s *Store) EnglishEntries() []EnglishEntry { return s.english }

// Stems returns the stem table.
func (s *Store) Stems() []Stem { return s.stems }

// Inflections returns the inflection table.
func (s *Store) Inflections() []Inflection { return s.inflections }

// Prefixes returns the prefix modifiers.
func (s *Store) Prefixes() []Modifier { return s.prefixes }

// Suffixes returns the derivational suffix modifiers.
func (s *Store) Suffixes() []Modifier { return s.suffixes }

// Packons returns the pronoun-only back attachments.
func (s *Store) Packons() []Attachment { return s.packons }

// NotPackons returns the words that merely look like an attached form.
func (s *Store) NotPackons() []Attachment { return s.notPackons }

// Tackons returns the enclitic back attachments.
func (s *Store) Tackons() []Attachment { return s.tackons }

// Tickons returns the pronoun-only front attachments.
func (s *Store) Tickons() []Attachment { return s.tickons }

// LatinByID returns the Latin entry with the given ID, or nil.
func (s *Store) LatinByID(id int) *LatinEntry {
	return s.latinByID[id]
}

// Suggest returns up to limit Latin headword keys beginning with the
// sanitized prefix.
func (s *Store) Suggest(prefix string, limit int) ([]string, error) {
	return s.latinIdx.withPrefix(SanitizeLatin(prefix), limit)
}

// Stats summarises table sizes.
type Stats struct {
	Latin       int `json:"latin"`
	UniqueLatin int `json:"unique_latin"`
	English     int `json:"english"`
	Stems       int `json:"stems"`
	Inflections int `json:"inflections"`
	Prefixes    int `json:"prefixes"`
	Suffixes    int `json:"suffixes"`
	Packons     int `json:"packons"`
	NotPackons  int `json:"not_packons"`
	Tackons     int `json:"tackons"`
	Tickons     int `json:"tickons"`
	// Distinct folded keys per index.
	Headwords int `json:"headwords"`
	StemKeys  int `json:"stem_keys"`
	Endings   int `json:"endings"`
}

// Stats returns the table sizes.
func (s *Store) Stats() Stats {
	return Stats{
		Latin:       len(s.latin),
		UniqueLatin: len(s.uniques),
		English:     len(s.english),
		Stems:       len(s.stems),
		Inflections: len(s.inflections),
		Prefixes:    len(s.prefixes),
		Suffixes:    len(s.suffixes),
		Packons:     len(s.packons),
		NotPackons:  len(s.notPackons),
		Tackons:     len(s.tackons),
		Tickons:     len(s.tickons),
		Headwords:   s.latinIdx.len(),
		StemKeys:    s.stemIdx.len(),
		Endings:     s.inflIdx.len(),
	}
}

// minDecomposable is the shortest word the inflection tier will split.
func (s *Store) minDecomposable() int {
	return max(2, s.minStem)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
