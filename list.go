package interpres

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WordType selects the table a list query reads.
type WordType string

const (
	WordEnglish     WordType = "english"
	WordLatin       WordType = "latin"
	WordInflections WordType = "inflections"
	WordStems       WordType = "stems"
	WordPrefixes    WordType = "prefixes"
	WordSuffixes    WordType = "suffixes"
	WordPackons     WordType = "packons"
	WordNotPackons  WordType = "not_packons"
	WordTackons     WordType = "tackons"
	WordTickons     WordType = "tickons"
	WordUniqueLatin WordType = "unique_latin"
)

var wordTypeKeys = map[string]WordType{
	"english": WordEnglish, "english_word": WordEnglish, "english_words": WordEnglish,
	"latin": WordLatin, "latin_word": WordLatin, "latin_words": WordLatin,
	"inflection": WordInflections, "inflections": WordInflections,
	"stem": WordStems, "stems": WordStems,
	"prefix": WordPrefixes, "prefixes": WordPrefixes,
	"suffix": WordSuffixes, "suffixes": WordSuffixes,
	"packon": WordPackons, "packons": WordPackons,
	"not_packon": WordNotPackons, "not_packons": WordNotPackons,
	"tackon": WordTackons, "tackons": WordTackons,
	"tickon": WordTickons, "tickons": WordTickons,
	"unique_latin": WordUniqueLatin, "unique_latin_word": WordUniqueLatin,
	"unique_latin_words": WordUniqueLatin, "unique": WordUniqueLatin, "uniques": WordUniqueLatin,
}

// ParseWordType accepts the plural names and their singular aliases,
// case-insensitively. "-" and "_" are interchangeable.
func ParseWordType(s string) (WordType, error) {
	k := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if t, ok := wordTypeKeys[k]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidWordType, s)
}

// ListQuery filters one table. Zero Min, Max, Exact and Amount mean no
// bound. POS is ignored for the attachment tables, which carry a constraint
// rather than a part of speech of their own.
type ListQuery struct {
	Type   WordType
	POS    []PartOfSpeech
	Min    int
	Max    int
	Exact  int
	Amount int
	// Random shuffles the filtered rows before Amount is applied.
	Random bool
	// Rand is the shuffle source; nil uses the global generator.
	Rand *rand.Rand
}

// ListResult is the tagged result of a list query. Its concrete type is
// always List[T] for the row type of the queried table.
type ListResult interface {
	Type() WordType
	Len() int
	listResult()
}

// List is a typed list of table rows.
type List[T any] struct {
	Kind  WordType
	Items []T
}

func (l List[T]) Type() WordType { return l.Kind }
func (l List[T]) Len() int       { return len(l.Items) }
func (List[T]) listResult()      {}

// MarshalJSON encodes the list as {"type": ..., "items": [...]}.
func (l List[T]) MarshalJSON() ([]byte, error) {
	items := l.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(struct {
		Type  WordType `json:"type"`
		Items []T      `json:"items"`
	}{l.Kind, items})
}

// List runs q against the store. The returned rows are copies.
func (s *Store) List(q ListQuery) (ListResult, error) {
	latinPOS := func(e *LatinEntry) PartOfSpeech { return e.POS }
	latinLen := func(e *LatinEntry) int { return runeLen(e.Orth) }
	attachLen := func(a *Attachment) int { return runeLen(a.Orth) }
	modPOS := func(m *Modifier) PartOfSpeech { return m.POS }
	modLen := func(m *Modifier) int { return runeLen(m.Orth) }

	switch q.Type {
	case WordEnglish:
		return selectRows(q, s.english,
			func(e *EnglishEntry) int { return runeLen(e.Orth) },
			func(e *EnglishEntry) PartOfSpeech { return e.POS }), nil
	case WordLatin:
		return selectRows(q, s.latin, latinLen, latinPOS), nil
	case WordUniqueLatin:
		return selectRows(q, s.uniques, latinLen, latinPOS), nil
	case WordInflections:
		return selectRows(q, s.inflections,
			func(in *Inflection) int { return runeLen(in.Ending) },
			func(in *Inflection) PartOfSpeech { return in.POS }), nil
	case WordStems:
		return selectRows(q, s.stems,
			func(st *Stem) int { return runeLen(st.Orth) },
			func(st *Stem) PartOfSpeech { return st.POS }), nil
	case WordPrefixes:
		return selectRows(q, s.prefixes, modLen, modPOS), nil
	case WordSuffixes:
		return selectRows(q, s.suffixes, modLen, modPOS), nil
	case WordPackons:
		return selectRows(q, s.packons, attachLen, nil), nil
	case WordNotPackons:
		return selectRows(q, s.notPackons, attachLen, nil), nil
	case WordTackons:
		return selectRows(q, s.tackons, attachLen, nil), nil
	case WordTickons:
		return selectRows(q, s.tickons, attachLen, nil), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidWordType, q.Type)
}

func selectRows[T any](q ListQuery, rows []T, length func(*T) int, pos func(*T) PartOfSpeech) List[T] {
	var out []T
	for i := range rows {
		r := &rows[i]
		n := length(r)
		if q.Exact > 0 && n != q.Exact {
			continue
		}
		if q.Min > 0 && n < q.Min {
			continue
		}
		if q.Max > 0 && n > q.Max {
			continue
		}
		if pos != nil && len(q.POS) > 0 && !slices.Contains(q.POS, pos(r)) {
			continue
		}
		out = append(out, *r)
	}
	if q.Random {
		shuffle := rand.Shuffle
		if q.Rand != nil {
			shuffle = q.Rand.Shuffle
		}
		shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	if q.Amount > 0 && len(out) > q.Amount {
		out = out[:q.Amount]
	}
	return List[T]{Kind: q.Type, Items: out}
}

// WriteList writes r to w as indented JSON.
func WriteList(w io.Writer, r ListResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ExportList writes r as indented JSON to path, appending ".json" when the
// name lacks it and creating missing parent directories. An existing file
// is replaced only when overwrite is set; otherwise ErrFileExists is
// returned. The final path is returned.
func ExportList(path string, r ListResult, overwrite bool) (string, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return path, fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return path, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return path, err
	}
	if err := os.WriteFile(path, append(buf, '\n'), 0o644); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
