// Package interpres translates single words between Latin and English.
//
// Latin words are matched against the dictionary headwords, then split into
// stem + inflection, and in "tricks" mode stripped of enclitics, indefinite
// pronoun particles, prefixes and derivational suffixes until a known base
// is found. English words are looked up among the English headwords and
// resolved to their Latin entries. Candidates are scored by a RankPolicy and
// truncated after ranking.
package interpres

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Options configures a Translator.
type Options struct {
	Policy RankPolicy
	// CacheSize bounds the cache of Latin analyses; 0 disables it.
	CacheSize int
}

// DefaultOptions returns the default ranking policy and a 4096-entry cache.
func DefaultOptions() Options {
	return Options{Policy: DefaultRankPolicy(), CacheSize: 4096}
}

type cacheKey struct {
	word   string
	tricks bool
}

// Translator runs translations against one Store. It holds no per-call
// state and is safe for concurrent use.
type Translator struct {
	store  *Store
	policy RankPolicy
	cache  *lru.Cache[cacheKey, []Candidate]
}

// New returns a Translator reading from store.
func New(store *Store, opts Options) (*Translator, error) {
	t := &Translator{store: store, policy: opts.Policy.Clone()}
	if opts.CacheSize > 0 {
		cache, err := lru.New[cacheKey, []Candidate](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		t.cache = cache
	}
	return t, nil
}

// Store returns the store t reads from.
func (t *Translator) Store() *Store { return t.store }

// Policy returns a copy of the ranking policy.
func (t *Translator) Policy() RankPolicy { return t.policy.Clone() }

// AnalyzeLatin returns the unranked candidates for one Latin word. An
// unknown word yields an empty slice.
func (t *Translator) AnalyzeLatin(word string, tricks bool) []Candidate {
	key := SanitizeLatin(word)
	if key == "" {
		return nil
	}
	if t.cache == nil {
		return t.store.analyzeLatin(key, tricks)
	}
	ck := cacheKey{word: key, tricks: tricks}
	if cands, ok := t.cache.Get(ck); ok {
		return cloneCandidates(cands)
	}
	cands := t.store.analyzeLatin(key, tricks)
	t.cache.Add(ck, cloneCandidates(cands))
	return cands
}

// AnalyzeEnglish returns the ranked Latin candidates for one English word.
func (t *Translator) AnalyzeEnglish(word string, limit int, sort bool) []Candidate {
	return t.policy.Rank(t.store.englishCandidates(word), limit, sort)
}

// Rank scores, orders and truncates cands with the translator's policy.
func (t *Translator) Rank(cands []Candidate, limit int, sort bool) []Candidate {
	return t.policy.Rank(cands, limit, sort)
}

// LatinToEnglish translates every whitespace-separated token of text.
// The result has one Translation per token, in input order.
func (t *Translator) LatinToEnglish(text string, limit int, tricks, sort bool) []Translation {
	words := strings.Fields(text)
	out := make([]Translation, 0, len(words))
	for _, w := range words {
		ranked := t.Rank(t.AnalyzeLatin(w, tricks), limit, sort)
		out = append(out, Assemble(w, FromLatin, ranked))
	}
	return out
}

// EnglishToLatin translates every whitespace-separated token of text.
func (t *Translator) EnglishToLatin(text string, limit int, sort bool) []Translation {
	words := strings.Fields(text)
	out := make([]Translation, 0, len(words))
	for _, w := range words {
		out = append(out, Assemble(w, FromEnglish, t.AnalyzeEnglish(w, limit, sort)))
	}
	return out
}
