package interpres

import (
	"fmt"
	"slices"
	"strings"
)

// Tier records which stage of the analysis produced a candidate.
type Tier int

const (
	// TierDirect is an exact headword or unique-form match.
	TierDirect Tier = iota
	// TierInflection is a stem + ending decomposition, or in the English
	// direction a match on the stemmed headword.
	TierInflection
	// TierTricks is a match found after stripping attachments.
	TierTricks
)

// MarshalText encodes t by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (t *Tier) UnmarshalText(b []byte) error {
	for _, v := range []Tier{TierDirect, TierInflection, TierTricks} {
		if v.String() == string(b) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", b)
}

func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierInflection:
		return "inflection"
	case TierTricks:
		return "tricks"
	}
	return "unknown"
}

// StepKind names the attachment stripped by one step of a decomposition.
type StepKind string

const (
	StepTackon StepKind = "tackon"
	StepPackon StepKind = "packon"
	StepTickon StepKind = "tickon"
	StepPrefix StepKind = "prefix"
	StepSuffix StepKind = "suffix"
)

// Step is one attachment removed from the surface form.
type Step struct {
	Kind     StepKind `json:"kind"`
	Fragment string   `json:"fragment"`
	Senses   []string `json:"senses,omitempty"`
}

// Candidate is one interpretation of an input word. Entry is always a real
// Store entry; English is set only for English-to-Latin lookups.
type Candidate struct {
	Entry   *LatinEntry   `json:"entry"`
	English *EnglishEntry `json:"english,omitempty"`
	Tier    Tier          `json:"tier"`
	// Stem and Ending are the folded fragments of an inflected match.
	Stem   string `json:"stem,omitempty"`
	Ending string `json:"ending,omitempty"`
	// Analyses lists every inflection that validates Stem + Ending.
	Analyses []*Inflection `json:"analyses,omitempty"`
	// Path lists the stripped attachments, outermost first.
	Path  []Step `json:"path,omitempty"`
	Score int    `json:"score"`
}

// cloneCandidates copies cands together with their Analyses and Path
// slices. Step senses and the pointed-to entries are shared.
func cloneCandidates(cands []Candidate) []Candidate {
	if cands == nil {
		return nil
	}
	out := make([]Candidate, len(cands))
	for i, c := range cands {
		c.Analyses = slices.Clone(c.Analyses)
		c.Path = slices.Clone(c.Path)
		out[i] = c
	}
	return out
}

// pathKey flattens a decomposition path into a comparable string.
func pathKey(path []Step) string {
	if len(path) == 0 {
		return ""
	}
	parts := make([]string, len(path))
	for i, st := range path {
		parts[i] = string(st.Kind) + ":" + st.Fragment
	}
	return strings.Join(parts, "/")
}

// groupKey identifies a distinct reading: the same entry reached through the
// same fragments collapses into one candidate.
type groupKey struct {
	entry   *LatinEntry
	english *EnglishEntry
	stem    string
	ending  string
	path    string
}

func keyOf(c *Candidate) groupKey {
	return groupKey{
		entry:   c.Entry,
		english: c.English,
		stem:    c.Stem,
		ending:  c.Ending,
		path:    pathKey(c.Path),
	}
}

// collector accumulates candidates in discovery order, merging the analyses
// of candidates that share a groupKey.
type collector struct {
	out  []Candidate
	seen map[groupKey]int
}

func (cl *collector) add(c Candidate) {
	if cl.seen == nil {
		cl.seen = make(map[groupKey]int)
	}
	k := keyOf(&c)
	i, ok := cl.seen[k]
	if !ok {
		cl.seen[k] = len(cl.out)
		c.Analyses = append([]*Inflection(nil), c.Analyses...)
		cl.out = append(cl.out, c)
		return
	}
	for _, in := range c.Analyses {
		if !slices.Contains(cl.out[i].Analyses, in) {
			cl.out[i].Analyses = append(cl.out[i].Analyses, in)
		}
	}
}
