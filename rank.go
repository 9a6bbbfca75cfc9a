package interpres

import (
	"cmp"
	"maps"
	"slices"
)

// RankPolicy weighs candidates. Frequency maps the dictionary frequency
// letter of an entry or inflection to a weight; Age maps the age letter of
// an inflection to a bonus or penalty.
//
// A Latin candidate scores
//
//	EntryWeight*Frequency[entry] + best(Frequency[infl] - top + Age[infl]) - TierPenalty*tier
//
// where top is the largest Frequency weight, so an inflection never lifts a
// candidate above the direct reading of the same entry. An English candidate
// scores EntryWeight*frequency(English headword) + Frequency[Latin entry]
// - TierPenalty*tier.
type RankPolicy struct {
	Frequency   map[string]int `yaml:"frequency" json:"frequency"`
	Age         map[string]int `yaml:"age" json:"age"`
	EntryWeight int            `yaml:"entry_weight" json:"entry_weight"`
	TierPenalty int            `yaml:"tier_penalty" json:"tier_penalty"`
}

// DefaultRankPolicy returns the weights used when none are configured.
func DefaultRankPolicy() RankPolicy {
	return RankPolicy{
		Frequency: map[string]int{
			"A": 6, "B": 5, "C": 4, "D": 3, "E": 2, "F": 1, "X": 3,
		},
		Age: map[string]int{
			"X": 0, "A": -3, "B": -1, "C": 0, "D": -1, "E": -2, "F": -2, "G": -3, "H": -3,
		},
		EntryWeight: 10,
		TierPenalty: 1,
	}
}

// Clone returns a deep copy of p.
func (p RankPolicy) Clone() RankPolicy {
	p.Frequency = maps.Clone(p.Frequency)
	p.Age = maps.Clone(p.Age)
	return p
}

func (p RankPolicy) freq(code string) int {
	if w, ok := p.Frequency[code]; ok {
		return w
	}
	return p.Frequency["X"]
}

func (p RankPolicy) top() int {
	top := 0
	for _, w := range p.Frequency {
		top = max(top, w)
	}
	return top
}

// Score returns the weight of c under p.
func (p RankPolicy) Score(c *Candidate) int {
	score := -p.TierPenalty * int(c.Tier)
	if c.English != nil {
		score += p.EntryWeight * c.English.Frequency
		if c.Entry != nil {
			score += p.freq(c.Entry.Info.Freq)
		}
		return score
	}
	if c.Entry != nil {
		score += p.EntryWeight * p.freq(c.Entry.Info.Freq)
	}
	if len(c.Analyses) > 0 {
		top := p.top()
		best := 0
		for i, in := range c.Analyses {
			w := p.freq(in.Freq) - top + p.Age[in.Age]
			if i == 0 || w > best {
				best = w
			}
		}
		score += best
	}
	return score
}

// Rank dedupes and scores cands. When sort is set the result is ordered by
// descending score, then tier, then path length; equal candidates keep
// their discovery order. The result is truncated to limit after ordering; a
// negative limit is treated as zero. cands is not modified.
func (p RankPolicy) Rank(cands []Candidate, limit int, sort bool) []Candidate {
	out := make([]Candidate, 0, len(cands))
	seen := make(map[groupKey]bool, len(cands))
	for _, c := range cands {
		k := keyOf(&c)
		if seen[k] {
			continue
		}
		seen[k] = true
		c.Score = p.Score(&c)
		out = append(out, c)
	}
	if sort {
		slices.SortStableFunc(out, func(a, b Candidate) int {
			return cmp.Or(
				cmp.Compare(b.Score, a.Score),
				cmp.Compare(a.Tier, b.Tier),
				cmp.Compare(len(a.Path), len(b.Path)),
			)
		})
	}
	limit = max(limit, 0)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
