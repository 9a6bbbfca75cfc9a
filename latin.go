package interpres

// analyzeLatin runs the Latin tiers on an already folded key.
// Without tricks the first tier that yields a candidate ends the search;
// with tricks every tier runs and the results are concatenated in tier order.
func (s *Store) analyzeLatin(key string, tricks bool) []Candidate {
	if key == "" {
		return nil
	}
	var cl collector
	s.direct(key, &cl)
	if len(cl.out) == 0 || tricks {
		s.decompose(key, &cl)
	}
	if tricks {
		s.strip(key, &cl)
	}
	return cl.out
}

// base is the direct and inflection tiers run exhaustively. It is what
// every residual of an attachment goes through.
func (s *Store) base(key string) []Candidate {
	var cl collector
	s.direct(key, &cl)
	s.decompose(key, &cl)
	return cl.out
}

// direct looks key up among the dictionary headwords and the unique forms.
func (s *Store) direct(key string, cl *collector) {
	for _, e := range s.latinIdx.get(key) {
		cl.add(Candidate{Entry: e, Tier: TierDirect})
	}
	for _, e := range s.uniqueIdx.get(key) {
		cl.add(Candidate{Entry: e, Tier: TierDirect})
	}
}

// decompose splits key into stem + ending, longest ending first, and keeps
// every pair whose inflection attaches to the stem.
func (s *Store) decompose(key string, cl *collector) {
	runes := []rune(key)
	if len(runes) < s.minDecomposable() {
		return
	}
	for n := min(s.maxEnding, len(runes)-1); n >= 0; n-- {
		stem := string(runes[:len(runes)-n])
		ending := string(runes[len(runes)-n:])

		infls := s.inflIdx.get(ending)
		if len(infls) == 0 {
			continue
		}
		for _, st := range s.stemIdx.get(stem) {
			var ok []*Inflection
			for _, in := range infls {
				if in.attaches(st) {
					ok = append(ok, in)
				}
			}
			if len(ok) == 0 {
				continue
			}
			cl.add(Candidate{
				Entry:    st.entry,
				Tier:     TierInflection,
				Stem:     stem,
				Ending:   ending,
				Analyses: ok,
			})
		}
	}
}
