package interpres

import "strings"

// strip is the attachment tier. It removes one back attachment (tackon or
// packon), one front attachment (tickon or prefix), a back attachment
// followed by a front one, or a derivational suffix, and re-analyses the
// residual through the base tiers. A residual reading is kept only when the
// attachment's part-of-speech constraint admits the residual entry.
func (s *Store) strip(word string, cl *collector) {
	if !s.notPackonIdx.contains(word) {
		for _, a := range s.tackonKeys {
			s.stripBack(word, a, StepTackon, cl)
		}
		for _, a := range s.packonKeys {
			s.stripBack(word, a, StepPackon, cl)
		}
	}
	s.stripFront(word, nil, POSUnknown, cl)
	s.derive(word, nil, POSUnknown, cl)
}

func (s *Store) stripBack(word string, a affix[Attachment], kind StepKind, cl *collector) {
	residual, ok := strings.CutSuffix(word, a.key)
	if !ok || residual == "" {
		return
	}
	step := Step{Kind: kind, Fragment: a.key, Senses: a.item.Senses}
	s.accept(residual, POSUnknown, a.item.POS, []Step{step}, cl)
	s.stripFront(residual, []Step{step}, a.item.POS, cl)
	s.derive(residual, []Step{step}, a.item.POS, cl)
}

// stripFront removes a tickon or a prefix from word. outer holds the steps
// already applied to reach word and outerPOS the constraint they impose.
func (s *Store) stripFront(word string, outer []Step, outerPOS PartOfSpeech, cl *collector) {
	for _, a := range s.tickonKeys {
		if residual, ok := strings.CutPrefix(word, a.key); ok && residual != "" {
			step := Step{Kind: StepTickon, Fragment: a.key, Senses: a.item.Senses}
			s.accept(residual, outerPOS, a.item.POS, appendStep(outer, step), cl)
		}
	}
	for _, m := range s.prefixKeys {
		if residual, ok := strings.CutPrefix(word, m.key); ok && residual != "" {
			step := Step{Kind: StepPrefix, Fragment: m.key, Senses: m.item.Senses}
			s.accept(residual, outerPOS, m.item.POS, appendStep(outer, step), cl)
		}
	}
}

// accept runs residual through the base tiers and keeps the readings whose
// entry part of speech both constraints admit.
func (s *Store) accept(residual string, outerPOS, constraint PartOfSpeech, path []Step, cl *collector) {
	for _, c := range s.base(residual) {
		if !outerPOS.admits(c.Entry.POS) || !constraint.admits(c.Entry.POS) {
			continue
		}
		c.Tier = TierTricks
		c.Path = path
		cl.add(c)
	}
}

// derive recognises base stem + derivational suffix + ending. The ending
// must belong to the part of speech and class the suffix produces, and the
// stem must carry the part of speech (and stem slot, when set) the suffix
// attaches to. The reading points at the base entry; an outer attachment
// constrains the derived part of speech.
func (s *Store) derive(word string, outer []Step, outerPOS PartOfSpeech, cl *collector) {
	for _, m := range s.suffixKeys {
		if !outerPOS.admits(m.item.Result) {
			continue
		}
		for from := 1; from < len(word); {
			i := strings.Index(word[from:], m.key)
			if i < 0 {
				break
			}
			at := from + i
			from = at + 1

			stem, ending := word[:at], word[at+len(m.key):]
			var infls []*Inflection
			for _, in := range s.inflIdx.get(ending) {
				if in.POS == m.item.Result && in.Class.admits(m.item.Class) {
					infls = append(infls, in)
				}
			}
			if len(infls) == 0 {
				continue
			}
			step := Step{Kind: StepSuffix, Fragment: m.key, Senses: m.item.Senses}
			for _, st := range s.stemIdx.get(stem) {
				if st.POS != m.item.POS || (m.item.Key != 0 && st.Key != m.item.Key) {
					continue
				}
				cl.add(Candidate{
					Entry:    st.entry,
					Tier:     TierTricks,
					Stem:     stem,
					Ending:   ending,
					Analyses: infls,
					Path:     appendStep(outer, step),
				})
			}
		}
	}
}

// appendStep returns a new path; outer is never modified.
func appendStep(outer []Step, step Step) []Step {
	path := make([]Step, 0, len(outer)+1)
	path = append(path, outer...)
	return append(path, step)
}
