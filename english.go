package interpres

// englishCandidates looks the sanitized word up among the English
// headwords and resolves every hit to its Latin entry. English input gets
// no morphological decomposition; when the exact headword is missing the
// Snowball stem of the word is tried instead ("girls" finds "girl").
func (s *Store) englishCandidates(word string) []Candidate {
	key := Sanitize(word)
	if key == "" {
		return nil
	}
	tier := TierDirect
	entries := s.englishIdx.get(key)
	if len(entries) == 0 {
		tier = TierInflection
		entries = s.englishStemIdx.get(stemEnglish(key))
	}

	var cl collector
	for _, e := range entries {
		cl.add(Candidate{Entry: e.latin, English: e, Tier: tier})
	}
	return cl.out
}
