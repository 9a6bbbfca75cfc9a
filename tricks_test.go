package interpres

import (
	"testing"
)

// findPath returns the first tricks candidate for orth whose outermost step
// is kind/fragment.
func findPath(cands []Candidate, orth string, kind StepKind, fragment string) *Candidate {
	for i, c := range cands {
		if c.Tier != TierTricks || c.Entry.Orth != orth || len(c.Path) == 0 {
			continue
		}
		if c.Path[0].Kind == kind && c.Path[0].Fragment == fragment {
			return &cands[i]
		}
	}
	return nil
}

func TestTricks(t *testing.T) {
	tr := newTestTranslator(t)
	tests := []struct {
		word     string
		kind     StepKind
		fragment string
		orth     string
	}{
		{"puellaque", StepTackon, "que", "puella"},
		{"Puellaque,", StepTackon, "que", "puella"},
		{"virne", StepTackon, "ne", "vir"},
		{"mecum", StepTackon, "cum", "me"},
		{"quidam", StepPackon, "dam", "qui"},
		{"quaedam", StepPackon, "dam", "qui"},
		{"aliquis", StepTickon, "ali", "quis"},
		{"reporto", StepPrefix, "re", "porto"},
		{"revocat", StepPrefix, "re", "voco"},
		{"indignus", StepPrefix, "in", "dignus"},
		{"amator", StepSuffix, "or", "amo"},
		{"amatorem", StepSuffix, "or", "amo"},
		{"puellula", StepSuffix, "ul", "puella"},
		{"longissimus", StepSuffix, "issim", "longus"},
	}
	for _, tt := range tests {
		on := tr.AnalyzeLatin(tt.word, true)
		if findPath(on, tt.orth, tt.kind, tt.fragment) == nil {
			t.Errorf("AnalyzeLatin(%q, true) has no %s %q reading of %s", tt.word, tt.kind, tt.fragment, tt.orth)
			logCandidates(t, tt.word, on)
		}
		off := tr.AnalyzeLatin(tt.word, false)
		for _, c := range off {
			if len(c.Path) > 0 || c.Tier == TierTricks {
				t.Errorf("AnalyzeLatin(%q, false) stripped attachments: %s", tt.word, pathKey(c.Path))
			}
		}
	}
}

func TestTricksPuellaque(t *testing.T) {
	tr := newTestTranslator(t)
	if off := tr.AnalyzeLatin("puellaque", false); len(off) != 0 {
		t.Errorf("AnalyzeLatin(puellaque, false) = %d candidates, want none", len(off))
	}
	on := tr.AnalyzeLatin("puellaque", true)
	logCandidates(t, "puellaque", on)
	if len(on) == 0 {
		t.Fatal("AnalyzeLatin(puellaque, true) found nothing")
	}
	// The residual is analysed exactly as the bare word would be.
	bare := tr.AnalyzeLatin("puella", true)
	for _, b := range bare {
		if b.Tier == TierTricks {
			continue
		}
		found := false
		for _, c := range on {
			if c.Entry == b.Entry && c.Stem == b.Stem && c.Ending == b.Ending && pathKey(c.Path) == "tackon:que" {
				found = true
			}
		}
		if !found {
			t.Errorf("puellaque lacks the %s+%s reading of puella", b.Stem, b.Ending)
		}
	}
	for _, c := range on {
		if len(c.Path) > 0 && c.Path[0].Kind == StepPackon {
			t.Errorf("pronoun-only packon stripped from a noun: %s", pathKey(c.Path))
		}
	}
}

func TestTricksNotPackon(t *testing.T) {
	tr := newTestTranslator(t)
	for _, w := range []string{"itaque", "neque", "atque", "quoque", "denique"} {
		cands := tr.AnalyzeLatin(w, true)
		if len(cands) == 0 || cands[0].Tier != TierDirect {
			t.Errorf("AnalyzeLatin(%q, true) lost its direct match", w)
		}
		for _, c := range cands {
			if len(c.Path) > 0 && (c.Path[0].Kind == StepTackon || c.Path[0].Kind == StepPackon) {
				t.Errorf("AnalyzeLatin(%q) stripped %s", w, pathKey(c.Path))
			}
		}
	}
}

func TestTricksPOSConstraint(t *testing.T) {
	tr := newTestTranslator(t)

	// dam attaches to pronouns only.
	if got := tr.AnalyzeLatin("puelladam", true); len(got) != 0 {
		t.Errorf("AnalyzeLatin(puelladam) = %d candidates, want none", len(got))
		logCandidates(t, "puelladam", got)
	}

	// The adjectival prefix in- must not produce a verb reading and the
	// verbal one must not produce an adjective.
	for _, c := range tr.AnalyzeLatin("indignus", true) {
		if len(c.Path) > 0 && c.Path[0].Kind == StepPrefix && c.Entry.POS != POSAdjective {
			t.Errorf("indignus: prefix reading of %s (%s)", c.Entry.Orth, c.Entry.POS)
		}
	}
}

func TestTricksCombined(t *testing.T) {
	tr := newTestTranslator(t)
	cands := tr.AnalyzeLatin("reportatque", true)
	for _, c := range cands {
		if c.Entry.Orth == "porto" && pathKey(c.Path) == "tackon:que/prefix:re" {
			return
		}
	}
	t.Error("reportatque: no que + re reading of porto")
	logCandidates(t, "reportatque", cands)
}

func TestTricksMonotonic(t *testing.T) {
	tr := newTestTranslator(t)
	words := []string{
		"puella", "puellae", "puellaque", "amat", "amator", "itaque", "cum",
		"quidam", "reporto", "est", "rex", "regis", "bonus", "xyzzy", "a",
	}
	for _, w := range words {
		on := map[groupKey]bool{}
		for _, c := range tr.AnalyzeLatin(w, true) {
			on[keyOf(&c)] = true
		}
		for _, c := range tr.AnalyzeLatin(w, false) {
			if !on[keyOf(&c)] {
				t.Errorf("%q: candidate %s %s+%s missing with tricks", w, c.Entry.Orth, c.Stem, c.Ending)
			}
		}
	}
}
