package interpres

import "testing"

func TestAnalyzeEnglish(t *testing.T) {
	tr := newTestTranslator(t)
	tests := []struct {
		word  string
		first string
		tier  Tier
	}{
		{"girl", "puella", TierDirect},
		{"Girl!", "puella", TierDirect},
		{"girls", "puella", TierInflection},
		{"kings", "rex", TierInflection},
		{"man", "homo", TierDirect},
		{"love", "amo", TierDirect},
		{"loved", "amo", TierInflection},
	}
	for _, tt := range tests {
		got := tr.AnalyzeEnglish(tt.word, 6, true)
		if len(got) == 0 {
			t.Errorf("AnalyzeEnglish(%q) found nothing", tt.word)
			continue
		}
		if got[0].Entry.Orth != tt.first || got[0].Tier != tt.tier {
			t.Errorf("AnalyzeEnglish(%q)[0] = %s (%s), want %s (%s)",
				tt.word, got[0].Entry.Orth, got[0].Tier, tt.first, tt.tier)
		}
		if got[0].English == nil || got[0].English.Latin() != got[0].Entry {
			t.Errorf("AnalyzeEnglish(%q)[0] does not carry its English entry", tt.word)
		}
	}
}

func TestAnalyzeEnglishFanOut(t *testing.T) {
	tr := newTestTranslator(t)

	all := tr.AnalyzeEnglish("from", 10, true)
	if len(all) != 3 {
		t.Fatalf("AnalyzeEnglish(from) = %d candidates, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Score < all[i].Score {
			t.Errorf("from: candidate %d scores %d above %d", i, all[i].Score, all[i-1].Score)
		}
	}
	if all[0].Entry.Orth != "ex" {
		t.Errorf("from: first = %s, want ex", all[0].Entry.Orth)
	}

	two := tr.AnalyzeEnglish("from", 2, true)
	if len(two) != 2 || two[0].Entry != all[0].Entry || two[1].Entry != all[1].Entry {
		t.Errorf("AnalyzeEnglish(from, 2) is not the top of the full ranking")
	}

	unsorted := tr.AnalyzeEnglish("from", 10, false)
	want := []string{"ex", "de", "a"}
	for i, c := range unsorted {
		if c.Entry.Orth != want[i] {
			t.Errorf("unsorted from[%d] = %s, want %s (table order)", i, c.Entry.Orth, want[i])
		}
	}
}

func TestAnalyzeEnglishNoMatch(t *testing.T) {
	tr := newTestTranslator(t)
	for _, w := range []string{"", "xylophone", "???", "puella"} {
		if got := tr.AnalyzeEnglish(w, 6, true); len(got) != 0 {
			t.Errorf("AnalyzeEnglish(%q) = %d candidates, want none", w, len(got))
		}
	}
}
