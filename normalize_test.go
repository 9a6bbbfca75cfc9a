package interpres

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		fn   string
		in   string
		want string
	}{
		{"Sanitize", "puella", "puella"},
		{"Sanitize", "Puella", "puella"},
		{"Sanitize", "  puellā, ", "puella"},
		{"Sanitize", "«Rōma!»", "roma"},
		{"Sanitize", "\tpuella\n", "puella"},
		{"Sanitize", "Æneas", "aeneas"},
		{"Sanitize", "cœlum", "coelum"},
		{"Sanitize", "CŒLUM", "coelum"},
		{"Sanitize", "ﬁnis", "finis"},
		{"Sanitize", "ā̆blŭo", "abluo"},
		{"Sanitize", "Julius", "julius"},
		{"Sanitize", "non-sense", "non-sense"},
		{"Sanitize", "", ""},
		{"Sanitize", "!!!", ""},
		{"Sanitize", "Girl's", "girl's"},
		{"Deramise", "julius", "iulius"},
		{"Deramise", "Julius", "Iulius"},
		{"Deramise", "veni", "ueni"},
		{"Deramise", "Venus", "Uenus"},
		{"SanitizeLatin", "JVLIVS", "iulius"},
		{"SanitizeLatin", "Vīta.", "uita"},
		{"SanitizeLatin", "cūjus", "cuius"},
	}
	for _, tt := range tests {
		var got string
		switch tt.fn {
		case "Sanitize":
			got = Sanitize(tt.in)
		case "Deramise":
			got = Deramise(tt.in)
		case "SanitizeLatin":
			got = SanitizeLatin(tt.in)
		}
		if got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.fn, tt.in, got, tt.want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"puella", "PUELLAQUE", " Rōmae! ", "ǣquus", "Œdipus", "ﬁnis",
		"...", "", "x", "a-b-c", "日本語", " via ", "éé",
		"'quod'", "“amo”", "123", "vir.", "\x00puer\x7f",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent on %q: %q then %q", in, once, twice)
		}
		onceL := SanitizeLatin(in)
		if twiceL := SanitizeLatin(onceL); twiceL != onceL {
			t.Errorf("SanitizeLatin not idempotent on %q: %q then %q", in, onceL, twiceL)
		}
	}
}

func TestStemEnglish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"girls", "girl"},
		{"girl", "girl"},
		{"kings", "king"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stemEnglish(tt.in); got != tt.want {
			t.Errorf("stemEnglish(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
