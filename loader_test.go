package interpres

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

// fixture returns a minimal, valid set of tables. Entries of overrides
// replace whole files; an empty value removes the file.
func fixture(overrides map[string]string) fstest.MapFS {
	files := map[string]string{
		fileLatin: `! test dictionary
1|rosa|rosa,rosae|noun|1,1|F|X,X,X,B,O|rose
2|canto|canto,cantare,cantavi,cantatus|verb|1,1|X|X,X,X,A,O|sing;play
`,
		fileUniques: "est|verb|5,1|PRES ACTIVE IND 3 S|X,X,X,A,O|is\n",
		fileStems: `1|ros|noun|1,1|1
1|ros|noun|1,1|2
2|cant|verb|1,1|1
`,
		fileInflections: `a|noun|1,1|1|NOM S C|X|A
ae|noun|1,1|2|GEN S C|X|A
at|verb|1,1|1|PRES ACTIVE IND 3 S|X|A
`,
		fileEnglish:    "rose|noun|1|1|70|70|0|0\nsing|verb|2|1|80|80|0|0\n",
		filePrefixes:   "re|verb|0|verb||prefix + verb|again\n",
		fileSuffixes:   "ul|noun|0|noun|1,1|diminutive|little ~\n",
		filePackons:    "dam|pronoun|certain\n",
		fileNotPackons: "atque|conjunction|and\n",
		fileTackons:    "que|x|and\n",
		fileTickons:    "ali|pronoun|some\n",
	}
	for k, v := range overrides {
		files[k] = v
	}
	fsys := fstest.MapFS{}
	for name, body := range files {
		if body != "" {
			fsys[name] = &fstest.MapFile{Data: []byte(body)}
		}
	}
	return fsys
}

func TestLoadFixture(t *testing.T) {
	s, err := Load(fixture(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	st := s.Stats()
	t.Logf("fixture stats: %+v", st)
	if st.Latin != 2 || st.Stems != 3 || st.Inflections != 3 || st.English != 2 || st.UniqueLatin != 1 {
		t.Errorf("unexpected table sizes: %+v", st)
	}
	if st.StemKeys != 2 {
		t.Errorf("StemKeys = %d, want 2", st.StemKeys)
	}

	rosa := s.LatinByID(1)
	if rosa == nil || rosa.Orth != "rosa" {
		t.Fatalf("LatinByID(1) = %v", rosa)
	}
	if rosa.Info.Freq != "B" || rosa.Class != (Class{1, 1}) || len(rosa.Parts) != 2 {
		t.Errorf("rosa parsed as %+v", rosa)
	}
	for _, stem := range s.Stems() {
		if stem.Entry() == nil || stem.Entry().ID != stem.WID {
			t.Errorf("stem %q not linked to entry %d", stem.Orth, stem.WID)
		}
	}
	for _, e := range s.EnglishEntries() {
		if e.Latin() == nil || e.Latin().ID != e.WID {
			t.Errorf("English %q not linked to entry %d", e.Orth, e.WID)
		}
	}
	if got := s.Tackons()[0].POS; got != POSUnknown {
		t.Errorf("tackon pos = %q, want unspecified", got)
	}

	tr, err := New(s, Options{Policy: DefaultRankPolicy()})
	if err != nil {
		t.Fatal(err)
	}
	cands := tr.AnalyzeLatin("rosae", false)
	if len(cands) != 1 || cands[0].Entry != rosa || cands[0].Analyses[0].Form != "GEN S C" {
		t.Errorf("AnalyzeLatin(rosae) on fixture = %+v", cands)
	}
	if got := tr.AnalyzeLatin("rosaque", true); len(got) == 0 {
		t.Error("AnalyzeLatin(rosaque, tricks) on fixture found nothing")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		override map[string]string
		file     string
		line     int
		wantErr  error
	}{
		{"missing file", map[string]string{fileTickons: ""}, fileTickons, 0, nil},
		{"too few fields", map[string]string{fileLatin: "1|rosa|rosa|noun\n"}, fileLatin, 1, nil},
		{"bad id", map[string]string{fileLatin: "! c\nx|rosa|rosa|noun|1,1|F|X|rose\n"}, fileLatin, 2, nil},
		{"zero id", map[string]string{fileLatin: "0|rosa|rosa|noun|1,1|F|X|rose\n"}, fileLatin, 1, nil},
		{"bad pos", map[string]string{fileStems: "1|ros|thing|1,1|1\n"}, fileStems, 1, ErrInvalidPOS},
		{"bad class", map[string]string{fileInflections: "a|noun|1|1|NOM S C|X|A\n"}, fileInflections, 1, nil},
		{"bad key", map[string]string{fileStems: "1|ros|noun|1,1|one\n"}, fileStems, 1, nil},
		{"bad frequency", map[string]string{fileEnglish: "rose|noun|1|1|70|often|0|0\n"}, fileEnglish, 1, nil},
		{"unknown stem wid", map[string]string{fileStems: "9|ros|noun|1,1|1\n"}, fileStems, 0, nil},
		{"unknown english wid", map[string]string{fileEnglish: "rose|noun|9|1|70|70|0|0\n"}, fileEnglish, 0, nil},
		{"duplicate id", map[string]string{
			fileLatin: "1|rosa|rosa|noun|1,1|F|X|rose\n1|rosa|rosa|noun|1,1|F|X|rose\n",
		}, fileLatin, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fixture(tt.override))
			if err == nil {
				t.Fatal("Load succeeded on malformed data")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("error %v is not a *LoadError", err)
			}
			if le.File != tt.file || le.Line != tt.line {
				t.Errorf("LoadError at %s:%d, want %s:%d (%v)", le.File, le.Line, tt.file, tt.line, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.file) {
				t.Errorf("error %q does not name %s", err, tt.file)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	st := s.Stats()
	t.Logf("embedded lexicon: %+v", st)
	if st.Latin == 0 || st.English == 0 || st.Inflections == 0 || st.Stems == 0 {
		t.Errorf("embedded lexicon has empty tables: %+v", st)
	}
	if len(s.Prefixes()) == 0 || len(s.Suffixes()) == 0 || len(s.Packons()) == 0 ||
		len(s.NotPackons()) == 0 || len(s.Tackons()) == 0 || len(s.Tickons()) == 0 ||
		len(s.UniqueLatin()) == 0 || len(s.Inflections()) == 0 {
		t.Error("an attachment or unique table is empty")
	}
	if MustDefault() != s {
		t.Error("MustDefault returned a different store")
	}
}

func TestDefaultConcurrent(t *testing.T) {
	const n = 16
	stores := make([]*Store, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stores[i], _ = Default()
		}()
	}
	wg.Wait()
	for i, s := range stores {
		if s == nil || s != stores[0] {
			t.Fatalf("caller %d got store %p, want %p", i, s, stores[0])
		}
	}
}

func TestSuggest(t *testing.T) {
	s := MustDefault()
	got, err := s.Suggest("Pu", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"puella": true, "puer": true}
	for _, k := range got {
		delete(want, k)
		if !strings.HasPrefix(k, "pu") {
			t.Errorf("Suggest(Pu) returned %q", k)
		}
	}
	if len(want) > 0 {
		t.Errorf("Suggest(Pu) = %v, missing %v", got, want)
	}
	if got, _ := s.Suggest("pu", 1); len(got) != 1 {
		t.Errorf("Suggest(pu, 1) = %v", got)
	}
}
