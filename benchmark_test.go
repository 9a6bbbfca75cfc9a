package interpres

import (
	"testing"

	"github.com/cours-de-latin/interpres/data"
)

func BenchmarkAnalyzeLatin_Direct(b *testing.B) {
	tr := newTestTranslator(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.AnalyzeLatin("puella", false)
	}
}

func BenchmarkAnalyzeLatin_Inflected(b *testing.B) {
	tr := newTestTranslator(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.AnalyzeLatin("militibus", false)
	}
}

func BenchmarkAnalyzeLatin_Tricks(b *testing.B) {
	tr := newTestTranslator(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.AnalyzeLatin("reportatque", true)
	}
}

func BenchmarkAnalyzeLatin_Cached(b *testing.B) {
	tr, err := New(MustDefault(), DefaultOptions())
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.AnalyzeLatin("reportatque", true)
	}
}

func BenchmarkLatinToEnglish_Sentence(b *testing.B) {
	tr := newTestTranslator(b)
	sentence := "puellaque regem amat et milites ad bellum mittit"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.LatinToEnglish(sentence, 6, true, true)
	}
}

func BenchmarkEnglishToLatin(b *testing.B) {
	tr := newTestTranslator(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.EnglishToLatin("girls love the king", 6, true)
	}
}

func BenchmarkLoad(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Load(data.FS); err != nil {
			b.Fatalf("Load: %v", err)
		}
	}
}
