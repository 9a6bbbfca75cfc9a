package interpres

import (
	"fmt"
	"io"
	"strings"
)

// Direction tags a Translation with the language of its input word.
type Direction string

const (
	FromLatin   Direction = "latin_to_english"
	FromEnglish Direction = "english_to_latin"
)

// Translation is the result for one input token.
type Translation struct {
	Word        string      `json:"word"`
	Direction   Direction   `json:"direction"`
	Definitions []Candidate `json:"definitions"`
}

// Assemble wraps ranked candidates into a Translation. Definitions is never
// nil so that an unknown word serialises as an empty list.
func Assemble(word string, dir Direction, ranked []Candidate) Translation {
	if ranked == nil {
		ranked = []Candidate{}
	}
	return Translation{Word: word, Direction: dir, Definitions: ranked}
}

// Format writes a human-readable rendering of t. With detailed set it also
// prints the analyses, the decomposition path and the dictionary flags.
func (t Translation) Format(w io.Writer, detailed bool) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n", t.Word)
	if len(t.Definitions) == 0 {
		ew.printf("  (no match)\n")
		return ew.err
	}
	for i, c := range t.Definitions {
		e := c.Entry
		if c.English != nil {
			ew.printf("  %d. %s -> %s\n", i+1, c.English.Orth, e.Orth)
		} else {
			ew.printf("  %d. %s\n", i+1, e.Orth)
		}
		ew.printf("     %s  %s", strings.Join(e.Parts, ", "), e.POS)
		if e.Class != (Class{}) {
			ew.printf(" (%s)", e.Class)
		}
		if e.Form != "" && e.Form != "X" {
			ew.printf(" %s", e.Form)
		}
		ew.printf("\n     %s\n", strings.Join(e.Senses, "; "))
		if !detailed {
			continue
		}
		for _, st := range c.Path {
			ew.printf("     %s %q: %s\n", st.Kind, st.Fragment, strings.Join(st.Senses, "; "))
		}
		if c.Stem != "" || c.Ending != "" {
			ew.printf("     %s + -%s\n", c.Stem, c.Ending)
		}
		for _, in := range c.Analyses {
			ew.printf("       %-8s %s", in.POS, in.Form)
			if in.Note != "" {
				ew.printf(" (%s)", in.Note)
			}
			ew.printf("\n")
		}
		ew.printf("     %s, score %d, age %s area %s geo %s freq %s source %s\n",
			c.Tier, c.Score, e.Info.Age, e.Info.Area, e.Info.Geo, e.Info.Freq, e.Info.Source)
	}
	return ew.err
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
