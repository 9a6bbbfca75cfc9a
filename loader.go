package interpres

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// Table file names inside the data filesystem.
const (
	fileLatin       = "latin.la"
	fileUniques     = "uniques.la"
	fileStems       = "stems.la"
	fileInflections = "inflections.la"
	fileEnglish     = "english.la"
	filePrefixes    = "prefixes.la"
	fileSuffixes    = "suffixes.la"
	filePackons     = "packons.la"
	fileNotPackons  = "not_packons.la"
	fileTackons     = "tackons.la"
	fileTickons     = "tickons.la"
)

// Load parses every table from fsys and builds the lookup indexes.
// Any malformed line or dangling reference is reported as a *LoadError.
func Load(fsys fs.FS) (*Store, error) {
	s := &Store{latinByID: make(map[int]*LatinEntry)}

	loaders := []struct {
		file      string
		fn        func(fields []string) error
		minFields int
	}{
		{fileLatin, s.addLatin, 8},
		{fileUniques, s.addUnique, 6},
		{fileStems, s.addStem, 5},
		{fileInflections, s.addInflection, 7},
		{fileEnglish, s.addEnglish, 8},
		{filePrefixes, modifierLoader(&s.prefixes), 7},
		{fileSuffixes, modifierLoader(&s.suffixes), 7},
		{filePackons, attachmentLoader(&s.packons), 3},
		{fileNotPackons, attachmentLoader(&s.notPackons), 3},
		{fileTackons, attachmentLoader(&s.tackons), 3},
		{fileTickons, attachmentLoader(&s.tickons), 3},
	}
	for _, l := range loaders {
		if err := scanTable(fsys, l.file, l.minFields, l.fn); err != nil {
			return nil, err
		}
	}

	if err := s.link(); err != nil {
		return nil, err
	}
	if err := s.buildIndexes(); err != nil {
		return nil, err
	}
	return s, nil
}

// scanTable reads a '|'-separated table. Blank lines and lines starting
// with '!' are skipped. Every other line must have at least minFields fields.
func scanTable(fsys fs.FS, name string, minFields int, fn func(fields []string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return &LoadError{File: name, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < minFields {
			return &LoadError{File: name, Line: lineNo,
				Err: fmt.Errorf("got %d fields, want at least %d", len(fields), minFields)}
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := fn(fields); err != nil {
			return &LoadError{File: name, Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return &LoadError{File: name, Err: err}
	}
	return nil
}

// addLatin parses id|orth|parts|pos|class|form|info|senses.
func (s *Store) addLatin(f []string) error {
	id, err := strconv.Atoi(f[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("bad id %q", f[0])
	}
	pos, err := parseDataPOS(f[3])
	if err != nil {
		return err
	}
	class, err := parseClass(f[4])
	if err != nil {
		return err
	}
	var parts []string
	for _, p := range strings.Split(f[2], ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	s.latin = append(s.latin, LatinEntry{
		ID:     id,
		Orth:   f[1],
		Parts:  parts,
		POS:    pos,
		Class:  class,
		Form:   f[5],
		Info:   parseWordInfo(f[6]),
		Senses: splitSenses(f[7]),
	})
	return nil
}

// addUnique parses orth|pos|class|form|info|senses.
func (s *Store) addUnique(f []string) error {
	pos, err := parseDataPOS(f[1])
	if err != nil {
		return err
	}
	class, err := parseClass(f[2])
	if err != nil {
		return err
	}
	s.uniques = append(s.uniques, LatinEntry{
		Orth:   f[0],
		Parts:  []string{f[0]},
		POS:    pos,
		Class:  class,
		Form:   f[3],
		Info:   parseWordInfo(f[4]),
		Senses: splitSenses(f[5]),
	})
	return nil
}

// addStem parses wid|orth|pos|class|key.
func (s *Store) addStem(f []string) error {
	wid, err := strconv.Atoi(f[0])
	if err != nil {
		return fmt.Errorf("bad wid %q", f[0])
	}
	if f[1] == "" {
		return errors.New("empty stem")
	}
	pos, err := parseDataPOS(f[2])
	if err != nil {
		return err
	}
	class, err := parseClass(f[3])
	if err != nil {
		return err
	}
	key, err := strconv.Atoi(f[4])
	if err != nil {
		return fmt.Errorf("bad stem key %q", f[4])
	}
	s.stems = append(s.stems, Stem{WID: wid, Orth: f[1], POS: pos, Class: class, Key: key})
	return nil
}

// addInflection parses ending|pos|class|key|form|age|freq[|note].
func (s *Store) addInflection(f []string) error {
	pos, err := parseDataPOS(f[1])
	if err != nil {
		return err
	}
	class, err := parseClass(f[2])
	if err != nil {
		return err
	}
	key, err := strconv.Atoi(f[3])
	if err != nil {
		return fmt.Errorf("bad stem key %q", f[3])
	}
	in := Inflection{
		Ending: f[0],
		POS:    pos,
		Class:  class,
		Key:    key,
		Form:   f[4],
		Age:    f[5],
		Freq:   f[6],
	}
	if len(f) > 7 {
		in.Note = f[7]
	}
	s.inflections = append(s.inflections, in)
	return nil
}

// addEnglish parses orth|pos|wid|frequency_type|true_frequency|frequency|compound|semi.
func (s *Store) addEnglish(f []string) error {
	pos, err := parseDataPOS(f[1])
	if err != nil {
		return err
	}
	nums := make([]int, 6)
	for i := range nums {
		if nums[i], err = strconv.Atoi(f[i+2]); err != nil {
			return fmt.Errorf("field %d: %w", i+3, err)
		}
	}
	s.english = append(s.english, EnglishEntry{
		Orth:          f[0],
		POS:           pos,
		WID:           nums[0],
		FrequencyType: nums[1],
		TrueFrequency: nums[2],
		Frequency:     nums[3],
		Compound:      nums[4],
		Semi:          nums[5],
	})
	return nil
}

// modifierLoader parses orth|pos|key|result|class|rule|senses into dst.
func modifierLoader(dst *[]Modifier) func([]string) error {
	return func(f []string) error {
		pos, err := parseDataPOS(f[1])
		if err != nil {
			return err
		}
		key := 0
		if f[2] != "" {
			if key, err = strconv.Atoi(f[2]); err != nil {
				return fmt.Errorf("bad stem key %q", f[2])
			}
		}
		result, err := parseDataPOS(f[3])
		if err != nil {
			return err
		}
		class, err := parseClass(f[4])
		if err != nil {
			return err
		}
		*dst = append(*dst, Modifier{
			Orth:   f[0],
			POS:    pos,
			Key:    key,
			Result: result,
			Class:  class,
			Rule:   f[5],
			Senses: splitSenses(f[6]),
		})
		return nil
	}
}

// attachmentLoader parses orth|pos|senses into dst.
func attachmentLoader(dst *[]Attachment) func([]string) error {
	return func(f []string) error {
		if f[0] == "" {
			return errors.New("empty attachment")
		}
		pos, err := parseDataPOS(f[1])
		if err != nil {
			return err
		}
		*dst = append(*dst, Attachment{Orth: f[0], POS: pos, Senses: splitSenses(f[2])})
		return nil
	}
}

// link resolves stem and English references to Latin entries.
func (s *Store) link() error {
	for i := range s.latin {
		e := &s.latin[i]
		if _, dup := s.latinByID[e.ID]; dup {
			return &LoadError{File: fileLatin, Err: fmt.Errorf("duplicate id %d", e.ID)}
		}
		s.latinByID[e.ID] = e
	}
	for i := range s.stems {
		st := &s.stems[i]
		if st.entry = s.latinByID[st.WID]; st.entry == nil {
			return &LoadError{File: fileStems, Err: fmt.Errorf("stem %q: unknown wid %d", st.Orth, st.WID)}
		}
	}
	for i := range s.english {
		e := &s.english[i]
		if e.latin = s.latinByID[e.WID]; e.latin == nil {
			return &LoadError{File: fileEnglish, Err: fmt.Errorf("%q: unknown wid %d", e.Orth, e.WID)}
		}
	}
	return nil
}

// buildIndexes compiles the FST indexes and the folded attachment keys.
func (s *Store) buildIndexes() error {
	var err error
	wrap := func(file string, e error) error {
		return &LoadError{File: file, Err: fmt.Errorf("index: %w", e)}
	}

	if s.latinIdx, err = buildIndex(ptrs(s.latin), func(e *LatinEntry) string {
		return SanitizeLatin(e.Orth)
	}); err != nil {
		return wrap(fileLatin, err)
	}
	if s.uniqueIdx, err = buildIndex(ptrs(s.uniques), func(e *LatinEntry) string {
		return SanitizeLatin(e.Orth)
	}); err != nil {
		return wrap(fileUniques, err)
	}
	if s.stemIdx, err = buildIndex(ptrs(s.stems), func(st *Stem) string {
		return SanitizeLatin(st.Orth)
	}); err != nil {
		return wrap(fileStems, err)
	}
	if s.inflIdx, err = buildIndex(ptrs(s.inflections), func(in *Inflection) string {
		return SanitizeLatin(in.Ending)
	}); err != nil {
		return wrap(fileInflections, err)
	}
	if s.englishIdx, err = buildIndex(ptrs(s.english), func(e *EnglishEntry) string {
		return Sanitize(e.Orth)
	}); err != nil {
		return wrap(fileEnglish, err)
	}
	if s.englishStemIdx, err = buildIndex(ptrs(s.english), func(e *EnglishEntry) string {
		return stemEnglish(Sanitize(e.Orth))
	}); err != nil {
		return wrap(fileEnglish, err)
	}
	if s.notPackonIdx, err = buildIndex(ptrs(s.notPackons), func(a *Attachment) string {
		return SanitizeLatin(a.Orth)
	}); err != nil {
		return wrap(fileNotPackons, err)
	}

	attachOrth := func(a *Attachment) string { return a.Orth }
	modOrth := func(m *Modifier) string { return m.Orth }
	s.tackonKeys = affixes(s.tackons, attachOrth)
	s.packonKeys = affixes(s.packons, attachOrth)
	s.tickonKeys = affixes(s.tickons, attachOrth)
	s.prefixKeys = affixes(s.prefixes, modOrth)
	s.suffixKeys = affixes(s.suffixes, modOrth)

	for _, in := range s.inflections {
		s.maxEnding = max(s.maxEnding, runeLen(SanitizeLatin(in.Ending)))
	}
	for _, st := range s.stems {
		n := runeLen(SanitizeLatin(st.Orth))
		if s.minStem == 0 || n < s.minStem {
			s.minStem = n
		}
	}
	return nil
}

// ptrs returns pointers to the elements of items, in order.
func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
