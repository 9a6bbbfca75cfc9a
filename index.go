package interpres

import (
	"bytes"
	"errors"
	"sort"

	"github.com/blevesearch/vellum"
)

// index maps folded keys to groups of table rows. Keys live in an in-memory
// FST whose output value is the group's slot in slots. The empty key is kept
// aside since an inflection ending may be empty.
type index[T any] struct {
	fst   *vellum.FST
	slots [][]T
	empty []T
}

// buildIndex groups items by key(item) and compiles the FST. Items keep
// their table order inside a group.
func buildIndex[T any](items []T, key func(T) string) (*index[T], error) {
	ix := &index[T]{}
	groups := make(map[string][]T)
	for _, it := range items {
		k := key(it)
		if k == "" {
			ix.empty = append(ix.empty, it)
			continue
		}
		groups[k] = append(groups[k], it)
	}
	if len(groups) == 0 {
		return ix, nil
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		if err := builder.Insert([]byte(k), uint64(i)); err != nil {
			builder.Close()
			return nil, err
		}
		ix.slots = append(ix.slots, groups[k])
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}
	ix.fst = fst
	return ix, nil
}

// get returns the group stored under key, nil if absent.
func (ix *index[T]) get(key string) []T {
	if key == "" {
		return ix.empty
	}
	if ix.fst == nil {
		return nil
	}
	v, ok, err := ix.fst.Get([]byte(key))
	if err != nil || !ok {
		return nil
	}
	return ix.slots[v]
}

// contains reports whether key has at least one row.
func (ix *index[T]) contains(key string) bool {
	return len(ix.get(key)) > 0
}

// len returns the number of distinct keys.
func (ix *index[T]) len() int {
	n := len(ix.slots)
	if len(ix.empty) > 0 {
		n++
	}
	return n
}

// withPrefix returns up to limit keys starting with prefix, in lexicographic
// order. limit <= 0 means no limit.
func (ix *index[T]) withPrefix(prefix string, limit int) ([]string, error) {
	if ix.fst == nil || prefix == "" {
		return nil, nil
	}
	var out []string
	it, err := ix.fst.Iterator([]byte(prefix), nil)
	for err == nil {
		k, _ := it.Current()
		if !bytes.HasPrefix(k, []byte(prefix)) {
			break
		}
		out = append(out, string(k))
		if limit > 0 && len(out) >= limit {
			break
		}
		err = it.Next()
	}
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, err
	}
	return out, nil
}
