// Package index extracts open reading frames from nucleotide sequences and
// collects the translated proteins in a size-ordered, de-duplicated index.
package index

import (
	"iter"
	"slices"

	"github.com/inodb/vibe-orf/internal/protein"
)

// Index maps Keys to Proteins. Identical sequences share one entry.
// An Index is read-only once built and safe for concurrent readers.
type Index struct {
	proteins map[Key]*protein.Protein
	keys     []Key // sorted by Key.Compare
}

// New builds an Index from proteins, dropping duplicates.
func New(proteins []*protein.Protein) *Index {
	m := make(map[Key]*protein.Protein, len(proteins))
	for _, p := range proteins {
		m[Key(p.String())] = p
	}
	return fromMap(m)
}

// FromPartials merges partial maps, such as the per-frame results of a scan,
// into one Index. Equal keys hold equal proteins, so merge order is
// irrelevant.
func FromPartials(parts ...map[Key]*protein.Protein) *Index {
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	m := make(map[Key]*protein.Protein, n)
	for _, part := range parts {
		for k, p := range part {
			if _, ok := m[k]; !ok {
				m[k] = p
			}
		}
	}
	return fromMap(m)
}

func fromMap(m map[Key]*protein.Protein) *Index {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, CompareKeys)
	return &Index{proteins: m, keys: keys}
}

// Len returns the number of distinct proteins.
func (ix *Index) Len() int { return len(ix.keys) }

// Get returns the protein stored under key.
func (ix *Index) Get(key Key) (*protein.Protein, bool) {
	p, ok := ix.proteins[key]
	return p, ok
}

// GetByString returns the protein whose rendering is s.
func (ix *Index) GetByString(s string) (*protein.Protein, bool) {
	return ix.Get(Key(s))
}

// Keys iterates over keys in ascending Key order. Every call starts over.
func (ix *Index) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, k := range ix.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All iterates over keys and proteins in ascending Key order.
func (ix *Index) All() iter.Seq2[Key, *protein.Protein] {
	return func(yield func(Key, *protein.Protein) bool) {
		for _, k := range ix.keys {
			if !yield(k, ix.proteins[k]) {
				return
			}
		}
	}
}

// Page returns up to limit keys starting at position offset in Key order.
func (ix *Index) Page(offset, limit int) []Key {
	if offset < 0 || offset >= len(ix.keys) || limit <= 0 {
		return nil
	}
	end := min(offset+limit, len(ix.keys))
	return slices.Clone(ix.keys[offset:end])
}

// LengthRange returns the keys of proteins with min <= length <= max, in Key
// order.
func (ix *Index) LengthRange(minLen, maxLen int) []Key {
	lo, hi := ix.lengthBounds(minLen, maxLen)
	if lo >= hi {
		return nil
	}
	return slices.Clone(ix.keys[lo:hi])
}

// PageLengthRange returns up to limit keys, skipping the first offset, among
// the proteins with min <= length <= max. A non-positive limit means no
// limit.
func (ix *Index) PageLengthRange(minLen, maxLen, offset, limit int) []Key {
	lo, hi := ix.lengthBounds(minLen, maxLen)
	if lo >= hi || offset < 0 || offset >= hi-lo {
		return nil
	}
	if limit <= 0 || limit > hi-lo-offset {
		limit = hi - lo - offset
	}
	return ix.Page(lo+offset, limit)
}

// lengthBounds returns the half-open key positions of the length range.
// Keys sort by length first, so the range is contiguous.
func (ix *Index) lengthBounds(minLen, maxLen int) (int, int) {
	lo, _ := slices.BinarySearchFunc(ix.keys, minLen, func(k Key, n int) int {
		if len(k) < n {
			return -1
		}
		return 1
	})
	hi, _ := slices.BinarySearchFunc(ix.keys, maxLen, func(k Key, n int) int {
		if len(k) <= n {
			return -1
		}
		return 1
	})
	return lo, hi
}
