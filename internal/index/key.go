package index

import "strings"

// Key identifies a protein by its one-letter rendering. Keys order by length
// first and then lexicographically, so an index iterates from the shortest
// proteins to the longest.
type Key string

// Compare returns -1, 0 or +1 as k sorts before, equal to, or after o.
func (k Key) Compare(o Key) int {
	switch {
	case len(k) < len(o):
		return -1
	case len(k) > len(o):
		return 1
	default:
		return strings.Compare(string(k), string(o))
	}
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

// CompareKeys is Key.Compare in a form usable with slices.SortFunc.
func CompareKeys(a, b Key) int { return a.Compare(b) }
