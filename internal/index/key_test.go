package index

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		a, b Key
		want int
	}{
		{"MF", "MF", 0},
		{"MF", "MFF", -1},
		{"MFF", "MF", 1},
		{"MW", "MF", 1},
		{"MA", "MF", -1},
		{"MZZZ", "MAAAA", -1},
		{"", "M", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, -tt.want, tt.b.Compare(tt.a), "%q vs %q", tt.b, tt.a)
		assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
	}
}

func TestKeySortOrder(t *testing.T) {
	keys := []Key{"MWW", "MA", "MKKKK", "M", "MAA", "MF", "MAZ"}
	slices.SortFunc(keys, CompareKeys)
	assert.Equal(t, []Key{"M", "MA", "MF", "MAA", "MAZ", "MWW", "MKKKK"}, keys)
}
