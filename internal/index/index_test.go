package index

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-orf/internal/protein"
)

func mustProteins(t *testing.T, texts ...string) []*protein.Protein {
	t.Helper()
	out := make([]*protein.Protein, 0, len(texts))
	for _, s := range texts {
		p, err := protein.Parse(s)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestNew_Deduplicates(t *testing.T) {
	ix := New(mustProteins(t, "MF", "MKR", "MF", "M", "MKR"))
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []Key{"M", "MF", "MKR"}, slices.Collect(ix.Keys()))
}

func TestIndex_Get(t *testing.T) {
	ix := New(mustProteins(t, "MF", "MWY"))

	p, ok := ix.Get("MWY")
	require.True(t, ok)
	assert.Equal(t, "MWY", p.String())

	p, ok = ix.GetByString("MF")
	require.True(t, ok)
	assert.Equal(t, 2, p.Len())

	_, ok = ix.GetByString("MK")
	assert.False(t, ok)

	// Lookups hand out the shared instance.
	again, _ := ix.GetByString("MF")
	assert.Same(t, p, again)
}

func TestIndex_KeysOrderedAndRestartable(t *testing.T) {
	ix := New(mustProteins(t, "MWWWW", "MA", "M", "MKK", "MAA", "MC"))

	first := slices.Collect(ix.Keys())
	second := slices.Collect(ix.Keys())
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Compare(first[i]) < 0, "%q before %q", first[i-1], first[i])
	}

	// Early break does not disturb the next iteration.
	for k := range ix.Keys() {
		assert.Equal(t, Key("M"), k)
		break
	}
	assert.Equal(t, first, slices.Collect(ix.Keys()))
}

func TestIndex_All(t *testing.T) {
	ix := New(mustProteins(t, "MKK", "MF"))
	var got []string
	for k, p := range ix.All() {
		assert.Equal(t, string(k), p.String())
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"MF", "MKK"}, got)
}

func TestIndex_Page(t *testing.T) {
	ix := New(mustProteins(t, "M", "MA", "MC", "MAA", "MCC"))

	assert.Equal(t, []Key{"M", "MA"}, ix.Page(0, 2))
	assert.Equal(t, []Key{"MC", "MAA"}, ix.Page(2, 2))
	assert.Equal(t, []Key{"MCC"}, ix.Page(4, 2))
	assert.Nil(t, ix.Page(5, 2))
	assert.Nil(t, ix.Page(-1, 2))
	assert.Nil(t, ix.Page(0, 0))
}

func TestIndex_LengthRange(t *testing.T) {
	ix := New(mustProteins(t, "M", "MA", "MC", "MAA", "MCC", "MAAAA"))

	assert.Equal(t, []Key{"MA", "MC", "MAA", "MCC"}, ix.LengthRange(2, 3))
	assert.Equal(t, []Key{"M"}, ix.LengthRange(0, 1))
	assert.Equal(t, []Key{"MAAAA"}, ix.LengthRange(4, 10))
	assert.Nil(t, ix.LengthRange(6, 10))
	assert.Nil(t, ix.LengthRange(3, 2))
}

func TestFromPartials(t *testing.T) {
	ps := mustProteins(t, "MF", "MK", "MF")
	a := map[Key]*protein.Protein{"MF": ps[0], "MK": ps[1]}
	b := map[Key]*protein.Protein{"MF": ps[2]}

	ix := FromPartials(a, b, nil)
	assert.Equal(t, []Key{"MF", "MK"}, slices.Collect(ix.Keys()))

	empty := FromPartials()
	assert.Equal(t, 0, empty.Len())
}

func TestIndex_PageLengthRange(t *testing.T) {
	ix := New(mustProteins(t, "M", "MA", "MC", "MAA", "MCC", "MAAAA"))

	// The window stays inside the length range.
	assert.Equal(t, []Key{"MA", "MC"}, ix.PageLengthRange(2, 3, 0, 2))
	assert.Equal(t, []Key{"MAA", "MCC"}, ix.PageLengthRange(2, 3, 2, 2))
	assert.Equal(t, []Key{"MCC"}, ix.PageLengthRange(2, 3, 3, 10))
	assert.Nil(t, ix.PageLengthRange(2, 3, 4, 2))

	// A non-positive limit returns the rest of the range.
	assert.Equal(t, []Key{"MC", "MAA", "MCC"}, ix.PageLengthRange(2, 3, 1, 0))
	assert.Equal(t, ix.LengthRange(0, 100), ix.PageLengthRange(0, 100, 0, 0))

	assert.Nil(t, ix.PageLengthRange(2, 3, -1, 2))
	assert.Nil(t, ix.PageLengthRange(6, 10, 0, 2))
	assert.Nil(t, ix.PageLengthRange(3, 2, 0, 2))
}
