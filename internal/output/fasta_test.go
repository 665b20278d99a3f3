package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFASTAWriter_Records(t *testing.T) {
	var buf bytes.Buffer
	w := NewFASTAWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(mustProtein(t, "MF")))
	require.NoError(t, w.Write(mustProtein(t, "MKK")))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ">orf_1 length=2 mass=296.1190", lines[0])
	assert.Equal(t, "MF", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], ">orf_2 length=3 mass="))
	assert.Equal(t, "MKK", lines[3])
}

func TestFASTAWriter_Wraps(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		lines []int
	}{
		{"short", 10, []int{10}},
		{"exact width", FASTALineWidth, []int{FASTALineWidth}},
		{"one over", FASTALineWidth + 1, []int{FASTALineWidth, 1}},
		{"two and a half", 150, []int{FASTALineWidth, FASTALineWidth, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := "M" + strings.Repeat("A", tt.n-1)

			var buf bytes.Buffer
			w := NewFASTAWriter(&buf)
			require.NoError(t, w.Write(mustProtein(t, seq)))
			require.NoError(t, w.Flush())

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Len(t, lines, len(tt.lines)+1)

			var got []int
			var joined strings.Builder
			for _, l := range lines[1:] {
				got = append(got, len(l))
				joined.WriteString(l)
			}
			assert.Equal(t, tt.lines, got)
			assert.Equal(t, seq, joined.String())
		})
	}
}
