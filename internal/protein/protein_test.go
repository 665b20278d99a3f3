package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-orf/internal/rna"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]rna.Codon{'F', 'M'})
	assert.ErrorIs(t, err, ErrNoStart)

	_, err = New([]rna.Codon{rna.Start, 'F', rna.Stop})
	assert.ErrorIs(t, err, ErrStopResidue)

	p, err := New([]rna.Codon{rna.Start, 'F'})
	require.NoError(t, err)
	assert.Equal(t, "MF", p.String())
	assert.Equal(t, 2, p.Len())
}

func TestNew_CopiesInput(t *testing.T) {
	codons := []rna.Codon{rna.Start, 'F'}
	p, err := New(codons)
	require.NoError(t, err)

	codons[1] = 'W'
	assert.Equal(t, "MF", p.String())

	got := p.Codons()
	got[1] = 'W'
	assert.Equal(t, "MF", p.String())
}

func TestParse(t *testing.T) {
	p, err := Parse("mwyc")
	require.NoError(t, err)
	assert.Equal(t, "MWYC", p.String())

	_, err = Parse("MXF")
	assert.Error(t, err)

	_, err = Parse("M*F")
	assert.ErrorIs(t, err, ErrStopResidue)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestProtein_RenderIsConcatenation(t *testing.T) {
	p, err := Parse("MKRHDE")
	require.NoError(t, err)

	var want []byte
	for _, c := range p.Codons() {
		want = append(want, c.Code())
	}
	assert.Equal(t, string(want), p.String())
	assert.Equal(t, p.String(), p.String())
}

func TestProtein_SingleResidueMass(t *testing.T) {
	p, err := Parse("M")
	require.NoError(t, err)
	assert.InDelta(t, rna.MustAcid('M').Mass+WaterMass, p.Mass(), 1e-9)
}

func TestProtein_Properties(t *testing.T) {
	p, err := Parse("MCWYKD")
	require.NoError(t, err)
	s := p.AminoString()

	assert.Equal(t, s.Mass(), p.Mass())
	assert.Equal(t, s.NeutralCharge(), p.NeutralCharge())
	assert.Equal(t, s.IsoelectricPoint(), p.IsoelectricPoint())
	assert.Equal(t, s.Extinction(), p.Extinction())
	assert.Equal(t, s.Hydrophobicity(0), p.Hydrophobicity())
	assert.Equal(t, "CWY", p.Slice(1, 3).String())
}
