package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperty(t *testing.T) {
	for _, p := range Properties {
		got, err := ParseProperty(p.Key())
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.NotEmpty(t, p.Name())
		assert.NotEmpty(t, p.Unit())
	}

	got, err := ParseProperty(" PI ")
	require.NoError(t, err)
	assert.Equal(t, PropertyIsoelectricPoint, got)

	_, err = ParseProperty("colour")
	assert.Error(t, err)
}

func TestProperty_Evaluate(t *testing.T) {
	s := fromText(t, "MCCWKD")

	assert.Equal(t, s.Mass(), PropertyMass.Evaluate(s, 1))
	assert.Equal(t, s.NeutralCharge(), PropertyNetCharge.Evaluate(s, 1))
	assert.Equal(t, s.IsoelectricPoint(), PropertyIsoelectricPoint.Evaluate(s, 1))
	assert.Equal(t, float64(s.Extinction()), PropertyExtinction.Evaluate(s, 1))
	assert.Equal(t, s.Hydrophobicity(0), PropertyHydrophobicity.Evaluate(s, 0.5))
}

func TestSample(t *testing.T) {
	p, err := Parse("MKRHDECYWAGSTPLIVNQF")
	require.NoError(t, err)

	for _, prop := range Properties {
		t.Run(prop.Key(), func(t *testing.T) {
			samples := p.Sample(prop, DefaultSamples)
			require.Len(t, samples, DefaultSamples)

			assert.Equal(t, prop.Evaluate(p.AminoString(), 1), samples[DefaultSamples-1])
			assert.Equal(t, prop.Evaluate(p.Slice(0, 1), 1), samples[0])
		})
	}
}

func TestSample_PrefixSpacing(t *testing.T) {
	p, err := Parse("MKRHDECYWA") // 10 residues
	require.NoError(t, err)

	samples := p.Sample(PropertyMass, 5)
	require.Len(t, samples, 5)

	// unit = 2: prefixes of 1, 3, 5, 7 residues, then the whole protein.
	for i, n := range []int{1, 3, 5, 7} {
		assert.InDelta(t, p.Slice(0, n).Mass(), samples[i], 1e-9, "sample %d", i)
	}
	assert.InDelta(t, p.Mass(), samples[4], 1e-9)

	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i], samples[i-1])
	}
}

func TestSample_Degenerate(t *testing.T) {
	p, err := Parse("M")
	require.NoError(t, err)

	assert.Nil(t, p.Sample(PropertyMass, 0))

	samples := p.Sample(PropertyMass, 3)
	require.Len(t, samples, 3)
	for _, v := range samples {
		assert.InDelta(t, p.Mass(), v, 1e-9)
	}
}

func TestSampleLength(t *testing.T) {
	assert.Equal(t, 1, SampleLength(10, 5, 0))
	assert.Equal(t, 3, SampleLength(10, 5, 1))
	assert.Equal(t, 7, SampleLength(10, 5, 3))
	assert.Equal(t, 10, SampleLength(10, 5, 4))

	// More samples than residues never exceeds the sequence.
	for i := range 100 {
		l := SampleLength(3, 100, i)
		assert.GreaterOrEqual(t, l, 1)
		assert.LessOrEqual(t, l, 3)
	}
}
