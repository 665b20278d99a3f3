// Package protein provides amino acid sequences and their physicochemical
// properties.
package protein

import (
	"math"
	"sort"
	"strings"

	"github.com/inodb/vibe-orf/internal/rna"
)

// WaterMass is added once to the residue masses of a chain.
const WaterMass = 18.0105

// Isoelectric point search range: pH 0.00 to 13.99 in 0.01 steps.
const (
	phSteps = 1400
	phStep  = 0.01
)

// hydrophobicityBase seeds the running hydrophobicity sum.
const hydrophobicityBase = 7.9

// Side chain constants used by the charge and extinction formulas.
var (
	pkD = sideChainPK('D')
	pkE = sideChainPK('E')
	pkC = sideChainPK('C')
	pkY = sideChainPK('Y')
	pkK = sideChainPK('K')
	pkR = sideChainPK('R')
	pkH = sideChainPK('H')

	extW = extinctionOf('W')
	extY = extinctionOf('Y')
	extC = extinctionOf('C')
)

func sideChainPK(code byte) float64 {
	pk, _ := rna.MustAcid(code).PK3()
	return pk
}

func extinctionOf(code byte) int {
	coef, _ := rna.MustAcid(code).Extinction()
	return coef
}

// counts tallies the residues with ionizable or absorbing side chains.
type counts struct {
	c, w, y, d, e, k, r, h int
}

func (n *counts) add(c rna.Codon) {
	switch c {
	case 'C':
		n.c++
	case 'W':
		n.w++
	case 'Y':
		n.y++
	case 'D':
		n.d++
	case 'E':
		n.e++
	case 'K':
		n.k++
	case 'R':
		n.r++
	case 'H':
		n.h++
	}
}

// AminoString is an ordered sequence of codons. It keeps a running count of
// ionizable residues so that property evaluation never rescans the sequence
// for them.
type AminoString struct {
	codons []rna.Codon
	counts counts
}

// NewAminoString builds an AminoString from a copy of codons.
func NewAminoString(codons []rna.Codon) *AminoString {
	s := &AminoString{codons: make([]rna.Codon, 0, len(codons))}
	for _, c := range codons {
		s.Push(c)
	}
	return s
}

// Push appends a codon.
func (s *AminoString) Push(c rna.Codon) {
	s.counts.add(c)
	s.codons = append(s.codons, c)
}

// Slice returns a copy of at most length codons starting at start.
// Out of range bounds are clamped.
func (s *AminoString) Slice(start, length int) *AminoString {
	start = min(max(start, 0), len(s.codons))
	end := start + min(max(length, 0), len(s.codons)-start)
	return NewAminoString(s.codons[start:end])
}

// Clone returns an independent copy.
func (s *AminoString) Clone() *AminoString {
	return &AminoString{
		codons: append([]rna.Codon(nil), s.codons...),
		counts: s.counts,
	}
}

// Clear empties the sequence, keeping its capacity.
func (s *AminoString) Clear() {
	s.codons = s.codons[:0]
	s.counts = counts{}
}

// Len returns the number of codons.
func (s *AminoString) Len() int { return len(s.codons) }

// IsEmpty reports whether the sequence has no codons.
func (s *AminoString) IsEmpty() bool { return len(s.codons) == 0 }

// Codons returns a copy of the underlying codons.
func (s *AminoString) Codons() []rna.Codon {
	return append([]rna.Codon(nil), s.codons...)
}

// First returns the first codon. It panics on an empty sequence.
func (s *AminoString) First() rna.Codon { return s.codons[0] }

// Last returns the last codon. It panics on an empty sequence.
func (s *AminoString) Last() rna.Codon { return s.codons[len(s.codons)-1] }

// String renders the one-letter codes in order.
func (s *AminoString) String() string {
	var b strings.Builder
	b.Grow(len(s.codons))
	for _, c := range s.codons {
		b.WriteByte(c.Code())
	}
	return b.String()
}

// Mass returns the sum of residue masses plus one water molecule.
func (s *AminoString) Mass() float64 {
	mass := 0.0
	for _, c := range s.codons {
		if a, ok := c.Acid(); ok {
			mass += a.Mass
		}
	}
	return mass + WaterMass
}

// NetCharge returns the net charge at the given pH, summing
// Henderson-Hasselbalch terms for the termini and each ionizable residue.
// An empty sequence has no charge.
func (s *AminoString) NetCharge(pH float64) float64 {
	if len(s.codons) == 0 {
		return 0
	}

	type term struct {
		count int
		pk    float64
	}

	acids := [5]term{
		{0, 0},
		{s.counts.d, pkD},
		{s.counts.e, pkE},
		{s.counts.c, pkC},
		{s.counts.y, pkY},
	}
	if first, ok := s.First().Acid(); ok {
		acids[0] = term{1, first.PK1}
	}

	bases := [4]term{
		{0, 0},
		{s.counts.k, pkK},
		{s.counts.r, pkR},
		{s.counts.h, pkH},
	}
	if last, ok := s.Last().Acid(); ok {
		bases[0] = term{1, last.PK2}
	}

	charge := 0.0
	for _, t := range acids {
		if t.count > 0 {
			charge -= float64(t.count) / (1 + math.Pow(10, t.pk-pH))
		}
	}
	for _, t := range bases {
		if t.count > 0 {
			charge += float64(t.count) / (1 + math.Pow(10, pH-t.pk))
		}
	}
	return charge
}

// NeutralCharge returns the net charge at pH 7.
func (s *AminoString) NeutralCharge() float64 {
	return s.NetCharge(7.0)
}

// IsoelectricPoint returns the smallest pH on the 0.01 grid in [0, 13.99] at
// which the net charge is no longer positive, or 13.99 if there is none.
// The net charge falls monotonically with pH, so the grid is bisected.
func (s *AminoString) IsoelectricPoint() float64 {
	i := sort.Search(phSteps, func(i int) bool {
		return s.NetCharge(gridPH(i)) <= 0
	})
	if i == phSteps {
		i = phSteps - 1
	}
	return gridPH(i)
}

func gridPH(i int) float64 {
	return float64(i) * phStep
}

// Extinction returns the molar extinction coefficient at 280nm. Cysteines
// only contribute as disulfide pairs.
func (s *AminoString) Extinction() int {
	cystines := s.counts.c / 2
	return s.counts.w*extW + s.counts.y*extY + cystines*extC
}

// Hydrophobicity returns the running hydrophobicity sum of the whole
// sequence. The sample index is accepted for chart sampling and ignored.
func (s *AminoString) Hydrophobicity(_ int) float64 {
	h := hydrophobicityBase
	for _, c := range s.codons {
		if a, ok := c.Acid(); ok {
			h += a.Hydrophobicity
		}
	}
	return h
}
