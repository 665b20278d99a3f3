package protein

import (
	"errors"
	"fmt"

	"github.com/inodb/vibe-orf/internal/rna"
)

// Errors returned when a sequence is not a complete reading frame.
var (
	ErrEmpty       = errors.New("protein is empty")
	ErrNoStart     = errors.New("protein does not begin with the start codon")
	ErrStopResidue = errors.New("protein contains a stop codon")
)

// Protein is the translation of one complete open reading frame: it starts
// with the start codon and excludes the terminating stop codon.
//
// A Protein is immutable once built, so a single *Protein may be shared by any
// number of readers.
type Protein struct {
	seq  *AminoString
	text string
}

// New builds a Protein from a copy of codons.
func New(codons []rna.Codon) (*Protein, error) {
	return FromAminoString(NewAminoString(codons))
}

// FromAminoString validates s and wraps it. The Protein takes ownership of s;
// callers must not modify it afterwards.
func FromAminoString(s *AminoString) (*Protein, error) {
	if s.IsEmpty() {
		return nil, ErrEmpty
	}
	if !s.First().IsStart() {
		return nil, ErrNoStart
	}
	for i, c := range s.codons {
		if c.IsStop() {
			return nil, fmt.Errorf("residue %d: %w", i+1, ErrStopResidue)
		}
	}
	return &Protein{seq: s, text: s.String()}, nil
}

// Parse builds a Protein from its one-letter rendering, e.g. "MF".
func Parse(text string) (*Protein, error) {
	s := &AminoString{codons: make([]rna.Codon, 0, len(text))}
	for i := 0; i < len(text); i++ {
		c, ok := rna.CodonFromCode(text[i])
		if !ok {
			return nil, fmt.Errorf("parse protein: position %d: unknown amino acid %q", i+1, text[i])
		}
		s.Push(c)
	}
	p, err := FromAminoString(s)
	if err != nil {
		return nil, fmt.Errorf("parse protein: %w", err)
	}
	return p, nil
}

// String returns the one-letter rendering.
func (p *Protein) String() string { return p.text }

// Len returns the number of residues.
func (p *Protein) Len() int { return p.seq.Len() }

// Codons returns a copy of the residues.
func (p *Protein) Codons() []rna.Codon { return p.seq.Codons() }

// Slice returns a copy of part of the protein as a plain AminoString.
func (p *Protein) Slice(start, length int) *AminoString { return p.seq.Slice(start, length) }

// AminoString returns a copy of the underlying sequence.
func (p *Protein) AminoString() *AminoString { return p.seq.Clone() }

// Mass returns the monoisotopic mass in Daltons.
func (p *Protein) Mass() float64 { return p.seq.Mass() }

// NetCharge returns the net charge at pH.
func (p *Protein) NetCharge(pH float64) float64 { return p.seq.NetCharge(pH) }

// NeutralCharge returns the net charge at pH 7.
func (p *Protein) NeutralCharge() float64 { return p.seq.NeutralCharge() }

// IsoelectricPoint returns the pI, see AminoString.IsoelectricPoint.
func (p *Protein) IsoelectricPoint() float64 { return p.seq.IsoelectricPoint() }

// Extinction returns the molar extinction coefficient.
func (p *Protein) Extinction() int { return p.seq.Extinction() }

// Hydrophobicity returns the hydrophobicity sum.
func (p *Protein) Hydrophobicity() float64 { return p.seq.Hydrophobicity(p.seq.Len()) }

// Sample evaluates prop at n evenly spaced prefixes, see AminoString.Sample.
func (p *Protein) Sample(prop Property, n int) []float64 { return p.seq.Sample(prop, n) }
