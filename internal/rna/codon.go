package rna

import "fmt"

// Codon is the translation of a nucleotide triplet: the one-letter code of
// the encoded amino acid, or Stop.
type Codon byte

const (
	// Stop terminates an open reading frame.
	Stop Codon = '*'
	// Start opens a reading frame. It also encodes methionine.
	Start Codon = 'M'
)

// geneticCode is the standard genetic code indexed by a<<4 | b<<2 | c, with
// bases ordered G, U, A, C.
const geneticCode = "" +
	"GGGGVVVVEDEDAAAA" + // Gxx
	"WC*CLFLF*Y*YSSSS" + // Uxx
	"RSRSMIIIKNKNTTTT" + // Axx
	"RRRRLLLLQHQHPPPP"   // Cxx

// Translate returns the codon encoded by three sequential bases.
func Translate(a, b, c Nucleotide) Codon {
	return Codon(geneticCode[uint8(a&3)<<4|uint8(b&3)<<2|uint8(c&3)])
}

// ParseCodon translates a three letter nucleotide string such as "AUG".
func ParseCodon(s string) (Codon, error) {
	if len(s) != 3 {
		return 0, fmt.Errorf("codon %q: want 3 bases, got %d", s, len(s))
	}
	var n [3]Nucleotide
	for i := 0; i < 3; i++ {
		v, ok := ParseNucleotide(s[i])
		if !ok {
			return 0, fmt.Errorf("codon %q: invalid base %q", s, s[i])
		}
		n[i] = v
	}
	return Translate(n[0], n[1], n[2]), nil
}

// CodonFromCode returns the codon value for a one-letter amino acid code
// (either case) or '*' for Stop.
func CodonFromCode(code byte) (Codon, bool) {
	if code == byte(Stop) {
		return Stop, true
	}
	a, ok := AcidByCode(code)
	if !ok {
		return 0, false
	}
	return Codon(a.Code), true
}

// IsStart reports whether c is the start signal.
func (c Codon) IsStart() bool { return c == Start }

// IsStop reports whether c is the stop signal.
func (c Codon) IsStop() bool { return c == Stop }

// Acid returns the constants of the encoded amino acid.
// ok is false exactly when c is Stop.
func (c Codon) Acid() (Acid, bool) {
	if c == Stop {
		return Acid{}, false
	}
	return AcidByCode(byte(c))
}

// Code returns the one-letter code, '*' for Stop.
func (c Codon) Code() byte { return byte(c) }

func (c Codon) String() string { return string(rune(c)) }
