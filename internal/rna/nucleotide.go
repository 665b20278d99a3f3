// Package rna provides the nucleotide alphabet, the standard genetic code and
// the amino acid constant table.
package rna

// Nucleotide is a single RNA base.
type Nucleotide uint8

// RNA bases. The numeric values index the genetic code table.
const (
	G Nucleotide = iota
	U
	A
	C
)

// ParseNucleotide converts an input byte to a Nucleotide.
// Lower case letters are accepted and T is read as U.
func ParseNucleotide(b byte) (Nucleotide, bool) {
	switch b {
	case 'G', 'g':
		return G, true
	case 'U', 'u', 'T', 't':
		return U, true
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	default:
		return 0, false
	}
}

// String returns the RNA letter of the base.
func (n Nucleotide) String() string {
	switch n {
	case G:
		return "G"
	case U:
		return "U"
	case A:
		return "A"
	case C:
		return "C"
	default:
		return "?"
	}
}
