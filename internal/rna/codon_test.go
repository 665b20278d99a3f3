package rna

import "testing"

// standardCode is the DNA form of the standard genetic code.
var standardCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

func TestTranslate_AllCodons(t *testing.T) {
	if len(standardCode) != 64 {
		t.Fatalf("reference table has %d entries", len(standardCode))
	}
	for codon, want := range standardCode {
		got, err := ParseCodon(codon)
		if err != nil {
			t.Fatalf("ParseCodon(%q): %v", codon, err)
		}
		if got.Code() != want {
			t.Errorf("ParseCodon(%q) = %c, want %c", codon, got.Code(), want)
		}
	}
}

func TestTranslate_StartStop(t *testing.T) {
	tests := []struct {
		name  string
		codon string
		start bool
		stop  bool
	}{
		{"AUG is start", "AUG", true, false},
		{"ATG DNA alias", "ATG", true, false},
		{"lowercase aug", "aug", true, false},
		{"UAA stop", "UAA", false, true},
		{"UAG stop", "UAG", false, true},
		{"UGA stop", "UGA", false, true},
		{"UUU neither", "UUU", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCodon(tt.codon)
			if err != nil {
				t.Fatalf("ParseCodon(%q): %v", tt.codon, err)
			}
			if c.IsStart() != tt.start {
				t.Errorf("IsStart(%q) = %v, want %v", tt.codon, c.IsStart(), tt.start)
			}
			if c.IsStop() != tt.stop {
				t.Errorf("IsStop(%q) = %v, want %v", tt.codon, c.IsStop(), tt.stop)
			}
		})
	}
}

func TestParseCodon_Invalid(t *testing.T) {
	for _, s := range []string{"", "AU", "AUGG", "AXG", "A G"} {
		if _, err := ParseCodon(s); err == nil {
			t.Errorf("ParseCodon(%q) succeeded, want error", s)
		}
	}
}

func TestCodonAcid(t *testing.T) {
	if _, ok := Stop.Acid(); ok {
		t.Error("Stop.Acid() returned constants")
	}
	for _, b := range []Nucleotide{G, U, A, C} {
		for _, m := range []Nucleotide{G, U, A, C} {
			for _, e := range []Nucleotide{G, U, A, C} {
				c := Translate(b, m, e)
				a, ok := c.Acid()
				if ok == c.IsStop() {
					t.Errorf("%v%v%v: Acid() ok=%v for codon %v", b, m, e, ok, c)
				}
				if ok && a.Code != c.Code() {
					t.Errorf("%v%v%v: Acid().Code = %c, want %c", b, m, e, a.Code, c.Code())
				}
			}
		}
	}
}

func TestCodonFromCode(t *testing.T) {
	tests := []struct {
		code byte
		want Codon
		ok   bool
	}{
		{'M', Start, true},
		{'w', Codon('W'), true},
		{'*', Stop, true},
		{'B', 0, false},
		{'1', 0, false},
	}
	for _, tt := range tests {
		got, ok := CodonFromCode(tt.code)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CodonFromCode(%c) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseNucleotide(t *testing.T) {
	tests := []struct {
		in   byte
		want Nucleotide
		ok   bool
	}{
		{'G', G, true}, {'g', G, true},
		{'U', U, true}, {'u', U, true},
		{'T', U, true}, {'t', U, true},
		{'A', A, true}, {'a', A, true},
		{'C', C, true}, {'c', C, true},
		{'N', 0, false}, {' ', 0, false}, {'X', 0, false}, {'\n', 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNucleotide(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseNucleotide(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
