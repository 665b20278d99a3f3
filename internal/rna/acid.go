package rna

// Acid holds the physicochemical constants of one amino acid.
type Acid struct {
	Code        byte   // one-letter code
	ThreeLetter string // e.g. "Ala"
	Mass        float64
	PK1         float64 // α-carboxyl
	PK2         float64 // α-amino
	// Hydrophobicity of the side chain.
	Hydrophobicity float64

	pk3        float64
	ionizable  bool
	extinction int
	absorbs    bool
}

// PK3 returns the side chain dissociation constant.
// ok is false for acids without an ionizable side chain.
func (a Acid) PK3() (pk float64, ok bool) {
	return a.pk3, a.ionizable
}

// Extinction returns the molar extinction coefficient at 280nm.
// Only W, Y and C absorb.
func (a Acid) Extinction() (coef int, ok bool) {
	return a.extinction, a.absorbs
}

func acid(code byte, three string, mass, pk1, pk2 float64, hydro float64) Acid {
	return Acid{Code: code, ThreeLetter: three, Mass: mass, PK1: pk1, PK2: pk2, Hydrophobicity: hydro}
}

func (a Acid) withPK3(pk float64) Acid {
	a.pk3, a.ionizable = pk, true
	return a
}

func (a Acid) withExtinction(coef int) Acid {
	a.extinction, a.absorbs = coef, true
	return a
}

// acidTable lists the 20 standard amino acids.
//
//	code three mass pK1 pK2 hydrophobicity [pK3] [extinction]
var acidTable = [...]Acid{
	acid('A', "Ala", 71.03700, 2.35, 9.870, 0.500),
	acid('R', "Arg", 156.1009, 1.82, 8.990, 1.810).withPK3(12.38),
	acid('N', "Asn", 114.0428, 2.14, 8.720, 0.850),
	acid('D', "Asp", 115.0268, 1.99, 9.900, 3.640).withPK3(3.9),
	acid('C', "Cys", 103.0131, 1.92, 10.70, -0.02).withPK3(8.3).withExtinction(125),
	acid('E', "Glu", 129.0424, 2.10, 9.470, 3.630).withPK3(4.07),
	acid('Q', "Gln", 128.0584, 2.17, 9.130, 0.770),
	acid('G', "Gly", 57.02140, 2.35, 9.780, 1.150),
	acid('H', "His", 137.0588, 1.80, 9.330, 2.330).withPK3(6.04),
	acid('I', "Ile", 113.0838, 2.32, 9.760, -1.12),
	acid('L', "Leu", 113.0838, 2.33, 9.740, -1.25),
	acid('K', "Lys", 128.0947, 2.16, 9.060, 2.800).withPK3(10.54),
	acid('M', "Met", 131.0403, 2.13, 9.280, -0.67),
	acid('F', "Phe", 147.0682, 2.20, 9.310, -1.71),
	acid('P', "Pro", 97.05260, 1.95, 10.64, 0.140),
	acid('S', "Ser", 87.03190, 2.19, 9.210, 0.460),
	acid('T', "Thr", 101.0475, 2.09, 9.100, 0.250),
	acid('W', "Trp", 186.0791, 2.46, 9.410, -2.09).withExtinction(5500),
	acid('Y', "Tyr", 163.0631, 2.20, 9.210, -0.71).withPK3(10.07).withExtinction(1490),
	acid('V', "Val", 99.06820, 2.39, 9.740, -0.46),
}

// acidByLetter maps 'A'..'Z' to an acidTable position plus one; zero means no acid.
var acidByLetter = func() [26]uint8 {
	var idx [26]uint8
	for i, a := range acidTable {
		idx[a.Code-'A'] = uint8(i + 1)
	}
	return idx
}()

// AcidByCode looks up an amino acid by its one-letter code, ignoring case.
func AcidByCode(code byte) (Acid, bool) {
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	if code < 'A' || code > 'Z' {
		return Acid{}, false
	}
	i := acidByLetter[code-'A']
	if i == 0 {
		return Acid{}, false
	}
	return acidTable[i-1], true
}

// Acids returns a copy of the constant table in table order.
func Acids() []Acid {
	out := make([]Acid, len(acidTable))
	copy(out, acidTable[:])
	return out
}

// MustAcid returns the constants for code and panics if code is not one of the
// 20 standard amino acids. It is meant for package-level constants.
func MustAcid(code byte) Acid {
	a, ok := AcidByCode(code)
	if !ok {
		panic("rna: unknown amino acid " + string(code))
	}
	return a
}
