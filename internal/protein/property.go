package protein

import (
	"fmt"
	"strings"
)

// DefaultSamples is the number of chart points per property curve.
const DefaultSamples = 100

// Property is one of the physicochemical properties that can be plotted
// along a protein.
type Property int

const (
	PropertyMass Property = iota
	PropertyNetCharge
	PropertyIsoelectricPoint
	PropertyExtinction
	PropertyHydrophobicity
)

// Properties lists every property in display order.
var Properties = []Property{
	PropertyMass,
	PropertyNetCharge,
	PropertyIsoelectricPoint,
	PropertyExtinction,
	PropertyHydrophobicity,
}

var propertyInfo = map[Property]struct {
	name, unit, key string
	negative        bool
}{
	PropertyMass:             {"Mass", "Da", "mass", false},
	PropertyNetCharge:        {"Net charge", "at pH 7", "charge", true},
	PropertyIsoelectricPoint: {"Isoelectric point", "pH", "pi", false},
	PropertyExtinction:       {"Extinction coefficient", "M⁻¹·cm⁻¹", "extinction", false},
	PropertyHydrophobicity:   {"Hydrophobicity index", "kcal·mol⁻¹", "hydrophobicity", true},
}

// ParseProperty resolves a short property name such as "pi" or "mass".
func ParseProperty(name string) (Property, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Properties {
		if propertyInfo[p].key == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", name)
}

// Name returns the display name.
func (p Property) Name() string { return propertyInfo[p].name }

// Unit returns the display unit.
func (p Property) Unit() string { return propertyInfo[p].unit }

// Key returns the short name accepted by ParseProperty.
func (p Property) Key() string { return propertyInfo[p].key }

// ShowNegative reports whether the property can take negative values.
func (p Property) ShowNegative() bool { return propertyInfo[p].negative }

func (p Property) String() string {
	if info, ok := propertyInfo[p]; ok {
		return info.key
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// Evaluate computes the property of s. x is the relative sample position in
// [0, 1]; only hydrophobicity receives it, as a residue index.
func (p Property) Evaluate(s *AminoString, x float64) float64 {
	switch p {
	case PropertyMass:
		return s.Mass()
	case PropertyNetCharge:
		return s.NeutralCharge()
	case PropertyIsoelectricPoint:
		return s.IsoelectricPoint()
	case PropertyExtinction:
		return float64(s.Extinction())
	case PropertyHydrophobicity:
		return s.Hydrophobicity(int(x * float64(s.Len())))
	default:
		return 0
	}
}

// Sample evaluates prop at n evenly spaced prefix lengths of s. Sample i is
// taken over the first SampleLength(s.Len(), n, i) residues.
func (s *AminoString) Sample(prop Property, n int) []float64 {
	if n <= 0 {
		return nil
	}
	samples := make([]float64, n)
	for i := range n - 1 {
		prefix := s.Slice(0, SampleLength(s.Len(), n, i))
		samples[i] = prop.Evaluate(prefix, 1)
	}
	samples[n-1] = prop.Evaluate(s, 1)
	return samples
}

// SampleLength returns the prefix length behind sample i of n over a
// sequence of total residues: 1+floor(i*total/n), with the last sample
// always covering the whole sequence.
func SampleLength(total, n, i int) int {
	if i >= n-1 {
		return total
	}
	return min(total, 1+int(float64(total)/float64(n)*float64(i)))
}
