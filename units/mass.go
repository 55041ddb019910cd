package units

import "github.com/quantakit/quanta/quantity"

// MassDim is the phantom dimension for masses. Canonical unit: kilograms.
type MassDim struct{}

// Family returns the Mass family.
func (MassDim) Family() *quantity.Family { return massFamily }

// Mass is a mass quantity.
type Mass = quantity.Quantity[MassDim]

var (
	massFamily = quantity.MustFamily("Mass")

	Kilogram  = massFamily.MustCanonical("kg", "kilograms")
	Milligram = massFamily.MustLinear("mg", quantity.Micro, "milligrams")
	Gram      = massFamily.MustLinear("g", quantity.Milli, "grams")
	Tonne     = massFamily.MustLinear("t", quantity.Kilo, "tonnes")
)

func init() {
	massFamily.MustDisplay(
		quantity.DisplayPair{Min: 1, Symbol: "t"},
		quantity.DisplayPair{Min: 1, Symbol: "kg"},
		quantity.DisplayPair{Min: 1, Symbol: "g"},
		quantity.DisplayPair{Min: 0, Symbol: "mg"},
	)
}

func Kilograms(x float64) Mass  { return quantity.Of[MassDim](Kilogram, x) }
func Milligrams(x float64) Mass { return quantity.Of[MassDim](Milligram, x) }
func Grams(x float64) Mass      { return quantity.Of[MassDim](Gram, x) }
func Tonnes(x float64) Mass     { return quantity.Of[MassDim](Tonne, x) }
