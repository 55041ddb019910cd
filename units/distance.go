package units

import "github.com/quantakit/quanta/quantity"

// DistanceDim is the phantom dimension for lengths. Canonical unit: meters.
type DistanceDim struct{}

// Family returns the Distance family.
func (DistanceDim) Family() *quantity.Family { return distanceFamily }

// Distance is a length quantity.
type Distance = quantity.Quantity[DistanceDim]

var (
	distanceFamily = quantity.MustFamily("Distance")

	Meter      = distanceFamily.MustCanonical("m", "meters")
	Millimeter = distanceFamily.MustLinear("mm", quantity.Milli, "millimeters")
	Centimeter = distanceFamily.MustLinear("cm", quantity.Centi, "centimeters")
	Kilometer  = distanceFamily.MustLinear("km", quantity.Kilo, "kilometers")
	Mile       = distanceFamily.MustLinear("mi", 1609.344, "miles")
	Foot       = distanceFamily.MustLinear("ft", 0.3048, "feet")
)

func init() {
	distanceFamily.MustDisplay(
		quantity.DisplayPair{Min: 1, Symbol: "km"},
		quantity.DisplayPair{Min: 1, Symbol: "m"},
		quantity.DisplayPair{Min: 1, Symbol: "cm"},
		quantity.DisplayPair{Min: 0, Symbol: "mm"},
	)
}

func Meters(x float64) Distance      { return quantity.Of[DistanceDim](Meter, x) }
func Millimeters(x float64) Distance { return quantity.Of[DistanceDim](Millimeter, x) }
func Centimeters(x float64) Distance { return quantity.Of[DistanceDim](Centimeter, x) }
func Kilometers(x float64) Distance  { return quantity.Of[DistanceDim](Kilometer, x) }
func Miles(x float64) Distance       { return quantity.Of[DistanceDim](Mile, x) }
func Feet(x float64) Distance        { return quantity.Of[DistanceDim](Foot, x) }
