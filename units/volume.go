package units

import "github.com/quantakit/quanta/quantity"

// VolumeDim is the phantom dimension for volumes. Canonical unit: liters.
type VolumeDim struct{}

// Family returns the Volume family.
func (VolumeDim) Family() *quantity.Family { return volumeFamily }

// Volume is a volume quantity.
type Volume = quantity.Quantity[VolumeDim]

var (
	volumeFamily = quantity.MustFamily("Volume")

	Liter      = volumeFamily.MustCanonical("L", "l", "liters")
	Milliliter = volumeFamily.MustLinear("mL", quantity.Milli, "ml", "milliliters")
	Centiliter = volumeFamily.MustLinear("cL", quantity.Centi, "cl", "centiliters")
	CubicMeter = volumeFamily.MustLinear("m³", quantity.Kilo, "m^3", "cubic-meters")
)

func Liters(x float64) Volume      { return quantity.Of[VolumeDim](Liter, x) }
func Milliliters(x float64) Volume { return quantity.Of[VolumeDim](Milliliter, x) }
func CubicMeters(x float64) Volume { return quantity.Of[VolumeDim](CubicMeter, x) }
