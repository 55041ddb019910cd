package units

import "github.com/quantakit/quanta/quantity"

// TemperatureDim is the phantom dimension for absolute temperatures.
// Canonical unit: kelvin. Celsius and Fahrenheit are non-linear units
// with explicit converter pairs (offset scales cannot be a multiplier).
type TemperatureDim struct{}

// Family returns the Temperature family.
func (TemperatureDim) Family() *quantity.Family { return temperatureFamily }

// Temperature is an absolute temperature quantity.
type Temperature = quantity.Quantity[TemperatureDim]

var (
	temperatureFamily = quantity.MustFamily("Temperature")

	Kelvin = temperatureFamily.MustCanonical("K", "kelvin")

	Celsius = temperatureFamily.MustFunc("°C",
		func(c float64) float64 { return c + 273.15 },
		func(k float64) float64 { return k - 273.15 },
		"C", "celsius")

	Fahrenheit = temperatureFamily.MustFunc("°F",
		func(f float64) float64 { return (f + 459.67) * 5 / 9 },
		func(k float64) float64 { return k*9/5 - 459.67 },
		"F", "fahrenheit")
)

func Kelvins(x float64) Temperature { return quantity.Of[TemperatureDim](Kelvin, x) }

func DegreesCelsius(x float64) Temperature { return quantity.Of[TemperatureDim](Celsius, x) }

func DegreesFahrenheit(x float64) Temperature { return quantity.Of[TemperatureDim](Fahrenheit, x) }
