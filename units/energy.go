package units

import "github.com/quantakit/quanta/quantity"

// EnergyDim is the phantom dimension for energy. Canonical unit:
// watt-hours, which keeps the Energy/Time/Power triangle aligned with
// Power's canonical watts through an hours normalization.
type EnergyDim struct{}

// Family returns the Energy family.
func (EnergyDim) Family() *quantity.Family { return energyFamily }

// Energy is an energy quantity.
type Energy = quantity.Quantity[EnergyDim]

// PowerDim is the phantom dimension for power. Canonical unit: watts.
type PowerDim struct{}

// Family returns the Power family.
func (PowerDim) Family() *quantity.Family { return powerFamily }

// Power is the time-derivative of Energy.
type Power = quantity.Quantity[PowerDim]

var (
	energyFamily = quantity.MustFamily("Energy")

	WattHour     = energyFamily.MustCanonical("Wh", "watt-hours")
	Joule        = energyFamily.MustLinear("J", 1.0/3600, "joules")
	KilowattHour = energyFamily.MustLinear("kWh", quantity.Kilo, "kilowatt-hours")
	MegawattHour = energyFamily.MustLinear("MWh", quantity.Mega, "megawatt-hours")

	powerFamily = quantity.MustFamily("Power")

	Watt       = powerFamily.MustCanonical("W", "watts")
	Kilowatt   = powerFamily.MustLinear("kW", quantity.Kilo, "kilowatts")
	Megawatt   = powerFamily.MustLinear("MW", quantity.Mega, "megawatts")
	Horsepower = powerFamily.MustLinear("hp", 745.699872, "horsepower")
)

func init() {
	energyFamily.MustDisplay(
		quantity.DisplayPair{Min: 1, Symbol: "MWh"},
		quantity.DisplayPair{Min: 1, Symbol: "kWh"},
		quantity.DisplayPair{Min: 0, Symbol: "Wh"},
	)
	powerFamily.MustDisplay(
		quantity.DisplayPair{Min: 1, Symbol: "MW"},
		quantity.DisplayPair{Min: 1, Symbol: "kW"},
		quantity.DisplayPair{Min: 0, Symbol: "W"},
	)
}

func WattHours(x float64) Energy     { return quantity.Of[EnergyDim](WattHour, x) }
func Joules(x float64) Energy        { return quantity.Of[EnergyDim](Joule, x) }
func KilowattHours(x float64) Energy { return quantity.Of[EnergyDim](KilowattHour, x) }
func MegawattHours(x float64) Energy { return quantity.Of[EnergyDim](MegawattHour, x) }

func Watts(x float64) Power     { return quantity.Of[PowerDim](Watt, x) }
func Kilowatts(x float64) Power { return quantity.Of[PowerDim](Kilowatt, x) }
func Megawatts(x float64) Power { return quantity.Of[PowerDim](Megawatt, x) }
