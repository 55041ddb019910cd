package quantity

// Metric prefix multipliers shared by unit declarations.
// Used as the factor argument of AddLinear / MustLinear.
const (
	Pico  = 1e-12
	Nano  = 1e-9
	Micro = 1e-6
	Milli = 1e-3
	Centi = 1e-2
	Deci  = 1e-1
	Deca  = 1e1
	Hecto = 1e2
	Kilo  = 1e3
	Mega  = 1e6
	Giga  = 1e9
	Tera  = 1e12
)
