package units

import "github.com/quantakit/quanta/quantity"

// VelocityDim is the phantom dimension for speeds. Canonical unit: m/s.
type VelocityDim struct{}

// Family returns the Velocity family.
func (VelocityDim) Family() *quantity.Family { return velocityFamily }

// Velocity is a speed quantity, the time-derivative of Distance.
type Velocity = quantity.Quantity[VelocityDim]

// AccelerationDim is the phantom dimension for accelerations.
// Canonical unit: m/s².
type AccelerationDim struct{}

// Family returns the Acceleration family.
func (AccelerationDim) Family() *quantity.Family { return accelerationFamily }

// Acceleration is the time-derivative of Velocity.
type Acceleration = quantity.Quantity[AccelerationDim]

// JerkDim is the phantom dimension for jerk. Canonical unit: m/s³.
type JerkDim struct{}

// Family returns the Jerk family.
func (JerkDim) Family() *quantity.Family { return jerkFamily }

// Jerk is the time-derivative of Acceleration.
type Jerk = quantity.Quantity[JerkDim]

// MomentumDim is the phantom dimension for momentum.
// Canonical unit: kg·m/s.
type MomentumDim struct{}

// Family returns the Momentum family.
func (MomentumDim) Family() *quantity.Family { return momentumFamily }

// Momentum is Mass × Velocity.
type Momentum = quantity.Quantity[MomentumDim]

// ForceDim is the phantom dimension for force. Canonical unit: newtons.
type ForceDim struct{}

// Family returns the Force family.
func (ForceDim) Family() *quantity.Family { return forceFamily }

// Force is Mass × Acceleration.
type Force = quantity.Quantity[ForceDim]

var (
	velocityFamily = quantity.MustFamily("Velocity")

	MeterPerSecond   = velocityFamily.MustCanonical("m/s", "mps")
	KilometerPerHour = velocityFamily.MustLinear("km/h", 1.0/3.6, "kph")
	MilePerHour      = velocityFamily.MustLinear("mph", 0.44704)

	accelerationFamily = quantity.MustFamily("Acceleration")

	MeterPerSecondSquared = accelerationFamily.MustCanonical("m/s²", "m/s^2")

	jerkFamily = quantity.MustFamily("Jerk")

	MeterPerSecondCubed = jerkFamily.MustCanonical("m/s³", "m/s^3")

	momentumFamily = quantity.MustFamily("Momentum")

	KilogramMeterPerSecond = momentumFamily.MustCanonical("kg·m/s", "kg.m/s")

	forceFamily = quantity.MustFamily("Force")

	Newton     = forceFamily.MustCanonical("N", "newtons")
	Kilonewton = forceFamily.MustLinear("kN", quantity.Kilo, "kilonewtons")
)

func MetersPerSecond(x float64) Velocity   { return quantity.Of[VelocityDim](MeterPerSecond, x) }
func KilometersPerHour(x float64) Velocity { return quantity.Of[VelocityDim](KilometerPerHour, x) }
func MilesPerHour(x float64) Velocity      { return quantity.Of[VelocityDim](MilePerHour, x) }

func MetersPerSecondSquared(x float64) Acceleration {
	return quantity.Of[AccelerationDim](MeterPerSecondSquared, x)
}

func MetersPerSecondCubed(x float64) Jerk {
	return quantity.Of[JerkDim](MeterPerSecondCubed, x)
}

func KilogramMetersPerSecond(x float64) Momentum {
	return quantity.Of[MomentumDim](KilogramMeterPerSecond, x)
}

func Newtons(x float64) Force     { return quantity.Of[ForceDim](Newton, x) }
func Kilonewtons(x float64) Force { return quantity.Of[ForceDim](Kilonewton, x) }
