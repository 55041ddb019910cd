package units

import "github.com/quantakit/quanta/quantity"

// Declared cross-family relationships. Each declaration registers its full
// triangle with the engine's relationship table; nothing here is inferred.
//
// The kinematic chain and Energy/Power are time-derivative pairings.
// Energy's constant 3600 expresses canonical Time (seconds) in hours so
// that watt-hours over time yield watts.
var (
	DistanceOverTime     quantity.TimeDerivative[DistanceDim, VelocityDim, TimeDim]
	VelocityOverTime     quantity.TimeDerivative[VelocityDim, AccelerationDim, TimeDim]
	AccelerationOverTime quantity.TimeDerivative[AccelerationDim, JerkDim, TimeDim]
	EnergyOverTime       quantity.TimeDerivative[EnergyDim, PowerDim, TimeDim]

	MassTimesVelocity     quantity.Product[MassDim, VelocityDim, MomentumDim]
	MassTimesAcceleration quantity.Product[MassDim, AccelerationDim, ForceDim]
)

// Declarations read the family vars through the phantom types, which
// package initialization order does not track as a dependency. Assigning
// in init keeps them after every family var regardless of filename order.
func init() {
	DistanceOverTime = quantity.NewTimeDerivative[DistanceDim, VelocityDim, TimeDim](1)
	VelocityOverTime = quantity.NewTimeDerivative[VelocityDim, AccelerationDim, TimeDim](1)
	AccelerationOverTime = quantity.NewTimeDerivative[AccelerationDim, JerkDim, TimeDim](1)
	EnergyOverTime = quantity.NewTimeDerivative[EnergyDim, PowerDim, TimeDim](3600)

	MassTimesVelocity = quantity.NewProduct[MassDim, VelocityDim, MomentumDim](1)
	MassTimesAcceleration = quantity.NewProduct[MassDim, AccelerationDim, ForceDim](1)
}

// Speed computes Distance / Time.
func Speed(d Distance, t Time) Velocity { return DistanceOverTime.Rate(d, t) }

// TravelDistance computes Velocity * Time.
func TravelDistance(v Velocity, t Time) Distance { return DistanceOverTime.Accumulate(v, t) }

// TravelTime computes Distance / Velocity.
func TravelTime(d Distance, v Velocity) Time { return DistanceOverTime.Over(d, v) }

// AccelerationOf computes Velocity / Time.
func AccelerationOf(v Velocity, t Time) Acceleration { return VelocityOverTime.Rate(v, t) }

// VelocityGain computes Acceleration * Time.
func VelocityGain(a Acceleration, t Time) Velocity { return VelocityOverTime.Accumulate(a, t) }

// JerkOf computes Acceleration / Time.
func JerkOf(a Acceleration, t Time) Jerk { return AccelerationOverTime.Rate(a, t) }

// Draw computes Energy / Time, the average power over a duration.
func Draw(e Energy, t Time) Power { return EnergyOverTime.Rate(e, t) }

// EnergyUsed computes Power * Time.
func EnergyUsed(p Power, t Time) Energy { return EnergyOverTime.Accumulate(p, t) }

// MomentumOf computes Mass * Velocity.
func MomentumOf(m Mass, v Velocity) Momentum { return MassTimesVelocity.Mul(m, v) }

// VelocityFromMomentum computes Momentum / Mass.
func VelocityFromMomentum(p Momentum, m Mass) Velocity { return MassTimesVelocity.DivA(p, m) }

// ForceOf computes Mass * Acceleration.
func ForceOf(m Mass, a Acceleration) Force { return MassTimesAcceleration.Mul(m, a) }

// AccelerationFromForce computes Force / Mass.
func AccelerationFromForce(f Force, m Mass) Acceleration { return MassTimesAcceleration.DivA(f, m) }
