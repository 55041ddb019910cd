package quantity

import "errors"

// ErrEmptySequence is returned by aggregate helpers given no quantities.
var ErrEmptySequence = errors.New("empty quantity sequence")

// Arith adapts one family to generic numeric algorithms. It is constructed
// once per call site with an explicit reference unit, so there is no
// ambiguity about which unit backs One: One is the reference unit's unit
// value, Zero the zero quantity. All arithmetic runs on canonical values,
// so results are exact regardless of which unit each input was built from.
type Arith[D Dim] struct {
	ref *Unit
}

// NewArith builds an adapter with the given reference unit of D's family.
func NewArith[D Dim](ref *Unit) Arith[D] {
	checkFamily[D](ref)
	return Arith[D]{ref: ref}
}

// Ref returns the adapter's reference unit.
func (a Arith[D]) Ref() *Unit { return a.ref }

// Add returns x + y.
func (a Arith[D]) Add(x, y Quantity[D]) Quantity[D] { return x.Add(y) }

// Sub returns x - y.
func (a Arith[D]) Sub(x, y Quantity[D]) Quantity[D] { return x.Sub(y) }

// MulScalar returns x scaled by a dimensionless factor.
func (a Arith[D]) MulScalar(x Quantity[D], k float64) Quantity[D] { return x.Scale(k) }

// Compare orders by canonical value: -1, 0, or +1.
func (a Arith[D]) Compare(x, y Quantity[D]) int { return x.Cmp(y) }

// Zero returns the zero quantity.
func (a Arith[D]) Zero() Quantity[D] { return Quantity[D]{} }

// One returns the unit value of the reference unit.
func (a Arith[D]) One() Quantity[D] {
	return Quantity[D]{canon: a.ref.ToCanonical(1)}
}

// Sum folds a sequence with the adapter, starting from Zero.
func Sum[D Dim](a Arith[D], qs []Quantity[D]) Quantity[D] {
	total := a.Zero()
	for _, q := range qs {
		total = a.Add(total, q)
	}
	return total
}

// Mean returns the arithmetic mean of a non-empty sequence.
func Mean[D Dim](a Arith[D], qs []Quantity[D]) (Quantity[D], error) {
	if len(qs) == 0 {
		return Quantity[D]{}, ErrEmptySequence
	}
	return a.MulScalar(Sum(a, qs), 1/float64(len(qs))), nil
}
