package quantity

import "fmt"

// Dim is the constraint for phantom dimension types. A catalog declares one
// empty struct per family and points it at the family's runtime identity:
//
//	type MassDim struct{}
//
//	func (MassDim) Family() *quantity.Family { return mass }
//
//	type Mass = quantity.Quantity[MassDim]
//
// Distinct dimension types make quantities of different families distinct
// Go types, so crossing families outside a declared relationship is a
// compile error rather than a runtime failure.
type Dim interface {
	Family() *Family
}

// famOf resolves the runtime family behind a dimension type.
func famOf[D Dim]() *Family {
	var d D
	return d.Family()
}

// Quantity is an immutable value of one quantity family, stored as a single
// float64 in the family's canonical unit. The zero value is the zero
// quantity of its family.
type Quantity[D Dim] struct {
	canon float64
}

// Of constructs a quantity from a raw value in the given unit.
// The unit must belong to D's family; anything else is a programming
// error and panics, same as a declaration-rule violation.
func Of[D Dim](u *Unit, raw float64) Quantity[D] {
	checkFamily[D](u)
	return Quantity[D]{canon: u.ToCanonical(raw)}
}

// FromCanonical constructs a quantity directly from a canonical value.
// Together with Canonical it gives serializers an exact round-trip for any
// finite double.
func FromCanonical[D Dim](canonical float64) Quantity[D] {
	return Quantity[D]{canon: canonical}
}

// Canonical returns the value in the family's canonical unit, unchanged.
func (q Quantity[D]) Canonical() float64 { return q.canon }

// To returns the value converted into the given unit of D's family.
func (q Quantity[D]) To(u *Unit) float64 {
	checkFamily[D](u)
	return u.FromCanonical(q.canon)
}

// Add returns q + o.
func (q Quantity[D]) Add(o Quantity[D]) Quantity[D] {
	return Quantity[D]{canon: q.canon + o.canon}
}

// Sub returns q - o.
func (q Quantity[D]) Sub(o Quantity[D]) Quantity[D] {
	return Quantity[D]{canon: q.canon - o.canon}
}

// Scale returns q multiplied by a dimensionless scalar.
func (q Quantity[D]) Scale(k float64) Quantity[D] {
	return Quantity[D]{canon: q.canon * k}
}

// Div returns q divided by a dimensionless scalar. Division by zero
// follows IEEE-754 semantics and yields Inf or NaN.
func (q Quantity[D]) Div(k float64) Quantity[D] {
	return Quantity[D]{canon: q.canon / k}
}

// Ratio returns the dimensionless ratio q / o. Division by a zero quantity
// follows IEEE-754 semantics and yields Inf or NaN.
func (q Quantity[D]) Ratio(o Quantity[D]) float64 {
	return q.canon / o.canon
}

// Cmp compares canonical values: -1 if q < o, 0 if equal, +1 if q > o.
func (q Quantity[D]) Cmp(o Quantity[D]) int {
	switch {
	case q.canon < o.canon:
		return -1
	case q.canon > o.canon:
		return 1
	default:
		return 0
	}
}

// Less reports whether q < o.
func (q Quantity[D]) Less(o Quantity[D]) bool { return q.canon < o.canon }

// Equal reports whether q and o hold the same canonical value.
func (q Quantity[D]) Equal(o Quantity[D]) bool { return q.canon == o.canon }

// IsZero reports whether the canonical value is exactly zero.
func (q Quantity[D]) IsZero() bool { return q.canon == 0 }

// checkFamily asserts that u belongs to D's family.
func checkFamily[D Dim](u *Unit) {
	if fam := famOf[D](); u.family != fam {
		panic(fmt.Sprintf("quantity: unit %q belongs to family %s, not %s",
			u.symbol, u.family.name, fam.name))
	}
}
