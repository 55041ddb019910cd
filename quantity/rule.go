package quantity

import (
	"fmt"
	"sync"
)

// Op is the operator of a declared cross-family relationship.
type Op string

const (
	OpMul Op = "*"
	OpDiv Op = "/"
)

// Relationship is one edge of the declared derived-quantity graph,
// expressed in family names: Left Op Right -> Result.
type Relationship struct {
	Left   string `json:"left"`
	Op     Op     `json:"op"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

func (r Relationship) String() string {
	return fmt.Sprintf("%s %s %s -> %s", r.Left, r.Op, r.Right, r.Result)
}

var (
	relMu    sync.RWMutex
	relTable []Relationship
	relIndex = make(map[string]string) // "Left op Right" -> Result
)

// declare records one relationship edge. Declaring the same (left, op,
// right) twice is a declaration-time programming error: relationships are
// declared once per pair and never inferred.
func declare(rel Relationship) {
	relMu.Lock()
	defer relMu.Unlock()
	key := rel.Left + " " + string(rel.Op) + " " + rel.Right
	if prev, ok := relIndex[key]; ok {
		panic(&DeclarationError{
			Family:  rel.Left,
			Message: fmt.Sprintf("relationship %s already declared with result %s", rel, prev),
		})
	}
	relIndex[key] = rel.Result
	relTable = append(relTable, rel)
}

// Relationships returns every declared relationship edge in declaration
// order. The graph is data: it can be listed, asserted on, and audited.
func Relationships() []Relationship {
	relMu.RLock()
	defer relMu.RUnlock()
	out := make([]Relationship, len(relTable))
	copy(out, relTable)
	return out
}

// Ratio declares the triangle C = A / B with a unit-normalizing constant k:
// in canonical values, c = a/b*k. Most relationships use k = 1; a non-unit
// k covers families whose canonical units disagree on the shared dimension,
// such as Energy (watt-hours) over Time (seconds) giving Power (watts)
// with k = 3600.
//
// Declaring a Ratio registers all edges of the triangle, so callers can
// move between the three families in any direction.
type Ratio[A, B, C Dim] struct {
	k float64
}

// NewRatio declares C = A / B. Call once per triangle, at init.
func NewRatio[A, B, C Dim](k float64) Ratio[A, B, C] {
	a, b, c := famOf[A]().name, famOf[B]().name, famOf[C]().name
	declare(Relationship{Left: a, Op: OpDiv, Right: b, Result: c})
	declare(Relationship{Left: c, Op: OpMul, Right: b, Result: a})
	declare(Relationship{Left: b, Op: OpMul, Right: c, Result: a})
	declare(Relationship{Left: a, Op: OpDiv, Right: c, Result: b})
	return Ratio[A, B, C]{k: k}
}

// Divide computes c = a / b.
func (r Ratio[A, B, C]) Divide(a Quantity[A], b Quantity[B]) Quantity[C] {
	return Quantity[C]{canon: a.canon / b.canon * r.k}
}

// Multiply computes a = c * b, the inverse of Divide.
func (r Ratio[A, B, C]) Multiply(c Quantity[C], b Quantity[B]) Quantity[A] {
	return Quantity[A]{canon: c.canon * b.canon / r.k}
}

// Base computes b = a / c, the remaining side of the triangle.
func (r Ratio[A, B, C]) Base(a Quantity[A], c Quantity[C]) Quantity[B] {
	return Quantity[B]{canon: a.canon / c.canon * r.k}
}

// Product declares the triangle C = A * B with a unit-normalizing constant
// k: in canonical values, c = a*b*k. It is the multiplicative reading of
// the same triangle Ratio declares divisively.
type Product[A, B, C Dim] struct {
	k float64
}

// NewProduct declares C = A * B. Call once per triangle, at init.
func NewProduct[A, B, C Dim](k float64) Product[A, B, C] {
	a, b, c := famOf[A]().name, famOf[B]().name, famOf[C]().name
	declare(Relationship{Left: a, Op: OpMul, Right: b, Result: c})
	declare(Relationship{Left: b, Op: OpMul, Right: a, Result: c})
	declare(Relationship{Left: c, Op: OpDiv, Right: a, Result: b})
	declare(Relationship{Left: c, Op: OpDiv, Right: b, Result: a})
	return Product[A, B, C]{k: k}
}

// Mul computes c = a * b.
func (p Product[A, B, C]) Mul(a Quantity[A], b Quantity[B]) Quantity[C] {
	return Quantity[C]{canon: a.canon * b.canon * p.k}
}

// DivA computes b = c / a.
func (p Product[A, B, C]) DivA(c Quantity[C], a Quantity[A]) Quantity[B] {
	return Quantity[B]{canon: c.canon / (a.canon * p.k)}
}

// DivB computes a = c / b.
func (p Product[A, B, C]) DivB(c Quantity[C], b Quantity[B]) Quantity[A] {
	return Quantity[A]{canon: c.canon / (b.canon * p.k)}
}

// TimeDerivative is the rate-of-change pairing: a family declares its
// time-derivative once and gets both standard operators, base/time = deriv
// and deriv*time = base. The kinematic chain Distance -> Velocity ->
// Acceleration -> Jerk is three of these; Energy -> Power is another.
type TimeDerivative[Base, D, T Dim] struct {
	r Ratio[Base, T, D]
}

// NewTimeDerivative declares D as the time-derivative of Base. The
// constant k normalizes canonical units exactly as in NewRatio.
func NewTimeDerivative[Base, D, T Dim](k float64) TimeDerivative[Base, D, T] {
	return TimeDerivative[Base, D, T]{r: NewRatio[Base, T, D](k)}
}

// Rate computes base / time, the derivative quantity.
func (td TimeDerivative[Base, D, T]) Rate(base Quantity[Base], t Quantity[T]) Quantity[D] {
	return td.r.Divide(base, t)
}

// Accumulate computes deriv * time, the integral back to the base quantity.
func (td TimeDerivative[Base, D, T]) Accumulate(d Quantity[D], t Quantity[T]) Quantity[Base] {
	return td.r.Multiply(d, t)
}

// Over computes base / deriv, the elapsed time.
func (td TimeDerivative[Base, D, T]) Over(base Quantity[Base], d Quantity[D]) Quantity[T] {
	return td.r.Base(base, d)
}
