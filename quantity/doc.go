// Package quantity implements a dimensional-quantity algebra engine.
//
// A quantity family (Mass, Time, Velocity, ...) is a runtime identity with
// exactly one canonical unit. Every quantity stores a single float64 in the
// family's canonical unit; unit descriptors convert between that canonical
// value and user-facing units, either through a linear multiplier or through
// explicit converter functions for non-linear scales such as temperature.
//
// On top of the runtime model sits a typed layer: phantom dimension types
// (implementing Dim) make Quantity[D] values of different families distinct
// Go types, so same-family arithmetic is checked at compile time and
// cross-family arithmetic is only possible through explicitly declared
// Ratio, Product, and TimeDerivative relationships.
//
// Declaration-time rule violations (duplicate symbols, zero multipliers,
// a second canonical unit) are programming errors: the error-returning
// declaration API surfaces them to catalog compilers, and the Must variants
// panic for compiled-in catalogs. Parse failures are ordinary error values.
// Numeric edge results (division by a zero canonical value, overflow) follow
// IEEE-754 semantics and are never trapped.
//
// Everything in this package is immutable after declaration; families,
// units, and quantities are safe for concurrent readers.
package quantity
