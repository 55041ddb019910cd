// Package units is the built-in quantity catalog: a representative set of
// families, unit descriptors, and declared cross-family relationships on
// top of the quantity engine.
//
// Each family contributes a phantom dimension type (MassDim, TimeDim, ...),
// a type alias for its quantities (Mass, Time, ...), exported unit
// descriptors (Kilogram, Second, ...), and free constructor functions
// (Kilograms(5), Seconds(30), ...). Cross-family operators live in rules.go
// as declared Ratio/Product/TimeDerivative values with named wrappers such
// as Speed and ForceOf.
//
// All families register themselves with the engine's registry at init, so
// data-driven surfaces (the CLI, scenario harness) can resolve them by
// name.
package units
