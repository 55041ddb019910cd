package quantity

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit indicates a unit symbol that is not registered in a family.
var ErrUnknownUnit = errors.New("unknown unit")

// DeclarationError reports a violated declaration rule: a duplicate symbol,
// a zero or non-finite multiplier, a second canonical unit, a display
// threshold referencing an unregistered symbol, and so on.
//
// Catalog compilers receive DeclarationError as a value from the
// error-returning declaration API. The Must variants wrap it in a panic,
// since a bad compiled-in catalog is unrecoverable.
type DeclarationError struct {
	// Family names the family being declared.
	Family string

	// Symbol is the unit symbol involved, if any.
	Symbol string

	// Message describes the violated rule.
	Message string
}

// Error implements the error interface.
func (e *DeclarationError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("declare %s: unit %q: %s", e.Family, e.Symbol, e.Message)
	}
	return fmt.Sprintf("declare %s: %s", e.Family, e.Message)
}

// ParseError reports a string that could not be parsed into a quantity.
// It always carries the offending input; Family is empty when the parse
// was not targeted at a single family.
type ParseError struct {
	// Input is the original source string, unmodified.
	Input string

	// Family is the target family name, if any.
	Family string

	// Reason describes why parsing failed.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Family == "" {
		return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("parse %q as %s: %s", e.Input, e.Family, e.Reason)
}
