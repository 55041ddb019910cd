// Package compiler turns declarative CUE unit catalogs into quantity
// families. The catalog is data: families, unit descriptors, and display
// tables are declared in CUE and compiled into the same runtime model the
// built-in Go catalog uses, with every declaration rule surfaced as a
// recoverable error carrying a source position.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/quantakit/quanta/quantity"
)

// CompileCatalog parses every family under the top-level "quantity" struct:
//
//	quantity: Mass: {
//	    canonical: "kg"
//	    units: {
//	        kg: {aliases: ["kilograms"]}
//	        g:  {factor: 1.0e-3, aliases: ["grams"]}
//	    }
//	    display: [
//	        {min: 1.0, unit: "kg"},
//	        {min: 0.0, unit: "g"},
//	    ]
//	}
//
// Families come back in source order. Compiled families are not added to
// the engine's package registry; the caller owns their scope.
func CompileCatalog(v cue.Value) ([]*quantity.Family, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	root := v.LookupPath(cue.ParsePath("quantity"))
	if !root.Exists() {
		return nil, &CompileError{
			Field:   "quantity",
			Message: "no quantity declarations found",
			Pos:     v.Pos(),
		}
	}

	iter, err := root.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var families []*quantity.Family
	for iter.Next() {
		fam, err := CompileFamily(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		families = append(families, fam)
	}

	if len(families) == 0 {
		return nil, &CompileError{
			Field:   "quantity",
			Message: "at least one family is required",
			Pos:     root.Pos(),
		}
	}
	return families, nil
}

// CompileFamily parses a single family struct into a quantity.Family.
func CompileFamily(name string, v cue.Value) (*quantity.Family, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	fam, err := quantity.NewFamily(name)
	if err != nil {
		return nil, declToCompileError(err, v.Pos())
	}

	canonicalVal := v.LookupPath(cue.ParsePath("canonical"))
	if !canonicalVal.Exists() {
		return nil, &CompileError{
			Field:   name + ".canonical",
			Message: "canonical unit symbol is required",
			Pos:     v.Pos(),
		}
	}
	canonical, err := canonicalVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}

	if err := parseUnits(fam, canonical, v); err != nil {
		return nil, err
	}
	if err := parseDisplay(fam, v); err != nil {
		return nil, err
	}

	if err := fam.Validate(); err != nil {
		return nil, declToCompileError(err, v.Pos())
	}
	return fam, nil
}

// parseUnits declares every unit under the family's units struct. The
// canonical symbol must appear among them; its factor, if present, must
// be 1. All other units require an explicit non-zero factor; offset scales
// have no data form and are only declarable through the Go API.
func parseUnits(fam *quantity.Family, canonical string, v cue.Value) error {
	unitsVal := v.LookupPath(cue.ParsePath("units"))
	if !unitsVal.Exists() {
		return &CompileError{
			Field:   fam.Name() + ".units",
			Message: "at least one unit is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := unitsVal.Fields()
	if err != nil {
		return formatCUEError(err)
	}

	sawCanonical := false
	for iter.Next() {
		symbol := iter.Label()
		unitVal := iter.Value()

		aliases, err := parseAliases(fam.Name(), symbol, unitVal)
		if err != nil {
			return err
		}

		factorVal := unitVal.LookupPath(cue.ParsePath("factor"))
		if symbol == canonical {
			sawCanonical = true
			if factorVal.Exists() {
				factor, err := factorVal.Float64()
				if err != nil {
					return formatCUEError(err)
				}
				if factor != 1 {
					return &CompileError{
						Field:   fam.Name() + ".units." + symbol,
						Message: fmt.Sprintf("canonical unit must have factor 1, got %v", factor),
						Pos:     factorVal.Pos(),
					}
				}
			}
			if _, err := fam.AddCanonical(symbol, aliases...); err != nil {
				return declToCompileError(err, unitVal.Pos())
			}
			continue
		}

		if !factorVal.Exists() {
			return &CompileError{
				Field:   fam.Name() + ".units." + symbol,
				Message: "factor is required for non-canonical units",
				Pos:     unitVal.Pos(),
			}
		}
		factor, err := factorVal.Float64()
		if err != nil {
			return formatCUEError(err)
		}
		if _, err := fam.AddLinear(symbol, factor, aliases...); err != nil {
			return declToCompileError(err, unitVal.Pos())
		}
	}

	if !sawCanonical {
		return &CompileError{
			Field:   fam.Name() + ".units",
			Message: fmt.Sprintf("canonical unit %q is not declared in units", canonical),
			Pos:     unitsVal.Pos(),
		}
	}
	return nil
}

func parseAliases(family, symbol string, v cue.Value) ([]string, error) {
	aliasVal := v.LookupPath(cue.ParsePath("aliases"))
	if !aliasVal.Exists() {
		return nil, nil
	}

	iter, err := aliasVal.List()
	if err != nil {
		return nil, &CompileError{
			Field:   family + ".units." + symbol + ".aliases",
			Message: "aliases must be a list of strings",
			Pos:     aliasVal.Pos(),
		}
	}

	var aliases []string
	for iter.Next() {
		alias, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// parseDisplay declares the optional ordered best-unit table.
func parseDisplay(fam *quantity.Family, v cue.Value) error {
	displayVal := v.LookupPath(cue.ParsePath("display"))
	if !displayVal.Exists() {
		return nil
	}

	iter, err := displayVal.List()
	if err != nil {
		return &CompileError{
			Field:   fam.Name() + ".display",
			Message: "display must be a list of {min, unit} rows",
			Pos:     displayVal.Pos(),
		}
	}

	var pairs []quantity.DisplayPair
	for iter.Next() {
		row := iter.Value()

		minVal := row.LookupPath(cue.ParsePath("min"))
		unitVal := row.LookupPath(cue.ParsePath("unit"))
		if !minVal.Exists() || !unitVal.Exists() {
			return &CompileError{
				Field:   fam.Name() + ".display",
				Message: "each display row requires min and unit",
				Pos:     row.Pos(),
			}
		}

		min, err := minVal.Float64()
		if err != nil {
			return formatCUEError(err)
		}
		symbol, err := unitVal.String()
		if err != nil {
			return formatCUEError(err)
		}
		pairs = append(pairs, quantity.DisplayPair{Min: min, Symbol: symbol})
	}

	if err := fam.SetDisplay(pairs...); err != nil {
		return declToCompileError(err, displayVal.Pos())
	}
	return nil
}

// CompileError represents a catalog compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// declToCompileError attaches a source position to an engine declaration
// error, preserving its message.
func declToCompileError(err error, pos token.Pos) error {
	return &CompileError{
		Field:   "declaration",
		Message: err.Error(),
		Pos:     pos,
	}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
