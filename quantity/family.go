package quantity

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Family is the runtime identity of a quantity family: a distinct physical
// dimension with exactly one canonical unit and a set of interchangeable
// unit descriptors. All declaration happens up front (package init for
// compiled-in catalogs, catalog compilation for data-driven ones); after
// that a Family is read-only and safe for concurrent use.
type Family struct {
	name     string
	units    []*Unit
	bySymbol map[string]*Unit // normalized symbol/alias -> unit
	canon    *Unit
	display  []DisplayStep
}

// DisplayStep is one row of a family's ordered best-unit table: if the
// absolute value rendered in Unit is at least Min, that unit is chosen for
// default formatting. Rows are evaluated top-down.
type DisplayStep struct {
	Min  float64
	Unit *Unit
}

// NewFamily creates an empty family. The name must be non-empty and is the
// identity used in parse errors, the relationship table, and catalogs.
func NewFamily(name string) (*Family, error) {
	if name == "" {
		return nil, &DeclarationError{Family: name, Message: "family name must not be empty"}
	}
	return &Family{
		name:     name,
		bySymbol: make(map[string]*Unit),
	}, nil
}

// MustFamily is NewFamily for compiled-in catalogs; it panics on error.
func MustFamily(name string) *Family {
	f, err := NewFamily(name)
	if err != nil {
		panic(err)
	}
	Register(f)
	return f
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Canonical returns the family's canonical unit, or nil if none is declared.
func (f *Family) Canonical() *Unit { return f.canon }

// Units returns the family's units in declaration order.
func (f *Family) Units() []*Unit {
	out := make([]*Unit, len(f.units))
	copy(out, f.units)
	return out
}

// Unit looks up a unit by symbol or alias. Symbols are matched exactly
// after Unicode normalization (NFKC), so "µs" and "μs" find the same unit.
func (f *Family) Unit(symbol string) (*Unit, bool) {
	u, ok := f.bySymbol[normalizeSymbol(symbol)]
	return u, ok
}

// DisplaySteps returns the family's best-unit table, or nil if the family
// formats in its canonical unit by default.
func (f *Family) DisplaySteps() []DisplayStep {
	out := make([]DisplayStep, len(f.display))
	copy(out, f.display)
	return out
}

// AddCanonical declares the family's canonical unit. Exactly one canonical
// unit must exist per family; a second declaration is an error.
func (f *Family) AddCanonical(symbol string, aliases ...string) (*Unit, error) {
	if f.canon != nil {
		return nil, &DeclarationError{
			Family:  f.name,
			Symbol:  symbol,
			Message: fmt.Sprintf("canonical unit already declared as %q", f.canon.symbol),
		}
	}
	u, err := f.add(&Unit{symbol: symbol, aliases: aliases, factor: 1, canonical: true})
	if err != nil {
		return nil, err
	}
	f.canon = u
	return u, nil
}

// AddLinear declares a linear unit: canonical = raw * factor. A zero or
// non-finite factor is a declaration error, not a runtime condition.
func (f *Family) AddLinear(symbol string, factor float64, aliases ...string) (*Unit, error) {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, &DeclarationError{
			Family:  f.name,
			Symbol:  symbol,
			Message: fmt.Sprintf("multiplier must be finite and non-zero, got %v", factor),
		}
	}
	return f.add(&Unit{symbol: symbol, aliases: aliases, factor: factor})
}

// AddFunc declares a non-linear unit with an explicit converter pair.
// Both converters are required.
func (f *Family) AddFunc(symbol string, toCanonical, fromCanonical func(float64) float64, aliases ...string) (*Unit, error) {
	if toCanonical == nil || fromCanonical == nil {
		return nil, &DeclarationError{
			Family:  f.name,
			Symbol:  symbol,
			Message: "non-linear unit requires both converter functions",
		}
	}
	return f.add(&Unit{symbol: symbol, aliases: aliases, toCanon: toCanonical, fromCanon: fromCanonical})
}

func (f *Family) add(u *Unit) (*Unit, error) {
	if u.symbol == "" {
		return nil, &DeclarationError{Family: f.name, Message: "unit symbol must not be empty"}
	}
	keys := append([]string{u.symbol}, u.aliases...)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		norm := normalizeSymbol(k)
		if prev, ok := f.bySymbol[norm]; ok {
			return nil, &DeclarationError{
				Family:  f.name,
				Symbol:  u.symbol,
				Message: fmt.Sprintf("symbol %q already registered for unit %q", k, prev.symbol),
			}
		}
		if seen[norm] {
			return nil, &DeclarationError{
				Family:  f.name,
				Symbol:  u.symbol,
				Message: fmt.Sprintf("symbol %q repeated within unit %q", k, u.symbol),
			}
		}
		seen[norm] = true
	}
	u.family = f
	for _, k := range keys {
		f.bySymbol[normalizeSymbol(k)] = u
	}
	f.units = append(f.units, u)
	return u, nil
}

// DisplayPair is a (min, symbol) row for SetDisplay and MustDisplay.
type DisplayPair struct {
	Min    float64
	Symbol string
}

// SetDisplay declares the family's ordered best-unit table by symbol, in
// descending preference order. Every referenced symbol must already be
// registered. A final row with Min 0 acts as the unconditional fallback
// ("else milligrams"); without one, formatting falls back to the canonical
// unit.
func (f *Family) SetDisplay(pairs ...DisplayPair) error {
	display := make([]DisplayStep, 0, len(pairs))
	for _, p := range pairs {
		u, ok := f.Unit(p.Symbol)
		if !ok {
			return &DeclarationError{
				Family:  f.name,
				Symbol:  p.Symbol,
				Message: "display table references unregistered symbol",
			}
		}
		if p.Min < 0 || math.IsNaN(p.Min) || math.IsInf(p.Min, 0) {
			return &DeclarationError{
				Family:  f.name,
				Symbol:  p.Symbol,
				Message: fmt.Sprintf("display threshold must be finite and non-negative, got %v", p.Min),
			}
		}
		display = append(display, DisplayStep{Min: p.Min, Unit: u})
	}
	f.display = display
	return nil
}

// MustCanonical is AddCanonical for compiled-in catalogs; panics on error.
func (f *Family) MustCanonical(symbol string, aliases ...string) *Unit {
	u, err := f.AddCanonical(symbol, aliases...)
	if err != nil {
		panic(err)
	}
	return u
}

// MustLinear is AddLinear for compiled-in catalogs; panics on error.
func (f *Family) MustLinear(symbol string, factor float64, aliases ...string) *Unit {
	u, err := f.AddLinear(symbol, factor, aliases...)
	if err != nil {
		panic(err)
	}
	return u
}

// MustFunc is AddFunc for compiled-in catalogs; panics on error.
func (f *Family) MustFunc(symbol string, toCanonical, fromCanonical func(float64) float64, aliases ...string) *Unit {
	u, err := f.AddFunc(symbol, toCanonical, fromCanonical, aliases...)
	if err != nil {
		panic(err)
	}
	return u
}

// MustDisplay is SetDisplay for compiled-in catalogs; panics on error.
func (f *Family) MustDisplay(pairs ...DisplayPair) {
	if err := f.SetDisplay(pairs...); err != nil {
		panic(err)
	}
}

// Validate checks the family's static invariants: at least one unit and
// exactly one canonical unit. Per-unit rules are enforced at declaration;
// this is the final check catalog compilers run before handing a family out.
func (f *Family) Validate() error {
	if len(f.units) == 0 {
		return &DeclarationError{Family: f.name, Message: "family has no units"}
	}
	if f.canon == nil {
		return &DeclarationError{Family: f.name, Message: "family has no canonical unit"}
	}
	return nil
}

// Convert translates a value between two units of this family, addressed by
// symbol. Used by the data-driven surfaces (CLI, scenario harness) where
// units arrive as strings rather than descriptors.
func (f *Family) Convert(value float64, from, to string) (float64, error) {
	src, ok := f.Unit(from)
	if !ok {
		return 0, fmt.Errorf("family %s: %w %q", f.name, ErrUnknownUnit, from)
	}
	dst, ok := f.Unit(to)
	if !ok {
		return 0, fmt.Errorf("family %s: %w %q", f.name, ErrUnknownUnit, to)
	}
	return dst.FromCanonical(src.ToCanonical(value)), nil
}

// Package-level family registry. Compiled-in catalogs register at init so
// the CLI and harness can resolve families by name; catalogs compiled from
// data at runtime stay unregistered and are resolved by their loader.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Family)
)

// Register adds a family to the package-level registry. A duplicate family
// name is a declaration-time programming error and panics.
func Register(f *Family) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[f.name]; ok {
		panic(&DeclarationError{Family: f.name, Message: "family already registered"})
	}
	registry[f.name] = f
}

// LookupFamily resolves a registered family by name.
func LookupFamily(name string) (*Family, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Families returns all registered families sorted by name.
func Families() []*Family {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]*Family, 0, len(registry))
	for _, f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
