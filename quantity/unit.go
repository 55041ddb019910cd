package quantity

// Unit is a named conversion rule between a family's canonical unit and a
// user-facing unit. Linear units carry a single multiplier m such that
// canonical = raw*m; non-linear units (temperature scales) carry an explicit
// converter pair instead.
//
// Units are immutable after declaration and belong to exactly one family.
type Unit struct {
	family    *Family
	symbol    string
	aliases   []string
	factor    float64 // 0 for non-linear units
	toCanon   func(float64) float64
	fromCanon func(float64) float64
	canonical bool
}

// Symbol returns the unit's display symbol.
func (u *Unit) Symbol() string { return u.symbol }

// Aliases returns additional symbols accepted when parsing.
func (u *Unit) Aliases() []string {
	out := make([]string, len(u.aliases))
	copy(out, u.aliases)
	return out
}

// Family returns the family this unit belongs to.
func (u *Unit) Family() *Family { return u.family }

// IsCanonical reports whether this is the family's canonical unit.
func (u *Unit) IsCanonical() bool { return u.canonical }

// IsLinear reports whether the unit converts through a plain multiplier.
func (u *Unit) IsLinear() bool { return u.toCanon == nil }

// Factor returns the linear multiplier, or 0 for non-linear units.
func (u *Unit) Factor() float64 { return u.factor }

// ToCanonical converts a raw value in this unit to the canonical value.
// Pure float64 pass-through: no rounding, no range checks.
func (u *Unit) ToCanonical(raw float64) float64 {
	if u.toCanon != nil {
		return u.toCanon(raw)
	}
	return raw * u.factor
}

// FromCanonical converts a canonical value to a raw value in this unit.
func (u *Unit) FromCanonical(canonical float64) float64 {
	if u.fromCanon != nil {
		return u.fromCanon(canonical)
	}
	return canonical / u.factor
}
