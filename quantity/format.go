package quantity

import (
	"math"
	"strconv"
)

// FormatIn renders a canonical value in the given unit as
// "<value> <symbol>". Values use the shortest representation that parses
// back to the same float64, so Format and Parse are exact inverses.
func (f *Family) FormatIn(canonical float64, u *Unit) string {
	return strconv.FormatFloat(u.FromCanonical(canonical), 'g', -1, 64) + " " + u.symbol
}

// FormatCanonical renders a canonical value using the family's best-unit
// table: the first row whose rendered magnitude is at least its threshold
// wins, so a value sitting exactly on a boundary takes the larger unit.
// Families without a table, and values below every threshold, fall back to
// the canonical unit.
func (f *Family) FormatCanonical(canonical float64) string {
	for _, step := range f.display {
		if math.Abs(step.Unit.FromCanonical(canonical)) >= step.Min {
			return f.FormatIn(canonical, step.Unit)
		}
	}
	u := f.canon
	if u == nil && len(f.units) > 0 {
		u = f.units[0]
	}
	return f.FormatIn(canonical, u)
}

// Format renders the quantity in the given unit of D's family.
func (q Quantity[D]) Format(u *Unit) string {
	checkFamily[D](u)
	return famOf[D]().FormatIn(q.canon, u)
}

// String renders the quantity using the family's best-unit table.
func (q Quantity[D]) String() string {
	return famOf[D]().FormatCanonical(q.canon)
}
