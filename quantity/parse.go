package quantity

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// numberPattern matches the leading numeric part of "<number> <symbol>":
// optional sign, digits, optional fraction, optional exponent. The symbol
// is whatever follows, trimmed; it is matched exactly against the family's
// registered symbols, so a longer symbol can never lose to one of its
// prefixes.
var numberPattern = regexp.MustCompile(`^\s*([+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?)\s*(\S.*?)\s*$`)

// normalizeSymbol folds a symbol into its lookup key. NFKC normalization
// makes the micro sign and Greek mu equivalent ("µs" vs "μs") and folds
// superscript digits, so "m/s²" and "m/s2" resolve to the same unit.
func normalizeSymbol(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}

// ParseCanonical parses "<number> <symbol>" against this family's units and
// returns the canonical value together with the matched unit. Failures are
// returned as *ParseError carrying the original input; this path never
// panics.
func (f *Family) ParseCanonical(s string) (float64, *Unit, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, nil, &ParseError{Input: s, Family: f.name, Reason: "expected \"<number> <symbol>\""}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, nil, &ParseError{Input: s, Family: f.name, Reason: "malformed number " + strconv.Quote(m[1])}
	}
	u, ok := f.Unit(m[2])
	if !ok {
		return 0, nil, &ParseError{Input: s, Family: f.name, Reason: "unrecognized symbol " + strconv.Quote(m[2])}
	}
	return u.ToCanonical(value), u, nil
}

// ParseIn tries each family in order and returns the first successful
// parse. The grammar splits the number from the symbol before any family
// is consulted, so a symbol registered in exactly one family resolves
// unambiguously; the first family in order wins on a collision. When every
// family rejects the symbol the error is family-neutral.
func ParseIn(families []*Family, s string) (*Family, float64, *Unit, error) {
	var firstErr error
	for _, f := range families {
		canon, u, err := f.ParseCanonical(s)
		if err == nil {
			return f, canon, u, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		return nil, 0, nil, &ParseError{Input: s, Reason: "no unit families available"}
	}
	var perr *ParseError
	if errors.As(firstErr, &perr) && strings.HasPrefix(perr.Reason, "unrecognized symbol") {
		return nil, 0, nil, &ParseError{Input: s, Reason: perr.Reason + " in any family"}
	}
	return nil, 0, nil, firstErr
}

// Parse parses "<number> <symbol>" into a quantity of D's family.
func Parse[D Dim](s string) (Quantity[D], error) {
	canon, _, err := famOf[D]().ParseCanonical(s)
	if err != nil {
		return Quantity[D]{}, err
	}
	return Quantity[D]{canon: canon}, nil
}
