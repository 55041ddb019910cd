package units

import "github.com/quantakit/quanta/quantity"

// TimeDim is the phantom dimension for durations. Canonical unit: seconds.
type TimeDim struct{}

// Family returns the Time family.
func (TimeDim) Family() *quantity.Family { return timeFamily }

// Time is a duration quantity.
type Time = quantity.Quantity[TimeDim]

var (
	timeFamily = quantity.MustFamily("Time")

	Second      = timeFamily.MustCanonical("s", "sec", "seconds")
	Microsecond = timeFamily.MustLinear("µs", quantity.Micro, "us", "microseconds")
	Millisecond = timeFamily.MustLinear("ms", quantity.Milli, "milliseconds")
	Minute      = timeFamily.MustLinear("min", 60, "minutes")
	Hour        = timeFamily.MustLinear("h", 3600, "hours")
	Day         = timeFamily.MustLinear("d", 86400, "days")
)

func Seconds(x float64) Time      { return quantity.Of[TimeDim](Second, x) }
func Milliseconds(x float64) Time { return quantity.Of[TimeDim](Millisecond, x) }
func Minutes(x float64) Time      { return quantity.Of[TimeDim](Minute, x) }
func Hours(x float64) Time        { return quantity.Of[TimeDim](Hour, x) }
func Days(x float64) Time         { return quantity.Of[TimeDim](Day, x) }
