package core

import "math"

// Interval is a range of real values between Min and Max
type Interval struct {
	Min, Max float64
}

var (
	// Universe admits every value
	Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	// Empty admits nothing. Min > Max on purpose.
	Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
)

// NewInterval creates an interval from min to max
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in the open interval (Min, Max)
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
