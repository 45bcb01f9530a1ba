package core

import "math"

// Interval is a range of real numbers [Min, Max].
// The empty interval is (+Inf, -Inf) so that merging into it is the identity.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains no values
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval from min to max
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min, which is negative for an empty interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Midpoint returns the center of the interval
func (i Interval) Midpoint() float64 {
	return 0.5 * (i.Min + i.Max)
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Contains reports whether x lies in [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp restricts x to [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand grows the interval by delta in total, half on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Merge returns the smallest interval containing both intervals
func (i Interval) Merge(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}

// MergeValue returns the smallest interval containing the interval and x
func (i Interval) MergeValue(x float64) Interval {
	return Interval{Min: math.Min(i.Min, x), Max: math.Max(i.Max, x)}
}

// ContainsInterval reports whether other lies entirely within the interval.
// The empty interval is contained in every interval.
func (i Interval) ContainsInterval(other Interval) bool {
	if other.IsEmpty() {
		return true
	}
	return i.Min <= other.Min && other.Max <= i.Max
}
