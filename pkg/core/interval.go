package core

// Interval is a closed range of ray parameters. An inverted interval
// (Min > Max) is empty and admits no parameter.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float64) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether t lies within the interval, bounds included
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Surrounds reports whether t lies strictly within the interval.
// Hit tests use this so that a root exactly at the lower bound is
// rejected rather than reported as a zero-distance intersection.
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}
