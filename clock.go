package touch

import "time"

// Clock provides the millisecond time base used for gesture timing.
//
// Timestamps wrap at 2^32 ms (about 49.7 days). All elapsed-time
// comparisons are done with unsigned subtraction, so a wrap between two
// samples of the same contact is harmless.
type Clock interface {
	Millis() uint32
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() uint32

// Millis calls f.
func (f ClockFunc) Millis() uint32 { return f() }

// SystemClock is a monotonic Clock counting milliseconds since its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a SystemClock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the milliseconds elapsed since NewSystemClock.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Interpolator maps a value from one integer range onto another.
type Interpolator interface {
	Map(n, inMin, inMax, outMin, outMax int) int
}

// InterpolatorFunc adapts a function to the Interpolator interface.
type InterpolatorFunc func(n, inMin, inMax, outMin, outMax int) int

// Map calls f.
func (f InterpolatorFunc) Map(n, inMin, inMax, outMin, outMax int) int {
	return f(n, inMin, inMax, outMin, outMax)
}

// Degenerate is returned by LinearMap when the input range is empty.
const Degenerate = -1

// LinearMap re-maps n from [inMin, inMax] onto [outMin, outMax].
//
// The result is outMin + (n-inMin)*(outMax-outMin)/(inMax-inMin) with
// integer division truncating toward zero. Values outside the input range
// extrapolate. An empty input range (inMin == inMax) returns Degenerate.
func LinearMap(n, inMin, inMax, outMin, outMax int) int {
	run := inMax - inMin
	if run == 0 {
		return Degenerate
	}
	return (n-inMin)*(outMax-outMin)/run + outMin
}
