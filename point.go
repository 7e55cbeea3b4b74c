package touch

import "math"

// Sample is a single reading from a touch source.
//
// X and Y are in panel units when the source reports raw coordinates and in
// display pixels otherwise. Pressure is compared against the configured
// threshold to decide whether the panel is touched.
type Sample struct {
	X, Y     int16
	Pressure int16
}

// Point is a position in display-pixel space, the result of mapping a Sample.
// Points compare equal when all three fields match.
type Point struct {
	X, Y     int16
	Pressure int16
}

// Pt is a convenience function to create a Point with zero pressure.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// Sub returns the per-axis difference p - q as ints.
func (p Point) Sub(q Point) (dx, dy int) {
	return int(p.X) - int(q.X), int(p.Y) - int(q.Y)
}

// displacement returns the absolute per-axis distance between two samples.
func displacement(a, b Sample) (dx, dy int) {
	return absInt(int(a.X) - int(b.X)), absInt(int(a.Y) - int(b.Y))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// saturate16 narrows v to int16, clamping at the type bounds.
func saturate16(v int) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
