package touch

import (
	"errors"
	"math"
)

// OutsideChart is the sector index returned by PieSlice when the point lies
// outside the circle or in the uncovered arc of an incomplete chart.
const OutsideChart = -1

// Pie-slice validation errors.
var (
	// ErrInvalidAngle is returned when a sector size is zero or negative.
	ErrInvalidAngle = errors.New("touch: sector angle must be positive")

	// ErrInvalidAngleSum is returned when sector sizes add up to more than
	// a full turn.
	ErrInvalidAngleSum = errors.New("touch: sector angles exceed 360 degrees")
)

// InRectangle reports whether p lies in the rectangle with corner (x, y),
// width w and height h. All four edges are inside.
func InRectangle(p Point, x, y, w, h int16) bool {
	px, py := int(p.X), int(p.Y)
	return int(x) <= px && px <= int(x)+int(w) &&
		int(y) <= py && py <= int(y)+int(h)
}

// InCircle reports whether p lies strictly inside the circle centered at
// (cx, cy) with radius r. Points on the circumference are outside.
func InCircle(p Point, cx, cy, r int16) bool {
	dx := int(cx) - int(p.X)
	dy := int(cy) - int(p.Y)
	return dx*dx+dy*dy < int(r)*int(r)
}

// InPolygon reports whether p lies inside the simple polygon given by its
// vertices in either winding order, using the even-odd rule.
//
// A point equal to a vertex is always inside. Other boundary points follow
// the half-open convention of the crossing test.
func InPolygon(p Point, vertices []Point) bool {
	px, py := int(p.X), int(p.Y)
	inside := false
	for i, j := 0, len(vertices)-1; i < len(vertices); j, i = i, i+1 {
		xi, yi := int(vertices[i].X), int(vertices[i].Y)
		xj, yj := int(vertices[j].X), int(vertices[j].Y)
		if px == xi && py == yi {
			return true
		}
		if (yi > py) == (yj > py) {
			continue
		}
		// Compare px against the edge's x-intercept at py without dividing:
		// px < xi + (xj-xi)*(py-yi)/dy, multiplied through by dy, which flips
		// the comparison when dy is negative.
		dy := yj - yi
		lhs := px * dy
		rhs := (xj-xi)*(py-yi) + xi*dy
		if (dy < 0 && lhs > rhs) || (dy > 0 && lhs < rhs) {
			inside = !inside
		}
	}
	return inside
}

// PieSlice returns the index of the sector of a pie chart that contains p.
//
// The chart is centered at (cx, cy) with radius r. Sector sizes are given in
// degrees, laid out counter-clockwise from the positive x axis in the order
// given. A total below 360 leaves an uncovered arc. Each sector covers the
// half-open interval [start, end), so a point exactly on a boundary belongs
// to the sector starting there.
//
// OutsideChart is returned for points outside the circle or the covered arc.
// Invalid sizes return OutsideChart with ErrInvalidAngle or
// ErrInvalidAngleSum; validation happens before the point is examined.
func PieSlice(p Point, cx, cy, r int16, angles []int16) (int, error) {
	sum := 0
	for _, a := range angles {
		if a <= 0 {
			return OutsideChart, ErrInvalidAngle
		}
		sum += int(a)
	}
	if sum > 360 {
		return OutsideChart, ErrInvalidAngleSum
	}

	if !InCircle(p, cx, cy, r) {
		return OutsideChart, nil
	}

	// Screen y grows downward, so the y delta is negated for the
	// mathematical angle.
	angle := math.Atan2(float64(int(cy)-int(p.Y)), float64(int(p.X)-int(cx))) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	start := 0
	for i, a := range angles {
		end := start + int(a)
		if float64(start) <= angle && angle < float64(end) {
			return i, nil
		}
		start = end
	}
	return OutsideChart, nil
}

// PieSliceFractions is PieSlice with sector sizes given as fractions of a
// full turn. Each fraction is rounded to whole degrees first. NaN counts as
// an invalid angle.
func PieSliceFractions(p Point, cx, cy, r int16, fractions []float32) (int, error) {
	angles := make([]int16, len(fractions))
	for i, f := range fractions {
		angles[i] = fractionDegrees(f)
	}
	return PieSlice(p, cx, cy, r, angles)
}

// fractionDegrees rounds f*360 to whole degrees. Results above a full turn
// saturate at 361 so they still fail the sum check.
func fractionDegrees(f float32) int16 {
	deg := float64(f)*360 + 0.5
	switch {
	case math.IsNaN(deg) || deg < 1:
		return 0
	case deg > 361:
		return 361
	}
	return int16(deg)
}
