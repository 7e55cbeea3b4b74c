package touch

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrDegenerateCalibration is returned when a calibrated range is empty,
// which makes the panel-to-screen mapping non-invertible.
var ErrDegenerateCalibration = errors.New("touch: degenerate calibration range")

// Default panel calibration for a 2.4" resistive panel read through an
// XPT2046 controller.
const (
	DefaultShortMin = 230
	DefaultShortMax = 3700
	DefaultLongMin  = 350
	DefaultLongMax  = 3900
	DefaultEdgeBand = 200
)

// Calibration holds the panel-unit bounds of both physical panel axes.
//
// The short axis spans the narrow side of the panel, the long axis the wide
// side. EdgeBand is the width, in panel units, of a strip along one end of
// the long axis that is touch sensitive but lies outside the lit display
// area. The strip is fixed to the panel, so which bound of the long axis
// absorbs it depends on the rotation.
type Calibration struct {
	ShortMin, ShortMax int
	LongMin, LongMax   int
	EdgeBand           int
}

// DefaultCalibration returns the calibration of the reference panel.
func DefaultCalibration() Calibration {
	return Calibration{
		ShortMin: DefaultShortMin,
		ShortMax: DefaultShortMax,
		LongMin:  DefaultLongMin,
		LongMax:  DefaultLongMax,
		EdgeBand: DefaultEdgeBand,
	}
}

// Validate reports whether every rotation yields a non-empty input range.
func (c Calibration) Validate() error {
	if c.ShortMin == c.ShortMax {
		return fmt.Errorf("%w: short axis %d..%d", ErrDegenerateCalibration, c.ShortMin, c.ShortMax)
	}
	if c.LongMax-c.LongMin == c.EdgeBand {
		return fmt.Errorf("%w: long axis %d..%d with edge band %d",
			ErrDegenerateCalibration, c.LongMin, c.LongMax, c.EdgeBand)
	}
	return nil
}

// axisLayout describes how one rotation assigns panel ranges to screen axes.
type axisLayout struct {
	// longOnX is set when screen x is fed by the long panel axis.
	longOnX bool
	// bandAtMin is set when the edge band raises the long-axis minimum
	// instead of lowering its maximum.
	bandAtMin bool
}

// rotationLayout is indexed by Rotation. Sample X always maps to screen X
// and sample Y to screen Y; only the calibrated ranges move.
var rotationLayout = [4]axisLayout{
	Portrait:         {longOnX: false, bandAtMin: false},
	Landscape:        {longOnX: true, bandAtMin: false},
	PortraitFlipped:  {longOnX: false, bandAtMin: true},
	LandscapeFlipped: {longOnX: true, bandAtMin: true},
}

// span is an input range in panel units.
type span struct{ min, max int }

// ranges returns the input ranges feeding screen x and screen y.
func (c Calibration) ranges(r Rotation) (x, y span) {
	layout := rotationLayout[r.Index()]
	short := span{c.ShortMin, c.ShortMax}
	long := span{c.LongMin, c.LongMax - c.EdgeBand}
	if layout.bandAtMin {
		long = span{c.LongMin + c.EdgeBand, c.LongMax}
	}
	if layout.longOnX {
		return long, short
	}
	return short, long
}

// Affine returns the panel-to-screen mapping for the given rotation and
// screen size as an affine transform without the integer truncation applied
// by the engine.
func (c Calibration) Affine(r Rotation, width, height int) (f64.Aff3, error) {
	xs, ys := c.ranges(r)
	if xs.max == xs.min || ys.max == ys.min {
		return f64.Aff3{}, fmt.Errorf("%w: rotation %v", ErrDegenerateCalibration, r)
	}
	sx := float64(width) / float64(xs.max-xs.min)
	sy := float64(height) / float64(ys.max-ys.min)
	return f64.Aff3{
		sx, 0, -float64(xs.min) * sx,
		0, sy, -float64(ys.min) * sy,
	}, nil
}

// Unmap converts a screen point back to panel units. It is the inverse of
// the engine mapping up to integer rounding.
func (c Calibration) Unmap(p Point, r Rotation, width, height int) (Sample, error) {
	m, err := c.Affine(r, width, height)
	if err != nil {
		return Sample{}, err
	}
	inv, ok := invertAff3(m)
	if !ok {
		return Sample{}, fmt.Errorf("%w: screen size %dx%d", ErrDegenerateCalibration, width, height)
	}
	x, y := transformAff3(inv, float64(p.X), float64(p.Y))
	return Sample{X: int16(math.Round(x)), Y: int16(math.Round(y)), Pressure: p.Pressure}, nil
}

func transformAff3(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// invertAff3 returns the inverse transform. ok is false when m is singular.
func invertAff3(m f64.Aff3) (inv f64.Aff3, ok bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-10 {
		return f64.Aff3{}, false
	}
	invDet := 1.0 / det
	return f64.Aff3{
		m[4] * invDet,
		-m[1] * invDet,
		(m[1]*m[5] - m[2]*m[4]) * invDet,
		-m[3] * invDet,
		m[0] * invDet,
		(m[2]*m[3] - m[0]*m[5]) * invDet,
	}, true
}
