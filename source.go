package touch

// TouchSource is the hardware side of a touch panel.
//
// Implementations translate a concrete controller API into samples. They are
// queried once per Engine.Poll and must return immediately.
type TouchSource interface {
	// Sample returns the current reading. A released panel reports a
	// pressure below the engine threshold.
	Sample() Sample

	// SetRotation informs the source of the display orientation.
	SetRotation(r Rotation)

	// CoordinatesAreRaw reports whether samples are in panel units that
	// need mapping. Sources that already scale to display pixels return false.
	CoordinatesAreRaw() bool
}

// Display is the display surface the panel is mounted on.
type Display interface {
	SetRotation(r Rotation)
	Rotation() Rotation

	// Width and Height return the size in pixels for the current rotation.
	Width() int
	Height() int
}

// StaticDisplay is a Display with fixed natural dimensions.
// Width and height are swapped for the landscape rotations.
//
// Used for headless operation, replay, and testing.
type StaticDisplay struct {
	width, height int
	rotation      Rotation
}

// NewStaticDisplay creates a StaticDisplay whose portrait size is width x height.
func NewStaticDisplay(width, height int) *StaticDisplay {
	return &StaticDisplay{width: width, height: height}
}

// SetRotation sets the current rotation.
func (d *StaticDisplay) SetRotation(r Rotation) { d.rotation = RotationFromIndex(int(r)) }

// Rotation returns the current rotation.
func (d *StaticDisplay) Rotation() Rotation { return d.rotation }

// Width returns the width for the current rotation.
func (d *StaticDisplay) Width() int {
	if d.rotation.IsLandscape() {
		return d.height
	}
	return d.width
}

// Height returns the height for the current rotation.
func (d *StaticDisplay) Height() int {
	if d.rotation.IsLandscape() {
		return d.width
	}
	return d.height
}

// Ensure StaticDisplay implements Display.
var _ Display = (*StaticDisplay)(nil)
