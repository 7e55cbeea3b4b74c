package touch

// Rotation is one of the four display orientations.
//
// The numbering follows the usual TFT driver convention and is cyclic:
// RotationFromIndex(4) == Portrait. The touch source and the display must
// always be set to the same rotation; Engine.SetRotation does both.
type Rotation uint8

const (
	// Portrait is the natural orientation (connector top right).
	Portrait Rotation = iota
	// Landscape is rotated a quarter turn (connector bottom right).
	Landscape
	// PortraitFlipped is upside-down portrait (connector bottom left).
	PortraitFlipped
	// LandscapeFlipped is upside-down landscape (connector top left).
	LandscapeFlipped
)

// RotationFromIndex converts any integer into a Rotation, wrapping modulo 4.
// Negative values wrap the same way (-1 is LandscapeFlipped).
func RotationFromIndex(n int) Rotation {
	return Rotation(((n % 4) + 4) % 4)
}

// Index returns the rotation number 0..3.
func (r Rotation) Index() int {
	return int(r % 4)
}

// IsLandscape reports whether width and height are swapped relative to the
// natural orientation.
func (r Rotation) IsLandscape() bool {
	return r%2 == 1
}

// Next returns the rotation a quarter turn further.
func (r Rotation) Next() Rotation {
	return RotationFromIndex(r.Index() + 1)
}

// String returns the rotation name for debugging.
func (r Rotation) String() string {
	switch r {
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	case PortraitFlipped:
		return "PortraitFlipped"
	case LandscapeFlipped:
		return "LandscapeFlipped"
	default:
		return "Unknown"
	}
}
