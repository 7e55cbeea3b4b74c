package touch

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("touch: invalid config")

// Default gesture configuration.
const (
	DefaultPressureThreshold = 10
	DefaultMoveThreshold     = 10
	DefaultWipeX             = 500
	DefaultWipeY             = 700
	DefaultLongPress         = 1000 * time.Millisecond
	DefaultDoubleClick       = 500 * time.Millisecond
	DefaultWidth             = 240
	DefaultHeight            = 320
)

// Config holds the gesture recognition parameters of an Engine.
//
// Distances are in sample units: panel units for raw sources, pixels for
// sources that already report display coordinates.
type Config struct {
	// PressureThreshold is the minimum sample pressure counted as touched.
	PressureThreshold int16

	// MoveThreshold is the per-axis distance from the last move position
	// that a continuing contact must exceed to fire EventDraw.
	MoveThreshold int

	// WipeX and WipeY are the start-to-end distances on each axis, either
	// of which must be exceeded to classify a release as a wipe.
	WipeX, WipeY int

	// LongPress is the hold time after which EventLong fires. Contacts
	// shorter than this end in a click.
	LongPress time.Duration

	// DoubleClick is the window after a click within which the next click
	// becomes EventDoubleClick.
	DoubleClick time.Duration

	// DrawMode enables EventDraw and disables wipe detection.
	DrawMode bool

	// Width and Height are the logical screen resolution in portrait
	// orientation. They are used when the display reports no size.
	Width, Height int
}

// DefaultConfig returns the default gesture configuration.
func DefaultConfig() Config {
	return Config{
		PressureThreshold: DefaultPressureThreshold,
		MoveThreshold:     DefaultMoveThreshold,
		WipeX:             DefaultWipeX,
		WipeY:             DefaultWipeY,
		LongPress:         DefaultLongPress,
		DoubleClick:       DefaultDoubleClick,
		DrawMode:          true,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
	}
}

// Validate checks that all thresholds are usable.
func (c Config) Validate() error {
	switch {
	case c.PressureThreshold <= 0:
		return fmt.Errorf("%w: pressure threshold %d", ErrInvalidConfig, c.PressureThreshold)
	case c.MoveThreshold < 0:
		return fmt.Errorf("%w: move threshold %d", ErrInvalidConfig, c.MoveThreshold)
	case c.WipeX < 0 || c.WipeY < 0:
		return fmt.Errorf("%w: wipe distance %dx%d", ErrInvalidConfig, c.WipeX, c.WipeY)
	case c.LongPress < 0 || c.DoubleClick < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// millis converts a duration into clock ticks, saturating at the clock range.
func millis(d time.Duration) uint32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > int64(^uint32(0)):
		return ^uint32(0)
	}
	return uint32(ms)
}
