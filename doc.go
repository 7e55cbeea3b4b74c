// Package touch recognizes gestures on a single-contact touch panel.
//
// # Overview
//
// touch turns a stream of polled panel samples into semantic events (down,
// up, click, double click, long press, draw, wipe) and maps panel coordinates
// into display pixels, taking the display rotation and an unlit edge band of
// the panel into account. Geometric hit tests (rectangle, circle, polygon,
// pie slice) classify the delivered points against UI regions.
//
// # Quick Start
//
//	import "github.com/gogpu/touch"
//
//	e := touch.NewEngine(panel, display)
//	e.SetRotation(touch.Landscape)
//	e.OnClick(func(p touch.Point) {
//	    if touch.InRectangle(p, 10, 10, 80, 40) {
//	        okPressed()
//	    }
//	})
//
//	for {
//	    e.Poll()
//	    time.Sleep(10 * time.Millisecond)
//	}
//
// # Hardware
//
// The engine consumes two capability interfaces: TouchSource for the panel
// controller and Display for the screen. Sources that already report display
// pixels return false from CoordinatesAreRaw and are passed through
// unmapped. Adapters for gogpu windows live in integration/gpuinput.
//
// # Coordinate System
//
// Uses standard display coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pie-slice angles in degrees, 0 is right, increases counter-clockwise
//
// # Timing
//
// All timing uses a millisecond Clock injected at construction. Replays and
// tests supply their own clock; see the recording package.
package touch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
