package touch

// EventKind identifies a recognized gesture event.
type EventKind uint8

const (
	// EventUp is fired when a contact ends.
	EventUp EventKind = iota
	// EventDown is fired when a contact starts.
	EventDown
	// EventClick is fired after EventUp for a short contact.
	EventClick
	// EventLong is fired once while a contact is held past the long-press
	// duration.
	EventLong
	// EventWipe is fired after EventUp when the contact travelled far
	// enough while draw mode was off.
	EventWipe
	// EventDraw is fired for movement during a contact in draw mode.
	EventDraw
	// EventDoubleClick replaces EventClick when the previous click ended
	// within the double-click window.
	EventDoubleClick

	numEventKinds
)

// String returns the event kind name for debugging.
func (k EventKind) String() string {
	switch k {
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventClick:
		return "Click"
	case EventLong:
		return "Long"
	case EventWipe:
		return "Wipe"
	case EventDraw:
		return "Draw"
	case EventDoubleClick:
		return "DoubleClick"
	default:
		return "Unknown"
	}
}

// WipeDirection classifies a wipe by its dominant axis.
//
// The horizontal names follow the panel convention of the reference
// hardware: WipeLeftToRight is reported when the contact ended left of where
// it started.
type WipeDirection uint8

const (
	// WipeLeftToRight is reported when the end x is less than the start x.
	WipeLeftToRight WipeDirection = iota
	// WipeRightToLeft is reported when the end x is not less than the start x.
	WipeRightToLeft
	// WipeBottomToTop is reported when the end y is less than the start y.
	WipeBottomToTop
	// WipeTopToBottom is reported when the end y is not less than the start y.
	WipeTopToBottom
)

// String returns the direction name for debugging.
func (d WipeDirection) String() string {
	switch d {
	case WipeLeftToRight:
		return "LeftToRight"
	case WipeRightToLeft:
		return "RightToLeft"
	case WipeBottomToTop:
		return "BottomToTop"
	case WipeTopToBottom:
		return "TopToBottom"
	default:
		return "Unknown"
	}
}

// IsHorizontal reports whether the wipe was classified on the x axis.
func (d WipeDirection) IsHorizontal() bool {
	return d == WipeLeftToRight || d == WipeRightToLeft
}

// classifyWipe picks the direction from mapped start and end points.
// The horizontal branch needs a strictly larger x distance, so equal
// distances classify as vertical.
func classifyWipe(start, end Point) WipeDirection {
	dx, dy := start.Sub(end)
	if absInt(dx) > absInt(dy) {
		if dx > 0 {
			return WipeLeftToRight
		}
		return WipeRightToLeft
	}
	if dy > 0 {
		return WipeBottomToTop
	}
	return WipeTopToBottom
}

// Event is a recognized gesture delivered to catch-all handlers.
type Event struct {
	Kind EventKind

	// Point is the mapped position at which the event fired. For EventWipe
	// it is the release position, the same as the preceding EventUp.
	Point Point

	// Direction is only meaningful for EventWipe.
	Direction WipeDirection

	// Time is the clock reading of the poll that fired the event.
	Time uint32
}

// PointHandler receives the mapped point of a specific event kind.
type PointHandler func(p Point)

// WipeHandler receives the direction of a wipe.
type WipeHandler func(d WipeDirection)

// EventHandler receives every event, after any kind-specific handler.
type EventHandler func(ev Event)

// handlers is the single-owner callback registry of an Engine.
type handlers struct {
	point [numEventKinds]PointHandler
	wipe  WipeHandler
	all   EventHandler
}

// fire runs the kind-specific handler, then the catch-all handler.
func (h *handlers) fire(ev Event) {
	if ev.Kind == EventWipe {
		if h.wipe != nil {
			h.wipe(ev.Direction)
		}
	} else if fn := h.point[ev.Kind]; fn != nil {
		fn(ev.Point)
	}
	if h.all != nil {
		h.all(ev)
	}
}
