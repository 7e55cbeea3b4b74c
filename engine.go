package touch

import "time"

// State is the contact state of an Engine.
type State uint8

const (
	// StateIdle means no contact is in progress.
	StateIdle State = iota
	// StateDown means a contact is in progress.
	StateDown
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Engine recognizes gestures from a polled touch source.
//
// Each call to Poll reads one sample and fires zero or more events through
// the registered handlers. For every event the kind-specific handler runs
// first, then the OnEvent handler. A release fires EventUp followed by at
// most one of EventWipe, EventClick and EventDoubleClick.
//
// Engine is NOT safe for concurrent use. Poll, the setters and the handler
// registration must all be called from the same control loop.
type Engine struct {
	source       TouchSource
	display      Display
	clock        Clock
	interpolator Interpolator

	config      Config
	calibration Calibration
	handlers    handlers

	// contact state, mutated only by Poll
	down      bool
	longFired bool
	begin     uint32 // clock at contact start
	lastClick uint32 // clock at the last click, 0 when none is pending
	start     Sample // sample at contact start
	lastMove  Sample // sample at the previous poll of this contact

	lastTouch uint32 // clock at the last mapping
}

// NewEngine creates an Engine reading from source and mapping onto display.
//
// Without options the engine uses a fresh SystemClock, LinearMap,
// DefaultConfig and DefaultCalibration.
func NewEngine(source TouchSource, display Display, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	warnDegenerate(o.calibration)
	return &Engine{
		source:       source,
		display:      display,
		clock:        o.clock,
		interpolator: o.interpolator,
		config:       o.config,
		calibration:  o.calibration,
	}
}

// Poll reads one sample and advances the gesture state machine.
func (e *Engine) Poll() {
	s := e.source.Sample()
	touched := s.Pressure >= e.config.PressureThreshold
	now := e.clock.Millis()

	logPoll(s, now, e.down)

	switch {
	case touched && e.down:
		e.continueContact(s, now)
	case touched:
		e.startContact(s, now)
	case e.down:
		e.endContact(s, now)
	}
}

func (e *Engine) continueContact(s Sample, now uint32) {
	p := e.toScreen(s)

	dx, dy := displacement(e.lastMove, s)
	e.lastMove = s
	if e.config.DrawMode && (dx > e.config.MoveThreshold || dy > e.config.MoveThreshold) {
		e.fire(Event{Kind: EventDraw, Point: p, Time: now})
	}

	if now-e.begin > millis(e.config.LongPress) && !e.longFired {
		e.longFired = true
		e.fire(Event{Kind: EventLong, Point: p, Time: now})
	}
}

func (e *Engine) startContact(s Sample, now uint32) {
	p := e.toScreen(s)
	e.start = s
	e.lastMove = s
	e.begin = now
	e.longFired = false
	e.down = true

	e.fire(Event{Kind: EventDown, Point: p, Time: now})
}

func (e *Engine) endContact(s Sample, now uint32) {
	p := e.toScreen(s)
	e.down = false
	e.longFired = false
	e.fire(Event{Kind: EventUp, Point: p, Time: now})

	dx, dy := displacement(e.start, s)
	if !e.config.DrawMode && (dx > e.config.WipeX || dy > e.config.WipeY) {
		// Both ends are mapped again so they share the current rotation
		// and resolution.
		dir := classifyWipe(e.toScreen(e.start), e.toScreen(s))
		e.fire(Event{Kind: EventWipe, Point: p, Direction: dir, Time: now})
		return
	}

	if now-e.begin >= millis(e.config.LongPress) {
		return
	}
	if now-e.lastClick < millis(e.config.DoubleClick) {
		e.lastClick = 0
		e.fire(Event{Kind: EventDoubleClick, Point: p, Time: now})
		return
	}
	e.lastClick = now
	e.fire(Event{Kind: EventClick, Point: p, Time: now})
}

func (e *Engine) fire(ev Event) {
	logEvent(ev)
	e.handlers.fire(ev)
}

// toScreen maps a sample into display pixels and stamps the last touch time.
func (e *Engine) toScreen(s Sample) Point {
	e.lastTouch = e.clock.Millis()

	if !e.source.CoordinatesAreRaw() {
		return Point{X: s.X, Y: s.Y}
	}

	rot := e.display.Rotation()
	w, h := e.screenSize(rot)
	xs, ys := e.calibration.ranges(rot)
	return Point{
		X: saturate16(e.interpolator.Map(int(s.X), xs.min, xs.max, 0, w)),
		Y: saturate16(e.interpolator.Map(int(s.Y), ys.min, ys.max, 0, h)),
	}
}

// screenSize returns the display size, falling back to the configured
// resolution when the display reports none.
func (e *Engine) screenSize(rot Rotation) (w, h int) {
	w, h = e.display.Width(), e.display.Height()
	if w > 0 && h > 0 {
		return w, h
	}
	w, h = e.config.Width, e.config.Height
	if rot.IsLandscape() {
		w, h = h, w
	}
	return w, h
}

// Unmap converts a display point back into sample units for the current
// rotation. Points from a source that is not raw are returned unchanged.
func (e *Engine) Unmap(p Point) (Sample, error) {
	if !e.source.CoordinatesAreRaw() {
		return Sample{X: p.X, Y: p.Y, Pressure: p.Pressure}, nil
	}
	rot := e.display.Rotation()
	w, h := e.screenSize(rot)
	return e.calibration.Unmap(p, rot, w, h)
}

// State returns whether a contact is in progress.
func (e *Engine) State() State {
	if e.down {
		return StateDown
	}
	return StateIdle
}

// LastTouchTime returns the clock reading of the most recent mapping.
// Every poll that sees or ends a contact updates it.
func (e *Engine) LastTouchTime() uint32 {
	return e.lastTouch
}

// SetRotation sets the rotation of both the touch source and the display.
func (e *Engine) SetRotation(r Rotation) {
	r = RotationFromIndex(int(r))
	e.source.SetRotation(r)
	e.display.SetRotation(r)
	logRotation(r)
}

// Rotation returns the display rotation.
func (e *Engine) Rotation() Rotation {
	return e.display.Rotation()
}

// Config returns the current gesture configuration.
func (e *Engine) Config() Config {
	return e.config
}

// SetConfig replaces the whole gesture configuration.
func (e *Engine) SetConfig(c Config) {
	e.config = c
}

// Calibration returns the current panel calibration.
func (e *Engine) Calibration() Calibration {
	return e.calibration
}

// SetCalibration replaces the panel calibration. A degenerate calibration is
// accepted and logged; affected axes map to Degenerate.
func (e *Engine) SetCalibration(c Calibration) {
	e.calibration = c
	logCalibration(c)
}

// SetPressureThreshold sets the minimum pressure counted as touched.
func (e *Engine) SetPressureThreshold(p int16) { e.config.PressureThreshold = p }

// SetMoveThreshold sets the distance a contact must move to fire EventDraw.
func (e *Engine) SetMoveThreshold(d int) { e.config.MoveThreshold = d }

// SetWipe sets the per-axis start-to-end distances that make a wipe.
func (e *Engine) SetWipe(x, y int) {
	e.config.WipeX = x
	e.config.WipeY = y
}

// SetLongPress sets the hold time for EventLong.
func (e *Engine) SetLongPress(d time.Duration) { e.config.LongPress = d }

// SetDoubleClick sets the double-click window.
func (e *Engine) SetDoubleClick(d time.Duration) { e.config.DoubleClick = d }

// SetDrawMode toggles draw mode. In draw mode movement fires EventDraw and
// releases are never wipes.
func (e *Engine) SetDrawMode(on bool) { e.config.DrawMode = on }

// SetResolution sets the logical portrait resolution used when the display
// reports no size.
func (e *Engine) SetResolution(width, height int) {
	e.config.Width = width
	e.config.Height = height
}

// OnDown registers the handler for EventDown. Nil clears it.
func (e *Engine) OnDown(h PointHandler) { e.handlers.point[EventDown] = h }

// OnUp registers the handler for EventUp. Nil clears it.
func (e *Engine) OnUp(h PointHandler) { e.handlers.point[EventUp] = h }

// OnClick registers the handler for EventClick. Nil clears it.
func (e *Engine) OnClick(h PointHandler) { e.handlers.point[EventClick] = h }

// OnDoubleClick registers the handler for EventDoubleClick. Nil clears it.
func (e *Engine) OnDoubleClick(h PointHandler) { e.handlers.point[EventDoubleClick] = h }

// OnLong registers the handler for EventLong. Nil clears it.
func (e *Engine) OnLong(h PointHandler) { e.handlers.point[EventLong] = h }

// OnDraw registers the handler for EventDraw. Nil clears it.
func (e *Engine) OnDraw(h PointHandler) { e.handlers.point[EventDraw] = h }

// OnWipe registers the handler for EventWipe. Nil clears it.
func (e *Engine) OnWipe(h WipeHandler) { e.handlers.wipe = h }

// OnEvent registers the catch-all handler. It receives every event after
// the kind-specific handler, whether or not one is registered. Nil clears it.
func (e *Engine) OnEvent(h EventHandler) { e.handlers.all = h }
