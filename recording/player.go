package recording

import "github.com/gogpu/touch"

// Poller is anything that polls a touch source, usually *touch.Engine.
type Poller interface {
	Poll()
}

// Player replays a Recording. It implements touch.TouchSource and
// touch.Clock: each Sample returns the next frame and advances the clock to
// that frame's time. Once all frames are consumed, Sample keeps returning
// the last position with zero pressure so a held contact is released.
//
// A Player is not safe for concurrent use.
type Player struct {
	rec      *Recording
	next     int
	now      uint32
	rotation touch.Rotation
}

// Player returns a new Player positioned at the first frame.
func (r *Recording) Player() *Player {
	return &Player{rec: r, rotation: r.rotation}
}

// Sample returns the next frame.
func (p *Player) Sample() touch.Sample {
	frames := p.rec.frames
	if p.next >= len(frames) {
		if len(frames) == 0 {
			return touch.Sample{}
		}
		last := frames[len(frames)-1]
		return touch.Sample{X: last.X, Y: last.Y}
	}
	f := frames[p.next]
	p.next++
	p.now = f.Time
	return f.Sample()
}

// Millis returns the time of the frame most recently returned by Sample.
func (p *Player) Millis() uint32 {
	return p.now
}

// SetRotation records the rotation requested by the engine.
func (p *Player) SetRotation(r touch.Rotation) {
	p.rotation = r
}

// Rotation returns the rotation last set on the player.
func (p *Player) Rotation() touch.Rotation {
	return p.rotation
}

// CoordinatesAreRaw reports whether the recording holds panel units.
func (p *Player) CoordinatesAreRaw() bool {
	return p.rec.raw
}

// Done reports whether every frame has been returned.
func (p *Player) Done() bool {
	return p.next >= len(p.rec.frames)
}

// Reset rewinds the player to the first frame.
func (p *Player) Reset() {
	p.next = 0
	p.now = 0
}

// Run polls e once per remaining frame, then once more so a contact held at
// the end of the trace is released. It returns the number of polls.
//
// The poll count is fixed before the first poll, so Run terminates even when
// e reads from a different source.
func (p *Player) Run(e Poller) int {
	polls := len(p.rec.frames) - p.next + 1
	if polls < 1 {
		polls = 1
	}
	for range polls {
		e.Poll()
	}
	return polls
}

// Ensure Player implements touch.TouchSource and touch.Clock.
var (
	_ touch.TouchSource = (*Player)(nil)
	_ touch.Clock       = (*Player)(nil)
)
