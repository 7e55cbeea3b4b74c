package recording

import (
	"github.com/gogpu/touch"
)

// Frame is one polled sample and the clock reading at which it was taken.
type Frame struct {
	Time     uint32 `toml:"t"`
	X        int16  `toml:"x"`
	Y        int16  `toml:"y"`
	Pressure int16  `toml:"p"`
}

// Sample returns the frame as a touch.Sample.
func (f Frame) Sample() touch.Sample {
	return touch.Sample{X: f.X, Y: f.Y, Pressure: f.Pressure}
}

// Recorder captures samples as they are read from a touch source.
// It is itself a touch.TouchSource and is meant to be placed between the
// real source and the engine. Use FinishRecording to obtain an immutable
// Recording.
//
// Example:
//
//	rec := recording.NewRecorder(panel, clock)
//	engine := touch.NewEngine(rec, display, touch.WithClock(clock))
//	for running {
//	    engine.Poll()
//	}
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	source   touch.TouchSource
	clock    touch.Clock
	rotation touch.Rotation
	frames   []Frame
}

// NewRecorder creates a Recorder reading from source and stamping frames
// with clock. The clock should be the one the engine uses.
func NewRecorder(source touch.TouchSource, clock touch.Clock) *Recorder {
	return &Recorder{
		source: source,
		clock:  clock,
		frames: make([]Frame, 0, 256),
	}
}

// Sample reads from the wrapped source and records the result.
func (r *Recorder) Sample() touch.Sample {
	s := r.source.Sample()
	r.frames = append(r.frames, Frame{
		Time:     r.clock.Millis(),
		X:        s.X,
		Y:        s.Y,
		Pressure: s.Pressure,
	})
	return s
}

// SetRotation forwards the rotation to the wrapped source and remembers it
// for the recording.
func (r *Recorder) SetRotation(rot touch.Rotation) {
	if len(r.frames) > 0 && rot != r.rotation {
		touch.Logger().Warn("recording: rotation changed mid-trace; replay uses the last rotation",
			"from", r.rotation, "to", rot, "frames", len(r.frames))
	}
	r.rotation = rot
	r.source.SetRotation(rot)
}

// CoordinatesAreRaw reports whether the wrapped source is raw.
func (r *Recorder) CoordinatesAreRaw() bool {
	return r.source.CoordinatesAreRaw()
}

// Len returns the number of frames captured so far.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// FinishRecording returns an immutable Recording of all captured frames.
// Frame times keep the clock readings as captured, since the engine's
// double-click detection depends on absolute times. After calling
// FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	frames := make([]Frame, len(r.frames))
	copy(frames, r.frames)
	return &Recording{
		rotation: r.rotation,
		raw:      r.source.CoordinatesAreRaw(),
		frames:   frames,
	}
}

// Ensure Recorder implements touch.TouchSource.
var _ touch.TouchSource = (*Recorder)(nil)
