package recording

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/touch"
)

var (
	// ErrEmptyRecording is returned when a trace has no frames.
	ErrEmptyRecording = errors.New("recording: no frames")

	// ErrUnsortedFrames is returned when frame times go backwards.
	ErrUnsortedFrames = errors.New("recording: frame times decrease")

	// ErrInvalidRotation is returned when a trace names a rotation outside 0..3.
	ErrInvalidRotation = errors.New("recording: invalid rotation")
)

// Recording is an immutable sample trace.
// It can be replayed through an engine with Player.
type Recording struct {
	rotation touch.Rotation
	raw      bool
	frames   []Frame
}

// trace is the TOML form of a Recording.
type trace struct {
	Rotation int     `toml:"rotation"`
	Raw      bool    `toml:"raw"`
	Frames   []Frame `toml:"frame"`
}

// New creates a Recording from frames. The frames are copied.
func New(rotation touch.Rotation, raw bool, frames []Frame) (*Recording, error) {
	r := &Recording{
		rotation: touch.RotationFromIndex(int(rotation)),
		raw:      raw,
		frames:   append([]Frame(nil), frames...),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recording) validate() error {
	if len(r.frames) == 0 {
		return ErrEmptyRecording
	}
	for i := 1; i < len(r.frames); i++ {
		// Times may wrap at 2^32; a step is backwards when it exceeds half
		// the clock range.
		if int32(r.frames[i].Time-r.frames[i-1].Time) < 0 {
			return fmt.Errorf("%w: frame %d at %d ms follows %d ms",
				ErrUnsortedFrames, i, r.frames[i].Time, r.frames[i-1].Time)
		}
	}
	return nil
}

// Rotation returns the rotation the trace was captured in.
func (r *Recording) Rotation() touch.Rotation {
	return r.rotation
}

// Raw reports whether the frames are in panel units.
func (r *Recording) Raw() bool {
	return r.raw
}

// Frames returns the recorded frames. The slice must not be modified.
func (r *Recording) Frames() []Frame {
	return r.frames
}

// Len returns the number of frames.
func (r *Recording) Len() int {
	return len(r.frames)
}

// Duration returns the time between the first and the last frame in
// milliseconds.
func (r *Recording) Duration() uint32 {
	if len(r.frames) == 0 {
		return 0
	}
	return r.frames[len(r.frames)-1].Time - r.frames[0].Time
}

// Encode writes the recording to w as TOML.
func (r *Recording) Encode(w io.Writer) error {
	if err := r.validate(); err != nil {
		return err
	}
	t := trace{
		Rotation: r.rotation.Index(),
		Raw:      r.raw,
		Frames:   r.frames,
	}
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}
	return nil
}

// SaveFile writes the recording to path as TOML.
func (r *Recording) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("recording: save %s: %w", path, err)
	}
	touch.Logger().Info("recording: saved", "path", path, "frames", len(r.frames))
	return nil
}

// Decode reads a TOML trace from rd.
func Decode(rd io.Reader) (*Recording, error) {
	var t trace
	if _, err := toml.NewDecoder(rd).Decode(&t); err != nil {
		return nil, fmt.Errorf("recording: decode: %w", err)
	}
	return fromTrace(t)
}

// Load reads a TOML trace from path.
func Load(path string) (*Recording, error) {
	var t trace
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("recording: load %s: %w", path, err)
	}
	r, err := fromTrace(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	touch.Logger().Info("recording: loaded", "path", path, "frames", r.Len(), "duration_ms", r.Duration())
	return r, nil
}

func fromTrace(t trace) (*Recording, error) {
	if t.Rotation < 0 || t.Rotation > 3 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRotation, t.Rotation)
	}
	return New(touch.Rotation(t.Rotation), t.Raw, t.Frames)
}
