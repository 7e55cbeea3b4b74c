package recording

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/touch"
)

// scriptSource implements touch.TouchSource, returning scripted samples.
type scriptSource struct {
	samples  []touch.Sample
	next     int
	raw      bool
	rotation touch.Rotation
}

func (s *scriptSource) Sample() touch.Sample {
	if s.next >= len(s.samples) {
		return touch.Sample{}
	}
	v := s.samples[s.next]
	s.next++
	return v
}

func (s *scriptSource) SetRotation(r touch.Rotation) { s.rotation = r }
func (s *scriptSource) CoordinatesAreRaw() bool      { return s.raw }

// stepClock implements touch.Clock, advancing by step on every read.
type stepClock struct {
	now, step uint32
}

func (c *stepClock) Millis() uint32 {
	v := c.now
	c.now += c.step
	return v
}

func TestRecorderCapturesSamples(t *testing.T) {
	src := &scriptSource{raw: true, samples: []touch.Sample{
		{X: 1, Y: 2, Pressure: 30},
		{X: 3, Y: 4, Pressure: 31},
		{X: 5, Y: 6, Pressure: 0},
	}}
	rec := NewRecorder(src, &stepClock{now: 1000, step: 20})
	rec.SetRotation(touch.PortraitFlipped)

	for range 3 {
		rec.Sample()
	}
	if rec.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rec.Len())
	}
	if src.rotation != touch.PortraitFlipped {
		t.Errorf("source rotation = %v, want PortraitFlipped", src.rotation)
	}

	r := rec.FinishRecording()
	want := []Frame{
		{Time: 1000, X: 1, Y: 2, Pressure: 30},
		{Time: 1020, X: 3, Y: 4, Pressure: 31},
		{Time: 1040, X: 5, Y: 6, Pressure: 0},
	}
	if !reflect.DeepEqual(r.Frames(), want) {
		t.Errorf("Frames() = %v, want %v", r.Frames(), want)
	}
	if r.Rotation() != touch.PortraitFlipped || !r.Raw() {
		t.Errorf("Rotation()=%v Raw()=%v, want PortraitFlipped true", r.Rotation(), r.Raw())
	}
	if r.Duration() != 40 {
		t.Errorf("Duration() = %d, want 40", r.Duration())
	}
}

func TestRecorderAcrossClockWrap(t *testing.T) {
	src := &scriptSource{samples: []touch.Sample{{Pressure: 20}, {Pressure: 20}}}
	rec := NewRecorder(src, &stepClock{now: ^uint32(0) - 9, step: 30})
	rec.Sample()
	rec.Sample()

	r := rec.FinishRecording()
	if got := r.Frames()[1].Time; got != 20 {
		t.Errorf("second frame time = %d, want 20", got)
	}
	if r.Duration() != 30 {
		t.Errorf("Duration() = %d, want 30", r.Duration())
	}
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		t.Errorf("Encode() of a wrapped trace error = %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(touch.Portrait, true, nil); !errors.Is(err, ErrEmptyRecording) {
		t.Errorf("New(nil) error = %v, want ErrEmptyRecording", err)
	}
	frames := []Frame{{Time: 10}, {Time: 5}}
	if _, err := New(touch.Portrait, true, frames); !errors.Is(err, ErrUnsortedFrames) {
		t.Errorf("New(unsorted) error = %v, want ErrUnsortedFrames", err)
	}
	if _, err := New(touch.Portrait, true, []Frame{{Time: 5}, {Time: 5}}); err != nil {
		t.Errorf("New(equal times) error = %v", err)
	}
}

func TestNewCopiesFrames(t *testing.T) {
	frames := []Frame{{Time: 1, X: 7}}
	r, err := New(touch.Landscape, false, frames)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	frames[0].X = 99
	if r.Frames()[0].X != 7 {
		t.Error("Recording shares the caller's frame slice")
	}
}

func TestEncodeDecode(t *testing.T) {
	orig, err := New(touch.LandscapeFlipped, true, []Frame{
		{Time: 0, X: 275, Y: 470, Pressure: 20},
		{Time: 501, X: 295, Y: 480, Pressure: 2},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := orig.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[[frame]]") {
		t.Errorf("encoded trace has no [[frame]] tables:\n%s", buf.String())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("Decode(Encode(r)) = %+v, want %+v", got, orig)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"no frames", "rotation = 0\nraw = true\n", ErrEmptyRecording},
		{"unsorted", "[[frame]]\nt = 9\n[[frame]]\nt = 3\n", ErrUnsortedFrames},
		{"bad rotation", "rotation = 7\n[[frame]]\nt = 0\n", ErrInvalidRotation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveFileLoad(t *testing.T) {
	orig, err := New(touch.Portrait, false, []Frame{{Time: 3, X: 4, Y: 5, Pressure: 6}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "trace.toml")
	if err := orig.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("Load(SaveFile(r)) = %+v, want %+v", got, orig)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/missing.toml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestEncodeEmpty(t *testing.T) {
	r := NewRecorder(&scriptSource{}, &stepClock{}).FinishRecording()
	if err := r.Encode(&bytes.Buffer{}); !errors.Is(err, ErrEmptyRecording) {
		t.Errorf("Encode() error = %v, want ErrEmptyRecording", err)
	}
}
