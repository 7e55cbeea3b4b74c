package recording

import (
	"reflect"
	"testing"

	"github.com/gogpu/touch"
)

func TestPlayerSequence(t *testing.T) {
	r, err := New(touch.Portrait, true, []Frame{
		{Time: 5, X: 1, Y: 2, Pressure: 20},
		{Time: 9, X: 3, Y: 4, Pressure: 21},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p := r.Player()

	if p.Done() {
		t.Fatal("new player is Done")
	}
	if s := p.Sample(); s != (touch.Sample{X: 1, Y: 2, Pressure: 20}) || p.Millis() != 5 {
		t.Errorf("first Sample() = %+v at %d", s, p.Millis())
	}
	if s := p.Sample(); s != (touch.Sample{X: 3, Y: 4, Pressure: 21}) || p.Millis() != 9 {
		t.Errorf("second Sample() = %+v at %d", s, p.Millis())
	}
	if !p.Done() {
		t.Error("player not Done after last frame")
	}
	if s := p.Sample(); s != (touch.Sample{X: 3, Y: 4}) || p.Millis() != 9 {
		t.Errorf("Sample() past end = %+v at %d, want release at last position", s, p.Millis())
	}

	p.Reset()
	if p.Done() || p.Millis() != 0 {
		t.Error("Reset did not rewind the player")
	}
}

func TestPlayerSourceMethods(t *testing.T) {
	r, err := New(touch.Landscape, false, []Frame{{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p := r.Player()
	if p.Rotation() != touch.Landscape {
		t.Errorf("Rotation() = %v, want Landscape", p.Rotation())
	}
	p.SetRotation(touch.Portrait)
	if p.Rotation() != touch.Portrait {
		t.Errorf("Rotation() = %v after SetRotation, want Portrait", p.Rotation())
	}
	if p.CoordinatesAreRaw() {
		t.Error("CoordinatesAreRaw() = true for a screen-space recording")
	}
}

// countingPoller counts Poll calls.
type countingPoller struct{ polls int }

func (c *countingPoller) Poll() { c.polls++ }

func TestPlayerRunWithoutEngine(t *testing.T) {
	r, err := New(touch.Portrait, true, []Frame{{}, {}, {}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c := &countingPoller{}
	if n := r.Player().Run(c); n != 4 || c.polls != 4 {
		t.Errorf("Run() = %d with %d polls, want 4", n, c.polls)
	}
}

func TestPlayerRunCountsRemainingFrames(t *testing.T) {
	r, err := New(touch.Portrait, true, []Frame{{Time: 1}, {Time: 2}, {Time: 3}, {Time: 4}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p := r.Player()
	p.Sample()

	// The engine reads from another player, so p never advances while Run polls.
	other := r.Player()
	e := touch.NewEngine(other, touch.NewStaticDisplay(touch.DefaultWidth, touch.DefaultHeight), touch.WithClock(other))
	if n := p.Run(e); n != 4 {
		t.Errorf("Run() = %d polls, want 4", n)
	}
	if p.Done() {
		t.Error("Run advanced a player nobody sampled")
	}
	if !other.Done() {
		t.Error("engine source not drained")
	}
}

func replay(t *testing.T, path string, opts ...touch.Option) []touch.Event {
	t.Helper()
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}
	p := r.Player()
	opts = append([]touch.Option{touch.WithClock(p)}, opts...)
	e := touch.NewEngine(p, touch.NewStaticDisplay(touch.DefaultWidth, touch.DefaultHeight), opts...)
	e.SetRotation(r.Rotation())

	var events []touch.Event
	e.OnEvent(func(ev touch.Event) { events = append(events, ev) })
	p.Run(e)
	return events
}

func TestReplayDoubleClick(t *testing.T) {
	events := replay(t, "testdata/doubleclick.toml")

	type got struct {
		kind touch.EventKind
		p    touch.Point
		at   uint32
	}
	var gotEvents []got
	for _, ev := range events {
		gotEvents = append(gotEvents, got{ev.Kind, ev.Point, ev.Time})
	}
	want := []got{
		{touch.EventDown, touch.Pt(3, 11), 10},
		{touch.EventUp, touch.Pt(4, 12), 511},
		{touch.EventClick, touch.Pt(4, 12), 511},
		{touch.EventDown, touch.Pt(4, 12), 700},
		{touch.EventUp, touch.Pt(4, 13), 1000},
		{touch.EventDoubleClick, touch.Pt(4, 13), 1000},
	}
	if !reflect.DeepEqual(gotEvents, want) {
		t.Errorf("events = %v, want %v", gotEvents, want)
	}
}

func TestReplayHoldReleasesAtEnd(t *testing.T) {
	events := replay(t, "testdata/hold.toml")

	kinds := make([]touch.EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	want := []touch.EventKind{touch.EventDown, touch.EventLong, touch.EventUp}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
	if last := events[len(events)-1]; last.Time != 1200 {
		t.Errorf("release at %d ms, want 1200", last.Time)
	}
}

func TestRecordThenReplay(t *testing.T) {
	src := &scriptSource{raw: true, samples: []touch.Sample{
		{X: 275, Y: 470, Pressure: 20},
		{X: 295, Y: 480, Pressure: 2},
	}}
	frameTimes := []uint32{10, 511}
	i := 0
	live := touch.ClockFunc(func() uint32 { return frameTimes[min(i, len(frameTimes)-1)] })
	rec := NewRecorder(src, live)
	e := touch.NewEngine(rec, touch.NewStaticDisplay(touch.DefaultWidth, touch.DefaultHeight), touch.WithClock(live))
	var liveKinds []touch.EventKind
	e.OnEvent(func(ev touch.Event) { liveKinds = append(liveKinds, ev.Kind) })
	for ; i < len(frameTimes); i++ {
		e.Poll()
	}

	p := rec.FinishRecording().Player()
	e2 := touch.NewEngine(p, touch.NewStaticDisplay(touch.DefaultWidth, touch.DefaultHeight), touch.WithClock(p))
	var replayKinds []touch.EventKind
	e2.OnEvent(func(ev touch.Event) { replayKinds = append(replayKinds, ev.Kind) })
	p.Run(e2)

	if !reflect.DeepEqual(liveKinds, replayKinds) {
		t.Errorf("replay kinds = %v, live kinds = %v", replayKinds, liveKinds)
	}
}
