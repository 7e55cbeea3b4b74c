package touch

import "testing"

func TestClassifyWipe(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		want       WipeDirection
	}{
		{"x decreasing", Pt(200, 100), Pt(20, 110), WipeLeftToRight},
		{"x increasing", Pt(20, 100), Pt(200, 90), WipeRightToLeft},
		{"y decreasing", Pt(100, 300), Pt(110, 20), WipeBottomToTop},
		{"y increasing", Pt(100, 20), Pt(90, 300), WipeTopToBottom},
		{"tie goes vertical", Pt(0, 0), Pt(50, 50), WipeTopToBottom},
		{"tie goes vertical upward", Pt(50, 50), Pt(0, 0), WipeBottomToTop},
		{"no movement", Pt(10, 10), Pt(10, 10), WipeTopToBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyWipe(tt.start, tt.end); got != tt.want {
				t.Errorf("classifyWipe(%+v, %+v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestWipeDirectionIsHorizontal(t *testing.T) {
	for d, want := range map[WipeDirection]bool{
		WipeLeftToRight: true,
		WipeRightToLeft: true,
		WipeBottomToTop: false,
		WipeTopToBottom: false,
	} {
		if got := d.IsHorizontal(); got != want {
			t.Errorf("%v.IsHorizontal() = %v, want %v", d, got, want)
		}
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventUp, "Up"},
		{EventDown, "Down"},
		{EventClick, "Click"},
		{EventLong, "Long"},
		{EventWipe, "Wipe"},
		{EventDraw, "Draw"},
		{EventDoubleClick, "DoubleClick"},
		{numEventKinds, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHandlersFireWipe(t *testing.T) {
	var h handlers
	var gotDir WipeDirection
	var gotAll []Event
	h.wipe = func(d WipeDirection) { gotDir = d }
	h.all = func(ev Event) { gotAll = append(gotAll, ev) }

	ev := Event{Kind: EventWipe, Point: Pt(5, 6), Direction: WipeBottomToTop}
	h.fire(ev)

	if gotDir != WipeBottomToTop {
		t.Errorf("wipe handler got %v, want BottomToTop", gotDir)
	}
	if len(gotAll) != 1 || gotAll[0] != ev {
		t.Errorf("catch-all got %v, want [%v]", gotAll, ev)
	}
}

func TestHandlersFireWithoutHandlers(t *testing.T) {
	var h handlers
	for k := EventUp; k < numEventKinds; k++ {
		h.fire(Event{Kind: k})
	}
}
