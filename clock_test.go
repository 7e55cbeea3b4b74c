package touch

import (
	"testing"
	"time"
)

func TestLinearMap(t *testing.T) {
	tests := []struct {
		name                             string
		n, inMin, inMax, outMin, outMax int
		want                             int
	}{
		{"start", 230, 230, 3700, 0, 240, 0},
		{"end", 3700, 230, 3700, 0, 240, 240},
		{"truncates", 265, 230, 3700, 0, 240, 2},
		{"long axis", 460, 350, 3700, 0, 320, 10},
		{"reversed output", 0, 0, 10, 100, 0, 100},
		{"below range extrapolates", 0, 100, 200, 0, 100, -100},
		{"truncates toward zero", -5, 0, 10, 0, 3, -1},
		{"output offset", 5, 0, 10, 10, 20, 15},
		{"empty input range", 42, 7, 7, 0, 240, Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearMap(tt.n, tt.inMin, tt.inMax, tt.outMin, tt.outMax)
			if got != tt.want {
				t.Errorf("LinearMap(%d, %d, %d, %d, %d) = %d, want %d",
					tt.n, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
			}
		})
	}
}

func TestInterpolatorFunc(t *testing.T) {
	var calls int
	f := InterpolatorFunc(func(n, inMin, inMax, outMin, outMax int) int {
		calls++
		return n * 2
	})
	if got := f.Map(21, 0, 0, 0, 0); got != 42 {
		t.Errorf("Map = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestClockFunc(t *testing.T) {
	c := ClockFunc(func() uint32 { return 1234 })
	if got := c.Millis(); got != 1234 {
		t.Errorf("Millis() = %d, want 1234", got)
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	first := c.Millis()
	if first > 1000 {
		t.Errorf("fresh clock reads %d ms, want near zero", first)
	}
	time.Sleep(5 * time.Millisecond)
	if second := c.Millis(); second < first+5 {
		t.Errorf("Millis() = %d after sleeping 5ms from %d", second, first)
	}
}
