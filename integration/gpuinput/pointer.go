// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"errors"
	"math"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/touch"
)

// ErrNilSource is returned when a nil PointerEventSource is passed.
var ErrNilSource = errors.New("gpuinput: nil PointerEventSource")

// PressureScale converts normalized pointer pressure (0.0 to 1.0) into
// sample pressure. With the default engine threshold of 10, any pointer
// pressing harder than 1% counts as touched.
const PressureScale = 1000

// PointerSource is a touch.TouchSource fed by gpucontext pointer events.
//
// Only the primary pointer is tracked. A contact starts with PointerDown
// and ends with PointerUp, PointerCancel or PointerLeave of the same
// pointer. Between contacts the last known position is reported with zero
// pressure.
type PointerSource struct {
	mu       sync.Mutex
	x, y     float64
	pressure float32
	active   bool
	id       int
	rotation touch.Rotation
}

// NewPointerSource creates a PointerSource and registers it with src.
func NewPointerSource(src gpucontext.PointerEventSource) (*PointerSource, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	ps := &PointerSource{}
	src.OnPointer(ps.HandlePointer)
	return ps, nil
}

// HandlePointer applies one pointer event. It is registered with the event
// source by NewPointerSource and may also be called directly.
func (ps *PointerSource) HandlePointer(ev gpucontext.PointerEvent) {
	if !ev.IsPrimary {
		return
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	switch ev.Type {
	case gpucontext.PointerDown:
		ps.active = true
		ps.id = ev.PointerID
		ps.x, ps.y = ev.X, ev.Y
		ps.pressure = ev.Pressure
	case gpucontext.PointerMove:
		if ps.active && ev.PointerID != ps.id {
			return
		}
		ps.x, ps.y = ev.X, ev.Y
		if ps.active {
			ps.pressure = ev.Pressure
		}
	case gpucontext.PointerUp:
		if !ps.active || ev.PointerID != ps.id {
			return
		}
		ps.x, ps.y = ev.X, ev.Y
		ps.release()
	case gpucontext.PointerCancel, gpucontext.PointerLeave:
		// Cancel carries no reliable position; the release happens where
		// the contact was last seen.
		if ps.active && ev.PointerID == ps.id {
			ps.release()
		}
	}
}

func (ps *PointerSource) release() {
	ps.active = false
	ps.pressure = 0
	touch.Logger().Debug("gpuinput: pointer released", "id", ps.id)
}

// Sample returns the tracked pointer as a sample in window pixels.
func (ps *PointerSource) Sample() touch.Sample {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return touch.Sample{
		X:        clampInt16(ps.x),
		Y:        clampInt16(ps.y),
		Pressure: clampInt16(float64(ps.pressure) * PressureScale),
	}
}

// SetRotation records the display rotation. Window pointer coordinates
// already follow the window orientation, so samples are unaffected.
func (ps *PointerSource) SetRotation(r touch.Rotation) {
	ps.mu.Lock()
	ps.rotation = r
	ps.mu.Unlock()
}

// Rotation returns the rotation last set with SetRotation.
func (ps *PointerSource) Rotation() touch.Rotation {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.rotation
}

// CoordinatesAreRaw reports false: pointer events are in window pixels.
func (ps *PointerSource) CoordinatesAreRaw() bool { return false }

// Active reports whether the primary pointer is currently in contact.
func (ps *PointerSource) Active() bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.active
}

// clampInt16 rounds v to the nearest int16, saturating at the type bounds.
func clampInt16(v float64) int16 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// Ensure PointerSource implements touch.TouchSource.
var _ touch.TouchSource = (*PointerSource)(nil)
