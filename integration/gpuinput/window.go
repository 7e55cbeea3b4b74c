// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/touch"
)

// ErrNilWindow is returned when a nil WindowProvider is passed.
var ErrNilWindow = errors.New("gpuinput: nil WindowProvider")

// WindowSurface is a touch.Display backed by a gogpu window.
//
// The window's reported size is taken as the natural (portrait) size; the
// landscape rotations swap width and height. Changing the rotation requests
// a redraw so the host can re-layout.
type WindowSurface struct {
	window   gpucontext.WindowProvider
	rotation touch.Rotation
}

// NewWindowSurface creates a WindowSurface for the given window.
func NewWindowSurface(window gpucontext.WindowProvider) (*WindowSurface, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	return &WindowSurface{window: window}, nil
}

// SetRotation sets the rotation and requests a redraw.
func (s *WindowSurface) SetRotation(r touch.Rotation) {
	s.rotation = touch.RotationFromIndex(int(r))
	s.window.RequestRedraw()
}

// Rotation returns the current rotation.
func (s *WindowSurface) Rotation() touch.Rotation { return s.rotation }

// Width returns the window width in logical pixels for the current rotation.
func (s *WindowSurface) Width() int {
	w, h := s.window.Size()
	if s.rotation.IsLandscape() {
		return h
	}
	return w
}

// Height returns the window height in logical pixels for the current rotation.
func (s *WindowSurface) Height() int {
	w, h := s.window.Size()
	if s.rotation.IsLandscape() {
		return w
	}
	return h
}

// PhysicalSize returns the size for the current rotation in physical pixels.
func (s *WindowSurface) PhysicalSize() (width, height int) {
	scale := s.window.ScaleFactor()
	return int(float64(s.Width()) * scale), int(float64(s.Height()) * scale)
}

// Ensure WindowSurface implements touch.Display.
var _ touch.Display = (*WindowSurface)(nil)
