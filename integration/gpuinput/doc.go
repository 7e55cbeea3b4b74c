// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuinput connects the touch gesture engine to gogpu windows.
//
// A gogpu window delivers W3C-style pointer events through
// gpucontext.PointerEventSource and reports its geometry through
// gpucontext.WindowProvider. This package adapts both to the interfaces the
// engine polls:
//
//	gpucontext.PointerEventSource -> PointerSource -> touch.TouchSource
//	gpucontext.WindowProvider     -> WindowSurface -> touch.Display
//
// # Usage
//
//	src := gpuinput.NewPointerSource(app.EventSource())
//	display := gpuinput.NewWindowSurface(app)
//	engine := touch.NewEngine(src, display)
//	engine.OnClick(func(p touch.Point) { ... })
//
//	// once per frame
//	engine.Poll()
//
// Pointer coordinates are already in logical window pixels, so
// PointerSource reports CoordinatesAreRaw() == false and the engine passes
// them through without calibration.
//
// # Thread Safety
//
// PointerSource may receive events on the UI thread while the engine polls
// on another goroutine; its state is guarded by a mutex. WindowSurface is
// NOT safe for concurrent use.
package gpuinput
