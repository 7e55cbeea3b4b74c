// Package recording captures touch sample traces and replays them through
// the gesture engine.
//
// A trace is the sequence of samples an engine polled, each stamped with the
// clock reading of that poll. Replaying a trace with the same configuration
// reproduces the same events, which makes traces useful for regression
// tests, for tuning thresholds offline, and for bug reports from devices in
// the field.
//
// # Architecture
//
//   - Recorder: wraps a live touch.TouchSource and captures every sample
//   - Recording: an immutable trace, encodable as TOML
//   - Player: replays a Recording as both touch.TouchSource and touch.Clock
//
// # Basic Usage
//
// Record while the engine runs:
//
//	rec := recording.NewRecorder(panel, clock)
//	engine := touch.NewEngine(rec, display, touch.WithClock(clock))
//	// ... poll ...
//	r := rec.FinishRecording()
//	r.Encode(file)
//
// Replay later:
//
//	r, err := recording.Load("trace.toml")
//	player := r.Player()
//	engine := touch.NewEngine(player, display, touch.WithClock(player))
//	engine.SetRotation(r.Rotation())
//	player.Run(engine)
//
// # File Format
//
// Traces are TOML documents with one [[frame]] table per poll:
//
//	rotation = 0
//	raw = true
//
//	[[frame]]
//	t = 10
//	x = 275
//	y = 470
//	p = 20
//
// Frame times are clock readings in milliseconds. They must not go
// backwards, except for the wrap of the 32-bit clock.
package recording
