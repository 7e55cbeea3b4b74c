package touch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while an engine polls on another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for touch and its sub-packages.
// By default, touch produces no log output. Pass nil to restore silence.
//
// Log levels used by touch:
//   - [slog.LevelDebug]: per-poll diagnostics (samples, mapped points, events)
//   - [slog.LevelInfo]: configuration changes (rotation, calibration)
//   - [slog.LevelWarn]: degenerate calibration
//
// Example:
//
//	touch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by touch.
// Sub-packages call this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logPoll records one raw sample. Attributes are only built when debug
// logging is enabled.
func logPoll(s Sample, now uint32, down bool) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("touch: poll", "x", s.X, "y", s.Y, "pressure", s.Pressure, "now", now, "down", down)
}

func logEvent(ev Event) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []any{"kind", ev.Kind, "x", ev.Point.X, "y", ev.Point.Y, "time", ev.Time}
	if ev.Kind == EventWipe {
		attrs = append(attrs, "direction", ev.Direction)
	}
	l.Debug("touch: event", attrs...)
}

func logRotation(r Rotation) {
	Logger().Info("touch: rotation changed", "rotation", r, "landscape", r.IsLandscape())
}

// warnDegenerate reports a calibration whose axes collapse to Degenerate.
func warnDegenerate(c Calibration) {
	if err := c.Validate(); err != nil {
		Logger().Warn("touch: calibration will map to sentinel values", "err", err)
	}
}

func logCalibration(c Calibration) {
	warnDegenerate(c)
	Logger().Info("touch: calibration changed",
		"short", []int{c.ShortMin, c.ShortMax},
		"long", []int{c.LongMin, c.LongMax},
		"edgeBand", c.EdgeBand)
}
