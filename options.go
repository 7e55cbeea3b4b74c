package touch

// Option configures an Engine during creation.
//
// Example:
//
//	// Default system clock and linear interpolation
//	e := touch.NewEngine(src, display)
//
//	// Injected clock for deterministic replay
//	e := touch.NewEngine(src, display, touch.WithClock(player))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	clock        Clock
	interpolator Interpolator
	config       Config
	calibration  Calibration
}

// defaultOptions returns the default engine options. A fresh SystemClock is
// created per engine so no time base is shared between engines.
func defaultOptions() engineOptions {
	return engineOptions{
		clock:        NewSystemClock(),
		interpolator: InterpolatorFunc(LinearMap),
		config:       DefaultConfig(),
		calibration:  DefaultCalibration(),
	}
}

// WithClock sets the time base. A nil clock keeps the default.
func WithClock(c Clock) Option {
	return func(o *engineOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithInterpolator replaces LinearMap for panel-to-screen scaling.
// A nil interpolator keeps the default.
func WithInterpolator(i Interpolator) Option {
	return func(o *engineOptions) {
		if i != nil {
			o.interpolator = i
		}
	}
}

// WithConfig sets the initial gesture configuration.
func WithConfig(c Config) Option {
	return func(o *engineOptions) {
		o.config = c
	}
}

// WithCalibration sets the initial panel calibration.
func WithCalibration(c Calibration) Option {
	return func(o *engineOptions) {
		o.calibration = c
	}
}
