// Package profile loads gesture and panel calibration settings from TOML.
//
// A profile file looks like this; every key is optional and falls back to
// the engine defaults:
//
//	rotation = 1
//
//	[gesture]
//	pressure_threshold = 10
//	move_threshold = 10
//	wipe_x = 500
//	wipe_y = 700
//	long_press_ms = 1000
//	double_click_ms = 500
//	draw_mode = false
//	width = 240
//	height = 320
//
//	[calibration]
//	short_min = 230
//	short_max = 3700
//	long_min = 350
//	long_max = 3900
//	edge_band = 200
package profile

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/touch"
)

var (
	// ErrUnknownKey is returned when a profile contains keys that do not
	// correspond to any setting.
	ErrUnknownKey = errors.New("profile: unknown key")

	// ErrInvalidProfile is returned when a decoded profile fails validation.
	ErrInvalidProfile = errors.New("profile: invalid profile")
)

// Profile is the on-disk form of an engine setup.
// Durations are whole milliseconds.
type Profile struct {
	Rotation    int         `toml:"rotation"`
	Gesture     Gesture     `toml:"gesture"`
	Calibration Calibration `toml:"calibration"`
}

// Gesture mirrors touch.Config.
type Gesture struct {
	PressureThreshold int16 `toml:"pressure_threshold"`
	MoveThreshold     int   `toml:"move_threshold"`
	WipeX             int   `toml:"wipe_x"`
	WipeY             int   `toml:"wipe_y"`
	LongPressMillis   int64 `toml:"long_press_ms"`
	DoubleClickMillis int64 `toml:"double_click_ms"`
	DrawMode          bool  `toml:"draw_mode"`
	Width             int   `toml:"width"`
	Height            int   `toml:"height"`
}

// Calibration mirrors touch.Calibration.
type Calibration struct {
	ShortMin int `toml:"short_min"`
	ShortMax int `toml:"short_max"`
	LongMin  int `toml:"long_min"`
	LongMax  int `toml:"long_max"`
	EdgeBand int `toml:"edge_band"`
}

// Default returns a profile holding the engine defaults in Portrait.
func Default() Profile {
	c := touch.DefaultConfig()
	cal := touch.DefaultCalibration()
	return Profile{
		Rotation: int(touch.Portrait),
		Gesture: Gesture{
			PressureThreshold: c.PressureThreshold,
			MoveThreshold:     c.MoveThreshold,
			WipeX:             c.WipeX,
			WipeY:             c.WipeY,
			LongPressMillis:   c.LongPress.Milliseconds(),
			DoubleClickMillis: c.DoubleClick.Milliseconds(),
			DrawMode:          c.DrawMode,
			Width:             c.Width,
			Height:            c.Height,
		},
		Calibration: Calibration{
			ShortMin: cal.ShortMin,
			ShortMax: cal.ShortMax,
			LongMin:  cal.LongMin,
			LongMax:  cal.LongMax,
			EdgeBand: cal.EdgeBand,
		},
	}
}

// Load reads and validates the profile at path.
func Load(path string) (Profile, error) {
	p := Default()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: load %s: %w", path, err)
	}
	if err := finish(&p, md); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	touch.Logger().Info("profile: loaded", "path", path, "rotation", p.Rotation)
	return p, nil
}

// Decode reads and validates a profile from r.
func Decode(r io.Reader) (Profile, error) {
	p := Default()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: decode: %w", err)
	}
	if err := finish(&p, md); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func finish(p *Profile, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return p.Validate()
}

// Validate checks the rotation, gesture settings and calibration.
func (p Profile) Validate() error {
	if p.Rotation < 0 || p.Rotation > 3 {
		return fmt.Errorf("%w: rotation %d not in 0..3", ErrInvalidProfile, p.Rotation)
	}
	if err := p.Config().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if err := p.Calibration.toTouch().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return nil
}

// Config returns the gesture settings as a touch.Config.
func (p Profile) Config() touch.Config {
	g := p.Gesture
	return touch.Config{
		PressureThreshold: g.PressureThreshold,
		MoveThreshold:     g.MoveThreshold,
		WipeX:             g.WipeX,
		WipeY:             g.WipeY,
		LongPress:         time.Duration(g.LongPressMillis) * time.Millisecond,
		DoubleClick:       time.Duration(g.DoubleClickMillis) * time.Millisecond,
		DrawMode:          g.DrawMode,
		Width:             g.Width,
		Height:            g.Height,
	}
}

// TouchCalibration returns the calibration as a touch.Calibration.
func (p Profile) TouchCalibration() touch.Calibration {
	return p.Calibration.toTouch()
}

func (c Calibration) toTouch() touch.Calibration {
	return touch.Calibration{
		ShortMin: c.ShortMin,
		ShortMax: c.ShortMax,
		LongMin:  c.LongMin,
		LongMax:  c.LongMax,
		EdgeBand: c.EdgeBand,
	}
}

// TouchRotation returns the rotation as a touch.Rotation.
func (p Profile) TouchRotation() touch.Rotation {
	return touch.RotationFromIndex(p.Rotation)
}

// Options returns engine options carrying the profile's configuration and
// calibration, for use with touch.NewEngine.
func (p Profile) Options() []touch.Option {
	return []touch.Option{
		touch.WithConfig(p.Config()),
		touch.WithCalibration(p.TouchCalibration()),
	}
}

// Apply sets the configuration, calibration and rotation of e.
func (p Profile) Apply(e *touch.Engine) {
	e.SetConfig(p.Config())
	e.SetCalibration(p.TouchCalibration())
	e.SetRotation(p.TouchRotation())
}
