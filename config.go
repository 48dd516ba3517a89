package touchscreen

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Tuning holds the hand-tuned gesture constants. The tap window and pinch
// delay are distinct on purpose: they gate different decisions and are
// tuned independently.
type Tuning struct {
	// TapWindowMs is the maximum time in milliseconds between the first
	// touch landing and the last touch lifting for the sequence to count
	// as a tap.
	TapWindowMs int `toml:"tap_window_ms"`

	// PinchDelayMs is how long in milliseconds a lone first touch on empty
	// world space is held back, waiting for a second finger to prove pinch
	// intent.
	PinchDelayMs int `toml:"pinch_delay_ms"`

	// PanSpeed scales touchCameraDelta when a CameraRig applies it, in
	// world units per pixel at zoom 1.
	PanSpeed float64 `toml:"pan_speed"`

	// ZoomSpeed scales pinch delta when a CameraRig applies it, as a zoom
	// factor change per pixel of pinch.
	ZoomSpeed float64 `toml:"zoom_speed"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		TapWindowMs:  125,
		PinchDelayMs: 150,
		PanSpeed:     1.0,
		ZoomSpeed:    0.005,
	}
}

// TapWindow returns the tap window as a duration.
func (t Tuning) TapWindow() time.Duration {
	return time.Duration(t.TapWindowMs) * time.Millisecond
}

// PinchDelay returns the pinch disambiguation delay as a duration.
func (t Tuning) PinchDelay() time.Duration {
	return time.Duration(t.PinchDelayMs) * time.Millisecond
}

// Validate reports the first nonsensical value.
func (t Tuning) Validate() error {
	if t.TapWindowMs <= 0 {
		return fmt.Errorf("tuning: tap_window_ms must be positive, got %d", t.TapWindowMs)
	}
	if t.PinchDelayMs <= 0 {
		return fmt.Errorf("tuning: pinch_delay_ms must be positive, got %d", t.PinchDelayMs)
	}
	if t.PanSpeed <= 0 {
		return fmt.Errorf("tuning: pan_speed must be positive, got %g", t.PanSpeed)
	}
	if t.ZoomSpeed <= 0 {
		return fmt.Errorf("tuning: zoom_speed must be positive, got %g", t.ZoomSpeed)
	}
	return nil
}

// LoadTuning reads a TOML tuning file, merging values over the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), err
	}
	return t, nil
}
