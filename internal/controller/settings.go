package controller

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned (wrapped) when a bound pair or speed is unusable.
var ErrInvalidSettings = errors.New("invalid controller settings")

// Range is a bound pair applied to a single scalar field.
type Range struct {
	Min float32
	Max float32
}

// Valid reports whether Min <= Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Contains reports whether v lies inside the pair (inclusive).
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v float32) float32 {
	return max(r.Min, min(r.Max, v))
}

// StepUp adds step to v without passing Max. A v already outside the pair moves by
// step only; it is never pulled onto the pair.
func (r Range) StepUp(v, step float32) float32 {
	return min(v+step, max(r.Max, v))
}

// StepDown subtracts step from v without passing Min.
func (r Range) StepDown(v, step float32) float32 {
	return max(v-step, min(r.Min, v))
}

// Settings holds the step sizes and bounds used by the input rules and the animator.
// Zoom and pan both move the camera on Z but are gated by separate pairs.
type Settings struct {
	ZoomSpeed   float32
	Zoom        Range
	CameraSpeed float32
	PanX        Range
	PanZ        Range
	Height      Range // vertical clamp applied after every key event

	PaintingCount int

	StatueSpin          float32 // radians added to the statue's Y rotation per frame
	StatueSwayStep      float32
	StatueSwayAmplitude float32
	SpotlightStep       float32
	SpotlightRadius     float32
}

// DefaultSettings returns the stock museum room values.
func DefaultSettings() Settings {
	return Settings{
		ZoomSpeed:           0.1,
		Zoom:                Range{Min: 3, Max: 6},
		CameraSpeed:         0.1,
		PanX:                Range{Min: -4, Max: 4},
		PanZ:                Range{Min: -4, Max: 4},
		Height:              Range{Min: 1, Max: 5},
		PaintingCount:       9,
		StatueSpin:          0.005,
		StatueSwayStep:      0.02,
		StatueSwayAmplitude: 0.2,
		SpotlightStep:       0.01,
		SpotlightRadius:     4,
	}
}

// Validate checks that every bound pair has min <= max, speeds are positive and there is
// at least one painting. A failure here is a configuration error, not a runtime one.
func (s Settings) Validate() error {
	pairs := []struct {
		name string
		r    Range
	}{
		{"zoom", s.Zoom},
		{"pan x", s.PanX},
		{"pan z", s.PanZ},
		{"height", s.Height},
	}
	for _, p := range pairs {
		if !p.r.Valid() {
			return fmt.Errorf("%w: %s bounds min %.2f > max %.2f", ErrInvalidSettings, p.name, p.r.Min, p.r.Max)
		}
	}
	if s.ZoomSpeed <= 0 {
		return fmt.Errorf("%w: zoom speed must be positive, got %.3f", ErrInvalidSettings, s.ZoomSpeed)
	}
	if s.CameraSpeed <= 0 {
		return fmt.Errorf("%w: camera speed must be positive, got %.3f", ErrInvalidSettings, s.CameraSpeed)
	}
	if s.PaintingCount < 1 {
		return fmt.Errorf("%w: painting count must be at least 1, got %d", ErrInvalidSettings, s.PaintingCount)
	}
	if s.SpotlightRadius < 0 {
		return fmt.Errorf("%w: spotlight radius must not be negative", ErrInvalidSettings)
	}
	return nil
}
