package marquee

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// DefaultVerticalNudgePx lifts the baseline so glyphs look centred rather
// than metrically centred.
const DefaultVerticalNudgePx = 5

// TextAttr is the surface attribute holding the text to scroll.
const TextAttr = "data-text"

var (
	ErrInvalidConfig      = errors.New("invalid render config")
	ErrContextUnavailable = errors.New("2d drawing context unavailable")
	ErrFramesExhausted    = errors.New("frame budget exhausted")
)

// RenderConfig is shared read-only by every instance once Render is called.
type RenderConfig struct {
	FontSizePx      float64
	Color           color.Color
	RepeatCount     int
	SurfaceHeightPx float64
	FontFamily      string
	FontWeight      string
	SpacingPx       float64
	SpeedPxPerFrame float64
}

// ConfigError names the first field that failed validation.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v", ErrInvalidConfig, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func (cfg RenderConfig) Validate() error {
	switch {
	case !positiveFinite(cfg.FontSizePx):
		return &ConfigError{Field: "fontSizePx", Value: cfg.FontSizePx}
	case cfg.Color == nil:
		return &ConfigError{Field: "color", Value: nil}
	case cfg.RepeatCount < 1:
		return &ConfigError{Field: "repeatCount", Value: cfg.RepeatCount}
	case !positiveFinite(cfg.SurfaceHeightPx):
		return &ConfigError{Field: "surfaceHeightPx", Value: cfg.SurfaceHeightPx}
	case !positiveFinite(cfg.SpacingPx):
		return &ConfigError{Field: "spacingPx", Value: cfg.SpacingPx}
	case !positiveFinite(cfg.SpeedPxPerFrame):
		return &ConfigError{Field: "speedPxPerFrame", Value: cfg.SpeedPxPerFrame}
	}
	return nil
}

// positiveFinite rejects zero, negatives, NaN and infinities.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// SetWidthPx is the width of one set of RepeatCount repetitions.
func (cfg RenderConfig) SetWidthPx() float64 {
	return float64(cfg.RepeatCount) * cfg.SpacingPx
}

// SurfaceWidthPx is one spacing wider than a set.
func (cfg RenderConfig) SurfaceWidthPx() float64 {
	return float64(cfg.RepeatCount+1) * cfg.SpacingPx
}

// Font returns the font description in "<weight> <size>px <family>" form.
func (cfg RenderConfig) Font() string {
	return fmt.Sprintf("%s %gpx %s", cfg.FontWeight, cfg.FontSizePx, cfg.FontFamily)
}
