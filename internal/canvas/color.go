package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.RGBA{
	"black":       {A: 0xFF},
	"white":       {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"red":         {R: 0xFF, A: 0xFF},
	"green":       {G: 0x80, A: 0xFF},
	"blue":        {B: 0xFF, A: 0xFF},
	"yellow":      {R: 0xFF, G: 0xFF, A: 0xFF},
	"purple":      {R: 0x80, B: 0x80, A: 0xFF},
	"transparent": {},
}

// ParseColor accepts "#rgb", "#rrggbb" and a few CSS colour names.
func ParseColor(s string) (color.Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return nil, fmt.Errorf("empty colour")
	}
	if c, ok := namedColors[value]; ok {
		return c, nil
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return nil, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// FormatColor renders c as "#rrggbb", dropping alpha.
func FormatColor(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
