package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// FontSpec is a parsed CSS-like font description such as "bold 48px Go".
type FontSpec struct {
	Bold     bool
	Italic   bool
	SizePx   float64
	Families []string
}

// ParseFont understands "[style] [weight] <size>px <family>[, <family>...]".
func ParseFont(desc string) (FontSpec, error) {
	var spec FontSpec
	fields := strings.Fields(desc)
	sizeAt := -1
	for i, field := range fields {
		lower := strings.ToLower(field)
		if strings.HasSuffix(lower, "px") {
			size, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64)
			if err != nil {
				return spec, fmt.Errorf("font %q: bad size %q", desc, field)
			}
			if size <= 0 {
				return spec, fmt.Errorf("font %q: size must be positive", desc)
			}
			spec.SizePx = size
			sizeAt = i
			break
		}
		switch lower {
		case "italic", "oblique":
			spec.Italic = true
		case "bold", "bolder":
			spec.Bold = true
		case "normal", "lighter":
		default:
			weight, err := strconv.Atoi(lower)
			if err != nil {
				return spec, fmt.Errorf("font %q: unknown token %q", desc, field)
			}
			spec.Bold = weight >= 600
		}
	}
	if sizeAt < 0 {
		return spec, fmt.Errorf("font %q: missing px size", desc)
	}

	for _, family := range strings.Split(strings.Join(fields[sizeAt+1:], " "), ",") {
		family = strings.Trim(strings.TrimSpace(family), `"'`)
		if family != "" {
			spec.Families = append(spec.Families, family)
		}
	}
	return spec, nil
}
