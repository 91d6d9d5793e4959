package marquee

import (
	"math"
	"strconv"
)

// SurfaceBinding ties one surface to the text it scrolls.
type SurfaceBinding struct {
	ID       string
	Surface  Surface
	Text     string
	WidthPx  int
	HeightPx int
}

// Discover returns a binding for every surface carrying non-empty text.
// Surfaces without text are skipped, not reported.
func Discover(page Page, cfg RenderConfig) []SurfaceBinding {
	if page == nil {
		return nil
	}
	var bindings []SurfaceBinding
	for i, surface := range page.Surfaces() {
		if surface == nil {
			continue
		}
		text, ok := surface.Attr(TextAttr)
		if !ok || text == "" {
			continue
		}
		id := surface.ID()
		if id == "" {
			id = "surface-" + strconv.Itoa(i)
		}
		bindings = append(bindings, SurfaceBinding{
			ID:       id,
			Surface:  surface,
			Text:     text,
			WidthPx:  int(math.Ceil(cfg.SurfaceWidthPx())),
			HeightPx: int(math.Ceil(cfg.SurfaceHeightPx)),
		})
	}
	return bindings
}
