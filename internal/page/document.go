package page

// Document is the on-disk page description.
type Document struct {
	Screen   ScreenSpec    `yaml:"screen"`
	Marquee  MarqueeSpec   `yaml:"marquee"`
	Fonts    []FontFile    `yaml:"fonts"`
	Elements []ElementSpec `yaml:"elements"`
}

type ScreenSpec struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// MarqueeSpec mirrors marquee.RenderConfig with a textual colour.
type MarqueeSpec struct {
	FontSizePx      float64  `yaml:"fontSizePx"`
	Color           string   `yaml:"color"`
	RepeatCount     int      `yaml:"repeatCount"`
	SurfaceHeightPx float64  `yaml:"surfaceHeightPx"`
	FontFamily      string   `yaml:"fontFamily"`
	FontWeight      string   `yaml:"fontWeight"`
	SpacingPx       float64  `yaml:"spacingPx"`
	SpeedPxPerFrame float64  `yaml:"speedPxPerFrame"`
	VerticalNudgePx *float64 `yaml:"verticalNudgePx"`
}

// FontFile registers a TrueType file under a family name.
type FontFile struct {
	Family string `yaml:"family"`
	Path   string `yaml:"path"`
	Bold   bool   `yaml:"bold"`
	Italic bool   `yaml:"italic"`
}

type ElementSpec struct {
	Type    string            `yaml:"type"`
	ID      string            `yaml:"id"`
	X       int               `yaml:"x"`
	Y       int               `yaml:"y"`
	Context string            `yaml:"context"`
	Text    string            `yaml:"text"`
	Attrs   map[string]string `yaml:"attrs"`
}
