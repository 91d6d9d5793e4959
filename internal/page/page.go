package page

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/rook-computer/marquee/internal/canvas"
	"github.com/rook-computer/marquee/internal/marquee"
)

const (
	ElementCanvas = "canvas"

	defaultWidth  = 1920
	defaultHeight = 1080
)

// DefaultBackground matches the event backdrop (#ffdc00).
var DefaultBackground = color.RGBA{R: 0xFF, G: 0xDC, B: 0x00, A: 0xFF}

type Element struct {
	ID     string
	Type   string
	Pos    image.Point
	Canvas *canvas.Canvas
}

// Page is a fixed set of positioned elements on a logical screen.
type Page struct {
	Width      int
	Height     int
	Background color.Color

	Config          marquee.RenderConfig
	VerticalNudgePx float64

	Elements []Element
}

var _ marquee.Page = (*Page)(nil)

// Build turns a document into a page. Relative font paths resolve against
// baseDir.
func Build(doc Document, baseDir string, fonts *canvas.FontBook, logger canvas.Logger) (*Page, error) {
	if fonts == nil {
		fonts = canvas.NewFontBook()
	}
	p := &Page{
		Width:           doc.Screen.Width,
		Height:          doc.Screen.Height,
		Background:      DefaultBackground,
		VerticalNudgePx: marquee.DefaultVerticalNudgePx,
	}
	if p.Width <= 0 {
		p.Width = defaultWidth
	}
	if p.Height <= 0 {
		p.Height = defaultHeight
	}
	if doc.Screen.Background != "" {
		bg, err := canvas.ParseColor(doc.Screen.Background)
		if err != nil {
			return nil, fmt.Errorf("screen background: %w", err)
		}
		p.Background = bg
	}

	cfg, err := renderConfig(doc.Marquee)
	if err != nil {
		return nil, err
	}
	p.Config = cfg
	if doc.Marquee.VerticalNudgePx != nil {
		p.VerticalNudgePx = *doc.Marquee.VerticalNudgePx
	}

	for _, ff := range doc.Fonts {
		path := ff.Path
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", ff.Family, err)
		}
		if err := fonts.RegisterTTF(ff.Family, ff.Bold, ff.Italic, data); err != nil {
			return nil, err
		}
	}

	for i, spec := range doc.Elements {
		kind := strings.ToLower(strings.TrimSpace(spec.Type))
		if kind == "" {
			kind = ElementCanvas
		}
		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", kind, i)
		}
		el := Element{ID: id, Type: kind, Pos: image.Pt(spec.X, spec.Y)}
		if kind == ElementCanvas {
			attrs := make(map[string]string, len(spec.Attrs)+1)
			for k, v := range spec.Attrs {
				attrs[k] = v
			}
			if spec.Text != "" {
				attrs[marquee.TextAttr] = spec.Text
			}
			c := canvas.New(id, attrs, fonts)
			c.ContextKind = spec.Context
			c.Logger = logger
			el.Canvas = c
		}
		p.Elements = append(p.Elements, el)
	}
	return p, nil
}

func renderConfig(spec MarqueeSpec) (marquee.RenderConfig, error) {
	cfg := marquee.RenderConfig{
		FontSizePx:      spec.FontSizePx,
		RepeatCount:     spec.RepeatCount,
		SurfaceHeightPx: spec.SurfaceHeightPx,
		FontFamily:      spec.FontFamily,
		FontWeight:      spec.FontWeight,
		SpacingPx:       spec.SpacingPx,
		SpeedPxPerFrame: spec.SpeedPxPerFrame,
	}
	if spec.Color != "" {
		col, err := canvas.ParseColor(spec.Color)
		if err != nil {
			return cfg, fmt.Errorf("marquee color: %w", err)
		}
		cfg.Color = col
	}
	if cfg.FontWeight == "" {
		cfg.FontWeight = "normal"
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = canvas.DefaultFamily
	}
	return cfg, nil
}

// Surfaces returns the canvas elements in document order.
func (p *Page) Surfaces() []marquee.Surface {
	var out []marquee.Surface
	for _, el := range p.Elements {
		if el.Type == ElementCanvas && el.Canvas != nil {
			out = append(out, el.Canvas)
		}
	}
	return out
}

// Bounds is the logical screen rectangle.
func (p *Page) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// Compose paints the background and then every canvas at its position.
func (p *Page) Compose(dst draw.Image) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: p.Background}, image.Point{}, draw.Src)
	for _, el := range p.Elements {
		if el.Canvas == nil {
			continue
		}
		src := el.Canvas.Image()
		rect := src.Bounds().Add(el.Pos)
		draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
	}
}
