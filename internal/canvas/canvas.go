package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/rook-computer/marquee/internal/marquee"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const Context2D = "2d"

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Canvas is an offscreen RGBA surface with a minimal 2D context.
type Canvas struct {
	id    string
	attrs map[string]string

	// ContextKind is the context the element was created with; only "2d"
	// (or empty) yields a drawing context.
	ContextKind string
	Logger      Logger

	fonts *FontBook
	img   *image.RGBA
	fill  image.Image
	face  font.Face
}

var (
	_ marquee.Surface        = (*Canvas)(nil)
	_ marquee.DrawingContext = (*Canvas)(nil)
)

func New(id string, attrs map[string]string, fonts *FontBook) *Canvas {
	if fonts == nil {
		fonts = NewFontBook()
	}
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	return &Canvas{
		id:    id,
		attrs: copied,
		fonts: fonts,
		img:   image.NewRGBA(image.Rect(0, 0, 0, 0)),
		fill:  image.NewUniform(color.Black),
		face:  basicfont.Face7x13,
	}
}

func (c *Canvas) ID() string { return c.id }

func (c *Canvas) Attr(name string) (string, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// SetSize reallocates the backing image; existing pixels are discarded.
func (c *Canvas) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) Context2D() (marquee.DrawingContext, error) {
	if c.ContextKind != "" && c.ContextKind != Context2D {
		return nil, fmt.Errorf("canvas %s has a %q context: %w", c.id, c.ContextKind, marquee.ErrContextUnavailable)
	}
	return c, nil
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *Canvas) SetFillStyle(col color.Color) {
	if col == nil {
		col = color.Black
	}
	c.fill = image.NewUniform(col)
}

// SetFont resolves desc through the font book. Unparseable descriptions keep
// the current face; faces that cannot be built fall back to basicfont.
func (c *Canvas) SetFont(desc string) {
	spec, err := ParseFont(desc)
	if err != nil {
		c.logErrorf("font ignored: %v", err)
		return
	}
	face, err := c.fonts.Face(spec)
	if err != nil {
		c.face = basicfont.Face7x13
		c.logErrorf("font face create failed, using basicfont: %v", err)
		return
	}
	c.face = face
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.Transparent, image.Point{}, draw.Src)
}

// FillText draws text with its left edge at x and its baseline at y.
func (c *Canvas) FillText(text string, x, y float64) {
	drawer := &font.Drawer{Dst: c.img, Src: c.fill, Face: c.face}
	width := float64(drawer.MeasureString(text)) / 64
	if x+width < 0 || x > float64(c.img.Bounds().Dx()) {
		return
	}
	drawer.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
	drawer.DrawString(text)
}

func (c *Canvas) MeasureText(text string) float64 {
	return float64(font.MeasureString(c.face, text)) / 64
}

func (c *Canvas) logErrorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("canvas", c.id+": "+format, args...)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
