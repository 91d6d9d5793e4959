package marquee

import (
	"errors"
	"image/color"
)

type textCall struct {
	text string
	x, y float64
}

type fakeContext struct {
	fill   color.Color
	font   string
	clears int
	texts  []textCall
}

func (c *fakeContext) SetFillStyle(col color.Color) { c.fill = col }
func (c *fakeContext) SetFont(desc string)          { c.font = desc }

func (c *fakeContext) ClearRect(x, y, w, h float64) {
	c.clears++
	c.texts = c.texts[:0]
}

func (c *fakeContext) MeasureText(text string) float64 {
	return float64(len(text)) * 10
}

func (c *fakeContext) FillText(text string, x, y float64) {
	c.texts = append(c.texts, textCall{text: text, x: x, y: y})
}

type fakeSurface struct {
	id      string
	attrs   map[string]string
	width   int
	height  int
	ctx     *fakeContext
	ctxErr  error
	ctxHits int
}

func newFakeSurface(id, text string) *fakeSurface {
	s := &fakeSurface{id: id, attrs: map[string]string{}, ctx: &fakeContext{}}
	if text != "" {
		s.attrs[TextAttr] = text
	}
	return s
}

func (s *fakeSurface) ID() string { return s.id }
func (s *fakeSurface) Attr(name string) (string, bool) {
	v, ok := s.attrs[name]
	return v, ok
}
func (s *fakeSurface) SetSize(width, height int) { s.width, s.height = width, height }
func (s *fakeSurface) Context2D() (DrawingContext, error) {
	s.ctxHits++
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	return s.ctx, nil
}

type fakePage []Surface

func (p fakePage) Surfaces() []Surface { return p }

var errNoContext = errors.New("surface has a webgl context")

func testConfig() RenderConfig {
	return RenderConfig{
		FontSizePx:      20,
		Color:           color.RGBA{R: 0x90, B: 0xFF, A: 0xFF},
		RepeatCount:     3,
		SurfaceHeightPx: 40,
		FontFamily:      "Go",
		FontWeight:      "bold",
		SpacingPx:       50,
		SpeedPxPerFrame: 2,
	}
}
