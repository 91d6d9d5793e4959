package render

import (
	"errors"
	"image"
	"image/draw"
	"time"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Scene paints itself onto the logical screen.
type Scene interface {
	Bounds() image.Rectangle
	Compose(dst draw.Image)
}

// Sink receives every composed frame.
type Sink interface {
	Present(frame *image.RGBA) error
	Close() error
}

// Compositor owns the logical screen, composes the scene into it once per
// frame and hands the result to every sink.
type Compositor struct {
	Logger Logger

	scene    Scene
	sinks    []Sink
	overlay  image.Image
	overlayR image.Rectangle
	screen   *image.RGBA
	frames   uint64
	lastLog  time.Time
}

func NewCompositor(scene Scene, sinks ...Sink) *Compositor {
	return &Compositor{
		scene:  scene,
		sinks:  sinks,
		screen: image.NewRGBA(scene.Bounds()),
	}
}

func (c *Compositor) AddSink(s Sink) { c.sinks = append(c.sinks, s) }

// SetOverlay draws img into the bottom-right corner of every frame.
// A nil image removes the overlay.
func (c *Compositor) SetOverlay(img image.Image) {
	c.overlay = img
	if img == nil {
		c.overlayR = image.Rectangle{}
		return
	}
	c.overlayR = cornerRect(c.screen.Bounds(), QRMarginPx, img.Bounds().Dx())
}

func (c *Compositor) Screen() *image.RGBA { return c.screen }
func (c *Compositor) Frames() uint64      { return c.frames }

// Present composes one frame and fans it out. Sink failures are logged and
// joined; the remaining sinks still receive the frame.
func (c *Compositor) Present() error {
	c.scene.Compose(c.screen)
	if c.overlay != nil && !c.overlayR.Empty() {
		draw.Draw(c.screen, c.overlayR, c.overlay, c.overlay.Bounds().Min, draw.Over)
	}
	c.frames++

	var errs []error
	for _, s := range c.sinks {
		if err := s.Present(c.screen); err != nil {
			errs = append(errs, err)
			if c.Logger != nil {
				c.Logger.Errorf("render", "sink %T: %v", s, err)
			}
		}
	}
	if c.Logger != nil && time.Since(c.lastLog) > heartbeatInterval {
		c.Logger.Infof("render", "heartbeat frame=%d", c.frames)
		c.lastLog = time.Now()
	}
	return errors.Join(errs...)
}

func (c *Compositor) Close() error {
	var errs []error
	for _, s := range c.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
