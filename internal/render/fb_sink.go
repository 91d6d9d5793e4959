package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

const DefaultFramebuffer = "/dev/fb0"

// FBSink scales each frame onto a Linux framebuffer device.
type FBSink struct {
	dev *fb.Device
}

func OpenFBSink(path string, logger Logger) (*FBSink, error) {
	if path == "" {
		path = DefaultFramebuffer
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		bounds := dev.Bounds()
		logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", path, bounds.Dx(), bounds.Dy())
	}
	return &FBSink{dev: dev}, nil
}

func (s *FBSink) Present(frame *image.RGBA) error {
	return blitToFB(s.dev, frame)
}

func (s *FBSink) Close() error {
	if s.dev == nil {
		return nil
	}
	s.dev.Close()
	return nil
}

// pixelSetter is the part of the framebuffer device the blit needs.
type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blitToFB copies frame onto dev with nearest-neighbour scaling.
func blitToFB(dev pixelSetter, frame *image.RGBA) error {
	if dev == nil || frame == nil {
		return nil
	}
	src := frame.Bounds()
	if src.Empty() {
		return nil
	}
	bounds := dev.Bounds()
	dstWidth := bounds.Dx()
	dstHeight := bounds.Dy()
	for y := 0; y < dstHeight; y++ {
		sy := src.Min.Y + (y*src.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Min.X + (x*src.Dx())/dstWidth
			pixel := frame.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
