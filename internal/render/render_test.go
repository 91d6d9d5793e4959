package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

type solidScene struct {
	bounds image.Rectangle
	fill   color.RGBA
	calls  int
}

func (s *solidScene) Bounds() image.Rectangle { return s.bounds }
func (s *solidScene) Compose(dst draw.Image) {
	s.calls++
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: s.fill}, image.Point{}, draw.Src)
}

type recordingSink struct {
	frames int
	err    error
	closed bool
}

func (s *recordingSink) Present(frame *image.RGBA) error {
	s.frames++
	return s.err
}

func (s *recordingSink) Close() error {
	s.closed = true
	return nil
}

type fakeDevice struct {
	bounds image.Rectangle
	pixels map[image.Point]color.Color
}

func (d *fakeDevice) Bounds() image.Rectangle { return d.bounds }
func (d *fakeDevice) Set(x, y int, c color.Color) {
	d.pixels[image.Pt(x, y)] = c
}

func TestCompositorFansOutToSinks(t *testing.T) {
	scene := &solidScene{bounds: image.Rect(0, 0, 40, 20), fill: color.RGBA{R: 0xFF, A: 0xFF}}
	failing := &recordingSink{err: errors.New("device gone")}
	healthy := &recordingSink{}
	c := NewCompositor(scene, failing, healthy)

	err := c.Present()
	if err == nil {
		t.Error("Present() swallowed the sink error")
	}
	if healthy.frames != 1 || failing.frames != 1 {
		t.Errorf("sink frames = %d/%d, expected 1/1", failing.frames, healthy.frames)
	}
	if scene.calls != 1 || c.Frames() != 1 {
		t.Errorf("compose calls = %d, frames = %d", scene.calls, c.Frames())
	}
	if got := c.Screen().RGBAAt(5, 5); got != scene.fill {
		t.Errorf("screen pixel = %v, expected %v", got, scene.fill)
	}

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !healthy.closed || !failing.closed {
		t.Error("Close() did not close every sink")
	}
}

func TestCompositorOverlay(t *testing.T) {
	scene := &solidScene{bounds: image.Rect(0, 0, 400, 300), fill: color.RGBA{A: 0xFF}}
	c := NewCompositor(scene)
	tile := image.NewRGBA(image.Rect(0, 0, 50, 50))
	draw.Draw(tile, tile.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	c.SetOverlay(tile)
	if err := c.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	// 400-40-50 = 310, 300-40-50 = 210
	if got := c.Screen().RGBAAt(310, 210); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("overlay corner pixel = %v, expected white", got)
	}
	if got := c.Screen().RGBAAt(309, 209); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("pixel outside overlay = %v, expected black", got)
	}

	c.SetOverlay(nil)
	if err := c.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if got := c.Screen().RGBAAt(310, 210); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("overlay still drawn after removal: %v", got)
	}
}

func TestBlitToFBScales(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 4, 2))
	frame.SetRGBA(3, 1, color.RGBA{G: 0xFF, A: 0x80})
	dev := &fakeDevice{bounds: image.Rect(0, 0, 8, 4), pixels: map[image.Point]color.Color{}}

	if err := blitToFB(dev, frame); err != nil {
		t.Fatalf("blitToFB() error = %v", err)
	}
	if len(dev.pixels) != 32 {
		t.Errorf("pixels written = %d, expected 32", len(dev.pixels))
	}
	if got := dev.pixels[image.Pt(7, 3)]; got != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Errorf("scaled pixel = %v, expected opaque green", got)
	}
}

func TestPNGSinkWritesEveryNth(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sink, err := NewPNGSink(dir, 3)
	if err != nil {
		t.Fatalf("NewPNGSink() error = %v", err)
	}
	frame := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 7; i++ {
		if err := sink.Present(frame); err != nil {
			t.Fatalf("Present() error = %v", err)
		}
	}

	if sink.Written() != 3 {
		t.Errorf("Written() = %d, expected 3", sink.Written())
	}
	for _, name := range []string{"frame_000001.png", "frame_000004.png", "frame_000007.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestLatestFrame(t *testing.T) {
	latest := NewLatestFrame(2)
	if _, err := latest.PNG(1); !errors.Is(err, ErrNoFrame) {
		t.Fatalf("PNG() before any frame error = %v, expected ErrNoFrame", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 100, 40))
	for i := 0; i < 3; i++ {
		_ = latest.Present(frame)
	}
	if latest.Seq() != 3 {
		t.Errorf("Seq() = %d, expected 3", latest.Seq())
	}

	tests := []struct {
		scale         float64
		width, height int
	}{
		{1, 100, 40},
		{0, 100, 40},
		{0.5, 50, 20},
		{0.001, 1, 1},
	}
	for _, tc := range tests {
		data, err := latest.PNG(tc.scale)
		if err != nil {
			t.Fatalf("PNG(%v) error = %v", tc.scale, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if b := img.Bounds(); b.Dx() != tc.width || b.Dy() != tc.height {
			t.Errorf("PNG(%v) size = %dx%d, expected %dx%d", tc.scale, b.Dx(), b.Dy(), tc.width, tc.height)
		}
	}
}

func TestQRCode(t *testing.T) {
	img, err := GenerateQRCodeImage("", 100)
	if img != nil || err != nil {
		t.Errorf("GenerateQRCodeImage(\"\") = %v, %v, expected nil, nil", img, err)
	}

	tile, err := QROverlay("http://127.0.0.1:8080/", 192)
	if err != nil {
		t.Fatalf("QROverlay() error = %v", err)
	}
	if b := tile.Bounds(); b.Dx() != 192 || b.Dy() != 192 {
		t.Errorf("QROverlay() size = %v, expected 192x192", b)
	}

	tile, err = QROverlay("http://127.0.0.1:8080/", 0)
	if err != nil {
		t.Fatalf("QROverlay(0) error = %v", err)
	}
	if b := tile.Bounds(); b.Dx() != defaultQRCodeSizePx || b.Dy() != defaultQRCodeSizePx {
		t.Errorf("QROverlay(0) size = %v, expected default %d", b, defaultQRCodeSizePx)
	}

	data, err := QRCodePNG("http://127.0.0.1:8080/", 0)
	if err != nil {
		t.Fatalf("QRCodePNG() error = %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != defaultQRCodeSizePx {
		t.Errorf("QRCodePNG() width = %d, expected %d", decoded.Bounds().Dx(), defaultQRCodeSizePx)
	}
}
