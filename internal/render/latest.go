package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"sync"

	xdraw "golang.org/x/image/draw"
)

var ErrNoFrame = errors.New("no frame rendered yet")

// LatestFrame keeps a copy of every Nth frame for readers on other
// goroutines, such as the preview server.
type LatestFrame struct {
	Every int

	mu    sync.RWMutex
	img   *image.RGBA
	seq   uint64
	count uint64
}

func NewLatestFrame(every int) *LatestFrame {
	if every <= 0 {
		every = LatestFrameEvery
	}
	return &LatestFrame{Every: every}
}

func (l *LatestFrame) Present(frame *image.RGBA) error {
	l.count++
	if (l.count-1)%uint64(l.Every) != 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.img == nil || l.img.Bounds() != frame.Bounds() {
		l.img = image.NewRGBA(frame.Bounds())
	}
	copy(l.img.Pix, frame.Pix)
	l.seq = l.count
	return nil
}

func (l *LatestFrame) Close() error { return nil }

// Seq is the frame number of the stored copy, 0 if none.
func (l *LatestFrame) Seq() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.seq
}

// PNG encodes the stored frame, scaled by scale when 0 < scale < 1.
func (l *LatestFrame) PNG(scale float64) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.img == nil {
		return nil, ErrNoFrame
	}

	var src image.Image = l.img
	if scale > 0 && scale < 1 {
		b := l.img.Bounds()
		w := max(1, int(float64(b.Dx())*scale))
		h := max(1, int(float64(b.Dy())*scale))
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), l.img, b, xdraw.Src, nil)
		src = scaled
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
