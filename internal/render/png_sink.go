package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSink writes every Nth frame to Dir as frame_000001.png, ...
type PNGSink struct {
	Dir   string
	Every int

	encoder png.Encoder
	seen    uint64
	written int
}

func NewPNGSink(dir string, every int) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	if every <= 0 {
		every = 1
	}
	return &PNGSink{Dir: dir, Every: every, encoder: png.Encoder{CompressionLevel: png.BestSpeed}}, nil
}

func (s *PNGSink) Present(frame *image.RGBA) error {
	s.seen++
	if (s.seen-1)%uint64(s.Every) != 0 {
		return nil
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("frame_%06d.png", s.seen))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.encoder.Encode(f, frame); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.written++
	return nil
}

// Written reports how many files were produced.
func (s *PNGSink) Written() int { return s.written }

func (s *PNGSink) Close() error { return nil }
