package marquee

import (
	"context"
	"time"
)

const DefaultFPS = 60

// TickerScheduler paces frames with a time.Ticker.
type TickerScheduler struct {
	ticker *time.Ticker
}

func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &TickerScheduler{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

func (s *TickerScheduler) NextFrame(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

func (s *TickerScheduler) Stop() { s.ticker.Stop() }

// FrameCounter releases a fixed number of frames without waiting, then
// reports ErrFramesExhausted. Used for deterministic offline rendering.
type FrameCounter struct {
	Remaining int
}

func (c *FrameCounter) NextFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.Remaining <= 0 {
		return ErrFramesExhausted
	}
	c.Remaining--
	return nil
}
