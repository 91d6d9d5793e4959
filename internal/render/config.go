package render

import "time"

var (
	// DefaultFPS matches the redraw rate of the framebuffer loop.
	DefaultFPS = 30

	// QR overlay placement on the logical screen.
	QRMarginPx = 40
	QRSizePx   = 192

	// LatestFrameEvery controls how often the preview copy is refreshed.
	LatestFrameEvery = 10

	heartbeatInterval = time.Second
)
