package marquee

import "sync/atomic"

// Instance animates one binding. Offset and frame count are owned by the
// goroutine calling Frame; only the stop flag may be touched concurrently.
type Instance struct {
	binding SurfaceBinding
	cfg     RenderConfig
	ctx     DrawingContext
	nudgePx float64

	offsetPx float64
	step     uint64 // frames into the current cycle
	frames   uint64
	stopped  atomic.Bool
}

func newInstance(binding SurfaceBinding, cfg RenderConfig, ctx DrawingContext, nudgePx float64) *Instance {
	return &Instance{binding: binding, cfg: cfg, ctx: ctx, nudgePx: nudgePx}
}

func (in *Instance) ID() string              { return in.binding.ID }
func (in *Instance) Binding() SurfaceBinding { return in.binding }
func (in *Instance) Offset() float64         { return in.offsetPx }
func (in *Instance) Frames() uint64          { return in.frames }
func (in *Instance) Stopped() bool           { return in.stopped.Load() }

// Stop is the explicit teardown handle; later frames are skipped and the
// renderer drops the instance on its next tick.
func (in *Instance) Stop() { in.stopped.Store(true) }

func (in *Instance) baselineY() float64 {
	return (in.cfg.SurfaceHeightPx+in.cfg.FontSizePx)/2 - in.nudgePx
}

// Frame clears the surface, draws both sets at the current offset, then
// advances and wraps the offset. The offset is derived from the step count
// so fractional speeds do not accumulate error. It is a no-op once the instance is stopped.
func (in *Instance) Frame() {
	if in.Stopped() {
		return
	}
	in.ctx.ClearRect(0, 0, float64(in.binding.WidthPx), float64(in.binding.HeightPx))

	setWidth := in.cfg.SetWidthPx()
	y := in.baselineY()
	for set := 0; set < 2; set++ {
		base := in.offsetPx - float64(set)*setWidth
		for k := 0; k < in.cfg.RepeatCount; k++ {
			in.ctx.FillText(in.binding.Text, float64(k)*in.cfg.SpacingPx+base, y)
		}
	}

	in.step++
	in.offsetPx = float64(in.step) * in.cfg.SpeedPxPerFrame
	if in.offsetPx >= setWidth {
		in.step = 0
		in.offsetPx = 0
	}
	in.frames++
}
