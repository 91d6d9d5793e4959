package marquee

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Renderer starts one instance per discovered surface and drives them all
// from a single frame loop.
type Renderer struct {
	Logger Logger

	// VerticalNudgePx is subtracted from the centred baseline.
	VerticalNudgePx float64

	// AfterFrame runs on the loop goroutine after every Tick.
	AfterFrame func()

	cfg       RenderConfig
	mu        sync.Mutex
	instances []*Instance
}

func NewRenderer(logger Logger) *Renderer {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Renderer{Logger: logger, VerticalNudgePx: DefaultVerticalNudgePx}
}

func (r *Renderer) logger() Logger {
	if r.Logger == nil {
		return noopLogger{}
	}
	return r.Logger
}

// Render validates cfg, discovers the page's surfaces and starts an instance
// for each usable one. An invalid config starts nothing. A surface whose
// drawing context cannot be obtained is logged and skipped.
func (r *Renderer) Render(cfg RenderConfig, page Page) ([]*Instance, error) {
	if err := cfg.Validate(); err != nil {
		r.logger().Errorf("marquee", "render rejected: %v", err)
		return nil, err
	}
	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()

	bindings := Discover(page, cfg)
	started := make([]*Instance, 0, len(bindings))
	for _, binding := range bindings {
		in, err := r.Start(binding)
		if err != nil {
			r.logger().Errorf("marquee", "surface %s skipped: %v", binding.ID, err)
			continue
		}
		started = append(started, in)
	}
	r.logger().Infof("marquee", "started %d instance(s)", len(started))
	return started, nil
}

// Start sizes and styles the binding's surface and registers a new instance
// using the config of the last successful Render.
func (r *Renderer) Start(binding SurfaceBinding) (*Instance, error) {
	r.mu.Lock()
	cfg := r.cfg
	r.mu.Unlock()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if binding.Surface == nil {
		return nil, fmt.Errorf("binding %s: %w", binding.ID, ErrContextUnavailable)
	}

	ctx, err := binding.Surface.Context2D()
	if err != nil {
		if !errors.Is(err, ErrContextUnavailable) {
			err = fmt.Errorf("%w: %v", ErrContextUnavailable, err)
		}
		return nil, err
	}
	if ctx == nil {
		return nil, ErrContextUnavailable
	}

	binding.Surface.SetSize(binding.WidthPx, binding.HeightPx)
	ctx.SetFillStyle(cfg.Color)
	ctx.SetFont(cfg.Font())

	in := newInstance(binding, cfg, ctx, r.VerticalNudgePx)
	r.mu.Lock()
	r.instances = append(r.instances, in)
	r.mu.Unlock()
	return in, nil
}

// Instances returns the instances that have not been stopped.
func (r *Renderer) Instances() []*Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Instance, 0, len(r.instances))
	for _, in := range r.instances {
		if !in.Stopped() {
			out = append(out, in)
		}
	}
	return out
}

// Stop stops the instance with the given ID. It reports whether one was found.
func (r *Renderer) Stop(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, in := range r.instances {
		if in.ID() == id && !in.Stopped() {
			in.Stop()
			return true
		}
	}
	return false
}

// StopAll stops every instance.
func (r *Renderer) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, in := range r.instances {
		in.Stop()
	}
	r.instances = nil
}

// Tick runs one frame of every live instance in registration order.
func (r *Renderer) Tick() {
	r.mu.Lock()
	live := r.instances[:0]
	for _, in := range r.instances {
		if !in.Stopped() {
			live = append(live, in)
		}
	}
	clear(r.instances[len(live):])
	r.instances = live
	current := append([]*Instance(nil), live...)
	r.mu.Unlock()

	for _, in := range current {
		in.Frame()
	}
}

// Run ticks once per scheduled frame until ctx is done or the scheduler fails.
func (r *Renderer) Run(ctx context.Context, scheduler FrameScheduler) error {
	for {
		if err := scheduler.NextFrame(ctx); err != nil {
			return err
		}
		r.Tick()
		if r.AfterFrame != nil {
			r.AfterFrame()
		}
	}
}
