package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/marquee/internal/canvas"
	"github.com/rook-computer/marquee/internal/marquee"
	"github.com/rook-computer/marquee/internal/page"
	"github.com/rook-computer/marquee/internal/render"
	"github.com/rook-computer/marquee/internal/state"
	"github.com/rook-computer/marquee/internal/system"
	"github.com/rook-computer/marquee/internal/web"
)

// App wires a page to the marquee renderer, the compositor and its sinks,
// and publishes progress to the state store.
type App struct {
	Store  *state.Store
	Web    web.Server
	Logger Logger

	// Console switches the VT to graphics mode while running.
	Console bool
	// ExitKey, when non-zero, is an evdev key code that stops the app.
	ExitKey uint16

	Page       *page.Page
	Renderer   *marquee.Renderer
	Compositor *render.Compositor
	Latest     *render.LatestFrame

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, webServer web.Server) *App {
	if store == nil {
		store = state.NewStore()
	}
	return &App{Store: store, Web: webServer, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Load resolves the page document, builds it and starts the marquees on it.
// The returned error is non-nil only when nothing can be shown.
func (app *App) Load(pagePath string) error {
	doc, source, err := page.LoadDocument(pagePath)
	if err != nil {
		app.Store.Fail(err)
		return err
	}
	baseDir := ""
	if source != page.SourceEmbedded {
		baseDir = filepath.Dir(source)
	}
	p, err := page.Build(doc, baseDir, canvas.NewFontBook(), app.Logger)
	if err != nil {
		err = fmt.Errorf("build page %s: %w", source, err)
		app.Store.Fail(err)
		return err
	}
	app.Store.SetSource(source)
	app.Logger.Infof("app", "page loaded from %s (%dx%d, %d elements)", source, p.Width, p.Height, len(p.Elements))
	return app.Use(p)
}

// Use starts the marquees on an already built page.
func (app *App) Use(p *page.Page) error {
	r := marquee.NewRenderer(app.Logger)
	r.VerticalNudgePx = p.VerticalNudgePx
	instances, err := r.Render(p.Config, p)
	if err != nil {
		app.Store.Fail(err)
		return err
	}
	if len(instances) == 0 {
		app.Logger.Infof("app", "no surfaces carry text, nothing will scroll")
	}

	app.Page = p
	app.Renderer = r
	app.Latest = render.NewLatestFrame(render.LatestFrameEvery)
	app.Compositor = render.NewCompositor(p, app.Latest)
	app.Compositor.Logger = app.Logger
	r.AfterFrame = app.afterFrame
	app.publish()
	return nil
}

// AddSink must be called before Start.
func (app *App) AddSink(s render.Sink) {
	app.Compositor.AddSink(s)
}

// ShowQR overlays a QR code for url in the bottom-right corner.
func (app *App) ShowQR(url string) error {
	img, err := render.QROverlay(url, render.QRSizePx)
	if err != nil {
		return err
	}
	app.Compositor.SetOverlay(img)
	return nil
}

// APIDeps exposes the running app to the preview API.
func (app *App) APIDeps(publicURL string) web.APIV1Deps {
	return web.APIV1Deps{State: app.Store, Frames: app.Latest, Stopper: app.Renderer, PublicURL: publicURL}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs the frame loop with scheduler until ctx is done, Exit is
// called or the scheduler runs out of frames.
func (app *App) Start(ctx context.Context, scheduler marquee.FrameScheduler) error {
	if app.Renderer == nil {
		return errors.New("app: no page loaded")
	}
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.Console {
		console := system.Console{Logger: app.Logger}
		console.Acquire()
		defer console.Release()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.ExitKey != 0 {
		system.WatchExitKey(loopCtx, app.Logger, app.ExitKey, func() { app.Exit(nil) })
	}
	if app.Web != nil {
		if err := app.Web.Start(loopCtx); err != nil {
			app.Logger.Errorf("web", "start failed: %v", err)
			app.Store.Fail(err)
			return err
		}
		defer func() { _ = app.Web.Stop() }()
	}

	app.Store.SetPhase(state.RUNNING)
	app.Logger.Infof("app", "running %d instances", len(app.Renderer.Instances()))

	var wg sync.WaitGroup
	runErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr <- app.Renderer.Run(loopCtx, scheduler)
	}()

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	case err = <-runErr:
		if errors.Is(err, marquee.ErrFramesExhausted) {
			err = nil
		}
	}
	cancel()
	wg.Wait()

	app.Renderer.StopAll()
	if cerr := app.Compositor.Close(); cerr != nil {
		app.Logger.Errorf("render", "close sinks: %v", cerr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		app.Store.Fail(err)
	} else {
		app.Store.SetPhase(state.STOPPED)
	}
	app.Logger.Infof("app", "stopped after %d frames", app.Compositor.Frames())
	return err
}

// Step advances every instance by one frame and composes it, for hosts
// that schedule frames themselves. The returned image is reused.
func (app *App) Step() *image.RGBA {
	app.Renderer.Tick()
	app.afterFrame()
	return app.Compositor.Screen()
}

func (app *App) afterFrame() {
	_ = app.Compositor.Present()
	app.publish()
}

func (app *App) publish() {
	live := app.Renderer.Instances()
	infos := make([]state.InstanceInfo, 0, len(live))
	for _, in := range live {
		infos = append(infos, state.InstanceInfo{
			ID:       in.ID(),
			Text:     in.Binding().Text,
			OffsetPx: in.Offset(),
			Frames:   in.Frames(),
		})
	}
	frames := uint64(0)
	if app.Compositor != nil {
		frames = app.Compositor.Frames()
	}
	app.Store.UpdateFrame(frames, infos)
}
