package marquee

import (
	"context"
	"image/color"
)

// Page is the host document scanned once at initialisation.
type Page interface {
	Surfaces() []Surface
}

// Surface is a drawable 2D region carrying string attributes.
type Surface interface {
	ID() string
	Attr(name string) (string, bool)
	SetSize(width, height int)
	Context2D() (DrawingContext, error)
}

// DrawingContext is the subset of a 2D canvas API the renderer consumes.
type DrawingContext interface {
	SetFillStyle(c color.Color)
	SetFont(desc string)
	ClearRect(x, y, w, h float64)
	FillText(text string, x, y float64)
	MeasureText(text string) float64
}

// FrameScheduler suspends the caller until the next paintable frame.
type FrameScheduler interface {
	NextFrame(ctx context.Context) error
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(component, format string, args ...interface{})  {}
func (noopLogger) Errorf(component, format string, args ...interface{}) {}
