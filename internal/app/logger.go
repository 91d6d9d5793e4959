package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes timestamped lines with the component as a key.
type FileLogger struct{ l *log.Logger }

func NewFileLogger(w io.Writer) FileLogger {
	return FileLogger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "marquee",
	})}
}

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.l.Error(fmt.Sprintf(format, args...), "component", component)
}
