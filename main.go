// marquee renders scrolling text bands onto a fixed page and shows them on
// a Linux framebuffer, a browser preview, PNG files or the terminal.
//
// Usage:
//
//	marquee run        - Framebuffer output (console switched to graphics mode)
//	marquee serve      - Headless loop with the HTTP preview
//	marquee snapshot   - Render a fixed number of frames to PNG files
//	marquee preview    - Terminal preview
//
// Global flags:
//
//	--page <path>       - Page file (default search: ~/.marquee/page.yaml, ./configs/page.yaml, built-in)
//	--fps <rate>        - Frame rate (default: 30)
//	--debug             - Log to ./marquee-debug.log
//	--stdio-log <path>  - Redirect stdout+stderr to a file (also MARQUEE_STDIO_LOG)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/marquee/internal/app"
	"github.com/rook-computer/marquee/internal/render"
	"github.com/rook-computer/marquee/internal/state"
	"github.com/rook-computer/marquee/internal/web"
)

const (
	envStdioLog  = "MARQUEE_STDIO_LOG"
	debugLogPath = "./marquee-debug.log"
)

var (
	flagPage     string
	flagFPS      int
	flagDebug    bool
	flagStdioLog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "marquee",
	Short:         "Scrolling text bands for event screens",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive (got %d)", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPage, "page", "", "Page file to load")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", render.DefaultFPS, "Frames per second")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging to "+debugLogPath)
	rootCmd.PersistentFlags().StringVar(&flagStdioLog, "stdio-log", "", "Redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(previewCmd)
}

// setupLogging applies --stdio-log and --debug. The returned close func
// releases the debug log file.
func setupLogging() (app.Logger, func()) {
	// Redirect stdout/stderr first so crashes are diagnosable even when the
	// console is left in graphics mode.
	logPath := flagStdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	if !flagDebug {
		return app.NoopLogger{}, func() {}
	}
	f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log open error:", err)
		return app.NoopLogger{}, func() {}
	}
	logger := app.NewFileLogger(f)
	logger.Infof("main", "debug logging enabled")
	return logger, func() { _ = f.Close() }
}

// loadApp builds the app for the selected page.
func loadApp(logger app.Logger) (*app.App, error) {
	a := app.New(state.NewStore(), nil)
	a.Logger = logger
	if err := a.Load(flagPage); err != nil {
		return nil, err
	}
	return a, nil
}

// attachWeb serves the preview for a and returns its public URL.
func attachWeb(a *app.App, logger app.Logger, staticDir string) (string, error) {
	cfg, err := web.DefaultServerConfigFromEnv(web.DefaultListenAddr)
	if err != nil {
		return "", err
	}
	url := web.PublicURL(cfg.ListenAddr)
	server := web.NewHTTPServer(cfg, web.NewDefaultMux(staticDir, a.APIDeps(url)))
	server.Logger = logger
	a.Web = server
	return url, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// ignoreCancel treats a signal-driven shutdown as success.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
