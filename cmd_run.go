package main

import (
	"github.com/spf13/cobra"

	"github.com/rook-computer/marquee/internal/marquee"
	"github.com/rook-computer/marquee/internal/render"
	"github.com/rook-computer/marquee/internal/system"
)

var (
	flagFramebuffer string
	flagRunWeb      bool
	flagRunQR       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the page on the Linux framebuffer",
	Long: `Run switches the console to graphics mode and draws every frame to the
framebuffer device. F4 exits. With --web the HTTP preview runs alongside and
--qr overlays its URL in the bottom-right corner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog := setupLogging()
		defer closeLog()

		a, err := loadApp(logger)
		if err != nil {
			return err
		}
		sink, err := render.OpenFBSink(flagFramebuffer, logger)
		if err != nil {
			return err
		}
		a.AddSink(sink)
		a.Console = true
		a.ExitKey = system.KeyF4

		if flagRunWeb {
			url, err := attachWeb(a, logger, "")
			if err != nil {
				return err
			}
			if flagRunQR {
				if err := a.ShowQR(url); err != nil {
					logger.Errorf("render", "qr overlay: %v", err)
				}
			}
		}

		ctx, cancel := signalContext()
		defer cancel()
		scheduler := marquee.NewTickerScheduler(flagFPS)
		defer scheduler.Stop()
		return ignoreCancel(a.Start(ctx, scheduler))
	},
}

func init() {
	runCmd.Flags().StringVar(&flagFramebuffer, "fb", render.DefaultFramebuffer, "Framebuffer device")
	runCmd.Flags().BoolVar(&flagRunWeb, "web", false, "Also serve the HTTP preview")
	runCmd.Flags().BoolVar(&flagRunQR, "qr", false, "Overlay a QR code with the preview URL (needs --web)")
}
