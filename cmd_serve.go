package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rook-computer/marquee/internal/marquee"
)

var (
	flagStaticDir string
	flagServeQR   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run headless with the HTTP preview",
	Long: `Serve animates the page without a display and exposes it over HTTP.
The listen address comes from MARQUEE_LISTEN (default :8080); MARQUEE_DEV=1
enables permissive CORS for UI development.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog := setupLogging()
		defer closeLog()

		a, err := loadApp(logger)
		if err != nil {
			return err
		}
		url, err := attachWeb(a, logger, flagStaticDir)
		if err != nil {
			return err
		}
		if flagServeQR {
			if err := a.ShowQR(url); err != nil {
				logger.Errorf("render", "qr overlay: %v", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "preview at", url)

		ctx, cancel := signalContext()
		defer cancel()
		scheduler := marquee.NewTickerScheduler(flagFPS)
		defer scheduler.Stop()
		return ignoreCancel(a.Start(ctx, scheduler))
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagStaticDir, "static", "", "Serve the UI from this directory instead of the built-in one")
	serveCmd.Flags().BoolVar(&flagServeQR, "qr", false, "Overlay a QR code with the preview URL")
}
