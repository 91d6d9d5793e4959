package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rook-computer/marquee/internal/marquee"
	"github.com/rook-computer/marquee/internal/render"
)

var (
	flagFrames int
	flagOut    string
	flagEvery  int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render a fixed number of frames to PNG files",
	Long: `Snapshot runs the animation for --frames frames as fast as possible and
writes every --every-th frame to --out as frame_NNNNNN.png. Output depends
only on the page and the frame count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFrames <= 0 {
			return fmt.Errorf("--frames must be positive (got %d)", flagFrames)
		}
		logger, closeLog := setupLogging()
		defer closeLog()

		a, err := loadApp(logger)
		if err != nil {
			return err
		}
		sink, err := render.NewPNGSink(flagOut, flagEvery)
		if err != nil {
			return err
		}
		a.AddSink(sink)

		ctx, cancel := signalContext()
		defer cancel()
		if err := a.Start(ctx, &marquee.FrameCounter{Remaining: flagFrames}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", sink.Written(), flagOut)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of frames to render")
	snapshotCmd.Flags().StringVar(&flagOut, "out", "frames", "Output directory")
	snapshotCmd.Flags().IntVar(&flagEvery, "every", 1, "Write every Nth frame")
}
