package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rook-computer/marquee/internal/state"
	"github.com/rook-computer/marquee/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the page in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog := setupLogging()
		defer closeLog()

		a, err := loadApp(logger)
		if err != nil {
			return err
		}
		a.Store.SetPhase(state.RUNNING)
		defer a.Store.SetPhase(state.STOPPED)
		defer a.Renderer.StopAll()

		p := tea.NewProgram(tui.NewModel(a, flagFPS), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
