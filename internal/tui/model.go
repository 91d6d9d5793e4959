package tui

import (
	"fmt"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stepper advances the animation by one frame and returns the composed
// screen.
type Stepper interface {
	Step() *image.RGBA
}

const (
	defaultCols = 80
	defaultRows = 24
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model previews the screen in the terminal. Every tick runs one frame on
// the Bubble Tea goroutine.
type Model struct {
	src    Stepper
	fps    int
	width  int
	height int
	frame  *image.RGBA
	frames uint64

	quitting bool
}

func NewModel(src Stepper, fps int) Model {
	return Model{src: src, fps: fps, width: defaultCols, height: defaultRows}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.frame = m.src.Step()
		m.frames++
		return m, tickCmd(m.fps)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	status := statusStyle.Render(fmt.Sprintf("frame %d  q to quit", m.frames))
	if m.frame == nil {
		return status
	}
	return RenderImage(m.frame, m.width, m.height-1) + "\n" + status
}

// Frames reports how many frames the model has stepped.
func (m Model) Frames() uint64 { return m.frames }
