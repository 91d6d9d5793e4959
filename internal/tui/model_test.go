package tui

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeStepper struct {
	img   *image.RGBA
	steps int
}

func (f *fakeStepper) Step() *image.RGBA {
	f.steps++
	return f.img
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestCellSize(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		cols, rows    int
		wantW, wantRs int
	}{
		{"wide fits width", 1920, 1080, 80, 40, 80, 23},
		{"tall fits height", 100, 400, 80, 10, 5, 10},
		{"square", 10, 10, 4, 4, 4, 2},
		{"empty image", 0, 10, 80, 24, 0, 0},
		{"no space", 10, 10, 0, 24, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rows := cellSize(tt.w, tt.h, tt.cols, tt.rows)
			if w != tt.wantW || rows != tt.wantRs {
				t.Errorf("cellSize = %dx%d, expected %dx%d", w, rows, tt.wantW, tt.wantRs)
			}
		})
	}
}

func TestRenderImage(t *testing.T) {
	img := solid(8, 8, color.RGBA{R: 0xff, A: 0xff})
	out := RenderImage(img, 8, 8)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("rows = %d, expected 4", len(lines))
	}
	if got := strings.Count(out, halfBlock); got != 32 {
		t.Errorf("cells = %d, expected 32", got)
	}
	if RenderImage(img, 0, 0) != "" {
		t.Error("expected empty output without space")
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(color.RGBA{R: 0x90, B: 0xff, A: 0xff}); got != "#9000ff" {
		t.Errorf("hexColor = %s", got)
	}
}

func TestModelTicksAndQuits(t *testing.T) {
	src := &fakeStepper{img: solid(4, 4, color.White)}
	var m tea.Model = NewModel(src, 30)

	m, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick did not schedule the next frame")
	}
	m, _ = m.Update(TickMsg{})
	if src.steps != 2 || m.(Model).Frames() != 2 {
		t.Errorf("steps = %d frames = %d, expected 2", src.steps, m.(Model).Frames())
	}
	if !strings.Contains(m.View(), "frame 2") {
		t.Errorf("view missing frame counter: %q", m.View())
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	if mm := m.(Model); mm.width != 20 || mm.height != 6 {
		t.Errorf("size = %dx%d", mm.width, mm.height)
	}

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
	if _, cmd = m.Update(TickMsg{}); cmd != nil || src.steps != 2 {
		t.Error("ticked after quit")
	}
}
