package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// cellSize fits an image of w x h pixels into cols x rows cells, where each
// cell shows two vertically stacked pixels, keeping the aspect ratio.
func cellSize(w, h, cols, rows int) (int, int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	outW := cols
	outH := outW * h / w
	if outH > rows*2 {
		outH = rows * 2
		outW = outH * w / h
	}
	return max(1, outW), max(1, (outH+1)/2)
}

// RenderImage draws img with half-block cells, top pixel as foreground and
// bottom pixel as background. Runs of identical cells share one style.
func RenderImage(img image.Image, cols, rows int) string {
	b := img.Bounds()
	outW, outRows := cellSize(b.Dx(), b.Dy(), cols, rows)
	if outW == 0 {
		return ""
	}
	outH := outRows * 2

	sample := func(x, y int) color.Color {
		sx := b.Min.X + x*b.Dx()/outW
		sy := b.Min.Y + y*b.Dy()/outH
		if sy >= b.Max.Y {
			sy = b.Max.Y - 1
		}
		return img.At(sx, sy)
	}

	var sb strings.Builder
	for row := range outRows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < outW {
			top, bottom := hexColor(sample(x, row*2)), hexColor(sample(x, row*2+1))
			n := 1
			for x+n < outW && hexColor(sample(x+n, row*2)) == top && hexColor(sample(x+n, row*2+1)) == bottom {
				n++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
			x += n
		}
	}
	return sb.String()
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
