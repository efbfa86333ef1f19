package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catjump/internal/core"
)

// styleFor returns the lipgloss style of a screen colour.
func styleFor(c core.Color) lipgloss.Style {
	if code := c.ANSI(); code != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return lipgloss.NewStyle()
}

// screenRenderer turns screen buffers into styled text. It caches one
// style per colour across frames.
type screenRenderer struct {
	styles map[core.Color]lipgloss.Style
	out    strings.Builder
	run    []rune
}

func newScreenRenderer() *screenRenderer {
	return &screenRenderer{styles: make(map[core.Color]lipgloss.Style)}
}

func (r *screenRenderer) style(c core.Color) lipgloss.Style {
	st, ok := r.styles[c]
	if !ok {
		st = styleFor(c)
		r.styles[c] = st
	}
	return st
}

// flush writes the pending run of same-coloured runes.
func (r *screenRenderer) flush(c core.Color) {
	if len(r.run) == 0 {
		return
	}
	if c == core.ColorDefault {
		r.out.WriteString(string(r.run))
	} else {
		r.out.WriteString(r.style(c).Render(string(r.run)))
	}
	r.run = r.run[:0]
}

// Render styles s row by row, one escape sequence per colour run.
func (r *screenRenderer) Render(s *core.Screen) string {
	r.out.Reset()
	r.out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			r.out.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				r.flush(current)
				current = cell.Color
			}
			r.run = append(r.run, cell.Rune)
		}
		r.flush(current)
	}
	return r.out.String()
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return newScreenRenderer().Render(s)
}
