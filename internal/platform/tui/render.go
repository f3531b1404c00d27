package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanes/internal/core"
)

// colorStyles maps the game's semantic colours to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorGrass:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("28")),
	core.ColorLane:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("28")),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorHUD:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
