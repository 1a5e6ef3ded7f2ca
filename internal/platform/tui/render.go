package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
	core.ColorFlame:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorEmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("64")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Menu styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
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
