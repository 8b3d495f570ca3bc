package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tommynicol/hexflap/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorChip:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorChipDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorCircuit:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorCircuitDark: lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
	core.ColorText:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorSpark:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorDanger:      lipgloss.NewStyle().Foreground(lipgloss.Color("198")).Bold(true),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorWater:       lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorBuilding:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

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
