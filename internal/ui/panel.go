package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StrengthScale is the entropy, in bits, that fills a strength bar.
const StrengthScale = 128

// StrengthBar renders a Unicode meter for bits of entropy out of max.
func StrengthBar(bits, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	if width < 5 {
		width = 5
	}
	if bits < 0 {
		bits = 0
	}
	filled := int(bits / max * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f bits", bar, bits)
}

// Panel frames lines in a rounded box.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}
