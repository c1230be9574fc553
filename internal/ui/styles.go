package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	greetingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("243"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	welcomeBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 4)
)

// fadeRamp runs from near-background to full foreground; a task's
// presence value indexes into it to fake an opacity fade.
var fadeRamp = []lipgloss.Color{
	"235", "237", "240", "243", "246", "250", "253", "255",
}

// fadeStyle returns the text style for a task at presence v in [0,1].
func fadeStyle(v float64) lipgloss.Style {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	i := int(v * float64(len(fadeRamp)-1))
	return lipgloss.NewStyle().Foreground(fadeRamp[i])
}
