package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colours
	colAccent   = lipgloss.Color("#7C3AED") // purple
	colSuccess  = lipgloss.Color("#10B981") // emerald
	colError    = lipgloss.Color("#EF4444") // red
	colText     = lipgloss.Color("#E5E7EB")
	colSubtext  = lipgloss.Color("#6B7280")
	colBorder   = lipgloss.Color("#374151")
	colSelected = lipgloss.Color("#1F2937")

	styleHeader = lipgloss.NewStyle().
			Background(colAccent).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	styleModeItem = lipgloss.NewStyle().
			Foreground(colSubtext).
			Padding(0, 1)

	styleModeItemSelected = lipgloss.NewStyle().
				Background(colSelected).
				Foreground(colText).
				Bold(true).
				Padding(0, 1)

	styleNoteCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colAccent).
			Foreground(colText).
			Bold(true).
			Padding(1, 4).
			Align(lipgloss.Center)

	styleLabel = lipgloss.NewStyle().
			Foreground(colSubtext).
			Width(10)

	styleInput = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(0, 1)

	styleInputFocused = styleInput.
				BorderForeground(colAccent)

	styleInputDisabled = styleInput.
				Foreground(colSubtext)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colSuccess).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colError)

	styleHelp = lipgloss.NewStyle().
			Background(colSelected).
			Foreground(colSubtext).
			PaddingLeft(1)
)

// answerMark returns a coloured tick or cross for one side of a verdict.
func answerMark(ok bool) string {
	if ok {
		return styleSuccess.Render("✓")
	}
	return styleError.Render("✗")
}
