package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/shnupta/notequiz/internal/notes"
	"github.com/shnupta/notequiz/internal/round"
)

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderModeMenu(),
		"",
		m.renderNoteCard(),
		"",
		m.renderField("Previous", m.prevInput, m.focus == FocusPrevious, m.previousMark()),
		m.renderField("Next", m.nextInput, m.focus == FocusNext, m.nextMark()),
		"",
		m.renderMessage(),
		"",
		m.renderHelp(),
	)
	return truncateLines(body, m.width)
}

func (m Model) renderHeader() string {
	title := "notequiz  ·  name the neighbours  ·  " + m.mode.Label()
	return styleHeader.Width(m.width).Render(title)
}

func (m Model) renderModeMenu() string {
	var items []string
	for i, mode := range notes.Modes() {
		label := string(rune('1'+i)) + " " + string(mode)
		if mode == m.mode {
			items = append(items, styleModeItemSelected.Render(label))
		} else {
			items = append(items, styleModeItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) renderNoteCard() string {
	return styleNoteCard.Width(14).Render(m.center)
}

func (m Model) renderField(label string, in textinput.Model, focused bool, mark string) string {
	style := styleInput
	switch {
	case focused:
		style = styleInputFocused
	case m.engine.State() != round.Active:
		style = styleInputDisabled
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		styleLabel.Render(label),
		style.Render(in.View()),
		" "+mark,
	)
}

// previousMark and nextMark annotate each field after a wrong answer so the
// user can see which side to fix.
func (m Model) previousMark() string {
	if m.last == nil || m.last.Correct() {
		return ""
	}
	return answerMark(m.last.PreviousCorrect)
}

func (m Model) nextMark() string {
	if m.last == nil || m.last.Correct() {
		return ""
	}
	return answerMark(m.last.NextCorrect)
}

func (m Model) renderMessage() string {
	switch m.messageKind {
	case messageSuccess:
		return styleSuccess.Render(m.message)
	case messageError:
		return styleError.Render(m.message)
	default:
		return ""
	}
}

func (m Model) renderHelp() string {
	var h string
	if m.focus == FocusMenu {
		h = m.help.View(menuHelp{})
	} else {
		h = m.help.View(inputHelp{})
	}
	return styleHelp.Width(m.width).Render(h)
}

// truncateLines truncates each line of s to at most maxWidth cells.
// Uses ANSI-aware truncation so escape codes don't corrupt the layout.
func truncateLines(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, maxWidth, "")
	}
	return strings.Join(lines, "\n")
}
