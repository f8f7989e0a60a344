package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shnupta/notequiz/internal/config"
	"github.com/shnupta/notequiz/internal/notes"
	"github.com/shnupta/notequiz/internal/round"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case configReloadMsg:
		cfg := config.Config(msg)
		slog.Debug("config: reloaded", "default_mode", cfg.Mode(), "show_sequence", cfg.RevealSequence())
		m.applyConfig(cfg)
		return m, waitForConfig(m.watcher)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == FocusMenu {
			return m.updateMenu(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

// ── Per-focus update handlers ─────────────────────────────────────────────

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Natural):
		m.selectMode(notes.Natural)
	case key.Matches(msg, keys.Sharps):
		m.selectMode(notes.Sharps)
	case key.Matches(msg, keys.Flats):
		m.selectMode(notes.Flats)
	case key.Matches(msg, keys.Cycle):
		m.selectMode(m.mode.Next())

	case key.Matches(msg, keys.Start):
		cmd = m.startRound()

	case key.Matches(msg, keys.Answer):
		if m.engine.State() == round.Active {
			cmd = m.focusInput(FocusPrevious)
		}

	case key.Matches(msg, keys.Submit):
		// Enter draws a note while idle and returns to the fields mid-round.
		if m.engine.State() == round.Active {
			cmd = m.focusInput(FocusPrevious)
		} else {
			cmd = m.startRound()
		}
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, keys.Back):
		m.blurInputs()
		return m, nil

	case key.Matches(msg, keys.Submit):
		if m.focus == FocusPrevious {
			cmd = m.focusInput(FocusNext)
		} else {
			m.checkAnswer()
		}
		return m, cmd

	case msg.Type == tea.KeyShiftTab && m.focus == FocusNext:
		cmd = m.focusInput(FocusPrevious)
		return m, cmd
	case msg.Type == tea.KeyTab && m.focus == FocusPrevious:
		cmd = m.focusInput(FocusNext)
		return m, cmd
	}

	if m.focus == FocusPrevious {
		m.prevInput, cmd = m.prevInput.Update(msg)
	} else {
		m.nextInput, cmd = m.nextInput.Update(msg)
	}
	return m, cmd
}
