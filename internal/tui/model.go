package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shnupta/notequiz/internal/config"
	"github.com/shnupta/notequiz/internal/notes"
	"github.com/shnupta/notequiz/internal/round"
)

// unknownNote is displayed in the note card while no round has been drawn.
const unknownNote = "?"

type messageKind int

const (
	messageNone messageKind = iota
	messageSuccess
	messageError
)

// msg types used by the BubbleTea event loop.

type configReloadMsg config.Config

// Model is the root BubbleTea model.
type Model struct {
	// Dimensions
	width  int
	height int

	// Round
	engine *round.Engine
	mode   notes.Mode
	center string         // label in the note card, unknownNote when idle after a reset
	last   *round.Verdict // most recent verdict for the live round, nil before the first check

	// Input
	focus     Focus
	prevInput textinput.Model
	nextInput textinput.Model

	// Feedback
	message     string
	messageKind messageKind

	// Settings
	revealSequence bool
	watcher        config.WatcherIface

	help help.Model
}

// New returns an initialised Model. w may be nil when config hot reload is
// unavailable.
func New(engine *round.Engine, cfg config.Config, w config.WatcherIface) Model {
	pi := textinput.New()
	pi.Placeholder = "previous note..."
	pi.CharLimit = 16
	pi.Width = 16

	ni := textinput.New()
	ni.Placeholder = "next note..."
	ni.CharLimit = 16
	ni.Width = 16

	return Model{
		engine:         engine,
		mode:           cfg.Mode(),
		center:         unknownNote,
		focus:          FocusMenu,
		prevInput:      pi,
		nextInput:      ni,
		revealSequence: cfg.RevealSequence(),
		watcher:        w,
		help:           help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForConfig(m.watcher)
}

// waitForConfig waits for the next config reload from the watcher.
func waitForConfig(w config.WatcherIface) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-w.Events()
		if !ok {
			return nil
		}
		return configReloadMsg(cfg)
	}
}

// Mode returns the selected note set.
func (m Model) Mode() notes.Mode { return m.mode }

// Center returns the label shown in the note card.
func (m Model) Center() string { return m.center }

// Message returns the feedback line.
func (m Model) Message() string { return m.message }

// State returns the round engine's lifecycle state.
func (m Model) State() round.State { return m.engine.State() }

// selectMode switches the note set. Switching discards any live round and
// clears the board, leaving the trainer idle.
func (m *Model) selectMode(mode notes.Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.engine.Reset()
	m.center = unknownNote
	m.clearBoard()
	m.blurInputs()
}

// startRound draws a new center note and focuses the first answer field.
func (m *Model) startRound() tea.Cmd {
	m.clearBoard()
	r := m.engine.Start(m.mode)
	m.center = r.Note()
	return m.focusInput(FocusPrevious)
}

// checkAnswer evaluates both fields against the live round.
func (m *Model) checkAnswer() {
	v, err := m.engine.Evaluate(m.prevInput.Value(), m.nextInput.Value())
	if err != nil {
		m.message = "No note to answer. Press s to draw one."
		m.messageKind = messageError
		m.blurInputs()
		return
	}
	m.last = &v

	if !v.Correct() {
		m.message = "Try again. Check your answers."
		m.messageKind = messageError
		return
	}

	m.message = "Correct! You got both notes!"
	if m.mode != notes.Natural && m.revealSequence {
		m.message += " The sequence is: " + v.Sequence()
	}
	m.messageKind = messageSuccess
	m.blurInputs()
}

// applyConfig takes a reloaded config. The default mode only replaces the
// selection while no round is live.
func (m *Model) applyConfig(cfg config.Config) {
	m.revealSequence = cfg.RevealSequence()
	if m.engine.State() == round.Idle {
		m.selectMode(cfg.Mode())
	}
}

func (m *Model) clearBoard() {
	m.prevInput.Reset()
	m.nextInput.Reset()
	m.message = ""
	m.messageKind = messageNone
	m.last = nil
}

func (m *Model) focusInput(f Focus) tea.Cmd {
	m.focus = f
	switch f {
	case FocusPrevious:
		m.nextInput.Blur()
		return m.prevInput.Focus()
	case FocusNext:
		m.prevInput.Blur()
		return m.nextInput.Focus()
	}
	return nil
}

func (m *Model) blurInputs() {
	m.focus = FocusMenu
	m.prevInput.Blur()
	m.nextInput.Blur()
}
