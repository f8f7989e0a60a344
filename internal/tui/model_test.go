package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shnupta/notequiz/internal/config"
	"github.com/shnupta/notequiz/internal/notes"
	"github.com/shnupta/notequiz/internal/round"
)

// newTestModel returns a Model whose engine always draws pick as the raw index.
func newTestModel(t *testing.T, mode notes.Mode, pick int) Model {
	t.Helper()
	engine := round.New(round.WithPicker(func(n int) int { return pick % n }))
	cfg := config.DefaultConfig()
	cfg.DefaultMode = string(mode)
	m := New(engine, cfg, nil)
	m.width = 100
	m.height = 30
	return m
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestNewStartsIdle(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	if m.State() != round.Idle {
		t.Errorf("State() = %s, want idle", m.State())
	}
	if m.Center() != unknownNote {
		t.Errorf("Center() = %q, want %q", m.Center(), unknownNote)
	}
	if m.Mode() != notes.Sharps {
		t.Errorf("Mode() = %q, want sharps", m.Mode())
	}
}

func TestStartDrawsNoteAndFocusesPrevious(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")

	if m.Center() != "Mi" {
		t.Errorf("Center() = %q, want Mi", m.Center())
	}
	if m.State() != round.Active {
		t.Errorf("State() = %s, want active", m.State())
	}
	if m.focus != FocusPrevious {
		t.Errorf("focus = %v, want FocusPrevious", m.focus)
	}
}

func TestEnterWhileIdleStartsRound(t *testing.T) {
	m := newTestModel(t, notes.Natural, 4)
	m = press(t, m, "enter")
	if m.Center() != "Lá" {
		t.Errorf("Center() = %q, want Lá", m.Center())
	}
}

func TestCorrectAnswerClosesRound(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	m = typeText(t, m, "re #")
	m = press(t, m, "enter")
	if m.focus != FocusNext {
		t.Fatalf("focus after enter in previous = %v, want FocusNext", m.focus)
	}
	m = typeText(t, m, "FA")
	m = press(t, m, "enter")

	if m.State() != round.Idle {
		t.Errorf("State() = %s, want idle after correct answer", m.State())
	}
	if m.messageKind != messageSuccess {
		t.Errorf("messageKind = %v, want success (message %q)", m.messageKind, m.Message())
	}
	if !strings.Contains(m.Message(), "Ré# → Mi → Fá") {
		t.Errorf("Message() = %q, want the sequence", m.Message())
	}
	if m.focus != FocusMenu {
		t.Errorf("focus = %v, want FocusMenu", m.focus)
	}
	if m.Center() != "Mi" {
		t.Errorf("Center() = %q, want the solved note to stay visible", m.Center())
	}
}

func TestNaturalModeHidesSequence(t *testing.T) {
	m := newTestModel(t, notes.Natural, 4) // center Lá
	m = press(t, m, "s")
	m = typeText(t, m, "sol")
	m = press(t, m, "enter")
	m = typeText(t, m, "si")
	m = press(t, m, "enter")

	if m.messageKind != messageSuccess {
		t.Fatalf("messageKind = %v, want success (message %q)", m.messageKind, m.Message())
	}
	if strings.Contains(m.Message(), "→") {
		t.Errorf("Message() = %q, natural mode should not show the sequence", m.Message())
	}
}

func TestRevealSequenceOff(t *testing.T) {
	m := newTestModel(t, notes.Flats, 2) // center Ré
	m.revealSequence = false
	m = press(t, m, "s")
	m = typeText(t, m, "reb")
	m = press(t, m, "enter")
	m = typeText(t, m, "mib")
	m = press(t, m, "enter")

	if m.messageKind != messageSuccess {
		t.Fatalf("messageKind = %v, want success (message %q)", m.messageKind, m.Message())
	}
	if strings.Contains(m.Message(), "→") {
		t.Errorf("Message() = %q, want no sequence with reveal off", m.Message())
	}
}

func TestWrongAnswerKeepsRoundOpen(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	m = typeText(t, m, "re")
	m = press(t, m, "enter")
	m = typeText(t, m, "fa")
	m = press(t, m, "enter")

	if m.State() != round.Active {
		t.Errorf("State() = %s, want active after partial match", m.State())
	}
	if m.messageKind != messageError {
		t.Errorf("messageKind = %v, want error", m.messageKind)
	}
	if m.last == nil || m.last.PreviousCorrect || !m.last.NextCorrect {
		t.Errorf("last verdict = %+v, want previous wrong and next right", m.last)
	}
	if m.focus != FocusNext {
		t.Errorf("focus = %v, want FocusNext so the user can retry", m.focus)
	}
}

func TestEmptyAnswerIsWrong(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	m = press(t, m, "enter")
	m = press(t, m, "enter")

	if m.messageKind != messageError {
		t.Errorf("messageKind = %v, want error", m.messageKind)
	}
	if m.last == nil || m.last.PreviousCorrect || m.last.NextCorrect {
		t.Errorf("last verdict = %+v, want both wrong", m.last)
	}
}

func TestModeChangeResetsBoard(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	m = typeText(t, m, "re")
	m = press(t, m, "esc")
	m = press(t, m, "3")

	if m.Mode() != notes.Flats {
		t.Errorf("Mode() = %q, want flats", m.Mode())
	}
	if m.State() != round.Idle {
		t.Errorf("State() = %s, want idle after mode change", m.State())
	}
	if m.Center() != unknownNote {
		t.Errorf("Center() = %q, want %q", m.Center(), unknownNote)
	}
	if m.prevInput.Value() != "" {
		t.Errorf("previous field = %q, want cleared", m.prevInput.Value())
	}
}

func TestSelectingSameModeKeepsRound(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	m = press(t, m, "esc")
	m = press(t, m, "2")

	if m.State() != round.Active {
		t.Errorf("State() = %s, want active", m.State())
	}
	if m.Center() != "Mi" {
		t.Errorf("Center() = %q, want Mi", m.Center())
	}
}

func TestTabCyclesModes(t *testing.T) {
	m := newTestModel(t, notes.Natural, 0)
	m = press(t, m, "tab")
	if m.Mode() != notes.Sharps {
		t.Errorf("Mode() = %q, want sharps", m.Mode())
	}
	m = press(t, m, "tab")
	m = press(t, m, "tab")
	if m.Mode() != notes.Natural {
		t.Errorf("Mode() = %q, want natural after a full cycle", m.Mode())
	}
}

func TestMenuKeysAreTextWhileTyping(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	m = typeText(t, m, "s2q")

	if m.prevInput.Value() != "s2q" {
		t.Errorf("previous field = %q, want s2q", m.prevInput.Value())
	}
	if m.Mode() != notes.Sharps {
		t.Errorf("Mode() = %q, typing should not change mode", m.Mode())
	}
}

func TestAnswerKeyIgnoredWhenIdle(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "i")
	if m.focus != FocusMenu {
		t.Errorf("focus = %v, want FocusMenu while idle", m.focus)
	}
}

func TestConfigReloadWhileIdleSwitchesMode(t *testing.T) {
	m := newTestModel(t, notes.Natural, 0)
	off := false
	updated, _ := m.Update(configReloadMsg(config.Config{DefaultMode: "flats", ShowSequence: &off}))
	m = updated.(Model)

	if m.Mode() != notes.Flats {
		t.Errorf("Mode() = %q, want flats", m.Mode())
	}
	if m.revealSequence {
		t.Error("revealSequence = true, want false after reload")
	}
}

func TestConfigReloadDuringRoundKeepsMode(t *testing.T) {
	m := newTestModel(t, notes.Sharps, 4)
	m = press(t, m, "s")
	updated, _ := m.Update(configReloadMsg(config.Config{DefaultMode: "flats"}))
	m = updated.(Model)

	if m.Mode() != notes.Sharps {
		t.Errorf("Mode() = %q, want sharps while a round is live", m.Mode())
	}
	if m.State() != round.Active {
		t.Errorf("State() = %s, want active", m.State())
	}
}

func TestViewShowsModeAndNote(t *testing.T) {
	m := newTestModel(t, notes.Flats, 1)
	m = press(t, m, "s")
	out := m.View()

	for _, want := range []string{"Ré♭", "flats", "Previous", "Next"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTruncateLines(t *testing.T) {
	got := truncateLines("abcdef\nxy", 3)
	if got != "abc\nxy" {
		t.Errorf("truncateLines = %q, want %q", got, "abc\nxy")
	}
	if got := truncateLines("abcdef", 0); got != "abcdef" {
		t.Errorf("truncateLines with width 0 = %q, want unchanged", got)
	}
}
