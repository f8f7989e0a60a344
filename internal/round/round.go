// Package round runs "name the neighbours" rounds over a note set.
package round

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/shnupta/notequiz/internal/normalize"
	"github.com/shnupta/notequiz/internal/notes"
)

// ErrNoRound is returned when an answer is submitted while no round is active.
var ErrNoRound = errors.New("no active round")

// smallSetLimit is the largest set size whose boundary notes are never drawn
// as the center.
const smallSetLimit = 7

// State is the engine's round lifecycle state.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Round is one instance of "guess the neighbours".
type Round struct {
	Mode   notes.Mode
	Set    notes.NoteSet
	Center int
}

// NewRound builds a round for mode centred on index center (taken modulo the
// set length).
func NewRound(mode notes.Mode, center int) Round {
	set := notes.Get(mode)
	n := set.Len()
	return Round{Mode: mode, Set: set, Center: ((center % n) + n) % n}
}

// Note is the label of the center note.
func (r Round) Note() string { return r.Set.At(r.Center) }

// Previous is the correct answer for the note before the center.
func (r Round) Previous() string { return r.Set.Prev(r.Center) }

// Next is the correct answer for the note after the center.
func (r Round) Next() string { return r.Set.NextOf(r.Center) }

// Verdict is the result of checking an answer pair.
type Verdict struct {
	PreviousCorrect bool
	NextCorrect     bool
	CorrectPrevious string
	Center          string
	CorrectNext     string
}

// Correct reports whether both neighbours were named correctly.
func (v Verdict) Correct() bool { return v.PreviousCorrect && v.NextCorrect }

// Sequence renders the correct neighbourhood, e.g. "Ré# → Mi → Fá".
func (v Verdict) Sequence() string {
	return v.CorrectPrevious + " → " + v.Center + " → " + v.CorrectNext
}

// Evaluate checks userPrevious and userNext against r. Both sides are folded
// with normalize.Normalize before comparison.
func Evaluate(r Round, userPrevious, userNext string) Verdict {
	prev, next := r.Previous(), r.Next()
	return Verdict{
		PreviousCorrect: normalize.Equal(userPrevious, prev),
		NextCorrect:     normalize.Equal(userNext, next),
		CorrectPrevious: prev,
		Center:          r.Note(),
		CorrectNext:     next,
	}
}

// Engine owns the single live round and its Idle/Active state.
// It does no locking; callers serialise Start, Evaluate and Reset.
type Engine struct {
	pick   func(n int) int
	logger *slog.Logger

	state   State
	current Round
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the random source used to draw centers. pick must
// return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(e *Engine) { e.pick = pick }
}

// WithLogger sets the logger for round events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an idle Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		pick:   rand.IntN,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start replaces any current round with a fresh one in mode and makes it
// active. Sets of up to seven notes never center on their first or last note;
// larger sets draw from the whole range.
func (e *Engine) Start(mode notes.Mode) Round {
	set := notes.Get(mode)
	n := set.Len()

	var center int
	if n <= smallSetLimit {
		center = 1 + e.pick(n-2)
	} else {
		center = e.pick(n)
	}

	e.current = Round{Mode: mode, Set: set, Center: center}
	e.state = Active
	e.logger.Debug("round: started", "mode", mode, "center", center, "note", e.current.Note())
	return e.current
}

// Evaluate checks an answer pair against the live round. A fully correct
// answer closes the round; a partial or wrong one leaves it open for retry.
func (e *Engine) Evaluate(userPrevious, userNext string) (Verdict, error) {
	if e.state != Active {
		return Verdict{}, ErrNoRound
	}
	v := Evaluate(e.current, userPrevious, userNext)
	if v.Correct() {
		e.state = Idle
	}
	e.logger.Debug("round: evaluated",
		"mode", e.current.Mode,
		"center", e.current.Center,
		"previous_correct", v.PreviousCorrect,
		"next_correct", v.NextCorrect,
	)
	return v, nil
}

// Reset discards the current round, as happens when the mode changes.
func (e *Engine) Reset() {
	e.current = Round{}
	e.state = Idle
}

// State returns the engine's lifecycle state.
func (e *Engine) State() State { return e.state }

// Current returns the most recently started round. ok is false when no round
// has been started since the last Reset.
func (e *Engine) Current() (r Round, ok bool) {
	if e.current.Mode == "" {
		return Round{}, false
	}
	return e.current, true
}
