// Package notes defines the fixed note vocabularies a round can be played in.
package notes

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which note vocabulary governs a round.
type Mode string

const (
	Natural Mode = "natural"
	Sharps  Mode = "sharps"
	Flats   Mode = "flats"
)

// ErrUnknownMode is returned by ParseMode for anything outside the three modes.
var ErrUnknownMode = errors.New("unknown mode")

var modes = []Mode{Natural, Sharps, Flats}

// NoteSet is a cyclic, ordered sequence of note labels.
// Adjacency is defined by position and always wraps around.
type NoteSet struct {
	labels []string
}

var sets = map[Mode]NoteSet{
	Natural: {labels: []string{"Dó", "Ré", "Mi", "Fá", "Sol", "Lá", "Si"}},
	Sharps:  {labels: []string{"Dó", "Dó#", "Ré", "Ré#", "Mi", "Fá", "Fá#", "Sol", "Sol#", "Lá", "Lá#", "Si"}},
	Flats:   {labels: []string{"Dó", "Ré♭", "Ré", "Mi♭", "Mi", "Fá", "Sol♭", "Sol", "Lá♭", "Lá", "Si♭", "Si"}},
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Get returns the note set for mode. Mode must be one of Natural, Sharps or
// Flats; anything else is a programming error and panics.
func Get(mode Mode) NoteSet {
	s, ok := sets[mode]
	if !ok {
		panic(fmt.Sprintf("notes: no note set for mode %q", string(mode)))
	}
	return s
}

// ParseMode restricts an untrusted string (flag, config file) to a Mode.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sets[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Next returns the mode after m in menu order, wrapping to the first.
func (m Mode) Next() Mode {
	for i, mm := range modes {
		if mm == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

// Label returns a short human-readable name for the mode.
func (m Mode) Label() string {
	switch m {
	case Natural:
		return "natural notes"
	case Sharps:
		return "12 notes (sharps)"
	case Flats:
		return "12 notes (flats)"
	default:
		return string(m)
	}
}

// Len returns the number of notes in the set.
func (s NoteSet) Len() int { return len(s.labels) }

// At returns the label at index i, taken modulo Len.
func (s NoteSet) At(i int) string {
	return s.labels[s.wrap(i)]
}

// Prev returns the label that precedes index i.
func (s NoteSet) Prev(i int) string { return s.At(i - 1) }

// NextOf returns the label that follows index i.
func (s NoteSet) NextOf(i int) string { return s.At(i + 1) }

// Labels returns a copy of the sequence.
func (s NoteSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s NoteSet) wrap(i int) int {
	n := len(s.labels)
	return ((i % n) + n) % n
}
