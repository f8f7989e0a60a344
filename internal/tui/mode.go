package tui

// Focus is the part of the screen that currently receives keystrokes.
type Focus int

const (
	FocusMenu Focus = iota
	FocusPrevious
	FocusNext
)
