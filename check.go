package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/shnupta/notequiz/internal/notes"
	"github.com/shnupta/notequiz/internal/round"
)

// errWrongAnswer makes check exit non-zero without printing an error line.
var errWrongAnswer = errors.New("wrong answer")

// runDraw starts a round and prints its center index and note, for use with
// a later check.
func runDraw(w io.Writer, engine *round.Engine, mode notes.Mode) error {
	r := engine.Start(mode)
	_, err := fmt.Fprintf(w, "%d %s\n", r.Center, r.Note())
	return err
}

// runCheck evaluates the answer pair in args against the round centred on
// center and prints the verdict.
func runCheck(w io.Writer, mode notes.Mode, center int, args []string) error {
	if center < 0 {
		return errors.New("check needs --center (see 'notequiz draw')")
	}
	if len(args) != 2 {
		return fmt.Errorf("check needs exactly two answers (previous and next), got %d", len(args))
	}

	v := round.Evaluate(round.NewRound(mode, center), args[0], args[1])
	printVerdict(w, v)
	if !v.Correct() {
		return errWrongAnswer
	}
	return nil
}

func printVerdict(w io.Writer, v round.Verdict) {
	mark := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "wrong"
	}
	fmt.Fprintf(w, "note:     %s\n", v.Center)
	fmt.Fprintf(w, "previous: %s (%s)\n", mark(v.PreviousCorrect), v.CorrectPrevious)
	fmt.Fprintf(w, "next:     %s (%s)\n", mark(v.NextCorrect), v.CorrectNext)
	if v.Correct() {
		fmt.Fprintln(w, "correct: ", v.Sequence())
	}
}
