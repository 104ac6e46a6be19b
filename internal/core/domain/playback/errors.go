package playback

import "fmt"

/*
InvalidCharacterError reports input that failed charset validation
because it contains something other than an ASCII letter or a dash.
Char and Position identify the first offending rune; Input is the line
exactly as the user typed it.
*/
type InvalidCharacterError struct {
	Input    string
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d in input %q", e.Char, e.Position, e.Input)
}

/*
UnrecognizedCommandError reports validated, normalized input that
matched no command table entry. Input is the original line, not the
normalized form, so reports can echo what the user actually typed.
*/
type UnrecognizedCommandError struct {
	Input string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command %q", e.Input)
}
