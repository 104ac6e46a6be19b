package ports

import "github.com/pmcarmo/deckhand/internal/core/domain/playback"

/*
CommandValidationService defines the contract for turning one raw input
line into a recognized playback command.

Evaluate validates the character set, normalizes the line, and
dispatches it against the command table. On success it returns the
match; on failure the error is a *playback.InvalidCharacterError or a
*playback.UnrecognizedCommandError, both echoing the original input.
*/
type CommandValidationService interface {
	Evaluate(raw string) (playback.Match, error)

	// PromptText returns the interactive prompt derived from the
	// command table.
	PromptText() string
}
