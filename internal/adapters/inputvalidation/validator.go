package inputvalidation

import (
	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
)

// CharsetValidator provides a simple implementation of input charset
// validation.
type CharsetValidator struct{}

// NewCharsetValidator creates a new CharsetValidator.
func NewCharsetValidator() ports.InputValidator {
	return &CharsetValidator{}
}

// Validate checks that every character of raw is an ASCII letter or a
// dash. The first offending rune is reported as a
// *playback.InvalidCharacterError. Empty input passes; it contains no
// illegal character, and rejecting it is the dispatcher's business.
func (v *CharsetValidator) Validate(raw string) error {
	for i, r := range raw {
		if isCommandRune(r) {
			continue
		}
		// Every rune before the first offender is single-byte ASCII,
		// so the byte offset i equals the character position.
		return &playback.InvalidCharacterError{Input: raw, Char: r, Position: i}
	}
	return nil
}

// isCommandRune reports whether r may appear in a command token.
func isCommandRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '-':
		return true
	}
	return false
}
