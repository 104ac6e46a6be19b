package commandvalidation

import (
	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
)

type service struct {
	validator  ports.InputValidator
	normalizer ports.Normalizer
	table      playback.Table
}

// NewService creates a new command validation service.
// It panics if validator or normalizer are nil, or if the table is
// empty; all three come from startup wiring and cannot be recovered
// from here.
func NewService(v ports.InputValidator, n ports.Normalizer, table playback.Table) ports.CommandValidationService {
	if v == nil {
		panic("validator cannot be nil")
	}
	if n == nil {
		panic("normalizer cannot be nil")
	}
	if table.Len() == 0 {
		panic("command table cannot be empty")
	}
	return &service{validator: v, normalizer: n, table: table}
}

// Evaluate turns one raw input line into a recognized playback
// command: charset validation, then normalization, then dispatch
// against the table. Errors echo the original input, not the
// normalized form.
func (s *service) Evaluate(raw string) (playback.Match, error) {
	if err := s.validator.Validate(raw); err != nil {
		return playback.Match{}, err
	}

	normalized := s.normalizer.Normalize(raw)
	match, ok := s.table.Match(normalized)
	if !ok {
		return playback.Match{}, &playback.UnrecognizedCommandError{Input: raw}
	}
	return match, nil
}

// PromptText returns the interactive prompt derived from the command
// table.
func (s *service) PromptText() string {
	return s.table.PromptText()
}
