package testutil

import (
	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
)

// MockCommandValidationService is a mock implementation of
// ports.CommandValidationService for testing handlers.
type MockCommandValidationService struct {
	EvaluateFunc   func(raw string) (playback.Match, error)
	PromptTextFunc func() string
	// EvaluateCalls keeps track of the arguments passed to Evaluate.
	EvaluateCalls []string
}

// Evaluate mocks the Evaluate method.
func (m *MockCommandValidationService) Evaluate(raw string) (playback.Match, error) {
	m.EvaluateCalls = append(m.EvaluateCalls, raw)
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(raw)
	}
	// Default behavior: nothing matches.
	return playback.Match{}, &playback.UnrecognizedCommandError{Input: raw}
}

// PromptText mocks the PromptText method.
func (m *MockCommandValidationService) PromptText() string {
	if m.PromptTextFunc != nil {
		return m.PromptTextFunc()
	}
	// Default behavior: return an empty prompt.
	return ""
}

// Ensure MockCommandValidationService implements the ports.CommandValidationService interface.
var _ ports.CommandValidationService = (*MockCommandValidationService)(nil)
