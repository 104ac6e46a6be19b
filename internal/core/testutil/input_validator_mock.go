package testutil

import (
	"github.com/pmcarmo/deckhand/internal/core/ports"
)

// MockInputValidator is a mock implementation of ports.InputValidator.
type MockInputValidator struct {
	// ValidateFunc allows you to set a custom function for the Validate method.
	ValidateFunc func(raw string) error
	// ValidateCalls keeps track of the arguments passed to Validate.
	ValidateCalls []string
}

// NewMockInputValidator creates a new MockInputValidator.
func NewMockInputValidator() *MockInputValidator {
	return &MockInputValidator{
		ValidateCalls: make([]string, 0),
	}
}

// Validate implements the ports.InputValidator interface.
// It calls ValidateFunc if it's set, otherwise reports every input as
// valid.
func (m *MockInputValidator) Validate(raw string) error {
	m.ValidateCalls = append(m.ValidateCalls, raw)
	if m.ValidateFunc != nil {
		return m.ValidateFunc(raw)
	}
	return nil
}

// Ensure MockInputValidator satisfies the InputValidator interface.
var _ ports.InputValidator = (*MockInputValidator)(nil)
