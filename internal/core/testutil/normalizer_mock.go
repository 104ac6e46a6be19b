package testutil

import (
	"strings"

	"github.com/pmcarmo/deckhand/internal/core/ports"
)

// MockNormalizer is a mock implementation of ports.Normalizer.
type MockNormalizer struct {
	// NormalizeFunc allows you to set a custom function for the Normalize method.
	NormalizeFunc func(validated string) string
	// NormalizeCalls keeps track of the arguments passed to Normalize.
	NormalizeCalls []string
}

// NewMockNormalizer creates a new MockNormalizer.
func NewMockNormalizer() *MockNormalizer {
	return &MockNormalizer{
		NormalizeCalls: make([]string, 0),
	}
}

// Normalize implements the ports.Normalizer interface.
// It calls NormalizeFunc if it's set, otherwise lowercases the input
// like the real normalizer, which is what most tests want.
func (m *MockNormalizer) Normalize(validated string) string {
	m.NormalizeCalls = append(m.NormalizeCalls, validated)
	if m.NormalizeFunc != nil {
		return m.NormalizeFunc(validated)
	}
	return strings.ToLower(validated)
}

// Ensure MockNormalizer satisfies the Normalizer interface.
var _ ports.Normalizer = (*MockNormalizer)(nil)
