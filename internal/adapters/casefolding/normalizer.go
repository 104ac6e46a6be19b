package casefolding

import (
	"strings"

	"github.com/pmcarmo/deckhand/internal/core/ports"
)

// LowercaseNormalizer provides the canonical lowercase normalization
// applied to validated input before dispatch.
type LowercaseNormalizer struct{}

// NewLowercaseNormalizer creates a new LowercaseNormalizer.
func NewLowercaseNormalizer() ports.Normalizer {
	return &LowercaseNormalizer{}
}

// Normalize returns the lowercase form of validated. It is total and
// idempotent.
func (n *LowercaseNormalizer) Normalize(validated string) string {
	return strings.ToLower(validated)
}
