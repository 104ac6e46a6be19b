package testutil

import (
	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
)

// MockCommandCatalogService is a mock implementation of
// ports.CommandCatalogService for testing handlers.
type MockCommandCatalogService struct {
	ListDefinitionsFunc func() []playback.Definition
}

// ListDefinitions mocks the ListDefinitions method.
func (m *MockCommandCatalogService) ListDefinitions() []playback.Definition {
	if m.ListDefinitionsFunc != nil {
		return m.ListDefinitionsFunc()
	}
	// Default behavior: an empty catalog.
	return nil
}

// Ensure MockCommandCatalogService implements the ports.CommandCatalogService interface.
var _ ports.CommandCatalogService = (*MockCommandCatalogService)(nil)
