package ports

import "github.com/pmcarmo/deckhand/internal/core/domain/playback"

// CommandCatalogService defines the contract for read-only access to
// the command table, for listings and help output.
type CommandCatalogService interface {
	// ListDefinitions returns the table entries in dispatch precedence
	// order.
	ListDefinitions() []playback.Definition
}
