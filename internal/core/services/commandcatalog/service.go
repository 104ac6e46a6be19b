package commandcatalog

import (
	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
)

type service struct {
	table playback.Table
}

// NewService creates a new command catalog service.
// It panics if the table is empty; the table comes from startup wiring
// and an empty one means the wiring is broken.
func NewService(table playback.Table) ports.CommandCatalogService {
	if table.Len() == 0 {
		panic("command table cannot be empty")
	}
	return &service{table: table}
}

// ListDefinitions returns the command table entries in dispatch
// precedence order.
func (s *service) ListDefinitions() []playback.Definition {
	return s.table.Definitions()
}
