package ports

import "github.com/pmcarmo/deckhand/internal/core/domain/playback"

// CommandTableProvider defines the interface for sourcing the fixed
// command table, typically from data compiled into the binary. The
// table is loaded once at startup and is immutable afterwards.
type CommandTableProvider interface {
	GetCommandTable() (playback.Table, error)
}
