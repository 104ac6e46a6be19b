package commandtable

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// embeddedCommandTable holds the fixed command table compiled into the
// binary. Membership is closed: nothing is read from disk and no
// command can be added or removed at runtime.
//
//go:embed commands.yaml
var embeddedCommandTable []byte

// EmbeddedProvider implements the CommandTableProvider interface by
// decoding the embedded YAML document once at construction.
type EmbeddedProvider struct {
	table playback.Table
}

// NewEmbeddedProvider decodes and validates the embedded command
// table. A decode or validation failure is a startup error; there is
// no fallback table.
func NewEmbeddedProvider() (ports.CommandTableProvider, error) {
	defs, err := parseDefinitions(embeddedCommandTable)
	if err != nil {
		return nil, err
	}

	table, err := playback.NewTable(defs)
	if err != nil {
		return nil, fmt.Errorf("embedded command table is invalid: %w", err)
	}
	return &EmbeddedProvider{table: table}, nil
}

// GetCommandTable returns the table decoded at construction.
func (p *EmbeddedProvider) GetCommandTable() (playback.Table, error) {
	return p.table, nil
}

// parseDefinitions decodes a YAML command table document. Unknown
// fields are rejected, so a typo in the document fails at startup
// instead of silently dropping a column.
func parseDefinitions(doc []byte) ([]playback.Definition, error) {
	if len(doc) == 0 {
		return nil, fmt.Errorf("embedded command table document is empty")
	}

	defs := []playback.Definition{}
	decoder := yaml.NewDecoder(bytes.NewReader(doc))
	decoder.KnownFields(true)

	if err := decoder.Decode(&defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedded command table: %w", err)
	}
	return defs, nil
}
