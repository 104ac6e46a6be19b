package main

import (
	"fmt"
	"os"

	"github.com/pmcarmo/deckhand/internal/adapters/casefolding"
	"github.com/pmcarmo/deckhand/internal/adapters/commandtable"
	"github.com/pmcarmo/deckhand/internal/adapters/inputvalidation"
	"github.com/pmcarmo/deckhand/internal/core/services/commandcatalog"
	"github.com/pmcarmo/deckhand/internal/core/services/commandvalidation"
	"github.com/pmcarmo/deckhand/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	tableProvider, err := commandtable.NewEmbeddedProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing command table provider: %v\n", err)
		os.Exit(1)
	}

	table, err := tableProvider.GetCommandTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading command table: %v\n", err)
		os.Exit(1)
	}

	validator := inputvalidation.NewCharsetValidator()
	normalizer := casefolding.NewLowercaseNormalizer()

	commandValidationSvc := commandvalidation.NewService(validator, normalizer, table)
	commandCatalogSvc := commandcatalog.NewService(table)
	rootCmd := cli.NewRootCommand(Version, commandValidationSvc, commandCatalogSvc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
