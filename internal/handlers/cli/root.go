package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pmcarmo/deckhand/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	validationService ports.CommandValidationService,
	catalogService ports.CommandCatalogService,
) *cobra.Command {
	var noColor bool

	rootCmd = &cobra.Command{
		Use:   "deckhand",
		Short: "deckhand validates interactive playback commands.",
		Long: `deckhand reads playback commands from the terminal, checks them against
a fixed command table, and confirms each recognized command. Run it
without arguments to start the interactive console.`,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			if validationService == nil && (cmd.Name() == "deckhand" || cmd.Name() == "run" || cmd.Name() == "validate") {
				return fmt.Errorf("command validation service not initialized for command %s", cmd.Name())
			}
			if catalogService == nil && cmd.Name() == "commands" {
				return fmt.Errorf("command catalog service not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare invocation starts the interactive console.
			return runConsoleCmd(cmd, args, validationService)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	rootCmd.AddCommand(NewRunCommand(validationService))
	rootCmd.AddCommand(NewCommandsCommand(catalogService))
	rootCmd.AddCommand(NewValidateCommand(validationService))

	return rootCmd
}
