package cli

import (
	"fmt"

	"github.com/pmcarmo/deckhand/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(commandValidationService ports.CommandValidationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive command validator console.",
		Long: `Reads playback commands from standard input in a loop, validates each
line, and prints the recognized command until quit is entered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsoleCmd(cmd, args, commandValidationService)
		},
	}
	return cmd
}

// runConsoleCmd contains the core logic for the 'run' command. The
// root command reuses it for bare invocations.
func runConsoleCmd(
	cmd *cobra.Command,
	_ []string,
	commandValidationService ports.CommandValidationService,
) error {
	if commandValidationService == nil {
		return fmt.Errorf("command validation service not initialized")
	}
	return runConsole(cmd.InOrStdin(), cmd.OutOrStdout(), commandValidationService)
}
