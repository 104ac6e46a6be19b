package cli

import (
	"fmt"

	"github.com/pmcarmo/deckhand/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the 'validate' subcommand.
func NewValidateCommand(commandValidationService ports.CommandValidationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <input>",
		Short: "Validate a single command without starting the console.",
		Long: `Evaluates one input exactly as the interactive console would and prints
the confirmation for a recognized command. A validation failure is
reported as an error, so scripts can check the exit status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateCmd(cmd, args, commandValidationService)
		},
	}
	return cmd
}

func runValidateCmd(
	cmd *cobra.Command,
	args []string,
	commandValidationService ports.CommandValidationService,
) error {
	if commandValidationService == nil {
		return fmt.Errorf("command validation service not initialized")
	}

	match, err := commandValidationService.Evaluate(args[0])
	if err != nil {
		return fmt.Errorf("could not validate input: %w", err)
	}

	// Same confirmation the console prints. A one-shot quit only
	// prints; there is no console to terminate.
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", match.Definition.Output)
	return nil
}
