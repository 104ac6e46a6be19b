package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pmcarmo/deckhand/internal/core/ports"
	"github.com/pmcarmo/deckhand/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewCommandsCommand creates the 'commands' subcommand.
func NewCommandsCommand(commandCatalogService ports.CommandCatalogService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the playback commands the console recognizes.",
		Long: `Displays the fixed command table: each command word, its one-letter
abbreviation, and the action it triggers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandsCmd(cmd, args, commandCatalogService)
		},
	}
	return cmd
}

// runCommandsCmd contains the core logic for the 'commands' command.
func runCommandsCmd(
	cmd *cobra.Command,
	_ []string,
	commandCatalogService ports.CommandCatalogService,
) error {
	if commandCatalogService == nil {
		return fmt.Errorf("command catalog service not initialized")
	}

	out := cmd.OutOrStdout()

	defs := commandCatalogService.ListDefinitions()
	if len(defs) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No commands are configured."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Recognized playback commands (in dispatch precedence order):"))
	fmt.Fprintln(out, ui.DetailColor("A command matches its full word or its abbreviation, case-insensitively."))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Word", "Abbreviation", "Action"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, def := range defs {
		table.Append([]string{def.Word, def.Abbreviation, string(def.Action)})
	}
	table.Render()
	return nil
}
