package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSaveCommand creates the 'save' subcommand.
func NewSaveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "save <script> <command batch>...",
		Short:   "Append a command batch to a stored script.",
		Example: `  fakecmd save warmup 'say glhf;noclip'`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch := strings.Join(args[1:], " ")
			added, err := app.Runner.SaveBatch(args[0], batch)
			if err != nil {
				return fmt.Errorf("could not save batch: %w", err)
			}
			out := cmd.OutOrStdout()
			if !added {
				fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Script %s already contains: %s", args[0], batch)))
				return nil
			}
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Saved to %s: %s", args[0], ui.CommandColor(batch))))
			return nil
		},
	}
}
