package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"github.com/AntonioJCosta/fakecmd/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewExecCommand creates the 'exec' subcommand.
func NewExecCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <actor> <command batch>...",
		Short: "Run a command batch as if typed by an actor.",
		Long: `Formats the batch with the --arg values (%s and %d placeholders),
splits it on ';' and runs every sub-command for the actor.
The actor is a name or #id from the roster.`,
		Example: `  fakecmd exec bot1 'say "hello there";noclip'
  fakecmd exec '#2' 'say_greet %s' --arg Alice`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecCmd(cmd, args, app)
		},
	}
	cmd.Flags().StringArrayP("arg", "a", nil, "Value for the next %s/%d placeholder (repeatable).")
	return cmd
}

func runExecCmd(cmd *cobra.Command, args []string, app *App) error {
	templateArgs, _ := cmd.Flags().GetStringArray("arg")

	target, err := app.Actors.FindActor(args[0])
	if err != nil {
		return fmt.Errorf("could not resolve actor %q: %w", args[0], err)
	}

	values := make([]any, len(templateArgs))
	for i, v := range templateArgs {
		values[i] = v
	}

	report, err := app.Bridge.Dispatch(target, strings.Join(args[1:], " "), values...)
	printDispatchReport(cmd.OutOrStdout(), args[0], report)
	if err != nil {
		return fmt.Errorf("command batch failed: %w", err)
	}
	return nil
}

func printDispatchReport(w io.Writer, actorRef string, report ports.DispatchReport) {
	if report.Aborted != ports.AbortNone {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("Nothing executed for %s: %s.", actorRef, report.Aborted)))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n",
		ui.InfoColor("Executed"),
		ui.CommandColor(report.Command),
		ui.DetailColor(fmt.Sprintf("(dispatch %s)", report.DispatchID)))
	for i, sub := range report.Executed {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, ui.VerbColor(sub.Verb()), ui.DetailColor(fmt.Sprintf("argc=%d", len(sub.Argv))))
	}
}
