package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/AntonioJCosta/fakecmd/internal/handlers/ui"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <actor> [script]...",
		Short: "Run stored command scripts for an actor.",
		Long: `Runs every line of the named scripts as a command batch for the actor.
Without a script name the stored scripts are listed and you can pick them by number.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, app)
		},
	}
}

func runRunCmd(cmd *cobra.Command, args []string, app *App) error {
	out := cmd.OutOrStdout()
	names := args[1:]
	if len(names) == 0 {
		selected, err := selectScriptsNumerically(cmd.InOrStdin(), out, app)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Fprintln(out, ui.InfoColor("No scripts selected."))
			return nil
		}
		names = selected
	}

	var errs []error
	for _, name := range names {
		report, err := app.Runner.RunScript(args[0], name)
		fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Script %s for %s:", name, report.Actor)))
		for _, d := range report.Dispatches {
			printDispatchReport(out, report.Actor, d)
		}
		if report.Elapsed > 0 {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(finished in %s)", durafmt.Parse(report.Elapsed).LimitFirstN(2).String())))
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d script(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

func selectScriptsNumerically(in io.Reader, out io.Writer, app *App) ([]string, error) {
	scripts, err := app.Runner.ListScripts()
	if err != nil {
		return nil, fmt.Errorf("could not list scripts: %w", err)
	}
	if len(scripts) == 0 {
		return []string{}, nil
	}
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, ui.PromptColor("Select scripts to run (e.g., 1,3-5, or 'all', 'none'):"))
	for i, name := range names {
		fmt.Fprintf(out, "%d. %s %s\n", i+1, ui.CommandColor(name), ui.DetailColor(fmt.Sprintf("(%d commands)", scripts[name])))
	}
	fmt.Fprint(out, ui.PromptColor("Your choice: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	indices, err := parseNumericSelectionInput(input, len(names))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		selected = append(selected, names[idx])
	}
	return selected, nil
}
