package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/AntonioJCosta/fakecmd/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewScriptsCommand creates the 'scripts' subcommand.
func NewScriptsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "scripts",
		Short: "List stored command scripts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			scripts, err := app.Runner.ListScripts()
			if err != nil {
				return fmt.Errorf("could not list scripts: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(scripts) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No scripts found."))
				return nil
			}

			names := make([]string, 0, len(scripts))
			for name := range scripts {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Fprintln(out, ui.HeaderColor("Stored Scripts:"))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Script", "Commands"})
			table.SetBorder(true)
			table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
			for _, name := range names {
				table.Append([]string{name, strconv.Itoa(scripts[name])})
			}
			table.Render()
			return nil
		},
	}
}

// NewActorsCommand creates the 'actors' subcommand.
func NewActorsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "actors",
		Short: "List the actors of the roster.",
		RunE: func(cmd *cobra.Command, args []string) error {
			actors, err := app.Actors.GetActors()
			if err != nil {
				return fmt.Errorf("could not list actors: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(actors) == 0 {
				fmt.Fprintln(out, ui.InfoColor("The roster is empty."))
				return nil
			}

			fmt.Fprintln(out, ui.HeaderColor("Actors:"))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"ID", "Name", "Bot"})
			table.SetBorder(true)
			for _, a := range actors {
				table.Append([]string{"#" + strconv.Itoa(a.ID), a.Name, strconv.FormatBool(a.Bot)})
			}
			table.Render()
			return nil
		},
	}
}

// NewStatsCommand creates the 'stats' subcommand.
func NewStatsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the most frequently dispatched verbs.",
		Long:  `Reads the dispatch journal and counts the verbs of the most recent sub-commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Journal == nil {
				fmt.Fprintln(out, ui.WarningColor("The dispatch journal is disabled."))
				return nil
			}

			scanLimit, _ := cmd.Flags().GetInt("scan-limit")
			outputLimit, _ := cmd.Flags().GetInt("output-limit")
			if scanLimit <= 0 {
				scanLimit = 500
			}
			if outputLimit <= 0 {
				outputLimit = 10
			}

			freqs, err := app.Journal.GetVerbFrequencies(scanLimit, outputLimit)
			if err != nil {
				return fmt.Errorf("could not read journal: %w", err)
			}
			if len(freqs) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No dispatches recorded yet."))
				fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", app.Journal.GetSourceIdentifier())))
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Verb", "Count"})
			table.SetBorder(true)
			for _, f := range freqs {
				table.Append([]string{f.Verb, strconv.Itoa(f.Count)})
			}
			table.Render()
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", app.Journal.GetSourceIdentifier())))
			return nil
		},
	}
	cmd.Flags().IntP("scan-limit", "s", 0, "Number of recent journal entries to scan (default 500).")
	cmd.Flags().IntP("output-limit", "o", 0, "Maximum number of verbs to show (default 10).")
	return cmd
}
