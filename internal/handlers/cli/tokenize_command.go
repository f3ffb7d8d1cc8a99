package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/fakecmd/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTokenizeCommand creates the 'tokenize' subcommand.
func NewTokenizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <command batch>...",
		Short: "Show how a command batch is split and tokenized.",
		Long:  `Splits the batch on ';' and prints the argument vector of every sub-command without running anything.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenizeCmd(cmd.OutOrStdout(), strings.Join(args, " "), app)
		},
	}
}

func runTokenizeCmd(w io.Writer, batch string, app *App) error {
	subCommands := app.Splitter.Split(batch)
	if len(subCommands) == 0 {
		fmt.Fprintln(w, ui.InfoColor("The batch contains no command."))
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Sub-command", "Argc", "Argv"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	for i, text := range subCommands {
		argv := app.Tokenizer.Tokenize(text)
		quoted := make([]string, len(argv))
		for k, arg := range argv {
			quoted[k] = strconv.Quote(arg)
		}
		table.Append([]string{strconv.Itoa(i + 1), text, strconv.Itoa(len(argv)), strings.Join(quoted, " ")})
	}
	table.Render()
	return nil
}
