package cli

import (
	"fmt"

	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"github.com/spf13/cobra"
)

// App holds the services the subcommands run against.
type App struct {
	Bridge    ports.FakeCommandService
	Runner    ports.ScriptRunner
	Actors    ports.ActorProvider
	Journal   ports.DispatchJournal // nil when journaling is disabled
	Tokenizer ports.Tokenizer
	Splitter  ports.BatchSplitter
}

// SetupFunc builds the App once the persistent flags are parsed.
type SetupFunc func(configPath string, verbose bool) (*App, error)

func NewRootCommand(version string, setup SetupFunc) *cobra.Command {
	if setup == nil {
		panic("setup cannot be nil")
	}
	var (
		configPath string
		verbose    bool
	)
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "fakecmd",
		Short: "fakecmd injects client commands as if typed by an actor.",
		Long: `fakecmd splits command batches on ';', tokenizes every sub-command
and drives a simulated engine through the args/argv/argc query hooks,
so scripted actors can run client commands.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := setup(configPath, verbose)
			if err != nil {
				return fmt.Errorf("could not initialize fakecmd: %w", err)
			}
			*app = *built
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default $HOME/.fakecmd/config.yaml).")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")

	rootCmd.AddCommand(NewExecCommand(app))
	rootCmd.AddCommand(NewTokenizeCommand(app))
	rootCmd.AddCommand(NewRunCommand(app))
	rootCmd.AddCommand(NewSaveCommand(app))
	rootCmd.AddCommand(NewScriptsCommand(app))
	rootCmd.AddCommand(NewActorsCommand(app))
	rootCmd.AddCommand(NewStatsCommand(app))

	return rootCmd
}
