package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/fakecmd/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/fakecmd/internal/adapters/engine"
	"github.com/AntonioJCosta/fakecmd/internal/adapters/formatting"
	"github.com/AntonioJCosta/fakecmd/internal/adapters/roster"
	"github.com/AntonioJCosta/fakecmd/internal/config"
	"github.com/AntonioJCosta/fakecmd/internal/core/ports"
	"github.com/AntonioJCosta/fakecmd/internal/core/services/clientcommands"
	"github.com/AntonioJCosta/fakecmd/internal/core/services/fakecommand"
	"github.com/AntonioJCosta/fakecmd/internal/core/services/scriptexec"
	"github.com/AntonioJCosta/fakecmd/internal/handlers/cli"
	"github.com/AntonioJCosta/fakecmd/internal/handlers/ui"
	"github.com/AntonioJCosta/fakecmd/internal/logging"
	"github.com/AntonioJCosta/fakecmd/internal/repositories/journal"
	"github.com/AntonioJCosta/fakecmd/internal/repositories/scripts"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, setup)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func setup(configPath string, verbose bool) (*cli.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(os.Stderr, level, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	tokenizer := commandparsing.NewTokenizer()
	splitter := commandparsing.NewSplitter()

	registry := clientcommands.NewRegistry()
	clientcommands.RegisterBuiltins(registry)
	simulatedEngine := engine.NewSimulatedEngine(registry, os.Stdout, logger)

	var dispatchJournal ports.DispatchJournal
	if cfg.JournalEnabled {
		dispatchJournal, err = journal.NewFileJournal(cfg.JournalFile, tokenizer)
		if err != nil {
			// The bridge runs without a journal.
			fmt.Fprintf(os.Stderr, "Warning: Could not initialize dispatch journal %v. Continuing without it.\n", err)
			dispatchJournal = nil
		}
	}

	bridge := fakecommand.NewService(tokenizer, splitter, formatting.NewFormatter(), simulatedEngine, fakecommand.Options{
		StripSayPrefix: cfg.StripSayPrefix,
		Journal:        dispatchJournal,
		Logger:         logger,
	})

	actors, err := roster.NewYAMLProvider(cfg.ActorsFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing actor roster: %w", err)
	}
	store, err := scripts.NewFileScriptStore(cfg.ScriptsDir)
	if err != nil {
		return nil, fmt.Errorf("error initializing script store: %w", err)
	}

	logger.Debug("fakecmd initialized",
		"actors_file", cfg.ActorsFile,
		"scripts_dir", cfg.ScriptsDir,
		"journal", cfg.JournalEnabled)

	return &cli.App{
		Bridge:    bridge,
		Runner:    scriptexec.NewService(actors, store, bridge, splitter, scriptexec.WithInterval(cfg.Interval)),
		Actors:    actors,
		Journal:   dispatchJournal,
		Tokenizer: tokenizer,
		Splitter:  splitter,
	}, nil
}
