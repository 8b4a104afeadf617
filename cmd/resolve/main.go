// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the resolve CLI. It reads a contract text file,
// runs the reference resolver chain over it, and prints a deterministic
// JSON snapshot of every attribute and span the chain produced.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/maloquacious/semver"
	"github.com/mattn/go-isatty"
	"github.com/phosphorco/layered-nlp/cerrs"
	"github.com/phosphorco/layered-nlp/internal/config"
	"github.com/phosphorco/layered-nlp/internal/document"
	"github.com/phosphorco/layered-nlp/internal/resolvers"
	"github.com/phosphorco/layered-nlp/internal/snapshot"
	"github.com/phosphorco/layered-nlp/internal/stdlib"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}

	logger *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// coloring is gated on stdout actually being a terminal, never forced on
	// for piped or redirected output (spec.md §9's structural-failure
	// diagnostics are meant for a human at a terminal, not a log file).
	colorOut = isatty.IsTerminal(os.Stdout.Fd())
)

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}

	if err := Execute(); err != nil {
		if colorOut {
			fmt.Fprintf(os.Stderr, "\x1b[31merror:\x1b[0m %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func Execute() error {
	var debug, redact bool
	var configPath string

	cmdRoot := &cobra.Command{
		Use:           "resolve <file>",
		Short:         "resolve contract text into attributes and spans",
		Long:          `Run the reference resolver chain over a contract text file and print a JSON snapshot.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelError
			if debug {
				lvl = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl, AddSource: debug})
			logger = slog.New(handler)
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], configPath, redact, debug)
		},
	}
	cmdRoot.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmdRoot.Flags().BoolVar(&redact, "redact", false, "redact non-deterministic fields (LLM pass/verifier ids) from the snapshot")
	cmdRoot.Flags().StringVar(&configPath, "config", "", "path to a JSON policy config file (defaults applied if absent)")

	cmdRoot.AddCommand(cmdVersion)

	return cmdRoot.Execute()
}

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "print the version number of this application",
	Long:  `All software has versions. This is our application's version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", version.String())
	},
}

// runResolve loads cfg (falling back to defaults), reads input, builds a
// Document, runs the reference chain, and prints the snapshot.
func runResolve(inputPath, configPath string, redact, debug bool) error {
	cfg, err := config.Load(configPath, debug)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	// an explicit --redact flag always wins over the config file's setting
	if redact {
		cfg.Snapshot.Redact = true
	}

	if exists, err := stdlib.IsFileExists(inputPath); err != nil {
		return fmt.Errorf("input %q: %w", inputPath, err)
	} else if !exists {
		return fmt.Errorf("input %q: %w", inputPath, cerrs.ErrNotAFile)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("input %q: %w", inputPath, err)
	}
	// an input file containing nothing but whitespace is a CLI-level "did
	// you actually pass a contract" guard, distinct from document.New("")
	// itself, which is a valid, permissive empty document (see DESIGN.md).
	if strings.TrimSpace(string(raw)) == "" {
		return fmt.Errorf("input %q: %w", inputPath, cerrs.ErrEmptyDocument)
	}

	doc, err := document.New(string(raw))
	if err != nil {
		return fmt.Errorf("input %q: %w", inputPath, err)
	}
	logger.Debug("resolve", "input", inputPath, "lines", doc.LineCount())

	if err := resolvers.Run(doc, cfg.Confidence.Floor); err != nil {
		return fmt.Errorf("resolver chain: %w", err)
	}

	reg := resolvers.NewRegistry()
	snap, err := snapshot.Build(doc, reg, cfg.Snapshot.Redact)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
