package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/borud/broker"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	webidl "github.com/perbu/webidlparse"
	"github.com/perbu/webidlparse/internal/config"
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/events"
	"github.com/perbu/webidlparse/pkg/formatter"
	"github.com/perbu/webidlparse/pkg/parser"
)

const publishTimeout = 1 * time.Second

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse one or more Web IDL source files and print their AST",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEffectiveConfig(cmd)
			if err != nil {
				return err
			}

			opts := parseOptions(cfg)
			logger := slog.Default()
			useColor := formatter.ShouldUseColor()

			if len(args) == 1 {
				source, defs, perr := parseFile(args[0], opts)
				if perr != nil {
					return reportFailure(cmd, args[0], source, perr, useColor)
				}
				return writeOutput(cmd, cfg.OutputFormat, args[0], source, defs, useColor)
			}

			return runBatch(cmd, args, opts, cfg.OutputFormat, useColor, logger)
		},
	}
}

func parseOptions(cfg *config.Config) []webidl.Option {
	var opts []webidl.Option
	if cfg.Trivia {
		opts = append(opts, webidl.WithTrivia())
	}
	if cfg.AllowNestedTypedefs {
		opts = append(opts, webidl.WithNestedTypedefs())
	}
	return opts
}

// parseFile reads and parses a single source file, returning the raw
// source alongside whatever webidl.Parse produced so callers can report
// a failure against the original text.
func parseFile(path string, opts []webidl.Option) (string, []ast.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}
	source := string(raw)
	defs, err := webidl.Parse(source, opts...)
	return source, defs, err
}

func reportFailure(cmd *cobra.Command, path, source string, err error, useColor bool) error {
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatParseFailure(path, source, perr, useColor))
	}
	return err
}

func writeOutput(cmd *cobra.Command, format string, path, source string, defs []ast.Definition, useColor bool) error {
	switch format {
	case "text":
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", path)
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSourceWithDefinitions(source, defs, useColor))
		return nil
	default:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}
}

// runBatch parses multiple files, publishing progress events to a
// "/parse" broker topic tagged with a shared run ID and logging them
// through a subscriber, so callers interested in progress can watch the
// same stream the CLI itself logs from.
func runBatch(cmd *cobra.Command, paths []string, opts []webidl.Option, format string, useColor bool, logger *slog.Logger) error {
	b := broker.New(broker.Config{})
	runID := uuid.NewString()

	sub, err := b.Subscribe("/parse")
	if err != nil {
		return fmt.Errorf("subscribing to /parse: %w", err)
	}
	go func() {
		for msg := range sub.Messages() {
			switch evt := msg.Payload.(type) {
			case events.EventFileStarted:
				logger.Info("parsing", "run", evt.RunID, "path", evt.Path)
			case events.EventFileParsed:
				logger.Info("parsed", "run", evt.RunID, "path", evt.Path, "definitions", evt.DefinitionCount)
			case events.EventFileFailed:
				logger.Error("parse failed", "run", evt.RunID, "path", evt.Path, "error", evt.Error)
			case events.EventBatchDone:
				logger.Info("batch done", "run", evt.RunID, "files", evt.FileCount, "failed", evt.FailCount)
			}
		}
	}()

	var failCount int
	for _, path := range paths {
		_ = b.Publish("/parse", events.EventFileStarted{RunID: runID, Path: path}, publishTimeout)

		source, defs, err := parseFile(path, opts)
		if err != nil {
			failCount++
			_ = b.Publish("/parse", events.EventFileFailed{RunID: runID, Path: path, Error: err}, publishTimeout)
			_ = reportFailure(cmd, path, source, err, useColor)
			continue
		}

		_ = b.Publish("/parse", events.EventFileParsed{RunID: runID, Path: path, DefinitionCount: len(defs)}, publishTimeout)
		if err := writeOutput(cmd, format, path, source, defs, useColor); err != nil {
			return err
		}
	}
	_ = b.Publish("/parse", events.EventBatchDone{RunID: runID, FileCount: len(paths), FailCount: failCount}, publishTimeout)

	// Give the logging subscriber a moment to drain the final event
	// before the process returns; the broker has no synchronous flush.
	time.Sleep(50 * time.Millisecond)

	if failCount > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failCount, len(paths))
	}
	return nil
}
