// Package cli wires the command line of validate-exercise: flag parsing with
// cobra, logger setup, and the mapping from outcomes to exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/exvalidate"
	"github.com/reoring/exvalidate/internal/ctxlog"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // invalid document or any processing error
	ExitUsage   = 2 // bad command line
)

// ExitError carries a command-line failure and the exit code it maps to.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// NewCommand builds the root command; parsed flags land in cfg.
func NewCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-exercise <exercise_file>",
		Short: "Validate exercise YAML/JSON files",
		Long: "Validate an exercise document (.yml, .yaml or .json) against a JSON Schema.\n" +
			"Exits 0 when the document is valid and 1 when it is invalid or cannot be processed.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ExerciseFile = args[0]
			if err := cfg.validate(); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			ctx := ctxlog.WithLogger(cmd.Context(), logger)
			logger.Debug("Command line parsed.", "exercise", cfg.ExerciseFile, "schema", cfg.Schema, "draft", cfg.Draft)
			return exvalidate.Run(ctx, cmd.OutOrStdout(), cfg.Options())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Schema, "schema", DefaultSchema, "path to JSON schema file")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print detailed validation results")
	f.BoolVar(&cfg.AllErrors, "all-errors", false, "report every violation instead of the primary one")
	f.BoolVar(&cfg.StrictKeys, "strict-keys", false, "reject duplicate keys in the exercise document")
	f.StringVar(&cfg.Draft, "draft", "2020", "JSON Schema draft for schemas without $schema (4, 6, 7, 2019, 2020)")
	f.BoolVar(&cfg.AssertFormat, "assert-format", false, "treat the format keyword as an assertion")
	f.StringVar(&cfg.Lang, "lang", "en", "language of console messages (en, ja)")
	f.StringVar(&cfg.LogLevel, "log-level", "warn", "log level on stderr (debug, info, warn, error)")
	f.StringVar(&cfg.LogFormat, "log-format", "text", "log format on stderr (text, json)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })
	return cmd
}

// Execute parses args, runs one validation and returns the process exit
// code. The report goes to stdout; usage errors and logs go to stderr.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	cmd := NewCommand(&Config{})
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %s\n", exitErr.Message)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitErr.Code
	}
	// Run has already reported the outcome on stdout.
	return ExitFailure
}
