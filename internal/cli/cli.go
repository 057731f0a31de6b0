package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/graphprune/internal/app"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying failure, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// options are the flag values shared by every subcommand.
type options struct {
	logFormat    string
	logLevel     string
	output       string
	outputFormat string
	stopAtFeeds  bool
}

// NewRootCommand builds the graphprune command tree. Results go to outW;
// logs and cobra's own messages go to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "graphprune",
		Short: "Validate feed/fetch specifications and prune graphs to what the fetches need.",
		Long: `graphprune reads feed, fetch and node definitions from .hcl, .yaml or .yml
documents (files or directories), checks the feed/fetch specification and
emits the minimal sub-graph required to compute the fetches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.check()
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	validateCmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "Check the feed/fetch specification in the given documents.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(outW, errW, args)
			if err != nil {
				return err
			}
			return failure(a.Validate(cmd.Context()))
		},
	}

	pruneCmd := &cobra.Command{
		Use:   "prune PATH...",
		Short: "Emit the sub-graph needed to compute the fetches.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(outW, errW, args)
			if err != nil {
				return err
			}
			return failure(a.Prune(cmd.Context()))
		},
	}
	pruneCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the pruned graph to this file instead of stdout.")
	pruneCmd.Flags().StringVarP(&opts.outputFormat, "format", "f", "", "Output format: 'hcl' or 'yaml'. Defaults from --output extension, else hcl.")
	pruneCmd.Flags().BoolVar(&opts.stopAtFeeds, "stop-at-feeds", false, "Do not follow data edges whose tensor is fed.")

	root.AddCommand(validateCmd, pruneCmd)
	return root
}

// Execute runs the command tree with args. Usage problems come back as an
// ExitError with ExitUsage, run failures with ExitFailure.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before RunE (unknown flags, arg counts) is a usage error.
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

func (o *options) check() error {
	o.logFormat = strings.ToLower(o.logFormat)
	if o.logFormat != "text" && o.logFormat != "json" {
		return &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	o.logLevel = strings.ToLower(o.logLevel)
	switch o.logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")
	return nil
}

func (o *options) newApp(outW, errW io.Writer, paths []string) (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{
		Paths:        paths,
		OutputPath:   o.output,
		OutputFormat: o.outputFormat,
		StopAtFeeds:  o.stopAtFeeds,
		LogFormat:    o.logFormat,
		LogLevel:     o.logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)

	a, err := app.New(outW, errW, cfg)
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	return a, nil
}

func failure(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("error: %v", err), Err: err}
}
