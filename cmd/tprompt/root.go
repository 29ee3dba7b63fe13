package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/tprompt/internal/config"
	"github.com/raphi011/tprompt/internal/log"
	"github.com/raphi011/tprompt/internal/output"
	"github.com/raphi011/tprompt/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupPrompt = "prompt"
	GroupConfig = "config"
)

// Exit codes
const (
	exitCancelled = 1
	exitAlternate = 2
)

var (
	// errCancelled is returned when the prompt was cancelled or dismissed.
	errCancelled = errors.New("cancelled")
	// errAlternate is returned when the alternate button closed the prompt.
	errAlternate = errors.New("alternate action")
	// errReported wraps failures the command already told the user about.
	errReported = errors.New("reported")
)

// newRootCmd builds the command tree. cfg is attached to the context
// of every command.
func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tprompt",
		Short: "Modal text prompts for the terminal",
		Long: `tprompt shows a centered single-line text prompt with up to three
buttons and reports which one closed it.

The prompt renders on stderr, so the entered value can be captured
from stdout:

  name=$(tprompt ask --title "Session name")`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			// Logger depends on parsed flags
			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
			ctx = config.WithConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report how each prompt was closed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Prompt commands
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newSaveCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command and exits with the outcome's code.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	styles.Init(loadedCfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd(&loadedCfg)
	err = rootCmd.ExecuteContext(ctx)
	cancel()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit code.
// Outcome sentinels exit silently; other errors are printed.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errAlternate):
		return exitAlternate
	case errors.Is(err, errCancelled), errors.Is(err, errReported):
		return exitCancelled
	}
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'tprompt -h' for help")
	return 1
}
