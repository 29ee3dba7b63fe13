package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/tprompt/internal/config"
	"github.com/raphi011/tprompt/internal/log"
	"github.com/raphi011/tprompt/internal/ui/prompt"
)

var errNoTerminal = errors.New("tprompt needs a terminal on stderr to show a prompt")

// Swappable in tests.
var (
	runPrompt  = prompt.Run
	isTerminal = func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
)

// requireTerminal fails unless stderr, where the prompt renders, is a terminal.
func requireTerminal() error {
	if !isTerminal(os.Stderr) {
		return errNoTerminal
	}
	return nil
}

// promptOptions returns modal options derived from the config.
func promptOptions(cfg *config.Config) []prompt.Option {
	if cfg == nil {
		return nil
	}
	return []prompt.Option{
		prompt.WithWidth(cfg.Width),
		prompt.WithCharLimit(cfg.CharLimit),
		prompt.WithDefaultCancelLabel(cfg.Labels.Cancel),
	}
}

// showPrompt runs req and logs how it closed when verbose.
func showPrompt(ctx context.Context, req prompt.Request, opts ...prompt.Option) (prompt.Outcome, error) {
	if err := requireTerminal(); err != nil {
		return prompt.Outcome{}, err
	}

	cfg := config.FromContext(ctx)
	opts = append(promptOptions(cfg), opts...)

	done := log.FromContext(ctx).Prompt(req.Title)
	start := time.Now()
	outcome, err := runPrompt(ctx, req, opts...)
	done(outcome.Action.String()+" via "+outcome.Trigger.String(), time.Since(start))
	return outcome, err
}

// outcomeErr maps a closed prompt to the command's result.
func outcomeErr(o prompt.Outcome) error {
	switch o.Action {
	case prompt.ActionPrimary:
		return nil
	case prompt.ActionAlternate:
		return errAlternate
	default:
		return errCancelled
	}
}
