package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/tprompt/internal/config"
	"github.com/raphi011/tprompt/internal/history"
	"github.com/raphi011/tprompt/internal/log"
	"github.com/raphi011/tprompt/internal/output"
	"github.com/raphi011/tprompt/internal/ui/prompt"
)

// Swappable in tests.
var copyToClipboard = clipboard.WriteAll

type askResult struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

func newAskCmd() *cobra.Command {
	var (
		title      string
		initial    string
		primary    string
		alternate  string
		cancel     string
		historyKey string
		copyText   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "ask",
		Short:   "Prompt for a single line of text",
		GroupID: GroupPrompt,
		Args:    cobra.NoArgs,
		Long: `Prompt for a single line of text and print it to stdout.

Exit status tells which button closed the prompt:
  0  primary button (or enter in the text field)
  2  alternate button
  1  cancel button, esc, or an error

With --history KEY the last value entered for KEY pre-fills the field
(unless --initial is given) and earlier values are offered as
suggestions (ctrl+n accepts the best match).`,
		Example: `  tprompt ask --title "Session name"
  tprompt ask --title "Branch" --history branch
  tprompt ask --title "Token" --alternate "Copy" --copy
  tprompt ask --title "Name" --initial draft --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			var hist *history.History
			if historyKey != "" && cfg != nil && cfg.History.Enabled {
				var err error
				hist, err = history.Load(cfg.GetHistoryPath())
				if err != nil {
					l.Printf("Warning: failed to load history: %v\n", err)
				}
			}

			if initial == "" && hist != nil {
				initial = hist.Last(historyKey)
			}
			if copyText && alternate == "" {
				alternate = "Copy"
			}

			var handlerErr error
			emit := func(action prompt.Action, text string) {
				if jsonOutput {
					handlerErr = out.JSON(askResult{Action: action.String(), Text: text})
					return
				}
				out.Value(text, true)
			}

			req := prompt.Request{
				Title:        title,
				InitialValue: initial,
				PrimaryLabel: primary,
				CancelLabel:  cancel,
				OnPrimary: func(text string) {
					emit(prompt.ActionPrimary, text)
				},
				OnCancel: func(text string) {
					if jsonOutput {
						emit(prompt.ActionCancel, text)
					}
				},
			}
			if alternate != "" {
				req.AlternateLabel = alternate
				req.OnAlternate = func(text string) {
					if copyText {
						if err := copyToClipboard(text); err != nil {
							handlerErr = fmt.Errorf("copy to clipboard: %w", err)
							return
						}
						l.Debug("copied to clipboard", "chars", len([]rune(text)))
						if jsonOutput {
							emit(prompt.ActionAlternate, text)
						}
						return
					}
					emit(prompt.ActionAlternate, text)
				}
			}

			var opts []prompt.Option
			if hist != nil {
				opts = append(opts, prompt.WithSuggestions(hist.Values(historyKey)))
			}

			if err := req.Validate(); err != nil {
				return err
			}

			outcome, err := showPrompt(ctx, req, opts...)
			if err != nil {
				return err
			}
			if handlerErr != nil {
				return handlerErr
			}
			if hist != nil && (outcome.Action == prompt.ActionPrimary || outcome.Action == prompt.ActionAlternate) {
				recordHistory(l, cfg, hist, historyKey, outcome.Text)
			}
			return outcomeErr(outcome)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Prompt title (required)")
	cmd.Flags().StringVarP(&initial, "initial", "i", "", "Initial value, caret placed at its end")
	cmd.Flags().StringVarP(&primary, "primary", "p", "OK", "Primary button label")
	cmd.Flags().StringVarP(&alternate, "alternate", "a", "", "Alternate button label (button hidden when empty)")
	cmd.Flags().StringVarP(&cancel, "cancel", "c", "", "Cancel button label (defaults to labels.cancel)")
	cmd.Flags().StringVar(&historyKey, "history", "", "Remember values under this key")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Alternate button copies the value to the clipboard instead of printing it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print {action, text} as JSON")
	cmd.MarkFlagRequired("title")

	return cmd
}

func recordHistory(l *log.Logger, cfg *config.Config, hist *history.History, key, value string) {
	hist.Record(key, value, cfg.History.MaxEntries)
	if err := hist.Save(); err != nil {
		l.Printf("Warning: failed to save history: %v\n", err)
	}
}
