package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/tprompt/internal/log"
	"github.com/raphi011/tprompt/internal/output"
	"github.com/raphi011/tprompt/internal/ui/prompt"
	"github.com/raphi011/tprompt/internal/ui/styles"
)

var errNoInput = errors.New("nothing to save: pipe data into tprompt save")

// Swappable in tests.
var (
	stdin = io.Reader(os.Stdin)
	now   = time.Now
)

func newSaveCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Save piped input to a named file",
		GroupID: GroupPrompt,
		Args:    cobra.NoArgs,
		Long: `Read stdin and prompt for the name of the file to save it as.

  Save              write the file and print its path
  Save & print dir  write the file and print the directory
  Cancel            discard the input`,
		Example: `  pbpaste | tprompt save
  curl -s https://example.com | tprompt save --dir ~/Downloads`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if f, ok := stdin.(*os.File); ok && isTerminal(f) {
				return errNoInput
			}
			data, err := io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if len(data) == 0 {
				return errNoInput
			}

			if dir == "" {
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}

			var (
				saved   string
				saveErr error
			)
			save := func(text string) {
				saved, saveErr = saveFile(dir, text, data)
			}

			req := prompt.Request{
				Title:          fmt.Sprintf("Save %s as", formatSize(len(data))),
				InitialValue:   defaultFileName(now()),
				PrimaryLabel:   "Save",
				AlternateLabel: "Save & print dir",
				OnPrimary: func(text string) {
					save(text)
					if saveErr == nil {
						out.Println(saved)
					}
				},
				OnAlternate: func(text string) {
					save(text)
					if saveErr == nil {
						out.Println(filepath.Dir(saved))
					}
				},
				OnClosed: func() {
					switch {
					case saveErr != nil:
						l.Println(styles.ErrorStyle.Render(fmt.Sprintf("Not saved: %v", saveErr)))
					case saved != "":
						l.Println(styles.SuccessStyle.Render("Saved " + formatSize(len(data))))
						l.Debug("saved file", "path", saved, "bytes", len(data))
					default:
						l.Println(styles.MutedStyle.Render("Discarded " + formatSize(len(data))))
					}
				},
			}

			outcome, err := showPrompt(ctx, req)
			if err != nil {
				return err
			}
			if saveErr != nil {
				// Already reported by OnClosed.
				return fmt.Errorf("%w: %w", errReported, saveErr)
			}
			if outcome.Action == prompt.ActionAlternate {
				// Both buttons save; only cancel is a failure.
				return nil
			}
			return outcomeErr(outcome)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to save into (default: current directory)")

	return cmd
}

// defaultFileName is the suggested name for received data.
func defaultFileName(t time.Time) string {
	return "received-" + t.Format("20060102-150405") + ".txt"
}

// saveFile writes data to dir/name without overwriting an existing file.
func saveFile(dir, name string, data []byte) (string, error) {
	name = strings.TrimSpace(name)
	if err := validateFileName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("save: %s already exists", path)
		}
		return "", fmt.Errorf("save: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("save: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	return path, nil
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d bytes", n)
}
