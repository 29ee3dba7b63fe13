package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/tprompt/internal/log"
	"github.com/raphi011/tprompt/internal/output"
	"github.com/raphi011/tprompt/internal/ui/prompt"
	"github.com/raphi011/tprompt/internal/ui/styles"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rename <path>",
		Short:   "Rename a file in place",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: `Prompt for a new name for a file, pre-filled with its current name.

The file stays in its directory. The new path is printed on success.`,
		Example: `  tprompt rename notes.txt
  tprompt rename ~/Downloads/report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("rename: %w", err)
			}
			dir, base := filepath.Split(filepath.Clean(path))

			var (
				newPath   string
				renameErr error
			)
			req := prompt.Request{
				Title:        "Rename",
				InitialValue: base,
				PrimaryLabel: "Rename",
				OnPrimary: func(text string) {
					newPath, renameErr = renameFile(dir, base, text)
					if renameErr == nil {
						out.Println(newPath)
					}
				},
				OnClosed: func() {
					if renameErr == nil && newPath != "" && newPath != filepath.Join(dir, base) {
						l.Printf("Renamed %s to %s\n", base, styles.AccentStyle.Render(filepath.Base(newPath)))
					}
				},
			}

			outcome, err := showPrompt(ctx, req)
			if err != nil {
				return err
			}
			if renameErr != nil {
				return renameErr
			}
			return outcomeErr(outcome)
		},
	}

	return cmd
}

// renameFile renames dir/oldName to dir/newName and returns the new path.
// An unchanged name is a no-op. The target must not exist.
func renameFile(dir, oldName, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if err := validateFileName(newName); err != nil {
		return "", err
	}

	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)
	if newName == oldName {
		return oldPath, nil
	}

	if _, err := os.Lstat(newPath); err == nil {
		return "", fmt.Errorf("rename: %s already exists", newPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("rename: %w", err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return newPath, nil
}

var errInvalidName = errors.New("invalid file name")

// validateFileName rejects names that would leave the directory.
func validateFileName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", errInvalidName, name)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", errInvalidName, name)
	}
	return nil
}
