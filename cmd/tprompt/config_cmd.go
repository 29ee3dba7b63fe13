package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/tprompt/internal/config"
	"github.com/raphi011/tprompt/internal/output"
)

func newConfigCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show effective configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Show the effective configuration.

Config file: ~/.config/tprompt/config.toml (override with TPROMPT_CONFIG)`,
		Example: `  tprompt config          # Print effective config as TOML
  tprompt config --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if cfg == nil {
				def := config.Default()
				cfg = &def
			}

			if jsonOutput {
				return out.JSON(cfg)
			}

			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			encoded, err := cfg.Encode()
			if err != nil {
				return err
			}

			out.Printf("# %s\n", path)
			out.Printf("# history: %s\n\n", cfg.GetHistoryPath())
			fmt.Fprint(out.Writer(), encoded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
