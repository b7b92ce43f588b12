package main

import (
	"encoding/json"
	"errors"

	"github.com/sandevgo/modelbench/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var (
	comparePrompt string
	compareModels []string
)

var compareCmd = &cobra.Command{
	Use:          "compare",
	Short:        "Send one prompt to several models and print their answers",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if comparePrompt == "" {
			return errors.New("--prompt is required")
		}

		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		d := newDeps(ctx)
		outcome, err := d.engine.Compare(ctx, comparePrompt, compareModels)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	},
}

func init() {
	compareCmd.Flags().StringVarP(&comparePrompt, "prompt", "p", "", "prompt sent to every model")
	compareCmd.Flags().StringSliceVarP(&compareModels, "models", "m", mcp.DefaultCompareModels, "comma-separated model ids")
	rootCmd.AddCommand(compareCmd)
}
