package main

import (
	"encoding/json"
	"fmt"

	"github.com/sandevgo/modelbench/internal/service/catalog"
	"github.com/spf13/cobra"
)

var modelsJSON bool

var modelsCmd = &cobra.Command{
	Use:          "models",
	Short:        "List the models available upstream",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		d := newDeps(ctx)
		models, err := d.client.FetchCatalog(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if modelsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(models)
		}
		_, err = fmt.Fprint(out, catalog.NewFormatter().Markdown(models))
		return err
	},
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "print the raw catalog as JSON")
	rootCmd.AddCommand(modelsCmd)
}
