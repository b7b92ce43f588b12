package main

import (
	"github.com/sandevgo/modelbench/internal/config"
	"github.com/sandevgo/modelbench/internal/service/installer"
	"github.com/sandevgo/modelbench/pkg/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Write GitHub Models credentials to the runtime .env",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		envPath := config.GetEnvPath()

		if _, err := installer.RunWizard(envPath); err != nil {
			return err
		}

		logger.Info().Str("path", envPath).Msg("configuration written")
		logger.Info().Msg("Setup complete! You can now run 'modelbench serve'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
