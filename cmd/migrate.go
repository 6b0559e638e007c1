package main

import (
	"fmt"
	"linkaudit/internal/config"
	"linkaudit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the audits
// table and the River job tables to their latest versions. Running it on an
// up to date database is a no-op.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := strg.Migrate(ctx)
			if err != nil {
				return fmt.Errorf("could not migrate database: %w", err)
			}

			if len(report.Audits) == 0 && len(report.River) == 0 {
				logger.Info(ctx, "database already up to date")

				return nil
			}
			logger.Info(ctx, "database migrated",
				zap.Int64s("auditVersions", report.Audits),
				zap.Ints("riverVersions", report.River))

			return nil
		},
	}
}
