package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/kvstore"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/shared/logger"
)

var steps int

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Storage schema migrations",
		Long: `Manage the kv_entries schema used by the sqlite and mysql storage drivers.
Other drivers have no schema and are rejected.`,
	}

	cmd.AddCommand(
		newUpCommand(flags),
		newDownCommand(flags),
		newStatusCommand(flags),
	)

	return cmd
}

func newUpCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(flags, func(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
				log.Infow("running up migrations")
				if err := strategy.Migrate(db); err != nil {
					log.Errorw("migration failed", "error", err)
					return fmt.Errorf("migration failed: %w", err)
				}
				log.Infow("migrations completed successfully")
				return nil
			})
		},
	}
}

func newDownCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(flags, func(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
				log.Infow("running down migrations", "steps", steps)
				if err := strategy.MigrateDown(db, steps); err != nil {
					log.Errorw("down migration failed", "error", err)
					return fmt.Errorf("down migration failed: %w", err)
				}
				log.Infow("down migration completed successfully")
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(flags, func(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
				version, err := strategy.GetVersion(db)
				if err != nil {
					log.Errorw("failed to get migration version", "error", err)
					return fmt.Errorf("failed to get migration version: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "\nMigration Status:\n")
				fmt.Fprintf(out, "  Strategy:        %s\n", strategy.GetName())
				fmt.Fprintf(out, "  Current Version: %d\n", version)

				if err := strategy.Status(db); err != nil {
					log.Errorw("failed to get detailed status", "error", err)
					return fmt.Errorf("failed to get detailed status: %w", err)
				}
				return nil
			})
		},
	}
}

func withDatabase(flags *bootstrap.Flags, fn func(*gorm.DB, *migration.GooseStrategy, logger.Interface) error) error {
	cfg, log, err := bootstrap.InitEnv(flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	driver := cfg.Storage.Driver
	if driver != kvstore.DriverSQLite && driver != kvstore.DriverMySQL {
		return fmt.Errorf("storage driver %q has no schema to migrate", driver)
	}
	log = log.With("driver", driver, "environment", cfg.Env)

	db, err := database.Open(driver, &cfg.Storage.Database, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	strategy, err := migration.NewGooseStrategy(driver)
	if err != nil {
		return err
	}

	return fn(db, strategy, log)
}
