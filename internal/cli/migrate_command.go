package cli

import (
	"fmt"

	"bookmarkhub/internal/logging"
	"bookmarkhub/internal/repository"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(globalOptions *GlobalOptions) *cobra.Command {

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
	}

	var upCmd = &cobra.Command{
		Use:   "up",
		Short: "Migrate the database to the most recent version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration("up", globalOptions)
		},
	}

	var downCmd = &cobra.Command{
		Use:   "down",
		Short: "Roll back the database by one version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration("down", globalOptions)
		},
	}

	var statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Dump the migration status for the current DB",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration("status", globalOptions)
		},
	}

	// Add subcommands
	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)
	migrateCmd.AddCommand(statusCmd)

	return migrateCmd
}

func runMigration(command string, globalOptions *GlobalOptions) error {
	cfg, err := loadConfig(globalOptions, nil)
	if err != nil {
		return err
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	logging.Log.Infof("Running migration command: %s", command)

	if err := repo.Migrate(command); err != nil {
		return err
	}

	logging.Log.Info("Migration operation completed successfully.")
	return nil
}
