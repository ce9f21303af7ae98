package main

import (
	"github.com/spf13/cobra"

	"github.com/simaogato/walletledger-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/walletledger-backend/internal/config"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/seeder"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL migrations",
	Long:  "Apply pending PostgreSQL migrations using DB_CONN_STR or the DB_* variables.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := postgres.RunMigrations(cfg.DBConnStr); err != nil {
			return err
		}
		newLogger(cmd.ErrOrStderr()).WithComponent(logger.ComponentStorage).Info("database migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the credit card operator catalogue in PostgreSQL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		db, err := postgres.NewDB(cfg.DBConnStr)
		if err != nil {
			return err
		}
		defer db.Close()

		return seeder.NewOperatorSeeder(db, newLogger(cmd.ErrOrStderr())).Seed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
