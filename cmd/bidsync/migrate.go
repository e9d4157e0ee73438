package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/database/postgres"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas de mapeamentos e de histórico de execuções",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.Database.URL == "" {
			return config.ErrMissingDatabaseURL
		}

		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		return conn.Migrate(ctx)
	},
}
