package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/keyword-bid-sync/internal/api"
	"github.com/vfg2006/keyword-bid-sync/internal/scheduler"
	"github.com/vfg2006/keyword-bid-sync/internal/usecases/authenticating"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o agendador e a API de operação",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		bidSyncService := scheduler.NewBidSyncService(a.syncService(ctx), a.cfg)
		if err := bidSyncService.Start(ctx); err != nil {
			return errors.Wrap(err, "erro ao iniciar o agendador de sincronização de lances")
		}
		logrus.Info("Agendador de sincronização de lances iniciado com sucesso")

		deps := api.Dependencies{
			Authenticator: authenticating.NewService(a.cfg),
			BidSync:       bidSyncService,
			Mappings:      a.mappings,
			Runs:          a.runs,
		}
		if a.conn != nil {
			deps.DB = a.conn
		}

		return api.New(a.cfg, deps).Run(ctx)
	},
}
