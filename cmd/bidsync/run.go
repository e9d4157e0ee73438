package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa uma sincronização de lances e encerra",
	Long: `Executa uma única sincronização. Sai com código 1 se a leitura de
alguma das contas falhar; falhas de escrita são apenas registradas.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.syncService(ctx).Run(ctx)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"run_id":       report.ID,
			"updated_bids": report.UpdatedBids,
			"failed_bids":  report.FailedBids,
			"skipped_bids": report.SkippedBids,
		}).Info("Execução finalizada")

		return nil
	},
}
