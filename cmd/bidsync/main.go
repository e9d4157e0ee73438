package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "bidsync",
	Short: "Replica lances de palavras-chave entre duas contas do Google Ads",
	Long: `bidsync lê os lances de CPC das palavras-chave de uma conta de origem,
encontra as palavras-chave espelhadas na conta de destino e grava nelas
o lance da origem com o desconto configurado.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nível de log (sobrescreve LOG_LEVEL)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("bidsync finalizado com erro")
		os.Exit(1)
	}
}
