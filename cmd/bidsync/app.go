package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/database/postgres"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/repository"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"github.com/vfg2006/keyword-bid-sync/internal/usecases/bidsyncing"
	"github.com/vfg2006/keyword-bid-sync/pkg/log"
)

// app reúne as dependências compartilhadas pelos comandos
type app struct {
	cfg      *config.Config
	conn     postgres.Conn
	mappings repository.AdGroupMappingRepository
	runs     repository.SyncRunRepository
}

// loadConfig carrega a configuração e ajusta o logger global
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.App.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log.Configure(level)

	return cfg, nil
}

// newApp valida a configuração de sincronização e abre o banco quando habilitado
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuração inválida")
	}

	a := &app{cfg: cfg}
	if !cfg.Database.Enabled {
		logrus.Info("Banco de dados desabilitado: mapeamentos apenas da configuração e sem histórico de execuções")
		return a, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	a.conn = conn
	a.mappings = repository.NewAdGroupMappingRepository(conn)
	a.runs = repository.NewSyncRunRepository(conn)

	return a, nil
}

func (a *app) syncService(ctx context.Context) *bidsyncing.Service {
	httpClient := googleadsclient.NewHTTPClient(ctx, a.cfg.GoogleAds)
	integrator := googleads.New(googleadsclient.NewClient(a.cfg.GoogleAds, httpClient))

	var (
		mappings bidsyncing.MappingSource
		runs     bidsyncing.RunRecorder
	)
	if a.mappings != nil {
		mappings = a.mappings
		runs = a.runs
	}

	return bidsyncing.NewService(a.cfg, integrator, integrator, mappings, runs)
}

func (a *app) Close() {
	if a.conn == nil {
		return
	}
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
	}
}
