package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/repository"
	"github.com/vfg2006/keyword-bid-sync/internal/api/handler"
	"github.com/vfg2006/keyword-bid-sync/internal/api/handler/router"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"github.com/vfg2006/keyword-bid-sync/internal/usecases/authenticating"
	"github.com/vfg2006/keyword-bid-sync/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies agrupa o que a API expõe. Mappings, Runs e DB ficam nil quando o banco está desabilitado.
type Dependencies struct {
	Authenticator authenticating.Authenticator
	BidSync       handler.BidSyncScheduler
	Mappings      repository.AdGroupMappingRepository
	Runs          repository.SyncRunRepository
	DB            handler.Pinger
}

func New(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.DB)...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.BidSync(deps.BidSync, deps.Runs)...),
		router.WithRoutes(handler.AdGroupMappings(deps.Mappings)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// Run serve até o contexto ser cancelado e então desliga de forma graciosa
func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
