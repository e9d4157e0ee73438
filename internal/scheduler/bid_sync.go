package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/internal/usecases/bidsyncing"
)

// BidSyncConfig representa a configuração do agendador da sincronização de lances
type BidSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BidSyncService agenda e executa a sincronização de lances, uma execução por vez
type BidSyncService struct {
	scheduler           *gocron.Scheduler
	config              BidSyncConfig
	syncer              bidsyncing.BidSyncer
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SyncReport
}

func NewBidSyncService(syncer bidsyncing.BidSyncer, appConfig *config.Config) *BidSyncService {
	syncConfig := BidSyncConfig{
		CronSchedule: appConfig.BidSync.CronSchedule,
		SyncEnabled:  appConfig.BidSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de lances carregada")

	return &BidSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		syncer:    syncer,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *BidSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de lances desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de lances")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncBids(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de lances: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de lances")
		s.scheduler.Stop()
	}()

	return nil
}

// syncBids executa uma sincronização, ignorando o disparo se outra estiver em andamento
func (s *BidSyncService) syncBids(ctx context.Context) {
	if !s.acquire() {
		logrus.Info("Sincronização de lances já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

func (s *BidSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

func (s *BidSyncService) run(ctx context.Context) {
	report, err := s.syncer.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if report != nil {
		s.lastReport = report
	}

	if err != nil {
		logrus.WithError(err).Error("Sincronização de lances abortada")
	}
}

// TriggerManualSync inicia uma sincronização em segundo plano. Retorna false se já houver uma em andamento.
func (s *BidSyncService) TriggerManualSync() bool {
	if !s.acquire() {
		logrus.Info("Sincronização de lances já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de lances")
	go s.run(s.baseCtx)

	return true
}

// LastReport retorna o resumo da última execução concluída, ou nil
func (s *BidSyncService) LastReport() *domain.SyncReport {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.lastReport
}

// GetStatus retorna o status atual do agendador
func (s *BidSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report":            s.lastReport,
	}
}
