package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/repository"
	"github.com/vfg2006/keyword-bid-sync/pkg/apiErrors"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// BidSyncScheduler é o agendador exposto para disparo manual e consulta de status
type BidSyncScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunBidSync dispara uma sincronização em segundo plano
func RunBidSync(scheduler BidSyncScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunBidSync")

		if !scheduler.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização de lances já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização de lances iniciada com sucesso",
		})
	}
}

// GetBidSyncStatus retorna o status do agendador e o resumo da última execução
func GetBidSyncStatus(scheduler BidSyncScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, scheduler.GetStatus())
	}
}

// ListBidSyncRuns lista o histórico de execuções gravado no banco
func ListBidSyncRuns(runs repository.SyncRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if runs == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Histórico indisponível: banco de dados desabilitado", nil)
			return
		}

		limit := uint64(defaultRunsLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 || parsed > maxRunsLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e 100", nil)
				return
			}
			limit = parsed
		}

		reports, err := runs.ListRuns(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}
