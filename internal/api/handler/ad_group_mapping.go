package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/repository"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/apiErrors"
)

type SaveAdGroupMappingRequest struct {
	SourceAdGroupID      int64 `json:"source_ad_group_id"`
	DestinationAdGroupID int64 `json:"destination_ad_group_id"`
}

func databaseDisabled(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Mapeamentos indisponíveis: banco de dados desabilitado", nil)
}

func ListAdGroupMappings(mappings repository.AdGroupMappingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mappings == nil {
			databaseDisabled(w)
			return
		}

		result, err := mappings.ListMappings(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar mapeamentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar mapeamentos", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// SaveAdGroupMapping cria ou substitui o mapeamento de um grupo de destino
func SaveAdGroupMapping(mappings repository.AdGroupMappingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mappings == nil {
			databaseDisabled(w)
			return
		}

		var req SaveAdGroupMappingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.SourceAdGroupID <= 0 || req.DestinationAdGroupID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "source_ad_group_id e destination_ad_group_id são obrigatórios", nil)
			return
		}

		mapping := &domain.AdGroupMapping{
			SourceAdGroupID:      req.SourceAdGroupID,
			DestinationAdGroupID: req.DestinationAdGroupID,
		}
		if err := mappings.SaveOrUpdate(r.Context(), mapping); err != nil {
			logrus.WithError(err).Error("Erro ao salvar mapeamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar mapeamento", nil)
			return
		}

		writeJSON(w, http.StatusOK, mapping)
	}
}

func DeleteAdGroupMapping(mappings repository.AdGroupMappingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mappings == nil {
			databaseDisabled(w)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do mapeamento não fornecido", nil)
			return
		}

		if err := mappings.DeleteMapping(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Mapeamento não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao remover mapeamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover mapeamento", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
