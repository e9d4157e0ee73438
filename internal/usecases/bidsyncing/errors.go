package bidsyncing

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/log"
)

var (
	ErrRepeatedPageToken  = errors.New("page token repeated by the read api")
	ErrInvalidCampaign    = errors.New("invalid campaign resource name")
	ErrMappingUnavailable = errors.New("ad group mappings unavailable")
)

// FetchError anota uma falha de leitura com a conta envolvida
type FetchError struct {
	Alias      string
	CustomerID string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %s", e.Alias, e.CustomerID, e.Err.Error())
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(account domain.AccountSettings, err error) *FetchError {
	return &FetchError{
		Alias:      account.Alias,
		CustomerID: account.CustomerID,
		Err:        err,
	}
}

// LogAPIError registra o request id, o código e cada erro de campo de uma falha da API
func LogAPIError(logger log.Logger, err error, message string) {
	var apiErr *googleadsdomain.APIError
	if !errors.As(err, &apiErr) {
		logger.WithError(err).Error(message)
		return
	}

	logger.WithFields(log.Fields{
		"request_id":  apiErr.RequestID,
		"error_code":  apiErr.Status,
		"http_status": apiErr.HTTPStatus,
	}).WithError(err).Error(message)

	for _, detail := range apiErr.Details {
		logger.WithFields(log.Fields{
			"request_id": apiErr.RequestID,
			"error_code": detail.ErrorCode,
			"field_path": strings.Join(detail.FieldPath, "."),
		}).Error(detail.Message)
	}
}
