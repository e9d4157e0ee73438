package googleadsdomain

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorResponse representa o envelope de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorStatus `json:"error"`
}

type ErrorStatus struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Status  string         `json:"status"`
	Details []FailureEntry `json:"details"`
}

// FailureEntry corresponde a um GoogleAdsFailure dentro de error.details
type FailureEntry struct {
	Type      string         `json:"@type"`
	Errors    []FailureError `json:"errors"`
	RequestID string         `json:"requestId"`
}

type FailureError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
	Location  struct {
		FieldPathElements []struct {
			FieldName string `json:"fieldName"`
			Index     *int   `json:"index,omitempty"`
		} `json:"fieldPathElements"`
	} `json:"location"`
}

// ErrorDetail é um erro de campo já normalizado
type ErrorDetail struct {
	ErrorCode string   `json:"error_code"`
	Message   string   `json:"message"`
	FieldPath []string `json:"field_path,omitempty"`
}

// APIError é o erro estruturado devolvido por leituras e escritas
type APIError struct {
	HTTPStatus int           `json:"http_status"`
	Status     string        `json:"status"`
	RequestID  string        `json:"request_id"`
	Message    string        `json:"message"`
	Details    []ErrorDetail `json:"details"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads: request %q failed with status %q: %s", e.RequestID, e.Status, e.Message)
}

// NewAPIError converte o envelope de erro da API em APIError
func NewAPIError(httpStatus int, requestID string, resp *ErrorResponse) *APIError {
	apiErr := &APIError{
		HTTPStatus: httpStatus,
		RequestID:  requestID,
	}
	if resp == nil {
		apiErr.Status = fmt.Sprintf("HTTP_%d", httpStatus)
		return apiErr
	}

	apiErr.Status = resp.Error.Status
	apiErr.Message = resp.Error.Message
	if apiErr.Status == "" {
		apiErr.Status = fmt.Sprintf("HTTP_%d", httpStatus)
	}

	for _, entry := range resp.Error.Details {
		if apiErr.RequestID == "" {
			apiErr.RequestID = entry.RequestID
		}

		for _, failure := range entry.Errors {
			detail := ErrorDetail{
				ErrorCode: formatErrorCode(failure.ErrorCode),
				Message:   failure.Message,
			}
			for _, element := range failure.Location.FieldPathElements {
				detail.FieldPath = append(detail.FieldPath, element.FieldName)
			}
			apiErr.Details = append(apiErr.Details, detail)
		}
	}

	return apiErr
}

// formatErrorCode transforma {"queryError": "UNRECOGNIZED_FIELD"} em "queryError: UNRECOGNIZED_FIELD"
func formatErrorCode(code map[string]string) string {
	parts := make([]string, 0, len(code))
	for kind, value := range code {
		parts = append(parts, kind+": "+value)
	}
	sort.Strings(parts)

	return strings.Join(parts, ", ")
}
