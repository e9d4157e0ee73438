package googleadsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestIDHeader = "request-id"

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	Search(ctx context.Context, customerID string, req googleadsdomain.SearchRequest) (*googleadsdomain.SearchResponse, error)
	MutateAdGroupCriteria(ctx context.Context, customerID string, req googleadsdomain.MutateAdGroupCriteriaRequest) (*googleadsdomain.MutateAdGroupCriteriaResponse, error)
}

type GoogleAdsClient struct {
	cfg        config.GoogleAds
	httpClient *http.Client
}

// NewClient cria o cliente REST. O httpClient deve injetar o token OAuth (ver NewHTTPClient).
func NewClient(cfg config.GoogleAds, httpClient *http.Client) Client {
	return &GoogleAdsClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (c *GoogleAdsClient) endpoint(customerID, method string) string {
	return fmt.Sprintf(
		"%s/%s/customers/%s/%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		c.cfg.APIVersion,
		domain.NormalizeCustomerID(customerID),
		method,
	)
}

// post envia o corpo em JSON e decodifica a resposta em out
func (c *GoogleAdsClient) post(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if loginCustomerID := domain.NormalizeCustomerID(c.cfg.LoginCustomerID); loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	requestID := resp.Header.Get(requestIDHeader)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp googleadsdomain.ErrorResponse
		if err := json.Unmarshal(data, &errResp); err != nil {
			logrus.WithFields(logrus.Fields{
				"status_code": resp.StatusCode,
				"request_id":  requestID,
			}).Debug("Resposta de erro do Google Ads sem corpo JSON")
			return googleadsdomain.NewAPIError(resp.StatusCode, requestID, nil)
		}
		return googleadsdomain.NewAPIError(resp.StatusCode, requestID, &errResp)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta (request-id %s)", requestID)
	}

	return nil
}
