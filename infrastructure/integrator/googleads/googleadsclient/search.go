package googleadsclient

import (
	"context"
	"strconv"
	"strings"

	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
)

// a partir da v17 o Search pagina em blocos fixos de 10.000 linhas e rejeita pageSize
const lastVersionWithPageSize = 16

// Search executa uma consulta GAQL e retorna uma única página
func (c *GoogleAdsClient) Search(ctx context.Context, customerID string, req googleadsdomain.SearchRequest) (*googleadsdomain.SearchResponse, error) {
	if !acceptsPageSize(c.cfg.APIVersion) {
		req.PageSize = 0
	}

	var response googleadsdomain.SearchResponse
	if err := c.post(ctx, c.endpoint(customerID, "googleAds:search"), req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// acceptsPageSize indica se a versão ainda aceita pageSize. Versões não reconhecidas não enviam o campo.
func acceptsPageSize(version string) bool {
	number, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v"))
	if err != nil {
		return false
	}

	return number <= lastVersionWithPageSize
}
