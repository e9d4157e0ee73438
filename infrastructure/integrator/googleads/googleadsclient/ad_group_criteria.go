package googleadsclient

import (
	"context"

	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
)

// MutateAdGroupCriteria aplica operações de atualização em critérios de grupos de anúncios
func (c *GoogleAdsClient) MutateAdGroupCriteria(ctx context.Context, customerID string, req googleadsdomain.MutateAdGroupCriteriaRequest) (*googleadsdomain.MutateAdGroupCriteriaResponse, error) {
	var response googleadsdomain.MutateAdGroupCriteriaResponse
	if err := c.post(ctx, c.endpoint(customerID, "adGroupCriteria:mutate"), req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
