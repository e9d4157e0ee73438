package googleads

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

type GoogleAdsIntegrator struct {
	Client googleadsclient.Client
}

func New(client googleadsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		Client: client,
	}
}

// SearchKeywordCriteria lê uma página de critérios de palavra-chave da conta
func (s *GoogleAdsIntegrator) SearchKeywordCriteria(ctx context.Context, query domain.KeywordQuery, pageToken string) (*domain.KeywordCriterionPage, error) {
	resp, err := s.Client.Search(ctx, query.CustomerID, googleadsdomain.SearchRequest{
		Query:     BuildKeywordCriteriaQuery(query.LabelResource),
		PageSize:  query.PageSize,
		PageToken: pageToken,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": query.CustomerID,
			"label":       query.LabelResource,
			"page_token":  pageToken,
		}).WithError(err).Debug("googleads: search failed")
		return nil, err
	}

	page := &domain.KeywordCriterionPage{
		Rows:          make([]domain.KeywordCriterionRow, 0, len(resp.Results)),
		NextPageToken: resp.NextPageToken,
	}
	for _, row := range resp.Results {
		page.Rows = append(page.Rows, FactoryKeywordCriterionRow(row))
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":    query.CustomerID,
		"rows":           len(page.Rows),
		"has_next_page":  page.NextPageToken != "",
		"page_size":      query.PageSize,
		"label_resource": query.LabelResource,
	}).Debug("googleads: search page retrieved")

	return page, nil
}

// UpdateKeywordBid substitui o lance de CPC de um critério (operação SET, sem controle de concorrência)
func (s *GoogleAdsIntegrator) UpdateKeywordBid(ctx context.Context, update domain.BidUpdate) error {
	customerID := domain.NormalizeCustomerID(update.CustomerID)
	resourceName := googleadsdomain.AdGroupCriterionResourceName(customerID, update.AdGroupID, update.CriterionID)

	resp, err := s.Client.MutateAdGroupCriteria(ctx, customerID, googleadsdomain.MutateAdGroupCriteriaRequest{
		Operations: []googleadsdomain.AdGroupCriterionOperation{
			{
				UpdateMask: googleadsdomain.CpcBidUpdateMask,
				Update: googleadsdomain.AdGroupCriterionUpdate{
					ResourceName: resourceName,
					CpcBidMicros: update.CPCBidMicros,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	if len(resp.Results) == 0 {
		return errors.Errorf("googleads: mutate returned no results for %s", resourceName)
	}

	return nil
}

// FactoryKeywordCriterionRow converte a linha REST para a linha de domínio
func FactoryKeywordCriterionRow(row googleadsdomain.GoogleAdsRow) domain.KeywordCriterionRow {
	return domain.KeywordCriterionRow{
		AdGroupID:        row.AdGroup.ID,
		AdGroupName:      row.AdGroup.Name,
		AdGroupStatus:    row.AdGroup.Status,
		CampaignResource: row.AdGroup.Campaign,
		CriterionType:    row.AdGroupCriterion.Type,
		CriterionID:      row.AdGroupCriterion.CriterionID,
		KeywordText:      row.AdGroupCriterion.Keyword.Text,
		MatchTypeCode:    row.AdGroupCriterion.Keyword.MatchType.Code,
		CPCBidMicros:     row.AdGroupCriterion.CpcBidMicros,
		Negative:         row.AdGroupCriterion.Negative,
		Status:           row.AdGroupCriterion.Status,
	}
}
