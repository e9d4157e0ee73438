package googleads

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/mocks"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBuildKeywordCriteriaQuery(t *testing.T) {
	query := BuildKeywordCriteriaQuery("customers/123/labels/456")

	assert.True(t, strings.HasPrefix(query, "SELECT"))
	assert.Contains(t, query, "FROM ad_group_criterion")
	assert.Contains(t, query, "ad_group_criterion.type = KEYWORD")
	assert.Contains(t, query, "ad_group_criterion.status = ENABLED")
	assert.Contains(t, query, "ad_group_criterion.negative = FALSE")
	assert.Contains(t, query, "ad_group.status = ENABLED")
	assert.True(t, strings.HasSuffix(query, "ad_group.labels CONTAINS ALL ('customers/123/labels/456')"))

	escaped := BuildKeywordCriteriaQuery("customers/123/labels/4'5")
	assert.Contains(t, escaped, `('customers/123/labels/4\'5')`)
}

func TestGoogleAdsIntegrator_SearchKeywordCriteria(t *testing.T) {
	query := domain.KeywordQuery{
		CustomerID:    "1111111111",
		LabelResource: "customers/1111111111/labels/10",
		PageSize:      500,
	}

	t.Run("converte as linhas da página", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		client.EXPECT().
			Search(gomock.Any(), "1111111111", googleadsdomain.SearchRequest{
				Query:     BuildKeywordCriteriaQuery("customers/1111111111/labels/10"),
				PageSize:  500,
				PageToken: "p2",
			}).
			Return(&googleadsdomain.SearchResponse{
				Results: []googleadsdomain.GoogleAdsRow{{
					AdGroup: googleadsdomain.AdGroup{
						ID: 10, Name: "Group A", Status: "ENABLED", Campaign: "customers/1111111111/campaigns/5",
					},
					AdGroupCriterion: googleadsdomain.AdGroupCriterion{
						Type:         "KEYWORD",
						CriterionID:  1001,
						Keyword:      googleadsdomain.Keyword{Text: "running shoes", MatchType: googleadsdomain.MatchTypeValue{Code: 2}},
						CpcBidMicros: 2_000_000,
						Status:       "ENABLED",
					},
				}},
				NextPageToken: "p3",
			}, nil)

		page, err := New(client).SearchKeywordCriteria(context.Background(), query, "p2")

		require.NoError(t, err)
		assert.Equal(t, "p3", page.NextPageToken)
		require.Len(t, page.Rows, 1)
		assert.Equal(t, domain.KeywordCriterionRow{
			AdGroupID:        10,
			AdGroupName:      "Group A",
			AdGroupStatus:    "ENABLED",
			CampaignResource: "customers/1111111111/campaigns/5",
			CriterionType:    "KEYWORD",
			CriterionID:      1001,
			KeywordText:      "running shoes",
			MatchTypeCode:    2,
			CPCBidMicros:     2_000_000,
			Status:           "ENABLED",
		}, page.Rows[0])
	})

	t.Run("propaga o erro da API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)

		apiErr := &googleadsdomain.APIError{HTTPStatus: 401, Status: "UNAUTHENTICATED"}
		client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apiErr)

		page, err := New(client).SearchKeywordCriteria(context.Background(), query, "")

		assert.Nil(t, page)
		assert.Same(t, apiErr, err)
	})
}

func TestGoogleAdsIntegrator_UpdateKeywordBid(t *testing.T) {
	update := domain.BidUpdate{CustomerID: "222-222-2222", AdGroupID: 20, CriterionID: "2001", CPCBidMicros: 900000}
	expected := googleadsdomain.MutateAdGroupCriteriaRequest{
		Operations: []googleadsdomain.AdGroupCriterionOperation{{
			UpdateMask: "cpcBidMicros",
			Update: googleadsdomain.AdGroupCriterionUpdate{
				ResourceName: "customers/2222222222/adGroupCriteria/20~2001",
				CpcBidMicros: 900000,
			},
		}},
	}

	tests := []struct {
		name        string
		response    *googleadsdomain.MutateAdGroupCriteriaResponse
		err         error
		expectError bool
	}{
		{
			name: "lance atualizado",
			response: &googleadsdomain.MutateAdGroupCriteriaResponse{
				Results: []googleadsdomain.MutateAdGroupCriterionResult{{ResourceName: "customers/2222222222/adGroupCriteria/20~2001"}},
			},
		},
		{
			name:        "resposta sem resultados",
			response:    &googleadsdomain.MutateAdGroupCriteriaResponse{},
			expectError: true,
		},
		{
			name:        "erro da API",
			err:         errors.New("quota exceeded"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			client.EXPECT().MutateAdGroupCriteria(gomock.Any(), "2222222222", expected).Return(tt.response, tt.err)

			err := New(client).UpdateKeywordBid(context.Background(), update)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
