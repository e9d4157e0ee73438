package googleadsclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googleadsdomain "github.com/vfg2006/keyword-bid-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
)

func newTestClient(server *httptest.Server) Client {
	return newTestClientWithVersion(server, "v19")
}

func newTestClientWithVersion(server *httptest.Server, version string) Client {
	return NewClient(config.GoogleAds{
		BaseURL:         server.URL + "/",
		APIVersion:      version,
		DeveloperToken:  "dev-token",
		LoginCustomerID: "999-999-9999",
	}, server.Client())
}

func TestGoogleAdsClient_Search(t *testing.T) {
	t.Run("envia consulta e decodifica a página", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v19/customers/1111111111/googleAds:search", r.URL.Path)
			assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
			assert.Equal(t, "9999999999", r.Header.Get("login-customer-id"))

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"query":"SELECT 1","pageToken":"p2"}`, string(body))

			w.Header().Set("request-id", "req-1")
			_, _ = w.Write([]byte(`{
				"results": [{
					"adGroup": {"id": "10", "name": "Group A", "status": "ENABLED", "campaign": "customers/1111111111/campaigns/5"},
					"adGroupCriterion": {
						"type": "KEYWORD",
						"criterionId": "1001",
						"keyword": {"text": "running shoes", "matchType": "EXACT"},
						"cpcBidMicros": "2000000",
						"status": "ENABLED"
					}
				}, {
					"adGroup": {"id": "11", "name": "Group B", "status": "ENABLED", "campaign": "customers/1111111111/campaigns/6"},
					"adGroupCriterion": {
						"type": "KEYWORD",
						"criterionId": "1002",
						"keyword": {"text": "sandals", "matchType": 4},
						"status": "ENABLED"
					}
				}],
				"nextPageToken": "p3"
			}`))
		}))
		defer server.Close()

		resp, err := newTestClient(server).Search(context.Background(), "111-111-1111", googleadsdomain.SearchRequest{
			Query:     "SELECT 1",
			PageSize:  2,
			PageToken: "p2",
		})

		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "p3", resp.NextPageToken)

		first := resp.Results[0]
		assert.Equal(t, int64(10), first.AdGroup.ID)
		assert.Equal(t, int64(1001), first.AdGroupCriterion.CriterionID)
		assert.Equal(t, int64(2_000_000), first.AdGroupCriterion.CpcBidMicros)
		assert.Equal(t, 2, first.AdGroupCriterion.Keyword.MatchType.Code)

		second := resp.Results[1]
		assert.Equal(t, 4, second.AdGroupCriterion.Keyword.MatchType.Code)
		assert.Equal(t, int64(0), second.AdGroupCriterion.CpcBidMicros)
	})

	t.Run("pageSize enviado apenas nas versões que o aceitam", func(t *testing.T) {
		tests := []struct {
			version  string
			wantBody string
		}{
			{version: "v16", wantBody: `{"query":"q","pageSize":1000}`},
			{version: "v17", wantBody: `{"query":"q"}`},
			{version: "v19", wantBody: `{"query":"q"}`},
			{version: "V21", wantBody: `{"query":"q"}`},
			{version: "beta", wantBody: `{"query":"q"}`},
		}

		for _, tt := range tests {
			t.Run(tt.version, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					body, _ := io.ReadAll(r.Body)
					assert.JSONEq(t, tt.wantBody, string(body))
					_, _ = w.Write([]byte(`{"results": []}`))
				}))
				defer server.Close()

				_, err := newTestClientWithVersion(server, tt.version).Search(context.Background(), "123", googleadsdomain.SearchRequest{
					Query:    "q",
					PageSize: 1000,
				})
				require.NoError(t, err)
			})
		}
	})

	t.Run("converte o envelope de erro em APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("request-id", "req-err")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"error": {
					"code": 400,
					"message": "Request contains an invalid argument.",
					"status": "INVALID_ARGUMENT",
					"details": [{
						"@type": "type.googleapis.com/google.ads.googleads.v19.errors.GoogleAdsFailure",
						"errors": [{
							"errorCode": {"queryError": "UNRECOGNIZED_FIELD"},
							"message": "Unrecognized field in the query.",
							"location": {"fieldPathElements": [{"fieldName": "query"}]}
						}],
						"requestId": "req-details"
					}]
				}
			}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).Search(context.Background(), "1111111111", googleadsdomain.SearchRequest{Query: "SELECT"})

		var apiErr *googleadsdomain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
		assert.Equal(t, "INVALID_ARGUMENT", apiErr.Status)
		assert.Equal(t, "req-err", apiErr.RequestID)
		require.Len(t, apiErr.Details, 1)
		assert.Equal(t, "queryError: UNRECOGNIZED_FIELD", apiErr.Details[0].ErrorCode)
		assert.Equal(t, []string{"query"}, apiErr.Details[0].FieldPath)
	})

	t.Run("erro sem corpo JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		_, err := newTestClient(server).Search(context.Background(), "1111111111", googleadsdomain.SearchRequest{Query: "SELECT"})

		var apiErr *googleadsdomain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "HTTP_502", apiErr.Status)
	})

	t.Run("resposta de sucesso inválida", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results": [{"adGroup": {"id": "abc"}}]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).Search(context.Background(), "1111111111", googleadsdomain.SearchRequest{Query: "SELECT"})

		require.Error(t, err)
		var apiErr *googleadsdomain.APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestGoogleAdsClient_MutateAdGroupCriteria(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v19/customers/2222222222/adGroupCriteria:mutate", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"operations": [{
				"updateMask": "cpcBidMicros",
				"update": {"resourceName": "customers/2222222222/adGroupCriteria/20~2001", "cpcBidMicros": "900000"}
			}],
			"partialFailure": false
		}`, string(body))

		_, _ = w.Write([]byte(`{"results": [{"resourceName": "customers/2222222222/adGroupCriteria/20~2001"}]}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server).MutateAdGroupCriteria(context.Background(), "2222222222", googleadsdomain.MutateAdGroupCriteriaRequest{
		Operations: []googleadsdomain.AdGroupCriterionOperation{{
			UpdateMask: googleadsdomain.CpcBidUpdateMask,
			Update: googleadsdomain.AdGroupCriterionUpdate{
				ResourceName: googleadsdomain.AdGroupCriterionResourceName("2222222222", 20, "2001"),
				CpcBidMicros: 900000,
			},
		}},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "customers/2222222222/adGroupCriteria/20~2001", resp.Results[0].ResourceName)
}
