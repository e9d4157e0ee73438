package googleadsclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AdWordsScope é o escopo OAuth exigido pela API do Google Ads
const AdWordsScope = "https://www.googleapis.com/auth/adwords"

// NewHTTPClient cria um http.Client que renova o access token a partir do refresh token
func NewHTTPClient(ctx context.Context, cfg config.GoogleAds) *http.Client {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{AdWordsScope},
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	client := oauth2.NewClient(ctx, tokenSource)
	client.Timeout = cfg.Timeout

	return client
}
