package config

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Source = SourceAccount{ID: "123-456-7890", AdGroupLabel: "111", Alias: "origem"}
	cfg.Destination = DestinationAccount{ID: "098-765-4321", AdGroupLabel: "222", AdGroupSuffix: "_2", Alias: "destino"}
	cfg.GoogleAds = GoogleAds{
		DeveloperToken: "dev",
		RefreshToken:   "refresh",
		ClientID:       "client",
		ClientSecret:   "secret",
		PageSize:       1000,
	}
	cfg.BidSync.AdjustmentFractionRaw = "0.55"
	cfg.BidSync.AdjustmentFraction = decimal.RequireFromString("0.55")
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "configuração completa",
			mutate: func(c *Config) {},
		},
		{
			name:    "sem conta de origem",
			mutate:  func(c *Config) { c.Source.ID = " - " },
			wantErr: ErrMissingAccountID,
		},
		{
			name:    "sem rótulo no destino",
			mutate:  func(c *Config) { c.Destination.AdGroupLabel = "" },
			wantErr: ErrMissingLabel,
		},
		{
			name:    "sem alias na origem",
			mutate:  func(c *Config) { c.Source.Alias = "" },
			wantErr: ErrMissingAlias,
		},
		{
			name:    "sem sufixo do destino",
			mutate:  func(c *Config) { c.Destination.AdGroupSuffix = "" },
			wantErr: ErrMissingSuffix,
		},
		{
			name:    "sem refresh token",
			mutate:  func(c *Config) { c.GoogleAds.RefreshToken = "" },
			wantErr: ErrMissingCredentials,
		},
		{
			name: "fração ausente",
			mutate: func(c *Config) {
				c.BidSync.AdjustmentFractionRaw = ""
				c.BidSync.AdjustmentFraction = decimal.Zero
			},
			wantErr: ErrInvalidAdjustment,
		},
		{
			name: "fração zero é válida",
			mutate: func(c *Config) {
				c.BidSync.AdjustmentFractionRaw = "0"
				c.BidSync.AdjustmentFraction = decimal.Zero
			},
		},
		{
			name: "fração igual a um",
			mutate: func(c *Config) {
				c.BidSync.AdjustmentFractionRaw = "1"
				c.BidSync.AdjustmentFraction = decimal.NewFromInt(1)
			},
			wantErr: ErrInvalidAdjustment,
		},
		{
			name: "fração negativa",
			mutate: func(c *Config) {
				c.BidSync.AdjustmentFractionRaw = "-0.1"
				c.BidSync.AdjustmentFraction = decimal.RequireFromString("-0.1")
			},
			wantErr: ErrInvalidAdjustment,
		},
		{
			name:    "page size zero",
			mutate:  func(c *Config) { c.GoogleAds.PageSize = 0 },
			wantErr: ErrInvalidPageSize,
		},
		{
			name: "banco habilitado sem url",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.Database.URL = ""
			},
			wantErr: ErrMissingDatabaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
		})
	}
}

func TestConfig_resolve(t *testing.T) {
	t.Run("preenche fração, mapeamentos e DSN", func(t *testing.T) {
		cfg := &Config{}
		cfg.BidSync.AdjustmentFractionRaw = "0.55"
		cfg.BidSync.AdGroupMappingsRaw = []string{"21:11", " 22 : 12 ", ""}
		cfg.Database = Database{Driver: "postgres", User: "bid", Password: "pw", URL: "db:5432/bidsync"}

		require.NoError(t, cfg.resolve())

		assert.True(t, cfg.BidSync.AdjustmentFraction.Equal(decimal.RequireFromString("0.55")))
		assert.Equal(t, []domain.AdGroupMapping{
			{SourceAdGroupID: 11, DestinationAdGroupID: 21},
			{SourceAdGroupID: 12, DestinationAdGroupID: 22},
		}, cfg.BidSync.AdGroupMappings)
		assert.Equal(t, "postgres://bid:pw@db:5432/bidsync", cfg.Database.DSN)
	})

	t.Run("fração inválida", func(t *testing.T) {
		cfg := &Config{}
		cfg.BidSync.AdjustmentFractionRaw = "metade"

		err := cfg.resolve()
		assert.True(t, errors.Is(err, ErrInvalidAdjustment))
	})

	t.Run("mapeamento inválido", func(t *testing.T) {
		cfg := &Config{}
		cfg.BidSync.AdGroupMappingsRaw = []string{"21-11"}

		err := cfg.resolve()
		assert.True(t, errors.Is(err, ErrInvalidAdGroupMapping))
	})
}

func TestConfig_AccountSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Source.CampaignPrefix = "BR"

	source := cfg.SourceSettings()
	assert.Equal(t, domain.AccountSettings{
		Alias:          "origem",
		CustomerID:     "1234567890",
		Label:          "111",
		CampaignPrefix: "BR",
	}, source)

	destination := cfg.DestinationSettings()
	assert.Equal(t, "0987654321", destination.CustomerID)
	assert.Equal(t, "_2", destination.AdGroupSuffix)
}
