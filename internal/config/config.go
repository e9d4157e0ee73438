package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

var (
	ErrMissingAccountID      = errors.New("account id is required")
	ErrMissingLabel          = errors.New("ad group label is required")
	ErrMissingAlias          = errors.New("account alias is required")
	ErrMissingSuffix         = errors.New("destination ad group suffix is required")
	ErrMissingCredentials    = errors.New("google ads credentials are required")
	ErrInvalidAdjustment     = errors.New("bid adjustment fraction must be in [0, 1)")
	ErrInvalidPageSize       = errors.New("page size must be greater than zero")
	ErrMissingDatabaseURL    = errors.New("database url is required when database is enabled")
	ErrInvalidAdGroupMapping = errors.New("invalid ad group mapping")
)

type Config struct {
	App         App                `mapstructure:",squash"`
	Server      Server             `mapstructure:",squash"`
	Database    Database           `mapstructure:",squash"`
	GoogleAds   GoogleAds          `mapstructure:",squash"`
	Source      SourceAccount      `mapstructure:",squash"`
	Destination DestinationAccount `mapstructure:",squash"`
	BidSync     BidSync            `mapstructure:",squash"`
	Auth        Auth               `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL         string        `mapstructure:"google_ads_base_url"`
	APIVersion      string        `mapstructure:"google_ads_api_version"`
	DeveloperToken  string        `mapstructure:"google_ads_developer_token"`
	RefreshToken    string        `mapstructure:"google_ads_refresh_token"`
	ClientID        string        `mapstructure:"google_ads_client_id"`
	ClientSecret    string        `mapstructure:"google_ads_client_secret"`
	LoginCustomerID string        `mapstructure:"google_ads_login_customer_id"`
	PageSize        int           `mapstructure:"google_ads_page_size"`
	Timeout         time.Duration `mapstructure:"google_ads_timeout"`
}

type SourceAccount struct {
	ID             string `mapstructure:"source_account_id"`
	AdGroupLabel   string `mapstructure:"source_adgroup_label"`
	CampaignPrefix string `mapstructure:"source_campaign_prefix"`
	AdGroupSuffix  string `mapstructure:"source_adgroup_suffix"`
	Alias          string `mapstructure:"source_account_alias"`
}

type DestinationAccount struct {
	ID             string `mapstructure:"destination_account_id"`
	AdGroupLabel   string `mapstructure:"destination_adgroup_label"`
	CampaignPrefix string `mapstructure:"destination_campaign_prefix"`
	AdGroupSuffix  string `mapstructure:"destination_adgroup_suffix"`
	Alias          string `mapstructure:"destination_account_alias"`
}

type BidSync struct {
	AdjustmentFractionRaw string                  `mapstructure:"bid_adjustment_fraction"`
	AdjustmentFraction    decimal.Decimal         `mapstructure:"-"`
	AdGroupMappingsRaw    []string                `mapstructure:"ad_group_mappings"`
	AdGroupMappings       []domain.AdGroupMapping `mapstructure:"-"`
	CronSchedule          string                  `mapstructure:"bid_sync_cron"`
	Enabled               bool                    `mapstructure:"bid_sync_enabled"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

// SourceSettings retorna a configuração da conta de onde os lances são lidos
func (c *Config) SourceSettings() domain.AccountSettings {
	return domain.AccountSettings{
		Alias:          c.Source.Alias,
		CustomerID:     domain.NormalizeCustomerID(c.Source.ID),
		Label:          c.Source.AdGroupLabel,
		CampaignPrefix: c.Source.CampaignPrefix,
		AdGroupSuffix:  c.Source.AdGroupSuffix,
	}
}

// DestinationSettings retorna a configuração da conta que recebe os lances ajustados
func (c *Config) DestinationSettings() domain.AccountSettings {
	return domain.AccountSettings{
		Alias:          c.Destination.Alias,
		CustomerID:     domain.NormalizeCustomerID(c.Destination.ID),
		Label:          c.Destination.AdGroupLabel,
		CampaignPrefix: c.Destination.CampaignPrefix,
		AdGroupSuffix:  c.Destination.AdGroupSuffix,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bidsync?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v19")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_PAGE_SIZE", 1000)
	viper.SetDefault("GOOGLE_ADS_TIMEOUT", "60s")

	for _, prefix := range []string{"SOURCE", "DESTINATION"} {
		viper.SetDefault(prefix+"_ACCOUNT_ID", "")
		viper.SetDefault(prefix+"_ADGROUP_LABEL", "")
		viper.SetDefault(prefix+"_CAMPAIGN_PREFIX", "")
		viper.SetDefault(prefix+"_ADGROUP_SUFFIX", "")
		viper.SetDefault(prefix+"_ACCOUNT_ALIAS", "")
	}

	viper.SetDefault("BID_ADJUSTMENT_FRACTION", "")
	viper.SetDefault("AD_GROUP_MAPPINGS", "")
	viper.SetDefault("BID_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("BID_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.resolve(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolve preenche os campos derivados a partir dos valores crus
func (c *Config) resolve() error {
	if c.BidSync.AdjustmentFractionRaw != "" {
		fraction, err := decimal.NewFromString(c.BidSync.AdjustmentFractionRaw)
		if err != nil {
			return errors.Wrapf(ErrInvalidAdjustment, "valor %q", c.BidSync.AdjustmentFractionRaw)
		}
		c.BidSync.AdjustmentFraction = fraction
	}

	mappings, err := domain.ParseAdGroupMappings(c.BidSync.AdGroupMappingsRaw)
	if err != nil {
		return errors.Wrap(ErrInvalidAdGroupMapping, err.Error())
	}
	c.BidSync.AdGroupMappings = mappings

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Validate verifica os campos obrigatórios para executar uma sincronização
func (c *Config) Validate() error {
	accounts := []struct {
		role  string
		id    string
		label string
		alias string
	}{
		{"source", c.Source.ID, c.Source.AdGroupLabel, c.Source.Alias},
		{"destination", c.Destination.ID, c.Destination.AdGroupLabel, c.Destination.Alias},
	}

	for _, account := range accounts {
		if domain.NormalizeCustomerID(account.id) == "" {
			return errors.Wrap(ErrMissingAccountID, account.role)
		}
		if account.label == "" {
			return errors.Wrap(ErrMissingLabel, account.role)
		}
		if account.alias == "" {
			return errors.Wrap(ErrMissingAlias, account.role)
		}
	}

	if c.Destination.AdGroupSuffix == "" {
		return ErrMissingSuffix
	}

	if c.GoogleAds.DeveloperToken == "" || c.GoogleAds.RefreshToken == "" ||
		c.GoogleAds.ClientID == "" || c.GoogleAds.ClientSecret == "" {
		return ErrMissingCredentials
	}

	if c.BidSync.AdjustmentFractionRaw == "" ||
		c.BidSync.AdjustmentFraction.IsNegative() ||
		c.BidSync.AdjustmentFraction.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.Wrapf(ErrInvalidAdjustment, "valor %q", c.BidSync.AdjustmentFractionRaw)
	}

	if c.GoogleAds.PageSize <= 0 {
		return ErrInvalidPageSize
	}

	if c.Database.Enabled && c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
