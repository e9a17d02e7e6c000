package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Render     Render     `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
	TokenCheck TokenCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Meta struct {
	BaseURL                string        `mapstructure:"meta_base_url"`
	Version                string        `mapstructure:"meta_version"`
	URL                    string        `mapstructure:"-"`
	AccessToken            string        `mapstructure:"facebook_access_token"`
	AccountLimit           int           `mapstructure:"meta_account_limit"`
	CampaignLimit          int           `mapstructure:"meta_campaign_limit"`
	BatchSize              int           `mapstructure:"meta_batch_size"`
	ConversationActionType string        `mapstructure:"meta_conversation_action_type"`
	RequestTimeout         time.Duration `mapstructure:"meta_request_timeout"`
}

type Render struct {
	APIKey          string `mapstructure:"render_api_key"`
	ServiceID       string `mapstructure:"render_service_id"`
	URL             string `mapstructure:"render_api_url"`
	TokenSecretName string `mapstructure:"render_token_secret_name"`
}

type Dashboard struct {
	LookbackDays     int           `mapstructure:"dashboard_lookback_days"`
	LowCostThreshold float64       `mapstructure:"dashboard_low_cost_threshold"`
	SnapshotTTL      time.Duration `mapstructure:"dashboard_snapshot_ttl"`
}

type TokenCheck struct {
	CronSchedule string `mapstructure:"token_check_cron"`
	Enabled      bool   `mapstructure:"token_check_enabled"`
}

// HasAccessToken indica se a credencial do Graph foi configurada
func (m Meta) HasAccessToken() bool {
	return strings.TrimSpace(m.AccessToken) != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v20.0")
	viper.SetDefault("FACEBOOK_ACCESS_TOKEN", "")
	viper.SetDefault("META_ACCOUNT_LIMIT", 500)
	viper.SetDefault("META_CAMPAIGN_LIMIT", 500)
	viper.SetDefault("META_BATCH_SIZE", 50) // limite do Graph por lote
	viper.SetDefault("META_CONVERSATION_ACTION_TYPE", "onsite_conversion.messaging_conversation_started_7d")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_API_URL", "https://api.render.com/v1")
	viper.SetDefault("RENDER_TOKEN_SECRET_NAME", "facebook_access_token")

	viper.SetDefault("DASHBOARD_LOOKBACK_DAYS", 30)
	viper.SetDefault("DASHBOARD_LOW_COST_THRESHOLD", 3.0)
	viper.SetDefault("DASHBOARD_SNAPSHOT_TTL", "5m") // 0 busca no Graph a cada requisição

	viper.SetDefault("TOKEN_CHECK_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("TOKEN_CHECK_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.BaseURL = strings.TrimSuffix(config.Meta.BaseURL, "/")
	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	if config.Meta.BatchSize <= 0 || config.Meta.BatchSize > 50 {
		logrus.Warnf("META_BATCH_SIZE inválido (%d), usando 50", config.Meta.BatchSize)
		config.Meta.BatchSize = 50
	}

	for i, origin := range config.Server.AllowedOrigins {
		config.Server.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// ResolveAccessToken busca a credencial do Graph no Render quando ela não
// veio do ambiente. Sem service id configurado nada é feito.
func ResolveAccessToken(config *Config, storage SecretStorage) error {
	if config.Meta.HasAccessToken() || config.Render.ServiceID == "" {
		return nil
	}

	secrets, err := storage.ListSecrets(config.Render.ServiceID)
	if err != nil {
		return fmt.Errorf("config: erro ao listar secrets do Render: %w", err)
	}

	token, ok := secrets[config.Render.TokenSecretName]
	if !ok || strings.TrimSpace(token) == "" {
		logrus.WithField("secret_name", config.Render.TokenSecretName).Warn("Secret do token de acesso não encontrado no Render")
		return nil
	}

	config.Meta.AccessToken = strings.TrimSpace(token)
	logrus.Info("Token de acesso do Facebook carregado dos secrets do Render")

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
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
