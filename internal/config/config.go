package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	GoogleAds      GoogleAds      `mapstructure:",squash"`
	OAuth          OAuth          `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database é opcional: quando DATABASE_URL está vazio, as sessões de
// autorização ficam apenas em memória.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL       string `mapstructure:"google_ads_base_url"`
	Version       string `mapstructure:"google_ads_version"`
	URL           string `mapstructure:"-"`
	PriceCurrency string `mapstructure:"google_ads_price_currency"`
}

type OAuth struct {
	AuthURL     string        `mapstructure:"oauth_auth_url"`
	TokenURL    string        `mapstructure:"oauth_token_url"`
	RedirectURI string        `mapstructure:"oauth_redirect_uri"`
	Scopes      []string      `mapstructure:"oauth_scopes"`
	SessionTTL  time.Duration `mapstructure:"oauth_session_ttl"`
}

type SessionCleanup struct {
	CronSchedule string `mapstructure:"session_cleanup_cron"`
	Enabled      bool   `mapstructure:"session_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_PRICE_CURRENCY", "USD")

	viper.SetDefault("OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/auth")
	viper.SetDefault("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("OAUTH_REDIRECT_URI", "http://127.0.0.1:8000/oauth2callback")
	viper.SetDefault("OAUTH_SCOPES", "https://www.googleapis.com/auth/adwords")
	viper.SetDefault("OAUTH_SESSION_TTL", "30m") // TTL de cada tentativa de autorização pendente

	viper.SetDefault("SESSION_CLEANUP_CRON", "*/5 * * * *") // Varredura de sessões expiradas a cada 5 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	if config.Database.URL != "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
