package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultRowsRequestTimeout limita cada chamada à API do Rows e cada aquisição completa
const DefaultRowsRequestTimeout = 10 * time.Second

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Rows        Rows        `mapstructure:",squash"`
	SourceProbe SourceProbe `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda o segredo HS256 usado pelo Supabase para assinar os access tokens
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Rows reúne a configuração da API de planilhas de onde vêm as métricas do Instagram
type Rows struct {
	APIKey         string        `mapstructure:"rows_api_key"`
	BaseURL        string        `mapstructure:"rows_base_url"`
	InstagramHint  string        `mapstructure:"rows_instagram_source"`
	SpreadsheetID  string        `mapstructure:"rows_spreadsheet_id"`
	RequestTimeout time.Duration `mapstructure:"rows_request_timeout"`
	MaxRetries     int           `mapstructure:"rows_max_retries"`
	RetryBackoff   time.Duration `mapstructure:"rows_retry_backoff"`
}

type SourceProbe struct {
	CronSchedule string `mapstructure:"source_probe_cron"`
	Enabled      bool   `mapstructure:"source_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("ROWS_API_KEY", "")
	viper.SetDefault("ROWS_BASE_URL", "https://api.rows.com/v1")
	viper.SetDefault("ROWS_INSTAGRAM_SOURCE", "")
	viper.SetDefault("ROWS_SPREADSHEET_ID", "")
	viper.SetDefault("ROWS_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("ROWS_MAX_RETRIES", 1)
	viper.SetDefault("ROWS_RETRY_BACKOFF", "500ms")

	viper.SetDefault("SOURCE_PROBE_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SOURCE_PROBE_ENABLED", false)

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

	if config.Rows.RequestTimeout <= 0 {
		config.Rows.RequestTimeout = DefaultRowsRequestTimeout
	}
	if config.Rows.MaxRetries < 0 {
		config.Rows.MaxRetries = 0
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
