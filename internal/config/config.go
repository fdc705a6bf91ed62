package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	RevenueShare     RevenueShare     `mapstructure:",squash"`
	Pagination       Pagination       `mapstructure:",squash"`
	DailySummarySync DailySummarySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// RevenueShare parametriza a regra de repasse vigente. O percentual da loja
// é sempre o complemento do percentual da profissional.
type RevenueShare struct {
	BeauticianSharePercent int     `mapstructure:"revenue_share_beautician_percent"`
	DefaultSubsidy         float64 `mapstructure:"revenue_share_default_subsidy"`
}

type Pagination struct {
	DefaultLimit int `mapstructure:"pagination_default_limit"`
	MaxLimit     int `mapstructure:"pagination_max_limit"`
}

// Clamp aplica o tamanho de página padrão e o teto configurado
func (p Pagination) Clamp(limit int) int {
	if limit <= 0 {
		return p.DefaultLimit
	}
	if limit > p.MaxLimit {
		return p.MaxLimit
	}
	return limit
}

type DailySummarySync struct {
	CronSchedule string `mapstructure:"daily_summary_sync_cron"`
	LookbackDays int    `mapstructure:"daily_summary_sync_lookback_days"`
	Enabled      bool   `mapstructure:"daily_summary_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salon")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Regra de repasse padrão: 60% para a profissional, 40% para a loja
	viper.SetDefault("REVENUE_SHARE_BEAUTICIAN_PERCENT", 60)
	viper.SetDefault("REVENUE_SHARE_DEFAULT_SUBSIDY", 0.0)

	viper.SetDefault("PAGINATION_DEFAULT_LIMIT", 50)
	viper.SetDefault("PAGINATION_MAX_LIMIT", 100)

	// Defaults para o resumo diário pré-calculado
	viper.SetDefault("DAILY_SUMMARY_SYNC_CRON", "30 1 * * *") // Todos os dias à 1h30 da manhã
	viper.SetDefault("DAILY_SUMMARY_SYNC_LOOKBACK_DAYS", 3)   // Recalcula os últimos 3 dias
	viper.SetDefault("DAILY_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	if config.RevenueShare.BeauticianSharePercent < 0 || config.RevenueShare.BeauticianSharePercent > 100 {
		return nil, fmt.Errorf("percentual de repasse inválido: %d", config.RevenueShare.BeauticianSharePercent)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
