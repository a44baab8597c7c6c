package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Upload         Upload         `mapstructure:",squash"`
	Session        Session        `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required,numeric"`
}

type Auth struct {
	Secret   string `mapstructure:"auth_secret" validate:"required,min=16"`
	AdminKey string `mapstructure:"admin_key"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes" validate:"gt=0"`
}

type Session struct {
	TTL time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
}

type SessionCleanup struct {
	CronSchedule string `mapstructure:"session_cleanup_cron" validate:"required"`
	Enabled      bool   `mapstructure:"session_cleanup_enabled"`
}

type Dashboard struct {
	TopN     int `mapstructure:"dashboard_top_n" validate:"gte=1"`
	TrendTop int `mapstructure:"dashboard_trend_top" validate:"gte=1"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("AUTH_SECRET", "placas-mundi-local-secret") // ONLY LOCAL
	viper.SetDefault("ADMIN_KEY", "")

	viper.SetDefault("UPLOAD_MAX_BYTES", 20<<20) // 20 MB

	viper.SetDefault("SESSION_TTL", "2h")
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("DASHBOARD_TOP_N", 10)
	viper.SetDefault("DASHBOARD_TREND_TOP", 5)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

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

	return load(viper.GetViper())
}

// load decodifica e valida a configuração a partir de uma instância do viper
func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "configuração inválida")
	}

	if config.Auth.AdminKey == "" {
		logrus.Warn("ADMIN_KEY não configurada, rotas de cron ficarão indisponíveis")
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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
