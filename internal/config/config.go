package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey indica que a chave de assinatura não foi configurada
var ErrMissingAPIKey = errors.New("VINMONOPOLET_API_KEY not found")

type Config struct {
	App          App          `mapstructure:",squash"`
	Vinmonopolet Vinmonopolet `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Vinmonopolet struct {
	URL     string        `mapstructure:"vinmonopolet_url"`
	APIKey  string        `mapstructure:"vinmonopolet_api_key"`
	Timeout time.Duration `mapstructure:"vinmonopolet_timeout"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("VINMONOPOLET_URL", "https://apis.vinmonopolet.no/products/v0")
	v.SetDefault("VINMONOPOLET_API_KEY", "")
	v.SetDefault("VINMONOPOLET_TIMEOUT", "30s") // 0 desativa o timeout

	v.SetDefault("LOG_LEVEL", "warn")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	v := viper.New()
	SetDefaults(v)

	// Variáveis de ambiente têm precedência sobre os valores padrão
	v.AutomaticEnv()

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	config.Vinmonopolet.URL = strings.TrimRight(config.Vinmonopolet.URL, "/")

	return config, nil
}

// Validate verifica os pré-requisitos de inicialização
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Vinmonopolet.APIKey) == "" {
		return ErrMissingAPIKey
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
