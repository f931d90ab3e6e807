package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration from env (plus an optional .env file).
type Config struct {
	APIKey       string // COINGECKO demo key; required for fetch only
	CoinID       string `validate:"required"`
	VsCurrency   string `validate:"required"`
	DataFile     string `validate:"required"`
	LogLevel     string `validate:"oneof=debug info warn warning error"`
	ExportFormat string `validate:"omitempty,oneof=json csv parquet"`
	ExportDir    string
}

// LoadConfig reads config from the environment and validates it. Lifecycle is
// one run: nothing reads the environment after this point.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:       os.Getenv("COINGECKO"),
		CoinID:       getEnv("COIN_ID", "bittensor"),
		VsCurrency:   getEnv("VS_CURRENCY", "usd"),
		DataFile:     getEnv("DATA_FILE", "price_data.json"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ExportFormat: os.Getenv("EXPORT_FORMAT"),
		ExportDir:    getEnv("EXPORT_DIR", "exports"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
