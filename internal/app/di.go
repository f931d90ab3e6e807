package app

import (
	"tao-data/internal/provider/coingecko"
	"tao-data/internal/store"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideStore creates the dataset store from config (for Wire).
func ProvideStore(cfg *Config) *store.Store {
	return store.New(cfg.DataFile)
}

// ProvideSource creates the CoinGecko market source from config (for Wire).
// Caller must call Close() when shutting down.
func ProvideSource(cfg *Config) *coingecko.Client {
	return coingecko.New(coingecko.Options{
		APIKey:     cfg.APIKey,
		CoinID:     cfg.CoinID,
		VsCurrency: cfg.VsCurrency,
	})
}
