//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"tao-data/internal/app"
	"tao-data/internal/provider"
	"tao-data/internal/provider/coingecko"
)

// InitializeApp builds App (Config + Store + MarketSource) via Wire.
// Caller must call a.Source.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideStore,
		app.ProvideSource,
		wire.Bind(new(provider.MarketSource), new(*coingecko.Client)),
		wire.Struct(new(App), "Config", "Store", "Source"),
	)
	return nil, nil
}
