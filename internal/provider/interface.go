package provider

import (
	"context"

	"tao-data/internal/model"
)

// MarketSource is the abstraction used by the application when fetching from
// a remote market-data API. Implementations own their transport and resource
// cleanup.
type MarketSource interface {
	GetName() string
	DailyPrices(ctx context.Context, days int) ([]model.RawPoint, error)
	Close() error
}
