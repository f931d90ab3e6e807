package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"tao-data/internal/model"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	requestTimeout = 30 * time.Second
)

// ErrBadPayload marks a response that is not the expected
// {"prices": [[timestamp_ms, price], ...]} shape.
var ErrBadPayload = errors.New("coingecko: unexpected response shape")

// Options configure the client. BaseURL is overridable for tests.
type Options struct {
	APIKey     string
	CoinID     string
	VsCurrency string
	BaseURL    string
}

// Client fetches the daily market chart for one coin/currency pair.
type Client struct {
	http *resty.Client
	opts Options
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	return &Client{
		http: resty.New().
			SetBaseURL(opts.BaseURL).
			SetTimeout(requestTimeout).
			SetHeader("Accept", "application/json"),
		opts: opts,
	}
}

func (c *Client) GetName() string { return "coingecko" }

// DailyPrices requests the last `days` daily closing prices. Transport
// failures, non-2xx statuses and malformed payloads all fail the call; the
// caller aborts the run with no side effects.
func (c *Client) DailyPrices(ctx context.Context, days int) ([]model.RawPoint, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", c.opts.CoinID).
		SetQueryParams(map[string]string{
			"vs_currency":       c.opts.VsCurrency,
			"days":              strconv.Itoa(days),
			"interval":          "daily",
			"x_cg_demo_api_key": c.opts.APIKey,
		}).
		Get("/coins/{id}/market_chart")
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("coingecko returned %s: %s", resp.Status(), snippet(resp.Body()))
	}
	return parsePrices(resp.Body())
}

// Close releases idle transport connections.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

// parsePrices validates the envelope strictly: prices must be a list of
// [timestamp_ms, price] pairs.
func parsePrices(body []byte) ([]model.RawPoint, error) {
	var envelope struct {
		Prices json.RawMessage `json:"prices"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(envelope.Prices) == 0 || string(envelope.Prices) == "null" {
		return nil, fmt.Errorf("%w: missing prices field", ErrBadPayload)
	}
	var pairs [][]float64
	if err := json.Unmarshal(envelope.Prices, &pairs); err != nil {
		return nil, fmt.Errorf("%w: prices is not a list of pairs: %v", ErrBadPayload, err)
	}
	points := make([]model.RawPoint, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: prices[%d] has %d elements", ErrBadPayload, i, len(pair))
		}
		points = append(points, model.RawPoint{TimestampMS: int64(pair[0]), Price: pair[1]})
	}
	return points, nil
}

func snippet(body []byte) string {
	const max = 256
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
