package price

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// CelestiaID is the CoinGecko coin id of TIA.
const CelestiaID = "celestia"

const coinGeckoURL = "https://api.coingecko.com/api/v3"

// Fetcher retrieves token prices from CoinGecko.
type Fetcher struct {
	client   *resty.Client
	baseURL  string
	currency string
}

// NewFetcher creates a new price fetcher.
func NewFetcher(currency string) *Fetcher {
	if currency == "" {
		currency = "usd"
	}
	return &Fetcher{
		client:   resty.New().SetTimeout(10 * time.Second),
		baseURL:  coinGeckoURL,
		currency: strings.ToLower(currency),
	}
}

// Currency returns the lowercased quote currency.
func (f *Fetcher) Currency() string { return f.currency }

// TiaPrice returns the price of one TIA in the configured currency.
func (f *Fetcher) TiaPrice(ctx context.Context) (decimal.Decimal, error) {
	return f.GetPrice(ctx, CelestiaID)
}

// GetPrice returns the price of a CoinGecko coin id.
func (f *Fetcher) GetPrice(ctx context.Context, id string) (decimal.Decimal, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("ids", id).
		SetQueryParam("vs_currencies", f.currency).
		Get(f.baseURL + "/simple/price")
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetching prices: %w", err)
	}
	if resp.IsError() {
		return decimal.Zero, fmt.Errorf("fetching prices: status %d", resp.StatusCode())
	}

	// Response: {"celestia":{"usd":5.43}}
	var raw map[string]map[string]json.Number
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return decimal.Zero, fmt.Errorf("parsing price response: %w", err)
	}
	p, ok := raw[id][f.currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("price not available for: %s", id)
	}
	d, err := decimal.NewFromString(p.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing price %q: %w", p, err)
	}
	return d, nil
}
