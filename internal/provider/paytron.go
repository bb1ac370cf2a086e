// Package provider implements clients for upstream wholesale exchange rate APIs.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

var _ RatesProvider = (*PaytronProvider)(nil)

// PaytronProvider fetches wholesale rates from the Paytron public rate API.
type PaytronProvider struct {
	baseURL string
	client  *http.Client
}

// NewPaytronProvider creates a new PaytronProvider with the given configuration.
func NewPaytronProvider(baseURL string, timeoutSec int) *PaytronProvider {
	if baseURL == "" {
		baseURL = "https://rates.staging.api.paytron.com"
	}
	return &PaytronProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// paytron public rate API response structure. Only retailRate is consumed;
// wholesaleRate/indicative/validUntil are informational.
type paytronResponse struct {
	ID           string      `json:"id"`
	SellCurrency string      `json:"sellCurrency"`
	BuyCurrency  string      `json:"buyCurrency"`
	Indicative   bool        `json:"indicative"`
	RetailRate   json.Number `json:"retailRate"`
	Wholesale    json.Number `json:"wholesaleRate"`
	ValidUntil   string      `json:"validUntil"`
}

func (p *PaytronProvider) rateURL(sell, buy string) string {
	q := url.Values{}
	q.Set("sellCurrency", sell)
	q.Set("buyCurrency", buy)
	return fmt.Sprintf("%s/rate/public?%s", p.baseURL, q.Encode())
}

// GetRate fetches the wholesale rate for the given sell/buy currency pair.
func (p *PaytronProvider) GetRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.rateURL(sellCurrency, buyCurrency), http.NoBody)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rate API request creation failed: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rate API request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return decimal.Decimal{}, fmt.Errorf("rate API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result paytronResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to decode rate API response: %w", err)
	}

	// The API echoes the pair back; a mismatched or degenerate pair carries no rate we can use.
	if result.SellCurrency != sellCurrency || result.BuyCurrency != buyCurrency || result.SellCurrency == result.BuyCurrency {
		return decimal.Decimal{}, fmt.Errorf("%w: response pair %s/%s does not match %s/%s",
			ErrNoRate, result.SellCurrency, result.BuyCurrency, sellCurrency, buyCurrency)
	}

	rate, err := decimal.NewFromString(result.RetailRate.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid retailRate %q: %w", result.RetailRate.String(), err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: non-positive retailRate %s for %s/%s",
			ErrNoRate, rate, sellCurrency, buyCurrency)
	}

	return rate, nil
}
