// Package quote implements a client for the Finnhub market-data REST API.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lfreitas/stocktrade/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production Finnhub API endpoint.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Client is a Finnhub API client. Each call is a single best-effort
// round trip: no retries, no caching.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a Finnhub client. baseURL falls back to
// DefaultBaseURL when empty.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// profileResponse mirrors Finnhub's /stock/profile2 payload. Finnhub
// returns an empty object for unknown symbols.
type profileResponse struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

// quoteResponse mirrors Finnhub's /quote payload. Finnhub returns all
// zeros for unknown symbols.
type quoteResponse struct {
	Current decimal.Decimal `json:"c"`
}

// CompanyProfile fetches company metadata for a symbol. It returns
// (nil, nil) when the provider has no profile for the symbol.
func (c *Client) CompanyProfile(ctx context.Context, symbol string) (*domain.CompanyProfile, error) {
	var res profileResponse
	if err := c.get(ctx, "/stock/profile2", symbol, &res); err != nil {
		return nil, err
	}
	if res.Name == "" && res.Ticker == "" {
		return nil, nil
	}
	return &domain.CompanyProfile{
		Ticker: res.Ticker,
		Name:   res.Name,
	}, nil
}

// PriceQuote fetches the current price for a symbol. It returns
// (nil, nil) when the provider has no quote for the symbol (Finnhub
// reports a zero price in that case).
func (c *Client) PriceQuote(ctx context.Context, symbol string) (*domain.PriceQuote, error) {
	var res quoteResponse
	if err := c.get(ctx, "/quote", symbol, &res); err != nil {
		return nil, err
	}
	if res.Current.IsZero() {
		return nil, nil
	}
	return &domain.PriceQuote{Current: res.Current}, nil
}

// get performs a GET against the given API path with symbol and token
// query parameters and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path, symbol string, out any) error {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("finnhub: GET %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("finnhub: decoding %s response: %w", path, err)
	}
	return nil
}
