package service

import (
	"context"
	"log/slog"

	"github.com/lfreitas/stocktrade/internal/domain"
)

// MarketDataClient retrieves company metadata and price quotes from an
// external provider. Both methods return (nil, nil) when the provider
// has no data for the symbol.
type MarketDataClient interface {
	CompanyProfile(ctx context.Context, symbol string) (*domain.CompanyProfile, error)
	PriceQuote(ctx context.Context, symbol string) (*domain.PriceQuote, error)
}

// QuoteService merges profile and price data into a display snapshot.
// It is the degradation boundary: provider failures never propagate,
// the snapshot just omits whatever could not be fetched.
type QuoteService struct {
	client MarketDataClient
	logger *slog.Logger
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(client MarketDataClient, logger *slog.Logger) *QuoteService {
	return &QuoteService{client: client, logger: logger}
}

// Snapshot fetches a fresh quote snapshot for the symbol. Fields the
// provider could not supply are left absent.
func (s *QuoteService) Snapshot(ctx context.Context, symbol string) domain.QuoteSnapshot {
	snap := domain.QuoteSnapshot{Symbol: symbol}

	profile, err := s.client.CompanyProfile(ctx, symbol)
	switch {
	case err != nil:
		s.logger.Debug("company profile unavailable",
			slog.String("symbol", symbol),
			slog.String("error", err.Error()),
		)
	case profile != nil:
		snap.Name = profile.Name
	}

	priceQuote, err := s.client.PriceQuote(ctx, symbol)
	switch {
	case err != nil:
		s.logger.Debug("price quote unavailable",
			slog.String("symbol", symbol),
			slog.String("error", err.Error()),
		)
	case priceQuote != nil:
		price := priceQuote.Current
		snap.Price = &price
	}

	return snap
}
