package domain

import "github.com/shopspring/decimal"

// CompanyProfile is the company metadata returned by the market-data
// provider for a symbol.
type CompanyProfile struct {
	Ticker string
	Name   string
}

// PriceQuote is the current price returned by the market-data provider
// for a symbol.
type PriceQuote struct {
	Current decimal.Decimal
}

// QuoteSnapshot is the merged, possibly degraded view of a symbol's
// market data, fetched fresh per request and never persisted. An empty
// Name or a nil Price means the provider had no data for that field.
type QuoteSnapshot struct {
	Symbol string
	Name   string
	Price  *decimal.Decimal
}

// HasName reports whether the provider supplied a company name.
func (q QuoteSnapshot) HasName() bool {
	return q.Name != ""
}

// HasPrice reports whether the provider supplied a current price.
func (q QuoteSnapshot) HasPrice() bool {
	return q.Price != nil
}
