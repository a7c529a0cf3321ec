package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderKind indicates whether an order is a buy or a sell.
type OrderKind string

const (
	OrderKindBuy  OrderKind = "buy"
	OrderKindSell OrderKind = "sell"
)

// Quantity and price bounds enforced on order submission.
const (
	MinQuantity int64 = 1
	MaxQuantity int64 = 100000
)

// MaxPrice is a var only because decimal.Decimal cannot be a constant.
var MaxPrice = decimal.NewFromInt(100000)

// Order represents a buy or sell instruction for a quantity of a stock
// at a price, timestamped server-side at creation. Orders are immutable
// once created; there are no update or delete operations.
type Order struct {
	ID        string
	Kind      OrderKind
	Symbol    string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	CreatedAt time.Time
}

// Total returns quantity × price.
func (o *Order) Total() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(o.Quantity))
}
