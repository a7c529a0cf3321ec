package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lfreitas/stocktrade/internal/domain"
	"github.com/lfreitas/stocktrade/internal/store"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents the input for order submission. The
// SubmittedAt field is never trusted: the workflow overwrites it with
// the current server time before validation.
type CreateOrderRequest struct {
	Symbol      string
	Name        string
	Quantity    int64
	Price       decimal.Decimal
	SubmittedAt time.Time
}

// OrderService is the order-management workflow: it validates a
// submission, timestamps it, persists it, and lists past orders.
type OrderService struct {
	orderStore *store.OrderStore
}

// NewOrderService creates a new OrderService backed by the given store.
func NewOrderService(orderStore *store.OrderStore) *OrderService {
	return &OrderService{orderStore: orderStore}
}

// CreateBuyOrder validates and persists a buy order.
func (s *OrderService) CreateBuyOrder(req CreateOrderRequest) (*domain.Order, error) {
	return s.create(domain.OrderKindBuy, req)
}

// CreateSellOrder validates and persists a sell order.
func (s *OrderService) CreateSellOrder(req CreateOrderRequest) (*domain.Order, error) {
	return s.create(domain.OrderKindSell, req)
}

// create assigns the server timestamp, validates the request, and on
// success stores a new immutable order with a fresh identity. On
// validation failure nothing is stored.
func (s *OrderService) create(kind domain.OrderKind, req CreateOrderRequest) (*domain.Order, error) {
	req.SubmittedAt = time.Now().UTC()

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	name := strings.TrimSpace(req.Name)

	var violations []string
	if symbol == "" {
		violations = append(violations, "stock symbol must not be empty")
	}
	if name == "" {
		violations = append(violations, "stock name must not be empty")
	}
	if req.Quantity < domain.MinQuantity || req.Quantity > domain.MaxQuantity {
		violations = append(violations, fmt.Sprintf("quantity must be between %d and %d", domain.MinQuantity, domain.MaxQuantity))
	}
	if req.Price.Sign() <= 0 || req.Price.GreaterThan(domain.MaxPrice) {
		violations = append(violations, fmt.Sprintf("price must be greater than 0 and at most %s", domain.MaxPrice))
	}
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	order := &domain.Order{
		ID:        uuid.New().String(),
		Kind:      kind,
		Symbol:    symbol,
		Name:      name,
		Quantity:  req.Quantity,
		Price:     req.Price,
		CreatedAt: req.SubmittedAt,
	}
	s.orderStore.Add(order)

	return order, nil
}

// ListBuyOrders returns all buy orders in creation order.
func (s *OrderService) ListBuyOrders() []*domain.Order {
	return s.orderStore.List(domain.OrderKindBuy)
}

// ListSellOrders returns all sell orders in creation order.
func (s *OrderService) ListSellOrders() []*domain.Order {
	return s.orderStore.List(domain.OrderKindSell)
}
