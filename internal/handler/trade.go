package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lfreitas/stocktrade/internal/domain"
	"github.com/lfreitas/stocktrade/internal/service"
	"github.com/shopspring/decimal"
)

// TradeHandler handles the trade screen and order form submissions.
type TradeHandler struct {
	orderSvc        *service.OrderService
	quoteSvc        *service.QuoteService
	defaultSymbol   string
	defaultQuantity int64
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(orderSvc *service.OrderService, quoteSvc *service.QuoteService, defaultSymbol string, defaultQuantity int64) *TradeHandler {
	return &TradeHandler{
		orderSvc:        orderSvc,
		quoteSvc:        quoteSvc,
		defaultSymbol:   defaultSymbol,
		defaultQuantity: defaultQuantity,
	}
}

// tradeForm carries the raw form input so a failed submission is
// redisplayed exactly as the user typed it.
type tradeForm struct {
	Symbol   string
	Name     string
	Quantity string
	Price    string
}

// tradePage is the template data for trade.html.
type tradePage struct {
	Quote  domain.QuoteSnapshot
	Form   tradeForm
	Errors []string
}

// orderRow is a single rendered order in the listing page.
type orderRow struct {
	ID        string
	Symbol    string
	Name      string
	Quantity  int64
	Price     string
	Total     string
	CreatedAt string
}

// ordersPage is the template data for orders.html.
type ordersPage struct {
	BuyOrders  []orderRow
	SellOrders []orderRow
}

// ShowTrade handles GET / and GET /Trade. It renders the trade screen
// with a live quote for the default symbol; when the provider has no
// data the page degrades to the bare symbol.
func (h *TradeHandler) ShowTrade(w http.ResponseWriter, r *http.Request) {
	snap := h.quoteSvc.Snapshot(r.Context(), h.defaultSymbol)

	form := tradeForm{
		Symbol:   snap.Symbol,
		Name:     snap.Name,
		Quantity: strconv.FormatInt(h.defaultQuantity, 10),
	}
	if snap.HasPrice() {
		form.Price = snap.Price.String()
	}

	renderHTML(w, http.StatusOK, "trade.html", tradePage{Quote: snap, Form: form})
}

// SubmitBuyOrder handles POST /Trade/BuyOrder.
func (h *TradeHandler) SubmitBuyOrder(w http.ResponseWriter, r *http.Request) {
	h.submitOrder(w, r, h.orderSvc.CreateBuyOrder)
}

// SubmitSellOrder handles POST /Trade/SellOrder.
func (h *TradeHandler) SubmitSellOrder(w http.ResponseWriter, r *http.Request) {
	h.submitOrder(w, r, h.orderSvc.CreateSellOrder)
}

// submitOrder binds the form, forwards to the workflow, and either
// redirects to the listing page or redisplays the form with the
// violation list and the original input preserved.
func (h *TradeHandler) submitOrder(w http.ResponseWriter, r *http.Request, create func(service.CreateOrderRequest) (*domain.Order, error)) {
	if err := r.ParseForm(); err != nil {
		h.redisplay(w, r, tradeForm{}, []string{"malformed form submission"})
		return
	}

	form := tradeForm{
		Symbol:   r.PostFormValue("stockSymbol"),
		Name:     r.PostFormValue("stockName"),
		Quantity: r.PostFormValue("quantity"),
		Price:    r.PostFormValue("price"),
	}

	var bindErrors []string
	quantity, err := strconv.ParseInt(form.Quantity, 10, 64)
	if err != nil {
		bindErrors = append(bindErrors, "quantity must be an integer")
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		bindErrors = append(bindErrors, "price must be a decimal number")
	}
	if len(bindErrors) > 0 {
		h.redisplay(w, r, form, bindErrors)
		return
	}

	_, err = create(service.CreateOrderRequest{
		Symbol:   form.Symbol,
		Name:     form.Name,
		Quantity: quantity,
		Price:    price,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			h.redisplay(w, r, form, validationErr.Violations)
			return
		}
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/Trade/Orders", http.StatusSeeOther)
}

// redisplay re-renders the trade screen after a failed submission.
func (h *TradeHandler) redisplay(w http.ResponseWriter, r *http.Request, form tradeForm, errs []string) {
	snap := h.quoteSvc.Snapshot(r.Context(), h.defaultSymbol)
	renderHTML(w, http.StatusUnprocessableEntity, "trade.html", tradePage{
		Quote:  snap,
		Form:   form,
		Errors: errs,
	})
}

// ListOrders handles GET /Trade/Orders.
func (h *TradeHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page := ordersPage{
		BuyOrders:  buildOrderRows(h.orderSvc.ListBuyOrders()),
		SellOrders: buildOrderRows(h.orderSvc.ListSellOrders()),
	}
	renderHTML(w, http.StatusOK, "orders.html", page)
}

// buildOrderRows converts domain orders to listing rows.
func buildOrderRows(orders []*domain.Order) []orderRow {
	rows := make([]orderRow, len(orders))
	for i, o := range orders {
		rows[i] = orderRow{
			ID:        o.ID,
			Symbol:    o.Symbol,
			Name:      o.Name,
			Quantity:  o.Quantity,
			Price:     o.Price.String(),
			Total:     o.Total().String(),
			CreatedAt: o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	return rows
}
