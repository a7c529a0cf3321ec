package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrder_Total(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		price    string
		want     string
	}{
		{"whole dollars", 10, "250.00", "2500.00"},
		{"cents", 3, "0.01", "0.03"},
		{"single share", 1, "99999.99", "99999.99"},
		{"max bounds", 100000, "100000", "10000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Quantity: tt.quantity, Price: decimal.RequireFromString(tt.price)}
			if got := o.Total(); !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Total() = %s, want %s", got, tt.want)
			}
		})
	}
}
