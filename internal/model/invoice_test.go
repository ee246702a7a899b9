package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSettlementStatus(t *testing.T) {
	tests := []struct {
		name      string
		total     string
		collected string
		want      InvoiceStatus
	}{
		{"nothing collected", "100.00", "0", InvoiceStatusPendingPayment},
		{"partially collected", "100.00", "60.00", InvoiceStatusPartiallySettled},
		{"exactly settled", "100.00", "100.00", InvoiceStatusSettled},
		{"one cent short", "100.00", "99.99", InvoiceStatusPartiallySettled},
		{"one cent over", "100.00", "100.01", InvoiceStatusSettled},
		{"smallest partial", "100.00", "0.01", InvoiceStatusPartiallySettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SettlementStatus(d(tt.total), d(tt.collected))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportOrderTotal(t *testing.T) {
	lines := []ImportOrderLine{
		{Quantity: 2, UnitPrice: d("3.00")},
		{Quantity: 1, UnitPrice: d("5.00")},
	}
	assert.True(t, d("11.00").Equal(ImportOrderTotal(lines)))
	assert.True(t, decimal.Zero.Equal(ImportOrderTotal(nil)))
}

func TestInvoiceSubtotal(t *testing.T) {
	lines := []InvoiceLine{
		{Quantity: 3, UnitPrice: d("10.00"), LineTotal: d("30.00")},
		{Quantity: 1, UnitPrice: d("0.99"), LineTotal: d("0.99")},
	}
	assert.True(t, d("30.99").Equal(InvoiceSubtotal(lines)))
}

func TestCollectedTotal(t *testing.T) {
	collections := []Collection{
		{Amount: d("60.00")},
		{Amount: d("40.00")},
	}
	assert.True(t, d("100.00").Equal(CollectedTotal(collections)))
	assert.True(t, decimal.Zero.Equal(CollectedTotal(nil)))
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
}
