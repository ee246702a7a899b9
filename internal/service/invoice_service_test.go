package service

import (
	"testing"

	"go-invsys/internal/model"
	"go-invsys/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceDeferredCreate(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	customer := env.seedCustomer(t, "Smith & Co")
	item := env.seedItem(t, "Bolt", "25.00")
	env.seedStock(t, warehouse, item, 10)

	invoice, err := env.invoices.Create(&CreateInvoiceRequest{
		WarehouseID:   warehouse.ID,
		CustomerID:    customer.ID,
		PaymentMethod: model.PaymentDeferred,
		InvoiceDate:   "2026-02-01",
		Lines: []InvoiceLineRequest{
			{ItemID: item.ID, Quantity: 4, UnitPrice: dec(t, "25.00")},
		},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, model.InvoiceStatusPendingPayment, invoice.Status)
	assert.True(t, dec(t, "100.00").Equal(invoice.Subtotal))
	assert.True(t, dec(t, "100.00").Equal(invoice.Total))
	assert.Empty(t, invoice.Collections)

	// Stock is debited at creation
	assert.Equal(t, 6, env.quantity(t, warehouse, item))

	detail, err := env.invoices.GetByID(invoice.ID)
	require.NoError(t, err)
	assert.True(t, dec(t, "100.00").Equal(detail.RemainingBalance))
}

func TestInvoiceCashSettlesImmediately(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	customer := env.seedCustomer(t, "Smith & Co")
	item := env.seedItem(t, "Bolt", "25.00")
	env.seedStock(t, warehouse, item, 10)

	invoice, err := env.invoices.Create(&CreateInvoiceRequest{
		WarehouseID:   warehouse.ID,
		CustomerID:    customer.ID,
		PaymentMethod: model.PaymentCash,
		InvoiceDate:   "2026-02-01",
		Discount:      dec(t, "5.00"),
		Lines: []InvoiceLineRequest{
			{ItemID: item.ID, Quantity: 2, UnitPrice: dec(t, "25.00")},
		},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, model.InvoiceStatusSettled, invoice.Status)
	assert.True(t, dec(t, "50.00").Equal(invoice.Subtotal))
	assert.True(t, dec(t, "45.00").Equal(invoice.Total))

	// Cash auto-creates one collection for the full total
	require.Len(t, invoice.Collections, 1)
	assert.True(t, dec(t, "45.00").Equal(invoice.Collections[0].Amount))

	detail, err := env.invoices.GetByID(invoice.ID)
	require.NoError(t, err)
	assert.True(t, detail.RemainingBalance.IsZero())
}

func TestInvoiceInsufficientStockRollsBack(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	customer := env.seedCustomer(t, "Smith & Co")
	item := env.seedItem(t, "Bolt", "25.00")
	env.seedStock(t, warehouse, item, 6)

	_, err := env.invoices.Create(&CreateInvoiceRequest{
		WarehouseID:   warehouse.ID,
		CustomerID:    customer.ID,
		PaymentMethod: model.PaymentCash,
		InvoiceDate:   "2026-02-01",
		Lines: []InvoiceLineRequest{
			{ItemID: item.ID, Quantity: 7, UnitPrice: dec(t, "25.00")},
		},
	}, uuid.New())

	var stockErr *repository.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 7, stockErr.Requested)
	assert.Equal(t, 6, stockErr.Available)

	// No partial application: nothing was written anywhere
	assert.Equal(t, 6, env.quantity(t, warehouse, item))
	var invoices, lines, collections int64
	require.NoError(t, env.db.Model(&model.Invoice{}).Count(&invoices).Error)
	require.NoError(t, env.db.Model(&model.InvoiceLine{}).Count(&lines).Error)
	require.NoError(t, env.db.Model(&model.Collection{}).Count(&collections).Error)
	assert.EqualValues(t, 0, invoices)
	assert.EqualValues(t, 0, lines)
	assert.EqualValues(t, 0, collections)
}

func TestInvoiceMultiLineShortfallRollsBack(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	customer := env.seedCustomer(t, "Smith & Co")
	bolt := env.seedItem(t, "Bolt", "2.00")
	nut := env.seedItem(t, "Nut", "1.00")
	env.seedStock(t, warehouse, bolt, 10)
	env.seedStock(t, warehouse, nut, 1)

	// Second line is short, so the first line's debit must not survive
	_, err := env.invoices.Create(&CreateInvoiceRequest{
		WarehouseID:   warehouse.ID,
		CustomerID:    customer.ID,
		PaymentMethod: model.PaymentDeferred,
		InvoiceDate:   "2026-02-01",
		Lines: []InvoiceLineRequest{
			{ItemID: bolt.ID, Quantity: 5, UnitPrice: dec(t, "2.00")},
			{ItemID: nut.ID, Quantity: 2, UnitPrice: dec(t, "1.00")},
		},
	}, uuid.New())

	var stockErr *repository.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, nut.ID, stockErr.ItemID)

	assert.Equal(t, 10, env.quantity(t, warehouse, bolt))
	assert.Equal(t, 1, env.quantity(t, warehouse, nut))
}

func TestInvoiceDiscountExceedsSubtotal(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	customer := env.seedCustomer(t, "Smith & Co")
	item := env.seedItem(t, "Bolt", "25.00")
	env.seedStock(t, warehouse, item, 10)

	_, err := env.invoices.Create(&CreateInvoiceRequest{
		WarehouseID:   warehouse.ID,
		CustomerID:    customer.ID,
		PaymentMethod: model.PaymentDeferred,
		InvoiceDate:   "2026-02-01",
		Discount:      dec(t, "60.00"),
		Lines: []InvoiceLineRequest{
			{ItemID: item.ID, Quantity: 2, UnitPrice: dec(t, "25.00")},
		},
	}, uuid.New())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// The whole transaction rolled back
	assert.Equal(t, 10, env.quantity(t, warehouse, item))
	var invoices int64
	require.NoError(t, env.db.Model(&model.Invoice{}).Count(&invoices).Error)
	assert.EqualValues(t, 0, invoices)
}

func TestInvoiceCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	customer := env.seedCustomer(t, "Smith & Co")
	item := env.seedItem(t, "Bolt", "25.00")
	env.seedStock(t, warehouse, item, 10)

	line := InvoiceLineRequest{ItemID: item.ID, Quantity: 1, UnitPrice: dec(t, "25.00")}

	t.Run("negative discount", func(t *testing.T) {
		_, err := env.invoices.Create(&CreateInvoiceRequest{
			WarehouseID:   warehouse.ID,
			CustomerID:    customer.ID,
			PaymentMethod: model.PaymentCash,
			InvoiceDate:   "2026-02-01",
			Discount:      dec(t, "-1.00"),
			Lines:         []InvoiceLineRequest{line},
		}, uuid.New())
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("bad payment method", func(t *testing.T) {
		_, err := env.invoices.Create(&CreateInvoiceRequest{
			WarehouseID:   warehouse.ID,
			CustomerID:    customer.ID,
			PaymentMethod: "credit",
			InvoiceDate:   "2026-02-01",
			Lines:         []InvoiceLineRequest{line},
		}, uuid.New())
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := env.invoices.Create(&CreateInvoiceRequest{
			WarehouseID:   warehouse.ID,
			CustomerID:    uuid.New(),
			PaymentMethod: model.PaymentCash,
			InvoiceDate:   "2026-02-01",
			Lines:         []InvoiceLineRequest{line},
		}, uuid.New())
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}
