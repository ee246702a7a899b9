package service

import (
	"testing"

	"go-invsys/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportOrderCreateComputesTotal(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	vendor := env.seedVendor(t, "Acme Supplies")
	bolt := env.seedItem(t, "Bolt", "3.00")
	nut := env.seedItem(t, "Nut", "5.00")

	order, err := env.orders.Create(&CreateImportOrderRequest{
		WarehouseID: warehouse.ID,
		VendorID:    vendor.ID,
		OrderDate:   "2026-01-15",
		Lines: []ImportOrderLineRequest{
			{ItemID: bolt.ID, Quantity: 2, UnitPrice: dec(t, "3.00")},
			{ItemID: nut.ID, Quantity: 1, UnitPrice: dec(t, "5.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.True(t, dec(t, "11.00").Equal(order.TotalCost), "total_cost = %s", order.TotalCost)
	assert.Len(t, order.Lines, 2)

	// Creation alone never touches stock
	assert.Equal(t, 0, env.quantity(t, warehouse, bolt))
	assert.Equal(t, 0, env.quantity(t, warehouse, nut))
}

func TestImportOrderCompleteCreditsStockOnce(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	vendor := env.seedVendor(t, "Acme Supplies")
	item := env.seedItem(t, "Bolt", "3.00")

	order, err := env.orders.Create(&CreateImportOrderRequest{
		WarehouseID: warehouse.ID,
		VendorID:    vendor.ID,
		OrderDate:   "2026-01-15",
		Lines: []ImportOrderLineRequest{
			{ItemID: item.ID, Quantity: 7, UnitPrice: dec(t, "3.00")},
		},
	})
	require.NoError(t, err)

	completed, err := env.orders.Complete(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, completed.Status)
	assert.Equal(t, 7, env.quantity(t, warehouse, item))

	// Replaying the completion is rejected and credits nothing
	_, err = env.orders.Complete(order.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 7, env.quantity(t, warehouse, item))
}

func TestImportOrderCancel(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	vendor := env.seedVendor(t, "Acme Supplies")
	item := env.seedItem(t, "Bolt", "3.00")

	order, err := env.orders.Create(&CreateImportOrderRequest{
		WarehouseID: warehouse.ID,
		VendorID:    vendor.ID,
		OrderDate:   "2026-01-15",
		Lines: []ImportOrderLineRequest{
			{ItemID: item.ID, Quantity: 5, UnitPrice: dec(t, "3.00")},
		},
	})
	require.NoError(t, err)

	cancelled, err := env.orders.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 0, env.quantity(t, warehouse, item))

	// Cancelled is terminal
	_, err = env.orders.Complete(order.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = env.orders.Cancel(order.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestImportOrderCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Main")
	vendor := env.seedVendor(t, "Acme Supplies")
	item := env.seedItem(t, "Bolt", "3.00")

	line := ImportOrderLineRequest{ItemID: item.ID, Quantity: 1, UnitPrice: dec(t, "3.00")}

	t.Run("no lines", func(t *testing.T) {
		_, err := env.orders.Create(&CreateImportOrderRequest{
			WarehouseID: warehouse.ID,
			VendorID:    vendor.ID,
			OrderDate:   "2026-01-15",
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := env.orders.Create(&CreateImportOrderRequest{
			WarehouseID: warehouse.ID,
			VendorID:    vendor.ID,
			OrderDate:   "15/01/2026",
			Lines:       []ImportOrderLineRequest{line},
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("negative unit price", func(t *testing.T) {
		_, err := env.orders.Create(&CreateImportOrderRequest{
			WarehouseID: warehouse.ID,
			VendorID:    vendor.ID,
			OrderDate:   "2026-01-15",
			Lines: []ImportOrderLineRequest{
				{ItemID: item.ID, Quantity: 1, UnitPrice: dec(t, "-1.00")},
			},
		})
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown warehouse", func(t *testing.T) {
		_, err := env.orders.Create(&CreateImportOrderRequest{
			WarehouseID: uuid.New(),
			VendorID:    vendor.ID,
			OrderDate:   "2026-01-15",
			Lines:       []ImportOrderLineRequest{line},
		})
		assert.ErrorIs(t, err, ErrWarehouseNotFound)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		_, err := env.orders.Create(&CreateImportOrderRequest{
			WarehouseID: warehouse.ID,
			VendorID:    uuid.New(),
			OrderDate:   "2026-01-15",
			Lines:       []ImportOrderLineRequest{line},
		})
		assert.ErrorIs(t, err, ErrVendorNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := env.orders.Create(&CreateImportOrderRequest{
			WarehouseID: warehouse.ID,
			VendorID:    vendor.ID,
			OrderDate:   "2026-01-15",
			Lines: []ImportOrderLineRequest{
				{ItemID: uuid.New(), Quantity: 1, UnitPrice: dec(t, "3.00")},
			},
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestImportOrderGetByIDNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orders.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
