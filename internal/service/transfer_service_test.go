package service

import (
	"testing"

	"go-invsys/internal/model"
	"go-invsys/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferCompleteMovesStock(t *testing.T) {
	env := newTestEnv(t)
	source := env.seedWarehouse(t, "Central")
	destination := env.seedWarehouse(t, "Branch")
	item := env.seedItem(t, "Bolt", "3.00")
	env.seedStock(t, source, item, 10)

	transfer, err := env.transfers.Create(&CreateTransferRequest{
		FromWarehouseID: source.ID,
		ToWarehouseID:   destination.ID,
		Lines: []TransferLineRequest{
			{ItemID: item.ID, Quantity: 4},
		},
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, transfer.Status)

	// Creation records intent only
	assert.Equal(t, 10, env.quantity(t, source, item))
	assert.Equal(t, 0, env.quantity(t, destination, item))

	completed, err := env.transfers.Complete(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, completed.Status)
	assert.Equal(t, 6, env.quantity(t, source, item))
	assert.Equal(t, 4, env.quantity(t, destination, item))

	// Replay does not move stock again
	_, err = env.transfers.Complete(transfer.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 6, env.quantity(t, source, item))
	assert.Equal(t, 4, env.quantity(t, destination, item))
}

func TestTransferSameWarehouseRejected(t *testing.T) {
	env := newTestEnv(t)
	warehouse := env.seedWarehouse(t, "Central")
	item := env.seedItem(t, "Bolt", "3.00")

	_, err := env.transfers.Create(&CreateTransferRequest{
		FromWarehouseID: warehouse.ID,
		ToWarehouseID:   warehouse.ID,
		Lines: []TransferLineRequest{
			{ItemID: item.ID, Quantity: 1},
		},
	}, uuid.New())
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestTransferCompleteInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	source := env.seedWarehouse(t, "Central")
	destination := env.seedWarehouse(t, "Branch")
	item := env.seedItem(t, "Bolt", "3.00")
	env.seedStock(t, source, item, 3)

	// Intent may exceed current availability; completion decides
	transfer, err := env.transfers.Create(&CreateTransferRequest{
		FromWarehouseID: source.ID,
		ToWarehouseID:   destination.ID,
		Lines: []TransferLineRequest{
			{ItemID: item.ID, Quantity: 5},
		},
	}, uuid.New())
	require.NoError(t, err)

	_, err = env.transfers.Complete(transfer.ID)
	var stockErr *repository.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)

	// The failed attempt changed nothing: both warehouses untouched,
	// request still pending
	assert.Equal(t, 3, env.quantity(t, source, item))
	assert.Equal(t, 0, env.quantity(t, destination, item))
	current, err := env.transfers.GetByID(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, current.Status)

	// After restocking the same request completes
	env.seedStock(t, source, item, 2)
	_, err = env.transfers.Complete(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, env.quantity(t, source, item))
	assert.Equal(t, 5, env.quantity(t, destination, item))
}

func TestTransferCancel(t *testing.T) {
	env := newTestEnv(t)
	source := env.seedWarehouse(t, "Central")
	destination := env.seedWarehouse(t, "Branch")
	item := env.seedItem(t, "Bolt", "3.00")
	env.seedStock(t, source, item, 10)

	transfer, err := env.transfers.Create(&CreateTransferRequest{
		FromWarehouseID: source.ID,
		ToWarehouseID:   destination.ID,
		Lines: []TransferLineRequest{
			{ItemID: item.ID, Quantity: 4},
		},
	}, uuid.New())
	require.NoError(t, err)

	cancelled, err := env.transfers.Cancel(transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 10, env.quantity(t, source, item))

	_, err = env.transfers.Complete(transfer.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransferNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.transfers.Complete(uuid.New())
	assert.ErrorIs(t, err, ErrTransferNotFound)
	_, err = env.transfers.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrTransferNotFound)
}
