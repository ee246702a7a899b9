package repository

import (
	"errors"
	"fmt"

	"go-invsys/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsufficientStockError reports a debit that exceeds the quantity on
// hand. It names the offending item so callers can surface it.
type InsufficientStockError struct {
	WarehouseID uuid.UUID
	ItemID      uuid.UUID
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d", e.ItemID, e.Requested, e.Available)
}

// StockRepository is the single choke point for stock mutation.
// Credit and Debit take the caller's transaction handle so the stock
// effect always commits or rolls back together with the lifecycle
// event that triggered it.
type StockRepository interface {
	Credit(tx *gorm.DB, warehouseID, itemID uuid.UUID, qty int) error
	Debit(tx *gorm.DB, warehouseID, itemID uuid.UUID, qty int) error
	Quantity(tx *gorm.DB, warehouseID, itemID uuid.UUID) (int, error)
	ListForWarehouse(warehouseID uuid.UUID) ([]model.WarehouseStockResponse, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

// Credit upserts the (warehouse, item) entry: created lazily on first
// credit, incremented in place afterwards. The row is locked first so
// concurrent writers serialize on it.
func (r *stockRepo) Credit(tx *gorm.DB, warehouseID, itemID uuid.UUID, qty int) error {
	var entry model.StockEntry
	err := forUpdate(tx).First(&entry, "warehouse_id = ? AND item_id = ?", warehouseID, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = model.StockEntry{
			WarehouseID:     warehouseID,
			ItemID:          itemID,
			QuantityInStock: qty,
		}
		// The unique (warehouse_id, item_id) index backstops a
		// concurrent lazy create; the loser aborts its transaction.
		return tx.Create(&entry).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&entry).Update("quantity_in_stock", entry.QuantityInStock+qty).Error
}

// Debit decrements the entry under lock. A missing entry or a quantity
// shortfall fails with InsufficientStockError and leaves the row
// untouched; the caller's transaction is expected to roll back.
func (r *stockRepo) Debit(tx *gorm.DB, warehouseID, itemID uuid.UUID, qty int) error {
	var entry model.StockEntry
	err := forUpdate(tx).First(&entry, "warehouse_id = ? AND item_id = ?", warehouseID, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &InsufficientStockError{WarehouseID: warehouseID, ItemID: itemID, Requested: qty, Available: 0}
	}
	if err != nil {
		return err
	}
	if entry.QuantityInStock < qty {
		return &InsufficientStockError{
			WarehouseID: warehouseID,
			ItemID:      itemID,
			Requested:   qty,
			Available:   entry.QuantityInStock,
		}
	}
	return tx.Model(&entry).Update("quantity_in_stock", entry.QuantityInStock-qty).Error
}

// Quantity returns the on-hand quantity, 0 if no entry exists yet
func (r *stockRepo) Quantity(tx *gorm.DB, warehouseID, itemID uuid.UUID) (int, error) {
	var entry model.StockEntry
	err := tx.First(&entry, "warehouse_id = ? AND item_id = ?", warehouseID, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return entry.QuantityInStock, nil
}

func (r *stockRepo) ListForWarehouse(warehouseID uuid.UUID) ([]model.WarehouseStockResponse, error) {
	var rows []model.WarehouseStockResponse
	err := r.db.Model(&model.StockEntry{}).
		Select("warehouse_stock.item_id, items.name AS item_name, items.item_price, warehouse_stock.quantity_in_stock").
		Joins("LEFT JOIN items ON items.id = warehouse_stock.item_id").
		Where("warehouse_stock.warehouse_id = ?", warehouseID).
		Order("items.name ASC").
		Scan(&rows).Error
	return rows, err
}
