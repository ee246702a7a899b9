package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntry is the per-(warehouse, item) on-hand quantity record.
// Created lazily on first credit; quantity_in_stock must never go negative.
type StockEntry struct {
	BaseModel
	WarehouseID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_item" json:"warehouse_id"`
	ItemID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_item" json:"item_id"`
	QuantityInStock int        `gorm:"not null;default:0;check:quantity_in_stock >= 0" json:"quantity_in_stock"`
	Warehouse       *Warehouse `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE" json:"warehouse,omitempty"`
	Item            *Item      `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
}

// TableName specifies the table name for GORM
func (StockEntry) TableName() string {
	return "warehouse_stock"
}

// WarehouseStockResponse is the denormalized stock row for display
type WarehouseStockResponse struct {
	ItemID          uuid.UUID       `json:"item_id"`
	ItemName        string          `json:"item_name"`
	ItemPrice       decimal.Decimal `json:"item_price"`
	QuantityInStock int             `json:"quantity_in_stock"`
}
