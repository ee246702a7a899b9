package model

import "github.com/google/uuid"

// TransferRequest records intent to move stock between two warehouses.
// Stock is untouched at creation; completion debits the source and
// credits the destination atomically.
type TransferRequest struct {
	BaseModel
	FromWarehouseID uuid.UUID      `gorm:"type:uuid;not null" json:"from_warehouse_id"`
	ToWarehouseID   uuid.UUID      `gorm:"type:uuid;not null" json:"to_warehouse_id"`
	Status          OrderStatus    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CreatedBy       *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	FromWarehouse   *Warehouse     `gorm:"foreignKey:FromWarehouseID;constraint:OnDelete:CASCADE" json:"from_warehouse,omitempty"`
	ToWarehouse     *Warehouse     `gorm:"foreignKey:ToWarehouseID;constraint:OnDelete:CASCADE" json:"to_warehouse,omitempty"`
	Creator         *User          `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	Lines           []TransferLine `gorm:"foreignKey:TransferRequestID" json:"lines,omitempty"`
}

type TransferLine struct {
	BaseModel
	TransferRequestID uuid.UUID `gorm:"type:uuid;not null;index" json:"transfer_request_id"`
	ItemID            uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	Quantity          int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	Item              *Item     `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
}
