package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is shared by import orders and transfer requests.
// pending -> completed | cancelled; completed and cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ImportOrder records a vendor purchase. Completing it credits the
// warehouse stock; total_cost is always recomputed from the lines.
type ImportOrder struct {
	BaseModel
	WarehouseID uuid.UUID         `gorm:"type:uuid;not null" json:"warehouse_id"`
	VendorID    uuid.UUID         `gorm:"type:uuid;not null" json:"vendor_id"`
	OrderDate   time.Time         `gorm:"type:date;not null" json:"order_date"`
	TotalCost   decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"total_cost"`
	Status      OrderStatus       `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	Warehouse   *Warehouse        `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE" json:"warehouse,omitempty"`
	Vendor      *Vendor           `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"vendor,omitempty"`
	Lines       []ImportOrderLine `gorm:"foreignKey:ImportOrderID" json:"lines,omitempty"`
}

type ImportOrderLine struct {
	BaseModel
	ImportOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"import_order_id"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null" json:"item_id"`
	Quantity      int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Item          *Item           `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
}

// LineCost is quantity x unit price
func (l *ImportOrderLine) LineCost() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ImportOrderTotal recomputes total_cost from the given lines
func ImportOrderTotal(lines []ImportOrderLine) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].LineCost())
	}
	return total
}
