package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentDeferred PaymentMethod = "deferred"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft            InvoiceStatus = "draft"
	InvoiceStatusPendingPayment   InvoiceStatus = "pending_payment"
	InvoiceStatusPartiallySettled InvoiceStatus = "partially_settled"
	InvoiceStatusSettled          InvoiceStatus = "settled"
	InvoiceStatusCompleted        InvoiceStatus = "completed"
)

// Invoice is a point-of-sale document: its stock debit happens at
// creation, not at a later completion step. subtotal and total are
// derived from the lines; status is cached but always recomputable
// from total and the collection sum.
type Invoice struct {
	BaseModel
	WarehouseID   uuid.UUID       `gorm:"type:uuid;not null" json:"warehouse_id"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null" json:"customer_id"`
	InvoiceDate   time.Time       `gorm:"type:date;not null" json:"invoice_date"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(50);not null" json:"payment_method"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	Status        InvoiceStatus   `gorm:"type:varchar(50);not null;default:'draft'" json:"status"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	Warehouse     *Warehouse      `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE" json:"warehouse,omitempty"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Creator       *User           `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
	Lines         []InvoiceLine   `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
	Collections   []Collection    `gorm:"foreignKey:InvoiceID" json:"collections,omitempty"`
}

type InvoiceLine struct {
	BaseModel
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null" json:"item_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"line_total"`
	Item      *Item           `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
}

// InvoiceSubtotal recomputes the subtotal from the given lines
func InvoiceSubtotal(lines []InvoiceLine) decimal.Decimal {
	subtotal := decimal.Zero
	for i := range lines {
		subtotal = subtotal.Add(lines[i].LineTotal)
	}
	return subtotal
}

// SettlementStatus derives the payment status from the invoice total
// and the cumulative collected amount:
//
//	collected >= total        -> settled
//	0 < collected < total     -> partially_settled
//	collected == 0, total > 0 -> pending_payment
func SettlementStatus(total, collected decimal.Decimal) InvoiceStatus {
	switch {
	case collected.GreaterThanOrEqual(total):
		return InvoiceStatusSettled
	case collected.GreaterThan(decimal.Zero):
		return InvoiceStatusPartiallySettled
	default:
		return InvoiceStatusPendingPayment
	}
}

// CollectedTotal sums the given collections
func CollectedTotal(collections []Collection) decimal.Decimal {
	collected := decimal.Zero
	for i := range collections {
		collected = collected.Add(collections[i].Amount)
	}
	return collected
}
