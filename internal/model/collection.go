package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collection is an append-only payment record against an invoice.
// The sum of collections never exceeds the invoice total.
type Collection struct {
	BaseModel
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CollectionDate time.Time       `gorm:"type:date;not null" json:"collection_date"`
	CreatedBy      *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	Invoice        *Invoice        `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"invoice,omitempty"`
	Creator        *User           `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"creator,omitempty"`
}
