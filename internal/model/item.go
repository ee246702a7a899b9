package model

import "github.com/shopspring/decimal"

// Item is immutable reference data; price changes affect future lines only
type Item struct {
	BaseModel
	Name      string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ItemPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"item_price"`
}
