package model

import "github.com/google/uuid"

// Warehouse may have one assigned user (owner/operator)
type Warehouse struct {
	BaseModel
	Name   string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	UserID *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	User   *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}
