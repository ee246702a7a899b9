package model

type Vendor struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address      string `gorm:"type:text" json:"address"`
	MobileNumber string `gorm:"type:varchar(50)" json:"mobile_number"`
}
