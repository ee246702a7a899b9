package model

type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Mobile  string `gorm:"type:varchar(50)" json:"mobile"`
	Address string `gorm:"type:text" json:"address"`
}
