package model

import "azadi_backend/internals/storage"

type PaymentMethod struct {
	storage.Edited

	Name          string  `gorm:"type:text;not null" json:"name"`
	NameEn        string  `gorm:"type:text;not null" json:"nameEn"`
	Phone         string  `gorm:"type:text;not null" json:"phone"`
	Description   *string `gorm:"type:text" json:"description"`
	DescriptionEn *string `gorm:"type:text" json:"descriptionEn"`
	Order         int     `gorm:"column:display_order;not null;index" json:"order"`
	Active        bool    `gorm:"not null" json:"active"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
