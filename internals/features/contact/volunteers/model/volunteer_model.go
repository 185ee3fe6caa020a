package model

import "azadi_backend/internals/storage"

type Volunteer struct {
	storage.Base

	Name    string  `gorm:"type:text;not null" json:"name"`
	Email   string  `gorm:"type:text;not null" json:"email"`
	Phone   string  `gorm:"type:text;not null" json:"phone"`
	Message *string `gorm:"type:text" json:"message"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}
