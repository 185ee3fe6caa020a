package model

import "azadi_backend/internals/storage"

type Message struct {
	storage.Edited

	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null" json:"email"`
	Phone   string `gorm:"type:text;not null" json:"phone"`
	Subject string `gorm:"type:text;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"column:is_read;not null;index" json:"read"`
}

func (Message) TableName() string {
	return "messages"
}
