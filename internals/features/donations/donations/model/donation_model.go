package model

import "azadi_backend/internals/storage"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Donation struct {
	storage.Edited

	Name          string  `gorm:"type:text;not null" json:"name"`
	Email         string  `gorm:"type:text;not null" json:"email"`
	Phone         string  `gorm:"type:text;not null" json:"phone"`
	Amount        int     `gorm:"not null" json:"amount"`
	Message       *string `gorm:"type:text" json:"message"`
	TransactionID *string `gorm:"type:text" json:"transactionId"`
	Purpose       *string `gorm:"type:text" json:"purpose"`
	Status        string  `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
}

func (Donation) TableName() string {
	return "donations"
}
