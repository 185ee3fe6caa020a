package model

import "azadi_backend/internals/storage"

// User is an admin account. The stripe columns are kept for schema parity only.
type User struct {
	storage.Base
	Username             string  `gorm:"size:191;not null;uniqueIndex" json:"username"`
	Password             string  `gorm:"not null" json:"-"`
	Email                *string `json:"email"`
	StripeCustomerID     *string `json:"stripeCustomerId,omitempty"`
	StripeSubscriptionID *string `json:"stripeSubscriptionId,omitempty"`
}

func (User) TableName() string {
	return "users"
}
