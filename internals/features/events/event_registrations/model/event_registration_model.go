package model

import "azadi_backend/internals/storage"

const StatusRegistered = "registered"

type EventRegistration struct {
	storage.Base

	EventID  string  `gorm:"type:varchar(36);not null;index" json:"eventId"`
	MemberID *string `gorm:"type:varchar(36);index" json:"memberId"`
	Name     string  `gorm:"type:text;not null" json:"name"`
	Email    string  `gorm:"type:text;not null" json:"email"`
	Phone    string  `gorm:"type:text;not null" json:"phone"`
	Status   string  `gorm:"type:varchar(20);not null;default:registered" json:"status"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}
