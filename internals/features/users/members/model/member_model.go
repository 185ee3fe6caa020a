package model

import "azadi_backend/internals/storage"

type Member struct {
	storage.Base

	Username string  `gorm:"size:191;not null;uniqueIndex" json:"username"`
	Email    string  `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	FullName string  `gorm:"type:text;not null" json:"fullName"`
	Phone    *string `gorm:"type:text" json:"phone"`
	Division *string `gorm:"type:text" json:"division"`
	District *string `gorm:"type:text" json:"district"`
}

func (Member) TableName() string {
	return "members"
}
