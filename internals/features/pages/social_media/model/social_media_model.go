package model

import "azadi_backend/internals/storage"

type SocialMedia struct {
	storage.Edited

	Facebook  *string `gorm:"type:text" json:"facebook"`
	Instagram *string `gorm:"type:text" json:"instagram"`
	Youtube   *string `gorm:"type:text" json:"youtube"`
}

func (SocialMedia) TableName() string {
	return "social_media"
}
