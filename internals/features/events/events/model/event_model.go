package model

import (
	"time"

	"gorm.io/datatypes"

	"azadi_backend/internals/storage"
)

type Event struct {
	storage.Edited

	Title            string                      `gorm:"type:text;not null" json:"title"`
	TitleEn          string                      `gorm:"type:text;not null" json:"titleEn"`
	Description      string                      `gorm:"type:text;not null" json:"description"`
	DescriptionEn    string                      `gorm:"type:text;not null" json:"descriptionEn"`
	Date             time.Time                   `gorm:"column:event_date;not null;index" json:"date"`
	Location         string                      `gorm:"type:text;not null" json:"location"`
	LocationEn       string                      `gorm:"type:text;not null" json:"locationEn"`
	Image            string                      `gorm:"not null" json:"image"`
	AdditionalImages datatypes.JSONSlice[string] `json:"additionalImages"`
}

func (Event) TableName() string {
	return "events"
}
