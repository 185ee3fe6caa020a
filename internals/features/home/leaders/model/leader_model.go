package model

import "azadi_backend/internals/storage"

type Leader struct {
	storage.Edited

	Name       string `gorm:"type:text;not null" json:"name"`
	NameEn     string `gorm:"type:text;not null" json:"nameEn"`
	Position   string `gorm:"type:text;not null" json:"position"`
	PositionEn string `gorm:"type:text;not null" json:"positionEn"`
	Quote      string `gorm:"type:text;not null" json:"quote"`
	QuoteEn    string `gorm:"type:text;not null" json:"quoteEn"`
	Image      string `gorm:"not null" json:"image"`
}

func (Leader) TableName() string {
	return "leaders"
}
