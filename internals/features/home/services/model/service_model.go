package model

import "azadi_backend/internals/storage"

// Icons the public site knows how to render.
var Icons = []string{"Book", "Heart", "Trophy", "Users", "Leaf", "Lightbulb"}

type Service struct {
	storage.Edited

	Title         string `gorm:"type:text;not null" json:"title"`
	TitleEn       string `gorm:"type:text;not null" json:"titleEn"`
	Description   string `gorm:"type:text;not null" json:"description"`
	DescriptionEn string `gorm:"type:text;not null" json:"descriptionEn"`
	Image         string `gorm:"not null" json:"image"`
	Icon          string `gorm:"type:varchar(32);not null" json:"icon"`
}

func (Service) TableName() string {
	return "services"
}
