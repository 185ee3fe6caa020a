package model

import (
	"gorm.io/datatypes"

	"azadi_backend/internals/storage"
)

const (
	TypePhoto = "photo"
	TypeVideo = "video"
)

type GalleryItem struct {
	storage.Edited

	Title            string                      `gorm:"type:text;not null" json:"title"`
	TitleEn          string                      `gorm:"type:text;not null" json:"titleEn"`
	Description      *string                     `gorm:"type:text" json:"description"`
	DescriptionEn    *string                     `gorm:"type:text" json:"descriptionEn"`
	Image            string                      `gorm:"not null" json:"image"`
	AdditionalImages datatypes.JSONSlice[string] `json:"additionalImages"`
	Type             string                      `gorm:"column:item_type;type:varchar(20);not null;default:photo" json:"type"`
	VideoURL         *string                     `gorm:"column:video_url;type:text" json:"videoUrl"`
	Order            int                         `gorm:"column:display_order;not null;index" json:"order"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
