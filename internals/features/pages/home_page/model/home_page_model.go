package model

import "azadi_backend/internals/storage"

const (
	DefaultFoundedDate   = "১০ জুন ১৯৮৮"
	DefaultFoundedDateEn = "10 June 1988"
)

type HomePage struct {
	storage.Edited

	HeroTitle             string  `gorm:"type:text;not null" json:"heroTitle"`
	HeroTitleEn           string  `gorm:"type:text;not null" json:"heroTitleEn"`
	HeroDescription       string  `gorm:"type:text;not null" json:"heroDescription"`
	HeroDescriptionEn     string  `gorm:"type:text;not null" json:"heroDescriptionEn"`
	HeroImage             *string `json:"heroImage"`
	ServicesTitle         string  `gorm:"type:text;not null" json:"servicesTitle"`
	ServicesTitleEn       string  `gorm:"type:text;not null" json:"servicesTitleEn"`
	ServicesDescription   string  `gorm:"type:text;not null" json:"servicesDescription"`
	ServicesDescriptionEn string  `gorm:"type:text;not null" json:"servicesDescriptionEn"`
	ServicesImage         *string `json:"servicesImage"`
	EventsTitle           string  `gorm:"type:text;not null" json:"eventsTitle"`
	EventsTitleEn         string  `gorm:"type:text;not null" json:"eventsTitleEn"`
	EventsImage           *string `json:"eventsImage"`
	FoundedDate           string  `gorm:"type:text;not null" json:"foundedDate"`
	FoundedDateEn         string  `gorm:"type:text;not null" json:"foundedDateEn"`
}

func (HomePage) TableName() string {
	return "home_page"
}
