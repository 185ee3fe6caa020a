package model

import "azadi_backend/internals/storage"

const (
	DefaultSundayThursdayBn = "রবিবার - বৃহস্পতিবার\n৯:০০ AM - ৫:০০ PM"
	DefaultSundayThursdayEn = "Sunday - Thursday\n9:00 AM - 5:00 PM"
	DefaultFridayBn         = "শুক্রবার\nবন্ধ"
	DefaultFridayEn         = "Friday\nClosed"
	DefaultSaturdayBn       = "শনিবার\n১০:০০ AM - ২:০০ PM"
	DefaultSaturdayEn       = "Saturday\n10:00 AM - 2:00 PM"
)

// ContactPage holds the office hours shown on the contact page, one row keyed by storage.SingletonID.
type ContactPage struct {
	storage.Edited

	SundayThursdayBn string `gorm:"type:text;not null" json:"sundayThursdayBn"`
	SundayThursdayEn string `gorm:"type:text;not null" json:"sundayThursdayEn"`
	FridayBn         string `gorm:"type:text;not null" json:"fridayBn"`
	FridayEn         string `gorm:"type:text;not null" json:"fridayEn"`
	SaturdayBn       string `gorm:"type:text;not null" json:"saturdayBn"`
	SaturdayEn       string `gorm:"type:text;not null" json:"saturdayEn"`
}

func (ContactPage) TableName() string {
	return "contact_page"
}
