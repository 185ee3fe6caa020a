package model

import "azadi_backend/internals/storage"

const (
	DefaultStudentsCount = "১০০০+"
	DefaultEventsCount   = "৫০+"
	DefaultYearsCount    = "৩৬+"
	DefaultOfficeHours   = "২৪/৭"
	DefaultOfficeHoursEn = "24/7"
)

// AboutPage is a single-row table keyed by storage.SingletonID.
type AboutPage struct {
	storage.Edited

	HistoryP1     string  `gorm:"column:history_p1;type:text;not null" json:"historyP1"`
	HistoryP1En   string  `gorm:"column:history_p1_en;type:text;not null" json:"historyP1En"`
	HistoryP2     string  `gorm:"column:history_p2;type:text;not null" json:"historyP2"`
	HistoryP2En   string  `gorm:"column:history_p2_en;type:text;not null" json:"historyP2En"`
	HistoryP3     string  `gorm:"column:history_p3;type:text;not null" json:"historyP3"`
	HistoryP3En   string  `gorm:"column:history_p3_en;type:text;not null" json:"historyP3En"`
	Image         *string `json:"image"`
	StudentsCount string  `gorm:"type:text;not null" json:"studentsCount"`
	EventsCount   string  `gorm:"type:text;not null" json:"eventsCount"`
	YearsCount    string  `gorm:"type:text;not null" json:"yearsCount"`
	OfficeHours   string  `gorm:"type:text;not null" json:"officeHours"`
	OfficeHoursEn string  `gorm:"type:text;not null" json:"officeHoursEn"`
}

func (AboutPage) TableName() string {
	return "about_page"
}
