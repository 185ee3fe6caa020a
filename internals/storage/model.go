package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the server-assigned id and creation time shared by every table.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Edited is Base for rows that are changed after creation.
type Edited struct {
	Base
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
