package repository

import (
	"gorm.io/gorm"

	"azadi_backend/internals/features/contact/messages/model"
	"azadi_backend/internals/storage"
)

// NewMessageRepository lists the inbox newest first.
func NewMessageRepository(db *gorm.DB) *storage.Repository[model.Message] {
	return storage.NewRepository[model.Message](db, storage.Desc("created_at"))
}

// Unread narrows a listing to unread messages.
func Unread(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}
