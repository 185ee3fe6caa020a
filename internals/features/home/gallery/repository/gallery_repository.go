package repository

import (
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/gallery/model"
	"azadi_backend/internals/storage"
)

// NewGalleryRepository orders by display_order, oldest first within a slot.
func NewGalleryRepository(db *gorm.DB) *storage.Repository[model.GalleryItem] {
	return storage.NewRepository[model.GalleryItem](db, storage.Asc("display_order"), storage.Asc("created_at"))
}
