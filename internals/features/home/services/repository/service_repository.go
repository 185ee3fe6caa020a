package repository

import (
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/services/model"
	"azadi_backend/internals/storage"
)

func NewServiceRepository(db *gorm.DB) *storage.Repository[model.Service] {
	return storage.NewRepository[model.Service](db)
}
