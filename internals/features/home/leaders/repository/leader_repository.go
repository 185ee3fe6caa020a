package repository

import (
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/leaders/model"
	"azadi_backend/internals/storage"
)

func NewLeaderRepository(db *gorm.DB) *storage.Repository[model.Leader] {
	return storage.NewRepository[model.Leader](db)
}
