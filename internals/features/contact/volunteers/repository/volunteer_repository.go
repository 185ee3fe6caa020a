package repository

import (
	"gorm.io/gorm"

	"azadi_backend/internals/features/contact/volunteers/model"
	"azadi_backend/internals/storage"
)

func NewVolunteerRepository(db *gorm.DB) *storage.Repository[model.Volunteer] {
	return storage.NewRepository[model.Volunteer](db, storage.Asc("created_at"))
}
