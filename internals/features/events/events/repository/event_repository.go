package repository

import (
	"gorm.io/gorm"

	"azadi_backend/internals/features/events/events/model"
	"azadi_backend/internals/storage"
)

type EventRepository struct {
	*storage.Repository[model.Event]
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{storage.NewRepository[model.Event](db)}
}
