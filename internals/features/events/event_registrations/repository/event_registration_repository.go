package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"azadi_backend/internals/features/events/event_registrations/model"
	"azadi_backend/internals/storage"
)

type EventRegistrationRepository struct {
	*storage.Repository[model.EventRegistration]
}

func NewEventRegistrationRepository(db *gorm.DB) *EventRegistrationRepository {
	return &EventRegistrationRepository{storage.NewRepository[model.EventRegistration](db)}
}

// ByEvent is a Scope; an empty id means no filter.
func ByEvent(eventID string) storage.Scope {
	return func(db *gorm.DB) *gorm.DB {
		if id := strings.TrimSpace(eventID); id != "" {
			return db.Where("event_id = ?", id)
		}
		return db
	}
}

func (r *EventRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]model.EventRegistration, error) {
	return r.List(ctx, ByEvent(eventID))
}
