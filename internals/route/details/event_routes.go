package details

import (
	registrationRoutes "azadi_backend/internals/features/events/event_registrations/route"
	eventRoutes "azadi_backend/internals/features/events/events/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	eventRoutes.EventRoutes(api, db, adminOnly)
	registrationRoutes.EventRegistrationRoutes(api, db, adminOnly)
}
