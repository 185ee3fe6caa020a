package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/events/event_registrations/controller"
)

func EventRegistrationRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewEventRegistrationController(db)

	g := api.Group("/event-registrations")
	g.Post("/", ctrl.Create)

	g.Get("/", adminOnly, ctrl.List)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
