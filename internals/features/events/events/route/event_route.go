package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/events/events/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewEventController(db)

	g := api.Group("/events")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)

	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Patch)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
