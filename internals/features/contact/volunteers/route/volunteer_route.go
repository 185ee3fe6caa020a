package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/contact/volunteers/controller"
)

func VolunteerRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewVolunteerController(db)

	g := api.Group("/volunteers")
	g.Post("/", ctrl.Create)

	g.Get("/", adminOnly, ctrl.List)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
