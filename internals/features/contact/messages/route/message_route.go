package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/contact/messages/controller"
)

func MessageRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewMessageController(db)

	g := api.Group("/messages")
	g.Post("/", ctrl.Create)

	g.Get("/", adminOnly, ctrl.List)
	g.Get("/:id", adminOnly, ctrl.Get)
	g.Patch("/:id", adminOnly, ctrl.Patch)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
