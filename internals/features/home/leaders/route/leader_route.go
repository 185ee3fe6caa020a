package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/leaders/controller"
)

func LeaderRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewLeaderController(db)

	g := api.Group("/leaders")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)

	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Patch)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
