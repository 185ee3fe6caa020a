package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/home_page/controller"
)

func HomePageRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewHomePageController(db)

	api.Get("/home-page", ctrl.Get)
	api.Post("/home-page", adminOnly, ctrl.Upsert)
	api.Patch("/home-page", adminOnly, ctrl.Patch)
	api.Patch("/home-page/:id", adminOnly, ctrl.Patch)
}
