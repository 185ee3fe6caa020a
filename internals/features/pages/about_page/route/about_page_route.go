package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/about_page/controller"
)

func AboutPageRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewAboutPageController(db)

	api.Get("/about-page", ctrl.Get)
	api.Post("/about-page", adminOnly, ctrl.Upsert)
	api.Patch("/about-page", adminOnly, ctrl.Patch)
	api.Patch("/about-page/:id", adminOnly, ctrl.Patch)
}
