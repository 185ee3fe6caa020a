package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/contact_page/controller"
)

func ContactPageRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewContactPageController(db)

	api.Get("/contact-page", ctrl.Get)
	api.Post("/contact-page", adminOnly, ctrl.Upsert)
	api.Patch("/contact-page", adminOnly, ctrl.Patch)
	api.Patch("/contact-page/:id", adminOnly, ctrl.Patch)
}
