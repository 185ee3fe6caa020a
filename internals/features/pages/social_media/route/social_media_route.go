package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/social_media/controller"
)

func SocialMediaRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewSocialMediaController(db)

	api.Get("/social-media", ctrl.Get)
	api.Post("/social-media", adminOnly, ctrl.Upsert)
	api.Patch("/social-media", adminOnly, ctrl.Patch)
	api.Patch("/social-media/:id", adminOnly, ctrl.Patch)
}
