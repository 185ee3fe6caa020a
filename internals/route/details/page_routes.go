package details

import (
	aboutRoutes "azadi_backend/internals/features/pages/about_page/route"
	contactRoutes "azadi_backend/internals/features/pages/contact_page/route"
	homePageRoutes "azadi_backend/internals/features/pages/home_page/route"
	socialRoutes "azadi_backend/internals/features/pages/social_media/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Single-row page content: /api/home-page, /api/about-page, /api/contact-page, /api/social-media
func PageRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	homePageRoutes.HomePageRoutes(api, db, adminOnly)
	aboutRoutes.AboutPageRoutes(api, db, adminOnly)
	contactRoutes.ContactPageRoutes(api, db, adminOnly)
	socialRoutes.SocialMediaRoutes(api, db, adminOnly)
}
