package details

import (
	galleryRoutes "azadi_backend/internals/features/home/gallery/route"
	leaderRoutes "azadi_backend/internals/features/home/leaders/route"
	serviceRoutes "azadi_backend/internals/features/home/services/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Leaders, services and the gallery; reads are public, writes need adminOnly.
// Contoh akses: /api/leaders, /api/gallery/:id
func HomeRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	leaderRoutes.LeaderRoutes(api, db, adminOnly)
	serviceRoutes.ServiceRoutes(api, db, adminOnly)
	galleryRoutes.GalleryRoutes(api, db, adminOnly)
}
