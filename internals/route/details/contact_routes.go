package details

import (
	messageRoutes "azadi_backend/internals/features/contact/messages/route"
	volunteerRoutes "azadi_backend/internals/features/contact/volunteers/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public forms (contact, volunteer); the inbox is admin only.
func ContactRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	messageRoutes.MessageRoutes(api, db, adminOnly)
	volunteerRoutes.VolunteerRoutes(api, db, adminOnly)
}
