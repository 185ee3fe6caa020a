package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/donations/donations/controller"
)

func DonationRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewDonationController(db)

	g := api.Group("/donations")

	// 🌐 public
	g.Get("/approved", ctrl.ListApproved)
	g.Post("/", ctrl.Create)

	// 🔐 admin
	g.Get("/", adminOnly, ctrl.List)
	g.Get("/:id", adminOnly, ctrl.Get)
	g.Patch("/:id/status", adminOnly, ctrl.UpdateStatus)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
