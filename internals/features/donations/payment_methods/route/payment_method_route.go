package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/donations/payment_methods/controller"
)

func PaymentMethodRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewPaymentMethodController(db)

	g := api.Group("/payment-methods")
	g.Get("/", ctrl.ListActive)

	g.Get("/admin/all", adminOnly, ctrl.ListAll)
	g.Post("/", adminOnly, ctrl.Create)
	g.Patch("/:id", adminOnly, ctrl.Patch)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
