package details

import (
	donationRoutes "azadi_backend/internals/features/donations/donations/route"
	paymentMethodRoutes "azadi_backend/internals/features/donations/payment_methods/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DonationRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	donationRoutes.DonationRoutes(api, db, adminOnly)
	paymentMethodRoutes.PaymentMethodRoutes(api, db, adminOnly)
}
