package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/users/members/controller"
	rateLimiter "azadi_backend/internals/middlewares"
)

func MemberRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewMemberController(db)

	g := api.Group("/members")
	g.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	g.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)

	g.Get("/", adminOnly, ctrl.List)
	g.Get("/:id", ctrl.Get)
}
