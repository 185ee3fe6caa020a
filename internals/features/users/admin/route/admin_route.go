package route

import (
	"github.com/gofiber/fiber/v2"

	"azadi_backend/internals/features/users/admin/controller"
	"azadi_backend/internals/features/users/admin/repository"
	"azadi_backend/internals/features/users/admin/service"
	rateLimiter "azadi_backend/internals/middlewares"
)

// AdminRoutes mounts /api/admin; adminOnly guards everything except login.
func AdminRoutes(api fiber.Router, repo *repository.AdminRepository, tokens *service.TokenService, adminOnly fiber.Handler, secureCookie bool) {
	ctrl := controller.NewAdminController(repo, tokens, secureCookie)

	g := api.Group("/admin")
	g.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)

	g.Post("/logout", adminOnly, ctrl.Logout)
	g.Get("/me", adminOnly, ctrl.Me)
	g.Post("/change-password", adminOnly, ctrl.ChangePassword)
}
