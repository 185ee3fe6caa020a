package details

import (
	adminRepository "azadi_backend/internals/features/users/admin/repository"
	adminRoutes "azadi_backend/internals/features/users/admin/route"
	adminService "azadi_backend/internals/features/users/admin/service"
	memberRoutes "azadi_backend/internals/features/users/members/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin session endpoints and member accounts.
func UserRoutes(
	api fiber.Router,
	db *gorm.DB,
	repo *adminRepository.AdminRepository,
	tokens *adminService.TokenService,
	adminOnly fiber.Handler,
	secureCookie bool,
) {
	adminRoutes.AdminRoutes(api, repo, tokens, adminOnly, secureCookie)
	memberRoutes.MemberRoutes(api, db, adminOnly)
}
