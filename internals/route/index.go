package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"azadi_backend/internals/configs"
	adminRepository "azadi_backend/internals/features/users/admin/repository"
	adminService "azadi_backend/internals/features/users/admin/service"
	"azadi_backend/internals/helpers/oss"
	authMiddleware "azadi_backend/internals/middlewares/auth"
	routeDetails "azadi_backend/internals/route/details"
)

var startTime time.Time

// Deps is what the HTTP layer needs from main.
type Deps struct {
	DB     *gorm.DB
	Config *configs.Config
	Store  oss.Store
}

func SetupRoutes(app *fiber.App, deps Deps) {
	startTime = time.Now()
	db, cfg := deps.DB, deps.Config

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	adminRepo := adminRepository.NewAdminRepository(db)
	tokens := adminService.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	adminOnly := authMiddleware.AdminOnly(tokens, adminRepo)

	api := app.Group("/api")

	// ===================== MOUNT ROUTES =====================
	log.Info().Msg("Mounting user routes...")
	routeDetails.UserRoutes(api, db, adminRepo, tokens, adminOnly, cfg.IsProduction())

	log.Info().Msg("Mounting page routes...")
	routeDetails.PageRoutes(api, db, adminOnly)

	log.Info().Msg("Mounting home routes...")
	routeDetails.HomeRoutes(api, db, adminOnly)

	log.Info().Msg("Mounting event routes...")
	routeDetails.EventRoutes(api, db, adminOnly)

	log.Info().Msg("Mounting donation routes...")
	routeDetails.DonationRoutes(api, db, adminOnly)

	log.Info().Msg("Mounting contact routes...")
	routeDetails.ContactRoutes(api, db, adminOnly)

	log.Info().Msg("Mounting utils routes...")
	routeDetails.UtilsRoutes(api, deps.Store, cfg, adminOnly)
}
