package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog/log"

	"azadi_backend/internals/configs"
	database "azadi_backend/internals/databases"
	"azadi_backend/internals/features/users/admin/scheduler"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/helpers/oss"
	middlewares "azadi_backend/internals/middlewares"
	"azadi_backend/internals/middlewares/logger"
	routes "azadi_backend/internals/route"
	"azadi_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ config")
	}
	configs.InitLogger(cfg.Log)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
	})

	// ⚙️ middleware dasar + performa
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestID())
	app.Use(logger.LoggerMiddleware())
	app.Use(middlewares.CorsMiddleware(cfg.CORS.AllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(middlewares.Metrics())
	app.Use(middlewares.GlobalRateLimiter(cfg.Server.RateLimitMax))
	app.Use(middlewares.Timeout(cfg.Server.RequestTimeout))

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ database")
	}
	ctx := context.Background()
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("❌ migrate")
		}
	}
	if cfg.Seed.Enabled {
		if err := seeds.RunAllSeeds(ctx, db, cfg); err != nil {
			log.Fatal().Err(err).Msg("❌ seed")
		}
	}

	store, err := oss.NewStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ object store")
	}
	log.Info().Str("driver", store.Name()).Msg("🗄️ object store ready")

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(db, cfg.Auth.BlacklistCleanup)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ scheduler")
	}

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{DB: db, Config: cfg, Store: store})

	// Start server non-blocking
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("✅ listening")
		if err := app.Listen("0.0.0.0:" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("🛑 shutting down")

	<-cleanup.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("fiber shutdown")
	}

	database.Close(db)
}
