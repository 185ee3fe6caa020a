package route

import (
	"github.com/gofiber/fiber/v2"

	"azadi_backend/internals/configs"
	"azadi_backend/internals/features/utils/uploads/controller"
	"azadi_backend/internals/helpers/oss"
)

func UploadRoutes(api fiber.Router, store oss.Store, cfg *configs.Config, adminOnly fiber.Handler) {
	ctrl := controller.NewUploadController(store, cfg.Storage, cfg.Image)

	g := api.Group("/uploads", adminOnly)
	g.Post("/", ctrl.Upload)
	g.Delete("/", ctrl.Delete)
}
