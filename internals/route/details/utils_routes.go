package details

import (
	"azadi_backend/internals/configs"
	uploadRoutes "azadi_backend/internals/features/utils/uploads/route"
	"azadi_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
)

func UtilsRoutes(api fiber.Router, store oss.Store, cfg *configs.Config, adminOnly fiber.Handler) {
	uploadRoutes.UploadRoutes(api, store, cfg, adminOnly)
}
