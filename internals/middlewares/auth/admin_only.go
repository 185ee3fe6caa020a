// internals/middlewares/auth/admin_only.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"azadi_backend/internals/features/users/admin/repository"
	"azadi_backend/internals/features/users/admin/service"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

// Locals keys set for authenticated requests.
const (
	LocAdminID  = "admin_id"
	LocTokenID  = "token_jti"
	LocTokenExp = "token_exp"
)

// AdminOnly requires a valid, unrevoked session token whose admin still exists.
func AdminOnly(tokens *service.TokenService, repo *repository.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing session token")
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("[AUTH] rejected token")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid or expired session")
		}

		revoked, err := repo.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return fmt.Errorf("blacklist lookup: %w", err)
		}
		if revoked {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - session was logged out")
		}

		if _, err := repo.FindByID(c.UserContext(), claims.Subject); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - admin account no longer exists")
			}
			return fmt.Errorf("admin lookup: %w", err)
		}

		helper.SetRawAccessToken(c, raw)
		c.Locals(LocAdminID, claims.Subject)
		c.Locals(LocTokenID, claims.ID)
		c.Locals(LocTokenExp, claims.ExpiresAt.Time)
		return c.Next()
	}
}

// AdminID returns the authenticated admin id, or "" outside AdminOnly.
func AdminID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocAdminID).(string)
	return id
}

// TokenID returns the session id and expiry of the current token.
func TokenID(c *fiber.Ctx) (string, time.Time) {
	jti, _ := c.Locals(LocTokenID).(string)
	exp, _ := c.Locals(LocTokenExp).(time.Time)
	return jti, exp
}
