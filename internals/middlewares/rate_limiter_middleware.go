package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "azadi_backend/internals/helpers"
)

func limitBy(max int, window time.Duration, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(max int) fiber.Handler {
	if max <= 0 {
		max = 100
	}
	return limitBy(max, time.Minute, "❌ Too many requests. Please try again later.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return limitBy(5, time.Minute, "❌ Too many login attempts. Please wait a moment.")
}

// Rate limiter untuk member registration
func RegisterRateLimiter() fiber.Handler {
	return limitBy(3, 5*time.Minute, "❌ Too many registrations. Please wait a few minutes.")
}
