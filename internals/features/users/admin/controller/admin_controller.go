package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"azadi_backend/internals/features/users/admin/dto"
	"azadi_backend/internals/features/users/admin/repository"
	"azadi_backend/internals/features/users/admin/service"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/middlewares/auth"
	"azadi_backend/internals/storage"
)

const sessionCookie = "access_token"

type AdminController struct {
	Repo     *repository.AdminRepository
	Tokens   *service.TokenService
	Validate *validator.Validate
	Secure   bool // cookie Secure flag
}

func NewAdminController(repo *repository.AdminRepository, tokens *service.TokenService, secure bool) *AdminController {
	return &AdminController{Repo: repo, Tokens: tokens, Validate: helper.NewValidator(), Secure: secure}
}

// =========================
// POST /api/admin/login
// =========================
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	ctx := c.UserContext()
	user, err := ctrl.Repo.FindByUsername(ctx, body.Username)
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return err
	}

	ok, rehash := service.CheckPassword(user.Password, body.Password)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if rehash {
		// legacy plaintext row, upgrade in place
		if hash, err := service.HashPassword(body.Password); err == nil {
			if err := ctrl.Repo.UpdatePassword(ctx, user.ID, hash); err != nil {
				log.Warn().Err(err).Str("user", user.Username).Msg("[AUTH] rehash failed")
			}
		}
	}

	token, claims, err := ctrl.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}
	exp := claims.ExpiresAt.Time

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   ctrl.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("user", user.Username).Msg("✅ admin login")
	return helper.JsonOK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.ToAdminResponse(*user),
	})
}

// =========================
// POST /api/admin/logout
// =========================
func (ctrl *AdminController) Logout(c *fiber.Ctx) error {
	jti, exp := auth.TokenID(c)
	if jti == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := ctrl.Repo.Revoke(c.UserContext(), jti, exp); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   ctrl.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, fiber.Map{"success": true})
}

// =========================
// GET /api/admin/me
// =========================
func (ctrl *AdminController) Me(c *fiber.Ctx) error {
	user, err := ctrl.Repo.FindByID(c.UserContext(), auth.AdminID(c))
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user not found")
	}
	if err != nil {
		return err
	}
	return helper.JsonOK(c, dto.ToAdminResponse(*user))
}

// =========================
// POST /api/admin/change-password
// =========================
func (ctrl *AdminController) ChangePassword(c *fiber.Ctx) error {
	var body dto.ChangePasswordRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	ctx := c.UserContext()
	user, err := ctrl.Repo.FindByID(ctx, auth.AdminID(c))
	if err != nil {
		return helper.StorageError(err, "user")
	}
	if ok, _ := service.CheckPassword(user.Password, body.CurrentPassword); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return err
	}
	if err := ctrl.Repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return helper.StorageError(err, "user")
	}
	return helper.JsonOK(c, fiber.Map{"success": true})
}
