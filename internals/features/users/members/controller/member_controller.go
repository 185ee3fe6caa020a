package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"azadi_backend/internals/features/users/admin/service"
	"azadi_backend/internals/features/users/members/dto"
	"azadi_backend/internals/features/users/members/model"
	"azadi_backend/internals/features/users/members/repository"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

type MemberController struct {
	Repo     *repository.MemberRepository
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{Repo: repository.NewMemberRepository(db), Validate: helper.NewValidator()}
}

// =========================
// POST /api/members/register
// =========================
func (ctrl *MemberController) Register(c *fiber.Ctx) error {
	var body dto.RegisterMemberRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	ctx := c.UserContext()
	if _, err := ctrl.Repo.FindByUsername(ctx, body.Username); err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Username already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return err
	}
	member := body.ToModel(hash)
	if err := ctrl.Repo.Create(ctx, &member); err != nil {
		// username is checked above, so a conflict here is the email
		return helper.StorageError(err, "member")
	}
	return helper.JsonOK(c, member)
}

// =========================
// POST /api/members/login
// =========================
func (ctrl *MemberController) Login(c *fiber.Ctx) error {
	var body dto.LoginMemberRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	username := helper.CleanText(body.Username)
	if username == "" || strings.TrimSpace(body.Password) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password required")
	}

	ctx := c.UserContext()
	member, err := ctrl.Repo.FindByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return err
	}
	ok, rehash := service.CheckPassword(member.Password, body.Password)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if rehash {
		// legacy plaintext row, upgrade in place
		if hash, err := service.HashPassword(body.Password); err == nil {
			if err := ctrl.Repo.UpdatePassword(ctx, member.ID, hash); err != nil {
				log.Warn().Err(err).Str("member", member.Username).Msg("[MEMBER] rehash failed")
			}
		}
	}
	return helper.JsonOK(c, member)
}

// GET /api/members (admin)
func (ctrl *MemberController) List(c *fiber.Ctx) error {
	return helper.RespondList[model.Member](c, ctrl.Repo)
}

// GET /api/members/:id
func (ctrl *MemberController) Get(c *fiber.Ctx) error {
	member, err := ctrl.Repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StorageError(err, "Member")
	}
	return helper.JsonOK(c, member)
}
