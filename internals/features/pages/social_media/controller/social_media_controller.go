package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/social_media/dto"
	"azadi_backend/internals/features/pages/social_media/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

type SocialMediaController struct {
	Repo     *storage.Singleton[model.SocialMedia]
	Validate *validator.Validate
}

func NewSocialMediaController(db *gorm.DB) *SocialMediaController {
	return &SocialMediaController{Repo: storage.NewSingleton[model.SocialMedia](db), Validate: helper.NewValidator()}
}

// GET /api/social-media → {"data": links|null}
func (ctrl *SocialMediaController) Get(c *fiber.Ctx) error {
	links, err := ctrl.Repo.Get(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonData(c, links)
}

// POST /api/social-media (upsert)
func (ctrl *SocialMediaController) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertSocialMediaRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	row := body.ToModel()
	links, err := ctrl.Repo.Upsert(c.UserContext(), &row, body.Columns())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, links)
}

// PATCH /api/social-media[/:id]
func (ctrl *SocialMediaController) Patch(c *fiber.Ctx) error {
	var body dto.PatchSocialMediaRequest
	if err := helper.DecodeStrict(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := body.Validate(ctrl.Validate); err != nil {
		return err
	}

	links, err := ctrl.Repo.Update(c.UserContext(), c.Params("id", storage.SingletonID), body.ToUpdates())
	if err != nil {
		return helper.StorageError(err, "social media")
	}
	return helper.JsonOK(c, links)
}
