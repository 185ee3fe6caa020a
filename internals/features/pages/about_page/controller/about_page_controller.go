package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/about_page/dto"
	"azadi_backend/internals/features/pages/about_page/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

type AboutPageController struct {
	Repo     *storage.Singleton[model.AboutPage]
	Validate *validator.Validate
}

func NewAboutPageController(db *gorm.DB) *AboutPageController {
	return &AboutPageController{Repo: storage.NewSingleton[model.AboutPage](db), Validate: helper.NewValidator()}
}

// GET /api/about-page → {"data": page|null}
func (ctrl *AboutPageController) Get(c *fiber.Ctx) error {
	page, err := ctrl.Repo.Get(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonData(c, page)
}

// POST /api/about-page (upsert)
func (ctrl *AboutPageController) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertAboutPageRequest
	if err := helper.Decode(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := helper.ValidateStruct(ctrl.Validate, &body); err != nil {
		return err
	}

	row := body.ToModel()
	page, err := ctrl.Repo.Upsert(c.UserContext(), &row, body.Columns())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, page)
}

// PATCH /api/about-page[/:id]
func (ctrl *AboutPageController) Patch(c *fiber.Ctx) error {
	var body dto.PatchAboutPageRequest
	if err := helper.DecodeStrict(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := body.Validate(ctrl.Validate); err != nil {
		return err
	}

	page, err := ctrl.Repo.Update(c.UserContext(), c.Params("id", storage.SingletonID), body.ToUpdates())
	if err != nil {
		return helper.StorageError(err, "about page")
	}
	return helper.JsonOK(c, page)
}
