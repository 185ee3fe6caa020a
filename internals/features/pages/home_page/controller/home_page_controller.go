package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/home_page/dto"
	"azadi_backend/internals/features/pages/home_page/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

type HomePageController struct {
	Repo     *storage.Singleton[model.HomePage]
	Validate *validator.Validate
}

func NewHomePageController(db *gorm.DB) *HomePageController {
	return &HomePageController{Repo: storage.NewSingleton[model.HomePage](db), Validate: helper.NewValidator()}
}

// GET /api/home-page → {"data": page|null}
func (ctrl *HomePageController) Get(c *fiber.Ctx) error {
	page, err := ctrl.Repo.Get(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonData(c, page)
}

// POST /api/home-page (upsert)
func (ctrl *HomePageController) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertHomePageRequest
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

// PATCH /api/home-page[/:id]
func (ctrl *HomePageController) Patch(c *fiber.Ctx) error {
	var body dto.PatchHomePageRequest
	if err := helper.DecodeStrict(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := body.Validate(ctrl.Validate); err != nil {
		return err
	}

	page, err := ctrl.Repo.Update(c.UserContext(), c.Params("id", storage.SingletonID), body.ToUpdates())
	if err != nil {
		return helper.StorageError(err, "home page")
	}
	return helper.JsonOK(c, page)
}
