package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"azadi_backend/internals/features/pages/contact_page/dto"
	"azadi_backend/internals/features/pages/contact_page/model"
	helper "azadi_backend/internals/helpers"
	"azadi_backend/internals/storage"
)

type ContactPageController struct {
	Repo     *storage.Singleton[model.ContactPage]
	Validate *validator.Validate
}

func NewContactPageController(db *gorm.DB) *ContactPageController {
	return &ContactPageController{Repo: storage.NewSingleton[model.ContactPage](db), Validate: helper.NewValidator()}
}

// GET /api/contact-page → {"data": page|null}
func (ctrl *ContactPageController) Get(c *fiber.Ctx) error {
	page, err := ctrl.Repo.Get(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonData(c, page)
}

// POST /api/contact-page (upsert)
func (ctrl *ContactPageController) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertContactPageRequest
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

// PATCH /api/contact-page[/:id]
func (ctrl *ContactPageController) Patch(c *fiber.Ctx) error {
	var body dto.PatchContactPageRequest
	if err := helper.DecodeStrict(c, &body); err != nil {
		return err
	}
	body.Normalize()
	if err := body.Validate(ctrl.Validate); err != nil {
		return err
	}

	page, err := ctrl.Repo.Update(c.UserContext(), c.Params("id", storage.SingletonID), body.ToUpdates())
	if err != nil {
		return helper.StorageError(err, "contact page")
	}
	return helper.JsonOK(c, page)
}
